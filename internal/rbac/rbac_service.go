package rbac

import (
	"sync"

	"go-writeup/internal/rbac/infra"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
	Permissions(role string) ([]PermissionResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads the static role policy into enforcer. A nil enforcer
// gets a fresh one built from ModelText.
func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	if enforcer == nil {
		e, err := infra.NewEnforcer(ModelText)
		if err != nil {
			return nil, err
		}
		enforcer = e
	}

	enforcer.ClearPolicy()
	if _, err := enforcer.AddGroupingPolicies(groupingPolicies); err != nil {
		return nil, err
	}
	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, err
	}
	l.Info("rbac policy loaded",
		zap.Int("policies", len(policies)),
		zap.Int("groupings", len(groupingPolicies)),
	)

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	role, ok := ParseRole(req.Role)
	if !ok {
		s.logger.Debug("rbac deny unknown role", zap.String("role", req.Role))
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(string(role), req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", string(role)),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Permissions lists direct and inherited policies for role.
func (s *service) Permissions(role string) ([]PermissionResponse, error) {
	r, ok := ParseRole(role)
	if !ok {
		return []PermissionResponse{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	perms, err := s.enforcer.GetImplicitPermissionsForUser(string(r))
	if err != nil {
		return nil, err
	}
	out := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		out = append(out, PermissionResponse{Role: p[0], Resource: p[1], Action: p[2]})
	}
	return out, nil
}
