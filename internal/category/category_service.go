package category

import (
	"context"
	"strings"

	categoryerrors "go-writeup/internal/category/errors"
	"go-writeup/internal/shared/apperror"
	"go-writeup/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=category_service.go -destination=mock/category_service_mock.go -package=mock
type Service interface {
	ListCategories(ctx context.Context, includeInactive bool) ([]CategoryResponse, error)
	GetCategory(ctx context.Context, id string) (CategoryResponse, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	SetCategoryActive(ctx context.Context, id string, active bool) (CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error
	ListRules(ctx context.Context, categoryID string) ([]RuleResponse, error)
	GetRule(ctx context.Context, id string) (RuleResponse, error)
	CreateRule(ctx context.Context, categoryID string, req CreateRuleRequest) (RuleResponse, error)
	DeleteRule(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("category.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("category.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ListCategories(ctx context.Context, includeInactive bool) ([]CategoryResponse, error) {
	cats, err := s.repo.FindCategories(ctx, includeInactive)
	if err != nil {
		s.logger.Error("list categories failed", zap.Error(err))
		return nil, mapRepositoryError(err, categoryerrors.ErrCategoryNotFound)
	}
	res := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		res[i] = mapCategory(c)
	}
	return res, nil
}

func (s *service) GetCategory(ctx context.Context, id string) (CategoryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CategoryResponse{}, categoryerrors.ErrInvalidCategoryID
	}
	c, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return CategoryResponse{}, mapRepositoryError(err, categoryerrors.ErrCategoryNotFound)
	}
	return mapCategory(*c), nil
}

func (s *service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CategoryResponse{}, apperror.RequiredField("Name")
	}

	c := &Category{
		ID:                       uuid.New(),
		Name:                     name,
		DefaultPoints:            max(req.DefaultPoints, 0),
		IsActive:                 true,
		IsDocumentedConversation: req.IsDocumentedConversation,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		s.logger.Error("create category failed", zap.String("request_id", rid), zap.Error(err))
		return CategoryResponse{}, mapRepositoryError(err, categoryerrors.ErrCategoryNotFound)
	}

	s.logger.Info("create category success",
		zap.String("request_id", rid),
		zap.String("category_id", c.ID.String()),
	)
	return mapCategory(*c), nil
}

func (s *service) SetCategoryActive(ctx context.Context, id string, active bool) (CategoryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CategoryResponse{}, categoryerrors.ErrInvalidCategoryID
	}
	if err := s.repo.UpdateCategoryActive(ctx, id, active); err != nil {
		s.logger.Error("set category active failed", zap.String("category_id", id), zap.Error(err))
		return CategoryResponse{}, mapRepositoryError(err, categoryerrors.ErrCategoryNotFound)
	}
	c, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return CategoryResponse{}, mapRepositoryError(err, categoryerrors.ErrCategoryNotFound)
	}
	return mapCategory(*c), nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return categoryerrors.ErrInvalidCategoryID
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		s.logger.Warn("delete category failed", zap.String("category_id", id), zap.Error(err))
		return mapRepositoryError(err, categoryerrors.ErrCategoryNotFound)
	}
	s.logger.Info("delete category success", zap.String("category_id", id))
	return nil
}

func (s *service) ListRules(ctx context.Context, categoryID string) ([]RuleResponse, error) {
	if _, err := uuid.Parse(categoryID); err != nil {
		return nil, categoryerrors.ErrInvalidCategoryID
	}
	rules, err := s.repo.FindRules(ctx, categoryID)
	if err != nil {
		s.logger.Error("list rules failed", zap.String("category_id", categoryID), zap.Error(err))
		return nil, mapRepositoryError(err, categoryerrors.ErrCategoryNotFound)
	}
	res := make([]RuleResponse, len(rules))
	for i, r := range rules {
		res[i] = mapRule(r)
	}
	return res, nil
}

func (s *service) GetRule(ctx context.Context, id string) (RuleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RuleResponse{}, categoryerrors.ErrInvalidRuleID
	}
	r, err := s.repo.FindRuleByID(ctx, id)
	if err != nil {
		return RuleResponse{}, mapRepositoryError(err, categoryerrors.ErrRuleNotFound)
	}
	return mapRule(*r), nil
}

func (s *service) CreateRule(ctx context.Context, categoryID string, req CreateRuleRequest) (RuleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	catID, err := uuid.Parse(categoryID)
	if err != nil {
		return RuleResponse{}, categoryerrors.ErrInvalidCategoryID
	}
	name := strings.TrimSpace(req.RuleName)
	if name == "" {
		return RuleResponse{}, apperror.RequiredField("Rule Name")
	}

	c, err := s.repo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return RuleResponse{}, mapRepositoryError(err, categoryerrors.ErrCategoryNotFound)
	}
	if c.IsDocumentedConversation {
		return RuleResponse{}, categoryerrors.ErrRulesNotAllowed
	}

	rule := &Rule{
		ID:               uuid.New(),
		CategoryID:       catID,
		RuleName:         name,
		BasePoints:       max(req.BasePoints, 0),
		IsIncremental:    req.IsIncremental,
		IncrementMinutes: req.IncrementMinutes,
		IncrementPoints:  req.IncrementPoints,
		Notes:            req.Notes,
	}
	if err := s.repo.CreateRule(ctx, rule); err != nil {
		s.logger.Error("create rule failed", zap.String("request_id", rid), zap.Error(err))
		return RuleResponse{}, mapRepositoryError(err, categoryerrors.ErrCategoryNotFound)
	}

	s.logger.Info("create rule success",
		zap.String("request_id", rid),
		zap.String("category_id", categoryID),
		zap.String("rule_id", rule.ID.String()),
	)
	return mapRule(*rule), nil
}

func (s *service) DeleteRule(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return categoryerrors.ErrInvalidRuleID
	}
	if err := s.repo.DeleteRule(ctx, id); err != nil {
		return mapRepositoryError(err, categoryerrors.ErrRuleNotFound)
	}
	s.logger.Info("delete rule success", zap.String("rule_id", id))
	return nil
}

func mapCategory(c Category) CategoryResponse {
	return CategoryResponse{
		ID:                       c.ID.String(),
		Name:                     c.Name,
		DefaultPoints:            c.DefaultPoints,
		IsActive:                 c.IsActive,
		IsDocumentedConversation: c.IsDocumentedConversation,
	}
}

func mapRule(r Rule) RuleResponse {
	resp := RuleResponse{
		ID:               r.ID.String(),
		CategoryID:       r.CategoryID.String(),
		RuleName:         r.RuleName,
		BasePoints:       r.BasePoints,
		IsIncremental:    r.IsIncremental,
		IncrementMinutes: r.IncrementMinutes,
		IncrementPoints:  r.IncrementPoints,
		Handbook:         Handbook(r.RuleName),
	}
	if r.Notes != nil {
		resp.Notes = *r.Notes
	}
	return resp
}
