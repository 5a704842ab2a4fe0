package standingreport

import (
	"context"
	"errors"
	"math"
	"slices"
	"sort"
	"strings"
	"time"

	"go-writeup/internal/employee"
	employeeerrors "go-writeup/internal/employee/errors"
	"go-writeup/internal/standing"
	standingreporterrors "go-writeup/internal/standingreport/errors"
	"go-writeup/internal/writeup"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=standingreport_service.go -destination=mock/standingreport_service_mock.go -package=mock
type Service interface {
	ComputeStandingReport(ctx context.Context, employeeID, quarterKey string) (ReportResponse, error)
	ListByStanding(ctx context.Context, quarterKey, tier string) ([]StandingRow, error)
	ListQuarters(ctx context.Context) ([]string, error)
	Tiers() []TierOption
}

type service struct {
	employees employee.Repository
	writeups  writeup.Repository
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(employees employee.Repository, writeups writeup.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("standing.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("standing.service")
	}
	return &service{
		employees: employees,
		writeups:  writeups,
		now:       time.Now,
		logger:    l,
	}
}

// quarter normalises a user supplied key; empty means the current quarter.
func (s *service) quarter(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return standing.CurrentQuarterKey(s.now()), nil
	}
	q, ok := standing.ParseQuarterKey(key)
	if !ok {
		return "", standingreporterrors.ErrInvalidQuarter
	}
	return q.Key(), nil
}

func (s *service) ComputeStandingReport(ctx context.Context, employeeID, quarterKey string) (ReportResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return ReportResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	key, err := s.quarter(quarterKey)
	if err != nil {
		return ReportResponse{}, err
	}

	emp, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReportResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return ReportResponse{}, err
	}

	ws, err := s.writeups.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("load write-ups for report failed", zap.String("employee_id", employeeID), zap.Error(err))
		return ReportResponse{}, err
	}

	return ReportResponse{
		EmployeeID:         employeeID,
		EmployeeName:       emp.Name,
		UnattributedPoints: standing.UnattributedPoints(ws),
		StandingReport:     standing.Report(ws, key),
	}, nil
}

// ListByStanding only looks at active employees. Ties on points sort by name.
func (s *service) ListByStanding(ctx context.Context, quarterKey, tier string) ([]StandingRow, error) {
	key, err := s.quarter(quarterKey)
	if err != nil {
		return nil, err
	}
	want, ok := standing.ParseTier(strings.TrimSpace(tier))
	if !ok {
		return nil, standingreporterrors.ErrInvalidTier
	}

	emps, err := s.employees.FindActive(ctx)
	if err != nil {
		s.logger.Error("list active employees failed", zap.Error(err))
		return nil, err
	}
	ids := make([]string, len(emps))
	for i, e := range emps {
		ids[i] = e.ID.String()
	}

	ws, err := s.writeups.FindByEmployeeIDs(ctx, ids)
	if err != nil {
		s.logger.Error("load write-ups for standing list failed", zap.Error(err))
		return nil, err
	}
	byEmployee := make(map[uuid.UUID][]writeup.WriteUp, len(emps))
	for _, w := range ws {
		byEmployee[w.EmployeeID] = append(byEmployee[w.EmployeeID], w)
	}

	rows := make([]StandingRow, 0)
	for _, e := range emps {
		points := standing.PointsInQuarter(byEmployee[e.ID], key)
		if standing.Classify(points) != want {
			continue
		}
		rows = append(rows, StandingRow{
			EmployeeID:    e.ID.String(),
			EmployeeName:  e.Name,
			QuarterPoints: points,
			Tier:          want,
			Color:         want.Color(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].QuarterPoints != rows[j].QuarterPoints {
			return rows[i].QuarterPoints > rows[j].QuarterPoints
		}
		return strings.ToLower(rows[i].EmployeeName) < strings.ToLower(rows[j].EmployeeName)
	})
	return rows, nil
}

// ListQuarters returns every quarter that has a dated write-up plus the
// current one, newest first.
func (s *service) ListQuarters(ctx context.Context) ([]string, error) {
	ws, err := s.writeups.FindScored(ctx)
	if err != nil {
		s.logger.Error("load write-ups for quarters failed", zap.Error(err))
		return nil, err
	}
	keys := standing.QuarterKeys(ws)
	current := standing.CurrentQuarterKey(s.now())
	if !slices.Contains(keys, current) {
		keys = append(keys, current)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return standing.CompareQuarterKeys(b, a)
	})
	return keys, nil
}

func (s *service) Tiers() []TierOption {
	tiers := standing.Tiers()
	out := make([]TierOption, 0, len(tiers))
	for _, t := range tiers {
		lo, hi, _ := t.Range()
		opt := TierOption{Tier: t, Color: t.Color(), Min: lo}
		if hi != math.MaxInt {
			opt.Max = &hi
		}
		out = append(out, opt)
	}
	return out
}
