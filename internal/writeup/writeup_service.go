package writeup

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-writeup/internal/category"
	categoryerrors "go-writeup/internal/category/errors"
	"go-writeup/internal/employee"
	employeeerrors "go-writeup/internal/employee/errors"
	"go-writeup/internal/events"
	"go-writeup/internal/notify"
	"go-writeup/internal/shared/contextutil"
	"go-writeup/internal/standing"
	writeuperrors "go-writeup/internal/writeup/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultBrowseLimit = 25
	maxBrowseLimit     = 200
)

//go:generate mockgen -source=writeup_service.go -destination=mock/writeup_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateWriteUpRequest) (CreateWriteUpResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]WriteUpResponse, error)
	GetByID(ctx context.Context, id string) (WriteUpResponse, error)
	Browse(ctx context.Context, q BrowseQuery) (BrowseResult, error)
	Packet(ctx context.Context, id string) (string, error)
	PacketPDF(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) (DeleteWriteUpResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	employees  employee.Repository
	categories category.Repository
	publisher  notify.Publisher
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	categories category.Repository,
	publisher notify.Publisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("writeup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("writeup.service")
	}
	if publisher == nil {
		publisher = notify.NewNoopPublisher()
	}
	return &service{
		db:         db,
		repo:       repo,
		employees:  employees,
		categories: categories,
		publisher:  publisher,
		logger:     l,
	}
}

func parseDate(s string, invalid error) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, invalid
	}
	return &d, nil
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// draft is a validated request with its catalog lookups resolved.
type draft struct {
	employee *employee.Employee
	category *category.Category
	rule     *category.Rule
	incident time.Time
	signed   *time.Time
}

func (s *service) resolve(ctx context.Context, req CreateWriteUpRequest) (draft, error) {
	var d draft

	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return d, employeeerrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(req.CategoryID); err != nil {
		return d, categoryerrors.ErrInvalidCategoryID
	}

	incident, err := parseDate(req.IncidentDate, writeuperrors.ErrInvalidIncidentDate)
	if err != nil {
		return d, err
	}
	if incident == nil {
		t := today()
		incident = &t
	}
	d.incident = *incident

	if d.signed, err = parseDate(req.SignedDate, writeuperrors.ErrInvalidSignedDate); err != nil {
		return d, err
	}

	emp, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		return d, notFoundAs(err, employeeerrors.ErrEmployeeNotFound)
	}
	if !emp.IsActive() {
		return d, employeeerrors.ErrEmployeeInactive
	}
	d.employee = emp

	cat, err := s.categories.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return d, notFoundAs(err, categoryerrors.ErrCategoryNotFound)
	}
	if !cat.IsActive {
		return d, writeuperrors.ErrCategoryInactive
	}
	d.category = cat

	// Documented conversations carry no rule and no points.
	if cat.IsDocumentedConversation {
		if strings.TrimSpace(req.Reason) == "" {
			return d, writeuperrors.ErrReasonRequired
		}
		return d, nil
	}

	if strings.TrimSpace(req.RuleID) == "" {
		return d, writeuperrors.ErrRuleRequired
	}
	if _, err := uuid.Parse(req.RuleID); err != nil {
		return d, categoryerrors.ErrInvalidRuleID
	}
	rule, err := s.categories.FindRuleByID(ctx, req.RuleID)
	if err != nil {
		return d, notFoundAs(err, categoryerrors.ErrRuleNotFound)
	}
	if rule.CategoryID != cat.ID {
		return d, writeuperrors.ErrRuleCategoryMismatch
	}
	d.rule = rule
	return d, nil
}

func (d draft) build(req CreateWriteUpRequest, actor string) *WriteUp {
	in := standing.PointInput{
		DocumentedConversation: d.category.IsDocumentedConversation,
		Override:               req.PointsOverride,
	}
	w := &WriteUp{
		ID:                       uuid.New(),
		EmployeeID:               d.employee.ID,
		CategoryID:               d.category.ID,
		IncidentDate:             &d.incident,
		Reason:                   strings.TrimSpace(req.Reason),
		ManagerNotes:             strings.TrimSpace(req.ManagerNotes),
		SecondaryLeadWitness:     strings.TrimSpace(req.SecondaryLeadWitness),
		CorrectiveActions:        strings.TrimSpace(req.CorrectiveActions),
		TeamMemberComments:       strings.TrimSpace(req.TeamMemberComments),
		TeamMemberSignature:      strings.TrimSpace(req.TeamMemberSignature),
		LeaderSignature:          strings.TrimSpace(req.LeaderSignature),
		SecondaryLeaderSignature: strings.TrimSpace(req.SecondaryLeaderSignature),
		SignedDate:               d.signed,
		CreatedBy:                actor,
		Employee:                 &EmployeeRef{ID: d.employee.ID, Name: d.employee.Name},
		Category: &CategoryRef{
			ID:                       d.category.ID,
			Name:                     d.category.Name,
			IsDocumentedConversation: d.category.IsDocumentedConversation,
		},
	}

	if d.rule != nil {
		ruleID := d.rule.ID
		w.RuleID = &ruleID
		in.BasePoints = d.rule.BasePoints
		in.Incremental = d.rule.IsIncremental
		if w.Reason == "" {
			w.Reason = d.rule.RuleName
		}
		if d.rule.IsIncremental {
			minutes := 0
			if req.MinutesLate != nil {
				minutes = *req.MinutesLate
			}
			w.MinutesLate = &minutes
			in.MinutesLate = minutes
		}
	}

	w.Points = standing.ResolvePoints(in)
	w.PointsOverridden = req.PointsOverride != nil && !d.category.IsDocumentedConversation
	return w
}

// Create prices and stores a write-up, then compares the employee's standing
// in the incident's quarter before and after.
func (s *service) Create(ctx context.Context, req CreateWriteUpRequest) (CreateWriteUpResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	actor := contextutil.GetUsername(ctx)

	d, err := s.resolve(ctx, req)
	if err != nil {
		s.logger.Warn("create write-up rejected",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return CreateWriteUpResponse{}, err
	}
	w := d.build(req, actor)

	s.logger.Debug("create write-up requested",
		zap.String("request_id", rid),
		zap.String("employee_id", w.EmployeeID.String()),
		zap.String("category", d.category.Name),
		zap.Int("points", w.Points),
	)

	before, err := s.repo.FindByEmployee(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("load standing before write-up failed", zap.String("request_id", rid), zap.Error(err))
		return CreateWriteUpResponse{}, mapRepositoryError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create write-up begin tx failed", zap.Error(err))
		return CreateWriteUpResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, w); err != nil {
		s.logger.Error("create write-up persist failed", zap.String("request_id", rid), zap.Error(err))
		return CreateWriteUpResponse{}, mapRepositoryError(err)
	}

	after, err := qtx.FindByEmployee(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Warn("reload standing after write-up failed, using snapshot",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		after = append(append([]WriteUp{}, before...), *w)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create write-up commit failed", zap.Error(err))
		return CreateWriteUpResponse{}, err
	}

	quarterKey := standing.QuarterKey(d.incident)
	alert, alerted := standing.EvaluateTransition(d.employee.Name, before, after, quarterKey)
	report := standing.Report(after, quarterKey)

	s.publishLogged(ctx, *w)
	if alerted {
		s.publishAlert(ctx, w.EmployeeID.String(), alert)
	}

	s.logger.Info("create write-up success",
		zap.String("request_id", rid),
		zap.String("writeup_id", w.ID.String()),
		zap.String("quarter", quarterKey),
		zap.String("tier", string(report.Tier)),
		zap.Bool("alerted", alerted),
	)

	return CreateWriteUpResponse{
		WriteUp:  mapToResponse(*w),
		Standing: snapshot(report),
		Alerted:  alerted,
	}, nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]WriteUpResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, notFoundAs(err, employeeerrors.ErrEmployeeNotFound)
	}
	ws, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list write-ups failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(ws), nil
}

func (s *service) find(ctx context.Context, id string) (*WriteUp, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, writeuperrors.ErrInvalidWriteUpID
	}
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return w, nil
}

func (s *service) GetByID(ctx context.Context, id string) (WriteUpResponse, error) {
	w, err := s.find(ctx, id)
	if err != nil {
		return WriteUpResponse{}, err
	}
	return mapToResponse(*w), nil
}

func (s *service) Browse(ctx context.Context, q BrowseQuery) (BrowseResult, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultBrowseLimit
	}
	limit = min(limit, maxBrowseLimit)
	offset := max(q.Offset, 0)

	ws, total, err := s.repo.FindPage(ctx, offset, limit)
	if err != nil {
		s.logger.Error("browse write-ups failed", zap.Int("offset", offset), zap.Error(err))
		return BrowseResult{}, mapRepositoryError(err)
	}

	res := BrowseResult{
		Items:  mapToListResponse(ws),
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}
	if next := offset + len(ws); len(ws) > 0 && int64(next) < total {
		res.NextOffset = &next
	}
	return res, nil
}

func (s *service) Packet(ctx context.Context, id string) (string, error) {
	w, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return RenderPacket(*w, today()), nil
}

func (s *service) PacketPDF(ctx context.Context, id string) ([]byte, error) {
	w, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := RenderPacketPDF(*w, today())
	if err != nil {
		s.logger.Error("render write-up pdf failed", zap.String("writeup_id", id), zap.Error(err))
		return nil, err
	}
	return out, nil
}

// Delete removes one write-up. The quarter watched is the deleted
// write-up's own, or the current quarter when it had no date.
func (s *service) Delete(ctx context.Context, id string) (DeleteWriteUpResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	w, err := s.find(ctx, id)
	if err != nil {
		return DeleteWriteUpResponse{}, err
	}
	employeeID := w.EmployeeID.String()

	before, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("load standing before delete failed", zap.String("request_id", rid), zap.Error(err))
		return DeleteWriteUpResponse{}, mapRepositoryError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete write-up begin tx failed", zap.Error(err))
		return DeleteWriteUpResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete write-up failed", zap.String("writeup_id", id), zap.Error(err))
		return DeleteWriteUpResponse{}, mapRepositoryError(err)
	}

	after, err := qtx.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Warn("reload standing after delete failed, using snapshot", zap.Error(err))
		after = without(before, w.ID)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete write-up commit failed", zap.Error(err))
		return DeleteWriteUpResponse{}, err
	}

	quarterKey := standing.CurrentQuarterKey(time.Now())
	if day, ok := w.IncidentDay(); ok {
		quarterKey = standing.QuarterKey(day)
	}

	name := ""
	if w.Employee != nil {
		name = w.Employee.Name
	}
	alert, alerted := standing.EvaluateTransition(name, before, after, quarterKey)
	if alerted {
		s.publishAlert(ctx, employeeID, alert)
	}

	s.logger.Info("delete write-up success",
		zap.String("request_id", rid),
		zap.String("writeup_id", id),
		zap.Bool("alerted", alerted),
	)

	return DeleteWriteUpResponse{
		Deleted:  true,
		Standing: snapshot(standing.Report(after, quarterKey)),
		Alerted:  alerted,
	}, nil
}

func without(ws []WriteUp, id uuid.UUID) []WriteUp {
	out := make([]WriteUp, 0, len(ws))
	for _, w := range ws {
		if w.ID != id {
			out = append(out, w)
		}
	}
	return out
}

// Notifications never fail the request that triggered them.
func (s *service) publishLogged(ctx context.Context, w WriteUp) {
	resp := mapToResponse(w)
	ev := events.WriteUpLoggedEvent{
		EventType:       "writeup_logged",
		RequestID:       contextutil.GetRequestID(ctx),
		WriteUpID:       resp.ID,
		EmployeeID:      resp.EmployeeID,
		EmployeeName:    resp.EmployeeName,
		CategoryName:    resp.CategoryName,
		IncidentDate:    resp.IncidentDate,
		Reason:          w.Reason,
		Leader:          w.LeaderSignature,
		SecondaryLeader: w.SecondaryLeaderSignature,
		Points:          w.Points,
		CreatedBy:       w.CreatedBy,
		OccurredAt:      time.Now().UTC(),
	}
	if err := s.publisher.PublishWriteUpLogged(ctx, ev); err != nil {
		s.logger.Warn("publish write-up logged failed",
			zap.String("writeup_id", ev.WriteUpID),
			zap.Error(err),
		)
	}
}

func (s *service) publishAlert(ctx context.Context, employeeID string, alert standing.AlertEvent) {
	ev := events.NewStandingAlertEvent(employeeID, alert, contextutil.GetRequestID(ctx))
	if err := s.publisher.PublishStandingAlert(ctx, ev); err != nil {
		s.logger.Warn("publish standing alert failed",
			zap.String("employee_id", employeeID),
			zap.String("after_tier", ev.AfterTier),
			zap.Error(err),
		)
	}
}

func snapshot(r standing.StandingReport) StandingSnapshot {
	return StandingSnapshot{
		Quarter:       r.QuarterKey,
		QuarterPoints: r.QuarterPoints,
		Tier:          r.Tier,
		Color:         r.Color,
	}
}

func mapToResponse(w WriteUp) WriteUpResponse {
	resp := WriteUpResponse{
		ID:                       w.ID.String(),
		EmployeeID:               w.EmployeeID.String(),
		CategoryID:               w.CategoryID.String(),
		Points:                   w.Points,
		PointsOverridden:         w.PointsOverridden,
		MinutesLate:              w.MinutesLate,
		Reason:                   w.Reason,
		ManagerNotes:             w.ManagerNotes,
		SecondaryLeadWitness:     w.SecondaryLeadWitness,
		CorrectiveActions:        w.CorrectiveActions,
		TeamMemberComments:       w.TeamMemberComments,
		TeamMemberSignature:      w.TeamMemberSignature,
		LeaderSignature:          w.LeaderSignature,
		SecondaryLeaderSignature: w.SecondaryLeaderSignature,
		CreatedBy:                w.CreatedBy,
	}
	if w.RuleID != nil {
		resp.RuleID = w.RuleID.String()
	}
	if w.Employee != nil {
		resp.EmployeeName = w.Employee.Name
	}
	if w.Category != nil {
		resp.CategoryName = w.Category.Name
	}
	if day, ok := w.IncidentDay(); ok {
		resp.IncidentDate = day.Format(dateLayout)
		resp.Quarter = standing.QuarterKey(day)
	}
	if w.SignedDate != nil {
		resp.SignedDate = w.SignedDate.Format(dateLayout)
	}
	if !w.CreatedAt.IsZero() {
		resp.CreatedAt = w.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(ws []WriteUp) []WriteUpResponse {
	res := make([]WriteUpResponse, len(ws))
	for i, w := range ws {
		res[i] = mapToResponse(w)
	}
	return res
}
