package writeup_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-writeup/internal/category"
	categoryMock "go-writeup/internal/category/mock"
	"go-writeup/internal/employee"
	employeeerrors "go-writeup/internal/employee/errors"
	employeeMock "go-writeup/internal/employee/mock"
	"go-writeup/internal/events"
	notifyMock "go-writeup/internal/notify/mock"
	"go-writeup/internal/shared/contextutil"
	"go-writeup/internal/standing"
	"go-writeup/internal/writeup"
	writeuperrors "go-writeup/internal/writeup/errors"
	writeupMock "go-writeup/internal/writeup/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db         *sql.DB
	sqlMock    sqlmock.Sqlmock
	service    writeup.Service
	repo       *writeupMock.MockRepository
	employees  *employeeMock.MockRepository
	categories *categoryMock.MockRepository
	publisher  *notifyMock.MockPublisher
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := writeupMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockRepository(ctrl)
	categories := categoryMock.NewMockRepository(ctrl)
	publisher := notifyMock.NewMockPublisher(ctrl)

	svc := writeup.NewService(db, repo, employees, categories, publisher)

	return &serviceDeps{
		db:         db,
		sqlMock:    sqlMock,
		service:    svc,
		repo:       repo,
		employees:  employees,
		categories: categories,
		publisher:  publisher,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func day(s string) *time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return &d
}

type fixture struct {
	emp        *employee.Employee
	attendance *category.Category
	rule       *category.Rule
	late       *category.Rule
	talk       *category.Category
}

func newFixture() fixture {
	attendance := &category.Category{ID: uuid.New(), Name: "Attendance", IsActive: true}
	return fixture{
		emp:        &employee.Employee{ID: uuid.New(), Name: "Jordan Blake", Status: employee.StatusActive},
		attendance: attendance,
		rule:       &category.Rule{ID: uuid.New(), CategoryID: attendance.ID, RuleName: "No call no show", BasePoints: 4},
		late:       &category.Rule{ID: uuid.New(), CategoryID: attendance.ID, RuleName: "Late by 6 or more minutes", IsIncremental: true},
		talk:       &category.Category{ID: uuid.New(), Name: "Documented Conversation", IsActive: true, IsDocumentedConversation: true},
	}
}

func (f fixture) expectLookups(deps *serviceDeps, cat *category.Category, rule *category.Rule) {
	deps.employees.EXPECT().FindByID(gomock.Any(), f.emp.ID.String()).Return(f.emp, nil)
	deps.categories.EXPECT().FindCategoryByID(gomock.Any(), cat.ID.String()).Return(cat, nil)
	if rule != nil {
		deps.categories.EXPECT().FindRuleByID(gomock.Any(), rule.ID.String()).Return(rule, nil)
	}
}

func TestWriteUpService_Create(t *testing.T) {
	ctx := contextutil.WithActor(contextutil.WithRequestID(context.Background(), "req-1"), "lead.sam", "manager")

	t.Run("success - crossing 10 points alerts with quarter total", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		prior := writeup.WriteUp{ID: uuid.New(), EmployeeID: f.emp.ID, Points: 6, IncidentDate: day("2025-02-01")}
		f.expectLookups(deps, f.attendance, f.rule)

		var created writeup.WriteUp
		deps.repo.EXPECT().FindByEmployee(gomock.Any(), f.emp.ID.String()).Return([]writeup.WriteUp{prior}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, w *writeup.WriteUp) error {
				assert.Equal(t, 4, w.Points)
				assert.Equal(t, "No call no show", w.Reason)
				assert.Equal(t, "lead.sam", w.CreatedBy)
				require.NotNil(t, w.RuleID)
				assert.Equal(t, f.rule.ID, *w.RuleID)
				created = *w
				return nil
			})
		deps.repo.EXPECT().
			FindByEmployee(gomock.Any(), f.emp.ID.String()).
			DoAndReturn(func(ctx context.Context, id string) ([]writeup.WriteUp, error) {
				return []writeup.WriteUp{created, prior}, nil
			})

		deps.publisher.EXPECT().
			PublishWriteUpLogged(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev events.WriteUpLoggedEvent) error {
				assert.Equal(t, "Jordan Blake", ev.EmployeeName)
				assert.Equal(t, "Attendance", ev.CategoryName)
				assert.Equal(t, "2025-03-10", ev.IncidentDate)
				assert.Equal(t, "Casey Lee", ev.Leader)
				assert.Equal(t, "req-1", ev.RequestID)
				return nil
			})
		deps.publisher.EXPECT().
			PublishStandingAlert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev events.StandingAlertEvent) error {
				assert.Equal(t, 10, ev.QuarterPoints)
				assert.Equal(t, "2025 Q1", ev.QuarterKey)
				assert.Equal(t, string(standing.TierGoodStanding), ev.BeforeTier)
				assert.Equal(t, string(standing.TierBorderline), ev.AfterTier)
				assert.Equal(t, f.emp.ID.String(), ev.EmployeeID)
				return nil
			})

		resp, err := deps.service.Create(ctx, writeup.CreateWriteUpRequest{
			EmployeeID:      f.emp.ID.String(),
			CategoryID:      f.attendance.ID.String(),
			RuleID:          f.rule.ID.String(),
			IncidentDate:    "2025-03-10",
			LeaderSignature: "Casey Lee",
		})

		assert.NoError(t, err)
		assert.True(t, resp.Alerted)
		assert.Equal(t, 10, resp.Standing.QuarterPoints)
		assert.Equal(t, standing.TierBorderline, resp.Standing.Tier)
		assert.Equal(t, "2025 Q1", resp.Standing.Quarter)
		assert.Equal(t, "2025 Q1", resp.WriteUp.Quarter)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("publisher failure does not fail create", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		f.expectLookups(deps, f.attendance, f.rule)
		deps.repo.EXPECT().FindByEmployee(gomock.Any(), gomock.Any()).Return(nil, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().FindByEmployee(gomock.Any(), gomock.Any()).Return(nil, errors.New("read failed"))
		deps.publisher.EXPECT().PublishWriteUpLogged(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		resp, err := deps.service.Create(ctx, writeup.CreateWriteUpRequest{
			EmployeeID:   f.emp.ID.String(),
			CategoryID:   f.attendance.ID.String(),
			RuleID:       f.rule.ID.String(),
			IncidentDate: "2025-05-02",
		})

		assert.NoError(t, err)
		assert.False(t, resp.Alerted)
		// after-list falls back to before + the new write-up
		assert.Equal(t, 4, resp.Standing.QuarterPoints)
		assert.Equal(t, standing.TierGoodStanding, resp.Standing.Tier)
	})

	t.Run("late arrival is priced from minutes", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		f.expectLookups(deps, f.attendance, f.late)
		deps.repo.EXPECT().FindByEmployee(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, w *writeup.WriteUp) error {
				assert.Equal(t, 2, w.Points)
				require.NotNil(t, w.MinutesLate)
				assert.Equal(t, 17, *w.MinutesLate)
				assert.False(t, w.PointsOverridden)
				return nil
			})
		deps.publisher.EXPECT().PublishWriteUpLogged(gomock.Any(), gomock.Any()).Return(nil)

		minutes := 17
		resp, err := deps.service.Create(ctx, writeup.CreateWriteUpRequest{
			EmployeeID:   f.emp.ID.String(),
			CategoryID:   f.attendance.ID.String(),
			RuleID:       f.late.ID.String(),
			IncidentDate: "2025-05-02",
			MinutesLate:  &minutes,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.WriteUp.Points)
	})

	t.Run("documented conversation is zero points without rule lookup", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		f.expectLookups(deps, f.talk, nil)
		deps.repo.EXPECT().FindByEmployee(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, w *writeup.WriteUp) error {
				assert.Equal(t, 0, w.Points)
				assert.Nil(t, w.RuleID)
				assert.Equal(t, "Schedule swap etiquette", w.Reason)
				return nil
			})
		deps.publisher.EXPECT().PublishWriteUpLogged(gomock.Any(), gomock.Any()).Return(nil)

		override := 15
		_, err := deps.service.Create(ctx, writeup.CreateWriteUpRequest{
			EmployeeID:     f.emp.ID.String(),
			CategoryID:     f.talk.ID.String(),
			RuleID:         f.rule.ID.String(),
			IncidentDate:   "2025-05-02",
			Reason:         "Schedule swap etiquette",
			PointsOverride: &override,
		})

		assert.NoError(t, err)
	})

	t.Run("documented conversation requires a reason", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		f.expectLookups(deps, f.talk, nil)

		_, err := deps.service.Create(ctx, writeup.CreateWriteUpRequest{
			EmployeeID: f.emp.ID.String(),
			CategoryID: f.talk.ID.String(),
			Reason:     "   ",
		})

		assert.ErrorIs(t, err, writeuperrors.ErrReasonRequired)
	})

	t.Run("rule from another category is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		foreign := &category.Rule{ID: uuid.New(), CategoryID: uuid.New(), RuleName: "Other", BasePoints: 3}
		f.expectLookups(deps, f.attendance, foreign)

		_, err := deps.service.Create(ctx, writeup.CreateWriteUpRequest{
			EmployeeID: f.emp.ID.String(),
			CategoryID: f.attendance.ID.String(),
			RuleID:     foreign.ID.String(),
		})

		assert.ErrorIs(t, err, writeuperrors.ErrRuleCategoryMismatch)
	})

	t.Run("inactive employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		f.emp.Status = employee.StatusInactive

		deps.employees.EXPECT().FindByID(gomock.Any(), f.emp.ID.String()).Return(f.emp, nil)

		_, err := deps.service.Create(ctx, writeup.CreateWriteUpRequest{
			EmployeeID: f.emp.ID.String(),
			CategoryID: f.attendance.ID.String(),
			RuleID:     f.rule.ID.String(),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeInactive)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		deps.employees.EXPECT().FindByID(gomock.Any(), f.emp.ID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, writeup.CreateWriteUpRequest{
			EmployeeID: f.emp.ID.String(),
			CategoryID: f.attendance.ID.String(),
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("bad incident date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, writeup.CreateWriteUpRequest{
			EmployeeID:   uuid.NewString(),
			CategoryID:   uuid.NewString(),
			IncidentDate: "03/10/2025",
		})

		assert.ErrorIs(t, err, writeuperrors.ErrInvalidIncidentDate)
	})

	t.Run("rollback on persist error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		f.expectLookups(deps, f.attendance, f.rule)
		deps.repo.EXPECT().FindByEmployee(gomock.Any(), gomock.Any()).Return(nil, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := deps.service.Create(ctx, writeup.CreateWriteUpRequest{
			EmployeeID:   f.emp.ID.String(),
			CategoryID:   f.attendance.ID.String(),
			RuleID:       f.rule.ID.String(),
			IncidentDate: "2025-05-02",
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestWriteUpService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("suspension to borderline still alerts", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		empID := uuid.New()
		keep := writeup.WriteUp{ID: uuid.New(), EmployeeID: empID, Points: 12, IncidentDate: day("2025-04-03")}
		gone := writeup.WriteUp{
			ID: uuid.New(), EmployeeID: empID, Points: 9, IncidentDate: day("2025-05-20"),
			Employee: &writeup.EmployeeRef{ID: empID, Name: "Riley Park"},
		}

		deps.repo.EXPECT().FindByID(gomock.Any(), gone.ID.String()).Return(&gone, nil)
		deps.repo.EXPECT().FindByEmployee(gomock.Any(), empID.String()).Return([]writeup.WriteUp{gone, keep}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(gomock.Any(), gone.ID.String()).Return(nil)
		deps.repo.EXPECT().FindByEmployee(gomock.Any(), empID.String()).Return([]writeup.WriteUp{keep}, nil)
		deps.publisher.EXPECT().
			PublishStandingAlert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev events.StandingAlertEvent) error {
				assert.Equal(t, string(standing.TierSuspension), ev.BeforeTier)
				assert.Equal(t, string(standing.TierBorderline), ev.AfterTier)
				assert.Equal(t, 12, ev.QuarterPoints)
				assert.Equal(t, "Riley Park", ev.EmployeeName)
				return nil
			})

		resp, err := deps.service.Delete(ctx, gone.ID.String())

		assert.NoError(t, err)
		assert.True(t, resp.Deleted)
		assert.True(t, resp.Alerted)
		assert.Equal(t, "2025 Q2", resp.Standing.Quarter)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("dropping to good standing stays quiet", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		empID := uuid.New()
		gone := writeup.WriteUp{ID: uuid.New(), EmployeeID: empID, Points: 12, IncidentDate: day("2025-04-03")}

		deps.repo.EXPECT().FindByID(gomock.Any(), gone.ID.String()).Return(&gone, nil)
		deps.repo.EXPECT().FindByEmployee(gomock.Any(), empID.String()).Return([]writeup.WriteUp{gone}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(gomock.Any(), gone.ID.String()).Return(nil)
		deps.repo.EXPECT().FindByEmployee(gomock.Any(), empID.String()).Return(nil, nil)

		resp, err := deps.service.Delete(ctx, gone.ID.String())

		assert.NoError(t, err)
		assert.False(t, resp.Alerted)
		assert.Equal(t, standing.TierGoodStanding, resp.Standing.Tier)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, writeuperrors.ErrWriteUpNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Delete(ctx, "nope")

		assert.ErrorIs(t, err, writeuperrors.ErrInvalidWriteUpID)
	})
}

func TestWriteUpService_Browse(t *testing.T) {
	ctx := context.Background()

	t.Run("more pages report next offset", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		page := []writeup.WriteUp{{ID: uuid.New()}, {ID: uuid.New()}}
		deps.repo.EXPECT().FindPage(gomock.Any(), 10, 2).Return(page, int64(15), nil)

		res, err := deps.service.Browse(ctx, writeup.BrowseQuery{Offset: 10, Limit: 2})

		assert.NoError(t, err)
		assert.Len(t, res.Items, 2)
		require.NotNil(t, res.NextOffset)
		assert.Equal(t, 12, *res.NextOffset)
	})

	t.Run("last page has no next offset and default limit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().FindPage(gomock.Any(), 0, 25).Return([]writeup.WriteUp{{ID: uuid.New()}}, int64(1), nil)

		res, err := deps.service.Browse(ctx, writeup.BrowseQuery{})

		assert.NoError(t, err)
		assert.Nil(t, res.NextOffset)
		assert.Equal(t, 25, res.Limit)
	})
}

func TestWriteUpService_ListByEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("undated write-ups are listed without a quarter", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		empID := uuid.New()
		deps.employees.EXPECT().FindByID(gomock.Any(), empID.String()).Return(&employee.Employee{ID: empID}, nil)
		deps.repo.EXPECT().FindByEmployee(gomock.Any(), empID.String()).Return([]writeup.WriteUp{
			{ID: uuid.New(), EmployeeID: empID, Points: 3, IncidentDate: day("2025-01-09")},
			{ID: uuid.New(), EmployeeID: empID, Points: 2},
		}, nil)

		res, err := deps.service.ListByEmployee(ctx, empID.String())

		assert.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "2025 Q1", res[0].Quarter)
		assert.Empty(t, res[1].Quarter)
		assert.Empty(t, res[1].IncidentDate)
	})
}
