package writeup

import (
	"context"
	"database/sql"

	"go-writeup/internal/shared/dbtx"

	"gorm.io/gorm"
)

const chronological = "incident_date IS NULL, incident_date DESC, created_at DESC"

//go:generate mockgen -source=writeup_repo.go -destination=mock/writeup_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, w *WriteUp) error
	FindByID(ctx context.Context, id string) (*WriteUp, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]WriteUp, error)
	FindByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]WriteUp, error)
	FindPage(ctx context.Context, offset, limit int) ([]WriteUp, int64, error)
	FindScored(ctx context.Context) ([]WriteUp, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, w *WriteUp) error {
	return r.conn(ctx).Omit("Employee", "Category").Create(w).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*WriteUp, error) {
	var w WriteUp
	err := r.conn(ctx).
		Preload("Employee").
		Preload("Category").
		First(&w, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]WriteUp, error) {
	var ws []WriteUp
	err := r.conn(ctx).
		Preload("Category").
		Where("employee_id = ?", employeeID).
		Order(chronological).
		Find(&ws).Error
	return ws, err
}

func (r *repository) FindByEmployeeIDs(ctx context.Context, employeeIDs []string) ([]WriteUp, error) {
	var ws []WriteUp
	if len(employeeIDs) == 0 {
		return ws, nil
	}
	err := r.conn(ctx).
		Select("id", "employee_id", "points", "incident_date").
		Where("employee_id IN ?", employeeIDs).
		Find(&ws).Error
	return ws, err
}

// FindPage is the admin browser: every employee, newest incident first.
func (r *repository) FindPage(ctx context.Context, offset, limit int) ([]WriteUp, int64, error) {
	var (
		ws    []WriteUp
		total int64
	)
	if err := r.conn(ctx).Model(&WriteUp{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.conn(ctx).
		Preload("Employee").
		Preload("Category").
		Order(chronological).
		Offset(offset).
		Limit(limit).
		Find(&ws).Error
	return ws, total, err
}

// FindScored loads only the columns the standing engine reads.
func (r *repository) FindScored(ctx context.Context) ([]WriteUp, error) {
	var ws []WriteUp
	err := r.conn(ctx).
		Select("id", "employee_id", "points", "incident_date").
		Find(&ws).Error
	return ws, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&WriteUp{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
