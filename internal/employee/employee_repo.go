package employee

import (
	"context"
	"database/sql"
	"strings"

	"go-writeup/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, error)
	FindActive(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteWriteUps(ctx context.Context, employeeID string) (int64, error)
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, error) {
	var emps []Employee
	q := r.conn(ctx).Model(&Employee{})
	if !filter.IncludeInactive {
		q = q.Where("status = ?", StatusActive)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	err := q.Order("name ASC").Find(&emps).Error
	return emps, err
}

func (r *repository) FindActive(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.conn(ctx).
		Where("status = ?", StatusActive).
		Order("name ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.conn(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteWriteUps removes every write-up of the employee. Called inside the
// same transaction as Delete so the cascade is all-or-nothing.
func (r *repository) DeleteWriteUps(ctx context.Context, employeeID string) (int64, error) {
	res := r.conn(ctx).Exec("DELETE FROM writeups WHERE employee_id = ?", employeeID)
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
