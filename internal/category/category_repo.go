package category

import (
	"context"
	"database/sql"

	"go-writeup/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=category_repo.go -destination=mock/category_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindCategories(ctx context.Context, includeInactive bool) ([]Category, error)
	FindCategoryByID(ctx context.Context, id string) (*Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategoryActive(ctx context.Context, id string, active bool) error
	DeleteCategory(ctx context.Context, id string) error
	FindRules(ctx context.Context, categoryID string) ([]Rule, error)
	FindRuleByID(ctx context.Context, id string) (*Rule, error)
	CreateRule(ctx context.Context, r *Rule) error
	DeleteRule(ctx context.Context, id string) error
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

func (r *repository) FindCategories(ctx context.Context, includeInactive bool) ([]Category, error) {
	var cats []Category
	q := r.conn(ctx).Model(&Category{})
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *repository) FindCategoryByID(ctx context.Context, id string) (*Category, error) {
	var c Category
	if err := r.conn(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) CreateCategory(ctx context.Context, c *Category) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) UpdateCategoryActive(ctx context.Context, id string, active bool) error {
	res := r.conn(ctx).
		Model(&Category{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteCategory(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Category{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindRules(ctx context.Context, categoryID string) ([]Rule, error) {
	var rules []Rule
	err := r.conn(ctx).
		Where("category_id = ?", categoryID).
		Order("rule_name ASC").
		Find(&rules).Error
	return rules, err
}

func (r *repository) FindRuleByID(ctx context.Context, id string) (*Rule, error) {
	var rule Rule
	if err := r.conn(ctx).First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *repository) CreateRule(ctx context.Context, rule *Rule) error {
	return r.conn(ctx).Create(rule).Error
}

func (r *repository) DeleteRule(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Rule{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
