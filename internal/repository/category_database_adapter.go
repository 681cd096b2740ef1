package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizcafe/internal/domain"
	"quizcafe/internal/repository/models"
)

const (
	listCategoriesQuery = `SELECT id "id", type "type" FROM categories ORDER BY id`
	categoryByIDQuery   = `SELECT id "id", type "type" FROM categories WHERE id = :1`
	categoryByTypeQuery = `SELECT id "id", type "type" FROM categories WHERE type = :1`
	nextCategoryIDQuery = `SELECT categories_seq.NEXTVAL FROM dual`
	insertCategoryQuery = `INSERT INTO categories (id, type) VALUES (:1, :2)`
)

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx
type CategoryDatabaseAdapter struct {
	db DBTX
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db DBTX) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// ListCategories returns every category ordered by id
func (r *CategoryDatabaseAdapter) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var rows []models.Category
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, listCategoriesQuery); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*domain.Category, len(rows))
	for i := range rows {
		categories[i] = toDomainCategory(&rows[i])
	}
	return categories, nil
}

func (r *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.getOne(ctx, categoryByIDQuery, id)
}

func (r *CategoryDatabaseAdapter) GetCategoryByType(ctx context.Context, categoryType string) (*domain.Category, error) {
	return r.getOne(ctx, categoryByTypeQuery, categoryType)
}

func (r *CategoryDatabaseAdapter) getOne(ctx context.Context, query string, arg any) (*domain.Category, error) {
	var row models.Category
	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return toDomainCategory(&row), nil
}

// CreateCategory inserts category and sets its ID from categories_seq
func (r *CategoryDatabaseAdapter) CreateCategory(ctx context.Context, category *domain.Category) error {
	db := GetExecutor(ctx, r.db)

	var id int64
	if err := db.GetContext(ctx, &id, nextCategoryIDQuery); err != nil {
		return fmt.Errorf("failed to allocate category id: %w", err)
	}
	if _, err := db.ExecContext(ctx, insertCategoryQuery, id, category.Type); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	category.ID = id
	return nil
}

func toDomainCategory(m *models.Category) *domain.Category {
	return &domain.Category{ID: m.ID, Type: m.Type}
}
