package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// CategoryRepository implements trivia.CategoryStore over Postgres.
// Categories are seeded by migration and never written by the service.
type CategoryRepository struct {
	db Querier
}

var _ trivia.CategoryStore = (*CategoryRepository)(nil)

func NewCategoryRepository(db Querier) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListOrderedByType(ctx context.Context) ([]trivia.Category, error) {
	return r.list(ctx, "SELECT id, type FROM categories ORDER BY type")
}

func (r *CategoryRepository) ListAll(ctx context.Context) ([]trivia.Category, error) {
	return r.list(ctx, "SELECT id, type FROM categories")
}

func (r *CategoryRepository) list(ctx context.Context, sql string) ([]trivia.Category, error) {
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[trivia.Category])
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	return categories, nil
}
