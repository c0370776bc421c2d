package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Querier is the slice of pgxpool.Pool the repositories need. Narrowed so
// tests can substitute a fake connection.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const questionColumns = "id, question, answer, category, difficulty"

// QuestionRepository implements trivia.QuestionStore over Postgres.
type QuestionRepository struct {
	db Querier
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

func NewQuestionRepository(db Querier) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) ListOrderedByID(ctx context.Context) ([]trivia.Question, error) {
	return r.list(ctx, "SELECT "+questionColumns+" FROM questions ORDER BY id")
}

func (r *QuestionRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM questions").Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int) (trivia.Question, error) {
	rows, err := r.db.Query(ctx, "SELECT "+questionColumns+" FROM questions WHERE id = $1", id)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	q, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[trivia.Question])
	if err != nil {
		return trivia.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

func (r *QuestionRepository) Insert(ctx context.Context, q trivia.Question) (trivia.Question, error) {
	rows, err := r.db.Query(ctx,
		"INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING "+questionColumns,
		q.Question, q.Answer, q.Category, q.Difficulty)
	if err != nil {
		return trivia.Question{}, fmt.Errorf("insert question: %w", err)
	}
	inserted, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[trivia.Question])
	if err != nil {
		return trivia.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return inserted, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete question %d: no rows affected", id)
	}
	return nil
}

func (r *QuestionRepository) SearchByText(ctx context.Context, term string) ([]trivia.Question, error) {
	return r.list(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id",
		term)
}

func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	return r.list(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category = $1 ORDER BY id",
		categoryID)
}

func (r *QuestionRepository) ListExcluding(ctx context.Context, exclude []int) ([]trivia.Question, error) {
	return r.list(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE id <> ALL($1) ORDER BY id",
		toInt64(exclude))
}

func (r *QuestionRepository) ListByCategoryExcluding(ctx context.Context, categoryID int, exclude []int) ([]trivia.Question, error) {
	return r.list(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category = $1 AND id <> ALL($2) ORDER BY id",
		categoryID, toInt64(exclude))
}

func (r *QuestionRepository) list(ctx context.Context, sql string, args ...any) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	questions, err := pgx.CollectRows(rows, pgx.RowToStructByName[trivia.Question])
	if err != nil {
		return nil, fmt.Errorf("scan questions: %w", err)
	}
	return questions, nil
}

// toInt64 converts ids for the int8[] parameter, widening so out-of-range
// input cannot alias a real id. An empty slice yields an empty array, which
// the <> ALL filter treats as "exclude nothing".
func toInt64(ids []int) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return out
}
