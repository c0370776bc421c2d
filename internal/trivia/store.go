package trivia

import "context"

// QuestionStore is the relational backing store for questions.
type QuestionStore interface {
	// ListOrderedByID returns every question ordered by id ascending.
	ListOrderedByID(ctx context.Context) ([]Question, error)
	// CountAll returns the total number of stored questions.
	CountAll(ctx context.Context) (int, error)
	// GetByID returns the question with the given id, or an error when absent.
	GetByID(ctx context.Context, id int) (Question, error)
	// Insert persists a new question and returns it with the store-assigned id.
	Insert(ctx context.Context, q Question) (Question, error)
	// Delete removes the question with the given id.
	Delete(ctx context.Context, id int) error
	// SearchByText returns questions whose text contains term,
	// case-insensitively.
	SearchByText(ctx context.Context, term string) ([]Question, error)
	// ListByCategory returns questions whose category equals categoryID.
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	// ListExcluding returns all questions whose id is not in exclude.
	ListExcluding(ctx context.Context, exclude []int) ([]Question, error)
	// ListByCategoryExcluding combines the category filter with the
	// id-exclusion filter.
	ListByCategoryExcluding(ctx context.Context, categoryID int, exclude []int) ([]Question, error)
}

// CategoryStore is the relational backing store for categories.
type CategoryStore interface {
	// ListOrderedByType returns every category ordered by type ascending.
	ListOrderedByType(ctx context.Context) ([]Category, error)
	// ListAll returns every category in store order.
	ListAll(ctx context.Context) ([]Category, error)
}
