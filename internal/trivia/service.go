package trivia

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog"
)

// Service implements the trivia query operations over the backing store.
// It holds no entity state across requests; every operation re-queries.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	cache      CategoryCache
	pick       pickFunc
	logger     zerolog.Logger
}

// ServiceOptions carries optional collaborators for the service.
type ServiceOptions struct {
	// Cache, when set, is used as a read-through cache for the category map.
	Cache CategoryCache
	// Pick overrides the quiz selector's random index function.
	Pick func(n int) int
}

// NewService constructs the trivia service.
func NewService(questions QuestionStore, categories CategoryStore, opts ServiceOptions, logger zerolog.Logger) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      opts.Cache,
		pick:       opts.Pick,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// CategoriesResult is the outcome of ListCategories.
type CategoriesResult struct {
	Categories map[int]string
	Total      int
}

// QuestionsPage is the outcome of ListQuestions.
type QuestionsPage struct {
	Questions  []Question
	Total      int
	Categories map[int]string
}

// CreateResult is the outcome of CreateQuestion.
type CreateResult struct {
	Created   int
	Questions []Question
	Total     int
}

// SearchResult is the outcome of SearchQuestions.
type SearchResult struct {
	Questions []Question
	Total     int
}

// CategoryQuestions is the outcome of ListByCategory.
type CategoryQuestions struct {
	Questions []Question
	Total     int
	Category  int
}

// NewQuestion carries the raw create-question input. Category and Difficulty
// hold the undecoded token from the request body: validation rejects only the
// empty string, so a numeric zero passes while an absent field does not.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   string
	Difficulty string
}

// QuizCategory selects the quiz candidate pool. The type value "click" is a
// sentinel meaning "all categories". Fields are pointers so that an absent
// key is distinguishable from a zero value; absent keys fail not-found.
type QuizCategory struct {
	Type *string `json:"type"`
	ID   *int    `json:"id"`
}

// QuizInput carries the quiz-round request: the selected category and the
// ids of questions already served this round.
type QuizInput struct {
	Category          *QuizCategory
	PreviousQuestions []int
}

// ListCategories returns the full category map ordered by type. A store
// failure is reported as NotFound; an empty category set is a success.
func (s *Service) ListCategories(ctx context.Context) (CategoriesResult, error) {
	cats, err := s.categoryMap(ctx, true)
	if err != nil {
		return CategoriesResult{}, notFound(err)
	}
	return CategoriesResult{Categories: cats, Total: len(cats)}, nil
}

// ListQuestions returns one page of all questions ordered by id, the
// pre-pagination total, and the category map. An empty page is NotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionsPage, error) {
	all, err := s.questions.ListOrderedByID(ctx)
	if err != nil {
		return QuestionsPage{}, notFound(err)
	}
	current := Paginate(all, page)
	if len(current) == 0 {
		return QuestionsPage{}, notFound(errors.New("page is empty"))
	}
	cats, err := s.categoryMap(ctx, false)
	if err != nil {
		return QuestionsPage{}, notFound(err)
	}
	return QuestionsPage{Questions: current, Total: len(all), Categories: cats}, nil
}

// DeleteQuestion removes a question by id and returns the deleted id. Both a
// missing id and a store failure are Unprocessable; that mapping is contract.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (int, error) {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		return 0, unprocessable(err)
	}
	if err := s.questions.Delete(ctx, id); err != nil {
		return 0, unprocessable(err)
	}
	return id, nil
}

// CreateQuestion validates and inserts a question, then re-reads the inserted
// row and paginates that one-row selection with the request's page value. Any
// validation or store failure is Unprocessable.
func (s *Service) CreateQuestion(ctx context.Context, in NewQuestion, page int) (CreateResult, error) {
	if in.Question == "" || in.Answer == "" || in.Category == "" || in.Difficulty == "" {
		return CreateResult{}, unprocessable(errors.New("missing required field"))
	}
	category, err := strconv.Atoi(in.Category)
	if err != nil {
		return CreateResult{}, unprocessable(err)
	}
	difficulty, err := strconv.Atoi(in.Difficulty)
	if err != nil {
		return CreateResult{}, unprocessable(err)
	}

	created, err := s.questions.Insert(ctx, Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   category,
		Difficulty: difficulty,
	})
	if err != nil {
		return CreateResult{}, unprocessable(err)
	}

	inserted, err := s.questions.GetByID(ctx, created.ID)
	if err != nil {
		return CreateResult{}, unprocessable(err)
	}
	total, err := s.questions.CountAll(ctx)
	if err != nil {
		return CreateResult{}, unprocessable(err)
	}

	s.logger.Info().Int("id", created.ID).Int("category", category).Msg("question created")
	return CreateResult{
		Created:   created.ID,
		Questions: Paginate([]Question{inserted}, page),
		Total:     total,
	}, nil
}

// SearchQuestions returns the page of questions whose text contains term,
// case-insensitively. An empty term is Unprocessable; zero matches (or a
// store failure) is NotFound.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (SearchResult, error) {
	if term == "" {
		return SearchResult{}, unprocessable(errors.New("empty search term"))
	}
	matches, err := s.questions.SearchByText(ctx, term)
	if err != nil {
		return SearchResult{}, notFound(err)
	}
	if len(matches) == 0 {
		return SearchResult{}, notFound(errors.New("no matching questions"))
	}
	return SearchResult{Questions: Paginate(matches, page), Total: len(matches)}, nil
}

// ListByCategory returns the page of questions in the given category plus the
// echoed category id. Zero matches is NotFound.
func (s *Service) ListByCategory(ctx context.Context, categoryID, page int) (CategoryQuestions, error) {
	matches, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryQuestions{}, notFound(err)
	}
	if len(matches) == 0 {
		return CategoryQuestions{}, notFound(errors.New("no questions in category"))
	}
	return CategoryQuestions{
		Questions: Paginate(matches, page),
		Total:     len(matches),
		Category:  categoryID,
	}, nil
}

// NextQuizQuestion picks a random question outside the already-served set,
// optionally narrowed to one category. An empty candidate set yields a nil
// question and no error. A missing quiz category, like any store failure
// here, is NotFound.
func (s *Service) NextQuizQuestion(ctx context.Context, in QuizInput) (*Question, error) {
	if in.Category == nil || in.Category.Type == nil {
		return nil, notFound(errors.New("missing quiz_category type"))
	}

	var (
		candidates []Question
		err        error
	)
	if *in.Category.Type == "click" {
		candidates, err = s.questions.ListExcluding(ctx, in.PreviousQuestions)
	} else {
		// The id key is only consulted, and therefore only required, on the
		// category-filtered path.
		if in.Category.ID == nil {
			return nil, notFound(errors.New("missing quiz_category id"))
		}
		candidates, err = s.questions.ListByCategoryExcluding(ctx, *in.Category.ID, in.PreviousQuestions)
	}
	if err != nil {
		return nil, notFound(err)
	}
	return selectNext(candidates, s.pick), nil
}

// categoryMap builds the id/type map, reading through the cache when one is
// configured. Cache failures fall through to the store silently.
func (s *Service) categoryMap(ctx context.Context, ordered bool) (map[int]string, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	var (
		cats []Category
		err  error
	)
	if ordered {
		cats, err = s.categories.ListOrderedByType(ctx)
	} else {
		cats, err = s.categories.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	m := make(map[int]string, len(cats))
	for _, c := range cats {
		m[c.ID] = c.Type
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, m); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return m, nil
}
