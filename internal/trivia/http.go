package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the REST endpoints for the trivia API.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for the trivia endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// CreateQuestionRequest is the POST /questions body. Category and difficulty
// are decoded as json.Number so that an absent field yields the empty string
// while an explicit 0 survives validation.
type CreateQuestionRequest struct {
	Question   string      `json:"question"`
	Answer     string      `json:"answer"`
	Category   json.Number `json:"category"`
	Difficulty json.Number `json:"difficulty"`
}

// SearchRequest is the POST /questions/search body.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizRequest is the POST /quizzes body. A missing quiz_category decodes to
// nil and is rejected by the service.
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []int         `json:"previous_questions"`
}

// ListCategories handles GET /categories.
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListCategories(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":        true,
		"categories":     result.Categories,
		"total_category": result.Total,
	})
}

// ListQuestions handles GET /questions?page=N.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":            true,
		"questions":          result.Questions,
		"total_question":     result.Total,
		"categories":         result.Categories,
		"current_categories": nil,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	deleted, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success": true,
		"deleted": deleted,
	})
}

// CreateQuestion handles POST /questions.
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	result, err := h.svc.CreateQuestion(r.Context(), NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category.String(),
		Difficulty: req.Difficulty.String(),
	}, pageParam(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":         true,
		"created":         result.Created,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// SearchQuestions handles POST /questions/search.
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	result, err := h.svc.SearchQuestions(r.Context(), req.SearchTerm, pageParam(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions.
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	result, err := h.svc.ListByCategory(r.Context(), categoryID, pageParam(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.Total,
		"category":        result.Category,
	})
}

// PlayQuiz handles POST /quizzes. Malformed bodies map to 404, the same
// bucket as every other failure on this endpoint.
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	question, err := h.svc.NextQuizQuestion(r.Context(), QuizInput{
		Category:          req.QuizCategory,
		PreviousQuestions: req.PreviousQuestions,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, map[string]any{
		"success":  true,
		"question": question,
	})
}

func (h *HTTPHandlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Debug().Err(err).Str("path", r.URL.Path).Msg("request failed")
	if errors.Is(err, ErrUnprocessable) {
		httperrors.RespondUnprocessable(w)
		return
	}
	httperrors.RespondNotFound(w)
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("encode response failed")
	}
}

// pageParam reads the 1-based page query parameter, defaulting to 1 when
// absent, unparseable, or non-positive.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
