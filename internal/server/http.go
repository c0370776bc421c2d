package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// NewHTTPServer wires the trivia routes plus health and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, handlers *trivia.HTTPHandlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /categories", handlers.ListCategories)
	mux.HandleFunc("GET /categories/{id}/questions", handlers.QuestionsByCategory)
	mux.HandleFunc("GET /questions", handlers.ListQuestions)
	mux.HandleFunc("POST /questions", handlers.CreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("POST /questions/search", handlers.SearchQuestions)
	mux.HandleFunc("POST /quizzes", handlers.PlayQuiz)

	var handler http.Handler = mux
	handler = Metrics(handler)
	handler = RequestID(logger, handler)
	handler = CORS(cfg.CORS, handler)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}
