package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"screencraft-backend/internal/handlers"
	"screencraft-backend/internal/middleware"
)

func New(
	assetHandler *handlers.AssetHandler,
	generateHandler *handlers.GenerateHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	uploadLimiter := middleware.NewRateLimiter(60, time.Minute)
	generateLimiter := middleware.NewRateLimiter(20, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Asset Routes ────
	// Served without the /api/v1 prefix so generated artifacts can reference
	// /assets/{id} directly.
	r.Route("/assets", func(r chi.Router) {
		r.Get("/", assetHandler.List)
		r.With(uploadLimiter.Middleware).Post("/upload", assetHandler.Upload)
		r.Get("/{id}", assetHandler.Serve)
		r.Delete("/{id}", assetHandler.Delete)
	})

	// ──── Generation Routes ────
	r.Route("/api/v1", func(r chi.Router) {
		r.With(generateLimiter.Middleware).Post("/generate", generateHandler.Generate)
		r.Post("/prompts/assemble", generateHandler.Assemble)
	})

	return r
}
