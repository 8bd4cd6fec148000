package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/OlamideOlanipekun/NaijaBites/internal/handlers"
	"github.com/OlamideOlanipekun/NaijaBites/internal/middleware"
)

func New(
	menuHandler *handlers.MenuHandler,
	cartHandler *handlers.CartHandler,
	chatHandler *handlers.ChatHandler,
	bookingHandler *handlers.BookingHandler,
	contentHandler *handlers.ContentHandler,
	chatRequestsPerMin int,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Chat rate limiter (per IP)
	chatLimiter := middleware.NewRateLimiter(chatRequestsPerMin, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Menu Routes ────
		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menuHandler.List)
			r.Get("/categories", menuHandler.Categories)
			r.Get("/tags", menuHandler.Tags)
		})

		// ──── Cart Routes ────
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items/{id}", cartHandler.UpdateItem)
			r.Post("/checkout", cartHandler.Checkout)
		})

		// ──── Chat Routes ────
		r.Route("/chat", func(r chi.Router) {
			r.Get("/", chatHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(chatLimiter.Middleware)
				r.Post("/", chatHandler.Post)
			})
		})

		// ──── Intake Routes ────
		r.Post("/reservations", bookingHandler.CreateReservation)
		r.Post("/contact", bookingHandler.CreateContactMessage)

		// ──── Static Content ────
		r.Get("/testimonials", contentHandler.Testimonials)
		r.Get("/gallery", contentHandler.Gallery)
	})

	return r
}
