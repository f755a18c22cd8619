// Package http собирает REST-маршрутизацию сервиса: chi-роутер,
// цепочки мидлваров и регистрацию эндпойнтов.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ruff27/banglaghar/internal/http/handlers"
	"github.com/ruff27/banglaghar/internal/http/middleware"
	"github.com/ruff27/banglaghar/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, verifier middleware.TokenVerifier, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h, svc, verifier)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h, svc, verifier)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
// Цепочки авторизации:
//   - Authenticate             — достаточно валидного токена;
//   - + LoadProfile            — нужен существующий профиль;
//   - + RequireApproved        — только одобренные продавцы;
//   - + RequireAdmin           — только администраторы.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service, verifier middleware.TokenVerifier) {
	authn := middleware.Authenticate(verifier)
	withProfile := middleware.LoadProfile(svc)

	// публичная выдача
	r.Get("/properties", h.ListListings)
	r.Get("/properties/{id}", h.GetListing)

	// объявления (владелец или админ; создание — только одобренные)
	r.Group(func(r chi.Router) {
		r.Use(authn, withProfile)

		r.With(middleware.RequireApproved()).Post("/properties", h.CreateListing)
		r.Put("/properties/{id}", h.UpdateListing)
		r.Delete("/properties/{id}", h.DeleteListing)
		r.Post("/properties/{id}/photos/presign", h.PhotoPresign)
		r.Post("/properties/{id}/photos/confirm", h.PhotoConfirm)
	})

	// профиль владельца токена (GET создаёт профиль лениво,
	// поэтому LoadProfile на нём не нужен)
	r.With(authn).Get("/profiles/me", h.Me)
	r.Group(func(r chi.Router) {
		r.Use(authn, withProfile)

		r.Put("/profiles/me", h.UpdateMe)
		r.Get("/profiles/me/listings", h.MyListings)
		r.Post("/profiles/me/govt-id/presign", h.GovtIDPresign)
		r.Post("/profiles/me/govt-id/confirm", h.GovtIDConfirm)
	})

	// чат
	r.With(authn).Get("/chat/token", h.ChatToken)
	r.Group(func(r chi.Router) {
		r.Use(authn, withProfile)

		r.Post("/chat/conversations", h.StartConversation)
		r.Get("/chat/conversations", h.Conversations)
		r.Post("/chat/conversations/{id}/messages", h.SendMessage)
		r.Get("/chat/conversations/{id}/messages", h.Messages)
	})

	// избранное
	r.Group(func(r chi.Router) {
		r.Use(authn)

		r.Post("/users/{username}/wishlist", h.AddToWishlist)
		r.Get("/users/{username}/wishlist", h.Wishlist)
		r.Delete("/users/{username}/wishlist/{propertyId}", h.RemoveFromWishlist)
	})

	// генерация описаний
	r.With(authn).Post("/generate-description", h.GenerateDescription)

	// административная панель
	r.Group(func(r chi.Router) {
		r.Use(authn, withProfile, middleware.RequireAdmin())

		r.Get("/admin/stats", h.Stats)
		r.Get("/admin/pending-approvals", h.PendingApprovals)
		r.Get("/admin/users", h.Users)
		r.Put("/admin/users/{id}/approve", h.ApproveUser)
		r.Put("/admin/users/{id}/reject", h.RejectUser)
		r.Put("/admin/users/{id}/status", h.PatchUser)
		r.Get("/admin/users/{id}/govt-id-url", h.GovtIDURL)
		r.Get("/admin/listings", h.AdminListings)
		r.Put("/admin/listings/{id}/visibility", h.SetVisibility)
		r.Put("/admin/listings/{id}/feature", h.FeatureListing)
		r.Post("/admin/listings/delete-multiple", h.DeleteMultiple)
	})
}
