package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ruff27/banglaghar/internal/auth"
	apierrors "github.com/ruff27/banglaghar/internal/http/errors"
	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/service"
)

type ctxKeyClaims struct{}
type ctxKeyProfile struct{}

// TokenVerifier — контракт проверки токена для мидлвара.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Claims, error)
}

// ProfileLoader — контракт загрузки профиля для мидлвара.
type ProfileLoader interface {
	ProfileForEmail(ctx context.Context, email string) (*models.UserProfile, error)
}

// Authenticate проверяет Bearer-токен и кладёт claims в контекст.
// Дефектный токен — 401; недоступность ключей пула — 500.
func Authenticate(verifier TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				apierrors.WriteError(w, r, auth.ErrInvalidToken)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyClaims{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom возвращает claims из контекста (nil, если их нет).
func ClaimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(ctxKeyClaims{}).(*auth.Claims)
	return claims
}

// LoadProfile загружает профиль владельца токена в контекст.
// Отсутствие профиля — 403: identity есть, но в сервисе пользователь
// ещё не представлен.
func LoadProfile(loader ProfileLoader) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFrom(r.Context())
			if claims == nil {
				apierrors.WriteError(w, r, auth.ErrInvalidToken)
				return
			}

			profile, err := loader.ProfileForEmail(r.Context(), claims.Email)
			if err != nil {
				if httpStatus, _ := apierrors.ToHTTP(err); httpStatus == http.StatusNotFound {
					apierrors.WriteForbidden(w, r, "User profile not found.")
					return
				}

				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyProfile{}, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ProfileFrom возвращает профиль из контекста (nil, если его нет).
func ProfileFrom(ctx context.Context) *models.UserProfile {
	profile, _ := ctx.Value(ctxKeyProfile{}).(*models.UserProfile)
	return profile
}

// RequireAdmin пропускает только администраторов.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile := ProfileFrom(r.Context())
			if profile == nil || !profile.IsAdmin {
				apierrors.WriteError(w, r, service.ErrPermissionDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireApproved пропускает только продавцов с одобренной заявкой.
// Текст 403 зависит от текущего статуса, чтобы фронт показал
// пользователю следующий шаг.
func RequireApproved() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile := ProfileFrom(r.Context())
			if profile == nil {
				apierrors.WriteError(w, r, service.ErrPermissionDenied)
				return
			}

			switch profile.ApprovalStatus {
			case models.ApprovalApproved:
				next.ServeHTTP(w, r)
			case models.ApprovalPending:
				apierrors.WriteForbidden(w, r, "Your listing request is pending approval.")
			case models.ApprovalRejected:
				apierrors.WriteForbidden(w, r, "Your listing request has been rejected. Please contact support.")
			default:
				apierrors.WriteForbidden(w, r, "Please submit your government ID for approval to list properties.")
			}
		})
	}
}
