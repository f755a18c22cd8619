package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken — токен не прошёл проверку (подпись, срок, issuer,
// формат).
var ErrInvalidToken = errors.New("invalid token")

// Claims — проверенные утверждения токена Cognito.
type Claims struct {
	Sub      string
	Email    string
	Username string
}

// Verifier проверяет RS256-токены пула Cognito.
type Verifier struct {
	issuer string
	keys   *KeyCache
}

// NewVerifier создаёт верификатор для заданного issuer.
func NewVerifier(issuer string, keys *KeyCache) *Verifier {
	return &Verifier{issuer: issuer, keys: keys}
}

// Verify разбирает и проверяет токен: алгоритм RS256, подпись ключом
// из JWKS по kid, срок действия и issuer пула.
// Ошибки: ErrInvalidToken для любого дефекта токена, ErrKeysUnavailable
// если набор ключей недоступен.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	const op = "auth/Verify"

	keyfunc := func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("missing kid header")
		}

		return v.keys.Key(ctx, kid)
	}

	token, err := jwt.Parse(tokenString, keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, ErrKeysUnavailable) {
			return nil, fmt.Errorf("%s: %w", op, ErrKeysUnavailable)
		}

		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%s: %w: unexpected claims type", op, ErrInvalidToken)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%s: %w: missing sub", op, ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	username, _ := claims["cognito:username"].(string)

	return &Claims{
		Sub:      sub,
		Email:    email,
		Username: username,
	}, nil
}
