// Package auth проверяет access-токены AWS Cognito: кэш ключей JWKS
// с TTL и дедупликацией обновлений, верификация подписи RS256.
package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var (
	// ErrUnknownKey — в наборе нет ключа с таким kid.
	ErrUnknownKey = errors.New("unknown key id")
	// ErrKeysUnavailable — набор ключей недоступен (пуст и обновить
	// не удалось).
	ErrKeysUnavailable = errors.New("keys unavailable")
)

// KeyCache — кэш публичных ключей пула с TTL.
// Обновление дедуплицируется: мьютекс держится на весь refresh, второй
// конкурентный запрос после захвата перепроверяет свежесть и не ходит
// в сеть повторно.
type KeyCache struct {
	url        string
	ttl        time.Duration
	clock      clockwork.Clock
	httpClient *http.Client

	mu        sync.Mutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

// NewKeyCache создаёт кэш ключей по адресу JWKS.
func NewKeyCache(url string, ttl time.Duration, clock clockwork.Clock) *KeyCache {
	return &KeyCache{
		url:        url,
		ttl:        ttl,
		clock:      clock,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// jwksDocument — релевантная часть ответа .well-known/jwks.json.
type jwksDocument struct {
	Keys []struct {
		Kid string `json:"kid"`
		Kty string `json:"kty"`
		N   string `json:"n"`
		E   string `json:"e"`
	} `json:"keys"`
}

// Key возвращает публичный ключ по kid, при необходимости обновляя
// набор. Неизвестный kid после свежего обновления — ErrUnknownKey.
func (c *KeyCache) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	const op = "auth/jwks/Key"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fresh() {
		if k, ok := c.keys[kid]; ok {
			return k, nil
		}
		// kid может принадлежать новому ключу пула после ротации —
		// единственный случай, когда свежий кэш обновляется досрочно.
	}

	if err := c.refreshLocked(ctx); err != nil {
		if len(c.keys) == 0 {
			return nil, fmt.Errorf("%s: %w", op, ErrKeysUnavailable)
		}
		// Старый набор лучше отказа: подписи текущими ключами ещё
		// проверяемы.
	}

	if k, ok := c.keys[kid]; ok {
		return k, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrUnknownKey)
}

// Refresh принудительно перезагружает набор ключей.
func (c *KeyCache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.refreshLocked(ctx)
}

// fresh — под мьютексом: набор непуст и TTL не истёк.
func (c *KeyCache) fresh() bool {
	return len(c.keys) > 0 && c.clock.Since(c.fetchedAt) < c.ttl
}

// refreshLocked — под мьютексом: загрузка и разбор JWKS.
func (c *KeyCache) refreshLocked(ctx context.Context) error {
	const op = "auth/jwks/refresh"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("%s: decode: %w", op, err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}

		pub, err := rsaFromJWK(k.N, k.E)
		if err != nil {
			return fmt.Errorf("%s: key %q: %w", op, k.Kid, err)
		}

		keys[k.Kid] = pub
	}

	if len(keys) == 0 {
		return fmt.Errorf("%s: document has no usable keys", op)
	}

	c.keys = keys
	c.fetchedAt = c.clock.Now()

	return nil
}

// rsaFromJWK восстанавливает rsa.PublicKey из base64url-полей n/e.
func rsaFromJWK(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("modulus: %w", err)
	}

	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(new(big.Int).SetBytes(eb).Int64()),
	}, nil
}
