// Package notify — realtime-уведомления чата через Ably:
// выдача клиентских токенов и публикация событий о новых сообщениях.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/ably/ably-go/ably"

	"github.com/ruff27/banglaghar/pkg/log"
)

// messageEventName — имя события в канале уведомлений получателя.
const messageEventName = "new-message-notification"

// MessageNotification — полезная нагрузка уведомления о сообщении.
// Тело обрезается до сниппета на стороне сервиса.
type MessageNotification struct {
	ConversationID    string    `json:"conversationId"`
	Title             string    `json:"title"`
	Body              string    `json:"body"`
	SenderID          string    `json:"senderId"`
	SenderDisplayName string    `json:"senderDisplayName"`
	MessageID         string    `json:"messageId"`
	Timestamp         time.Time `json:"timestamp"`
}

// Notifier — контракт realtime-уведомлений для сервисного слоя.
type Notifier interface {
	// TokenRequest выдаёт подписанный запрос токена для клиента.
	TokenRequest(ctx context.Context, clientID string) (*ably.TokenRequest, error)
	// NotifyNewMessage рассылает уведомление получателям (best-effort).
	NotifyNewMessage(ctx context.Context, recipientIDs []string, n MessageNotification)
}

// AblyNotifier — реализация Notifier поверх Ably REST.
type AblyNotifier struct {
	client *ably.REST
}

// NewAblyNotifier создаёт REST-клиент Ably по ключу API.
func NewAblyNotifier(apiKey string) (*AblyNotifier, error) {
	const op = "notify/NewAblyNotifier"

	client, err := ably.NewREST(ably.WithKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &AblyNotifier{client: client}, nil
}

// TokenRequest выдаёт token request с clientID пользователя.
// Capability повторяет клиентский контракт: подписка, публикация,
// presence и история.
func (a *AblyNotifier) TokenRequest(ctx context.Context, clientID string) (*ably.TokenRequest, error) {
	const op = "notify/TokenRequest"

	params := &ably.TokenParams{
		ClientID:   clientID,
		Capability: `{"*":["subscribe","publish","presence","history"]}`,
	}

	req, err := a.client.Auth.CreateTokenRequest(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return req, nil
}

// NotifyNewMessage публикует событие в персональные каналы получателей
// "user-notifications-<profileID>". Ошибка публикации не прерывает
// отправку сообщения: уведомление вторично относительно записи в чат.
func (a *AblyNotifier) NotifyNewMessage(ctx context.Context, recipientIDs []string, n MessageNotification) {
	logger := log.From(ctx)

	for _, id := range recipientIDs {
		channel := a.client.Channels.Get("user-notifications-" + id)

		if err := channel.Publish(ctx, messageEventName, n); err != nil {
			logger.Warn("notify_publish_failed",
				"recipient_id", id,
				"conversation_id", n.ConversationID,
				"error", err.Error())
		}
	}
}

var _ Notifier = (*AblyNotifier)(nil)
