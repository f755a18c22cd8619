package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ably/ably-go/ably"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/notify"
)

// snippetLimit — длина сниппета сообщения в уведомлении.
const snippetLimit = 100

// ChatToken выдаёт клиенту подписанный token request Ably
// с clientID = cognitoSub владельца токена.
func (s *Service) ChatToken(ctx context.Context, cognitoSub string) (*ably.TokenRequest, error) {
	const op = "service/ChatToken"

	req, err := s.notifier.TokenRequest(ctx, cognitoSub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return req, nil
}

// StartConversation находит или создаёт диалог между actor и receiver.
// Пара участников хранится отсортированной, поэтому порядок сторон
// в запросе не влияет на поиск.
func (s *Service) StartConversation(ctx context.Context, actor *models.UserProfile, receiverID, propertyID string) (*models.Conversation, error) {
	const op = "service/StartConversation"

	if receiverID == "" {
		return nil, invalidf("receiverId is required")
	}

	receiver, err := primitive.ObjectIDFromHex(receiverID)
	if err != nil {
		return nil, invalidf("invalid receiverId")
	}

	if receiver == actor.ID {
		return nil, invalidf("cannot start a conversation with yourself")
	}

	participants := []primitive.ObjectID{actor.ID, receiver}
	sort.Slice(participants, func(i, j int) bool {
		return participants[i].Hex() < participants[j].Hex()
	})

	var property *primitive.ObjectID
	if propertyID != "" {
		oid, err := primitive.ObjectIDFromHex(propertyID)
		if err != nil {
			return nil, invalidf("invalid propertyId")
		}
		property = &oid
	}

	conv, err := s.chat.ConversationByParticipants(ctx, participants, property)
	if err == nil {
		return conv, nil
	}

	if !errors.Is(mapStorageErr(err), ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.chat.CreateConversation(ctx, models.Conversation{
		Participants: participants,
		Property:     property,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return created, nil
}

// Conversations возвращает диалоги пользователя, последняя активность
// первой.
func (s *Service) Conversations(ctx context.Context, actor *models.UserProfile) ([]models.Conversation, error) {
	const op = "service/Conversations"

	items, err := s.chat.ListConversations(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// participantConversation возвращает диалог, если actor — участник.
func (s *Service) participantConversation(ctx context.Context, actor *models.UserProfile, conversationID string) (*models.Conversation, error) {
	conv, err := s.chat.ConversationByID(ctx, conversationID)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	if !conv.HasParticipant(actor.ID) {
		return nil, ErrPermissionDenied
	}

	return conv, nil
}

// SendMessage сохраняет сообщение участника и best-effort рассылает
// уведомления остальным сторонам диалога.
func (s *Service) SendMessage(ctx context.Context, actor *models.UserProfile, conversationID, text string) (*models.Message, error) {
	const op = "service/SendMessage"

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, invalidf("message text cannot be empty")
	}

	conv, err := s.participantConversation(ctx, actor, conversationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	msg, err := s.chat.CreateMessage(ctx, models.Message{
		ConversationID: conv.ID,
		SenderID:       actor.ID,
		Text:           trimmed,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	senderName := actor.DisplayName
	if senderName == "" {
		senderName = actor.Email
	}

	var recipients []string
	for _, p := range conv.Participants {
		if p != actor.ID {
			recipients = append(recipients, p.Hex())
		}
	}

	s.notifier.NotifyNewMessage(ctx, recipients, notify.MessageNotification{
		ConversationID:    conv.ID.Hex(),
		Title:             "New message from " + senderName,
		Body:              snippet(msg.Text),
		SenderID:          actor.ID.Hex(),
		SenderDisplayName: senderName,
		MessageID:         msg.ID.Hex(),
		Timestamp:         msg.CreatedAt,
	})

	return msg, nil
}

// snippet обрезает текст уведомления до snippetLimit рун.
func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLimit {
		return text
	}

	return string(runes[:snippetLimit]) + "..."
}

// Messages возвращает страницу сообщений диалога участника.
func (s *Service) Messages(ctx context.Context, actor *models.UserProfile, conversationID string, page, limit int) (*models.MessagePage, error) {
	const op = "service/Messages"

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 30
	}

	conv, err := s.participantConversation(ctx, actor, conversationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	messages, err := s.chat.ListMessages(ctx, conv.ID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return messages, nil
}
