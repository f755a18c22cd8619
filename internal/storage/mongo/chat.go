package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/storage"
)

// ConversationByParticipants ищет диалог по точному набору участников
// (отсортирован вызывающей стороной) и привязке к объявлению.
func (m *Mongo) ConversationByParticipants(ctx context.Context, participants []primitive.ObjectID, property *primitive.ObjectID) (*models.Conversation, error) {
	const op = "storage/mongo/ConversationByParticipants"

	query := bson.D{
		{Key: "participants", Value: participants},
	}
	if property != nil {
		query = append(query, bson.E{Key: "property", Value: *property})
	} else {
		query = append(query, bson.E{Key: "property", Value: nil})
	}

	var conv models.Conversation
	if err := m.conversations.FindOne(ctx, query).Decode(&conv); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	return &conv, nil
}

// CreateConversation создаёт диалог.
func (m *Mongo) CreateConversation(ctx context.Context, conv models.Conversation) (*models.Conversation, error) {
	const op = "storage/mongo/CreateConversation"

	now := toMS(time.Now())
	conv.CreatedAt = now
	conv.UpdatedAt = now

	res, err := m.conversations.InsertOne(ctx, conv)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	conv.ID = oid
	return &conv, nil
}

// ConversationByID возвращает диалог по hex-идентификатору.
func (m *Mongo) ConversationByID(ctx context.Context, id string) (*models.Conversation, error) {
	const op = "storage/mongo/ConversationByID"

	oid, err := oidFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var conv models.Conversation
	if err := m.conversations.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&conv); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	return &conv, nil
}

// ListConversations возвращает диалоги участника, последняя активность
// первой.
func (m *Mongo) ListConversations(ctx context.Context, participant primitive.ObjectID) ([]models.Conversation, error) {
	const op = "storage/mongo/ListConversations"

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cur, err := m.conversations.Find(ctx,
		bson.D{{Key: "participants", Value: participant}}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []models.Conversation
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return out, nil
}

// CreateMessage сохраняет сообщение и обновляет lastMessage/updatedAt
// диалога. Обновление диалога идёт вторым шагом без транзакции:
// потерянный lastMessage чинится следующим сообщением.
func (m *Mongo) CreateMessage(ctx context.Context, msg models.Message) (*models.Message, error) {
	const op = "storage/mongo/CreateMessage"

	now := toMS(time.Now())
	msg.CreatedAt = now
	msg.UpdatedAt = now

	res, err := m.messages.InsertOne(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}
	msg.ID = oid

	_, err = m.conversations.UpdateByID(ctx, msg.ConversationID, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "lastMessage", Value: oid},
			{Key: "updatedAt", Value: now},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: bump conversation: %w", op, err)
	}

	return &msg, nil
}

// ListMessages возвращает страницу сообщений: выборка по убыванию
// createdAt (последняя страница первой), элементы страницы — по
// возрастанию, как ожидает клиент чата.
func (m *Mongo) ListMessages(ctx context.Context, conversationID primitive.ObjectID, page, limit int) (*models.MessagePage, error) {
	const op = "storage/mongo/ListMessages"

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := bson.D{{Key: "conversationId", Value: conversationID}}

	total, err := m.messages.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: count: %w", op, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))

	cur, err := m.messages.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	items := []models.Message{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	// Разворот к хронологическому порядку.
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &models.MessagePage{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}
