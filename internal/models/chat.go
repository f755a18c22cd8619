package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation — диалог между двумя профилями, опционально привязанный
// к объявлению. Participants хранится отсортированным по hex — так пара
// участников однозначно идентифицирует диалог независимо от порядка.
type Conversation struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Participants []primitive.ObjectID `bson:"participants" json:"participants"`
	Property     *primitive.ObjectID  `bson:"property,omitempty" json:"property,omitempty"`
	LastMessage  *primitive.ObjectID  `bson:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// HasParticipant сообщает, входит ли профиль в диалог.
func (c *Conversation) HasParticipant(id primitive.ObjectID) bool {
	for _, p := range c.Participants {
		if p == id {
			return true
		}
	}

	return false
}

// Message — сообщение в диалоге.
type Message struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ConversationID primitive.ObjectID `bson:"conversationId" json:"conversationId"`
	SenderID       primitive.ObjectID `bson:"senderId" json:"senderId"`
	Text           string             `bson:"text" json:"text"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MessagePage — страница сообщений: элементы возвращаются по возрастанию
// времени, выборка из хранилища идёт по убыванию (последняя страница первой).
type MessagePage struct {
	Items      []Message
	Total      int64
	Page       int
	TotalPages int
}
