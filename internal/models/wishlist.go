package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Wishlist — избранные объявления пользователя.
// Username — ключ (исторически — имя пользователя Cognito).
type Wishlist struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username string               `bson:"username" json:"username"`
	Items    []primitive.ObjectID `bson:"items" json:"items"`
}
