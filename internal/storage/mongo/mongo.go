// Package mongo реализует контракты internal/storage поверх MongoDB.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ruff27/banglaghar/internal/config"
)

const (
	listingsCollection      = "properties"
	profilesCollection      = "userprofiles"
	conversationsCollection = "conversations"
	messagesCollection      = "messages"
	wishlistsCollection     = "wishlists"
)

// Mongo — тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	client        *mongodriver.Client
	db            *mongodriver.Database
	listings      *mongodriver.Collection
	profiles      *mongodriver.Collection
	conversations *mongodriver.Collection
	messages      *mongodriver.Collection
	wishlists     *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение, подготавливает
// коллекции и обеспечивает индексацию.
func New(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo: empty cfg.URI")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(cfg.Database)

	m := &Mongo{
		client:        cli,
		db:            db,
		listings:      db.Collection(listingsCollection),
		profiles:      db.Collection(profilesCollection),
		conversations: db.Collection(conversationsCollection),
		messages:      db.Collection(messagesCollection),
		wishlists:     db.Collection(wishlistsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы:
//   - объявления: составной поисковый, витрина (featuredAt), владелец;
//   - профили: уникальные email и cognitoSub, статус проверки;
//   - диалоги: участники, активность; сообщения: диалог + время;
//   - избранное: уникальный username.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	listingModels := []mongodriver.IndexModel{
		{
			Keys: bson.D{
				{Key: "district", Value: 1},
				{Key: "upazila", Value: 1},
				{Key: "propertyType", Value: 1},
				{Key: "listingType", Value: 1},
				{Key: "price", Value: 1},
			},
			Options: options.Index().SetName("search_filters"),
		},
		{
			Keys:    bson.D{{Key: "featuredAt", Value: 1}},
			Options: options.Index().SetName("featured_at_asc").SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "createdBy", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("creator_created_desc"),
		},
		{
			Keys:    bson.D{{Key: "isHidden", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("hidden_created_desc"),
		},
	}

	if _, err := m.listings.Indexes().CreateMany(ctx, listingModels); err != nil {
		return fmt.Errorf("mongo ensure listing indexes: %w", err)
	}

	profileModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "cognitoSub", Value: 1}},
			Options: options.Index().SetName("cognito_sub_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "approvalStatus", Value: 1}, {Key: "updatedAt", Value: 1}},
			Options: options.Index().SetName("approval_updated_asc"),
		},
	}

	if _, err := m.profiles.Indexes().CreateMany(ctx, profileModels); err != nil {
		return fmt.Errorf("mongo ensure profile indexes: %w", err)
	}

	convModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "participants", Value: 1}},
			Options: options.Index().SetName("participants"),
		},
		{
			Keys:    bson.D{{Key: "updatedAt", Value: -1}},
			Options: options.Index().SetName("updated_desc"),
		},
	}

	if _, err := m.conversations.Indexes().CreateMany(ctx, convModels); err != nil {
		return fmt.Errorf("mongo ensure conversation indexes: %w", err)
	}

	msgModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "conversationId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("conversation_created_desc"),
		},
	}

	if _, err := m.messages.Indexes().CreateMany(ctx, msgModels); err != nil {
		return fmt.Errorf("mongo ensure message indexes: %w", err)
	}

	wishModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("username_unique").SetUnique(true),
		},
	}

	if _, err := m.wishlists.Indexes().CreateMany(ctx, wishModels); err != nil {
		return fmt.Errorf("mongo ensure wishlist indexes: %w", err)
	}

	return nil
}
