package mongo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ruff27/banglaghar/internal/config"
	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/storage"
)

// testTimeout — общий дедлайн на операции с БД в тестах.
const testTimeout = 10 * time.Second

// TestMain запускает MongoDB в контейнере один раз на весь пакет тестов.
// Адрес контейнера прокидывается в ENV DATABASE_URL; каждый тест создаёт
// свою БД с уникальным именем (см. newTestMongoConfig).
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
	}

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	_ = os.Setenv("DATABASE_URL", uri)

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

// newTestMongoConfig создаёт конфиг с отдельной тестовой БД.
func newTestMongoConfig(t *testing.T) config.MongoConfig {
	t.Helper()

	baseURL := os.Getenv("DATABASE_URL")
	if baseURL == "" {
		baseURL = "mongodb://localhost:27017"
	}

	return config.MongoConfig{
		URI:      baseURL,
		Database: "banglaghar_test_" + uuid.New().String()[:8],
	}
}

// mustNewMongo создаёт подключение к тестовой БД и регистрирует очистку.
func mustNewMongo(t *testing.T) *Mongo {
	t.Helper()

	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("set GO_TEST_INTEGRATION to run mongo integration tests")
	}

	cfg := newTestMongoConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	m, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("cannot connect to MongoDB in container: %v (DATABASE_URL=%s)", err, cfg.URI)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = m.db.Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

func testListing(title string) models.Listing {
	return models.Listing{
		Title:        title,
		Price:        15000,
		AddressLine1: "House 5, Road 12",
		CityTown:     "Dhanmondi",
		Upazila:      "Dhanmondi",
		District:     "Dhaka",
		PostalCode:   "1205",
		PropertyType: models.PropertyApartment,
		ListingType:  models.ListingRent,
		CreatedBy:    "owner@example.com",
	}
}

func TestCreateListing_SetsDefaults(t *testing.T) {
	m := mustNewMongo(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	out, err := m.CreateListing(ctx, testListing("flat in dhanmondi"))
	if err != nil {
		t.Fatalf("CreateListing error: %v", err)
	}

	if out.ID.IsZero() {
		t.Fatalf("expected generated ID")
	}
	if out.Images == nil {
		t.Fatalf("images must be initialized to empty slice")
	}
	if out.CreatedAt.IsZero() || out.UpdatedAt.IsZero() {
		t.Fatalf("timestamps must be set")
	}

	got, err := m.ListingByID(ctx, out.ID.Hex())
	if err != nil {
		t.Fatalf("ListingByID error: %v", err)
	}
	if got.Title != "flat in dhanmondi" {
		t.Fatalf("title mismatch: %q", got.Title)
	}
}

func TestListingByID_InvalidAndMissing(t *testing.T) {
	m := mustNewMongo(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	if _, err := m.ListingByID(ctx, "not-a-hex"); !errors.Is(err, storage.ErrInvalidID) {
		t.Fatalf("want ErrInvalidID, got %v", err)
	}

	if _, err := m.ListingByID(ctx, primitive.NewObjectID().Hex()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListListings_FiltersAndHidesHidden(t *testing.T) {
	m := mustNewMongo(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	visible, err := m.CreateListing(ctx, testListing("visible"))
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}

	hidden, err := m.CreateListing(ctx, testListing("hidden"))
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}
	if _, err := m.SetHidden(ctx, hidden.ID.Hex(), true); err != nil {
		t.Fatalf("SetHidden: %v", err)
	}

	sylhet := testListing("sylhet house")
	sylhet.District = "Sylhet"
	sylhet.PropertyType = models.PropertyHouse
	if _, err := m.CreateListing(ctx, sylhet); err != nil {
		t.Fatalf("CreateListing: %v", err)
	}

	all, err := m.ListListings(ctx, models.ListingFilter{})
	if err != nil {
		t.Fatalf("ListListings: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("hidden listing leaked into public list: got %d items", len(all))
	}

	dhakaOnly, err := m.ListListings(ctx, models.ListingFilter{District: "Dhaka"})
	if err != nil {
		t.Fatalf("ListListings: %v", err)
	}
	if len(dhakaOnly) != 1 || dhakaOnly[0].ID != visible.ID {
		t.Fatalf("district filter mismatch: %+v", dhakaOnly)
	}

	min := 20000.0
	expensive, err := m.ListListings(ctx, models.ListingFilter{MinPrice: &min})
	if err != nil {
		t.Fatalf("ListListings: %v", err)
	}
	if len(expensive) != 0 {
		t.Fatalf("price filter mismatch: %+v", expensive)
	}
}

func TestFeaturedPrimitives(t *testing.T) {
	m := mustNewMongo(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		l, err := m.CreateListing(ctx, testListing(fmt.Sprintf("listing %d", i)))
		if err != nil {
			t.Fatalf("CreateListing: %v", err)
		}
		ids = append(ids, l.ID.Hex())
	}

	base := time.Now().Add(-time.Hour)
	for i, id := range ids {
		at := base.Add(time.Duration(i) * time.Minute)
		if _, err := m.SetFeaturedAt(ctx, id, &at); err != nil {
			t.Fatalf("SetFeaturedAt: %v", err)
		}
	}

	n, err := m.CountFeatured(ctx, "")
	if err != nil {
		t.Fatalf("CountFeatured: %v", err)
	}
	if n != 3 {
		t.Fatalf("CountFeatured = %d, want 3", n)
	}

	// Исключение цели из подсчёта.
	n, err = m.CountFeatured(ctx, ids[0])
	if err != nil {
		t.Fatalf("CountFeatured: %v", err)
	}
	if n != 2 {
		t.Fatalf("CountFeatured(exclude) = %d, want 2", n)
	}

	oldest, err := m.OldestFeatured(ctx, "", 2)
	if err != nil {
		t.Fatalf("OldestFeatured: %v", err)
	}
	if len(oldest) != 2 || oldest[0].ID.Hex() != ids[0] || oldest[1].ID.Hex() != ids[1] {
		t.Fatalf("OldestFeatured order mismatch: %+v", oldest)
	}

	if err := m.UnfeatureMany(ctx, []string{ids[0], ids[1]}); err != nil {
		t.Fatalf("UnfeatureMany: %v", err)
	}

	n, err = m.CountFeatured(ctx, "")
	if err != nil {
		t.Fatalf("CountFeatured: %v", err)
	}
	if n != 1 {
		t.Fatalf("CountFeatured after unfeature = %d, want 1", n)
	}

	// Снятие с витрины через nil.
	if _, err := m.SetFeaturedAt(ctx, ids[2], nil); err != nil {
		t.Fatalf("SetFeaturedAt(nil): %v", err)
	}

	n, err = m.CountFeatured(ctx, "")
	if err != nil {
		t.Fatalf("CountFeatured: %v", err)
	}
	if n != 0 {
		t.Fatalf("CountFeatured after clear = %d, want 0", n)
	}
}

func TestProfiles_CreateConflictAndUpdate(t *testing.T) {
	m := mustNewMongo(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	p, err := m.CreateProfile(ctx, models.UserProfile{
		Email:      "Alice@Example.com",
		CognitoSub: "sub-1",
		Name:       "Alice",
	})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if p.Email != "alice@example.com" {
		t.Fatalf("email must be lowercased: %q", p.Email)
	}
	if p.ApprovalStatus != models.ApprovalNotStarted || p.AccountStatus != models.AccountActive {
		t.Fatalf("default statuses mismatch: %+v", p)
	}

	if _, err := m.CreateProfile(ctx, models.UserProfile{
		Email:      "alice@example.com",
		CognitoSub: "sub-2",
	}); !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("want ErrConflict on duplicate email, got %v", err)
	}

	got, err := m.ProfileByEmail(ctx, "ALICE@example.com")
	if err != nil {
		t.Fatalf("ProfileByEmail: %v", err)
	}
	if got.ID != p.ID {
		t.Fatalf("profile mismatch")
	}

	updated, err := m.UpdateProfile(ctx, p.ID.Hex(), map[string]any{
		"approvalStatus": models.ApprovalPending,
		"govtIdKey":      "govt_ids/sub-1/doc.png",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.ApprovalStatus != models.ApprovalPending {
		t.Fatalf("approvalStatus not updated: %+v", updated)
	}

	pending, err := m.ListPendingProfiles(ctx)
	if err != nil {
		t.Fatalf("ListPendingProfiles: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != p.ID {
		t.Fatalf("pending list mismatch: %+v", pending)
	}
}

func TestChat_ConversationsAndMessagesPagination(t *testing.T) {
	m := mustNewMongo(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	participants := []primitive.ObjectID{a, b}
	if participants[0].Hex() > participants[1].Hex() {
		participants[0], participants[1] = participants[1], participants[0]
	}

	if _, err := m.ConversationByParticipants(ctx, participants, nil); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("want ErrNotFound for missing conversation, got %v", err)
	}

	conv, err := m.CreateConversation(ctx, models.Conversation{Participants: participants})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}

	found, err := m.ConversationByParticipants(ctx, participants, nil)
	if err != nil {
		t.Fatalf("ConversationByParticipants: %v", err)
	}
	if found.ID != conv.ID {
		t.Fatalf("conversation mismatch")
	}

	for i := 0; i < 5; i++ {
		if _, err := m.CreateMessage(ctx, models.Message{
			ConversationID: conv.ID,
			SenderID:       a,
			Text:           fmt.Sprintf("msg %d", i),
		}); err != nil {
			t.Fatalf("CreateMessage: %v", err)
		}
		time.Sleep(5 * time.Millisecond) // различимые createdAt
	}

	page, err := m.ListMessages(ctx, conv.ID, 1, 2)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if page.Total != 5 || page.TotalPages != 3 {
		t.Fatalf("pagination mismatch: %+v", page)
	}
	// Первая страница — два последних сообщения в хронологическом порядке.
	if len(page.Items) != 2 || page.Items[0].Text != "msg 3" || page.Items[1].Text != "msg 4" {
		t.Fatalf("page items mismatch: %+v", page.Items)
	}

	convs, err := m.ListConversations(ctx, a)
	if err != nil {
		t.Fatalf("ListConversations: %v", err)
	}
	if len(convs) != 1 || convs[0].LastMessage == nil {
		t.Fatalf("lastMessage not bumped: %+v", convs)
	}
}

func TestWishlists_AddRemoveDedup(t *testing.T) {
	m := mustNewMongo(t)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	l, err := m.CreateListing(ctx, testListing("wished"))
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}
	id := l.ID.Hex()

	wl, err := m.AddToWishlist(ctx, "alice", id)
	if err != nil {
		t.Fatalf("AddToWishlist: %v", err)
	}
	if len(wl.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(wl.Items))
	}

	// Повторное добавление не множит элементы.
	wl, err = m.AddToWishlist(ctx, "alice", id)
	if err != nil {
		t.Fatalf("AddToWishlist: %v", err)
	}
	if len(wl.Items) != 1 {
		t.Fatalf("duplicate added: items = %d", len(wl.Items))
	}

	listings, err := m.ListingsByIDs(ctx, wl.Items)
	if err != nil {
		t.Fatalf("ListingsByIDs: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != l.ID {
		t.Fatalf("resolved listings mismatch: %+v", listings)
	}

	wl, err = m.RemoveFromWishlist(ctx, "alice", id)
	if err != nil {
		t.Fatalf("RemoveFromWishlist: %v", err)
	}
	if len(wl.Items) != 0 {
		t.Fatalf("items after remove = %d, want 0", len(wl.Items))
	}

	if _, err := m.RemoveFromWishlist(ctx, "alice", id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("want ErrNotFound for absent item, got %v", err)
	}

	if _, err := m.RemoveFromWishlist(ctx, "nobody", id); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("want ErrNotFound for absent wishlist, got %v", err)
	}
}
