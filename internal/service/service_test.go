package service

// Тесты сервисного слоя.
//
// Проверяем:
//  - валидацию входов и маппинг ошибок storage -> service;
//  - геокодирование при создании/изменении и фолбэк на центроид;
//  - правила владения (владелец или админ);
//  - логику витрины: идемпотентность снятия, no-op повтора, вытеснение.
//
// Подготовка окружения:
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks
//   mockgen -source=./internal/storage/files.go -destination=./mocks/files.go -package=mocks
//
// Примечание: моки сгенерированы в пакете /mocks.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ruff27/banglaghar/internal/auth"
	"github.com/ruff27/banglaghar/internal/geo"
	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/storage"
	"github.com/ruff27/banglaghar/mocks"
)

type testEnv struct {
	svc       *Service
	listings  *mocks.MockListings
	profiles  *mocks.MockProfiles
	chat      *mocks.MockChat
	wishlists *mocks.MockWishlists
	files     *mocks.MockFiles
	resolver  *mocks.MockGeocodeResolver
	notifier  *mocks.MockNotifier
	clock     *clockwork.FakeClock
}

// newServiceWithMocks поднимает сервис с моками всех зависимостей.
func newServiceWithMocks(t *testing.T) (*testEnv, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)

	env := &testEnv{
		listings:  mocks.NewMockListings(ctrl),
		profiles:  mocks.NewMockProfiles(ctrl),
		chat:      mocks.NewMockChat(ctrl),
		wishlists: mocks.NewMockWishlists(ctrl),
		files:     mocks.NewMockFiles(ctrl),
		resolver:  mocks.NewMockGeocodeResolver(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		clock:     clockwork.NewFakeClock(),
	}

	env.svc = New(Deps{
		Listings:      env.listings,
		Profiles:      env.profiles,
		Chat:          env.chat,
		Wishlists:     env.wishlists,
		Files:         env.files,
		Resolver:      env.resolver,
		Notifier:      env.notifier,
		Clock:         env.clock,
		FeaturedLimit: 25,
	})

	return env, ctrl
}

func claims(sub, email, username string) *auth.Claims {
	return &auth.Claims{Sub: sub, Email: email, Username: username}
}

func owner() *models.UserProfile {
	return &models.UserProfile{
		ID:    primitive.NewObjectID(),
		Email: "owner@example.com",
	}
}

func admin() *models.UserProfile {
	return &models.UserProfile{
		ID:      primitive.NewObjectID(),
		Email:   "admin@example.com",
		IsAdmin: true,
	}
}

func validNewListing() NewListing {
	return NewListing{
		Title:        "2BR flat in Mirpur",
		Price:        25000,
		AddressLine1: "House 7, Road 3",
		CityTown:     "Dhaka",
		Upazila:      "Mirpur",
		District:     "Dhaka",
		PostalCode:   "1216",
		PropertyType: models.PropertyApartment,
		ListingType:  models.ListingRent,
		Bedrooms:     2,
		Bathrooms:    1,
	}
}

func TestCreateListing_Validation(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	cases := []struct {
		name   string
		mutate func(*NewListing)
	}{
		{"empty title", func(l *NewListing) { l.Title = "  " }},
		{"zero price", func(l *NewListing) { l.Price = 0 }},
		{"missing addressLine1", func(l *NewListing) { l.AddressLine1 = "" }},
		{"missing district", func(l *NewListing) { l.District = "" }},
		{"bad propertyType", func(l *NewListing) { l.PropertyType = "castle" }},
		{"bad listingType", func(l *NewListing) { l.ListingType = "lease" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validNewListing()
			tc.mutate(&in)

			_, err := env.svc.CreateListing(context.Background(), owner(), in)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestCreateListing_GeocodesAndPersists(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	in := validNewListing()
	actor := owner()

	env.resolver.EXPECT().
		Resolve(gomock.Any(), geo.Address{
			AddressLine1: in.AddressLine1,
			Upazila:      in.Upazila,
			CityTown:     in.CityTown,
			District:     in.District,
			PostalCode:   in.PostalCode,
		}).
		Return(&geo.Result{
			Lat:      23.81,
			Lng:      90.41,
			Accuracy: geo.AccuracyPrecise,
			Query:    "12 Lake Road, Mirpur, Dhaka, Dhaka, 1216, Bangladesh",
		})

	env.listings.EXPECT().
		CreateListing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l models.Listing) (*models.Listing, error) {
			require.Equal(t, actor.Email, l.CreatedBy)
			require.NotNil(t, l.Position)
			require.Equal(t, 23.81, l.Position.Lat)
			require.Equal(t, string(geo.AccuracyPrecise), l.LocationAccuracy)
			require.Equal(t, "12 Lake Road, Mirpur, Dhaka, Dhaka, 1216, Bangladesh", l.GeocodedAddress)
			require.NotNil(t, l.Images)

			l.ID = primitive.NewObjectID()
			return &l, nil
		})

	created, err := env.svc.CreateListing(context.Background(), actor, in)
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())
}

func TestCreateListing_ResolverNilPinsDefaultCentroid(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	env.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(nil)

	env.listings.EXPECT().
		CreateListing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l models.Listing) (*models.Listing, error) {
			dhaka := geo.DistrictCentroid("")
			require.Equal(t, dhaka.Lat, l.Position.Lat)
			require.Equal(t, dhaka.Lng, l.Position.Lng)
			require.Equal(t, string(geo.AccuracyUnknown), l.LocationAccuracy)
			require.Empty(t, l.GeocodedAddress)
			return &l, nil
		})

	_, err := env.svc.CreateListing(context.Background(), owner(), validNewListing())
	require.NoError(t, err)
}

func TestUpdateListing_OwnershipEnforced(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	env.listings.EXPECT().ListingByID(gomock.Any(), id.Hex()).
		Return(&models.Listing{ID: id, CreatedBy: "someone-else@example.com"}, nil)

	title := "new title"
	_, err := env.svc.UpdateListing(context.Background(), owner(), id.Hex(), ListingUpdate{Title: &title})
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUpdateListing_AdminBypassesOwnership(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	current := &models.Listing{ID: id, CreatedBy: "someone-else@example.com"}

	env.listings.EXPECT().ListingByID(gomock.Any(), id.Hex()).Return(current, nil)

	title := "edited by admin"
	env.listings.EXPECT().
		UpdateListing(gomock.Any(), id.Hex(), map[string]any{"title": title}).
		Return(current, nil)

	_, err := env.svc.UpdateListing(context.Background(), admin(), id.Hex(), ListingUpdate{Title: &title})
	require.NoError(t, err)
}

func TestUpdateListing_RegeocodesOnlyOnAddressChange(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	actor := owner()
	id := primitive.NewObjectID()
	current := &models.Listing{
		ID:           id,
		CreatedBy:    actor.Email,
		AddressLine1: "old street",
		CityTown:     "Dhaka",
		Upazila:      "Mirpur",
		District:     "Dhaka",
		PostalCode:   "1216",
	}

	// Без адресных полей геокодер не вызывается вовсе.
	env.listings.EXPECT().ListingByID(gomock.Any(), id.Hex()).Return(current, nil)
	price := 30000.0
	env.listings.EXPECT().
		UpdateListing(gomock.Any(), id.Hex(), map[string]any{"price": price}).
		Return(current, nil)

	_, err := env.svc.UpdateListing(context.Background(), actor, id.Hex(), ListingUpdate{Price: &price})
	require.NoError(t, err)

	// Смена одного адресного поля запускает геокодирование
	// объединённого адреса.
	env.listings.EXPECT().ListingByID(gomock.Any(), id.Hex()).Return(current, nil)

	newStreet := "new street"
	env.resolver.EXPECT().
		Resolve(gomock.Any(), geo.Address{
			AddressLine1: newStreet,
			Upazila:      current.Upazila,
			CityTown:     current.CityTown,
			District:     current.District,
			PostalCode:   current.PostalCode,
		}).
		Return(&geo.Result{
			Lat:      23.7,
			Lng:      90.4,
			Accuracy: geo.AccuracyApproximate,
			Query:    "new street, Mirpur, Dhaka, Dhaka, 1216, Bangladesh",
		})

	env.listings.EXPECT().
		UpdateListing(gomock.Any(), id.Hex(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields map[string]any) (*models.Listing, error) {
			require.Equal(t, newStreet, fields["addressLine1"])
			require.Equal(t, models.Position{Lat: 23.7, Lng: 90.4}, fields["position"])
			require.Equal(t, string(geo.AccuracyApproximate), fields["locationAccuracy"])
			require.Equal(t, "new street, Mirpur, Dhaka, Dhaka, 1216, Bangladesh", fields["geocodedAddress"])
			return current, nil
		})

	_, err = env.svc.UpdateListing(context.Background(), actor, id.Hex(), ListingUpdate{AddressLine1: &newStreet})
	require.NoError(t, err)
}

func TestListing_MapsStorageErrors(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	env.listings.EXPECT().ListingByID(gomock.Any(), "bad-hex").
		Return(nil, storage.ErrInvalidID)

	_, err := env.svc.Listing(context.Background(), "bad-hex")
	require.ErrorIs(t, err, ErrNotFound)

	env.listings.EXPECT().ListingByID(gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrNotFound)

	_, err = env.svc.Listing(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrNotFound)
}

// --- витрина ---

func TestFeatureListing_UnfeatureIsIdempotent(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	env.listings.EXPECT().SetFeaturedAt(gomock.Any(), id.Hex(), nil).
		Return(&models.Listing{ID: id}, nil).Times(2)

	for range 2 {
		listing, err := env.svc.FeatureListing(context.Background(), id.Hex(), false)
		require.NoError(t, err)
		require.False(t, listing.IsFeatured())
	}
}

func TestFeatureListing_AlreadyFeaturedIsNoop(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	at := time.Now().Add(-time.Hour)

	env.listings.EXPECT().ListingByID(gomock.Any(), id.Hex()).
		Return(&models.Listing{ID: id, FeaturedAt: &at}, nil)

	listing, err := env.svc.FeatureListing(context.Background(), id.Hex(), true)
	require.NoError(t, err)
	require.Equal(t, at, *listing.FeaturedAt)
}

func TestFeatureListing_BelowCapNoEviction(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()

	env.listings.EXPECT().ListingByID(gomock.Any(), id.Hex()).
		Return(&models.Listing{ID: id}, nil)
	env.listings.EXPECT().CountFeatured(gomock.Any(), id.Hex()).
		Return(int64(10), nil)

	now := env.clock.Now()
	env.listings.EXPECT().SetFeaturedAt(gomock.Any(), id.Hex(), &now).
		Return(&models.Listing{ID: id, FeaturedAt: &now}, nil)

	listing, err := env.svc.FeatureListing(context.Background(), id.Hex(), true)
	require.NoError(t, err)
	require.True(t, listing.IsFeatured())
}

func TestFeatureListing_AtCapEvictsOldest(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	oldest := models.Listing{ID: primitive.NewObjectID()}

	env.listings.EXPECT().ListingByID(gomock.Any(), id.Hex()).
		Return(&models.Listing{ID: id}, nil)
	env.listings.EXPECT().CountFeatured(gomock.Any(), id.Hex()).
		Return(int64(25), nil)
	env.listings.EXPECT().OldestFeatured(gomock.Any(), id.Hex(), int64(1)).
		Return([]models.Listing{oldest}, nil)
	env.listings.EXPECT().UnfeatureMany(gomock.Any(), []string{oldest.ID.Hex()}).
		Return(nil)

	now := env.clock.Now()
	env.listings.EXPECT().SetFeaturedAt(gomock.Any(), id.Hex(), &now).
		Return(&models.Listing{ID: id, FeaturedAt: &now}, nil)

	_, err := env.svc.FeatureListing(context.Background(), id.Hex(), true)
	require.NoError(t, err)
}

func TestFeatureListing_OverCapEvictsBatch(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	a := models.Listing{ID: primitive.NewObjectID()}
	b := models.Listing{ID: primitive.NewObjectID()}
	c := models.Listing{ID: primitive.NewObjectID()}

	env.listings.EXPECT().ListingByID(gomock.Any(), id.Hex()).
		Return(&models.Listing{ID: id}, nil)
	// Витрина перезаполнена: 27 занятых слотов, вытесняем 27-25+1 = 3.
	env.listings.EXPECT().CountFeatured(gomock.Any(), id.Hex()).
		Return(int64(27), nil)
	env.listings.EXPECT().OldestFeatured(gomock.Any(), id.Hex(), int64(3)).
		Return([]models.Listing{a, b, c}, nil)
	env.listings.EXPECT().
		UnfeatureMany(gomock.Any(), []string{a.ID.Hex(), b.ID.Hex(), c.ID.Hex()}).
		Return(nil)

	now := env.clock.Now()
	env.listings.EXPECT().SetFeaturedAt(gomock.Any(), id.Hex(), &now).
		Return(&models.Listing{ID: id, FeaturedAt: &now}, nil)

	_, err := env.svc.FeatureListing(context.Background(), id.Hex(), true)
	require.NoError(t, err)
}

// --- админ ---

func TestApproveUser_OnlyFromPending(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()

	env.profiles.EXPECT().ProfileByID(gomock.Any(), id.Hex()).
		Return(&models.UserProfile{ID: id, ApprovalStatus: models.ApprovalRejected}, nil)

	profile, changed, err := env.svc.ApproveUser(context.Background(), id.Hex())
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, models.ApprovalRejected, profile.ApprovalStatus)

	env.profiles.EXPECT().ProfileByID(gomock.Any(), id.Hex()).
		Return(&models.UserProfile{ID: id, ApprovalStatus: models.ApprovalPending}, nil)
	env.profiles.EXPECT().
		UpdateProfile(gomock.Any(), id.Hex(), map[string]any{"approvalStatus": models.ApprovalApproved}).
		Return(&models.UserProfile{ID: id, ApprovalStatus: models.ApprovalApproved}, nil)

	profile, changed, err = env.svc.ApproveUser(context.Background(), id.Hex())
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, models.ApprovalApproved, profile.ApprovalStatus)
}

func TestPatchUser_RejectsUnknownEnums(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	bad := models.ApprovalStatus("maybe")
	_, err := env.svc.PatchUser(context.Background(), primitive.NewObjectID().Hex(), models.UserPatch{ApprovalStatus: &bad})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = env.svc.PatchUser(context.Background(), primitive.NewObjectID().Hex(), models.UserPatch{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGovtIDViewURL_NoDocument(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	env.profiles.EXPECT().ProfileByID(gomock.Any(), id.Hex()).
		Return(&models.UserProfile{ID: id}, nil)

	_, err := env.svc.GovtIDViewURL(context.Background(), id.Hex())
	require.ErrorIs(t, err, ErrNotFound)
}

// --- профили ---

func TestMyProfile_CreatesOnFirstTouch(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	env.profiles.EXPECT().ProfileByEmail(gomock.Any(), "new@example.com").
		Return(nil, storage.ErrNotFound)
	env.profiles.EXPECT().
		CreateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.UserProfile) (*models.UserProfile, error) {
			require.Equal(t, "new@example.com", p.Email)
			require.Equal(t, "sub-1", p.CognitoSub)
			require.Equal(t, "newuser", p.DisplayName)
			p.ID = primitive.NewObjectID()
			return &p, nil
		})

	profile, err := env.svc.MyProfile(context.Background(), claims("sub-1", "New@Example.com", "newuser"))
	require.NoError(t, err)
	require.Equal(t, "new@example.com", profile.Email)
}

func TestMyProfile_HealsSubDrift(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	env.profiles.EXPECT().ProfileByEmail(gomock.Any(), "u@example.com").
		Return(&models.UserProfile{ID: id, Email: "u@example.com", CognitoSub: "stale", Name: "u", DisplayName: "u"}, nil)
	env.profiles.EXPECT().
		UpdateProfile(gomock.Any(), id.Hex(), map[string]any{"cognitoSub": "fresh"}).
		Return(&models.UserProfile{ID: id, CognitoSub: "fresh"}, nil)

	profile, err := env.svc.MyProfile(context.Background(), claims("fresh", "u@example.com", "u"))
	require.NoError(t, err)
	require.Equal(t, "fresh", profile.CognitoSub)
}

func TestUpdateDisplayName_Validation(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	actor := owner()

	_, err := env.svc.UpdateDisplayName(context.Background(), actor, "   ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	long := make([]rune, 101)
	for i := range long {
		long[i] = 'x'
	}
	_, err = env.svc.UpdateDisplayName(context.Background(), actor, string(long))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConfirmGovtID_SetsPending(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	actor := owner()
	actor.CognitoSub = "sub-9"
	key := "govt_ids/sub-9/doc.pdf"

	env.files.EXPECT().CheckGovtIDUpload(gomock.Any(), "sub-9", key).Return(key, nil)
	env.profiles.EXPECT().
		UpdateProfile(gomock.Any(), actor.ID.Hex(), map[string]any{
			"govtIdKey":      key,
			"govtIdUrl":      key,
			"approvalStatus": models.ApprovalPending,
		}).
		Return(&models.UserProfile{ID: actor.ID, ApprovalStatus: models.ApprovalPending}, nil)

	profile, err := env.svc.ConfirmGovtID(context.Background(), actor, key)
	require.NoError(t, err)
	require.Equal(t, models.ApprovalPending, profile.ApprovalStatus)
}

// --- чат ---

func TestStartConversation_RejectsSelfChat(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	actor := owner()

	_, err := env.svc.StartConversation(context.Background(), actor, actor.ID.Hex(), "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = env.svc.StartConversation(context.Background(), actor, "", "")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStartConversation_SortsParticipants(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	actor := owner()
	receiver := primitive.NewObjectID()

	want := []primitive.ObjectID{actor.ID, receiver}
	if want[1].Hex() < want[0].Hex() {
		want[0], want[1] = want[1], want[0]
	}

	env.chat.EXPECT().
		ConversationByParticipants(gomock.Any(), want, nil).
		Return(nil, storage.ErrNotFound)
	env.chat.EXPECT().
		CreateConversation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, conv models.Conversation) (*models.Conversation, error) {
			require.Equal(t, want, conv.Participants)
			conv.ID = primitive.NewObjectID()
			return &conv, nil
		})

	_, err := env.svc.StartConversation(context.Background(), actor, receiver.Hex(), "")
	require.NoError(t, err)
}

func TestSendMessage_ParticipantOnly(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	actor := owner()
	convID := primitive.NewObjectID()

	env.chat.EXPECT().ConversationByID(gomock.Any(), convID.Hex()).
		Return(&models.Conversation{
			ID:           convID,
			Participants: []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()},
		}, nil)

	_, err := env.svc.SendMessage(context.Background(), actor, convID.Hex(), "hello")
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestSendMessage_NotifiesOtherParticipants(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	actor := owner()
	actor.DisplayName = "Rahim"
	other := primitive.NewObjectID()
	convID := primitive.NewObjectID()

	env.chat.EXPECT().ConversationByID(gomock.Any(), convID.Hex()).
		Return(&models.Conversation{
			ID:           convID,
			Participants: []primitive.ObjectID{actor.ID, other},
		}, nil)

	msgID := primitive.NewObjectID()
	env.chat.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m models.Message) (*models.Message, error) {
			require.Equal(t, "hello there", m.Text)
			m.ID = msgID
			m.CreatedAt = time.Now()
			return &m, nil
		})

	env.notifier.EXPECT().
		NotifyNewMessage(gomock.Any(), []string{other.Hex()}, gomock.Any())

	msg, err := env.svc.SendMessage(context.Background(), actor, convID.Hex(), "  hello there  ")
	require.NoError(t, err)
	require.Equal(t, msgID, msg.ID)
}

func TestSendMessage_EmptyText(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := env.svc.SendMessage(context.Background(), owner(), primitive.NewObjectID().Hex(), "   ")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSnippet_TruncatesLongText(t *testing.T) {
	long := make([]rune, 150)
	for i := range long {
		long[i] = 'щ'
	}

	got := snippet(string(long))
	require.Equal(t, string(long[:100])+"...", got)

	require.Equal(t, "short", snippet("short"))
}

// --- избранное ---

func TestWishlist_MissingListEqualsEmpty(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	env.wishlists.EXPECT().WishlistByUsername(gomock.Any(), "nobody").
		Return(nil, storage.ErrNotFound)

	items, err := env.svc.Wishlist(context.Background(), "nobody")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestAddToWishlist_UnknownListing(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	env.listings.EXPECT().ListingByID(gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrNotFound)

	_, err := env.svc.AddToWishlist(context.Background(), "user1", primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveFromWishlist_AbsentItem(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	env.wishlists.EXPECT().RemoveFromWishlist(gomock.Any(), "user1", gomock.Any()).
		Return(nil, storage.ErrNotFound)

	_, err := env.svc.RemoveFromWishlist(context.Background(), "user1", primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteListings_EmptyInput(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := env.svc.DeleteListings(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeleteListings_Bulk(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ids := []string{primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()}
	env.listings.EXPECT().DeleteListings(gomock.Any(), ids).Return(int64(2), nil)

	deleted, err := env.svc.DeleteListings(context.Background(), ids)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)
}

func TestStats_CombinesCounters(t *testing.T) {
	env, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	env.profiles.EXPECT().CountProfiles(gomock.Any()).Return(int64(12), int64(3), nil)
	env.listings.EXPECT().CountListings(gomock.Any()).Return(int64(40), int64(5), int64(7), nil)

	stats, err := env.svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(12), stats.TotalUsers)
	require.Equal(t, int64(3), stats.PendingApprovals)
	require.Equal(t, int64(40), stats.TotalListings)
	require.Equal(t, int64(5), stats.HiddenListings)
	require.Equal(t, int64(7), stats.FeaturedListings)
}

func TestMapStorageErr_Passthrough(t *testing.T) {
	boom := errors.New("boom")
	require.Equal(t, boom, mapStorageErr(boom))
}
