// Package models содержит доменные сущности сервиса объявлений.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyType — тип недвижимости.
type PropertyType string

const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyCondo      PropertyType = "condo"
	PropertyLand       PropertyType = "land"
	PropertyCommercial PropertyType = "commercial"
)

// Valid сообщает, входит ли значение в допустимый набор.
func (p PropertyType) Valid() bool {
	switch p {
	case PropertyApartment, PropertyHouse, PropertyCondo, PropertyLand, PropertyCommercial:
		return true
	default:
		return false
	}
}

// ListingType — режим размещения объявления.
type ListingType string

const (
	ListingRent ListingType = "rent"
	ListingBuy  ListingType = "buy"
	ListingSold ListingType = "sold"
)

func (l ListingType) Valid() bool {
	switch l {
	case ListingRent, ListingBuy, ListingSold:
		return true
	default:
		return false
	}
}

// Position — координаты объявления (широта/долгота, WGS84).
type Position struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Features — стандартный набор удобств.
type Features struct {
	Parking         bool   `bson:"parking" json:"parking"`
	Garden          bool   `bson:"garden" json:"garden"`
	AirConditioning bool   `bson:"airConditioning" json:"airConditioning"`
	Furnished       string `bson:"furnished" json:"furnished"` // no | semi | full
	Pool            bool   `bson:"pool" json:"pool"`
}

// BangladeshDetails — локальные характеристики объекта.
// Все поля опциональны; enum-значения проверяются на записи.
type BangladeshDetails struct {
	PropertyCondition     string   `bson:"propertyCondition,omitempty" json:"propertyCondition,omitempty"`
	ProximityToMainRoad   string   `bson:"proximityToMainRoad,omitempty" json:"proximityToMainRoad,omitempty"`
	PublicTransport       string   `bson:"publicTransport,omitempty" json:"publicTransport,omitempty"`
	FloodProne            string   `bson:"floodProne,omitempty" json:"floodProne,omitempty"`
	WaterSource           string   `bson:"waterSource,omitempty" json:"waterSource,omitempty"`
	GasSource             string   `bson:"gasSource,omitempty" json:"gasSource,omitempty"`
	GasLineInstalled      string   `bson:"gasLineInstalled,omitempty" json:"gasLineInstalled,omitempty"`
	BackupPower           string   `bson:"backupPower,omitempty" json:"backupPower,omitempty"`
	SewerSystem           string   `bson:"sewerSystem,omitempty" json:"sewerSystem,omitempty"`
	NearbySchools         string   `bson:"nearbySchools,omitempty" json:"nearbySchools,omitempty"`
	NearbyHospitals       string   `bson:"nearbyHospitals,omitempty" json:"nearbyHospitals,omitempty"`
	NearbyMarkets         string   `bson:"nearbyMarkets,omitempty" json:"nearbyMarkets,omitempty"`
	NearbyReligiousPlaces string   `bson:"nearbyReligiousPlaces,omitempty" json:"nearbyReligiousPlaces,omitempty"`
	NearbyOthers          string   `bson:"nearbyOthers,omitempty" json:"nearbyOthers,omitempty"`
	SecurityFeatures      []string `bson:"securityFeatures,omitempty" json:"securityFeatures,omitempty"`
	EarthquakeResistance  string   `bson:"earthquakeResistance,omitempty" json:"earthquakeResistance,omitempty"`
	RoadWidth             string   `bson:"roadWidth,omitempty" json:"roadWidth,omitempty"`
	ParkingType           string   `bson:"parkingType,omitempty" json:"parkingType,omitempty"`
	FloorNumber           *int     `bson:"floorNumber,omitempty" json:"floorNumber,omitempty"`
	TotalFloors           *int     `bson:"totalFloors,omitempty" json:"totalFloors,omitempty"`
	Balcony               string   `bson:"balcony,omitempty" json:"balcony,omitempty"`
	RooftopAccess         string   `bson:"rooftopAccess,omitempty" json:"rooftopAccess,omitempty"`
	NaturalLight          string   `bson:"naturalLight,omitempty" json:"naturalLight,omitempty"`
	OwnershipPapers       string   `bson:"ownershipPapers,omitempty" json:"ownershipPapers,omitempty"`
	PropertyTenure        string   `bson:"propertyTenure,omitempty" json:"propertyTenure,omitempty"`
	RecentRenovations     string   `bson:"recentRenovations,omitempty" json:"recentRenovations,omitempty"`
	NearbyDevelopments    string   `bson:"nearbyDevelopments,omitempty" json:"nearbyDevelopments,omitempty"`
	ReasonForSelling      string   `bson:"reasonForSelling,omitempty" json:"reasonForSelling,omitempty"`
}

// Listing — объявление о недвижимости (MongoDB).
// Важно:
//   - ID — ObjectID MongoDB, наружу сериализуется hex-строкой;
//   - CreatedBy хранит email владельца (исторический формат данных);
//   - Position/LocationAccuracy/GeocodedAddress проставляются геокодером при
//     создании/изменении; GeocodedAddress — нормализованный запрос к провайдеру
//     (пустой, если автоматическое геокодирование не сработало);
//   - FeaturedAt == nil означает «не на витрине»; порядок вытеснения — по
//     возрастанию FeaturedAt.
type Listing struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title string             `bson:"title" json:"title"`
	Price float64            `bson:"price" json:"price"`

	AddressLine1 string `bson:"addressLine1" json:"addressLine1"`
	AddressLine2 string `bson:"addressLine2,omitempty" json:"addressLine2,omitempty"`
	CityTown     string `bson:"cityTown" json:"cityTown"`
	Upazila      string `bson:"upazila" json:"upazila"`
	District     string `bson:"district" json:"district"`
	PostalCode   string `bson:"postalCode" json:"postalCode"`

	PropertyType PropertyType `bson:"propertyType" json:"propertyType"`
	ListingType  ListingType  `bson:"listingType" json:"listingType"`

	Bedrooms  int      `bson:"bedrooms" json:"bedrooms"`
	Bathrooms int      `bson:"bathrooms" json:"bathrooms"`
	Area      *float64 `bson:"area,omitempty" json:"area,omitempty"`

	Features          Features          `bson:"features" json:"features"`
	BangladeshDetails BangladeshDetails `bson:"bangladeshDetails" json:"bangladeshDetails"`

	Position         *Position `bson:"position,omitempty" json:"position,omitempty"`
	LocationAccuracy string    `bson:"locationAccuracy,omitempty" json:"locationAccuracy,omitempty"`
	GeocodedAddress  string    `bson:"geocodedAddress,omitempty" json:"geocodedAddress,omitempty"`

	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string `bson:"images" json:"images"`

	IsHidden   bool       `bson:"isHidden" json:"isHidden"`
	FeaturedAt *time.Time `bson:"featuredAt,omitempty" json:"featuredAt,omitempty"`

	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsFeatured — признак витрины.
func (l *Listing) IsFeatured() bool { return l.FeaturedAt != nil }

// ListingFilter — фильтры публичной выдачи объявлений.
type ListingFilter struct {
	District     string
	Upazila      string
	PropertyType string
	ListingType  string
	MinPrice     *float64
	MaxPrice     *float64
}

// AdminListingFilter — фильтры административной выдачи.
type AdminListingFilter struct {
	Page         int
	Limit        int
	Sort         string
	Order        string
	Search       string
	ListingType  string
	PropertyType string
	IsHidden     *bool
	IsFeatured   *bool
}

// ListingPage — страница административной выдачи.
type ListingPage struct {
	Items      []Listing
	Total      int64
	Page       int
	TotalPages int
}
