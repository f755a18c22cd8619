package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApprovalStatus — статус проверки документов продавца.
type ApprovalStatus string

const (
	ApprovalNotStarted ApprovalStatus = "not_started"
	ApprovalPending    ApprovalStatus = "pending"
	ApprovalApproved   ApprovalStatus = "approved"
	ApprovalRejected   ApprovalStatus = "rejected"
)

func (a ApprovalStatus) Valid() bool {
	switch a {
	case ApprovalNotStarted, ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

// AccountStatus — состояние учётной записи.
type AccountStatus string

const (
	AccountActive  AccountStatus = "active"
	AccountBlocked AccountStatus = "blocked"
)

func (a AccountStatus) Valid() bool {
	return a == AccountActive || a == AccountBlocked
}

// UserProfile — профиль пользователя (MongoDB).
// Identity живёт в Cognito; профиль создаётся лениво из claims токена
// при первом обращении. Email — уникальный ключ связи с объявлениями
// (Listing.CreatedBy хранит email).
type UserProfile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email          string             `bson:"email" json:"email"`
	CognitoSub     string             `bson:"cognitoSub" json:"cognitoSub"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	DisplayName    string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	ApprovalStatus ApprovalStatus     `bson:"approvalStatus" json:"approvalStatus"`
	AccountStatus  AccountStatus      `bson:"accountStatus" json:"accountStatus"`
	GovtIDKey      string             `bson:"govtIdKey,omitempty" json:"-"`
	GovtIDURL      string             `bson:"govtIdUrl,omitempty" json:"govtIdUrl,omitempty"`
	IsAdmin        bool               `bson:"isAdmin" json:"isAdmin"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserFilter — фильтры административной выдачи пользователей.
type UserFilter struct {
	Page   int
	Limit  int
	Sort   string
	Order  string
	Search string
	Status string
}

// UserPage — страница административной выдачи пользователей.
type UserPage struct {
	Items      []UserProfile
	Total      int64
	Page       int
	TotalPages int
}

// UserPatch — частичное административное обновление профиля.
// nil-поле означает «не менять».
type UserPatch struct {
	IsAdmin        *bool
	ApprovalStatus *ApprovalStatus
	AccountStatus  *AccountStatus
}

// AdminStats — сводные счётчики панели администратора.
type AdminStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	PendingApprovals int64 `json:"pendingApprovals"`
	TotalListings    int64 `json:"totalListings"`
	HiddenListings   int64 `json:"hiddenListings"`
	FeaturedListings int64 `json:"featuredListings"`
}
