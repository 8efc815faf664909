package domain

import (
	"context"
	"time"
)

// User owns a watchlist. Deleting a user deletes their movies.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Username       string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	HashedPassword string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	Movies         []Movie   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// AccessToken is what a successful login hands back.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// UserRepository persists users. Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*User, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// AuthService covers registration, login and token-to-user resolution.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AccessToken, error)
	ResolveIdentity(ctx context.Context, token string) (*User, error)
	GetUser(ctx context.Context, userID uint) (*User, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

// Transactor runs fn inside one database transaction. Repositories called with the
// ctx passed to fn use that transaction; it is committed when fn returns nil and
// rolled back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
