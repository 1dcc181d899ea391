// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/Chirag30Sharma/AgriScan-Backend/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage provides methods for interacting with database.
type Storage interface {
	CreateProfile(ctx context.Context, p *CreateProfileParams) error
	GetProfile(ctx context.Context, phoneNumber string) (*entities.Profile, error)
	SetPassword(ctx context.Context, phoneNumber, password string) error

	ListChats(ctx context.Context, limit uint16) ([]*entities.Chat, error)
	CreateChat(ctx context.Context, p *CreateChatParams) error
	AddReaction(ctx context.Context, chatID int64, r ReactionType) error

	CreateProblemReport(ctx context.Context, p *CreateProblemReportParams) error
	ListResponses(ctx context.Context, phoneNumber string) ([]*entities.Response, error)
}

// ReactionType ...
type ReactionType string

const (
	// LikeReaction ...
	LikeReaction ReactionType = "liked"
	// DislikeReaction ...
	DislikeReaction ReactionType = "dislike"
)

// CreateProfileParams ...
type CreateProfileParams struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Password    string
}

// CreateChatParams ...
type CreateChatParams struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Title       string
	Description string
}

// CreateProblemReportParams ...
type CreateProblemReportParams struct {
	Photo       string
	Description string
	ImagePath   string
	FarmerID    string
	FarmerName  string
}
