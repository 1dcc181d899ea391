package server

import (
	"github.com/Chirag30Sharma/AgriScan-Backend/internal/entities"
)

const maxChats = 1000

// login body codes, the login endpoint reports its outcome in the body
// with status 200 and the app switches on the code.
const (
	loginCodeOK            = 1
	loginCodeUnknownPhone  = 2
	loginCodeWrongPassword = 3
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// RegisterRequest ...
type RegisterRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// LoginRequest ...
type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// LoginResponse ...
// swagger:model
type LoginResponse struct {
	Code        int    `json:"code"`
	PhoneNumber string `json:"phone_number,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
}

// Chat ...
// swagger:model
type Chat struct {
	ChatID      int64  `json:"chat_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Liked       uint32 `json:"liked"`
	Dislike     uint32 `json:"dislike"`
	CreatedAt   uint64 `json:"created_at"`
}

// CreateChatRequest ...
type CreateChatRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UploadImageRequest ...
type UploadImageRequest struct {
	Photo       string `json:"photo"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

// UploadFileResponse ...
// swagger:model
type UploadFileResponse struct {
	ImagePath string `json:"image_path"`
}

// HistoryRequest ...
type HistoryRequest struct {
	Phone string `json:"phone"`
}

// HistoryItem ...
// swagger:model
type HistoryItem struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phone_number"`
	Response    string `json:"response"`
	CreatedAt   uint64 `json:"created_at"`
}

// ChangePasswordRequest ...
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
	PhoneNumber     string `json:"phone_number"`
}

// MessageResponse ...
// swagger:model
type MessageResponse struct {
	Message string `json:"message"`
}

func toAPIChat(c *entities.Chat) *Chat {
	if c == nil {
		return nil
	}

	return &Chat{
		ChatID:      c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
		Title:       c.Title,
		Description: c.Description,
		Liked:       c.Liked,
		Dislike:     c.Dislike,
		CreatedAt:   uint64(c.CreatedAt.Unix()),
	}
}

func toAPIHistoryItem(r *entities.Response) *HistoryItem {
	if r == nil {
		return nil
	}

	return &HistoryItem{
		ID:          r.ID,
		PhoneNumber: r.PhoneNumber,
		Response:    r.Response,
		CreatedAt:   uint64(r.CreatedAt.Unix()),
	}
}
