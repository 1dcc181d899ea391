// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Chirag30Sharma/AgriScan-Backend/internal/entities"
	"github.com/Chirag30Sharma/AgriScan-Backend/internal/storage"
)

type pg struct {
	ext sqlx.ExtContext
}

type profileDTO struct {
	ID          int64     `db:"id"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	PhoneNumber string    `db:"phone_number"`
	Password    string    `db:"password"`
	CreatedAt   time.Time `db:"created_at"`
}

type chatDTO struct {
	ChatID      int64     `db:"chat_id"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	PhoneNumber string    `db:"phone_number"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Liked       uint32    `db:"liked"`
	Dislike     uint32    `db:"dislike"`
	CreatedAt   time.Time `db:"created_at"`
}

type responseDTO struct {
	ID          int64     `db:"id"`
	PhoneNumber string    `db:"phone_number"`
	Response    string    `db:"response"`
	CreatedAt   time.Time `db:"created_at"`
}

func (s pg) CreateProfile(ctx context.Context, p *storage.CreateProfileParams) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO farmer_profile(first_name, last_name, phone_number, password)
			VALUES($1, $2, $3, $4)
		`, p.FirstName, p.LastName, p.PhoneNumber, p.Password,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetProfile(ctx context.Context, phoneNumber string) (*entities.Profile, error) {
	var p profileDTO

	// phone_number is not unique, the earliest registration wins
	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, first_name, last_name, phone_number, password, created_at
			FROM farmer_profile
			WHERE phone_number = $1
			ORDER BY id
			LIMIT 1
		`,
		phoneNumber,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Profile{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhoneNumber: p.PhoneNumber,
		Password:    p.Password,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func (s pg) SetPassword(ctx context.Context, phoneNumber, password string) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE farmer_profile SET password=$2 WHERE phone_number=$1`,
		phoneNumber, password,
	)

	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) ListChats(ctx context.Context, limit uint16) ([]*entities.Chat, error) {
	var cc []*chatDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc, `
			SELECT chat_id, first_name, last_name, phone_number, title, description, liked, dislike, created_at
			FROM farmer_chat
			LIMIT $1
		`,
		limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Chat, len(cc))
	for i, v := range cc {
		out[i] = &entities.Chat{
			ID:          v.ChatID,
			FirstName:   v.FirstName,
			LastName:    v.LastName,
			PhoneNumber: v.PhoneNumber,
			Title:       v.Title,
			Description: v.Description,
			Liked:       v.Liked,
			Dislike:     v.Dislike,
			CreatedAt:   v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) CreateChat(ctx context.Context, p *storage.CreateChatParams) error {
	// liked and dislike are defaulted to zero by the schema
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO farmer_chat(first_name, last_name, phone_number, title, description)
			VALUES($1, $2, $3, $4, $5)
		`, p.FirstName, p.LastName, p.PhoneNumber, p.Title, p.Description,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) AddReaction(ctx context.Context, chatID int64, r storage.ReactionType) error {
	var column string
	switch r {
	case storage.LikeReaction:
		column = "liked"
	case storage.DislikeReaction:
		column = "dislike"
	default:
		return fmt.Errorf("unknown reaction type %q", r)
	}

	// the increment is a single atomic update, concurrent reactions can not lose each other
	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`UPDATE farmer_chat SET %s = %s + 1 WHERE chat_id = $1`, column, column),
		chatID,
	)

	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) CreateProblemReport(ctx context.Context, p *storage.CreateProblemReportParams) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO farmer_problem(photo, description, image_path, farmer_id, farmer_name)
			VALUES($1, $2, $3, $4, $5)
		`, p.Photo, p.Description, p.ImagePath, p.FarmerID, p.FarmerName,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListResponses(ctx context.Context, phoneNumber string) ([]*entities.Response, error) {
	var rr []*responseDTO

	if err := sqlx.SelectContext(ctx, s.ext, &rr, `
			SELECT id, phone_number, response, created_at
			FROM farmer_response
			WHERE phone_number = $1
		`,
		phoneNumber,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Response, len(rr))
	for i, v := range rr {
		out[i] = &entities.Response{
			ID:          v.ID,
			PhoneNumber: v.PhoneNumber,
			Response:    v.Response,
			CreatedAt:   v.CreatedAt,
		}
	}

	return out, nil
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}
