// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Profile is a farmer account.
// Phone number acts as the lookup key but is not unique at schema level.
type Profile struct {
	ID          int64
	FirstName   string
	LastName    string
	PhoneNumber string
	Password    string
	CreatedAt   time.Time
}

// Chat is a community post with like/dislike counters.
type Chat struct {
	ID          int64
	FirstName   string
	LastName    string
	PhoneNumber string
	Title       string
	Description string
	Liked       uint32
	Dislike     uint32
	CreatedAt   time.Time
}

// ProblemReport is a crop problem submitted by a farmer.
type ProblemReport struct {
	ID          int64
	Photo       string
	Description string
	ImagePath   string
	FarmerID    string
	FarmerName  string
	CreatedAt   time.Time
}

// Response is an advisory response addressed to a farmer's phone number.
// Rows are written by the advisory pipeline, this service only reads them.
type Response struct {
	ID          int64
	PhoneNumber string
	Response    string
	CreatedAt   time.Time
}
