package models

import "time"

// Feedback represents a guest feedback entry. Photos holds the IDs of
// uploaded images in the photo store.
type Feedback struct {
	ID        string
	Name      string
	Email     string
	Rating    int
	Comments  string
	Photos    []string
	CreatedAt time.Time
}
