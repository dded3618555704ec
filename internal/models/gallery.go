package models

import "time"

// Category represents a gallery category with its ordered image filenames.
type Category struct {
	ID        string
	Key       string
	Title     string
	Images    []string
	CreatedAt time.Time
}
