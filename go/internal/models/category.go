package models

import (
	"github.com/google/uuid"
)

// Category is a classification grouping for athletes (e.g. a competition tier)
type Category struct {
	PkID int32     `json:"-"`
	ID   uuid.UUID `json:"id"`
	Name string    `json:"nome"`
}

// CategoryRef names a category inside another resource's payload
type CategoryRef struct {
	Name string `json:"nome"`
}
