package db

import (
	"github.com/google/uuid"
)

type Categoria struct {
	PkID int32
	ID   uuid.UUID
	Nome string
}
