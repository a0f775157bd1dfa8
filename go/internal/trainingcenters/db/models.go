package db

import (
	"github.com/google/uuid"
)

type CentroTreinamento struct {
	PkID         int32
	ID           uuid.UUID
	Nome         string
	Endereco     string
	Proprietario string
}
