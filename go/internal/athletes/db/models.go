package db

import (
	"time"

	"github.com/google/uuid"
)

type Atleta struct {
	PkID                int32
	ID                  uuid.UUID
	CreatedAt           time.Time
	Nome                string
	Cpf                 string
	Idade               int32
	Peso                float64
	Altura              float64
	Sexo                string
	CategoriaID         int32
	CentroTreinamentoID int32
}

// AtletaDetalhe is an atletas row joined with its category and training
// center names
type AtletaDetalhe struct {
	Atleta
	CategoriaNome         string
	CentroTreinamentoNome string
}
