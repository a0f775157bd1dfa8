package models

import (
	"time"

	"github.com/google/uuid"
)

// Athlete represents a tracked athlete with its category and training center
type Athlete struct {
	PkID               int32             `json:"-"`
	ID                 uuid.UUID         `json:"id"`
	CreatedAt          time.Time         `json:"created_at"`
	Name               string            `json:"nome"`
	CPF                string            `json:"cpf"`
	Age                int               `json:"idade"`
	Weight             float64           `json:"peso"`
	Height             float64           `json:"altura"`
	Sex                string            `json:"sexo"`
	CategoryPkID       int32             `json:"-"`
	TrainingCenterPkID int32             `json:"-"`
	Category           CategoryRef       `json:"categoria"`
	TrainingCenter     TrainingCenterRef `json:"centro_treinamento"`
}

// AthleteSummary is the reduced list projection of an athlete. Personal
// fields are left out on purpose.
type AthleteSummary struct {
	Name           string            `json:"nome"`
	Category       CategoryRef       `json:"categoria"`
	TrainingCenter TrainingCenterRef `json:"centro_treinamento"`
}

// Summary projects the athlete into its list view
func (a *Athlete) Summary() AthleteSummary {
	return AthleteSummary{
		Name:           a.Name,
		Category:       a.Category,
		TrainingCenter: a.TrainingCenter,
	}
}
