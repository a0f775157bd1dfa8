package athletes

import (
	"github.com/mcdev12/workout-api/go/internal/models"
)

// CreateAthleteRequest represents the data needed to register a new athlete
type CreateAthleteRequest struct {
	Name           string                   `json:"nome"`
	CPF            string                   `json:"cpf"`
	Age            int                      `json:"idade"`
	Weight         float64                  `json:"peso"`
	Height         float64                  `json:"altura"`
	Sex            string                   `json:"sexo"`
	Category       models.CategoryRef       `json:"categoria"`
	TrainingCenter models.TrainingCenterRef `json:"centro_treinamento"`
}

// UpdateAthleteRequest carries a partial update. Nil fields are left untouched.
type UpdateAthleteRequest struct {
	Name *string `json:"nome,omitempty"`
	Age  *int    `json:"idade,omitempty"`
}

// Apply merges the fields present in the request into athlete.
func (r UpdateAthleteRequest) Apply(athlete *models.Athlete) {
	if r.Name != nil {
		athlete.Name = *r.Name
	}
	if r.Age != nil {
		athlete.Age = *r.Age
	}
}

// AthleteFilter holds the optional equality filters of the items query
type AthleteFilter struct {
	Name *string
	Age  *int
}

// PaginationParams limits the athlete list. A nil Limit returns every row.
type PaginationParams struct {
	Limit  *int
	Offset int
}
