package athletes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/workout-api/go/internal/apperrors"
	"github.com/mcdev12/workout-api/go/internal/athletes/db"
	"github.com/mcdev12/workout-api/go/internal/models"
	"github.com/mcdev12/workout-api/go/internal/sqlutil"
)

const resource = "atleta"

// duplicateMessage is reported for any unique violation on atletas. Only
// cpf carries a unique constraint, so a repeated nome alone never triggers it.
const duplicateMessage = "CPF ou Nome já existe."

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateAtleta(ctx context.Context, arg db.CreateAtletaParams) (db.Atleta, error)
	GetAtletaDetalhe(ctx context.Context, id uuid.UUID) (db.AtletaDetalhe, error)
	ListAtletas(ctx context.Context, arg db.ListAtletasParams) ([]db.AtletaDetalhe, error)
	FilterAtletas(ctx context.Context, arg db.FilterAtletasParams) ([]db.AtletaDetalhe, error)
	DeleteAtleta(ctx context.Context, id uuid.UUID) (int64, error)
}

// Repository handles all athlete-related database operations
type Repository struct {
	db      *sql.DB
	queries Querier
}

// NewRepository creates a new athletes repository. The *sql.DB is used to
// open the transaction of partial updates.
func NewRepository(queries Querier, database *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		db:      database,
	}
}

// CreateAthlete inserts athlete, whose category and training center keys
// must already be resolved.
func (r *Repository) CreateAthlete(ctx context.Context, athlete models.Athlete) (*models.Athlete, error) {
	row, err := r.queries.CreateAtleta(ctx, db.CreateAtletaParams{
		ID:                  athlete.ID,
		CreatedAt:           athlete.CreatedAt,
		Nome:                athlete.Name,
		Cpf:                 athlete.CPF,
		Idade:               int32(athlete.Age),
		Peso:                athlete.Weight,
		Altura:              athlete.Height,
		Sexo:                athlete.Sex,
		CategoriaID:         athlete.CategoryPkID,
		CentroTreinamentoID: athlete.TrainingCenterPkID,
	})
	if err != nil {
		switch {
		case sqlutil.IsUniqueViolation(err):
			return nil, apperrors.NewConflictError(resource, sqlutil.ConstraintName(err), duplicateMessage)
		case sqlutil.IsForeignKeyViolation(err):
			// the referenced row disappeared after it was resolved
			return nil, referenceErrorFor(sqlutil.ConstraintName(err), athlete)
		}
		return nil, fmt.Errorf("failed to create athlete: %w", err)
	}

	created := dbAthleteToModel(row)
	created.Category = athlete.Category
	created.TrainingCenter = athlete.TrainingCenter
	return created, nil
}

// GetAthlete retrieves an athlete with its category and training center names
func (r *Repository) GetAthlete(ctx context.Context, id uuid.UUID) (*models.Athlete, error) {
	row, err := r.queries.GetAtletaDetalhe(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(resource, id.String())
		}
		return nil, fmt.Errorf("failed to get athlete: %w", err)
	}

	return dbAthleteDetalheToModel(row), nil
}

// ListAthletes retrieves athletes in insertion order
func (r *Repository) ListAthletes(ctx context.Context, pagination PaginationParams) ([]models.Athlete, error) {
	rows, err := r.queries.ListAtletas(ctx, db.ListAtletasParams{
		Limit:  sqlutil.ToSqlInt32(pagination.Limit),
		Offset: int32(pagination.Offset),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}

	return dbAthleteDetalhesToModels(rows), nil
}

// FilterAthletes retrieves athletes matching every filter that is set
func (r *Repository) FilterAthletes(ctx context.Context, filter AthleteFilter) ([]models.Athlete, error) {
	rows, err := r.queries.FilterAtletas(ctx, db.FilterAtletasParams{
		Nome:  sqlutil.ToSqlString(filter.Name),
		Idade: sqlutil.ToSqlInt32(filter.Age),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to filter athletes: %w", err)
	}

	return dbAthleteDetalhesToModels(rows), nil
}

// UpdateAthlete locks the athlete row, merges req into it and writes it back
// in one transaction. It returns the refreshed full view.
func (r *Repository) UpdateAthlete(ctx context.Context, id uuid.UUID, req UpdateAthleteRequest) (*models.Athlete, error) {
	var updated *models.Athlete

	err := sqlutil.Run(ctx, r.db, newTxQueries, func(q *db.Queries) error {
		row, err := q.GetAtletaForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NewNotFoundError(resource, id.String())
			}
			return fmt.Errorf("failed to lock athlete: %w", err)
		}

		athlete := dbAthleteToModel(row)
		req.Apply(athlete)

		if _, err := q.UpdateAtleta(ctx, db.UpdateAtletaParams{
			ID:    athlete.ID,
			Nome:  athlete.Name,
			Idade: int32(athlete.Age),
		}); err != nil {
			if sqlutil.IsUniqueViolation(err) {
				return apperrors.NewConflictError(resource, sqlutil.ConstraintName(err), duplicateMessage)
			}
			return fmt.Errorf("failed to update athlete: %w", err)
		}

		refreshed, err := q.GetAtletaDetalhe(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to refresh athlete: %w", err)
		}
		updated = dbAthleteDetalheToModel(refreshed)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAthlete removes an athlete by ID
func (r *Repository) DeleteAthlete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteAtleta(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete athlete: %w", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(resource, id.String())
	}

	return nil
}

func newTxQueries(tx *sql.Tx) *db.Queries {
	return db.New(tx)
}

func referenceErrorFor(constraint string, athlete models.Athlete) error {
	if constraint == "atletas_centro_treinamento_id_fkey" {
		return apperrors.NewReferenceError("centro_treinamento", athlete.TrainingCenter.Name)
	}
	return apperrors.NewReferenceError("categoria", athlete.Category.Name)
}

func dbAthleteToModel(row db.Atleta) *models.Athlete {
	return &models.Athlete{
		PkID:               row.PkID,
		ID:                 row.ID,
		CreatedAt:          row.CreatedAt,
		Name:               row.Nome,
		CPF:                row.Cpf,
		Age:                int(row.Idade),
		Weight:             row.Peso,
		Height:             row.Altura,
		Sex:                row.Sexo,
		CategoryPkID:       row.CategoriaID,
		TrainingCenterPkID: row.CentroTreinamentoID,
	}
}

func dbAthleteDetalheToModel(row db.AtletaDetalhe) *models.Athlete {
	athlete := dbAthleteToModel(row.Atleta)
	athlete.Category = models.CategoryRef{Name: row.CategoriaNome}
	athlete.TrainingCenter = models.TrainingCenterRef{Name: row.CentroTreinamentoNome}
	return athlete
}

func dbAthleteDetalhesToModels(rows []db.AtletaDetalhe) []models.Athlete {
	athletes := make([]models.Athlete, len(rows))
	for i, row := range rows {
		athletes[i] = *dbAthleteDetalheToModel(row)
	}
	return athletes
}
