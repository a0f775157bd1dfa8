package trainingcenters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/workout-api/go/internal/apperrors"
	"github.com/mcdev12/workout-api/go/internal/models"
	"github.com/mcdev12/workout-api/go/internal/sqlutil"
	"github.com/mcdev12/workout-api/go/internal/trainingcenters/db"
)

const resource = "centro_treinamento"

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateCentroTreinamento(ctx context.Context, arg db.CreateCentroTreinamentoParams) (db.CentroTreinamento, error)
	GetCentroTreinamento(ctx context.Context, id uuid.UUID) (db.CentroTreinamento, error)
	GetCentroTreinamentoByNome(ctx context.Context, nome string) (db.CentroTreinamento, error)
	ListCentrosTreinamento(ctx context.Context) ([]db.CentroTreinamento, error)
}

// Repository implements training center data access operations
type Repository struct {
	queries Querier
}

func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

func (r *Repository) CreateTrainingCenter(ctx context.Context, tc models.TrainingCenter) (*models.TrainingCenter, error) {
	row, err := r.queries.CreateCentroTreinamento(ctx, db.CreateCentroTreinamentoParams{
		ID:           tc.ID,
		Nome:         tc.Name,
		Endereco:     tc.Address,
		Proprietario: tc.Owner,
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError(resource, sqlutil.ConstraintName(err),
				fmt.Sprintf("Já existe um centro de treinamento cadastrado com o nome: %s", tc.Name))
		}
		return nil, fmt.Errorf("failed to create training center: %w", err)
	}

	return dbTrainingCenterToModel(row), nil
}

func (r *Repository) GetTrainingCenter(ctx context.Context, id uuid.UUID) (*models.TrainingCenter, error) {
	row, err := r.queries.GetCentroTreinamento(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(resource, id.String())
		}
		return nil, fmt.Errorf("failed to get training center: %w", err)
	}

	return dbTrainingCenterToModel(row), nil
}

func (r *Repository) GetTrainingCenterByName(ctx context.Context, name string) (*models.TrainingCenter, error) {
	row, err := r.queries.GetCentroTreinamentoByNome(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(resource, name)
		}
		return nil, fmt.Errorf("failed to get training center by name: %w", err)
	}

	return dbTrainingCenterToModel(row), nil
}

func (r *Repository) ListTrainingCenters(ctx context.Context) ([]models.TrainingCenter, error) {
	rows, err := r.queries.ListCentrosTreinamento(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list training centers: %w", err)
	}

	centers := make([]models.TrainingCenter, len(rows))
	for i, row := range rows {
		centers[i] = *dbTrainingCenterToModel(row)
	}

	return centers, nil
}

func dbTrainingCenterToModel(row db.CentroTreinamento) *models.TrainingCenter {
	return &models.TrainingCenter{
		PkID:    row.PkID,
		ID:      row.ID,
		Name:    row.Nome,
		Address: row.Endereco,
		Owner:   row.Proprietario,
	}
}
