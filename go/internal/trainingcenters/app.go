package trainingcenters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mcdev12/workout-api/go/internal/apperrors"
	"github.com/mcdev12/workout-api/go/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	maxNameLength    = 20
	maxAddressLength = 60
	maxOwnerLength   = 50
)

// TrainingCentersRepository defines what the app layer needs from the repository
type TrainingCentersRepository interface {
	CreateTrainingCenter(ctx context.Context, tc models.TrainingCenter) (*models.TrainingCenter, error)
	GetTrainingCenter(ctx context.Context, id uuid.UUID) (*models.TrainingCenter, error)
	GetTrainingCenterByName(ctx context.Context, name string) (*models.TrainingCenter, error)
	ListTrainingCenters(ctx context.Context) ([]models.TrainingCenter, error)
}

// App handles training center business logic
type App struct {
	repo TrainingCentersRepository
}

func NewApp(repo TrainingCentersRepository) *App {
	return &App{
		repo: repo,
	}
}

func (a *App) CreateTrainingCenter(ctx context.Context, req CreateTrainingCenterRequest) (*models.TrainingCenter, error) {
	if err := a.validateCreateTrainingCenterRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tc, err := a.repo.CreateTrainingCenter(ctx, models.TrainingCenter{
		ID:      uuid.New(),
		Name:    req.Name,
		Address: req.Address,
		Owner:   req.Owner,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create training center: %w", err)
	}

	log.Info().
		Str("training_center_id", tc.ID.String()).
		Str("nome", tc.Name).
		Msg("created training center")
	return tc, nil
}

func (a *App) GetTrainingCenter(ctx context.Context, id uuid.UUID) (*models.TrainingCenter, error) {
	tc, err := a.repo.GetTrainingCenter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get training center: %w", err)
	}
	return tc, nil
}

// ResolveTrainingCenter finds the training center an athlete payload names.
// A missing one is a reference error rather than a not-found.
func (a *App) ResolveTrainingCenter(ctx context.Context, name string) (*models.TrainingCenter, error) {
	tc, err := a.repo.GetTrainingCenterByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewReferenceError(resource, name)
		}
		return nil, fmt.Errorf("failed to resolve training center: %w", err)
	}
	return tc, nil
}

func (a *App) ListTrainingCenters(ctx context.Context) ([]models.TrainingCenter, error) {
	centers, err := a.repo.ListTrainingCenters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list training centers: %w", err)
	}
	return centers, nil
}

func (a *App) validateCreateTrainingCenterRequest(req CreateTrainingCenterRequest) error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"nome", req.Name, maxNameLength},
		{"endereco", req.Address, maxAddressLength},
		{"proprietario", req.Owner, maxOwnerLength},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.NewValidationError(f.name, "is required")
		}
		if utf8.RuneCountInString(f.value) > f.max {
			return apperrors.NewValidationError(f.name, fmt.Sprintf("must be at most %d characters", f.max))
		}
	}
	return nil
}
