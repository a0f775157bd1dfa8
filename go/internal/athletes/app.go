package athletes

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/workout-api/go/internal/apperrors"
	"github.com/mcdev12/workout-api/go/internal/events"
	"github.com/mcdev12/workout-api/go/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	maxNameLength = 50
	maxCPFLength  = 11
	maxPageSize   = 100
)

// AthletesRepository defines what the app layer needs from the repository
type AthletesRepository interface {
	CreateAthlete(ctx context.Context, athlete models.Athlete) (*models.Athlete, error)
	GetAthlete(ctx context.Context, id uuid.UUID) (*models.Athlete, error)
	ListAthletes(ctx context.Context, pagination PaginationParams) ([]models.Athlete, error)
	FilterAthletes(ctx context.Context, filter AthleteFilter) ([]models.Athlete, error)
	UpdateAthlete(ctx context.Context, id uuid.UUID, req UpdateAthleteRequest) (*models.Athlete, error)
	DeleteAthlete(ctx context.Context, id uuid.UUID) error
}

// CategoryResolver finds the category an athlete payload refers to by name
type CategoryResolver interface {
	ResolveCategory(ctx context.Context, name string) (*models.Category, error)
}

// TrainingCenterResolver finds the training center an athlete payload refers to by name
type TrainingCenterResolver interface {
	ResolveTrainingCenter(ctx context.Context, name string) (*models.TrainingCenter, error)
}

// App handles athletes business logic
type App struct {
	repo            AthletesRepository
	categories      CategoryResolver
	trainingCenters TrainingCenterResolver
	publisher       events.Publisher
	clock           clockwork.Clock
}

// NewApp creates a new athletes App
func NewApp(
	repo AthletesRepository,
	categories CategoryResolver,
	trainingCenters TrainingCenterResolver,
	publisher events.Publisher,
	clock clockwork.Clock,
) *App {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		repo:            repo,
		categories:      categories,
		trainingCenters: trainingCenters,
		publisher:       publisher,
		clock:           clock,
	}
}

// CreateAthlete validates the payload, resolves its category and training
// center by name and stores the athlete.
func (a *App) CreateAthlete(ctx context.Context, req CreateAthleteRequest) (*models.Athlete, error) {
	if err := a.validateCreateAthleteRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := a.categories.ResolveCategory(ctx, req.Category.Name)
	if err != nil {
		return nil, err
	}

	trainingCenter, err := a.trainingCenters.ResolveTrainingCenter(ctx, req.TrainingCenter.Name)
	if err != nil {
		return nil, err
	}

	athlete, err := a.repo.CreateAthlete(ctx, models.Athlete{
		ID:                 uuid.New(),
		CreatedAt:          a.clock.Now().UTC(),
		Name:               req.Name,
		CPF:                req.CPF,
		Age:                req.Age,
		Weight:             req.Weight,
		Height:             req.Height,
		Sex:                req.Sex,
		CategoryPkID:       category.PkID,
		TrainingCenterPkID: trainingCenter.PkID,
		Category:           req.Category,
		TrainingCenter:     req.TrainingCenter,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create athlete: %w", err)
	}

	log.Info().
		Str("athlete_id", athlete.ID.String()).
		Str("categoria", athlete.Category.Name).
		Str("centro_treinamento", athlete.TrainingCenter.Name).
		Msg("created athlete")

	a.publish(ctx, events.AthleteCreated, athlete.ID, athlete)
	return athlete, nil
}

// GetAthlete retrieves an athlete by ID
func (a *App) GetAthlete(ctx context.Context, id uuid.UUID) (*models.Athlete, error) {
	athlete, err := a.repo.GetAthlete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get athlete: %w", err)
	}
	return athlete, nil
}

// ListAthletes returns the summary view of every athlete, optionally paged
func (a *App) ListAthletes(ctx context.Context, pagination PaginationParams) ([]models.AthleteSummary, error) {
	if err := validatePagination(pagination); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	athletes, err := a.repo.ListAthletes(ctx, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}

	summaries := make([]models.AthleteSummary, len(athletes))
	for i := range athletes {
		summaries[i] = athletes[i].Summary()
	}
	return summaries, nil
}

// FilterAthletes returns the full view of the athletes matching filter. An
// empty result is reported as not found.
func (a *App) FilterAthletes(ctx context.Context, filter AthleteFilter) ([]models.Athlete, error) {
	if err := validateFilter(filter); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	athletes, err := a.repo.FilterAthletes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter athletes: %w", err)
	}

	if len(athletes) == 0 {
		return nil, apperrors.NewNotFoundError("atletas", "")
	}
	return athletes, nil
}

// UpdateAthlete applies a partial update and returns the refreshed athlete
func (a *App) UpdateAthlete(ctx context.Context, id uuid.UUID, req UpdateAthleteRequest) (*models.Athlete, error) {
	if err := a.validateUpdateAthleteRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	athlete, err := a.repo.UpdateAthlete(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update athlete: %w", err)
	}

	log.Info().Str("athlete_id", id.String()).Msg("updated athlete")

	a.publish(ctx, events.AthleteUpdated, athlete.ID, athlete)
	return athlete, nil
}

// DeleteAthlete removes an athlete by ID
func (a *App) DeleteAthlete(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.DeleteAthlete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete athlete: %w", err)
	}

	log.Info().Str("athlete_id", id.String()).Msg("deleted athlete")

	a.publish(ctx, events.AthleteDeleted, id, nil)
	return nil
}

// publish runs after the change is committed, so a broker failure is only logged
func (a *App) publish(ctx context.Context, eventType string, athleteID uuid.UUID, payload any) {
	event := events.NewAthleteEvent(eventType, athleteID, a.clock.Now(), payload)
	if err := a.publisher.Publish(ctx, event); err != nil {
		log.Warn().
			Err(err).
			Str("event_type", eventType).
			Str("athlete_id", athleteID.String()).
			Msg("failed to publish athlete event")
	}
}

// validateCreateAthleteRequest validates the create athlete request
func (a *App) validateCreateAthleteRequest(req CreateAthleteRequest) error {
	if err := validateName(req.Name); err != nil {
		return err
	}

	if strings.TrimSpace(req.CPF) == "" {
		return apperrors.NewValidationError("cpf", "is required")
	}
	if utf8.RuneCountInString(req.CPF) > maxCPFLength {
		return apperrors.NewValidationError("cpf", fmt.Sprintf("must be at most %d characters", maxCPFLength))
	}

	if err := validateAge(req.Age); err != nil {
		return err
	}
	if req.Weight <= 0 {
		return apperrors.NewValidationError("peso", "must be greater than 0")
	}
	if req.Height <= 0 {
		return apperrors.NewValidationError("altura", "must be greater than 0")
	}

	if utf8.RuneCountInString(req.Sex) != 1 {
		return apperrors.NewValidationError("sexo", "must be a single character")
	}

	if strings.TrimSpace(req.Category.Name) == "" {
		return apperrors.NewValidationError("categoria.nome", "is required")
	}
	if strings.TrimSpace(req.TrainingCenter.Name) == "" {
		return apperrors.NewValidationError("centro_treinamento.nome", "is required")
	}

	return nil
}

// validateUpdateAthleteRequest validates the fields present in an update
func (a *App) validateUpdateAthleteRequest(req UpdateAthleteRequest) error {
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return err
		}
	}
	if req.Age != nil {
		if err := validateAge(*req.Age); err != nil {
			return err
		}
	}
	return nil
}

func validateFilter(f AthleteFilter) error {
	if f.Age != nil {
		return validateAge(*f.Age)
	}
	return nil
}

// validateAge bounds idade to the range of the INTEGER column
func validateAge(age int) error {
	if age < 0 {
		return apperrors.NewValidationError("idade", "must not be negative")
	}
	if age > math.MaxInt32 {
		return apperrors.NewValidationError("idade", fmt.Sprintf("must be at most %d", math.MaxInt32))
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("nome", "is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return apperrors.NewValidationError("nome", fmt.Sprintf("must be at most %d characters", maxNameLength))
	}
	return nil
}

func validatePagination(p PaginationParams) error {
	if p.Limit != nil && (*p.Limit < 1 || *p.Limit > maxPageSize) {
		return apperrors.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", maxPageSize))
	}
	if p.Offset < 0 {
		return apperrors.NewValidationError("offset", "must not be negative")
	}
	if p.Offset > math.MaxInt32 {
		return apperrors.NewValidationError("offset", fmt.Sprintf("must be at most %d", math.MaxInt32))
	}
	return nil
}
