package categories

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

const maxNameLength = 50

// CategoriesRepository defines what the app layer needs from the repository
type CategoriesRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (*models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// App handles categories business logic
type App struct {
	repo CategoriesRepository
}

// NewApp creates a new categories App
func NewApp(repo CategoriesRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateCategory creates a new category with validation
func (a *App) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error) {
	if err := a.validateCreateCategoryRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := a.repo.CreateCategory(ctx, models.Category{
		ID:   uuid.New(),
		Name: req.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	log.Info().
		Str("category_id", category.ID.String()).
		Str("nome", category.Name).
		Msg("created category")
	return category, nil
}

// GetCategory retrieves a category by ID
func (a *App) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := a.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// ResolveCategory looks a category up by the name another resource refers
// to it with. A missing category is reported as a reference error.
func (a *App) ResolveCategory(ctx context.Context, name string) (*models.Category, error) {
	category, err := a.repo.GetCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewReferenceError(resource, name)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}

// ListCategories retrieves all categories
func (a *App) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := a.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// validateCreateCategoryRequest validates the create category request
func (a *App) validateCreateCategoryRequest(req CreateCategoryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("nome", "is required")
	}
	if utf8.RuneCountInString(req.Name) > maxNameLength {
		return apperrors.NewValidationError("nome", fmt.Sprintf("must be at most %d characters", maxNameLength))
	}
	return nil
}
