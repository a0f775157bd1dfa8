package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/workout-api/go/internal/apperrors"
	"github.com/mcdev12/workout-api/go/internal/categories/db"
	"github.com/mcdev12/workout-api/go/internal/models"
	"github.com/mcdev12/workout-api/go/internal/sqlutil"
)

const resource = "categoria"

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateCategoria(ctx context.Context, arg db.CreateCategoriaParams) (db.Categoria, error)
	GetCategoria(ctx context.Context, id uuid.UUID) (db.Categoria, error)
	GetCategoriaByNome(ctx context.Context, nome string) (db.Categoria, error)
	ListCategorias(ctx context.Context) ([]db.Categoria, error)
}

// Repository implements category data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new categories repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateCategory inserts a category
func (r *Repository) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	row, err := r.queries.CreateCategoria(ctx, db.CreateCategoriaParams{
		ID:   category.ID,
		Nome: category.Name,
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError(resource, sqlutil.ConstraintName(err),
				fmt.Sprintf("Já existe uma categoria cadastrada com o nome: %s", category.Name))
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return dbCategoryToModel(row), nil
}

// GetCategory retrieves a category by ID
func (r *Repository) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	row, err := r.queries.GetCategoria(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(resource, id.String())
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return dbCategoryToModel(row), nil
}

// GetCategoryByName retrieves a category by its unique name
func (r *Repository) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	row, err := r.queries.GetCategoriaByNome(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(resource, name)
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return dbCategoryToModel(row), nil
}

// ListCategories retrieves all categories ordered by name
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.queries.ListCategorias(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]models.Category, len(rows))
	for i, row := range rows {
		categories[i] = *dbCategoryToModel(row)
	}

	return categories, nil
}

// dbCategoryToModel converts a database category to domain model
func dbCategoryToModel(row db.Categoria) *models.Category {
	return &models.Category{
		PkID: row.PkID,
		ID:   row.ID,
		Name: row.Nome,
	}
}
