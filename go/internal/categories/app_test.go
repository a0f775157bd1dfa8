package categories

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/workout-api/go/internal/apperrors"
	"github.com/mcdev12/workout-api/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository is an in-memory CategoriesRepository
type memoryRepository struct {
	mu         sync.Mutex
	categories []models.Category
}

func (m *memoryRepository) CreateCategory(_ context.Context, category models.Category) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.Name == category.Name {
			return nil, apperrors.NewConflictError(resource, "categorias_nome_key", "")
		}
	}
	category.PkID = int32(len(m.categories) + 1)
	m.categories = append(m.categories, category)
	return &category, nil
}

func (m *memoryRepository) GetCategory(_ context.Context, id uuid.UUID) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError(resource, id.String())
}

func (m *memoryRepository) GetCategoryByName(_ context.Context, name string) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError(resource, name)
}

func (m *memoryRepository) ListCategories(context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Category{}, m.categories...), nil
}

func TestCreateCategory(t *testing.T) {
	app := NewApp(&memoryRepository{})
	ctx := context.Background()

	category, err := app.CreateCategory(ctx, CreateCategoryRequest{Name: "Scale"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, category.ID)
	assert.Equal(t, "Scale", category.Name)

	_, err = app.CreateCategory(ctx, CreateCategoryRequest{Name: "Scale"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreateCategoryValidation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateCategoryRequest
	}{
		{name: "empty name", req: CreateCategoryRequest{}},
		{name: "blank name", req: CreateCategoryRequest{Name: "   "}},
		{name: "name too long", req: CreateCategoryRequest{Name: strings.Repeat("a", 51)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryRepository{}
			_, err := NewApp(repo).CreateCategory(context.Background(), tt.req)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Empty(t, repo.categories)
		})
	}
}

func TestResolveCategory(t *testing.T) {
	app := NewApp(&memoryRepository{})
	ctx := context.Background()

	created, err := app.CreateCategory(ctx, CreateCategoryRequest{Name: "Scale"})
	require.NoError(t, err)

	got, err := app.ResolveCategory(ctx, "Scale")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = app.ResolveCategory(ctx, "RX")
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
