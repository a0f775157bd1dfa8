package categories

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/workout-api/go/internal/httpapi"
	"github.com/mcdev12/workout-api/go/internal/models"
)

// CategoriesApp defines what the service layer needs from the categories application
type CategoriesApp interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// Service exposes categories over HTTP
type Service struct {
	app CategoriesApp
}

// NewService creates a new categories HTTP service
func NewService(app CategoriesApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes mounts the category endpoints under /categorias
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /categorias/{$}", s.CreateCategory)
	mux.HandleFunc("GET /categorias/{$}", s.ListCategories)
	mux.HandleFunc("GET /categorias/{id}", s.GetCategory)
}

// CreateCategory creates a new category
func (s *Service) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	category, err := s.app.CreateCategory(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.Created(w, category)
}

// ListCategories lists every category
func (s *Service) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.app.ListCategories(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.OK(w, categories)
}

// GetCategory retrieves a category by ID
func (s *Service) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(r, "id")
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	category, err := s.app.GetCategory(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.OK(w, category)
}
