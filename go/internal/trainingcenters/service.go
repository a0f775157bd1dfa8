package trainingcenters

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mcdev12/workout-api/go/internal/httpapi"
	"github.com/mcdev12/workout-api/go/internal/models"
)

// TrainingCentersApp defines what the service layer needs from the training centers application
type TrainingCentersApp interface {
	CreateTrainingCenter(ctx context.Context, req CreateTrainingCenterRequest) (*models.TrainingCenter, error)
	GetTrainingCenter(ctx context.Context, id uuid.UUID) (*models.TrainingCenter, error)
	ListTrainingCenters(ctx context.Context) ([]models.TrainingCenter, error)
}

// Service exposes training centers over HTTP
type Service struct {
	app TrainingCentersApp
}

func NewService(app TrainingCentersApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes mounts the training center endpoints under /centros_treinamento
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /centros_treinamento/{$}", s.CreateTrainingCenter)
	mux.HandleFunc("GET /centros_treinamento/{$}", s.ListTrainingCenters)
	mux.HandleFunc("GET /centros_treinamento/{id}", s.GetTrainingCenter)
}

func (s *Service) CreateTrainingCenter(w http.ResponseWriter, r *http.Request) {
	var req CreateTrainingCenterRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	tc, err := s.app.CreateTrainingCenter(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.Created(w, tc)
}

func (s *Service) ListTrainingCenters(w http.ResponseWriter, r *http.Request) {
	centers, err := s.app.ListTrainingCenters(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.OK(w, centers)
}

func (s *Service) GetTrainingCenter(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(r, "id")
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	tc, err := s.app.GetTrainingCenter(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.OK(w, tc)
}
