package athletes

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/mcdev12/workout-api/go/internal/apperrors"
	"github.com/mcdev12/workout-api/go/internal/httpapi"
	"github.com/mcdev12/workout-api/go/internal/models"
)

// AthletesApp defines what the service layer needs from the athletes application
type AthletesApp interface {
	CreateAthlete(ctx context.Context, req CreateAthleteRequest) (*models.Athlete, error)
	GetAthlete(ctx context.Context, id uuid.UUID) (*models.Athlete, error)
	ListAthletes(ctx context.Context, pagination PaginationParams) ([]models.AthleteSummary, error)
	FilterAthletes(ctx context.Context, filter AthleteFilter) ([]models.Athlete, error)
	UpdateAthlete(ctx context.Context, id uuid.UUID, req UpdateAthleteRequest) (*models.Athlete, error)
	DeleteAthlete(ctx context.Context, id uuid.UUID) error
}

// Service exposes athletes over HTTP
type Service struct {
	app AthletesApp
}

// NewService creates a new athletes HTTP service
func NewService(app AthletesApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes mounts the athlete endpoints under /atletas
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /atletas/{$}", s.CreateAthlete)
	mux.HandleFunc("GET /atletas/{$}", s.ListAthletes)
	mux.HandleFunc("GET /atletas/items/{$}", s.FilterAthletes)
	mux.HandleFunc("GET /atletas/{id}", s.GetAthlete)
	mux.HandleFunc("PATCH /atletas/{id}", s.UpdateAthlete)
	mux.HandleFunc("DELETE /atletas/{id}", s.DeleteAthlete)
}

// CreateAthlete registers a new athlete
func (s *Service) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	var req CreateAthleteRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	athlete, err := s.app.CreateAthlete(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.Created(w, athlete)
}

// ListAthletes returns the summary view of all athletes
func (s *Service) ListAthletes(w http.ResponseWriter, r *http.Request) {
	pagination, err := parsePagination(r.URL.Query())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	summaries, err := s.app.ListAthletes(r.Context(), pagination)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.OK(w, summaries)
}

// FilterAthletes returns the full view of athletes matching nome and idade
func (s *Service) FilterAthletes(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	athletes, err := s.app.FilterAthletes(r.Context(), filter)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.OK(w, athletes)
}

// GetAthlete retrieves an athlete by ID
func (s *Service) GetAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(r, "id")
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	athlete, err := s.app.GetAthlete(r.Context(), id)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.OK(w, athlete)
}

// UpdateAthlete applies a partial update to an athlete
func (s *Service) UpdateAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(r, "id")
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	var req UpdateAthleteRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	athlete, err := s.app.UpdateAthlete(r.Context(), id, req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.OK(w, athlete)
}

// DeleteAthlete removes an athlete
func (s *Service) DeleteAthlete(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.PathUUID(r, "id")
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	if err := s.app.DeleteAthlete(r.Context(), id); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.NoContent(w)
}

func parsePagination(q url.Values) (PaginationParams, error) {
	var p PaginationParams

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return p, apperrors.NewValidationError("limit", "must be an integer")
		}
		p.Limit = &limit
	}

	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return p, apperrors.NewValidationError("offset", "must be an integer")
		}
		p.Offset = offset
	}

	return p, nil
}

func parseFilter(q url.Values) (AthleteFilter, error) {
	var f AthleteFilter

	if v := q.Get("nome"); v != "" {
		f.Name = &v
	}

	// idade=0 is a real filter, only an empty value is ignored
	if v := q.Get("idade"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return f, apperrors.NewValidationError("idade", "must be an integer")
		}
		f.Age = &age
	}

	return f, nil
}
