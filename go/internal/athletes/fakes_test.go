package athletes

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mcdev12/workout-api/go/internal/apperrors"
	"github.com/mcdev12/workout-api/go/internal/events"
	"github.com/mcdev12/workout-api/go/internal/models"
)

// memoryRepository is an in-memory AthletesRepository keyed like the
// atletas table: insertion order by pk_id and a unique cpf.
type memoryRepository struct {
	mu       sync.Mutex
	nextPk   int32
	athletes []models.Athlete
}

func (m *memoryRepository) CreateAthlete(_ context.Context, athlete models.Athlete) (*models.Athlete, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.athletes {
		if existing.CPF == athlete.CPF {
			return nil, apperrors.NewConflictError(resource, "atletas_cpf_key", duplicateMessage)
		}
	}
	m.nextPk++
	athlete.PkID = m.nextPk
	m.athletes = append(m.athletes, athlete)
	return &athlete, nil
}

func (m *memoryRepository) GetAthlete(_ context.Context, id uuid.UUID) (*models.Athlete, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.athletes {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, apperrors.NewNotFoundError(resource, id.String())
}

func (m *memoryRepository) ListAthletes(_ context.Context, p PaginationParams) ([]models.Athlete, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := append([]models.Athlete{}, m.athletes...)
	if p.Offset >= len(all) {
		return []models.Athlete{}, nil
	}
	all = all[p.Offset:]
	if p.Limit != nil && *p.Limit < len(all) {
		all = all[:*p.Limit]
	}
	return all, nil
}

func (m *memoryRepository) FilterAthletes(_ context.Context, f AthleteFilter) ([]models.Athlete, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Athlete
	for _, a := range m.athletes {
		if f.Name != nil && a.Name != *f.Name {
			continue
		}
		if f.Age != nil && a.Age != *f.Age {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memoryRepository) UpdateAthlete(_ context.Context, id uuid.UUID, req UpdateAthleteRequest) (*models.Athlete, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.athletes {
		if m.athletes[i].ID == id {
			req.Apply(&m.athletes[i])
			updated := m.athletes[i]
			return &updated, nil
		}
	}
	return nil, apperrors.NewNotFoundError(resource, id.String())
}

func (m *memoryRepository) DeleteAthlete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.athletes {
		if m.athletes[i].ID == id {
			m.athletes = append(m.athletes[:i], m.athletes[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError(resource, id.String())
}

func (m *memoryRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.athletes)
}

type referenceData struct {
	categories      map[string]int32
	trainingCenters map[string]int32
}

func seededReferences() *referenceData {
	return &referenceData{
		categories:      map[string]int32{"Scale": 1, "RX": 2},
		trainingCenters: map[string]int32{"CT King": 7},
	}
}

func (r *referenceData) ResolveCategory(_ context.Context, name string) (*models.Category, error) {
	pk, ok := r.categories[name]
	if !ok {
		return nil, apperrors.NewReferenceError("categoria", name)
	}
	return &models.Category{PkID: pk, ID: uuid.New(), Name: name}, nil
}

func (r *referenceData) ResolveTrainingCenter(_ context.Context, name string) (*models.TrainingCenter, error) {
	pk, ok := r.trainingCenters[name]
	if !ok {
		return nil, apperrors.NewReferenceError("centro_treinamento", name)
	}
	return &models.TrainingCenter{PkID: pk, ID: uuid.New(), Name: name}, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}
