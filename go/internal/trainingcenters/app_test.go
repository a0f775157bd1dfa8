package trainingcenters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/workout-api/go/internal/apperrors"
	"github.com/mcdev12/workout-api/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	centers []models.TrainingCenter
	err     error
}

func (m *memoryRepository) CreateTrainingCenter(_ context.Context, tc models.TrainingCenter) (*models.TrainingCenter, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, existing := range m.centers {
		if existing.Name == tc.Name {
			return nil, apperrors.NewConflictError(resource, "centros_treinamento_nome_key", "")
		}
	}
	tc.PkID = int32(len(m.centers) + 1)
	m.centers = append(m.centers, tc)
	return &tc, nil
}

func (m *memoryRepository) GetTrainingCenter(_ context.Context, id uuid.UUID) (*models.TrainingCenter, error) {
	for _, tc := range m.centers {
		if tc.ID == id {
			return &tc, nil
		}
	}
	return nil, apperrors.NewNotFoundError(resource, id.String())
}

func (m *memoryRepository) GetTrainingCenterByName(_ context.Context, name string) (*models.TrainingCenter, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, tc := range m.centers {
		if tc.Name == name {
			return &tc, nil
		}
	}
	return nil, apperrors.NewNotFoundError(resource, name)
}

func (m *memoryRepository) ListTrainingCenters(context.Context) ([]models.TrainingCenter, error) {
	return append([]models.TrainingCenter{}, m.centers...), nil
}

func validRequest() CreateTrainingCenterRequest {
	return CreateTrainingCenterRequest{Name: "CT King", Address: "Rua X, Q02", Owner: "Marcos"}
}

func TestCreateTrainingCenter(t *testing.T) {
	app := NewApp(&memoryRepository{})

	tc, err := app.CreateTrainingCenter(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tc.ID)
	assert.Equal(t, "CT King", tc.Name)
	assert.Equal(t, "Rua X, Q02", tc.Address)
	assert.Equal(t, "Marcos", tc.Owner)

	_, err = app.CreateTrainingCenter(context.Background(), validRequest())
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreateTrainingCenterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateTrainingCenterRequest)
		field  string
	}{
		{"missing name", func(r *CreateTrainingCenterRequest) { r.Name = "" }, "nome"},
		{"name over 20", func(r *CreateTrainingCenterRequest) { r.Name = strings.Repeat("n", 21) }, "nome"},
		{"address over 60", func(r *CreateTrainingCenterRequest) { r.Address = strings.Repeat("e", 61) }, "endereco"},
		{"missing owner", func(r *CreateTrainingCenterRequest) { r.Owner = " " }, "proprietario"},
		{"owner over 50", func(r *CreateTrainingCenterRequest) { r.Owner = strings.Repeat("p", 51) }, "proprietario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			_, err := NewApp(&memoryRepository{}).CreateTrainingCenter(context.Background(), req)
			require.ErrorIs(t, err, apperrors.ErrInvalidInput)

			var verr *apperrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestResolveTrainingCenter(t *testing.T) {
	repo := &memoryRepository{}
	app := NewApp(repo)
	_, err := app.CreateTrainingCenter(context.Background(), validRequest())
	require.NoError(t, err)

	tc, err := app.ResolveTrainingCenter(context.Background(), "CT King")
	require.NoError(t, err)
	assert.Equal(t, int32(1), tc.PkID)

	_, err = app.ResolveTrainingCenter(context.Background(), "CT Queen")
	assert.ErrorIs(t, err, apperrors.ErrReferenceNotFound)

	repo.err = errors.New("db down")
	_, err = app.ResolveTrainingCenter(context.Background(), "CT King")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrReferenceNotFound)
}
