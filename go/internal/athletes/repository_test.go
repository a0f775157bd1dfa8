package athletes

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mcdev12/workout-api/go/internal/apperrors"
	"github.com/mcdev12/workout-api/go/internal/athletes/db"
	"github.com/mcdev12/workout-api/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuerier struct {
	createErr   error
	getErr      error
	deleted     int64
	detalhe     db.AtletaDetalhe
	listParams  db.ListAtletasParams
	filterParam db.FilterAtletasParams
}

func (s *stubQuerier) CreateAtleta(_ context.Context, arg db.CreateAtletaParams) (db.Atleta, error) {
	if s.createErr != nil {
		return db.Atleta{}, s.createErr
	}
	return db.Atleta{
		PkID:                9,
		ID:                  arg.ID,
		CreatedAt:           arg.CreatedAt,
		Nome:                arg.Nome,
		Cpf:                 arg.Cpf,
		Idade:               arg.Idade,
		Peso:                arg.Peso,
		Altura:              arg.Altura,
		Sexo:                arg.Sexo,
		CategoriaID:         arg.CategoriaID,
		CentroTreinamentoID: arg.CentroTreinamentoID,
	}, nil
}

func (s *stubQuerier) GetAtletaDetalhe(context.Context, uuid.UUID) (db.AtletaDetalhe, error) {
	return s.detalhe, s.getErr
}

func (s *stubQuerier) ListAtletas(_ context.Context, arg db.ListAtletasParams) ([]db.AtletaDetalhe, error) {
	s.listParams = arg
	return []db.AtletaDetalhe{s.detalhe}, nil
}

func (s *stubQuerier) FilterAtletas(_ context.Context, arg db.FilterAtletasParams) ([]db.AtletaDetalhe, error) {
	s.filterParam = arg
	return nil, nil
}

func (s *stubQuerier) DeleteAtleta(context.Context, uuid.UUID) (int64, error) {
	return s.deleted, nil
}

func newAthleteModel() models.Athlete {
	return models.Athlete{
		ID:                 uuid.New(),
		CreatedAt:          time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Name:               "Joao",
		CPF:                "12345678900",
		Age:                25,
		Weight:             90,
		Height:             1.87,
		Sex:                "M",
		CategoryPkID:       1,
		TrainingCenterPkID: 2,
		Category:           models.CategoryRef{Name: "Scale"},
		TrainingCenter:     models.TrainingCenterRef{Name: "CT King"},
	}
}

func TestRepositoryCreateAthlete(t *testing.T) {
	athlete := newAthleteModel()

	created, err := NewRepository(&stubQuerier{}, nil).CreateAthlete(context.Background(), athlete)
	require.NoError(t, err)

	want := athlete
	want.PkID = 9
	assert.Equal(t, &want, created)
}

func TestRepositoryCreateAthleteClassifiesErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "duplicate cpf",
			err:      &pq.Error{Code: "23505", Constraint: "atletas_cpf_key"},
			sentinel: apperrors.ErrConflict,
			message:  "CPF ou Nome já existe.",
		},
		{
			name:     "category removed",
			err:      &pq.Error{Code: "23503", Constraint: "atletas_categoria_id_fkey"},
			sentinel: apperrors.ErrReferenceNotFound,
			message:  `categoria "Scale" not found`,
		},
		{
			name:     "training center removed",
			err:      &pq.Error{Code: "23503", Constraint: "atletas_centro_treinamento_id_fkey"},
			sentinel: apperrors.ErrReferenceNotFound,
			message:  `centro_treinamento "CT King" not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRepository(&stubQuerier{createErr: tt.err}, nil).CreateAthlete(context.Background(), newAthleteModel())
			require.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.message, err.Error())
		})
	}

	_, err := NewRepository(&stubQuerier{createErr: errors.New("driver: bad connection")}, nil).CreateAthlete(context.Background(), newAthleteModel())
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrConflict)
	assert.NotErrorIs(t, err, apperrors.ErrReferenceNotFound)
}

func TestRepositoryGetAthlete(t *testing.T) {
	q := &stubQuerier{detalhe: db.AtletaDetalhe{
		Atleta:                db.Atleta{PkID: 3, ID: uuid.New(), Nome: "Joao", Idade: 25},
		CategoriaNome:         "Scale",
		CentroTreinamentoNome: "CT King",
	}}

	athlete, err := NewRepository(q, nil).GetAthlete(context.Background(), q.detalhe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Scale", athlete.Category.Name)
	assert.Equal(t, "CT King", athlete.TrainingCenter.Name)
	assert.Equal(t, 25, athlete.Age)

	_, err = NewRepository(&stubQuerier{getErr: sql.ErrNoRows}, nil).GetAthlete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRepositoryListAndFilterParams(t *testing.T) {
	q := &stubQuerier{}
	repo := NewRepository(q, nil)

	_, err := repo.ListAthletes(context.Background(), PaginationParams{})
	require.NoError(t, err)
	assert.False(t, q.listParams.Limit.Valid)

	_, err = repo.ListAthletes(context.Background(), PaginationParams{Limit: intPtr(5), Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, sql.NullInt32{Int32: 5, Valid: true}, q.listParams.Limit)
	assert.Equal(t, int32(10), q.listParams.Offset)

	athletes, err := repo.FilterAthletes(context.Background(), AthleteFilter{Age: intPtr(0)})
	require.NoError(t, err)
	assert.Empty(t, athletes)
	assert.False(t, q.filterParam.Nome.Valid)
	assert.Equal(t, sql.NullInt32{Int32: 0, Valid: true}, q.filterParam.Idade)
}

func TestRepositoryDeleteAthlete(t *testing.T) {
	assert.NoError(t, NewRepository(&stubQuerier{deleted: 1}, nil).DeleteAthlete(context.Background(), uuid.New()))

	err := NewRepository(&stubQuerier{deleted: 0}, nil).DeleteAthlete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
