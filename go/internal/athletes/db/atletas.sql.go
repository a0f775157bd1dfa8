package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const atletaColumns = `a.pk_id, a.id, a.created_at, a.nome, a.cpf, a.idade, a.peso, a.altura, a.sexo, a.categoria_id, a.centro_treinamento_id`

const atletaDetalheFrom = `
FROM atletas a
JOIN categorias c ON c.pk_id = a.categoria_id
JOIN centros_treinamento ct ON ct.pk_id = a.centro_treinamento_id
`

const createAtleta = `
INSERT INTO atletas (
  id, created_at, nome, cpf, idade, peso, altura, sexo, categoria_id, centro_treinamento_id
) VALUES (
  $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
)
RETURNING pk_id, id, created_at, nome, cpf, idade, peso, altura, sexo, categoria_id, centro_treinamento_id
`

type CreateAtletaParams struct {
	ID                  uuid.UUID
	CreatedAt           time.Time
	Nome                string
	Cpf                 string
	Idade               int32
	Peso                float64
	Altura              float64
	Sexo                string
	CategoriaID         int32
	CentroTreinamentoID int32
}

func (q *Queries) CreateAtleta(ctx context.Context, arg CreateAtletaParams) (Atleta, error) {
	row := q.db.QueryRowContext(ctx, createAtleta,
		arg.ID,
		arg.CreatedAt,
		arg.Nome,
		arg.Cpf,
		arg.Idade,
		arg.Peso,
		arg.Altura,
		arg.Sexo,
		arg.CategoriaID,
		arg.CentroTreinamentoID,
	)
	var i Atleta
	err := scanAtleta(row, &i)
	return i, err
}

const getAtletaDetalhe = `SELECT ` + atletaColumns + `, c.nome, ct.nome` + atletaDetalheFrom + `WHERE a.id = $1`

func (q *Queries) GetAtletaDetalhe(ctx context.Context, id uuid.UUID) (AtletaDetalhe, error) {
	row := q.db.QueryRowContext(ctx, getAtletaDetalhe, id)
	var i AtletaDetalhe
	err := scanAtletaDetalhe(row, &i)
	return i, err
}

const getAtletaForUpdate = `SELECT ` + atletaColumns + ` FROM atletas a WHERE a.id = $1 FOR UPDATE`

func (q *Queries) GetAtletaForUpdate(ctx context.Context, id uuid.UUID) (Atleta, error) {
	row := q.db.QueryRowContext(ctx, getAtletaForUpdate, id)
	var i Atleta
	err := scanAtleta(row, &i)
	return i, err
}

// LIMIT NULL means no limit in Postgres
const listAtletas = `SELECT ` + atletaColumns + `, c.nome, ct.nome` + atletaDetalheFrom + `ORDER BY a.pk_id
LIMIT $1 OFFSET $2`

type ListAtletasParams struct {
	Limit  sql.NullInt32
	Offset int32
}

func (q *Queries) ListAtletas(ctx context.Context, arg ListAtletasParams) ([]AtletaDetalhe, error) {
	return q.queryDetalhes(ctx, listAtletas, arg.Limit, arg.Offset)
}

const filterAtletas = `SELECT ` + atletaColumns + `, c.nome, ct.nome` + atletaDetalheFrom + `WHERE ($1::text IS NULL OR a.nome = $1::text)
  AND ($2::integer IS NULL OR a.idade = $2::integer)
ORDER BY a.pk_id`

type FilterAtletasParams struct {
	Nome  sql.NullString
	Idade sql.NullInt32
}

func (q *Queries) FilterAtletas(ctx context.Context, arg FilterAtletasParams) ([]AtletaDetalhe, error) {
	return q.queryDetalhes(ctx, filterAtletas, arg.Nome, arg.Idade)
}

const updateAtleta = `
UPDATE atletas
SET nome = $2, idade = $3
WHERE id = $1
RETURNING pk_id, id, created_at, nome, cpf, idade, peso, altura, sexo, categoria_id, centro_treinamento_id
`

type UpdateAtletaParams struct {
	ID    uuid.UUID
	Nome  string
	Idade int32
}

func (q *Queries) UpdateAtleta(ctx context.Context, arg UpdateAtletaParams) (Atleta, error) {
	row := q.db.QueryRowContext(ctx, updateAtleta, arg.ID, arg.Nome, arg.Idade)
	var i Atleta
	err := scanAtleta(row, &i)
	return i, err
}

const deleteAtleta = `
DELETE FROM atletas
WHERE id = $1
`

func (q *Queries) DeleteAtleta(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteAtleta, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (q *Queries) queryDetalhes(ctx context.Context, query string, args ...interface{}) ([]AtletaDetalhe, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AtletaDetalhe
	for rows.Next() {
		var i AtletaDetalhe
		if err := scanAtletaDetalhe(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAtleta(s scanner, i *Atleta) error {
	return s.Scan(
		&i.PkID,
		&i.ID,
		&i.CreatedAt,
		&i.Nome,
		&i.Cpf,
		&i.Idade,
		&i.Peso,
		&i.Altura,
		&i.Sexo,
		&i.CategoriaID,
		&i.CentroTreinamentoID,
	)
}

func scanAtletaDetalhe(s scanner, i *AtletaDetalhe) error {
	return s.Scan(
		&i.PkID,
		&i.ID,
		&i.CreatedAt,
		&i.Nome,
		&i.Cpf,
		&i.Idade,
		&i.Peso,
		&i.Altura,
		&i.Sexo,
		&i.CategoriaID,
		&i.CentroTreinamentoID,
		&i.CategoriaNome,
		&i.CentroTreinamentoNome,
	)
}
