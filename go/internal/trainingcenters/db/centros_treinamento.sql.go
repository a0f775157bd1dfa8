package db

import (
	"context"

	"github.com/google/uuid"
)

const createCentroTreinamento = `
INSERT INTO centros_treinamento (id, nome, endereco, proprietario)
VALUES ($1, $2, $3, $4)
RETURNING pk_id, id, nome, endereco, proprietario
`

type CreateCentroTreinamentoParams struct {
	ID           uuid.UUID
	Nome         string
	Endereco     string
	Proprietario string
}

func (q *Queries) CreateCentroTreinamento(ctx context.Context, arg CreateCentroTreinamentoParams) (CentroTreinamento, error) {
	row := q.db.QueryRowContext(ctx, createCentroTreinamento,
		arg.ID,
		arg.Nome,
		arg.Endereco,
		arg.Proprietario,
	)
	var i CentroTreinamento
	err := row.Scan(
		&i.PkID,
		&i.ID,
		&i.Nome,
		&i.Endereco,
		&i.Proprietario,
	)
	return i, err
}

const getCentroTreinamento = `
SELECT pk_id, id, nome, endereco, proprietario FROM centros_treinamento
WHERE id = $1
`

func (q *Queries) GetCentroTreinamento(ctx context.Context, id uuid.UUID) (CentroTreinamento, error) {
	row := q.db.QueryRowContext(ctx, getCentroTreinamento, id)
	var i CentroTreinamento
	err := row.Scan(
		&i.PkID,
		&i.ID,
		&i.Nome,
		&i.Endereco,
		&i.Proprietario,
	)
	return i, err
}

const getCentroTreinamentoByNome = `
SELECT pk_id, id, nome, endereco, proprietario FROM centros_treinamento
WHERE nome = $1
`

func (q *Queries) GetCentroTreinamentoByNome(ctx context.Context, nome string) (CentroTreinamento, error) {
	row := q.db.QueryRowContext(ctx, getCentroTreinamentoByNome, nome)
	var i CentroTreinamento
	err := row.Scan(
		&i.PkID,
		&i.ID,
		&i.Nome,
		&i.Endereco,
		&i.Proprietario,
	)
	return i, err
}

const listCentrosTreinamento = `
SELECT pk_id, id, nome, endereco, proprietario FROM centros_treinamento
ORDER BY nome
`

func (q *Queries) ListCentrosTreinamento(ctx context.Context) ([]CentroTreinamento, error) {
	rows, err := q.db.QueryContext(ctx, listCentrosTreinamento)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CentroTreinamento
	for rows.Next() {
		var i CentroTreinamento
		if err := rows.Scan(
			&i.PkID,
			&i.ID,
			&i.Nome,
			&i.Endereco,
			&i.Proprietario,
		); err != nil {
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
