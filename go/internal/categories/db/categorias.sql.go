package db

import (
	"context"

	"github.com/google/uuid"
)

const createCategoria = `
INSERT INTO categorias (id, nome)
VALUES ($1, $2)
RETURNING pk_id, id, nome
`

type CreateCategoriaParams struct {
	ID   uuid.UUID
	Nome string
}

func (q *Queries) CreateCategoria(ctx context.Context, arg CreateCategoriaParams) (Categoria, error) {
	row := q.db.QueryRowContext(ctx, createCategoria, arg.ID, arg.Nome)
	var i Categoria
	err := row.Scan(&i.PkID, &i.ID, &i.Nome)
	return i, err
}

const getCategoria = `
SELECT pk_id, id, nome FROM categorias
WHERE id = $1
`

func (q *Queries) GetCategoria(ctx context.Context, id uuid.UUID) (Categoria, error) {
	row := q.db.QueryRowContext(ctx, getCategoria, id)
	var i Categoria
	err := row.Scan(&i.PkID, &i.ID, &i.Nome)
	return i, err
}

const getCategoriaByNome = `
SELECT pk_id, id, nome FROM categorias
WHERE nome = $1
`

func (q *Queries) GetCategoriaByNome(ctx context.Context, nome string) (Categoria, error) {
	row := q.db.QueryRowContext(ctx, getCategoriaByNome, nome)
	var i Categoria
	err := row.Scan(&i.PkID, &i.ID, &i.Nome)
	return i, err
}

const listCategorias = `
SELECT pk_id, id, nome FROM categorias
ORDER BY nome
`

func (q *Queries) ListCategorias(ctx context.Context) ([]Categoria, error) {
	rows, err := q.db.QueryContext(ctx, listCategorias)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Categoria
	for rows.Next() {
		var i Categoria
		if err := rows.Scan(&i.PkID, &i.ID, &i.Nome); err != nil {
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
