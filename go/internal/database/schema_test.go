package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	queries []string
	err     error
}

func (r *recordingExecer) ExecContext(_ context.Context, query string, _ ...interface{}) (sql.Result, error) {
	r.queries = append(r.queries, query)
	return nil, r.err
}

func TestSchemaDeclaresTablesAndConstraints(t *testing.T) {
	ddl := Schema()

	for _, fragment := range []string{
		"CREATE TABLE IF NOT EXISTS categorias",
		"CREATE TABLE IF NOT EXISTS centros_treinamento",
		"CREATE TABLE IF NOT EXISTS atletas",
		"CONSTRAINT atletas_cpf_key UNIQUE (cpf)",
		"REFERENCES categorias (pk_id)",
		"REFERENCES centros_treinamento (pk_id)",
	} {
		assert.Contains(t, ddl, fragment)
	}
}

func TestEnsureSchema(t *testing.T) {
	execer := &recordingExecer{}
	require.NoError(t, EnsureSchema(context.Background(), execer))
	require.Len(t, execer.queries, 1)
	assert.Equal(t, Schema(), execer.queries[0])

	failing := &recordingExecer{err: errors.New("connection refused")}
	err := EnsureSchema(context.Background(), failing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
