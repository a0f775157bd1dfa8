package sqlutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestToSqlConverters(t *testing.T) {
	name := "Joao"
	age := 25

	assert.False(t, ToSqlString(nil).Valid)
	assert.Equal(t, "Joao", ToSqlString(&name).String)
	assert.True(t, ToSqlString(&name).Valid)

	assert.False(t, ToSqlInt32(nil).Valid)
	assert.Equal(t, int32(25), ToSqlInt32(&age).Int32)
}

func TestConstraintClassification(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "atletas_cpf_key"}
	foreignKey := &pq.Error{Code: "23503", Constraint: "atletas_categoria_id_fkey"}

	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		constraint string
	}{
		{name: "unique", err: unique, unique: true, constraint: "atletas_cpf_key"},
		{name: "wrapped unique", err: fmt.Errorf("failed to create athlete: %w", unique), unique: true, constraint: "atletas_cpf_key"},
		{name: "foreign key", err: foreignKey, foreignKey: true, constraint: "atletas_categoria_id_fkey"},
		{name: "other postgres error", err: &pq.Error{Code: "42P01"}},
		{name: "text mentioning unique", err: errors.New("UniqueViolationError: duplicate key")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
			assert.Equal(t, tt.foreignKey, IsForeignKeyViolation(tt.err))
			assert.Equal(t, tt.constraint, ConstraintName(tt.err))
		})
	}
}
