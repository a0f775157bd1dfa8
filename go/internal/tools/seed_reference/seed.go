package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gopkg.in/yaml.v3"
)

// SeedFile mirrors the reference data YAML
type SeedFile struct {
	Categories      []Category       `yaml:"categorias"`
	TrainingCenters []TrainingCenter `yaml:"centros_treinamento"`
}

type Category struct {
	Nome string `yaml:"nome"`
}

type TrainingCenter struct {
	Nome         string `yaml:"nome"`
	Endereco     string `yaml:"endereco"`
	Proprietario string `yaml:"proprietario"`
}

// Execer is the part of *pgxpool.Pool the seeders use
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type summary struct {
	total    int
	inserted int
	skipped  int
	errors   int
}

func (s summary) String() string {
	return fmt.Sprintf("%d total, %d inserted, %d skipped, %d errors", s.total, s.inserted, s.skipped, s.errors)
}

func parseSeedFile(data []byte) (*SeedFile, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("unmarshal seed file: %w", err)
	}
	for i, c := range seed.Categories {
		if c.Nome == "" {
			return nil, fmt.Errorf("categorias[%d]: nome is required", i)
		}
	}
	for i, tc := range seed.TrainingCenters {
		if tc.Nome == "" {
			return nil, fmt.Errorf("centros_treinamento[%d]: nome is required", i)
		}
	}
	return &seed, nil
}

func seedCategories(ctx context.Context, db Execer, categories []Category) summary {
	s := summary{total: len(categories)}
	for _, c := range categories {
		tag, err := db.Exec(ctx, `
            INSERT INTO categorias (id, nome)
            VALUES ($1, $2)
            ON CONFLICT (nome) DO NOTHING
        `, uuid.New(), c.Nome)
		s.record(tag, err, "categoria", c.Nome)
	}
	return s
}

func seedTrainingCenters(ctx context.Context, db Execer, centers []TrainingCenter) summary {
	s := summary{total: len(centers)}
	for _, tc := range centers {
		tag, err := db.Exec(ctx, `
            INSERT INTO centros_treinamento (id, nome, endereco, proprietario)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (nome) DO NOTHING
        `, uuid.New(), tc.Nome, tc.Endereco, tc.Proprietario)
		s.record(tag, err, "centro_treinamento", tc.Nome)
	}
	return s
}

func (s *summary) record(tag pgconn.CommandTag, err error, kind, name string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error inserting %s %s: %v\n", kind, name, err)
		s.errors++
		return
	}
	if tag.RowsAffected() == 1 {
		s.inserted++
	} else {
		s.skipped++
	}
}
