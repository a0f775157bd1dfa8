package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/workout-api/go/internal/dbconfig"
)

func main() {
	path := flag.String("file", "go/internal/assets/reference.yaml", "YAML file with categorias and centros_treinamento")
	flag.Parse()

	// 1) Load the YAML snapshot
	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read YAML: %v\n", err)
		os.Exit(1)
	}
	seed, err := parseSeedFile(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse YAML: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Insert and count
	ctx := context.Background()
	categories := seedCategories(ctx, pool, seed.Categories)
	centers := seedTrainingCenters(ctx, pool, seed.TrainingCenters)

	// 4) Print summary
	fmt.Printf("Categorias seed complete: %s\n", categories)
	fmt.Printf("Centros de treinamento seed complete: %s\n", centers)

	if categories.errors > 0 || centers.errors > 0 {
		os.Exit(1)
	}
}
