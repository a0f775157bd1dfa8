package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/workout-api/go/internal/athletes"
	athletesdb "github.com/mcdev12/workout-api/go/internal/athletes/db"
	"github.com/mcdev12/workout-api/go/internal/categories"
	categoriesdb "github.com/mcdev12/workout-api/go/internal/categories/db"
	"github.com/mcdev12/workout-api/go/internal/events"
	"github.com/mcdev12/workout-api/go/internal/trainingcenters"
	trainingcentersdb "github.com/mcdev12/workout-api/go/internal/trainingcenters/db"
)

type Services struct {
	Categories      *categories.Service
	TrainingCenters *trainingcenters.Service
	Athletes        *athletes.Service
}

func setupServices(database *sql.DB, publisher events.Publisher, clock clockwork.Clock) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer

	// Categories
	categoryQueries := categoriesdb.New(database)
	categoryRepo := categories.NewRepository(categoryQueries)
	categoryApp := categories.NewApp(categoryRepo)
	categoryService := categories.NewService(categoryApp)

	// Training centers
	trainingCenterQueries := trainingcentersdb.New(database)
	trainingCenterRepo := trainingcenters.NewRepository(trainingCenterQueries)
	trainingCenterApp := trainingcenters.NewApp(trainingCenterRepo)
	trainingCenterService := trainingcenters.NewService(trainingCenterApp)

	// Athletes
	athleteQueries := athletesdb.New(database)
	athleteRepo := athletes.NewRepository(athleteQueries, database)
	athleteApp := athletes.NewApp(athleteRepo, categoryApp, trainingCenterApp, publisher, clock)
	athleteService := athletes.NewService(athleteApp)

	return &Services{
		Categories:      categoryService,
		TrainingCenters: trainingCenterService,
		Athletes:        athleteService,
	}
}
