// seed aplica las migraciones y siembra permisos, configuraciones y usuarios
// por defecto en una base PostgreSQL vacía.
//
// Uso: go run ./cmd/seed
// Si la base ya tiene usuarios no modifica nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/g-inventory/internal/application/bootstrap"
	"github.com/jhoicas/g-inventory/internal/infrastructure/postgres"
	"github.com/jhoicas/g-inventory/pkg/config"
	"github.com/jhoicas/g-inventory/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.DB.Driver != "postgres" {
		fmt.Fprintf(os.Stderr, "STORE_DRIVER=%s: la siembra solo aplica a postgres\n", cfg.DB.Driver)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := postgres.ResolveDSN(cfg.DB)
	if err := postgres.Migrate(ctx, dsn); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repos := postgres.NewRepositories(pool)
	seeded, err := bootstrap.NewSeeder(repos.Users, repos.Permissions, repos.Configurations, bootstrap.Options{
		AdminPassword:   cfg.Bootstrap.AdminPassword,
		LimitedPassword: cfg.Bootstrap.LimitedPassword,
		AlertEmail:      cfg.Bootstrap.AlertEmail,
	}, log.Component("seeder")).Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("siembra")
	}
	if !seeded {
		fmt.Println("La base ya tiene usuarios; no se sembró nada.")
		return
	}
	fmt.Printf("Usuarios creados: %s, %s\n", bootstrap.AdminUsername, bootstrap.LimitedUsername)
}
