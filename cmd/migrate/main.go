package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/servitec-crm/internal/infrastructure/postgres"
	"github.com/tu-usuario/servitec-crm/pkg/config"
	"github.com/tu-usuario/servitec-crm/pkg/logger"
)

// Aplica en orden los archivos .sql de migrations/. Cada archivo corre en su
// propia transacción; un fallo detiene el proceso.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("leer directorio de migraciones")
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		log.Fatal().Str("dir", dir).Msg("sin archivos .sql")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	for _, name := range files {
		sqlBytes, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("leer migración")
		}
		tx, err := pool.Begin(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir transacción")
		}
		if _, err := tx.Exec(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback(ctx)
			log.Fatal().Err(err).Str("file", name).Msg("aplicar migración")
		}
		if err := tx.Commit(ctx); err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("confirmar migración")
		}
		log.Info().Str("file", name).Msg("migración aplicada")
	}

	log.Info().Int("total", len(files)).Msg("migraciones completadas")
}
