// seed carga los usuarios de demostración en PostgreSQL e imprime un Bearer token por usuario.
// Los tokens se firman con JWT_SECRET, el mismo secreto que valida la API.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Marketplace-api/internal/seed"
	"github.com/jhoicas/Marketplace-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if _, err := postgres.Migrate(ctx, pool); err != nil {
			fmt.Fprintf(os.Stderr, "Migrar: %v\n", err)
			os.Exit(1)
		}
	}

	creds, err := seed.Run(ctx, postgres.NewUserRepository(pool), cfg.JWT, seed.Users())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sembrar usuarios: %v\n", err)
		os.Exit(1)
	}
	for _, c := range creds {
		fmt.Printf("%-7s %-22s %s\n  Bearer %s\n", c.User.Role, c.User.Email, c.User.ID, c.Token)
	}
}
