// Seed de cuentas demo para entornos de desarrollo.
//
// Crea (si no existen) las tres cuentas clásicas:
//
//	admin@test.com / admin123  (Admin)
//	emp@test.com   / emp123    (Employee)
//	sec@test.com   / sec123    (Security)
//
// Es idempotente: correr dos veces no duplica ni pisa cuentas existentes.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Visitantes-api/internal/domain/entity"
	"github.com/jhoicas/Visitantes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Visitantes-api/pkg/config"
	"github.com/jhoicas/Visitantes-api/pkg/logger"
)

type seedAccount struct {
	name     string
	email    string
	password string
	role     string
}

var accounts = []seedAccount{
	{"System Admin", "admin@test.com", "admin123", entity.RoleAdmin},
	{"John Employee", "emp@test.com", "emp123", entity.RoleEmployee},
	{"Gate Security", "sec@test.com", "sec123", entity.RoleSecurity},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	const insert = `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (email) DO NOTHING`

	for _, acc := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Str("email", acc.email).Msg("hashear password")
		}
		tag, err := pool.Exec(ctx, insert,
			uuid.New().String(), acc.name, acc.email, string(hash), acc.role, time.Now().UTC())
		if err != nil {
			log.Fatal().Err(err).Str("email", acc.email).Msg("insertar cuenta")
		}
		if tag.RowsAffected() == 0 {
			log.Info().Str("email", acc.email).Msg("la cuenta ya existía, sin cambios")
			continue
		}
		log.Info().Str("email", acc.email).Str("role", acc.role).Msg("cuenta creada")
	}

	log.Info().Msg("seed completado")
}
