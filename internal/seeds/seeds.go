// Package seeds loads the well-known users and the waste category and
// location catalogs into the store. Every statement is idempotent, so the
// seeder can run on each deploy.
package seeds

import (
	"context"
	"database/sql"
	"fmt"
	"waste_tracker/internal/common/security"
	"waste_tracker/internal/domain/model"

	"github.com/google/uuid"
)

func SeedAll(ctx context.Context, db *sql.DB) error {
	if err := SeedUsers(ctx, db); err != nil {
		return err
	}
	if err := SeedCategories(ctx, db); err != nil {
		return err
	}
	if err := SeedLocations(ctx, db); err != nil {
		return err
	}
	return nil
}

type seedUser struct {
	Username string
	Password string
	Role     string
	FullName string
}

var seedUsers = []seedUser{
	{Username: "admin", Password: "admin123", Role: model.RoleAdmin, FullName: "Administrador Principal"},
	{Username: "operador", Password: "op123", Role: model.RoleOperator, FullName: "Operador de Turno"},
}

func SeedUsers(ctx context.Context, db *sql.DB) error {
	for _, u := range seedUsers {
		hash, err := security.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("seeds.SeedUsers: hashing %s: %w", u.Username, err)
		}
		_, err = db.ExecContext(ctx,
			`INSERT INTO usuarios (id_usuario, username, password_hash, rol, nombre_completo)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (username) DO NOTHING`,
			uuid.NewString(), u.Username, hash, u.Role, u.FullName,
		)
		if err != nil {
			return fmt.Errorf("seeds.SeedUsers: inserting %s: %w", u.Username, err)
		}
	}
	return nil
}

func SeedCategories(ctx context.Context, db *sql.DB) error {
	for _, name := range wasteCategories {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO cat_tipo_residuo (nombre) VALUES ($1) ON CONFLICT (nombre) DO NOTHING`,
			name,
		); err != nil {
			return fmt.Errorf("seeds.SeedCategories: inserting %q: %w", name, err)
		}
	}
	return nil
}

func SeedLocations(ctx context.Context, db *sql.DB) error {
	for _, name := range locations {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO cat_ubicacion (nombre) VALUES ($1) ON CONFLICT (nombre) DO NOTHING`,
			name,
		); err != nil {
			return fmt.Errorf("seeds.SeedLocations: inserting %q: %w", name, err)
		}
	}
	return nil
}
