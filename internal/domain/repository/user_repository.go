package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"waste_tracker/internal/common"
	"waste_tracker/internal/domain/model"
)

// UserRepository is a credential source keyed by username. The store-backed
// implementation and the in-memory fallback table both satisfy it, so the
// auth service can consult them in order.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id_usuario, username, password_hash, rol, nombre_completo
	          FROM usuarios WHERE username = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.HashedPassword, &user.Role, &user.FullName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByUsername: %w", err)
	}
	return user, nil
}
