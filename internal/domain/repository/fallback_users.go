package repository

import (
	"context"
	"fmt"
	"waste_tracker/internal/common"
	"waste_tracker/internal/common/security"
	"waste_tracker/internal/domain/model"
)

// fallbackUserTable is the fixed secondary credential source consulted when
// the store cannot answer a login. Read-only after construction; the bcrypt
// hashes are computed fresh on every process start.
type fallbackUserTable struct {
	users map[string]*model.User
}

type fallbackEntry struct {
	ID       string
	Username string
	Password string
	Role     string
	FullName string
}

var fallbackEntries = []fallbackEntry{
	{ID: "1", Username: "admin", Password: "admin123", Role: model.RoleAdmin, FullName: "Administrador Principal"},
	{ID: "2", Username: "operador", Password: "op123", Role: model.RoleOperator, FullName: "Operador de Turno"},
}

func NewFallbackUserTable() (UserRepository, error) {
	users := make(map[string]*model.User, len(fallbackEntries))
	for _, e := range fallbackEntries {
		hash, err := security.HashPassword(e.Password)
		if err != nil {
			return nil, fmt.Errorf("fallbackUserTable: hashing %s: %w", e.Username, err)
		}
		users[e.Username] = &model.User{
			ID:             e.ID,
			Username:       e.Username,
			FullName:       e.FullName,
			HashedPassword: hash,
			Role:           e.Role,
		}
	}
	return &fallbackUserTable{users: users}, nil
}

func (t *fallbackUserTable) FindByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := t.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	// Copy so callers can't mutate the table through the pointer.
	u := *user
	return &u, nil
}
