package model

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"name"`
	HashedPassword string `json:"-"` // Not exposed
	Role           string `json:"role"`
}
