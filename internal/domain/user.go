package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Roles aceitos nos tokens emitidos pelo serviço de autenticação (colaborador
// externo); esta API apenas valida e autoriza.
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// Claims é o payload dos tokens JWT emitidos para o dashboard.
type Claims struct {
	UserID     int      `json:"user_id"`
	UserEmail  string   `json:"user_email"`
	UserRoleID int      `json:"user_role_id"`
	UserStores []string `json:"user_stores"`
	jwt.RegisteredClaims
}
