package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCliente = "cliente"
)

// User representa el perfil asociado a una identidad autenticada.
// CompanyID es obligatorio para rol cliente y va vacío para admin
// (un admin ve todas las empresas).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, cliente
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
