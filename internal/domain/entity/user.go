package entity

import "time"

// User representa un usuario del panel.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
