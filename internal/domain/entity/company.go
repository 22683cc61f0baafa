package entity

import "time"

// Company representa una empresa cliente de la plataforma (tenant).
type Company struct {
	ID        string
	Name      string
	Document  string // documento fiscal (CUIT/NIT)
	Email     string
	Country   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
