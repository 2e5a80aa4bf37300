package entity

import "time"

// Client representa un cliente del negocio.
type Client struct {
	ID           string
	Name         string
	Phone        string
	Email        string
	Address      string
	RegisteredAt time.Time
	UpdatedAt    time.Time
}
