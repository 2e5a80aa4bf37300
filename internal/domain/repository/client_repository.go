package repository

import (
	"context"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// GetByID devuelve (nil, nil) cuando el cliente no existe.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context) ([]entity.Client, error) // ordenado por nombre
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}
