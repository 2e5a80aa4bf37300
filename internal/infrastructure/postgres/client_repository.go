package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, phone, email, address, registered_at, updated_at`

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.Name, client.Phone, client.Email, client.Address,
		client.RegisteredAt, client.UpdatedAt,
	)
	if err != nil {
		return storeError("insert cliente", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.RegisteredAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("get cliente", err)
	}
	return &c, nil
}

// List lista todos los clientes ordenados por nombre.
func (r *ClientRepo) List(ctx context.Context) ([]entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storeError("list clientes", err)
	}
	defer rows.Close()

	var list []entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.RegisteredAt, &c.UpdatedAt); err != nil {
			return nil, storeError("scan cliente", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update reemplaza los campos editables del cliente.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, phone = $3, email = $4, address = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.Name, client.Phone, client.Email, client.Address, client.UpdatedAt,
	)
	if err != nil {
		return storeError("update cliente", err)
	}
	return nil
}

// Delete elimina el cliente. Las ventas conservan su snapshot.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return storeError("delete cliente", err)
	}
	return nil
}
