// Package clients implementa el registro de clientes (CRUD).
package clients

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akax-pajomel/ventas-api/internal/application/dto"
	"github.com/akax-pajomel/ventas-api/internal/domain"
	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/internal/domain/repository"
	"github.com/akax-pajomel/ventas-api/pkg/logger"
)

const storeTimeout = 5 * time.Second

// Authorizer capacidad de autorización para editar o eliminar clientes.
type Authorizer interface {
	CanMutate(ctx context.Context) error
}

// UseCase casos de uso del registro de clientes.
type UseCase struct {
	repo repository.ClientRepository
	auth Authorizer
	log  *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ClientRepository, auth Authorizer, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, auth: auth, log: log}
}

// Create registra un cliente nuevo. Nombre y teléfono son obligatorios.
func (uc *UseCase) Create(ctx context.Context, in dto.ClientRequest) (*dto.ClientResponse, error) {
	name, phone, err := validate(in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	now := time.Now()
	client := &entity.Client{
		ID:           uuid.New().String(),
		Name:         name,
		Phone:        phone,
		Email:        strings.TrimSpace(in.Email),
		Address:      strings.TrimSpace(in.Address),
		RegisteredAt: now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("guardar cliente: %w", err)
	}

	uc.log.Info().Str("client_id", client.ID).Str("nombre", client.Name).Msg("cliente registrado")
	return mapClient(client), nil
}

// List devuelve todos los clientes ordenados por nombre.
func (uc *UseCase) List(ctx context.Context) ([]dto.ClientResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for i := range list {
		out = append(out, *mapClient(&list[i]))
	}
	return out, nil
}

// GetByID devuelve un cliente por ID.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return mapClient(client), nil
}

// Update reemplaza los campos del cliente (full-field replace). Requiere
// autorización elevada. No propaga cambios a ventas ya registradas: el
// snapshot de la venta es histórico por diseño.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if err := uc.auth.CanMutate(ctx); err != nil {
		return nil, err
	}
	name, phone, err := validate(in)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	client.Name = name
	client.Phone = phone
	client.Email = strings.TrimSpace(in.Email)
	client.Address = strings.TrimSpace(in.Address)
	client.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	return mapClient(client), nil
}

// Delete elimina un cliente de forma irreversible. Las ventas que lo
// referencian conservan su snapshot. Requiere autorización elevada.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if err := uc.auth.CanMutate(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("obtener cliente: %w", err)
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}

	uc.log.Info().Str("client_id", id).Str("nombre", client.Name).Msg("cliente eliminado")
	return nil
}

func validate(in dto.ClientRequest) (name, phone string, err error) {
	name = strings.TrimSpace(in.Name)
	phone = strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return "", "", fmt.Errorf("%w: nombre y teléfono son obligatorios", domain.ErrInvalidInput)
	}
	return name, phone, nil
}

func mapClient(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		RegisteredAt: c.RegisteredAt.Format(time.RFC3339),
	}
}
