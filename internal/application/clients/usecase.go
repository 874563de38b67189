// Package clients casos de uso del registro de clientes (CRUD con borrado lógico).
package clients

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/ports"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/repository"
)

// UseCase casos de uso de clientes.
type UseCase struct {
	repo  repository.ClientRepository
	cache ports.ReadCache
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ClientRepository, cache ports.ReadCache) *UseCase {
	return &UseCase{repo: repo, cache: cache}
}

// Create crea un cliente activo.
func (uc *UseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionClients)
	return dto.ToClientResponse(client), nil
}

// GetByID obtiene el detalle de un cliente (cacheado).
func (uc *UseCase) GetByID(id string) (*dto.ClientResponse, error) {
	key := "detail:" + id
	if v, ok := uc.cache.Get(ports.CacheRegionClients, key); ok {
		if resp, ok := v.(*dto.ClientResponse); ok {
			return resp, nil
		}
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToClientResponse(client)
	uc.cache.Set(ports.CacheRegionClients, key, resp)
	return resp, nil
}

// List lista clientes (solo activos por defecto), con paginación y caché.
func (uc *UseCase) List(onlyActive bool, limit, offset int) ([]*dto.ClientResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	key := fmt.Sprintf("list:%t:%d:%d", onlyActive, page.Limit, page.Offset)
	if v, ok := uc.cache.Get(ports.CacheRegionClients, key); ok {
		if resp, ok := v.([]*dto.ClientResponse); ok {
			return resp, nil
		}
	}
	list, err := uc.repo.List(onlyActive, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ToClientResponse(c))
	}
	uc.cache.Set(ports.CacheRegionClients, key, out)
	return out, nil
}

// Update edita los campos de contacto de un cliente activo.
func (uc *UseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if !client.Active {
		return nil, fmt.Errorf("%w: el cliente está inactivo", domain.ErrBusinessRule)
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.City != nil {
		client.City = *in.City
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionClients)
	return dto.ToClientResponse(client), nil
}

// Delete borrado lógico: Active pasa a false, la fila se conserva.
func (uc *UseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Deactivate(id); err != nil {
		return err
	}
	uc.cache.InvalidateRegion(ports.CacheRegionClients)
	return nil
}
