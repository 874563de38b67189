// Package admin operaciones administrativas de demo/reset.
package admin

import (
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/dto"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/ports"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/repository"
)

// UseCase casos de uso administrativos.
type UseCase struct {
	repo  repository.AdminRepository
	cache ports.ReadCache
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.AdminRepository, cache ports.ReadCache) *UseCase {
	return &UseCase{repo: repo, cache: cache}
}

// CleanData trunca todas las tablas de negocio excepto usuarios y vacía
// todas las regiones del caché.
func (uc *UseCase) CleanData() error {
	if err := uc.repo.CleanData(); err != nil {
		return err
	}
	uc.cache.InvalidateAll()
	return nil
}

// Stats devuelve los conteos por entidad.
func (uc *UseCase) Stats() (*dto.StatsResponse, error) {
	counts, err := uc.repo.Stats()
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		Clients:    counts.Clients,
		Quotations: counts.Quotations,
		Projects:   counts.Projects,
		WorkOrders: counts.WorkOrders,
		Invoices:   counts.Invoices,
		Payments:   counts.Payments,
	}, nil
}
