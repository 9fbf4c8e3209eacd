package cataloging

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// CatalogService lista os cadastros usados nos filtros e no mapeamento da importação
type CatalogService interface {
	ListSellers(ctx context.Context, onlyActive bool) ([]*domain.SellerResponse, error)
	ListProducts(ctx context.Context, onlyActive bool) ([]*domain.Product, error)
}

type Service struct {
	profileRepository repository.ProfileRepository
	productRepository repository.ProductRepository
}

func NewService(profileRepository repository.ProfileRepository, productRepository repository.ProductRepository) *Service {
	return &Service{
		profileRepository: profileRepository,
		productRepository: productRepository,
	}
}

func (s *Service) ListSellers(ctx context.Context, onlyActive bool) ([]*domain.SellerResponse, error) {
	profiles, err := s.profileRepository.List(ctx, onlyActive)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar vendedores")
		return nil, NewCatalogError(ErrFetchSellers, apiErrors.ErrDatabaseOperation, "Falha ao listar vendedores no banco de dados")
	}

	sellers := make([]*domain.SellerResponse, 0, len(profiles))
	for _, p := range profiles {
		sellers = append(sellers, &domain.SellerResponse{
			ID:     p.ID,
			Name:   p.Name(),
			Email:  p.Email,
			Active: p.Active,
		})
	}

	return sellers, nil
}

func (s *Service) ListProducts(ctx context.Context, onlyActive bool) ([]*domain.Product, error) {
	products, err := s.productRepository.List(ctx, onlyActive)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar produtos")
		return nil, NewCatalogError(ErrFetchProducts, apiErrors.ErrDatabaseOperation, "Falha ao listar produtos no banco de dados")
	}

	if products == nil {
		products = []*domain.Product{}
	}

	return products, nil
}
