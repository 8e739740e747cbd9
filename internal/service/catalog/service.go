package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LashBookingService/internal/domain"
	catalogRepo "github.com/m04kA/LashBookingService/internal/infra/storage/catalog"
)

// Service чтение каталога услуг и дополнительных опций
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListServices возвращает активные услуги
func (s *Service) ListServices(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.catalogRepo.ListServices(ctx, true)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// GetService возвращает активную услугу по ID
func (s *Service) GetService(ctx context.Context, id string) (*domain.Service, error) {
	service, err := s.catalogRepo.GetServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service %q not found", id)
			return nil, domain.ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service %q: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	if !service.IsActive {
		s.logger.Warn("GetService: service %q is inactive", id)
		return nil, domain.ErrServiceNotFound
	}

	return service, nil
}

// ListAddOns возвращает активные дополнительные опции
func (s *Service) ListAddOns(ctx context.Context) ([]*domain.AddOn, error) {
	addOns, err := s.catalogRepo.ListAddOns(ctx, true)
	if err != nil {
		s.logger.Error("ListAddOns: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAddOns - repository error: %v", ErrInternal, err)
	}
	return addOns, nil
}

// GetAddOn возвращает активную дополнительную опцию по ID
func (s *Service) GetAddOn(ctx context.Context, id string) (*domain.AddOn, error) {
	addOn, err := s.catalogRepo.GetAddOnByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrAddOnNotFound) {
			s.logger.Warn("GetAddOn: add-on %q not found", id)
			return nil, domain.ErrAddOnNotFound
		}
		s.logger.Error("GetAddOn: repository error for add-on %q: %v", id, err)
		return nil, fmt.Errorf("%w: GetAddOn - repository error: %v", ErrInternal, err)
	}

	if !addOn.IsActive {
		s.logger.Warn("GetAddOn: add-on %q is inactive", id)
		return nil, domain.ErrAddOnNotFound
	}

	return addOn, nil
}
