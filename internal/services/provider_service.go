package services

import (
	"serveeny_backend/internal/email"
	"serveeny_backend/internal/logger"
	"serveeny_backend/internal/models"
	"serveeny_backend/internal/repositories"
	"serveeny_backend/internal/services/dto"
	"serveeny_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProviderService interface {
	List(db *gorm.DB, query *dto.ProviderListQuery) ([]models.Provider, error)
	Featured(db *gorm.DB) ([]models.Provider, error)
	GetByID(db *gorm.DB, id string) (*models.Provider, error)
	UpdateProfile(db *gorm.DB, id string, req *dto.ProviderUpdateRequest) (*models.Provider, error)

	// Админ-переходы жизненного цикла
	Pending(db *gorm.DB) ([]models.Provider, error)
	Verify(db *gorm.DB, id string) (*models.Provider, error)
	Reject(db *gorm.DB, id string) (*models.Provider, error)
}

type ProviderServiceImpl struct {
	providerRepo repositories.ProviderRepository
	notifier     email.Notifier
}

func NewProviderService(providerRepo repositories.ProviderRepository, notifier email.Notifier) ProviderService {
	return &ProviderServiceImpl{
		providerRepo: providerRepo,
		notifier:     notifier,
	}
}

// List - публичная выдача, только verified
func (s *ProviderServiceImpl) List(db *gorm.DB, query *dto.ProviderListQuery) ([]models.Provider, error) {
	providers, err := s.providerRepo.FindVerified(db, repositories.ProviderFilter{
		Category: query.Category,
		Search:   query.Search,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return providers, nil
}

// Featured - топ premium+available+verified по рейтингу
func (s *ProviderServiceImpl) Featured(db *gorm.DB) ([]models.Provider, error) {
	providers, err := s.providerRepo.FindFeatured(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return providers, nil
}

func (s *ProviderServiceImpl) GetByID(db *gorm.DB, id string) (*models.Provider, error) {
	provider, err := s.providerRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.NewNotFoundError("provider", "Provider not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return provider, nil
}

// UpdateProfile - частичное обновление: отсутствующие поля не трогаем
func (s *ProviderServiceImpl) UpdateProfile(db *gorm.DB, id string, req *dto.ProviderUpdateRequest) (*models.Provider, error) {
	provider, err := s.providerRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.NewNotFoundError("provider", "Provider not found")
		}
		return nil, apperrors.InternalError(err)
	}

	applyProviderUpdates(provider, req)

	if err := s.providerRepo.Update(db, provider); err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.NewNotFoundError("provider", "Provider not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetByID(db, id)
}

func (s *ProviderServiceImpl) Pending(db *gorm.DB) ([]models.Provider, error) {
	providers, err := s.providerRepo.FindPending(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return providers, nil
}

// Verify - переход pending->verified, штампует verified_at.
// Повторный verify идемпотентен; verify отклоненного - конфликт.
func (s *ProviderServiceImpl) Verify(db *gorm.DB, id string) (*models.Provider, error) {
	provider, err := s.transition(db, id, models.ProviderStatusVerified)
	if err != nil {
		return nil, err
	}

	s.notifyStatusChange(provider)
	return provider, nil
}

// Reject - переход pending->rejected. Причина отказа не фиксируется.
func (s *ProviderServiceImpl) Reject(db *gorm.DB, id string) (*models.Provider, error) {
	provider, err := s.transition(db, id, models.ProviderStatusRejected)
	if err != nil {
		return nil, err
	}

	s.notifyStatusChange(provider)
	return provider, nil
}

func (s *ProviderServiceImpl) transition(db *gorm.DB, id string, target models.ProviderStatus) (*models.Provider, error) {
	provider, err := s.providerRepo.TransitionStatus(db, id, target)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrProviderNotFound):
			return nil, apperrors.NewNotFoundError("provider", "Provider not found")
		case apperrors.Is(err, repositories.ErrInvalidTransition):
			return nil, apperrors.ErrInvalidStatus("provider",
				"Provider status can no longer be changed")
		default:
			return nil, apperrors.InternalError(err)
		}
	}
	return provider, nil
}

// notifyStatusChange шлет письмо провайдеру о смене статуса.
// Ошибка отправки логируется и не проваливает админ-запрос.
func (s *ProviderServiceImpl) notifyStatusChange(provider *models.Provider) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendStatusChanged(provider); err != nil {
		logger.Warn("failed to send status notification",
			"provider_id", provider.ID,
			"status", provider.Status,
			"error", err.Error(),
		)
	}
}

func applyProviderUpdates(p *models.Provider, req *dto.ProviderUpdateRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		p.Whatsapp = *req.Whatsapp
	}
	if req.Photo != nil {
		p.Photo = *req.Photo
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Services != nil {
		p.Services = *req.Services
	}
	if req.Availability != nil {
		p.Availability = *req.Availability
	}
	if req.PriceRange != nil {
		p.PriceRange = *req.PriceRange
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	if req.Certifications != nil {
		p.Certifications = *req.Certifications
	}
	if req.ServiceArea != nil {
		p.ServiceArea = *req.ServiceArea
	}
}
