package repositories

import (
	"errors"
	"time"

	"serveeny_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProviderNotFound      = errors.New("provider not found")
	ErrProviderAlreadyExists = errors.New("provider already exists")
	ErrInvalidTransition     = errors.New("invalid status transition")
)

// FeaturedLimit - максимум записей в featured-выдаче
const FeaturedLimit = 4

// ProviderFilter - фильтры публичной выдачи.
// Выдача всегда неявно ограничена status=verified.
type ProviderFilter struct {
	Category string
	Search   string
}

type ProviderRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Provider, error)
	FindByEmail(db *gorm.DB, email string) (*models.Provider, error)
	Create(db *gorm.DB, provider *models.Provider) error
	Update(db *gorm.DB, provider *models.Provider) error

	FindVerified(db *gorm.DB, filter ProviderFilter) ([]models.Provider, error)
	FindFeatured(db *gorm.DB) ([]models.Provider, error)
	FindPending(db *gorm.DB) ([]models.Provider, error)

	TransitionStatus(db *gorm.DB, id string, target models.ProviderStatus) (*models.Provider, error)
}

type ProviderRepositoryImpl struct{}

func NewProviderRepository() ProviderRepository {
	return &ProviderRepositoryImpl{}
}

func (r *ProviderRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Provider, error) {
	var provider models.Provider
	err := db.First(&provider, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return &provider, nil
}

func (r *ProviderRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Provider, error) {
	var provider models.Provider
	err := db.First(&provider, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return &provider, nil
}

func (r *ProviderRepositoryImpl) Create(db *gorm.DB, provider *models.Provider) error {
	var existing models.Provider
	if err := db.Where("email = ?", provider.Email).First(&existing).Error; err == nil {
		return ErrProviderAlreadyExists
	}

	return db.Create(provider).Error
}

// Update пишет только поля, изменяемые самим провайдером.
// Email, status, rating и premium-флаги этим путем не меняются.
func (r *ProviderRepositoryImpl) Update(db *gorm.DB, provider *models.Provider) error {
	result := db.Model(&models.Provider{}).Where("id = ?", provider.ID).Updates(map[string]interface{}{
		"name":           provider.Name,
		"phone":          provider.Phone,
		"whatsapp":       provider.Whatsapp,
		"photo":          provider.Photo,
		"location":       provider.Location,
		"description":    provider.Description,
		"services":       provider.Services,
		"availability":   provider.Availability,
		"price_range":    provider.PriceRange,
		"is_available":   provider.IsAvailable,
		"certifications": provider.Certifications,
		"service_area":   provider.ServiceArea,
		"updated_at":     time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProviderNotFound
	}
	return nil
}

// FindVerified - публичная выдача: только verified, опциональный точный
// матч категории, регистронезависимый поиск по name/location/services,
// сортировка по рейтингу по убыванию.
func (r *ProviderRepositoryImpl) FindVerified(db *gorm.DB, filter ProviderFilter) ([]models.Provider, error) {
	query := db.Model(&models.Provider{}).Where("status = ?", models.ProviderStatusVerified)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR location ILIKE ? OR services ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var providers []models.Provider
	if err := query.Order("rating DESC").Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

// FindFeatured - топ premium+available+verified по рейтингу, максимум 4
func (r *ProviderRepositoryImpl) FindFeatured(db *gorm.DB) ([]models.Provider, error) {
	var providers []models.Provider
	err := db.Model(&models.Provider{}).
		Where("is_premium = ? AND is_available = ? AND status = ?",
			true, true, models.ProviderStatusVerified).
		Order("rating DESC").
		Limit(FeaturedLimit).
		Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *ProviderRepositoryImpl) FindPending(db *gorm.DB) ([]models.Provider, error) {
	var providers []models.Provider
	err := db.Model(&models.Provider{}).
		Where("status = ?", models.ProviderStatusPending).
		Order("created_at ASC").
		Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}

// TransitionStatus выполняет админ-переход статуса защищенным UPDATE,
// без read-modify-write. Разрешены pending->verified и pending->rejected;
// повтор того же перехода идемпотентен (verify заново штампует verified_at).
// Попытка перевернуть терминальный статус возвращает ErrInvalidTransition.
func (r *ProviderRepositoryImpl) TransitionStatus(db *gorm.DB, id string, target models.ProviderStatus) (*models.Provider, error) {
	updates := map[string]interface{}{
		"status":     target,
		"updated_at": time.Now(),
	}

	var allowedFrom []models.ProviderStatus
	switch target {
	case models.ProviderStatusVerified:
		updates["verified_at"] = time.Now()
		allowedFrom = []models.ProviderStatus{models.ProviderStatusPending, models.ProviderStatusVerified}
	case models.ProviderStatusRejected:
		allowedFrom = []models.ProviderStatus{models.ProviderStatusPending, models.ProviderStatusRejected}
	default:
		return nil, ErrInvalidTransition
	}

	result := db.Model(&models.Provider{}).
		Where("id = ? AND status IN ?", id, allowedFrom).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Либо записи нет, либо статус уже терминальный - различаем
		if _, err := r.FindByID(db, id); err != nil {
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	return r.FindByID(db, id)
}
