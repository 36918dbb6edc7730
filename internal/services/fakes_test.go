package services

import (
	"sort"
	"strings"
	"time"

	"serveeny_backend/internal/models"
	"serveeny_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// In-memory репозитории для тестов сервисного слоя.
// Аргумент db игнорируется - репозитории-фейки хранят состояние в памяти.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Email = user.Email
	stored.Phone = user.Phone
	return nil
}

func (r *fakeUserRepo) UpdateFavorites(_ *gorm.DB, userID string, favorites []string) error {
	stored, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	stored.Favorites = pq.StringArray(favorites)
	return nil
}

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[string]*models.Provider)}
}

func (r *fakeProviderRepo) FindByID(_ *gorm.DB, id string) (*models.Provider, error) {
	provider, ok := r.providers[id]
	if !ok {
		return nil, repositories.ErrProviderNotFound
	}
	clone := *provider
	return &clone, nil
}

func (r *fakeProviderRepo) FindByEmail(_ *gorm.DB, email string) (*models.Provider, error) {
	for _, provider := range r.providers {
		if provider.Email == email {
			clone := *provider
			return &clone, nil
		}
	}
	return nil, repositories.ErrProviderNotFound
}

func (r *fakeProviderRepo) Create(_ *gorm.DB, provider *models.Provider) error {
	for _, existing := range r.providers {
		if existing.Email == provider.Email {
			return repositories.ErrProviderAlreadyExists
		}
	}
	if provider.ID == "" {
		provider.ID = uuid.NewString()
	}
	provider.CreatedAt = time.Now()
	clone := *provider
	r.providers[provider.ID] = &clone
	return nil
}

func (r *fakeProviderRepo) Update(_ *gorm.DB, provider *models.Provider) error {
	stored, ok := r.providers[provider.ID]
	if !ok {
		return repositories.ErrProviderNotFound
	}
	stored.Name = provider.Name
	stored.Phone = provider.Phone
	stored.Whatsapp = provider.Whatsapp
	stored.Photo = provider.Photo
	stored.Location = provider.Location
	stored.Description = provider.Description
	stored.Services = provider.Services
	stored.Availability = provider.Availability
	stored.PriceRange = provider.PriceRange
	stored.IsAvailable = provider.IsAvailable
	stored.Certifications = provider.Certifications
	stored.ServiceArea = provider.ServiceArea
	return nil
}

func (r *fakeProviderRepo) FindVerified(_ *gorm.DB, filter repositories.ProviderFilter) ([]models.Provider, error) {
	var result []models.Provider
	search := strings.ToLower(filter.Search)
	for _, p := range r.providers {
		if p.Status != models.ProviderStatusVerified {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(p.Name + " " + p.Location + " " + p.Services)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		result = append(result, *p)
	}
	sortByRatingDesc(result)
	return result, nil
}

func (r *fakeProviderRepo) FindFeatured(_ *gorm.DB) ([]models.Provider, error) {
	var result []models.Provider
	for _, p := range r.providers {
		if p.IsFeatured() {
			result = append(result, *p)
		}
	}
	sortByRatingDesc(result)
	if len(result) > repositories.FeaturedLimit {
		result = result[:repositories.FeaturedLimit]
	}
	return result, nil
}

func (r *fakeProviderRepo) FindPending(_ *gorm.DB) ([]models.Provider, error) {
	var result []models.Provider
	for _, p := range r.providers {
		if p.Status == models.ProviderStatusPending {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *fakeProviderRepo) TransitionStatus(_ *gorm.DB, id string, target models.ProviderStatus) (*models.Provider, error) {
	stored, ok := r.providers[id]
	if !ok {
		return nil, repositories.ErrProviderNotFound
	}

	switch target {
	case models.ProviderStatusVerified:
		if stored.Status != models.ProviderStatusPending && stored.Status != models.ProviderStatusVerified {
			return nil, repositories.ErrInvalidTransition
		}
		now := time.Now()
		stored.Status = models.ProviderStatusVerified
		stored.VerifiedAt = &now
	case models.ProviderStatusRejected:
		if stored.Status != models.ProviderStatusPending && stored.Status != models.ProviderStatusRejected {
			return nil, repositories.ErrInvalidTransition
		}
		stored.Status = models.ProviderStatusRejected
	default:
		return nil, repositories.ErrInvalidTransition
	}

	clone := *stored
	return &clone, nil
}

func sortByRatingDesc(providers []models.Provider) {
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Rating > providers[j].Rating
	})
}

// fakeNotifier запоминает, по каким провайдерам дергали уведомление
type fakeNotifier struct {
	sent []string
	err  error
}

func (n *fakeNotifier) SendStatusChanged(provider *models.Provider) error {
	n.sent = append(n.sent, provider.ID)
	return n.err
}
