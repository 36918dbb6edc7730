package services

import (
	"serveeny_backend/internal/models"
	"serveeny_backend/internal/repositories"
	"serveeny_backend/internal/services/dto"
	"serveeny_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(db *gorm.DB, id string) (*dto.UserProfileResponse, error)
	UpdateProfile(db *gorm.DB, id string, req *dto.UserUpdateRequest) (*dto.UserProfileResponse, error)
	AddFavorite(db *gorm.DB, userID, providerID string) ([]string, error)
	RemoveFavorite(db *gorm.DB, userID, providerID string) ([]string, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetProfile(db *gorm.DB, id string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildProfileResponse(user), nil
}

func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, id string, req *dto.UserUpdateRequest) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := s.userRepo.Update(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return buildProfileResponse(user), nil
}

// AddFavorite - сет-семантика поверх упорядоченного списка:
// повторное добавление того же id - no-op.
// Существование провайдера не проверяется, "висячий" id допустим.
func (s *UserServiceImpl) AddFavorite(db *gorm.DB, userID, providerID string) ([]string, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	for _, id := range user.Favorites {
		if id == providerID {
			return user.Favorites, nil
		}
	}

	favorites := append([]string(user.Favorites), providerID)
	if err := s.userRepo.UpdateFavorites(db, userID, favorites); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return favorites, nil
}

// RemoveFavorite отфильтровывает все вхождения id; удаление
// отсутствующего id - no-op с тем же успешным ответом
func (s *UserServiceImpl) RemoveFavorite(db *gorm.DB, userID, providerID string) ([]string, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	favorites := make([]string, 0, len(user.Favorites))
	for _, id := range user.Favorites {
		if id != providerID {
			favorites = append(favorites, id)
		}
	}

	if len(favorites) == len(user.Favorites) {
		return favorites, nil
	}

	if err := s.userRepo.UpdateFavorites(db, userID, favorites); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return favorites, nil
}

func buildProfileResponse(user *models.User) *dto.UserProfileResponse {
	favorites := user.Favorites
	if favorites == nil {
		favorites = []string{}
	}
	return &dto.UserProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Favorites: favorites,
	}
}
