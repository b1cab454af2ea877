package services

import (
	"eshop/internal/models"
	"eshop/internal/repositories"
)

// UserService handles business logic for user accounts. Direct creation and
// self-registration share the single Create path below; only the HTTP entry
// points differ.
type UserService struct {
	userRepo    repositories.UserRepository
	authService *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, authService *AuthService) *UserService {
	return &UserService{
		userRepo:    userRepo,
		authService: authService,
	}
}

// Create hashes the plaintext password and persists the user. The returned
// record still carries the hash; list/get responses scrub it.
func (s *UserService) Create(user *models.User, password string) (*models.User, error) {
	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetAllUsers retrieves all users with the password hash scrubbed.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// GetUserByID retrieves a single user with the password hash scrubbed.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// CountUsers returns the total user count. Zero is a valid count.
func (s *UserService) CountUsers() (int64, error) {
	return s.userRepo.Count()
}

// DeleteUser deletes a user by their ID.
func (s *UserService) DeleteUser(id string) error {
	return s.userRepo.Delete(id)
}
