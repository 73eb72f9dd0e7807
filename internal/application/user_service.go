package application

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/techhive/user-management-api/internal/domain/entity"
	"github.com/techhive/user-management-api/internal/domain/repository"
)

// Service implements the user management use cases on top of the repository.
type Service struct {
	repo   repository.UserRepository
	logger *logrus.Logger
}

func NewService(repo repository.UserRepository, logger *logrus.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// UserInput carries the validated fields for a create or update.
type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	Role      string
}

func (s *Service) List() []entity.User {
	return s.repo.ListAll()
}

func (s *Service) Get(id string) (*entity.User, bool) {
	return s.repo.GetByID(id)
}

// Create assigns a fresh id and creation timestamp and inserts the user.
func (s *Service) Create(in UserInput) (*entity.User, error) {
	u := entity.User{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Role:      in.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"user_id": u.ID}).Debug("user created")
	return &u, nil
}

// Update replaces every field except ID and CreatedAt. The repository
// re-checks existence and email ownership under its own lock; the lookup
// here only recovers the immutable creation timestamp.
func (s *Service) Update(id string, in UserInput) (*entity.User, error) {
	existing, ok := s.repo.GetByID(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	updated := entity.User{
		ID:        existing.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Role:      in.Role,
		CreatedAt: existing.CreatedAt,
	}
	if err := s.repo.Update(updated); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"user_id": id}).Debug("user updated")
	return &updated, nil
}

func (s *Service) Delete(id string) bool {
	return s.repo.Delete(id)
}
