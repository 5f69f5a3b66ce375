package services

import (
	"fmt"
	"net/url"

	"devcamper/app/dto"
	"devcamper/app/models"
	"devcamper/app/query"
	"devcamper/app/repo"

	"golang.org/x/crypto/bcrypt"
)

// UserService backs the admin-only users plane.
type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

func (s *UserService) List(values url.Values) ([]models.User, *query.Result, error) {
	return s.users.List(values)
}

func (s *UserService) Get(id string) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) Create(req dto.CreateUserRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{Name: req.Name, Email: req.Email, Role: role, Password: string(hash)}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Update(id string, req dto.UpdateUserRequest) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Role != "" {
		u.Role = req.Role
	}
	if err := s.users.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(id string) error {
	if _, err := s.users.FindByID(id); err != nil {
		return err
	}
	return s.users.Delete(id)
}
