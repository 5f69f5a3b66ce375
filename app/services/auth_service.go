package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"devcamper/app/apierr"
	"devcamper/app/dto"
	"devcamper/app/mailer"
	"devcamper/app/models"
	"devcamper/app/repo"

	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 10 * time.Minute

type AuthService struct {
	users *repo.UserRepository
	mail  mailer.Mailer
}

func NewAuthService(users *repo.UserRepository, mail mailer.Mailer) *AuthService {
	return &AuthService{users: users, mail: mail}
}

func (s *AuthService) Register(req dto.RegisterRequest) (*models.User, error) {
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

func (s *AuthService) Login(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, apierr.Unauthorized("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, apierr.Unauthorized("invalid credentials")
	}
	return u, nil
}

func (s *AuthService) GetByID(id string) (*models.User, error) {
	return s.users.FindByID(id)
}

func (s *AuthService) UpdateDetails(userID string, req dto.UpdateDetailsRequest) (*models.User, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	u.Name = req.Name
	u.Email = req.Email
	if err := s.users.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) UpdatePassword(userID, current, next string) (*models.User, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(current)) != nil {
		return nil, apierr.Unauthorized("password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.Password = string(hash)
	if err := s.users.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}

// ForgotPassword issues a one-time reset token, stores only its hash and
// mails the raw token. A failed send rolls the token fields back before the
// error surfaces so the stored state never references a mail nobody got.
func (s *AuthService) ForgotPassword(email, resetURLBase string) error {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return apierr.NotFound("there is no user with email %s", email)
	}

	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("reset token: %w", err)
	}
	token := hex.EncodeToString(raw)
	expire := time.Now().Add(resetTokenTTL)

	u.ResetPasswordToken = hashToken(token)
	u.ResetPasswordExpire = &expire
	if err := s.users.Save(u); err != nil {
		return err
	}

	body := fmt.Sprintf("You are receiving this email because you (or someone else) has requested a password reset. Please make a PUT request to:\n\n%s/%s", resetURLBase, token)
	if err := s.mail.Send(u.Email, "Password Reset Token", body); err != nil {
		u.ResetPasswordToken = ""
		u.ResetPasswordExpire = nil
		_ = s.users.Save(u)
		return apierr.Internal("email could not be sent")
	}
	return nil
}

func (s *AuthService) ResetPassword(rawToken, password string) (*models.User, error) {
	u, err := s.users.FindByResetToken(hashToken(rawToken), time.Now())
	if err != nil {
		return nil, apierr.BadRequest("invalid token")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.Password = string(hash)
	u.ResetPasswordToken = ""
	u.ResetPasswordExpire = nil
	if err := s.users.Save(u); err != nil {
		return nil, err
	}
	return u, nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
