package repo

import (
	"net/url"
	"time"

	"devcamper/app/models"
	"devcamper/app/query"

	"gorm.io/gorm"
)

var userResource = query.Resource{
	Model: &models.User{},
	Columns: map[string]string{
		"name":      "name",
		"email":     "email",
		"role":      "role",
		"createdAt": "created_at",
	},
}

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByResetToken matches a stored reset-token hash with an unexpired
// expiry.
func (r *UserRepository) FindByResetToken(tokenHash string, now time.Time) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, "reset_password_token = ? AND reset_password_expire > ?", tokenHash, now).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Save(u *models.User) error { return r.db.Save(u).Error }

func (r *UserRepository) Delete(id string) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

func (r *UserRepository) List(values url.Values) ([]models.User, *query.Result, error) {
	var users []models.User
	res, err := query.Execute(r.db, userResource, values, &users, nil)
	return users, res, err
}
