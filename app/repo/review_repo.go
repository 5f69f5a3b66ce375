package repo

import (
	"net/url"

	"devcamper/app/models"
	"devcamper/app/query"

	"gorm.io/gorm"
)

var reviewResource = query.Resource{
	Model: &models.Review{},
	Columns: map[string]string{
		"title":     "title",
		"rating":    "rating",
		"bootcamp":  "bootcamp_id",
		"user":      "user_id",
		"createdAt": "created_at",
	},
}

type ReviewRepository struct{ db *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{db: db} }

func (r *ReviewRepository) Create(rv *models.Review) error { return r.db.Create(rv).Error }

func (r *ReviewRepository) FindByID(id string) (*models.Review, error) {
	var rv models.Review
	if err := r.db.First(&rv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) FindByBootcamp(bootcampID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("bootcamp_id = ?", bootcampID).Order("created_at DESC, id ASC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Save(rv *models.Review) error { return r.db.Save(rv).Error }

func (r *ReviewRepository) Delete(id string) error {
	return r.db.Delete(&models.Review{}, "id = ?", id).Error
}

func (r *ReviewRepository) List(values url.Values) ([]models.Review, *query.Result, error) {
	var reviews []models.Review
	res, err := query.Execute(r.db, reviewResource, values, &reviews, nil)
	return reviews, res, err
}
