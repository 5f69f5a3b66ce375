package repo

import (
	"net/url"

	"devcamper/app/models"
	"devcamper/app/query"

	"gorm.io/gorm"
)

var courseResource = query.Resource{
	Model: &models.Course{},
	Columns: map[string]string{
		"title":                "title",
		"weeks":                "weeks",
		"tuition":              "tuition",
		"minimumSkill":         "minimum_skill",
		"scholarshipAvailable": "scholarship",
		"bootcamp":             "bootcamp_id",
		"user":                 "user_id",
		"createdAt":            "created_at",
	},
}

type CourseRepository struct{ db *gorm.DB }

func NewCourseRepository(db *gorm.DB) *CourseRepository { return &CourseRepository{db: db} }

func (r *CourseRepository) Create(c *models.Course) error { return r.db.Create(c).Error }

func (r *CourseRepository) FindByID(id string) (*models.Course, error) {
	var c models.Course
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) FindByBootcamp(bootcampID string) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Where("bootcamp_id = ?", bootcampID).Order("created_at DESC, id ASC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Save(c *models.Course) error { return r.db.Save(c).Error }

func (r *CourseRepository) Delete(id string) error {
	return r.db.Delete(&models.Course{}, "id = ?", id).Error
}

func (r *CourseRepository) List(values url.Values) ([]models.Course, *query.Result, error) {
	var courses []models.Course
	res, err := query.Execute(r.db, courseResource, values, &courses, nil)
	return courses, res, err
}
