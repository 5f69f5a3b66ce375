package services

import (
	"net/url"

	"devcamper/app/apierr"
	"devcamper/app/dto"
	"devcamper/app/models"
	"devcamper/app/query"
	"devcamper/app/repo"
)

type CourseService struct {
	courses   *repo.CourseRepository
	bootcamps *repo.BootcampRepository
}

func NewCourseService(courses *repo.CourseRepository, bootcamps *repo.BootcampRepository) *CourseService {
	return &CourseService{courses: courses, bootcamps: bootcamps}
}

func (s *CourseService) List(values url.Values) ([]models.Course, *query.Result, error) {
	return s.courses.List(values)
}

func (s *CourseService) ListByBootcamp(bootcampID string) ([]models.Course, error) {
	if _, err := s.bootcamps.FindByID(bootcampID); err != nil {
		return nil, err
	}
	return s.courses.FindByBootcamp(bootcampID)
}

func (s *CourseService) Get(id string) (*models.Course, error) {
	return s.courses.FindByID(id)
}

// Create requires the actor to own the parent bootcamp (or be admin) and
// records the actor as the course creator.
func (s *CourseService) Create(bootcampID string, actor *models.User, req dto.CourseRequest) (*models.Course, error) {
	b, err := s.bootcamps.FindByID(bootcampID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actor.ID && !actor.IsAdmin() {
		return nil, apierr.Forbidden("user %s is not authorized to add a course to bootcamp %s", actor.ID, b.ID)
	}
	c := &models.Course{BootcampID: b.ID, UserID: actor.ID}
	applyCourseRequest(c, req)
	if err := s.courses.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update checks the course's own creator, not the parent bootcamp's current
// owner. A bootcamp can change hands after a course was added; mutation
// rights stay with whoever created the course.
func (s *CourseService) Update(id string, actor *models.User, req dto.CourseRequest) (*models.Course, error) {
	c, err := s.courses.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c.UserID != actor.ID && !actor.IsAdmin() {
		return nil, apierr.Forbidden("user %s is not authorized to update course %s", actor.ID, c.ID)
	}
	applyCourseRequest(c, req)
	if err := s.courses.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CourseService) Delete(id string, actor *models.User) error {
	c, err := s.courses.FindByID(id)
	if err != nil {
		return err
	}
	if c.UserID != actor.ID && !actor.IsAdmin() {
		return apierr.Forbidden("user %s is not authorized to delete course %s", actor.ID, c.ID)
	}
	return s.courses.Delete(c.ID)
}

func applyCourseRequest(c *models.Course, req dto.CourseRequest) {
	c.Title = req.Title
	c.Description = req.Description
	c.Weeks = req.Weeks
	c.Tuition = req.Tuition
	c.MinimumSkill = req.MinimumSkill
	c.Scholarship = req.Scholarship
}
