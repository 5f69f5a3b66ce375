package services

import (
	"net/url"

	"devcamper/app/apierr"
	"devcamper/app/dto"
	"devcamper/app/models"
	"devcamper/app/query"
	"devcamper/app/repo"
)

type ReviewService struct {
	reviews   *repo.ReviewRepository
	bootcamps *repo.BootcampRepository
}

func NewReviewService(reviews *repo.ReviewRepository, bootcamps *repo.BootcampRepository) *ReviewService {
	return &ReviewService{reviews: reviews, bootcamps: bootcamps}
}

func (s *ReviewService) List(values url.Values) ([]models.Review, *query.Result, error) {
	return s.reviews.List(values)
}

func (s *ReviewService) ListByBootcamp(bootcampID string) ([]models.Review, error) {
	if _, err := s.bootcamps.FindByID(bootcampID); err != nil {
		return nil, err
	}
	return s.reviews.FindByBootcamp(bootcampID)
}

func (s *ReviewService) Get(id string) (*models.Review, error) {
	return s.reviews.FindByID(id)
}

func (s *ReviewService) Create(bootcampID string, actor *models.User, req dto.ReviewRequest) (*models.Review, error) {
	if _, err := s.bootcamps.FindByID(bootcampID); err != nil {
		return nil, err
	}
	rv := &models.Review{BootcampID: bootcampID, UserID: actor.ID}
	applyReviewRequest(rv, req)
	if err := s.reviews.Create(rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *ReviewService) Update(id string, actor *models.User, req dto.ReviewRequest) (*models.Review, error) {
	rv, err := s.reviews.FindByID(id)
	if err != nil {
		return nil, err
	}
	if rv.UserID != actor.ID && !actor.IsAdmin() {
		return nil, apierr.Forbidden("user %s is not authorized to update review %s", actor.ID, rv.ID)
	}
	applyReviewRequest(rv, req)
	if err := s.reviews.Save(rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *ReviewService) Delete(id string, actor *models.User) error {
	rv, err := s.reviews.FindByID(id)
	if err != nil {
		return err
	}
	if rv.UserID != actor.ID && !actor.IsAdmin() {
		return apierr.Forbidden("user %s is not authorized to delete review %s", actor.ID, rv.ID)
	}
	return s.reviews.Delete(rv.ID)
}

func applyReviewRequest(rv *models.Review, req dto.ReviewRequest) {
	rv.Title = req.Title
	rv.Text = req.Text
	rv.Rating = req.Rating
}
