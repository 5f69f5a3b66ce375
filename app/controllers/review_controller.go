package controllers

import (
	"net/http"

	"devcamper/app/dto"
	"devcamper/app/middleware"
	"devcamper/app/services"
)

type ReviewController struct{ Reviews *services.ReviewService }

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

func (c *ReviewController) List(w http.ResponseWriter, r *http.Request) error {
	reviews, res, err := c.Reviews.List(r.URL.Query())
	if err != nil {
		return err
	}
	respondList(w, reviews, res)
	return nil
}

func (c *ReviewController) ListByBootcamp(w http.ResponseWriter, r *http.Request) error {
	reviews, err := c.Reviews.ListByBootcamp(r.PathValue("bootcampId"))
	if err != nil {
		return err
	}
	count := int64(len(reviews))
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: &count, Data: reviews})
	return nil
}

func (c *ReviewController) Get(w http.ResponseWriter, r *http.Request) error {
	rv, err := c.Reviews.Get(r.PathValue("id"))
	if err != nil {
		return err
	}
	respondData(w, http.StatusOK, rv)
	return nil
}

func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) error {
	var req dto.ReviewRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	rv, err := c.Reviews.Create(r.PathValue("bootcampId"), middleware.CurrentUser(r.Context()), req)
	if err != nil {
		return err
	}
	respondData(w, http.StatusCreated, rv)
	return nil
}

func (c *ReviewController) Update(w http.ResponseWriter, r *http.Request) error {
	var req dto.ReviewRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	rv, err := c.Reviews.Update(r.PathValue("id"), middleware.CurrentUser(r.Context()), req)
	if err != nil {
		return err
	}
	respondData(w, http.StatusOK, rv)
	return nil
}

func (c *ReviewController) Delete(w http.ResponseWriter, r *http.Request) error {
	if err := c.Reviews.Delete(r.PathValue("id"), middleware.CurrentUser(r.Context())); err != nil {
		return err
	}
	respondData(w, http.StatusOK, struct{}{})
	return nil
}
