package controllers

import (
	"net/http"

	"devcamper/app/dto"
	"devcamper/app/middleware"
	"devcamper/app/services"
)

type CourseController struct{ Courses *services.CourseService }

func NewCourseController(courses *services.CourseService) *CourseController {
	return &CourseController{Courses: courses}
}

func (c *CourseController) List(w http.ResponseWriter, r *http.Request) error {
	courses, res, err := c.Courses.List(r.URL.Query())
	if err != nil {
		return err
	}
	respondList(w, courses, res)
	return nil
}

func (c *CourseController) ListByBootcamp(w http.ResponseWriter, r *http.Request) error {
	courses, err := c.Courses.ListByBootcamp(r.PathValue("bootcampId"))
	if err != nil {
		return err
	}
	count := int64(len(courses))
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: &count, Data: courses})
	return nil
}

func (c *CourseController) Get(w http.ResponseWriter, r *http.Request) error {
	course, err := c.Courses.Get(r.PathValue("id"))
	if err != nil {
		return err
	}
	respondData(w, http.StatusOK, course)
	return nil
}

func (c *CourseController) Create(w http.ResponseWriter, r *http.Request) error {
	var req dto.CourseRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	course, err := c.Courses.Create(r.PathValue("bootcampId"), middleware.CurrentUser(r.Context()), req)
	if err != nil {
		return err
	}
	respondData(w, http.StatusCreated, course)
	return nil
}

func (c *CourseController) Update(w http.ResponseWriter, r *http.Request) error {
	var req dto.CourseRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	course, err := c.Courses.Update(r.PathValue("id"), middleware.CurrentUser(r.Context()), req)
	if err != nil {
		return err
	}
	respondData(w, http.StatusOK, course)
	return nil
}

func (c *CourseController) Delete(w http.ResponseWriter, r *http.Request) error {
	if err := c.Courses.Delete(r.PathValue("id"), middleware.CurrentUser(r.Context())); err != nil {
		return err
	}
	respondData(w, http.StatusOK, struct{}{})
	return nil
}
