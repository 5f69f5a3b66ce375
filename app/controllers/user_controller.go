package controllers

import (
	"net/http"

	"devcamper/app/dto"
	"devcamper/app/services"
)

// UserController is the admin-only users plane.
type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) error {
	users, res, err := c.Users.List(r.URL.Query())
	if err != nil {
		return err
	}
	respondList(w, users, res)
	return nil
}

func (c *UserController) Get(w http.ResponseWriter, r *http.Request) error {
	u, err := c.Users.Get(r.PathValue("id"))
	if err != nil {
		return err
	}
	respondData(w, http.StatusOK, u)
	return nil
}

func (c *UserController) Create(w http.ResponseWriter, r *http.Request) error {
	var req dto.CreateUserRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	u, err := c.Users.Create(req)
	if err != nil {
		return err
	}
	respondData(w, http.StatusCreated, u)
	return nil
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) error {
	var req dto.UpdateUserRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	u, err := c.Users.Update(r.PathValue("id"), req)
	if err != nil {
		return err
	}
	respondData(w, http.StatusOK, u)
	return nil
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) error {
	if err := c.Users.Delete(r.PathValue("id")); err != nil {
		return err
	}
	respondData(w, http.StatusOK, struct{}{})
	return nil
}
