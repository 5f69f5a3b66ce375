package controllers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"devcamper/app/apierr"
	"devcamper/app/dto"
	"devcamper/app/middleware"
	"devcamper/app/services"
)

type BootcampController struct {
	Bootcamps *services.BootcampService
	MaxUpload int64
}

func NewBootcampController(bootcamps *services.BootcampService, maxUpload int64) *BootcampController {
	return &BootcampController{Bootcamps: bootcamps, MaxUpload: maxUpload}
}

func (c *BootcampController) List(w http.ResponseWriter, r *http.Request) error {
	bootcamps, res, err := c.Bootcamps.List(r.URL.Query())
	if err != nil {
		return err
	}
	respondList(w, bootcamps, res)
	return nil
}

func (c *BootcampController) Get(w http.ResponseWriter, r *http.Request) error {
	b, err := c.Bootcamps.Get(r.PathValue("id"))
	if err != nil {
		return err
	}
	respondData(w, http.StatusOK, b)
	return nil
}

func (c *BootcampController) Create(w http.ResponseWriter, r *http.Request) error {
	var req dto.BootcampRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	b, err := c.Bootcamps.Create(middleware.CurrentUser(r.Context()), req)
	if err != nil {
		return err
	}
	respondData(w, http.StatusCreated, b)
	return nil
}

func (c *BootcampController) Update(w http.ResponseWriter, r *http.Request) error {
	var req dto.BootcampRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	b, err := c.Bootcamps.Update(r.PathValue("id"), middleware.CurrentUser(r.Context()), req)
	if err != nil {
		return err
	}
	respondData(w, http.StatusOK, b)
	return nil
}

func (c *BootcampController) Delete(w http.ResponseWriter, r *http.Request) error {
	if err := c.Bootcamps.Delete(r.PathValue("id"), middleware.CurrentUser(r.Context())); err != nil {
		return err
	}
	respondData(w, http.StatusOK, struct{}{})
	return nil
}

func (c *BootcampController) InRadius(w http.ResponseWriter, r *http.Request) error {
	distance, err := strconv.ParseFloat(r.PathValue("distance"), 64)
	if err != nil || distance <= 0 {
		return apierr.BadRequest("distance must be a positive number of miles")
	}
	bootcamps, err := c.Bootcamps.InRadius(r.PathValue("zipcode"), distance)
	if err != nil {
		return err
	}
	count := int64(len(bootcamps))
	writeJSON(w, http.StatusOK, envelope{Success: true, Count: &count, Data: bootcamps})
	return nil
}

func (c *BootcampController) UploadPhoto(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseMultipartForm(c.MaxUpload); err != nil {
		return apierr.BadRequest("please upload a file")
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return apierr.BadRequest("please upload a file")
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return apierr.BadRequest("please upload an image file")
	}
	if header.Size > c.MaxUpload {
		return apierr.BadRequest("please upload an image less than %d bytes", c.MaxUpload)
	}
	data, err := io.ReadAll(io.LimitReader(file, c.MaxUpload))
	if err != nil {
		return apierr.BadRequest("please upload a file")
	}

	name, err := c.Bootcamps.UploadPhoto(r.PathValue("id"), middleware.CurrentUser(r.Context()), header.Filename, data)
	if err != nil {
		return err
	}
	respondData(w, http.StatusOK, name)
	return nil
}
