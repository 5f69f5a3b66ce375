package services

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"devcamper/app/apierr"
	"devcamper/app/dto"
	"devcamper/app/geocoder"
	"devcamper/app/models"
	"devcamper/app/query"
	"devcamper/app/repo"
	"devcamper/app/storage"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type BootcampService struct {
	bootcamps *repo.BootcampRepository
	geo       geocoder.Geocoder
	photos    storage.Store
}

func NewBootcampService(bootcamps *repo.BootcampRepository, geo geocoder.Geocoder, photos storage.Store) *BootcampService {
	return &BootcampService{bootcamps: bootcamps, geo: geo, photos: photos}
}

func (s *BootcampService) List(values url.Values) ([]models.Bootcamp, *query.Result, error) {
	return s.bootcamps.List(values)
}

func (s *BootcampService) Get(id string) (*models.Bootcamp, error) {
	return s.bootcamps.FindByID(id)
}

// Create enforces the publishing limit: a non-admin user may own at most one
// bootcamp.
func (s *BootcampService) Create(actor *models.User, req dto.BootcampRequest) (*models.Bootcamp, error) {
	if !actor.IsAdmin() {
		if _, err := s.bootcamps.FindByOwner(actor.ID); err == nil {
			return nil, apierr.Conflict("user %s has already published a bootcamp", actor.ID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	b := &models.Bootcamp{UserID: actor.ID}
	applyBootcampRequest(b, req)
	s.locate(b)
	if err := s.bootcamps.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BootcampService) Update(id string, actor *models.User, req dto.BootcampRequest) (*models.Bootcamp, error) {
	b, err := s.bootcamps.FindByID(id)
	if err != nil {
		return nil, err
	}
	if b.UserID != actor.ID && !actor.IsAdmin() {
		return nil, apierr.Forbidden("user %s is not authorized to update this bootcamp", actor.ID)
	}
	applyBootcampRequest(b, req)
	if b.Address != "" {
		s.locate(b)
	}
	if err := s.bootcamps.Save(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BootcampService) Delete(id string, actor *models.User) error {
	b, err := s.bootcamps.FindByID(id)
	if err != nil {
		return err
	}
	if b.UserID != actor.ID && !actor.IsAdmin() {
		return apierr.Forbidden("user %s is not authorized to delete this bootcamp", actor.ID)
	}
	return s.bootcamps.Delete(b.ID)
}

func (s *BootcampService) InRadius(zipcode string, distanceMiles float64) ([]models.Bootcamp, error) {
	loc, err := s.geo.Geocode(zipcode)
	if err != nil {
		return nil, apierr.BadRequest("could not geocode %s", zipcode)
	}
	return s.bootcamps.FindInRadius(loc.Latitude, loc.Longitude, distanceMiles)
}

// UploadPhoto stores an already size- and type-checked image and records its
// public name on the bootcamp. The record is re-fetched here so the ownership
// check is never stale.
func (s *BootcampService) UploadPhoto(id string, actor *models.User, filename string, data []byte) (string, error) {
	b, err := s.bootcamps.FindByID(id)
	if err != nil {
		return "", err
	}
	if b.UserID != actor.ID && !actor.IsAdmin() {
		return "", apierr.Forbidden("user %s is not authorized to update this bootcamp", actor.ID)
	}
	name := "photo_" + b.ID + filepath.Ext(filename)
	stored, err := s.photos.Save(name, data)
	if err != nil {
		return "", err
	}
	b.Photo = stored
	if err := s.bootcamps.Save(b); err != nil {
		return "", err
	}
	return stored, nil
}

func applyBootcampRequest(b *models.Bootcamp, req dto.BootcampRequest) {
	b.Name = req.Name
	b.Slug = models.Slugify(req.Name)
	b.Description = req.Description
	b.Website = req.Website
	b.Phone = req.Phone
	b.Email = req.Email
	b.Address = req.Address
	b.Careers = strings.Join(req.Careers, ",")
	b.AverageCost = req.AverageCost
	b.Housing = req.Housing
	b.JobAssistance = req.JobAssistance
	b.JobGuarantee = req.JobGuarantee
	b.AcceptGi = req.AcceptGi
}

// locate is best effort; a bootcamp without coordinates is still listable,
// it just never matches a radius search.
func (s *BootcampService) locate(b *models.Bootcamp) {
	if b.Address == "" {
		return
	}
	loc, err := s.geo.Geocode(b.Address)
	if err != nil {
		log.Warn().Err(err).Str("address", b.Address).Msg("geocode failed")
		return
	}
	b.Latitude = loc.Latitude
	b.Longitude = loc.Longitude
}
