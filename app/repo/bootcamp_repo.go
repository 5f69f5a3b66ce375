package repo

import (
	"math"
	"net/url"

	"devcamper/app/models"
	"devcamper/app/query"

	"gorm.io/gorm"
)

// earthRadiusMiles matches the constant the radius endpoint documents.
const earthRadiusMiles = 3963.0

var bootcampResource = query.Resource{
	Model: &models.Bootcamp{},
	Columns: map[string]string{
		"name":          "name",
		"slug":          "slug",
		"careers":       "careers",
		"averageCost":   "average_cost",
		"averageRating": "average_rating",
		"housing":       "housing",
		"jobAssistance": "job_assistance",
		"jobGuarantee":  "job_guarantee",
		"acceptGi":      "accept_gi",
		"user":          "user_id",
		"createdAt":     "created_at",
	},
}

var bootcampExpand = map[string]string{"courses": "Courses", "reviews": "Reviews"}

type BootcampRepository struct{ db *gorm.DB }

func NewBootcampRepository(db *gorm.DB) *BootcampRepository { return &BootcampRepository{db: db} }

func (r *BootcampRepository) Create(b *models.Bootcamp) error { return r.db.Create(b).Error }

func (r *BootcampRepository) FindByID(id string) (*models.Bootcamp, error) {
	var b models.Bootcamp
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BootcampRepository) FindByOwner(userID string) (*models.Bootcamp, error) {
	var b models.Bootcamp
	if err := r.db.First(&b, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BootcampRepository) Save(b *models.Bootcamp) error { return r.db.Save(b).Error }

func (r *BootcampRepository) Delete(id string) error {
	return r.db.Delete(&models.Bootcamp{}, "id = ?", id).Error
}

func (r *BootcampRepository) List(values url.Values) ([]models.Bootcamp, *query.Result, error) {
	var bootcamps []models.Bootcamp
	res, err := query.Execute(r.db, bootcampResource, values, &bootcamps, bootcampExpand)
	return bootcamps, res, err
}

// FindInRadius narrows candidates with a lat/lng bounding box in SQL, then
// keeps those within the exact great-circle distance. The box keeps the SQL
// portable across drivers that lack trig functions.
func (r *BootcampRepository) FindInRadius(lat, lng, distanceMiles float64) ([]models.Bootcamp, error) {
	latDelta := distanceMiles / 69.0
	lngDelta := latDelta
	if cos := math.Cos(lat * math.Pi / 180); cos > 0.01 {
		lngDelta = distanceMiles / (69.0 * cos)
	}

	var candidates []models.Bootcamp
	err := r.db.
		Where("latitude BETWEEN ? AND ?", lat-latDelta, lat+latDelta).
		Where("longitude BETWEEN ? AND ?", lng-lngDelta, lng+lngDelta).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	matched := candidates[:0]
	for _, b := range candidates {
		if haversineMiles(lat, lng, b.Latitude, b.Longitude) <= distanceMiles {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func haversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	const rad = math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(a))
}
