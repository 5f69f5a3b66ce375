package services

import (
	"testing"

	"devcamper/app/dto"
	"devcamper/app/geocoder"
	"devcamper/app/models"
	"devcamper/app/repo"
	"devcamper/app/storage"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	// a second pooled connection would see its own empty :memory: db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Bootcamp{}, &models.Course{}, &models.Review{}))
	return db
}

func newUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{Name: "Test User", Email: email, Role: role, Password: string(hash)}
	require.NoError(t, db.Create(u).Error)
	return u
}

func newBootcampService(db *gorm.DB) *BootcampService {
	return NewBootcampService(
		repo.NewBootcampRepository(db),
		&geocoder.Static{Locations: map[string]geocoder.Location{
			"02118": {Latitude: 42.34, Longitude: -71.07},
		}},
		&storage.Local{Dir: "testdata-uploads"},
	)
}

func bootcampReq(name string) dto.BootcampRequest {
	return dto.BootcampRequest{
		Name:        name,
		Description: "A bootcamp",
		Careers:     []string{"Web"},
		AverageCost: 10000,
	}
}

func courseReq(title string) dto.CourseRequest {
	return dto.CourseRequest{
		Title:        title,
		Description:  "A course",
		Weeks:        8,
		Tuition:      8000,
		MinimumSkill: "beginner",
	}
}
