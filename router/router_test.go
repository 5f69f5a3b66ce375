package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"devcamper/app/controllers"
	"devcamper/app/geocoder"
	jwtutil "devcamper/app/jwt"
	"devcamper/app/mailer"
	"devcamper/app/middleware"
	"devcamper/app/models"
	"devcamper/app/query"
	"devcamper/app/repo"
	"devcamper/app/services"
	"devcamper/app/storage"
	"devcamper/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Success    bool              `json:"success"`
	Token      string            `json:"token"`
	Count      *int64            `json:"count"`
	Pagination *query.Pagination `json:"pagination"`
	Data       json.RawMessage   `json:"data"`
	Error      string            `json:"error"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Bootcamp{}, &models.Course{}, &models.Review{}))

	userRepo := repo.NewUserRepository(db)
	bootcampRepo := repo.NewBootcampRepository(db)
	courseRepo := repo.NewCourseRepository(db)
	reviewRepo := repo.NewReviewRepository(db)

	geo := &geocoder.Static{}
	photos := &storage.Local{Dir: t.TempDir()}

	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "devcamper", ExpMin: 60}
	cookie := controllers.CookieOpts{ExpDays: 1}
	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo, mailer.Log{}), signer, cookie)
	bootcampCtrl := controllers.NewBootcampController(services.NewBootcampService(bootcampRepo, geo, photos), 1<<20)
	courseCtrl := controllers.NewCourseController(services.NewCourseService(courseRepo, bootcampRepo))
	reviewCtrl := controllers.NewReviewController(services.NewReviewService(reviewRepo, bootcampRepo))
	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))

	mw := &middleware.Auth{Signer: signer, Users: userRepo}
	srv := httptest.NewServer(router.New(authCtrl, bootcampCtrl, courseCtrl, reviewCtrl, userCtrl, mw))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func registerUser(t *testing.T, srv *httptest.Server, email, role string) string {
	t.Helper()
	status, resp := call(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Test", "email": email, "password": "secret1", "role": role,
	})
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func bootcampBody(name string) map[string]any {
	return map[string]any{
		"name":        name,
		"description": "desc",
		"careers":     []string{"Web"},
		"averageCost": 10000,
	}
}

func TestRegisterLoginMe(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	token := registerUser(t, srv, "jo@example.com", "publisher")

	status, resp := call(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "jo@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, resp.Token)

	status, resp = call(t, srv, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	var me models.User
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Equal(t, "jo@example.com", me.Email)
}

func TestBootcampLifecycleAndGuards(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	pub := registerUser(t, srv, "pub@example.com", "publisher")
	other := registerUser(t, srv, "other@example.com", "publisher")
	plain := registerUser(t, srv, "plain@example.com", "user")

	// plain user lacks the publisher role
	status, resp := call(t, srv, http.MethodPost, "/api/v1/bootcamps", plain, bootcampBody("Camp"))
	require.Equal(t, http.StatusForbidden, status)
	assert.False(t, resp.Success)

	// anonymous is rejected outright
	status, _ = call(t, srv, http.MethodPost, "/api/v1/bootcamps", "", bootcampBody("Camp"))
	require.Equal(t, http.StatusUnauthorized, status)

	status, resp = call(t, srv, http.MethodPost, "/api/v1/bootcamps", pub, bootcampBody("Camp"))
	require.Equal(t, http.StatusCreated, status)
	var created models.Bootcamp
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	require.NotEmpty(t, created.ID)

	// second bootcamp for the same publisher violates the publishing limit
	status, _ = call(t, srv, http.MethodPost, "/api/v1/bootcamps", pub, bootcampBody("Camp Two"))
	require.Equal(t, http.StatusConflict, status)

	// non-owner mutation is forbidden
	status, _ = call(t, srv, http.MethodPut, "/api/v1/bootcamps/"+created.ID, other, bootcampBody("Stolen"))
	require.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, srv, http.MethodPut, "/api/v1/bootcamps/"+created.ID, pub, bootcampBody("Renamed"))
	require.Equal(t, http.StatusOK, status)

	// unknown id normalizes to 404
	status, _ = call(t, srv, http.MethodGet, "/api/v1/bootcamps/does-not-exist", "", nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestBootcampListTranslator(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	// one publisher per bootcamp because of the publishing limit
	for i := 1; i <= 3; i++ {
		pub := registerUser(t, srv, fmt.Sprintf("pub%d@example.com", i), "publisher")
		body := bootcampBody(fmt.Sprintf("Camp %d", i))
		if i == 3 {
			body["careers"] = []string{"Data"}
		}
		status, _ := call(t, srv, http.MethodPost, "/api/v1/bootcamps", pub, body)
		require.Equal(t, http.StatusCreated, status)
	}

	status, resp := call(t, srv, http.MethodGet, "/api/v1/bootcamps?careers=Web&limit=1", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Count)
	assert.Equal(t, int64(2), *resp.Count)
	var page []models.Bootcamp
	require.NoError(t, json.Unmarshal(resp.Data, &page))
	require.Len(t, page, 1)
	assert.Equal(t, "Web", page[0].Careers)
	require.NotNil(t, resp.Pagination)
	require.NotNil(t, resp.Pagination.Next)
	assert.Nil(t, resp.Pagination.Prev)

	status, resp = call(t, srv, http.MethodGet, "/api/v1/bootcamps?careers=Web&limit=1&page=2", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, resp.Pagination)
	assert.Nil(t, resp.Pagination.Next)
	require.NotNil(t, resp.Pagination.Prev)
}

func TestValidationEnvelope(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	status, resp := call(t, srv, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "", "email": "not-an-email", "password": "123",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "please add a name")
	assert.Contains(t, resp.Error, "please add a valid email")
}

func TestUsersPlaneIsAdminOnly(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	pub := registerUser(t, srv, "pub@example.com", "publisher")
	status, _ := call(t, srv, http.MethodGet, "/api/v1/users", pub, nil)
	require.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, srv, http.MethodGet, "/api/v1/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)
}
