package services

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"devcamper/app/apierr"
	"devcamper/app/dto"
	"devcamper/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// captureMailer records outgoing mail and can be told to fail.
type captureMailer struct {
	to, subject, body string
	fail              bool
}

func (m *captureMailer) Send(to, subject, body string) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.to, m.subject, m.body = to, subject, body
	return nil
}

func newAuthService(db *gorm.DB, mail *captureMailer) *AuthService {
	return NewAuthService(repo.NewUserRepository(db), mail)
}

func register(t *testing.T, svc *AuthService, email string) {
	t.Helper()
	_, err := svc.Register(dto.RegisterRequest{Name: "Jo", Email: email, Password: "secret1"})
	require.NoError(t, err)
}

// lastResetToken pulls the raw token back out of the captured mail body.
func lastResetToken(t *testing.T, m *captureMailer) string {
	t.Helper()
	idx := strings.LastIndex(m.body, "/")
	require.Positive(t, idx, "mail body should contain a reset URL")
	return m.body[idx+1:]
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	svc := newAuthService(db, &captureMailer{})

	u, err := svc.Register(dto.RegisterRequest{Name: "Jo", Email: "jo@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "user", u.Role)
	assert.NotEqual(t, "secret1", u.Password, "password must be stored hashed")

	got, err := svc.Login("jo@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	svc := newAuthService(db, &captureMailer{})
	register(t, svc, "jo@example.com")

	_, err := svc.Login("jo@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apiStatus(t, err))

	_, err = svc.Login("nobody@example.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apiStatus(t, err))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	svc := newAuthService(db, &captureMailer{})
	register(t, svc, "jo@example.com")

	_, err := svc.Register(dto.RegisterRequest{Name: "Jo2", Email: "jo@example.com", Password: "secret2"})
	require.Error(t, err)
	e := apierr.Normalize(err)
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.Equal(t, "duplicate field value entered", e.Message)
}

func TestUpdatePassword(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	svc := newAuthService(db, &captureMailer{})
	u, err := svc.Register(dto.RegisterRequest{Name: "Jo", Email: "jo@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.UpdatePassword(u.ID, "wrong", "newpass1")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apiStatus(t, err))

	_, err = svc.UpdatePassword(u.ID, "secret1", "newpass1")
	require.NoError(t, err)

	_, err = svc.Login("jo@example.com", "secret1")
	require.Error(t, err)
	_, err = svc.Login("jo@example.com", "newpass1")
	require.NoError(t, err)
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	mail := &captureMailer{}
	svc := newAuthService(db, mail)
	register(t, svc, "jo@example.com")

	require.NoError(t, svc.ForgotPassword("jo@example.com", "http://localhost/api/v1/auth/resetpassword"))
	assert.Equal(t, "jo@example.com", mail.to)
	token := lastResetToken(t, mail)
	require.Len(t, token, 40)

	// wrong token
	_, err := svc.ResetPassword("deadbeef", "brandnew1")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apiStatus(t, err))

	// correct token
	_, err = svc.ResetPassword(token, "brandnew1")
	require.NoError(t, err)

	_, err = svc.Login("jo@example.com", "secret1")
	require.Error(t, err, "old password must stop working")
	_, err = svc.Login("jo@example.com", "brandnew1")
	require.NoError(t, err)

	// token is single use
	_, err = svc.ResetPassword(token, "anotherpass1")
	require.Error(t, err)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	svc := newAuthService(db, &captureMailer{})

	err := svc.ForgotPassword("ghost@example.com", "http://localhost/reset")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apiStatus(t, err))
}

func TestForgotPassword_SendFailureRollsBack(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	mail := &captureMailer{fail: true}
	svc := newAuthService(db, mail)
	register(t, svc, "jo@example.com")

	err := svc.ForgotPassword("jo@example.com", "http://localhost/reset")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apiStatus(t, err))

	users := repo.NewUserRepository(db)
	u, err := users.FindByEmail("jo@example.com")
	require.NoError(t, err)
	assert.Empty(t, u.ResetPasswordToken, "failed send must clear the issued token")
	assert.Nil(t, u.ResetPasswordExpire)
}

func TestUpdateDetails(t *testing.T) {
	t.Parallel()
	db := testDB(t)
	svc := newAuthService(db, &captureMailer{})
	u, err := svc.Register(dto.RegisterRequest{Name: "Jo", Email: "jo@example.com", Password: "secret1"})
	require.NoError(t, err)

	got, err := svc.UpdateDetails(u.ID, dto.UpdateDetailsRequest{Name: "Joanna", Email: "joanna@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Joanna", got.Name)
	assert.Equal(t, "joanna@example.com", got.Email)
}
