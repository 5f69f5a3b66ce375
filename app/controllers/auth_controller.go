package controllers

import (
	"fmt"
	"net/http"
	"time"

	"devcamper/app/dto"
	jwtutil "devcamper/app/jwt"
	"devcamper/app/middleware"
	"devcamper/app/models"
	"devcamper/app/services"
)

// CookieOpts shapes the session cookie set alongside token responses.
type CookieOpts struct {
	ExpDays int
	Secure  bool
}

type AuthController struct {
	Auth   *services.AuthService
	Signer *jwtutil.Signer
	Cookie CookieOpts
}

func NewAuthController(auth *services.AuthService, signer *jwtutil.Signer, cookie CookieOpts) *AuthController {
	return &AuthController{Auth: auth, Signer: signer, Cookie: cookie}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) error {
	var req dto.RegisterRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	u, err := c.Auth.Register(req)
	if err != nil {
		return err
	}
	return c.sendToken(w, u, http.StatusCreated)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) error {
	var req dto.LoginRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	u, err := c.Auth.Login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.sendToken(w, u, http.StatusOK)
}

// Logout clears the session cookie; the token itself stays valid until
// expiry since there is no revocation list.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name: "token", Value: "none", Path: "/",
		Expires: time.Now().Add(10 * time.Second), HttpOnly: true,
	})
	respondData(w, http.StatusOK, struct{}{})
	return nil
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) error {
	u := middleware.CurrentUser(r.Context())
	respondData(w, http.StatusOK, u)
	return nil
}

func (c *AuthController) UpdateDetails(w http.ResponseWriter, r *http.Request) error {
	var req dto.UpdateDetailsRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	u, err := c.Auth.UpdateDetails(middleware.CurrentUser(r.Context()).ID, req)
	if err != nil {
		return err
	}
	respondData(w, http.StatusOK, u)
	return nil
}

func (c *AuthController) UpdatePassword(w http.ResponseWriter, r *http.Request) error {
	var req dto.UpdatePasswordRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	u, err := c.Auth.UpdatePassword(middleware.CurrentUser(r.Context()).ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}
	return c.sendToken(w, u, http.StatusOK)
}

func (c *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) error {
	var req dto.ForgotPasswordRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	base := fmt.Sprintf("%s://%s/api/v1/auth/resetpassword", scheme, r.Host)
	if err := c.Auth.ForgotPassword(req.Email, base); err != nil {
		return err
	}
	respondData(w, http.StatusOK, "email sent")
	return nil
}

func (c *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) error {
	var req dto.ResetPasswordRequest
	if err := bind(r, &req); err != nil {
		return err
	}
	u, err := c.Auth.ResetPassword(r.PathValue("token"), req.Password)
	if err != nil {
		return err
	}
	return c.sendToken(w, u, http.StatusOK)
}

// sendToken issues a signed credential and mirrors it into the httpOnly
// session cookie.
func (c *AuthController) sendToken(w http.ResponseWriter, u *models.User, status int) error {
	token, err := c.Signer.Sign(u.ID, u.Role)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name: "token", Value: token, Path: "/",
		Expires:  time.Now().Add(time.Duration(c.Cookie.ExpDays) * 24 * time.Hour),
		HttpOnly: true,
		Secure:   c.Cookie.Secure,
	})
	writeJSON(w, status, envelope{Success: true, Token: token})
	return nil
}
