package router

import (
	"net/http"

	"devcamper/app/controllers"
	"devcamper/app/middleware"
	"devcamper/app/models"
)

// New mounts the full API surface under /api/v1. Guards compose per route:
// RequireAuth resolves the user, RequireRole gates on the role set, ownership
// checks live in the services.
func New(auth *controllers.AuthController, bootcamps *controllers.BootcampController, courses *controllers.CourseController, reviews *controllers.ReviewController, users *controllers.UserController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	guarded := func(h controllers.HandlerFunc, roles ...string) http.Handler {
		var handler http.Handler = controllers.Wrap(h)
		if len(roles) > 0 {
			handler = mw.RequireRole(roles...)(handler)
		}
		return mw.RequireAuth(handler)
	}

	// auth
	mux.Handle("POST /api/v1/auth/register", controllers.Wrap(auth.Register))
	mux.Handle("POST /api/v1/auth/login", controllers.Wrap(auth.Login))
	mux.Handle("GET /api/v1/auth/logout", controllers.Wrap(auth.Logout))
	mux.Handle("GET /api/v1/auth/me", guarded(auth.Me))
	mux.Handle("PUT /api/v1/auth/updatedetails", guarded(auth.UpdateDetails))
	mux.Handle("PUT /api/v1/auth/updatepassword", guarded(auth.UpdatePassword))
	mux.Handle("POST /api/v1/auth/forgotpassword", controllers.Wrap(auth.ForgotPassword))
	mux.Handle("PUT /api/v1/auth/resetpassword/{token}", controllers.Wrap(auth.ResetPassword))

	// bootcamps
	publisher := []string{models.RolePublisher, models.RoleAdmin}
	mux.Handle("GET /api/v1/bootcamps", controllers.Wrap(bootcamps.List))
	mux.Handle("POST /api/v1/bootcamps", guarded(bootcamps.Create, publisher...))
	mux.Handle("GET /api/v1/bootcamps/{id}", controllers.Wrap(bootcamps.Get))
	mux.Handle("PUT /api/v1/bootcamps/{id}", guarded(bootcamps.Update, publisher...))
	mux.Handle("DELETE /api/v1/bootcamps/{id}", guarded(bootcamps.Delete, publisher...))
	mux.Handle("GET /api/v1/bootcamps/radius/{zipcode}/{distance}", controllers.Wrap(bootcamps.InRadius))
	mux.Handle("PUT /api/v1/bootcamps/{id}/photo", guarded(bootcamps.UploadPhoto, publisher...))

	// courses
	mux.Handle("GET /api/v1/bootcamps/{bootcampId}/courses", controllers.Wrap(courses.ListByBootcamp))
	mux.Handle("POST /api/v1/bootcamps/{bootcampId}/courses", guarded(courses.Create, publisher...))
	mux.Handle("GET /api/v1/courses", controllers.Wrap(courses.List))
	mux.Handle("GET /api/v1/courses/{id}", controllers.Wrap(courses.Get))
	mux.Handle("PUT /api/v1/courses/{id}", guarded(courses.Update, publisher...))
	mux.Handle("DELETE /api/v1/courses/{id}", guarded(courses.Delete, publisher...))

	// reviews
	reviewer := []string{models.RoleUser, models.RoleAdmin}
	mux.Handle("GET /api/v1/bootcamps/{bootcampId}/reviews", controllers.Wrap(reviews.ListByBootcamp))
	mux.Handle("POST /api/v1/bootcamps/{bootcampId}/reviews", guarded(reviews.Create, reviewer...))
	mux.Handle("GET /api/v1/reviews", controllers.Wrap(reviews.List))
	mux.Handle("GET /api/v1/reviews/{id}", controllers.Wrap(reviews.Get))
	mux.Handle("PUT /api/v1/reviews/{id}", guarded(reviews.Update, reviewer...))
	mux.Handle("DELETE /api/v1/reviews/{id}", guarded(reviews.Delete, reviewer...))

	// users (admin only)
	mux.Handle("GET /api/v1/users", guarded(users.List, models.RoleAdmin))
	mux.Handle("POST /api/v1/users", guarded(users.Create, models.RoleAdmin))
	mux.Handle("GET /api/v1/users/{id}", guarded(users.Get, models.RoleAdmin))
	mux.Handle("PUT /api/v1/users/{id}", guarded(users.Update, models.RoleAdmin))
	mux.Handle("DELETE /api/v1/users/{id}", guarded(users.Delete, models.RoleAdmin))

	return mux
}
