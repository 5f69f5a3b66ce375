package initialize

import (
	"fmt"
	"net/http"
	"time"

	"devcamper/app/controllers"
	"devcamper/app/db"
	"devcamper/app/geocoder"
	jwtutil "devcamper/app/jwt"
	"devcamper/app/mailer"
	"devcamper/app/middleware"
	"devcamper/app/models"
	"devcamper/app/repo"
	"devcamper/app/services"
	"devcamper/app/storage"
	"devcamper/config"
	"devcamper/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler
}

// Build wires the whole dependency graph from a config file path. Nothing in
// the app reaches for process-global state; everything downstream holds what
// it was handed here.
func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	gdb, err := db.Connect(db.Config{
		Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port,
		User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, File: cfg.DB.File,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Bootcamp{}, &models.Course{}, &models.Review{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Collaborators; dev fallbacks when unconfigured.
	var mail mailer.Mailer = mailer.Log{}
	if cfg.SMTP.Host != "" {
		mail = &mailer.SMTP{Host: cfg.SMTP.Host, Port: cfg.SMTP.Port, From: cfg.SMTP.From}
	}
	var geo geocoder.Geocoder = &geocoder.Static{}
	if cfg.Geocoder.Key != "" {
		geo = geocoder.NewHTTP(cfg.Geocoder.URL, cfg.Geocoder.Key)
	}
	photos := &storage.Local{Dir: cfg.Upload.Dir}

	// Repositories and services
	userRepo := repo.NewUserRepository(gdb)
	bootcampRepo := repo.NewBootcampRepository(gdb)
	courseRepo := repo.NewCourseRepository(gdb)
	reviewRepo := repo.NewReviewRepository(gdb)

	authSvc := services.NewAuthService(userRepo, mail)
	userSvc := services.NewUserService(userRepo)
	bootcampSvc := services.NewBootcampService(bootcampRepo, geo, photos)
	courseSvc := services.NewCourseService(courseRepo, bootcampRepo)
	reviewSvc := services.NewReviewService(reviewRepo, bootcampRepo)

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	cookie := controllers.CookieOpts{ExpDays: cfg.JWT.CookieExpDays, Secure: cfg.Server.Env == "production"}
	authCtrl := controllers.NewAuthController(authSvc, signer, cookie)
	bootcampCtrl := controllers.NewBootcampController(bootcampSvc, cfg.Upload.MaxBytes)
	courseCtrl := controllers.NewCourseController(courseSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	userCtrl := controllers.NewUserController(userSvc)

	mw := &middleware.Auth{Signer: signer, Users: userRepo}
	h := router.New(authCtrl, bootcampCtrl, courseCtrl, reviewCtrl, userCtrl, mw)

	// Outer middleware chain mirrors the mounted order: rate limit first,
	// then headers, CORS and request logging.
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		counter := &middleware.RedisCounter{Client: rdb}
		window := time.Duration(cfg.Rate.WindowSec) * time.Second
		h = middleware.RateLimit(counter, cfg.Rate.Limit, window)(h)
	}
	h = middleware.SecureHeaders(h)
	h = middleware.CORS(h)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h}, nil
}
