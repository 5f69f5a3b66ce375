// Command seed imports the sample JSON data set into the configured database,
// or wipes it.
//
//	go run ./cmd/seed -import
//	go run ./cmd/seed -delete
package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"devcamper/app/db"
	"devcamper/app/models"
	"devcamper/config"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		dataDir    = flag.String("data", "_data", "Directory with seed JSON files")
		doImport   = flag.Bool("import", false, "Import seed data")
		doDelete   = flag.Bool("delete", false, "Delete all data")
	)
	flag.Parse()

	if *doImport == *doDelete {
		log.Fatal().Msg("pass exactly one of -import or -delete")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	gdb, err := db.Connect(db.Config{
		Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port,
		User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, File: cfg.DB.File,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Bootcamp{}, &models.Course{}, &models.Review{}); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	if *doDelete {
		wipe(gdb)
		log.Info().Msg("data destroyed")
		return
	}
	importAll(gdb, *dataDir)
	log.Info().Msg("data imported")
}

// wipe removes children before parents.
func wipe(gdb *gorm.DB) {
	for _, model := range []any{&models.Review{}, &models.Course{}, &models.Bootcamp{}, &models.User{}} {
		if err := gdb.Where("1 = 1").Delete(model).Error; err != nil {
			log.Fatal().Err(err).Msg("delete")
		}
	}
}

// seedUser re-exposes the password field the model hides from API output.
type seedUser struct {
	models.User
	Password string `json:"password"`
}

func importAll(gdb *gorm.DB, dir string) {
	var seedUsers []seedUser
	load(dir, "users.json", &seedUsers)
	users := make([]models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}
		u := su.User
		u.Password = string(hash)
		users = append(users, u)
	}
	insert(gdb, "users", users)

	var bootcamps []models.Bootcamp
	load(dir, "bootcamps.json", &bootcamps)
	insert(gdb, "bootcamps", bootcamps)

	var courses []models.Course
	load(dir, "courses.json", &courses)
	insert(gdb, "courses", courses)

	var reviews []models.Review
	load(dir, "reviews.json", &reviews)
	insert(gdb, "reviews", reviews)
}

// load reads a seed file when present; a missing file just skips the table.
func load(dir, name string, dest any) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		log.Fatal().Err(err).Str("file", name).Msg("read seed file")
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Fatal().Err(err).Str("file", name).Msg("parse seed file")
	}
}

func insert[T any](gdb *gorm.DB, table string, rows []T) {
	if len(rows) == 0 {
		return
	}
	if err := gdb.Create(&rows).Error; err != nil {
		log.Fatal().Err(err).Str("table", table).Msg("insert")
	}
	log.Info().Str("table", table).Int("rows", len(rows)).Msg("seeded")
}
