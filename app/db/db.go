package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Driver   string // "mysql" or "sqlite"
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	File     string // sqlite only
}

// Connect opens the configured database. TranslateError is on so unique
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func Connect(cfg Config) (*gorm.DB, error) {
	opts := &gorm.Config{TranslateError: true}
	switch cfg.Driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.File), opts)
	case "mysql", "":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), opts)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}
