package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
	Env  string
}

type DB struct {
	Driver string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	File   string
}

type JWT struct {
	Secret        string
	Issuer        string
	ExpMin        int
	CookieExpDays int
}

type Upload struct {
	Dir      string
	MaxBytes int64
}

type SMTP struct {
	Host string
	Port int
	From string
}

type Geocoder struct {
	URL string
	Key string
}

type Rate struct {
	Limit     int64
	WindowSec int
}

type Config struct {
	Server    Server
	DB        DB
	JWT       JWT
	Upload    Upload
	SMTP      SMTP
	Geocoder  Geocoder
	RedisAddr string
	Rate      Rate
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.env", "development")
	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "devcamper")
	v.SetDefault("db.file", "devcamper.db")
	v.SetDefault("jwt.issuer", "devcamper")
	v.SetDefault("jwt.exp_min", 60*24)
	v.SetDefault("jwt.cookie_exp_days", 30)
	v.SetDefault("upload.dir", "public/uploads")
	v.SetDefault("upload.max_bytes", 1000000)
	v.SetDefault("smtp.port", 25)
	v.SetDefault("smtp.from", "noreply@devcamper.io")
	v.SetDefault("geocoder.url", "http://api.positionstack.com/v1/forward")
	v.SetDefault("rate.limit", 100)
	v.SetDefault("rate.window_sec", 600)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		Server: Server{Host: v.GetString("server.host"), Port: v.GetInt("server.port"), Env: v.GetString("server.env")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
			File:   v.GetString("db.file"),
		},
		JWT: JWT{
			Secret:        v.GetString("jwt.secret"),
			Issuer:        v.GetString("jwt.issuer"),
			ExpMin:        v.GetInt("jwt.exp_min"),
			CookieExpDays: v.GetInt("jwt.cookie_exp_days"),
		},
		Upload:    Upload{Dir: v.GetString("upload.dir"), MaxBytes: v.GetInt64("upload.max_bytes")},
		SMTP:      SMTP{Host: v.GetString("smtp.host"), Port: v.GetInt("smtp.port"), From: v.GetString("smtp.from")},
		Geocoder:  Geocoder{URL: v.GetString("geocoder.url"), Key: v.GetString("geocoder.key")},
		RedisAddr: v.GetString("redis.addr"),
		Rate:      Rate{Limit: v.GetInt64("rate.limit"), WindowSec: v.GetInt("rate.window_sec")},
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	return cfg, nil
}
