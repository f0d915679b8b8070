package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App      App
		CORS     CORS
		Cache    Cache
		HTTP     HTTP
		Log      Log
		Swagger  Swagger
		Schedule Schedule
		JWT      JWT
		Admin    Admin
		Razorpay Razorpay
		Ledger   Ledger
		Sheets   Sheets
		Pg       Pg
		Dynamo   Dynamo
		Redis    Redis
		Mail     Mail
	}

	App struct {
		Name     string `env:"APP_NAME,required"`
		Version  string `env:"APP_VERSION,required"`
		Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Kolkata"`
	}

	CORS struct {
		AllowCredentials bool   `env:"APP_CORS_ALLOW_CREDENTIALS"`
		AllowedHeaders   string `env:"APP_CORS_ALLOWED_HEADERS"`
		AllowedMethods   string `env:"APP_CORS_ALLOWED_METHODS"`
		AllowedOrigins   string `env:"APP_CORS_ALLOWED_ORIGINS"`
		Enable           bool   `env:"APP_CORS_ENABLE"`
		MaxAgeSeconds    int    `env:"APP_CORS_MAX_AGE_SECONDS"`
	}

	Cache struct {
		Duration int `env:"CACHE_DURATIONS" envDefault:"300"`
	}

	HTTP struct {
		Port         string        `env:"HTTP_PORT,required"`
		ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}

	Schedule struct {
		DonationsRefresh string `env:"SCHEDULE_DONATIONS_REFRESH" envDefault:"0 */10 * * * *"`
	}

	JWT struct {
		Secret             string `env:"JWT_SECRET"`
		AccessTokenExpiry  string `env:"JWT_ACCESS_TOKEN_EXPIRY"  envDefault:"24h"`
		RefreshTokenExpiry string `env:"JWT_REFRESH_TOKEN_EXPIRY" envDefault:"7d"`
	}

	// Admin is the single operator allowed to read the ledger back.
	Admin struct {
		Email        string `env:"ADMIN_EMAIL"`
		PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	}

	Razorpay struct {
		KeyID     string        `env:"RAZORPAY_KEY_ID,required"`
		KeySecret string        `env:"RAZORPAY_KEY_SECRET,required"`
		Timeout   time.Duration `env:"RAZORPAY_TIMEOUT" envDefault:"15s"`
	}

	Ledger struct {
		Driver  string        `env:"LEDGER_DRIVER" envDefault:"noop"`
		Timeout time.Duration `env:"LEDGER_TIMEOUT" envDefault:"10s"`
	}

	Sheets struct {
		SpreadsheetID   string `env:"GOOGLE_SPREADSHEET_ID"`
		CredentialsPath string `env:"GOOGLE_CREDENTIALS_PATH"`
		Endpoint        string `env:"GOOGLE_SHEETS_ENDPOINT"`
	}

	Pg struct {
		PoolMax  int    `env:"PG_POOL_MAX" envDefault:"2"`
		Host     string `env:"PG_HOST"`
		Port     int    `env:"PG_PORT" envDefault:"5432"`
		User     string `env:"PG_USER"`
		Password string `env:"PG_PASSWORD"`
		Dbname   string `env:"PG_DATABASE"`
		SSLMode  string `env:"PG_SSLMODE" envDefault:"disable"`
	}

	Dynamo struct {
		Table    string `env:"DYNAMODB_TABLE"`
		Region   string `env:"AWS_REGION"`
		Endpoint string `env:"DYNAMODB_ENDPOINT"`
	}

	Redis struct {
		Enabled  bool   `env:"REDIS_ENABLED" envDefault:"false"`
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB"`
	}

	Mail struct {
		Enabled      bool   `env:"MAIL_ENABLED" envDefault:"false"`
		SMTPHost     string `env:"MAIL_SMTP_HOST"`
		SMTPPort     int    `env:"MAIL_SMTP_PORT" envDefault:"587"`
		SMTPUsername string `env:"MAIL_SMTP_USERNAME"`
		SMTPPassword string `env:"MAIL_SMTP_PASSWORD"`
		FromEmail    string `env:"MAIL_FROM_EMAIL"`
		FromName     string `env:"MAIL_FROM_NAME"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	return cfg, nil
}
