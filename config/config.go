package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hiring-flow" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"AUTH_JWT_EXPIRE_IN_SEC"`
	}
	Admin struct {
		Name     string `default:"Admin" env:"ADMIN_NAME"`
		Email    string `default:"" env:"ADMIN_EMAIL"`
		Password string `default:"" env:"ADMIN_PASSWORD"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailFrom  string `default:"" env:"SMTP_EMAIL_FROM"`
	}
	S3 struct {
		Endpoint         string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID      string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey  string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL           *bool  `default:"false" env:"S3_USE_SSL"`
		AssessmentBucket string `default:"assessment-reports" env:"S3_ASSESSMENT_BUCKET"`
		BackgroundBucket string `default:"background-check-documents" env:"S3_BACKGROUND_BUCKET"`
	}
	YandexGPT struct {
		IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
	}
	Hiring struct {
		PublicBaseURL              string  `default:"http://localhost:8000" env:"HIRING_PUBLIC_BASE_URL"`
		VerificationTokenTTLDays   int     `default:"7" env:"HIRING_VERIFICATION_TOKEN_TTL_DAYS"`
		ApprovalTokenTTLDays       int     `default:"7" env:"HIRING_APPROVAL_TOKEN_TTL_DAYS"`
		RecommendationTokenTTLDays int     `default:"30" env:"HIRING_RECOMMENDATION_TOKEN_TTL_DAYS"`
		EmployerContributionPct    float64 `default:"15" env:"HIRING_EMPLOYER_CONTRIBUTION_PCT"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
