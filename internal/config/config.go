package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
	Catalog      Catalog      `mapstructure:",squash"`
	Storage      Storage      `mapstructure:",squash"`
	ImageJanitor ImageJanitor `mapstructure:",squash"`
	Metrics      Metrics      `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Auth struct {
	SecretKey    string        `mapstructure:"secret_key"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
	CookieName   string        `mapstructure:"auth_cookie_name"`
	CookieSecure bool          `mapstructure:"auth_cookie_secure"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Catalog struct {
	CastListLimit int `mapstructure:"catalog_cast_list_limit"`
}

// Storage configura o bucket S3 das imagens das casts
type Storage struct {
	Region          string        `mapstructure:"aws_region"`
	Bucket          string        `mapstructure:"aws_s3_bucket_name"`
	AccessKeyID     string        `mapstructure:"aws_access_key_id"`
	SecretAccessKey string        `mapstructure:"aws_secret_access_key"`
	Endpoint        string        `mapstructure:"aws_s3_endpoint"`
	PublicBaseURL   string        `mapstructure:"storage_public_base_url"`
	PresignTTL      time.Duration `mapstructure:"storage_presign_ttl"`
	MaxUploadBytes  int64         `mapstructure:"storage_max_upload_bytes"`
}

type ImageJanitor struct {
	CronSchedule string        `mapstructure:"image_janitor_cron"`
	Enabled      bool          `mapstructure:"image_janitor_enabled"`
	GracePeriod  time.Duration `mapstructure:"image_janitor_grace_period"`
}

type Metrics struct {
	Enabled bool   `mapstructure:"metrics_enabled"`
	Path    string `mapstructure:"metrics_path"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/castnavi?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_COOKIE_NAME", "castnavi_session")
	viper.SetDefault("AUTH_COOKIE_SECURE", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("CATALOG_CAST_LIST_LIMIT", 10)

	viper.SetDefault("AWS_REGION", "ap-northeast-1")
	viper.SetDefault("AWS_S3_BUCKET_NAME", "")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("AWS_S3_ENDPOINT", "")
	viper.SetDefault("STORAGE_PUBLIC_BASE_URL", "")
	viper.SetDefault("STORAGE_PRESIGN_TTL", "0s")       // 0 = usar a URL pública gravada
	viper.SetDefault("STORAGE_MAX_UPLOAD_BYTES", 5<<20) // 5MB

	viper.SetDefault("IMAGE_JANITOR_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("IMAGE_JANITOR_ENABLED", false)
	viper.SetDefault("IMAGE_JANITOR_GRACE_PERIOD", "24h")

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_PATH", "/metrics")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if config.Storage.PublicBaseURL == "" && config.Storage.Bucket != "" {
		config.Storage.PublicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", config.Storage.Bucket, config.Storage.Region)
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
