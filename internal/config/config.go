package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	Import            Import            `mapstructure:",squash"`
	PlatformFunctions PlatformFunctions `mapstructure:",squash"`
	OverdueSweep      OverdueSweep      `mapstructure:",squash"`
	PlatformSync      PlatformSync      `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Import struct {
	MaxUploadMB int `mapstructure:"import_max_upload_mb"`
	SampleRows  int `mapstructure:"import_sample_rows"`
}

type PlatformFunctions struct {
	URL     string        `mapstructure:"platform_functions_url"`
	Token   string        `mapstructure:"platform_functions_token"`
	Timeout time.Duration `mapstructure:"platform_functions_timeout"`
}

type OverdueSweep struct {
	CronSchedule string `mapstructure:"overdue_sweep_cron"`
	Enabled      bool   `mapstructure:"overdue_sweep_enabled"`
}

type PlatformSync struct {
	CronSchedule string   `mapstructure:"platform_sync_cron"`
	Enabled      bool     `mapstructure:"platform_sync_enabled"`
	Platforms    []string `mapstructure:"platform_sync_platforms"`
	LookbackDays int      `mapstructure:"platform_sync_lookback_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_jwt_secret")

	viper.SetDefault("IMPORT_MAX_UPLOAD_MB", 10)
	viper.SetDefault("IMPORT_SAMPLE_ROWS", 5)

	viper.SetDefault("PLATFORM_FUNCTIONS_URL", "http://localhost:54321/functions/v1")
	viper.SetDefault("PLATFORM_FUNCTIONS_TOKEN", "")
	viper.SetDefault("PLATFORM_FUNCTIONS_TIMEOUT", "30s")

	viper.SetDefault("OVERDUE_SWEEP_CRON", "0 1 * * *") // Todos os dias à 1h da manhã
	viper.SetDefault("OVERDUE_SWEEP_ENABLED", false)

	viper.SetDefault("PLATFORM_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("PLATFORM_SYNC_ENABLED", false)
	viper.SetDefault("PLATFORM_SYNC_PLATFORMS", "hotmart,asaas")
	viper.SetDefault("PLATFORM_SYNC_LOOKBACK_DAYS", 3)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
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

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	dsn, err := BuildDSN(config.Database)
	if err != nil {
		return nil, err
	}
	config.Database.DSN = dsn

	return config, nil
}

// BuildDSN monta a string de conexão de acordo com o driver configurado
func BuildDSN(db Database) (string, error) {
	switch strings.ToLower(db.Driver) {
	case DriverPostgres:
		return fmt.Sprintf("%s://%s:%s@%s", DriverPostgres, db.User, db.Password, db.URL), nil
	case DriverSQLite:
		// Para sqlite a URL é o caminho do arquivo (ou :memory:)
		return db.URL, nil
	default:
		return "", fmt.Errorf("driver de banco de dados não suportado: %s", db.Driver)
	}
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
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
