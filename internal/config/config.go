package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Mailer         Mailer         `mapstructure:",squash"`
	Geocoder       Geocoder       `mapstructure:",squash"`
	AgendaReminder AgendaReminder `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
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
	LogLevel  string `mapstructure:"log_level"`
	PortalURL string `mapstructure:"portal_url"`
}

// Mailer configura o cliente da API transacional de e-mail
type Mailer struct {
	URL     string `mapstructure:"mailer_url"`
	APIKey  string `mapstructure:"mailer_api_key"`
	Sender  string `mapstructure:"mailer_sender"`
	Enabled bool   `mapstructure:"mailer_enabled"`
}

// Geocoder configura o cliente de geocodificação e seu cache local
type Geocoder struct {
	URL              string `mapstructure:"geocoder_url"`
	UserAgent        string `mapstructure:"geocoder_user_agent"`
	CacheTTLMinutes  int    `mapstructure:"geocoder_cache_ttl_minutes"`
	MinIntervalMilli int    `mapstructure:"geocoder_min_interval_ms"`
}

type AgendaReminder struct {
	CronSchedule   string `mapstructure:"agenda_reminder_cron"`
	LookaheadHours int    `mapstructure:"agenda_reminder_lookahead_hours"`
	Enabled        bool   `mapstructure:"agenda_reminder_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/obras")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("PORTAL_URL", "http://localhost:3000/portal")

	viper.SetDefault("MAILER_URL", "https://api.mailchannel.example/v1")
	viper.SetDefault("MAILER_API_KEY", "")
	viper.SetDefault("MAILER_SENDER", "no-reply@obrativa.com.br")
	viper.SetDefault("MAILER_ENABLED", false)

	viper.SetDefault("GEOCODER_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODER_USER_AGENT", "obras-manager-api/1.0")
	viper.SetDefault("GEOCODER_CACHE_TTL_MINUTES", 1440) // 24h de cache local
	viper.SetDefault("GEOCODER_MIN_INTERVAL_MS", 1100)   // limite de 1 req/s do provedor

	viper.SetDefault("AGENDA_REMINDER_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("AGENDA_REMINDER_LOOKAHEAD_HOURS", 24)
	viper.SetDefault("AGENDA_REMINDER_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
