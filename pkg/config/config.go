package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Mail      MailConfig
	Alerts    AlertConfig
	Telegram  TelegramConfig
	Bootstrap BootstrapConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env            string // development, staging, production
	Name           string
	LogLevel       string
	MetricsEnabled bool
}

// DBConfig configuración del almacenamiento.
// Driver "memory" arranca sin PostgreSQL (desarrollo local).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	Driver      string // postgres | memory
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MailConfig servidor SMTP usado para los avisos de inventario.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled indica si hay un servidor SMTP configurado.
func (c MailConfig) Enabled() bool { return c.Host != "" }

// AlertConfig tamaño del pool de envío de avisos.
type AlertConfig struct {
	Workers     int
	QueueSize   int
	SendTimeout time.Duration
}

// TelegramConfig canal opcional de avisos por Telegram.
type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

// Enabled indica si el canal Telegram está configurado.
func (c TelegramConfig) Enabled() bool { return c.BotToken != "" && c.ChatID != 0 }

// BootstrapConfig valores usados al sembrar una base vacía.
type BootstrapConfig struct {
	AdminPassword   string
	LimitedPassword string
	AlertEmail      string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, DB_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:            getString(v, "APP_ENV", "development"),
			Name:           getString(v, "APP_NAME", "g-inventory"),
			LogLevel:       getString(v, "LOG_LEVEL", "info"),
			MetricsEnabled: getBool(v, "METRICS_ENABLED", true),
		},
		DB: DBConfig{
			Driver:      getString(v, "STORE_DRIVER", "postgres"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "g_inventory"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "g-inventory"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Mail: MailConfig{
			Host:     getString(v, "SMTP_HOST", ""),
			Port:     getInt(v, "SMTP_PORT", 587),
			Username: getString(v, "SMTP_USERNAME", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "SMTP_FROM", "no-reply@g-inventory.local"),
		},
		Alerts: AlertConfig{
			Workers:     getInt(v, "ALERT_WORKERS", 3),
			QueueSize:   getInt(v, "ALERT_QUEUE_SIZE", 600),
			SendTimeout: time.Duration(getInt(v, "ALERT_SEND_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Telegram: TelegramConfig{
			BotToken: getString(v, "TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getInt64(v, "TELEGRAM_CHAT_ID", 0),
		},
		Bootstrap: BootstrapConfig{
			AdminPassword:   getString(v, "BOOTSTRAP_ADMIN_PASSWORD", "1234"),
			LimitedPassword: getString(v, "BOOTSTRAP_LIMITED_PASSWORD", "4321"),
			AlertEmail:      getString(v, "BOOTSTRAP_ALERT_EMAIL", "admin@mail.com"),
		},
	}

	if cfg.Alerts.Workers < 1 {
		return nil, fmt.Errorf("config: ALERT_WORKERS debe ser mayor que cero")
	}
	if cfg.Alerts.QueueSize < 1 {
		return nil, fmt.Errorf("config: ALERT_QUEUE_SIZE debe ser mayor que cero")
	}
	switch cfg.DB.Driver {
	case "postgres", "memory":
	default:
		return nil, fmt.Errorf("config: STORE_DRIVER desconocido %q", cfg.DB.Driver)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getInt64(v *viper.Viper, key string, def int64) int64 {
	if v.IsSet(key) {
		n, err := strconv.ParseInt(strings.TrimSpace(v.GetString(key)), 10, 64)
		if err != nil {
			return def
		}
		return n
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
