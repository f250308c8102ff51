package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env string

	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         uint
	DBNameProducao string
	DBNameTeste    string
	DBSSLDisable   bool
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnLifetime time.Duration
	DBAutoMigrate  bool

	Port              string
	LogLevel          string
	LogDev            bool
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
	TrustProxyHeaders  bool

	JWTSecret string
	JWTIssuer string

	RabbitURI   string
	RabbitQueue string
	WebhookURL  string
}

// Load lê o .env (se existir) e monta a configuração a partir do ambiente.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env: getenv("ENV", "producao"),

		DBUser:         getenv("DB_USER", "postgres"),
		DBPassword:     getenv("DB_PASSWORD", "postgres"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBPort:         uint(parseInt("DB_PORT", 5432)),
		DBNameProducao: getenv("DB_NAME_PRODUCAO", "dbdcifre"),
		DBNameTeste:    getenv("DB_NAME_TESTE", "banco_teste"),
		DBSSLDisable:   parseBool("DB_SSL_MODE_DISABLE", true),
		DBMaxOpenConns: parseInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: parseInt("DB_MAX_IDLE_CONNS", 5),
		DBConnLifetime: parseDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		DBAutoMigrate:  parseBool("DB_AUTO_MIGRATE", true),

		Port:              getenvAny("8080", "PORT", "API_PORT"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LogDev:            parseBool("LOG_DEV", false),
		ReadHeaderTimeout: parseDuration("READ_HEADER_TIMEOUT", 5*time.Second),
		ShutdownTimeout:   parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		CORSAllowedOrigins: parseList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitRPS:       parseFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:     parseInt("RATE_LIMIT_BURST", 20),
		TrustProxyHeaders:  parseBool("TRUST_PROXY_HEADERS", false),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTIssuer: os.Getenv("JWT_ISSUER"),

		RabbitURI:   os.Getenv("RABBITMQ_URL"),
		RabbitQueue: getenv("RABBITMQ_QUEUE", "empresas_eventos"),
		WebhookURL:  os.Getenv("WEBHOOK_URL"),
	}
}

// DBName escolhe o banco de teste quando ENV=test.
func (c *Config) DBName() string {
	if c.Env == "test" {
		return c.DBNameTeste
	}
	return c.DBNameProducao
}

func (c *Config) DSN() string {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName(), c.DBPort)
	if c.DBSSLDisable {
		dsn += " sslmode=disable"
	}
	return dsn
}

func (c *Config) AuthEnabled() bool { return c.JWTSecret != "" }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvAny(def string, keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func parseDuration(env string, def time.Duration) time.Duration {
	if v := os.Getenv(env); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseInt(env string, def int) int {
	if v := os.Getenv(env); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func parseFloat(env string, def float64) float64 {
	if v := os.Getenv(env); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func parseBool(env string, def bool) bool {
	if v := os.Getenv(env); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func parseList(env string, def []string) []string {
	v := os.Getenv(env)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
