package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type Tables struct {
	Solicitations string
	Users         string
	Chats         string
	Messages      string
	Counters      string
	Payments      string
}

type RateLimit struct {
	Enabled     bool
	MaxRequests int64
	Window      time.Duration
}

type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Config is read once at startup.
type Config struct {
	Port      string
	GinMode   string
	Env       string
	LogLevel  string
	LogFormat string

	StoreDriver          string
	AWSRegion            string
	AWSAccessKeyID       string
	AWSSecretAccessKey   string
	DynamoDBEndpoint     string
	DynamoDBCreateTables bool
	Tables               Tables

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	APISecret         string
	TokenHourLifespan int
	BcryptCost        int

	RateLimit RateLimit

	SweepInitialDelay time.Duration
	SweepInterval     time.Duration

	UploadsDir   string
	MediaBaseURL string

	ViaCEPEndpoint string
	SMTP           SMTP
	PublicBaseURL  string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	CORSAllowedOrigins []string
}

// Load reads the environment. Invalid numbers fall back to their default with
// a warning.
func Load(logger logrus.FieldLogger) Config {
	l := loader{logger: logger.WithField("module", "config")}

	return Config{
		Port:      getenvDefault("PORT", "8080"),
		GinMode:   getenvDefault("GIN_MODE", "release"),
		Env:       getenvDefault("GO_ENV", "development"),
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "json"),

		StoreDriver:          strings.ToLower(getenvDefault("STORE_DRIVER", StoreDynamoDB)),
		AWSRegion:            getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:       getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey:   getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:     os.Getenv("DYNAMODB_ENDPOINT"),
		DynamoDBCreateTables: l.boolean("DYNAMODB_CREATE_TABLES", false),
		Tables: Tables{
			Solicitations: getenvDefault("SOLICITATIONS_TABLE", "solicitations"),
			Users:         getenvDefault("USERS_TABLE", "users"),
			Chats:         getenvDefault("CHATS_TABLE", "chats"),
			Messages:      getenvDefault("MESSAGES_TABLE", "messages"),
			Counters:      getenvDefault("COUNTERS_TABLE", "counters"),
			Payments:      getenvDefault("PAYMENTS_TABLE", "payments"),
		},

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       l.integer("REDIS_DB", 0),

		APISecret:         getenvDefault("API_SECRET", "coletaverde-secret"),
		TokenHourLifespan: l.integer("TOKEN_HOUR_LIFESPAN", 24),
		BcryptCost:        l.integer("BCRYPT_COST", 10),

		RateLimit: RateLimit{
			Enabled:     l.boolean("RATE_LIMIT_ENABLED", false),
			MaxRequests: int64(l.integer("RATE_LIMIT_MAX_REQUESTS", 50)),
			Window:      l.seconds("RATE_LIMIT_WINDOW_SECONDS", 60),
		},

		SweepInitialDelay: l.seconds("SWEEP_INITIAL_DELAY_SECONDS", 1),
		SweepInterval:     l.seconds("SWEEP_INTERVAL_SECONDS", 60),

		UploadsDir:   getenvDefault("UPLOADS_DIR", "./uploads"),
		MediaBaseURL: getenvDefault("MEDIA_BASE_URL", "/media"),

		ViaCEPEndpoint: getenvDefault("VIACEP_ENDPOINT", "https://viacep.com.br/ws"),
		SMTP: SMTP{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     l.integer("SMTP_PORT", 587),
			User:     os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASSWORD"),
		},
		PublicBaseURL: getenvDefault("PUBLIC_BASE_URL", "http://localhost:8080"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     isPaymentGatewayMockEnabled(),

		CORSAllowedOrigins: splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

type loader struct {
	logger logrus.FieldLogger
}

func (l loader) integer(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		l.logger.WithFields(logrus.Fields{"key": key, "value": v, "default": def}).Warn("invalid number, using default")
		return def
	}
	return n
}

func (l loader) seconds(key string, def int) time.Duration {
	return time.Duration(l.integer(key, def)) * time.Second
}

func (l loader) boolean(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		l.logger.WithFields(logrus.Fields{"key": key, "value": v, "default": def}).Warn("invalid boolean, using default")
		return def
	}
	return b
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
