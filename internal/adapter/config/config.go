package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	App      *App
	Database *Database
	HTTP     *HTTP
	Upstream *Upstream
	SMS      *SMS
	Sync     *Sync
	Push     *Push
	Kafka    *Kafka
	Redis    *Redis
	Tracing  *Tracing
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	Name     string `env:"APP_NAME" envDefault:"sharpdata"`
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Upstream struct {
	BaseURL       string        `env:"UPSTREAM_BASE_URL" envDefault:"https://opendatagh.com/api/v1"`
	APIKey        string        `env:"UPSTREAM_API_KEY"`
	PushTimeout   time.Duration `env:"UPSTREAM_PUSH_TIMEOUT" envDefault:"30s"`
	StatusTimeout time.Duration `env:"UPSTREAM_STATUS_TIMEOUT" envDefault:"20s"`
	RPS           float64       `env:"UPSTREAM_RPS" envDefault:"0"`
}

type SMS struct {
	BaseURL  string        `env:"SMS_BASE_URL" envDefault:"https://api.moolre.com"`
	APIKey   string        `env:"SMS_API_KEY"`
	SenderID string        `env:"SMS_SENDER_ID" envDefault:"Sharpdata"`
	Timeout  time.Duration `env:"SMS_TIMEOUT" envDefault:"15s"`
}

type Sync struct {
	Interval time.Duration `env:"SYNC_INTERVAL" envDefault:"1m"`
	LeaseTTL time.Duration `env:"SYNC_LEASE_TTL" envDefault:"5m"`
}

type Push struct {
	Workers   int `env:"PUSH_WORKERS" envDefault:"1"`
	QueueSize int `env:"PUSH_QUEUE_SIZE" envDefault:"100"`
}

type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"order_events"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Tracing struct {
	JaegerEndpoint string `env:"JAEGER_ENDPOINT"`
}

func NewConfig() (*Config, error) {
	return parse(os.Args[1:])
}

func parse(args []string) (*Config, error) {
	var db Database
	var http HTTP
	var app App

	fs := flag.NewFlagSet("sharpdata", flag.ContinueOnError)
	fs.StringVar(&db.DSN, "d", "", "Database string")
	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.StringVar(&app.LogLevel, "l", `error`, "Log level")
	fs.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var (
		upstream Upstream
		sms      SMS
		sync     Sync
		push     Push
		kafka    Kafka
		redis    Redis
		tracing  Tracing
	)

	sections := []struct {
		name string
		dst  any
	}{
		{"database", &db},
		{"http", &http},
		{"app", &app},
		{"upstream", &upstream},
		{"sms", &sms},
		{"sync", &sync},
		{"push", &push},
		{"kafka", &kafka},
		{"redis", &redis},
		{"tracing", &tracing},
	}
	for _, s := range sections {
		if err := env.Parse(s.dst); err != nil {
			return nil, fmt.Errorf("error parsing env %s config: %w", s.name, err)
		}
	}

	if app.Mode != AppModeDevelop && app.Mode != AppModeProduction {
		return nil, fmt.Errorf("unknown app mode %q", app.Mode)
	}
	if push.Workers < 1 {
		push.Workers = 1
	}

	config := Config{
		App:      &app,
		Database: &db,
		HTTP:     &http,
		Upstream: &upstream,
		SMS:      &sms,
		Sync:     &sync,
		Push:     &push,
		Kafka:    &kafka,
		Redis:    &redis,
		Tracing:  &tracing,
	}

	return &config, nil
}
