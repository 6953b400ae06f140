package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Dev    bool   `envconfig:"DEV" default:"false"`
	DBPath string `envconfig:"DB_PATH" default:"data/kamer-notifier.db"`

	ListingsURL  string        `envconfig:"LISTINGS_URL" default:"https://www.klikvoorkamers.nl/en/offerings/now-for-rent/rooms/studios"`
	PortalURL    string        `envconfig:"PORTAL_URL" default:"https://www.klikvoorkamers.nl/portal"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"10m"`

	ChatIDs          []int64 `envconfig:"CHAT_IDS"`
	NotifyOnFirstRun bool    `envconfig:"NOTIFY_ON_FIRST_RUN" default:"false"`
	SeedPath         string  `envconfig:"SEED_PATH"`

	PortalUsername string `envconfig:"PORTAL_USERNAME"`
	PortalPassword string `envconfig:"PORTAL_PASSWORD"`

	CalendarID              string        `envconfig:"CALENDAR_ID"`
	CalendarCredentialsPath string        `envconfig:"CALENDAR_CREDENTIALS_PATH"`
	CalendarCleanupInterval time.Duration `envconfig:"CALENDAR_CLEANUP_INTERVAL" default:"6h"`

	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	TelegramToken string `envconfig:"TELEGRAM_TOKEN"`
}

func NewConfig(ctx context.Context) (*Config, error) {
	// optional .env for local runs, missing file is fine
	_ = godotenv.Load()

	res := &Config{}

	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if res.Dev {
		return res, nil
	}
	res.TelegramToken, err = getSSMToken(ctx)
	if err != nil {
		return nil, err
	}

	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}

	return res, nil
}

// CalendarEnabled reports whether calendar publishing is fully configured.
func (c *Config) CalendarEnabled() bool {
	return c.CalendarID != "" && c.CalendarCredentialsPath != ""
}

// PortalCredentialsSet reports whether auto-apply can be attempted.
func (c *Config) PortalCredentialsSet() bool {
	return c.PortalUsername != "" && c.PortalPassword != ""
}

func getSSMToken(ctx context.Context) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String("/kamer-notifier-bot/prod/telegram-token"),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *param.Parameter.Value, nil
}
