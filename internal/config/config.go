package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Dev    bool   `envconfig:"DEV" default:"false"`
	DBPath string `envconfig:"DB_PATH" default:"data/room-notifier.db"`

	Workers         int           `envconfig:"WORKERS" default:"10"`
	WorkerStagger   time.Duration `envconfig:"WORKER_STAGGER" default:"300ms"`
	FetchAttempts   int           `envconfig:"FETCH_ATTEMPTS" default:"5"`
	FetchRetryDelay time.Duration `envconfig:"FETCH_RETRY_DELAY" default:"1s"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	IdleDelay       time.Duration `envconfig:"IDLE_DELAY" default:"1s"`

	// RoomCheckTimeout bounds the check of a single room added with /add, retries included
	RoomCheckTimeout time.Duration `envconfig:"ROOM_CHECK_TIMEOUT" default:"1m"`

	RoomInfoURL string `envconfig:"ROOM_INFO_URL" default:"https://en.chaturbate.com/api/chatvideocontext/%s/"`
	SnapshotURL string `envconfig:"SNAPSHOT_URL" default:"https://roomimg.stream.highwebmedia.com/ri/%s.jpg"`
	WatchURL    string `envconfig:"WATCH_URL" default:"https://chaturbate.com/%s"`

	// UserLimit is the maximum number of rooms a chat can follow, 0 means unlimited
	UserLimit      int     `envconfig:"USER_LIMIT" default:"0"`
	AllowedChatIDs []int64 `envconfig:"ALLOWED_CHAT_IDS"`
	// AdminPassword enables /authorize_admin, empty disables it
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	TelegramToken      string `envconfig:"TELEGRAM_TOKEN"`
	TelegramTokenParam string `envconfig:"TELEGRAM_TOKEN_PARAM" default:"/room-notifier-bot/prod/telegram-token"`
}

func NewConfig(ctx context.Context) (*Config, error) {
	res := &Config{}

	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if err = res.validate(); err != nil {
		return nil, err
	}

	// dev runs take the token from the environment only
	if res.TelegramToken == "" && !res.Dev {
		res.TelegramToken, err = getSSMToken(ctx, res.TelegramTokenParam)
		if err != nil {
			return nil, err
		}
	}

	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}

	return res, nil
}

func (c *Config) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.FetchAttempts < 1 {
		return fmt.Errorf("fetch attempts must be positive, got %d", c.FetchAttempts)
	}
	if c.WorkerStagger < 0 || c.FetchRetryDelay < 0 || c.IdleDelay < 0 || c.RoomCheckTimeout < 0 {
		return errors.New("delays must not be negative")
	}
	if c.UserLimit < 0 {
		return fmt.Errorf("user limit must not be negative, got %d", c.UserLimit)
	}
	return nil
}

func getSSMToken(ctx context.Context, name string) (string, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *param.Parameter.Value, nil
}
