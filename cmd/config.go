package cmd

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

// Config is loaded from LAUNDRY_-prefixed environment variables, flags, an
// optional .env file and an optional config.yaml.
type Config struct {
	HTTPPort      string `default:"8080" usage:"HTTP listen port" flag:"http-port"`
	LogLevel      string `default:"info" usage:"Log level: debug, info, warn, error"`
	JWTSecret     string `usage:"HS256 secret shared with the auth service" flag:"jwt-secret"`
	DB            DBConfig
	AMQP          AMQPConfig
	Redis         RedisConfig
	Orders        OrdersConfig
	Cart          CartConfig
	Notifications NotificationsConfig
}

type DBConfig struct {
	Host     string `default:"localhost"`
	Port     string `default:"5432"`
	User     string `default:"postgres"`
	Password string
	Name     string `default:"laundry"`
	SslMode  string `default:"disable"`
}

// DSN renders the key/value connection string understood by pgx.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

type AMQPConfig struct {
	URL      string `usage:"RabbitMQ URL; events are not published when empty"`
	Exchange string `default:"laundry.orders"`
}

type RedisConfig struct {
	Addr      string        `usage:"Redis address; unread counts are not cached when empty"`
	UnreadTTL time.Duration `default:"10m"`
}

type OrdersConfig struct {
	NumberAttempts    int `default:"3" usage:"Order number candidates tried before giving up"`
	EstimatedDoneDays int `default:"3" usage:"Days until a new order is estimated done"`
}

type CartConfig struct {
	SaveAttempts int `default:"3" usage:"Compare-and-swap attempts per cart mutation"`
}

type NotificationsConfig struct {
	Retention     time.Duration `default:"720h" usage:"Age after which read notifications are purged"`
	PurgeSchedule string        `default:"0 0 3 * * *" usage:"Cron schedule (with seconds) of the purge job"`
}

// LoadConfig reads .env when present, then the environment and config files.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load .env")
	}
	return loadConfig([]string{"config.yaml", "/etc/laundry/config.yaml"}, false)
}

func loadConfig(files []string, skipFlags bool) (Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "LAUNDRY",
		SkipFlags: skipFlags,
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return Config{}, errors.Wrap(err, "load config")
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("jwt secret is required: set LAUNDRY_JWT_SECRET")
	}
	if c.Notifications.Retention <= 0 {
		return errors.New("notification retention must be positive")
	}
	return nil
}

// Turnaround is the estimated time from order creation to completion.
func (c OrdersConfig) Turnaround() time.Duration {
	return time.Duration(c.EstimatedDoneDays) * 24 * time.Hour
}
