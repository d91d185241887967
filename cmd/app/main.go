package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laundry/cmd"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/rabbitmq"
	"laundry/internal/adapters/out/redis"
	"laundry/internal/core/ports"

	"github.com/go-faster/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger := zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(os.Stdout),
		level,
	))
	defer func() { _ = logger.Sync() }()

	configs, err := cmd.LoadConfig()
	if err != nil {
		logger.Fatal("configuration is invalid", zap.Error(err))
	}
	if err := level.UnmarshalText([]byte(configs.LogLevel)); err != nil {
		logger.Warn("unknown log level, keeping info", zap.String("level", configs.LogLevel))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		logger.Fatal("laundry service stopped", zap.Error(err))
	}
	logger.Info("laundry service stopped")
}

func run(ctx context.Context, configs cmd.Config, logger *zap.Logger) error {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DB.DSN()), &gorm.Config{})
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "database handle")
	}
	defer sqlDB.Close()

	if err := postgres.Migrate(ctx, gormDB); err != nil {
		return err
	}

	var publisher ports.EventPublisher
	if configs.AMQP.URL != "" {
		amqpPublisher, err := rabbitmq.NewPublisher(configs.AMQP.URL, configs.AMQP.Exchange)
		if err != nil {
			return err
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	} else {
		logger.Warn("AMQP URL is not set, order events are not published")
	}

	var counter ports.UnreadCounter
	if configs.Redis.Addr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:         configs.Redis.Addr,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("redis is unreachable, unread counts fall back to the database", zap.Error(err))
		}
		counter = redis.NewUnreadCounter(client, configs.Redis.UnreadTTL)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, counter, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.WARN)
	app.CreateHTTPServer().Register(e)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", zap.String("port", configs.HTTPPort))
		if err := e.Start("0.0.0.0:" + configs.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server", zap.Duration("timeout", shutdownTimeout))
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
