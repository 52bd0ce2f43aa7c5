package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tc "github.com/Roma7-7-7/telegram"
	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/room-notifier/internal/config"
	"github.com/Roma7-7-7/room-notifier/internal/dal"
	"github.com/Roma7-7-7/room-notifier/internal/dal/migrations"
	"github.com/Roma7-7-7/room-notifier/internal/rooms"
	"github.com/Roma7-7-7/room-notifier/internal/service"
	"github.com/Roma7-7-7/room-notifier/internal/telegram"
	"github.com/Roma7-7-7/room-notifier/pkg/clock"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx))
}

func run(ctx context.Context) int {
	conf, err := config.NewConfig(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return 1
	}

	log := mustLogger(conf.Dev)

	db, err := bbolt.Open(conf.DBPath, 0600, &bbolt.Options{Timeout: time.Second}) //nolint:mnd // it's ok
	if err != nil {
		log.Error("Failed to open database", "path", conf.DBPath, "error", err)
		return 1
	}
	defer db.Close()

	if err = migrations.RunMigrations(db, log); err != nil {
		log.Error("Failed to run migrations", "error", err)
		return 1
	}

	store, err := dal.NewBoltDB(db)
	if err != nil {
		log.Error("Failed to create store", "error", err)
		return 1
	}

	httpClient := &http.Client{Timeout: conf.RequestTimeout}
	clk := clock.New()

	fetcher := rooms.NewFetcher(
		rooms.NewProbe(httpClient, conf.RoomInfoURL, log),
		uint(conf.FetchAttempts), //nolint:gosec // validated to be positive
		conf.FetchRetryDelay,
		log,
	)
	snapshots := rooms.NewSnapshots(httpClient, conf.SnapshotURL, log)

	bot, err := telegram.NewBot(conf.TelegramToken, conf.AllowedChatIDs, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		return 1
	}
	sender := telegram.NewSender(tc.NewClient(http.DefaultClient, conf.TelegramToken), bot, log)

	subscriptionsSvc := service.NewSubscriptions(store, fetcher, conf.UserLimit, conf.RoomCheckTimeout, log)
	streamsSvc := service.NewStreams(fetcher, snapshots, log)
	adminSvc := service.NewAdmin(store, sender, conf.AdminPassword, log)

	handler := telegram.NewHandler(subscriptionsSvc, streamsSvc, adminSvc, clk, conf.WatchURL, log)
	purge := telegram.NewPurgeOnBlockedMiddleware(subscriptionsSvc, log)

	watcher := service.NewWatcher(
		store,
		service.NewPoller(fetcher, clk, conf.Workers, conf.WorkerStagger, log),
		service.NewReconciler(store, snapshots, sender, conf.WatchURL, log),
		clk,
		conf.IdleDelay,
		log,
	)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		watcher.Run(ctx)
	}()

	log.Info("Starting bot")
	err = bot.Start(ctx, handler, purge)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Failed to start bot", "error", err)
	}

	wg.Wait()
	log.Info("Stopped bot")
	return 0
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
