package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"forum-admin/internal/cli"
	"forum-admin/internal/config"
	"forum-admin/internal/handler"
	"forum-admin/internal/observability"
	"forum-admin/internal/pkg"
	"forum-admin/internal/repository/mysql"
	"forum-admin/internal/repository/redis"
	"forum-admin/internal/service"
)

func main() {
	os.Exit(run())
}

// run executes exactly one operation end-to-end and returns the process
// exit code: 0 for success or a graceful no-op, 1 for connection failure
// or any unhandled error.
func run() int {
	ui := cli.New(os.Stdin, os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	log, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	db, err := mysql.NewDB(cfg.MySQLDSN)
	if err != nil {
		ui.Error(fmt.Sprintf("Could not connect to the record store: %v", err))
		return 1
	}
	if err := mysql.AutoMigrate(db); err != nil {
		ui.Error(fmt.Sprintf("Could not migrate the record store: %v", err))
		return 1
	}

	svc := service.NewModeratorService(
		&mysql.UserRepository{DB: db},
		&mysql.CommunityRepository{DB: db},
		&mysql.CommunityMemberRepository{DB: db},
		pkg.NewHasher(cfg.BcryptCost),
	)

	// optional collaborators; their absence only disables side effects
	var cache *redis.CommunityCacheRepository
	if cfg.Redis.Enabled() {
		client, err := redis.New(cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, cache invalidation disabled", zap.Error(err))
		} else {
			defer func() { _ = client.Close() }()
			cache = &redis.CommunityCacheRepository{RDB: client}
		}
	}
	var producer *pkg.KafkaProducer
	if cfg.Kafka.Enabled() {
		if producer, err = pkg.NewKafkaProducer(cfg.Kafka); err != nil {
			log.Warn("kafka unavailable, events disabled", zap.Error(err))
			producer = nil
		} else {
			defer func() { _ = producer.Close() }()
		}
	}

	choice, err := ui.Ask(cli.OptionList("What would you like to do?", []string{
		"Create a new moderator",
		"Add an existing moderator to a community",
	}))
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	switch choice {
	case "1":
		h := &handler.CreateModeratorHandler{UI: ui, Svc: svc, SMTP: cfg.SMTP, Log: log}
		err = h.Run()
	case "2":
		h := &handler.AssignModeratorHandler{UI: ui, Svc: svc, Cache: cache, Producer: producer, Log: log}
		err = h.Run(context.Background())
	default:
		ui.Warn("Invalid choice.")
		return 0
	}

	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
