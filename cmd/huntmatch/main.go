package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"github.com/umputun/huntmatch/pkg/blocklist"
	"github.com/umputun/huntmatch/pkg/config"
	"github.com/umputun/huntmatch/pkg/ingest"
	"github.com/umputun/huntmatch/pkg/matcher"
	"github.com/umputun/huntmatch/pkg/notify"
	"github.com/umputun/huntmatch/pkg/queue"
	"github.com/umputun/huntmatch/pkg/repository"
	"github.com/umputun/huntmatch/pkg/suggest"
	"github.com/umputun/huntmatch/pkg/worker"
	"github.com/umputun/huntmatch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"huntmatch.yml" description:"configuration file"`
	Mode   string `short:"m" long:"mode" env:"MODE" choice:"server" choice:"worker" choice:"all" default:"all" description:"run http server, queue workers or both"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)
	log.Printf("[INFO] starting huntmatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLog(opts.Debug, secrets(cfg)...)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		QueryTimeout:    cfg.Database.QueryTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	rdb, err := connectRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Printf("[WARN] failed to close redis: %v", err)
		}
	}()

	q := queue.New(rdb, queue.Config{
		Prefix:       cfg.Queue.Prefix,
		MaxAttempts:  cfg.Queue.MaxAttempts,
		BlockTimeout: cfg.Queue.BlockTimeout,
		CallTimeout:  cfg.Redis.Timeout,
	})
	blocks := blocklist.NewService(blocklist.NewRedisStore(rdb))
	ingester := ingest.NewService(repos.Post, repos.Knowledge, q)

	mode := opts.Mode
	if mode == "" {
		mode = "all"
	}

	var pools []*worker.Pool
	if mode == "worker" || mode == "all" {
		deliverer, err := makeDeliverer(cfg.Delivery)
		if err != nil {
			return err
		}
		pools = []*worker.Pool{
			worker.New(q, notify.NewWorker(blocks, deliverer, repos.Notification), worker.Config{
				Queue:         queue.NotifyQueue,
				Concurrency:   cfg.Workers.NotifyConcurrency,
				HandleTimeout: cfg.Workers.HandleTimeout,
			}),
			worker.New(q, ingester, worker.Config{
				Queue:         queue.IngestQueue,
				Concurrency:   cfg.Workers.IngestConcurrency,
				HandleTimeout: cfg.Workers.HandleTimeout,
			}),
		}
		for _, p := range pools {
			if err := p.Start(ctx); err != nil {
				stopPools(pools)
				return fmt.Errorf("failed to start workers: %w", err)
			}
		}
		defer stopPools(pools)
	}

	if mode == "worker" {
		log.Printf("[INFO] running workers only")
		<-ctx.Done()
		return nil
	}

	srv := server.New(cfg, server.Deps{
		Matcher:       matcher.NewService(repos.Post, repos.Hunter, cfg.Matching.Limit),
		Dispatcher:    notify.NewDispatcher(q, cfg.Matching.EnqueueTimeout),
		Ingester:      ingester,
		Suggester:     suggest.NewService(repos.Post, repos.Knowledge, cfg.Suggest.Limit),
		Blocklist:     blocks,
		Notifications: repos.Notification,
		Status:        &statusReporter{repos: repos, queue: q, pools: pools},
	}, revision, opts.Debug)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// connectRedis makes redis client and checks it is reachable
func connectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	ropts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	ropts.DialTimeout = cfg.Timeout
	ropts.WriteTimeout = cfg.Timeout
	rdb := redis.NewClient(ropts)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis %s: %w", ropts.Addr, err)
	}
	return rdb, nil
}

func makeDeliverer(cfg config.DeliveryConfig) (notify.Deliverer, error) {
	if cfg.WebhookURL == "" {
		log.Printf("[INFO] no webhook configured, notices go to the log")
		return notify.LogDeliverer{}, nil
	}
	wd, err := notify.NewWebhookDeliverer(cfg.WebhookURL, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to make webhook deliverer: %w", err)
	}
	return wd, nil
}

func stopPools(pools []*worker.Pool) {
	for _, p := range pools {
		p.Stop()
	}
}

// secrets returns passwords embedded in store urls, masked in logs
func secrets(cfg *config.Config) []string {
	var res []string
	for _, raw := range []string{cfg.Database.DSN, cfg.Redis.URL} {
		u, err := url.Parse(raw)
		if err != nil || u.User == nil {
			continue
		}
		if pass, ok := u.User.Password(); ok && pass != "" {
			res = append(res, pass)
		}
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
