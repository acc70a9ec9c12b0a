package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/habrdigest/habrdigest/pkg/config"
	"github.com/habrdigest/habrdigest/pkg/digest"
	"github.com/habrdigest/habrdigest/pkg/llm"
	"github.com/habrdigest/habrdigest/pkg/repository"
	"github.com/habrdigest/habrdigest/pkg/scheduler"
	"github.com/habrdigest/habrdigest/pkg/scraper"
	"github.com/habrdigest/habrdigest/pkg/service"
	"github.com/habrdigest/habrdigest/pkg/telegram"
	"github.com/habrdigest/habrdigest/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.Telegram.Token, cfg.LLM.APIKey)

	lgr.Printf("[INFO] starting habrdigest version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, debug bool) error {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if closeErr := repos.Close(); closeErr != nil {
			lgr.Printf("[WARN] failed to close database: %v", closeErr)
		}
	}()

	svc := service.NewDigestService(repos, cfg.GetDigestConfig())
	if err := svc.SeedDefaultTopics(ctx); err != nil {
		return fmt.Errorf("failed to seed topics: %w", err)
	}

	summarizer := llm.NewSummarizer(cfg.GetLLMConfig())
	messenger := telegram.NewMessenger(cfg.GetTelegramConfig())
	habrScraper := scraper.New(cfg.GetScraperConfig())

	digester := digest.NewDigester(svc, summarizer, messenger, digest.Params{
		ArticlesPerDigest: cfg.Digest.ArticlesPerDigest,
	})

	sched := scheduler.NewScheduler(svc, habrScraper, digester, summarizer, scheduler.Config{
		DigestInterval:    cfg.Schedule.DigestInterval,
		IngestInterval:    cfg.Schedule.IngestInterval,
		SummarizeInterval: cfg.Schedule.SummarizeInterval,
		CleanupInterval:   cfg.Schedule.CleanupInterval,
		MaxWorkers:        cfg.Schedule.MaxWorkers,
		ArticleRetention:  time.Duration(cfg.Schedule.ArticleRetentionDays) * 24 * time.Hour,
		RunRetention:      time.Duration(cfg.Schedule.RunRetentionDays) * 24 * time.Hour,
		SummarizeBatch:    cfg.Schedule.SummarizeBatch,
		ExtractContent:    cfg.Scraper.ExtractContent,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, svc, sched, digester, revision, debug)
	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = append(logOpts, lgr.Debug)
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
