package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/client"
	"github.com/supchaser/quiz_client/internal/config"
	"github.com/supchaser/quiz_client/internal/identity"
	"github.com/supchaser/quiz_client/internal/notify"
	"github.com/supchaser/quiz_client/internal/poller"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
)

const usage = `usage: quizctl [-env FILE] <command> [flags]

commands:
  areas                                   list knowledge areas
  topics      -area ID                    list the topics of an area
  questions   -area ID [-topic ID] [-q S] list questions, optionally filtered
  topic       -area ID -name NAME         create a topic
  question    -id ID                      show one question
  save        -file Q.json [-id ID]       create a question, or replace question ID
  upload      -file BATCH.json            upload a question batch
  courses     -institution ID             list courses and teachers
  course      -institution ID -name NAME  create a course
  enable      -institution ID -course ID [-enabled=false]
  answer      -quiz ID -question ID -option ID
  result      -quiz ID -correct N -total N
  results                                 list the signed-in user's results
`

// deps is everything a command needs, built once from the configuration.
type deps struct {
	cfg      *config.Config
	api      *client.Client
	identity *identity.TokenProvider
	poller   *poller.Poller
	notifier *trackingNotifier
}

func loadConfig(envFile string) (*config.Config, error) {
	cfg, err := config.LoadConfig(envFile)
	if errors.Is(err, os.ErrNotExist) {
		return config.FromEnv()
	}
	return cfg, err
}

func buildDeps(cfg *config.Config) (*deps, error) {
	const funcName = "quizctl.buildDeps"

	ids := identity.NewTokenProvider()
	if cfg.IDToken != "" {
		user, err := ids.SignIn(cfg.IDToken)
		if err != nil {
			return nil, err
		}
		logger.Debug("signed in",
			zap.String("function", funcName),
			zap.String("user_id", user.ID),
		)
	}

	api := client.New(client.Config{
		BaseURL:        cfg.APIBaseURL,
		RequestTimeout: cfg.RequestTimeout,
		UploadTimeout:  cfg.UploadTimeout,
	}, ids)

	var checker app.StatusChecker
	if cfg.PollStatus {
		checker = api
	}
	p := poller.New(poller.Config{
		SettleDelay:     cfg.SettleDelay,
		InitialInterval: cfg.PollInitialInterval,
		MaxInterval:     cfg.PollMaxInterval,
		MaxAttempts:     uint64(cfg.PollMaxAttempts),
	}, checker)

	var sink app.Notifier = notify.NewLogNotifier()
	if cfg.EmailEnabled() {
		sink = notify.Fanout{sink, notify.NewMailerSendNotifier(notify.MailConfig{
			APIKey:    cfg.MailerSendAPIKey,
			FromName:  "Quiz",
			FromEmail: cfg.NotifyEmailFrom,
			To:        cfg.NotifyEmailTo,
		})}
	}

	return &deps{
		cfg:      cfg,
		api:      api,
		identity: ids,
		poller:   p,
		notifier: newTrackingNotifier(sink),
	}, nil
}

func main() {
	envFile := flag.String("env", ".env", "path to the .env file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*envFile)
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	d, err := buildDeps(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quizctl: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	name, args := flag.Arg(0), flag.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "quizctl: unknown command %q\n\n", name)
		flag.Usage()
		os.Exit(2)
	}

	if err := cmd(ctx, d, args); err != nil {
		fmt.Fprintf(os.Stderr, "quizctl %s: %v\n", name, err)
		logger.Sync()
		os.Exit(1)
	}
}
