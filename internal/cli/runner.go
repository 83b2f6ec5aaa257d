package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"grocery_admin/internal/api"
	"grocery_admin/internal/config"
	"grocery_admin/internal/session"

	"go.uber.org/zap"
)

type Runner struct {
	options Options
	logger  *zap.Logger
	client  *api.Client
	store   *session.Store
}

func NewRunner(cfg config.Config, logger *zap.Logger, client *api.Client, store *session.Store) *Runner {
	logger = logger.Named("cli")
	opts := Options{
		BaseURL:     cfg.BaseURL,
		Email:       cfg.Email,
		Password:    cfg.Password,
		PageSize:    cfg.PageSize,
		Timeout:     cfg.Timeout,
		LogFile:     cfg.LogFile,
		SessionFile: cfg.SessionFile,
		Debug:       cfg.Debug,
	}

	return &Runner{
		options: opts,
		logger:  logger,
		client:  client,
		store:   store,
	}
}

func (r *Runner) Execute() error {
	return runCLI(&r.options, r.logger, r.client, r.store)
}

func runCLI(opts *Options, logger *zap.Logger, client *api.Client, store *session.Store) error {
	var timeoutSeconds int

	fs := flag.NewFlagSet("grocery-admin", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [command ...]\n", fs.Name())
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.BaseURL, "base-url", opts.BaseURL, "Admin API base URL (BASE_URL)")
	fs.StringVar(&opts.Email, "email", opts.Email, "Admin email (EMAIL)")
	fs.IntVar(&opts.PageSize, "page-size", opts.PageSize, "Rows per page for list views")
	fs.BoolVar(&opts.JSON, "json", false, "Output JSON format")
	fs.BoolVar(&opts.Debug, "debug", opts.Debug, "Enable debug logging")
	fs.StringVar(&opts.LogFile, "log-file", opts.LogFile, "Log file path")
	fs.IntVar(&timeoutSeconds, "timeout", int(opts.Timeout.Seconds()), "Timeout in seconds")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			fs.Usage()
			return nil
		}
		return err
	}

	if timeoutSeconds > 0 {
		opts.Timeout = time.Duration(timeoutSeconds) * time.Second
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}

	client = clientFromOptions(opts, logger, client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	con := newConsole(opts, logger, client, store)

	if args := fs.Args(); len(args) > 0 {
		return con.dispatch(ctx, args)
	}
	return runREPL(ctx, con)
}

// clientFromOptions rebuilds the API client when flags override the
// configured base URL or timeout.
func clientFromOptions(opts *Options, logger *zap.Logger, current *api.Client) *api.Client {
	if current != nil && strings.TrimRight(opts.BaseURL, "/") == current.BaseURL() {
		return current
	}
	cfg := config.Config{
		BaseURL: opts.BaseURL,
		Timeout: opts.Timeout,
	}
	return api.NewClient(cfg, logger)
}

func runREPL(ctx context.Context, con *console) error {
	reader := bufio.NewScanner(os.Stdin)
	fmt.Fprintln(os.Stdout, "Grocery admin console (type 'help', 'exit' to quit)")

	for {
		fmt.Fprint(os.Stdout, "> ")
		if !reader.Scan() {
			return reader.Err()
		}

		line := strings.TrimSpace(reader.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if err := con.dispatch(ctx, strings.Fields(line)); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(os.Stderr, "error: %s\n", friendlyError(err))
		}
	}
}
