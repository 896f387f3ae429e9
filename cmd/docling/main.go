package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/adrianliechti/docling/config"
	"github.com/adrianliechti/docling/pkg/docling"
	"github.com/adrianliechti/docling/pkg/otel"
)

var version = "dev"

const usage = `Usage: docling [flags] <command> [args]

Commands:
  health                     check server health
  version                    print server version information
  schema                     print the JSON schema of the conversion options
  convert <url|file>...      convert synchronously
  submit <url|file>...       submit an asynchronous conversion and print the task
  poll <task-id>             print the status of a task
  result <task-id>           print the result of a finished task
  wait <url|file>...         submit, wait for completion and print the result
  extract <file>             extract text through the extractor pipeline

Flags:
`

type app struct {
	client *docling.Client
	config *config.Config

	json   bool
	format string
	wait   time.Duration
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code. Deferred cleanup
// runs before main exits.
func run(args []string) int {
	flags := flag.NewFlagSet("docling", flag.ContinueOnError)

	configFlag := flags.String("config", os.Getenv("DOCLING_CONFIG"), "config file")
	urlFlag := flags.String("url", "", "server url")
	tokenFlag := flags.String("token", "", "server token")

	timeoutFlag := flags.Duration("timeout", 0, "overall wait budget")
	intervalFlag := flags.Duration("poll-interval", 0, "pause between status polls")
	longPollFlag := flags.Duration("long-poll", 0, "server-side wait per status poll")

	toFlag := flags.String("to", "", "comma separated output formats")
	jsonFlag := flags.Bool("json", false, "print full JSON responses")
	formatFlag := flags.String("format", "text", "extract format (text, markdown)")

	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	setupLogger()

	shutdown, err := otel.Setup(ctx, "docling", version)

	if err != nil {
		return fail(err)
	}

	defer shutdown(context.Background())

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		return fail(err)
	}

	if *urlFlag != "" {
		cfg.URL = *urlFlag
	}

	if *tokenFlag != "" {
		cfg.Token = *tokenFlag
	}

	if *timeoutFlag > 0 {
		cfg.Wait.Timeout = *timeoutFlag
	}

	if *intervalFlag > 0 {
		cfg.Wait.PollInterval = *intervalFlag
	}

	if *longPollFlag > 0 {
		cfg.Wait.LongPoll = *longPollFlag
	}

	if *toFlag != "" {
		if cfg.Options == nil {
			cfg.Options = new(docling.ConvertOptions)
		}

		cfg.Options.ToFormats = nil

		for _, f := range strings.Split(*toFlag, ",") {
			cfg.Options.ToFormats = append(cfg.Options.ToFormats, docling.OutputFormat(strings.TrimSpace(f)))
		}
	}

	client, err := cfg.Client(docling.WithUserAgent("docling-go/" + version))

	if err != nil {
		return fail(err)
	}

	a := &app{
		client: client,
		config: cfg,

		json:   *jsonFlag,
		format: *formatFlag,
		wait:   *longPollFlag,
	}

	if err := a.run(ctx, flags.Arg(0), flags.Args()[1:]); err != nil {
		return fail(err)
	}

	return 0
}

func setupLogger() {
	level := slog.LevelInfo

	if otel.EnableDebug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func fail(err error) int {
	var apiErr *docling.APIError

	if errors.As(err, &apiErr) {
		slog.Error("request failed", "status", apiErr.StatusCode)

		if apiErr.Body != "" {
			fmt.Fprintln(os.Stderr, apiErr.Body)
		}

		return 1
	}

	slog.Error("command failed", "error", err)
	return 1
}
