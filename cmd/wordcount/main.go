package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"

	"github.com/vadim-ktnkv/wordcount/frequency"
	"github.com/vadim-ktnkv/wordcount/internal/config"
	"github.com/vadim-ktnkv/wordcount/internal/source"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	top        int
	configPath string
	envDir     string
	counts     bool
	noColor    bool
	timeout    time.Duration
	maxBytes   int64
	verbose    bool
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprint(fs.Output(), "Usage: wordcount [flags] [file | url | -]...\n\n"+
			"Prints the most frequent words of the given texts, stdin when none is given.\n\nFlags:\n")
		fs.PrintDefaults()
	}
}

// resolveConfig layers defaults, the YAML file, the envdir, the process
// environment and finally the flags that were set explicitly.
func resolveConfig(fs *flag.FlagSet, opts options, env config.Environment) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	if opts.envDir != "" {
		dirEnv, err := config.ReadDir(opts.envDir)
		if err != nil {
			return cfg, err
		}
		if err := dirEnv.Apply(&cfg); err != nil {
			return cfg, err
		}
	}
	if err := env.Apply(&cfg); err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "top":
			cfg.Top = opts.top
		case "counts":
			cfg.Counts = opts.counts
		case "no-color":
			cfg.Color = !opts.noColor
		case "timeout":
			cfg.Timeout = opts.timeout
		case "max-bytes":
			cfg.MaxBytes = opts.maxBytes
		}
	})
	return cfg, cfg.Validate()
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, env config.Environment) int {
	fs := flag.NewFlagSet("wordcount", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)

	var opts options
	fs.IntVar(&opts.top, "top", config.Default().Top, "number of words to print")
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&opts.envDir, "envdir", "", "directory of WORDCOUNT_* variable files")
	fs.BoolVar(&opts.counts, "counts", false, "print the count next to each word")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	fs.DurationVar(&opts.timeout, "timeout", config.Default().Timeout, "timeout of each HTTP fetch")
	fs.Int64Var(&opts.maxBytes, "max-bytes", config.Default().MaxBytes, "size limit of each source in bytes")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	errColor := color.New(color.FgRed, color.Bold)
	countColor := color.New(color.FgCyan)
	fail := func(code int, err error) int {
		errColor.Fprint(stderr, "error: ")
		fmt.Fprintln(stderr, err)
		return code
	}

	cfg, err := resolveConfig(fs, opts, env)
	if err != nil {
		return fail(exitUsage, err)
	}
	if !cfg.Color {
		errColor.DisableColor()
		countColor.DisableColor()
	}
	logger.Debug("configuration resolved",
		"top", cfg.Top,
		"max_bytes", source.ByteCountIEC(cfg.MaxBytes),
		"timeout", cfg.Timeout,
		"cache_size", cfg.CacheSize)

	fetcher := source.NewCachingFetcher(
		source.NewHTTPFetcher(
			source.WithTimeout(cfg.Timeout),
			source.WithUserAgent(cfg.UserAgent),
			source.WithMaxBytes(cfg.MaxBytes),
			source.WithLogger(logger),
		),
		cfg.CacheSize,
		logger,
	)

	sourceArgs := fs.Args()
	if len(sourceArgs) == 0 {
		sourceArgs = []string{source.StdinArg}
	}

	sources := make([]source.Source, 0, len(sourceArgs))
	for _, arg := range sourceArgs {
		src, err := source.Open(arg, source.Options{MaxBytes: cfg.MaxBytes, Fetcher: fetcher, Stdin: stdin})
		if err != nil {
			return fail(exitUsage, err)
		}
		sources = append(sources, src)
	}

	text, err := source.ReadAll(ctx, sources)
	if err != nil {
		return fail(exitFailure, err)
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("text loaded",
			"sources", len(sources),
			"size", source.ByteCountIEC(int64(len(text))),
			"tokens", len(frequency.Tokenize(text)))
	}

	ranked, err := frequency.Rank(text, cfg.Top)
	if err != nil {
		return fail(exitUsage, err)
	}

	for _, wc := range ranked {
		if cfg.Counts {
			fmt.Fprintf(stdout, "%s\t%s\n", wc.Word, countColor.Sprint(wc.Count))
			continue
		}
		fmt.Fprintln(stdout, wc.Word)
	}
	return exitOK
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, color.Output, color.Error, config.FromOS())
	stop()
	os.Exit(code)
}
