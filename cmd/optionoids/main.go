package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/Fish-Fur/optionoids"
	"github.com/Fish-Fur/optionoids/internal/steps"
	"github.com/Fish-Fur/optionoids/source"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	envPrefix   = "OPTIONOIDS_"
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
	defaultLogs = "warn"
)

// config holds defaults read from OPTIONOIDS_* variables; flags override them.
type config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	Format   string `env:"FORMAT" envDefault:"text"`
	Soft     bool   `env:"SOFT"`
}

func main() {
	// the .env file is optional
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fatalf(stderr, "config: %v", err)
	}
	switch args[0] {
	case "check":
		return checkCmd(args[1:], cfg, stdout, stderr)
	case "show":
		return showCmd(args[1:], cfg, stdout, stderr)
	case "steps":
		fmt.Fprintln(stdout, strings.Join(steps.Names(), "\n"))
		return exitOK
	default:
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "optionoids CLI\n\nUsage:\n  optionoids check [-soft] [-format text|json] [-params file] [-log-level lvl] <file> [step ...]\n  optionoids show [-format yaml|json] [-params file] [-keys a,b] <file>\n  optionoids steps\n\nSteps are applied in order, e.g.:\n  optionoids check config.yaml that:host,port required that:port type:int all only:host,port,tls")
}

func checkCmd(args []string, cfg config, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	soft := fs.Bool("soft", cfg.Soft, "collect every failure instead of stopping at the first")
	format := fs.String("format", cfg.Format, "output format: text or json")
	params := fs.String("params", "", "file whose options override the document's")
	level := fs.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() < 1 || (*format != formatText && *format != formatJSON) {
		fs.Usage()
		return exitUsage
	}

	logger, err := newLogger(*level, stderr)
	if err != nil {
		return fatalf(stderr, "log level: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	pipeline, err := steps.ParseAll(fs.Args()[1:])
	if err != nil {
		return fatalf(stderr, "%v", err)
	}
	c, err := load(fs.Arg(0), *params, logger, *soft)
	if err != nil {
		return fatalf(stderr, "%v", err)
	}
	logger.Debug("running checks", zap.String("file", fs.Arg(0)), zap.Int("steps", len(pipeline)), zap.Bool("soft", *soft))
	steps.Apply(c, pipeline)

	failures := failuresOf(c)
	if err := report(stdout, *format, failures); err != nil {
		return fatalf(stderr, "write: %v", err)
	}
	if len(failures) > 0 {
		return exitFailed
	}
	return exitOK
}

func showCmd(args []string, cfg config, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", formatYAML, "output format: yaml or json")
	params := fs.String("params", "", "file whose options override the document's")
	keys := fs.String("keys", "", "comma-separated keys to keep")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 || (*format != formatYAML && *format != formatJSON) {
		fs.Usage()
		return exitUsage
	}
	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		return fatalf(stderr, "log level: %v", err)
	}
	c, err := load(fs.Arg(0), *params, logger, true)
	if err != nil {
		return fatalf(stderr, "%v", err)
	}
	if *keys != "" {
		c.That(splitKeys(*keys)...)
	}

	var out []byte
	if *format == formatJSON {
		out, err = json.MarshalIndent(c.CurrentOptions(), "", "  ")
		out = append(out, '\n')
	} else {
		out, err = yaml.Marshal(map[string]any(c.CurrentOptions()))
	}
	if err != nil {
		return fatalf(stderr, "encode: %v", err)
	}
	if _, err := stdout.Write(out); err != nil {
		return fatalf(stderr, "write: %v", err)
	}
	return exitOK
}

func load(path, paramsPath string, logger *zap.Logger, soft bool) (*optionoids.Checker, error) {
	opts, err := source.File(path)
	if err != nil {
		return nil, err
	}
	c := optionoids.New(opts, optionoids.Hard(!soft), optionoids.WithLogger(logger))
	if paramsPath != "" {
		params, err := source.File(paramsPath)
		if err != nil {
			return nil, fmt.Errorf("params: %w", err)
		}
		c.WithParams(params)
	}
	return c, nil
}

// splitKeys splits a comma-separated key list, trimming blanks.
func splitKeys(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func failuresOf(c *optionoids.Checker) optionoids.Errors {
	err := c.Err()
	if err == nil {
		return nil
	}
	errs, _ := optionoids.AsErrors(err)
	return errs
}

type result struct {
	OK     bool              `json:"ok"`
	Errors optionoids.Errors `json:"errors"`
}

func report(w io.Writer, format string, failures optionoids.Errors) error {
	if format == formatJSON {
		if failures == nil {
			failures = optionoids.Errors{}
		}
		b, err := json.Marshal(result{OK: len(failures) == 0, Errors: failures})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	if len(failures) == 0 {
		_, err := fmt.Fprintln(w, "ok")
		return err
	}
	for _, e := range failures {
		if _, err := fmt.Fprintf(w, "%s: %s\n", e.Kind, e.Error()); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	if level == "" {
		level = defaultLogs
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

func fatalf(w io.Writer, format string, a ...any) int {
	fmt.Fprintf(w, "error: "+format+"\n", a...)
	return exitUsage
}
