// Package main provides the hkid binary: a command-line front end for
// generating and validating Hong Kong Identity Card numbers.
//
// The application flow:
//  1. Parse global flags and the subcommand with its flags.
//  2. Load defaults, the optional INI file, environment variables and flags.
//  3. Validate configuration.
//  4. Build the logger and service, then run the subcommand.
//
// Exit codes: 0 success or valid, 1 invalid check character, 2 usage,
// configuration, format or prefix error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/haukened/hkid/internal/app"
	"github.com/haukened/hkid/internal/config"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// cli carries everything a subcommand needs for one invocation.
type cli struct {
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	flags  *flag.FlagSet
	svc    *app.Service
	log    *slog.Logger
}

// command describes one subcommand. flags registers its flag set; run
// receives the positional arguments left after parsing.
type command struct {
	name  string
	args  string
	help  string
	flags func(fs *flag.FlagSet)
	run   func(c *cli, args []string) int
}

var commands = []command{
	{
		name: "generate",
		args: "[-prefix P] [-must-exist]",
		help: "print a random HKID",
		flags: func(fs *flag.FlagSet) {
			fs.String("prefix", "", "use this one or two letter prefix")
			fs.Bool("must-exist", true, "require a catalogued prefix")
		},
		run: (*cli).generate,
	},
	{
		name: "validate",
		args: "[-must-exist] [-lenient] <HKID>",
		help: "check an HKID's format and check character",
		flags: func(fs *flag.FlagSet) {
			fs.Bool("must-exist", true, "require a catalogued prefix")
			fs.Bool("lenient", false, "accept a check character without parentheses")
		},
		run: (*cli).validate,
	},
	{
		name: "prefixes",
		help: "list the catalogued prefixes",
		run:  (*cli).prefixes,
	},
	{
		name: "symbol",
		args: "<SYM>...",
		help: "explain symbols printed on the card",
		run:  (*cli).symbol,
	},
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: hkid [-config file] [-output text|json] [-log-level L] [-log-format F] <command> [flags]")
	fmt.Fprintln(w, "\ncommands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-9s %-34s %s\n", c.name, c.args, c.help)
	}
}

// flagKey maps a flag name to its configuration key.
func flagKey(name string) string { return strings.ReplaceAll(name, "-", "_") }

// collectOverrides returns the flags explicitly set on fs, keyed for config.
func collectOverrides(fs *flag.FlagSet, into map[string]any) {
	fs.Visit(func(f *flag.Flag) {
		into[flagKey(f.Name)] = f.Value.String()
	})
}

func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("hkid", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { usage(stderr) }
	cfgFile := global.String("config", "", "INI configuration file (default $"+config.EnvConfigFile+")")
	global.String("output", "", "output format: text or json")
	global.String("log-level", "", "log level: debug, info, warn or error")
	global.String("log-format", "", "log format: text or json")
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	rest := global.Args()
	if len(rest) == 0 {
		usage(stderr)
		return exitUsage
	}
	cmd, ok := lookupCommand(rest[0])
	if !ok {
		fmt.Fprintf(stderr, "hkid: unknown command %q\n", rest[0])
		usage(stderr)
		return exitUsage
	}

	sub := flag.NewFlagSet("hkid "+cmd.name, flag.ContinueOnError)
	sub.SetOutput(stderr)
	sub.Usage = func() {
		fmt.Fprintf(stderr, "usage: hkid %s %s\n", cmd.name, cmd.args)
		sub.PrintDefaults()
	}
	if cmd.flags != nil {
		cmd.flags(sub)
	}
	if err := sub.Parse(rest[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	overrides := map[string]any{}
	collectOverrides(global, overrides)
	collectOverrides(sub, overrides)
	delete(overrides, "config")
	// an explicit -prefix is checked by the service, not by config validation
	delete(overrides, "prefix")

	cfg, err := config.Load(config.WithFile(*cfgFile), config.WithOverrides(overrides))
	if err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("configuration error", "err", err)
		return exitUsage
	}

	c := &cli{
		stdout: stdout,
		stderr: stderr,
		cfg:    cfg,
		flags:  sub,
		svc:    &app.Service{Grammar: cfg.Grammar()},
		log:    newLogger(cfg, stderr).With("cid", uuid.NewString(), "action", cmd.name),
	}
	c.log.Debug("configuration loaded",
		"must_exist", cfg.MustExist,
		"lenient", cfg.Lenient,
		"prefix", cfg.Prefix,
		"output", cfg.Output,
	)
	return cmd.run(c, sub.Args())
}

// newLogger builds the stderr handler selected by log_format at log_level.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
