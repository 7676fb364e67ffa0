// rpnkit - convert infix arithmetic expressions to Reverse Polish Notation
//
// Usage:
//
//	rpnkit convert [flags] [expr...]   Convert expressions (stdin if none given)
//	rpnkit file [flags] PATH           Convert every expression in a file
//	rpnkit watch [flags] PATH          Convert expressions as they are appended to a file
//	rpnkit demo                        Show every stage for a sample expression
//	rpnkit formats                     List output formats
//	rpnkit schema                      Print the config file JSON Schema
//	rpnkit version                     Print version info
//
// Flags:
//
//	--config=PATH    Load a YAML, TOML, or JSON config file
//	--format=NAME    Output format (compact, spaced, json, yaml)
//	--stages         Print every conversion stage
//
// Environment variables (RPNKIT_*) override the config file; flags override both.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/randalmurphal/rpnkit/batch"
	"github.com/randalmurphal/rpnkit/config"
	"github.com/randalmurphal/rpnkit/notation"
	"github.com/randalmurphal/rpnkit/render"
)

const version = "0.1.0"

// demoExpr exercises both priority levels and same-level chains.
const demoExpr = "a+b*c/d-e-f*g*h"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "version":
		fmt.Printf("rpnkit %s\n", version)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "formats":
		for _, name := range render.Available() {
			fmt.Println(name)
		}
		return
	case "schema":
		data, err := config.Schema()
		if err != nil {
			fatal("schema: %v", err)
		}
		fmt.Println(string(data))
		return
	}

	cfg, args, err := loadConfig(os.Args[2:])
	if err != nil {
		fatal("%v", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))

	conv, err := notation.NewConverter(cfg.Format)
	if err != nil {
		fatal("%v", err)
	}

	switch cmd {
	case "convert":
		if len(args) == 0 {
			err = convertReader(os.Stdout, os.Stdin, conv, cfg)
		} else {
			err = convertAll(os.Stdout, args, conv, cfg)
		}
	case "file":
		err = convertFile(os.Stdout, requirePath(cmd, args), conv, cfg)
	case "watch":
		err = watchFile(os.Stdout, requirePath(cmd, args), conv, cfg)
	case "demo":
		err = runDemo(os.Stdout, conv, cfg)
	default:
		fmt.Fprintf(os.Stderr, "rpnkit: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fatal("%s: %v", cmd, err)
	}
}

// loadConfig layers defaults, the config file, environment, and flags.
// It returns the remaining positional arguments.
func loadConfig(argv []string) (config.Config, []string, error) {
	var (
		configPath string
		format     string
		stages     bool
		args       []string
	)
loop:
	for i, arg := range argv {
		switch {
		case arg == "--":
			args = append(args, argv[i+1:]...)
			break loop
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "--format="):
			format = strings.TrimPrefix(arg, "--format=")
		case arg == "--stages":
			stages = true
		case strings.HasPrefix(arg, "--"):
			return config.Config{}, nil, fmt.Errorf("unknown flag: %s", arg)
		default:
			// Expressions may start with "-", so only "--" marks a flag.
			args = append(args, arg)
		}
	}

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return cfg, nil, err
		}
		cfg = loaded
	}
	cfg.LoadFromEnv()
	if format != "" {
		cfg = cfg.WithFormat(format)
	}
	if stages {
		cfg = cfg.WithStages(true)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	return cfg, args, nil
}

func requirePath(cmd string, args []string) string {
	if len(args) != 1 {
		fatal("%s: expected exactly one file path", cmd)
	}
	return args[0]
}

func convertAll(w io.Writer, exprs []string, conv *notation.Converter, cfg config.Config) error {
	for _, expr := range exprs {
		if err := convertOne(w, expr, conv, cfg); err != nil {
			return err
		}
	}
	return nil
}

// convertReader converts line by line as input arrives, skipping the same
// blank and comment lines as expression files.
func convertReader(w io.Writer, r io.Reader, conv *notation.Converter, cfg config.Config) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		expr, ok := batch.ParseLine(scanner.Text(), cfg.CommentPrefix)
		if !ok {
			continue
		}
		if err := convertOne(w, expr, conv, cfg); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func runDemo(w io.Writer, conv *notation.Converter, cfg config.Config) error {
	return convertAll(w, []string{demoExpr}, conv, cfg.WithStages(true))
}

func convertFile(w io.Writer, path string, conv *notation.Converter, cfg config.Config) error {
	r, err := batch.NewReader(path, batch.WithCommentPrefix(cfg.CommentPrefix))
	if err != nil {
		return err
	}
	defer r.Close()

	results, err := r.Convert(conv)
	if err != nil {
		return err
	}
	for _, res := range results {
		printResult(w, res, cfg.Stages)
	}
	return nil
}

func watchFile(w io.Writer, path string, conv *notation.Converter, cfg config.Config) error {
	r, err := batch.NewReader(path,
		batch.WithCommentPrefix(cfg.CommentPrefix),
		batch.WithPollInterval(cfg.Interval()))
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("watching expression file", slog.String("path", path))
	for expr := range r.Tail(ctx) {
		if err := convertOne(w, expr, conv, cfg); err != nil {
			return err
		}
	}
	return nil
}

func convertOne(w io.Writer, expr string, conv *notation.Converter, cfg config.Config) error {
	res, err := conv.Convert(expr)
	if err != nil {
		return err
	}
	printResult(w, res, cfg.Stages)
	return nil
}

func printResult(w io.Writer, res notation.Result, stages bool) {
	if !stages {
		fmt.Fprintln(w, res.Output)
		return
	}
	fmt.Fprintf(w, "input  : %q\n", res.Input)
	fmt.Fprintf(w, "parts  : %q\n", res.Parts)
	fmt.Fprintf(w, "tokens : %s\n", describe(res.Tokens))
	fmt.Fprintf(w, "rpn    : %s\n", describe(res.RPN))
	fmt.Fprintf(w, "output : %s\n", res.Output)
}

func describe[T fmt.Stringer](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: rpnkit <command> [flags] [args]

Commands:
  convert [expr...]   Convert expressions (reads stdin if none given)
  file PATH           Convert every expression in a file
  watch PATH          Convert expressions appended to a file until interrupted
  demo                Show every stage for `+demoExpr+`
  formats             List output formats
  schema              Print the config file JSON Schema
  version             Print version info

Flags:
  --config=PATH   Load a YAML, TOML, or JSON config file
  --format=NAME   Output format
  --stages        Print every conversion stage`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "rpnkit: "+format+"\n", args...)
	os.Exit(1)
}
