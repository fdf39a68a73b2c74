package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/Nydauron/wcif/prompts"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	inputFlag   = "input"
	outputFlag  = "output"
	formatFlag  = "format"
	verboseFlag = "verbose"

	yamlFormat = "yaml"
	jsonFormat = "json"
)

// Exit codes of failed commands.
const (
	exitFetch  = 2
	exitEncode = 3
	exitParse  = 4
)

var build string
var semanticVersion = "v0.1.0-dev" + build

// env holds what commands read from and write to.
type env struct {
	log    *zap.Logger
	prompt *prompts.Prompter
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// openInput opens a document or results page given as an http(s) URL or a
// file path.
func openInput(ctx context.Context, logger *zap.Logger, location string, expectedContent string) (io.ReadCloser, error) {
	if u, err := url.ParseRequestURI(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		logger.Debug("URL detected", zap.String("url", u.String()))
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("error occurred when trying to fetch page: %w", err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("invalid HTTP status code received: %v", resp.Status)
		}
		if contentType := resp.Header.Get("content-type"); contentType != expectedContent {
			logger.Warn("unexpected content type", zap.String("got", contentType), zap.String("expected", expectedContent))
		}
		return resp.Body, nil
	}
	if f, err := os.Open(location); err == nil {
		logger.Debug("File detected", zap.String("path", location))
		return f, nil
	}
	return nil, fmt.Errorf("provided input was neither a valid URL or a path to existing file: %v", location)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case jsonFormat:
		jsonEncoder := json.NewEncoder(w)
		jsonEncoder.SetIndent("", "  ")
		return jsonEncoder.Encode(v)
	case yamlFormat:
		yamlEncoder := yaml.NewEncoder(w)
		yamlEncoder.SetIndent(2)
		if err := yamlEncoder.Encode(v); err != nil {
			return err
		}
		return yamlEncoder.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

func formatFlagValue() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    formatFlag,
		Aliases: []string{"f"},
		Usage:   "Output encoding, yaml or json",
		Value:   yamlFormat,
		EnvVars: []string{"WCIF_FORMAT"},
		Action: func(cCtx *cli.Context, v string) error {
			if v != yamlFormat && v != jsonFormat {
				return fmt.Errorf("unknown output format %q", v)
			}
			return nil
		},
	}
}

func outputFlagValue() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Usage:   "The location to write the result. Can be a file path or \"-\" (for stdout).",
		Value:   "-",
		EnvVars: []string{"WCIF_OUTPUT"},
	}
}

func inputFlagValue(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     inputFlag,
		Aliases:  []string{"i"},
		Usage:    usage,
		Required: true,
		EnvVars:  []string{"WCIF_INPUT"},
	}
}

func newApp(e *env) *cli.App {
	return &cli.App{
		Name:      "wcif",
		Usage:     "Inspect WCA Competition Interchange Format documents and the codes they contain",
		Version:   semanticVersion,
		Reader:    e.stdin,
		Writer:    e.stdout,
		ErrWriter: e.stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    verboseFlag,
				Aliases: []string{"v"},
				Usage:   "Log debug output",
				EnvVars: []string{"WCIF_VERBOSE"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			if e.log != nil {
				return nil
			}
			var err error
			e.log, err = buildLogger(cCtx.Bool(verboseFlag))
			return err
		},
		After: func(cCtx *cli.Context) error {
			if e.log != nil {
				_ = e.log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			inspectCommand(e),
			resultCommand(e),
			activityCommand(e),
			wcaIDCommand(e),
			importCommand(e),
		},
	}
}

func main() {
	app := newApp(&env{prompt: prompts.Terminal(), stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
