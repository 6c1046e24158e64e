package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/alecthomas/kong"

	"github.com/broady/manifest/middleware"
	"github.com/broady/manifest/srcscan"
)

type CLI struct {
	Version  VersionCmd  `cmd:"" help:"Print version information."`
	Describe DescribeCmd `cmd:"" help:"Scan Go packages and print a descriptor report."`
	Serve    ServeCmd    `cmd:"" help:"Scan Go packages and serve the descriptor report over HTTP."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type DescribeCmd struct {
	Patterns []string `arg:"" help:"Package patterns to scan (e.g. ./...)."`
	Type     []string `help:"Restrict extraction to the named types." short:"t"`
	Dir      string   `help:"Working directory for package loading." short:"C"`
	Out      string   `help:"Write the report to a file instead of stdout." short:"o"`
	Pretty   bool     `help:"Indent the JSON output."`
}

func (c *DescribeCmd) Run() error {
	report, err := srcscan.Scan(context.Background(), srcscan.Options{
		Patterns: c.Patterns,
		Types:    c.Type,
		Dir:      c.Dir,
	})
	if err != nil {
		return err
	}

	var data []byte
	if c.Pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')

	if c.Out != "" {
		return os.WriteFile(c.Out, data, 0o644)
	}
	_, err = os.Stdout.Write(data)
	return err
}

type ServeCmd struct {
	Patterns []string `arg:"" help:"Package patterns to scan (e.g. ./...)."`
	Dir      string   `help:"Working directory for package loading." short:"C"`
	Port     int      `help:"Port to listen on." default:"9000" short:"p"`
}

func (c *ServeCmd) Run() error {
	logger := slog.Default()

	report, err := srcscan.Scan(context.Background(), srcscan.Options{
		Patterns: c.Patterns,
		Dir:      c.Dir,
	})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /report", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.Error("failed to encode report", slog.Any("error", err))
		}
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.Logging(logger)(middleware.CORS(nil)(mux))

	addr := fmt.Sprintf(":%d", c.Port)
	logger.Info("serving descriptor report",
		slog.String("addr", addr),
		slog.Int("types", len(report.Types)))
	return http.ListenAndServe(addr, handler)
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("manifest"),
		kong.Description("Manifest CLI for descriptor reports and introspection."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "manifest: %v\n", err)
		os.Exit(1)
	}
}
