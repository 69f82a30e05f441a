// Command lowcode-example walks through the basic SDK calls: login, user
// info, bot status and a health check.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	lowcode "github.com/olgasafonova/lowcodeapi-go"
	"github.com/olgasafonova/lowcodeapi-go/internal/config"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	username := flag.String("username", "test_user", "Login username")
	password := flag.String("password", "test_password", "Login password")
	botID := flag.Int("bot", 123, "Bot ID to query")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	client, err := lowcode.NewClient(cfg.Token,
		lowcode.WithBaseURL(cfg.BaseURL),
		lowcode.WithTimeout(cfg.Timeout),
		lowcode.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if failed := run(ctx, os.Stdout, client, *username, *password, *botID); failed > 0 {
		os.Exit(1)
	}
}

// run performs each step, printing results to w, and returns how many steps failed
func run(ctx context.Context, w io.Writer, client *lowcode.Client, username, password string, botID int) int {
	steps := []struct {
		label string
		call  func() (lowcode.Response, error)
	}{
		{"Login result", func() (lowcode.Response, error) { return client.Auth().Login(ctx, username, password) }},
		{"User info", func() (lowcode.Response, error) { return client.User().GetInfo(ctx) }},
		{"Bot status", func() (lowcode.Response, error) { return client.Bots().GetBotStatus(ctx, botID) }},
		{"Health check", func() (lowcode.Response, error) { return client.System().HealthCheck(ctx) }},
	}

	failed := 0
	for _, step := range steps {
		resp, err := step.call()
		if err != nil {
			failed++
			fmt.Fprintf(w, "%s: error: %v\n", step.label, describe(err))
			continue
		}
		if !printResult(w, step.label, resp) {
			failed++
		}
	}
	return failed
}

// printResult writes resp as JSON and reports whether it could be encoded
func printResult(w io.Writer, label string, resp lowcode.Response) bool {
	out, err := json.Marshal(resp)
	if err != nil {
		fmt.Fprintf(w, "%s: error: encode result: %v\n", label, err)
		return false
	}
	fmt.Fprintf(w, "%s: %s\n", label, out)
	return true
}

func describe(err error) string {
	switch {
	case lowcode.IsAuthentication(err):
		return "authentication failed, check LOWCODE_TOKEN (" + err.Error() + ")"
	case lowcode.IsNetwork(err):
		return "API unreachable (" + err.Error() + ")"
	default:
		return err.Error()
	}
}
