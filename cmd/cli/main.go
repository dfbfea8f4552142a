package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"qahub/internal/cli/command"
	"qahub/internal/cli/config"
	httpclient "qahub/internal/cli/http"
	"qahub/internal/cli/repl"
)

const defaultConfigPath = "configs/cli.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "Path to config file")
	baseURL := flag.String("base", "", "Override base URL")
	timeout := flag.Duration("timeout", 0, "Override HTTP timeout (e.g. 10s)")
	historyFile := flag.String("history", "", "Override history file path")
	pretty := flag.Bool("pretty", false, "Pretty print JSON response")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	if *historyFile != "" {
		cfg.HistoryFile = *historyFile
	}
	if *pretty {
		trueValue := true
		cfg.PrettyJSON = &trueValue
	}

	rl, err := repl.NewReadline(cfg.HistoryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init line editor failed: %v\n", err)
		os.Exit(1)
	}

	client := httpclient.New(cfg.BaseURL, cfg.Timeout)
	session := repl.New(client, command.Registry(), rl, rl.Stdout(), cfg.PrettyJSON != nil && *cfg.PrettyJSON)
	session.Run(context.Background())
}
