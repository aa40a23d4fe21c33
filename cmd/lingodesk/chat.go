package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nadzzz/lingodesk/internal/catalog"
	"github.com/nadzzz/lingodesk/internal/config"
	"github.com/nadzzz/lingodesk/internal/session"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive support conversation in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

// runChat owns stdout for the conversation, so logs go to stderr.
func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	closer := config.SetupLogging(cfg.Logging, os.Stderr)
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	greeting, _ := app.catalog.Reply(catalog.Greeting, catalog.DefaultLanguage)
	s := session.New(app.router, cmd.InOrStdin(), cmd.OutOrStdout(), greeting)
	return s.Run(ctx)
}
