// Package main is the entry point for the geotask CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"geotask/internal/backend/todoapi"
	"geotask/internal/cli"
	"geotask/internal/commands"
	"geotask/internal/config"
	"geotask/internal/service"
	"geotask/internal/session"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create service factory. The session store is read here, at the top
	// layer; the backend only ever sees the bearer token.
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		sess, err := session.NewStore(cfg.SessionPath()).Load()
		if err != nil {
			return nil, err
		}
		return todoapi.New(cfg, sess.Token), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
