package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"opsagent/internal/classify"
	"opsagent/internal/dispatch"
	"opsagent/internal/ops"
	"opsagent/pkg/config"
	"opsagent/pkg/env"
	"opsagent/pkg/logging"
	"opsagent/pkg/sandbox"
	"opsagent/pkg/system"
	"opsagent/pkg/version"
	"opsagent/server"
)

var cfgFile string

func main() {
	root := &cobra.Command{
		Use:   "opsagent",
		Short: "Local automation agent over a sandboxed data directory",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.opsagent/config.yaml)")

	root.AddCommand(serveCmd())
	root.AddCommand(doctorCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pwd, err := os.Getwd(); err == nil {
				_, _ = env.LoadFromDir(pwd)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Port = port
			}

			logger := logging.New(cfg.LogLevel, cfg.LogFormat)
			defer func() { _ = logger.Sync() }()

			box, err := sandbox.New(cfg.SandboxRoot)
			if err != nil {
				return err
			}

			timeout, err := time.ParseDuration(cfg.Generator.Timeout)
			if err != nil {
				return fmt.Errorf("parse generator timeout: %w", err)
			}
			gen := &ops.ExecGenerator{
				Command:   cfg.Generator.Command,
				Timeout:   timeout,
				MaxOutput: cfg.Generator.MaxOutput,
				Blocklist: cfg.Generator.Blocklist,
			}

			lib := ops.NewLibrary(box, gen, logger)
			dispatcher := dispatch.New(classify.New(box.Root()), lib, logger)
			srv := server.New(dispatcher, box,
				server.AllowlistAuthorizer{Allowed: cfg.AllowedAddrs}, logger)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(ctx, fmt.Sprintf(":%d", cfg.Port))
			}()

			logger.Info("agent started",
				zap.Int("port", cfg.Port),
				zap.String("sandbox", box.Root()),
				zap.Bool("token_present", cfg.Token != ""))

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				logger.Info("shutdown signal received", zap.String("signal", sig.String()))
				cancel()
				return <-errCh
			case err := <-errCh:
				return err
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides config)")
	return cmd
}

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the agent's environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			profile := system.Detect()
			fmt.Printf("host: %s/%s\n", profile.OS, profile.Arch)

			if info, err := os.Stat(cfg.SandboxRoot); err != nil {
				fmt.Printf("sandbox root %s: missing\n", cfg.SandboxRoot)
			} else if !info.IsDir() {
				fmt.Printf("sandbox root %s: not a directory\n", cfg.SandboxRoot)
			} else {
				fmt.Printf("sandbox root %s: ok\n", cfg.SandboxRoot)
			}

			if profile.HasBin(cfg.Generator.Command) {
				fmt.Printf("generator %s: found\n", cfg.Generator.Command)
			} else {
				fmt.Printf("generator %s: not found\n", cfg.Generator.Command)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if candidate := config.DefaultConfigPath(); fileExists(candidate) {
			path = candidate
		}
	}
	return config.LoadConfig(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
