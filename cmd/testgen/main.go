package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	liblog "trpc.group/trpc-go/trpc-a2a-go/log"

	"github.com/tuannvm/jira-testgen-a2a/internal/agent"
	"github.com/tuannvm/jira-testgen-a2a/internal/config"
	"github.com/tuannvm/jira-testgen-a2a/internal/jira"
	"github.com/tuannvm/jira-testgen-a2a/internal/logging"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
	"github.com/tuannvm/jira-testgen-a2a/internal/testgen"
)

const (
	appName = "testgen"
	version = "1.0.0"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Jira test generation A2A agent",
		Long: `Testgen exposes a Jira-backed test generation agent over the A2A protocol.

It fetches tickets from Jira Cloud, extracts Given/When/Then scenarios from
their descriptions and discussions, and renders Gherkin feature files,
automation scaffolding, and manual test plan documents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	cmd.AddCommand(generateCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, version)
		},
	})

	return cmd
}

// serve runs the A2A server until interrupted.
func serve() error {
	wireLibraryLogger()
	defer logging.Sync()

	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	a := agent.NewTestGenerationAgent(cfg)

	fmt.Printf("Starting %s server on %s:%d\n", cfg.AgentName, cfg.ServerHost, cfg.ServerPort)
	fmt.Printf("Agent URL: %s\n", cfg.AgentURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.StartServer(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	logging.Infof("Server shutdown complete")
	return nil
}

// generateCmd runs one generation pass locally without the server, for use
// from scripts and CI.
func generateCmd() *cobra.Command {
	var (
		language   string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "generate <ticket-id>",
		Short: "Generate test artifacts for one ticket without starting a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.Sync()

			cfg := config.NewConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}

			service := testgen.NewService(cfg, jira.NewClient(cfg, nil))
			result, err := service.GenerateTests(cmd.Context(), args[0], models.Language(language), outputPath)
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("%s", result.Message)
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "java", "Scaffolding language (java or python)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output root directory (defaults to OUTPUT_DIRECTORY)")

	return cmd
}

// wireLibraryLogger routes the A2A library's logging through zap so both log
// streams share one format.
func wireLibraryLogger() {
	liblog.Default = zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
				TimeKey:      "ts",
				LevelKey:     "lvl",
				MessageKey:   "message",
				CallerKey:    "caller",
				EncodeLevel:  zapcore.CapitalLevelEncoder,
				EncodeTime:   zapcore.RFC3339TimeEncoder,
				EncodeCaller: zapcore.ShortCallerEncoder,
			}),
			zapcore.AddSync(os.Stdout),
			zap.NewAtomicLevelAt(zap.InfoLevel),
		),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	).Sugar()
}
