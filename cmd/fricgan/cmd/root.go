package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rawbytedev/fricgan/codec"
	"github.com/rawbytedev/fricgan/config"
	"github.com/rawbytedev/fricgan/stream"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type registryKey struct{}

// NewRootCmd builds the fricgan command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fricgan",
		Short: "fricgan - native-order binary codec",
		Long: `fricgan encodes and decodes fixed-width scalars, variable-length
quantities and length-prefixed strings in the fricgan wire layout.

Examples:
  fricgan encode vlq32 300
  fricgan decode u16 2c01
  fricgan --checked decode vlq64 8100`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			stream.SetLogger(logger)

			reg, err := codec.FromConfig(cfg, codec.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("failed to build registry: %w", err)
			}
			logger.Debug("registry ready",
				zap.Bool("checked", reg.Checked()),
				zap.Stringer("features", reg.Features()))
			cmd.SetContext(context.WithValue(cmd.Context(), registryKey{}, reg))
			return nil
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "path to a .toml or .yaml config file")
	root.PersistentFlags().Bool("checked", false, "validate buffers and reject non-canonical input")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newCapsCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("checked") {
		cfg.Checked, _ = cmd.Flags().GetBool("checked")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = true
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func registry(cmd *cobra.Command) (*codec.Registry, error) {
	reg, ok := cmd.Context().Value(registryKey{}).(*codec.Registry)
	if !ok {
		return nil, fmt.Errorf("registry not found in context")
	}
	return reg, nil
}

func capability(reg *codec.Registry, name string) (config.Capability, error) {
	c, err := config.ParseCapability(name)
	if err != nil {
		return 0, err
	}
	if !reg.Enabled(c) {
		return 0, fmt.Errorf("%w: %s", codec.ErrDisabled, c)
	}
	return c, nil
}
