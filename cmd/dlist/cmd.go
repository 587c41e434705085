package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mgnsk/dlist"
	"github.com/mgnsk/dlist/internal/replay"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("dlist")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "dlist",
		Short:        "Replay scripted deque operations.",
		SilenceUsage: true,
	}

	fs := rootCmd.PersistentFlags()
	fs.String("backend", dlist.Linked, "deque backend, one of: "+strings.Join(dlist.Backends(), ", "))
	fs.Int("capacity", 0, "preallocated capacity of the arena backend")
	fs.String("log-level", "info", "log level")
	if err := v.BindPFlags(fs); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(newReplayCmd(v))

	return rootCmd
}

func newReplayCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Apply the operations of a script and print their results.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(v.GetString("log-level"))
			if err != nil {
				return err
			}
			defer logger.Sync()

			backend := v.GetString("backend")
			if !slices.Contains(dlist.Backends(), backend) {
				return fmt.Errorf("invalid backend %q", backend)
			}

			capacity := v.GetInt("capacity")
			if capacity < 0 {
				return fmt.Errorf("invalid capacity %d", capacity)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script, %w", err)
			}
			defer f.Close()

			s, err := replay.Parse(f)
			if err != nil {
				return fmt.Errorf("failed to load script %s, %w", args[0], err)
			}

			d, err := replay.NewDeque(s, dlist.WithBackend(backend), dlist.WithCapacity(capacity))
			if err != nil {
				return err
			}

			logger.Debug("replaying script",
				zap.String("file", args[0]),
				zap.String("backend", backend),
				zap.Int("values", len(s.Values)),
				zap.Int("ops", len(s.Ops)),
			)

			return replay.Run(cmd.Context(), d, s, cmd.OutOrStdout(), logger)
		},
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level, %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
