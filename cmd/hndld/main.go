// Command hndld shows the household task list. Swipe a task to the right to mark it done, or to the left to mark it
// as waiting on someone else.
package main

import (
	"fmt"
	"os"

	"hndld.dev/hndld/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "devel"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var (
		cfgFile string
		logger  = zap.NewNop()
	)

	root := &cobra.Command{
		Use:          "hndld",
		Short:        "Household task list with swipe actions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				if err := config.ReadFile(v, cfgFile); err != nil {
					return err
				}
			}
			l, err := newLogger(v.GetBool(config.KeyDebug))
			if err != nil {
				return fmt.Errorf("couldn't set up logging: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				logger.Error("invalid configuration", zap.Error(err))
				return err
			}
			logger.Debug("starting",
				zap.String("version", version),
				zap.Bool("reduced_motion", cfg.ReducedMotion),
				zap.Bool("read_only", cfg.ReadOnly),
				zap.Int("tasks", len(cfg.Tasks)))
			return runApp(cfg, logger)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (YAML, TOML or JSON)")
	flags.Bool("reduced-motion", false, "don't animate rows")
	flags.Bool("accept-mouse", false, "allow swiping rows with the mouse")
	flags.Bool("read-only", false, "show tasks without allowing any actions")
	flags.Bool("debug", false, "enable debug logging")
	mustBind(v, config.KeyReducedMotion, "reduced-motion", root)
	mustBind(v, config.KeyAcceptMouse, "accept-mouse", root)
	mustBind(v, config.KeyReadOnly, "read-only", root)
	mustBind(v, config.KeyDebug, "debug", root)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "hndld", version)
		},
	})
	return root
}

func mustBind(v *viper.Viper, key, flag string, cmd *cobra.Command) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %q: %s", flag, err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
