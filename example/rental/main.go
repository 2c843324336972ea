package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	var configPath string
	cmd := &cobra.Command{
		Use:          "rental",
		Short:        "Chat with the equipment rental quoting assistant",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			conf, err := loadConfig(v, configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := newLogger(conf.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return startApp(cmd.Context(), conf, logger)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to a config file (yaml, json or toml)")
	flags.String("pack", "", "fixed pack: conference, party or wedding")
	flags.String("locale", "fr", "reply language: fr or en")
	flags.Int("history", 50, "number of non-system messages kept per conversation")
	flags.Bool("verbose", false, "log the conversation state on stderr")
	for _, name := range []string{"pack", "locale", "history", "verbose"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
	cmd.SetContext(context.Background())
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	conf := zap.NewDevelopmentConfig()
	conf.OutputPaths = []string{"stderr"}
	return conf.Build()
}
