package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// Execute запускает CLI
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("CONFIG_PATH")
	if envConfig == "" {
		envConfig = "configs/config.yaml"
	}

	cmd := &cobra.Command{
		Use:           "quizbot",
		Short:         "Telegram promo quiz: bot, web API and promo codes",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.AddCommand(NewStartCmd(&configPath))
	cmd.AddCommand(NewQuestionsCmd(&configPath))
	cmd.AddCommand(NewResultCmd(&configPath))
	return cmd
}
