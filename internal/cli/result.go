package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/IT-Nick/promo-quiz/internal/app"
	"github.com/IT-Nick/promo-quiz/internal/infra/config"
	"github.com/IT-Nick/promo-quiz/internal/infra/logger"
)

// NewResultCmd команда вывода сохраненного результата чата
func NewResultCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "result <chat-id>",
		Short: "Print the last stored quiz result of a chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid chat id %q: %w", args[0], err)
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

			record, err := app.LookupResult(cmd.Context(), cfg, log, chatID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "chat %d: %d/%d correct, submitted %s\n",
				record.ChatID, record.CorrectCount, record.Total, record.SubmittedAt.Format(time.RFC3339))
			if record.PromoCode != "" {
				fmt.Fprintf(out, "promo code: %s\n", record.PromoCode)
			}
			return nil
		},
	}
}
