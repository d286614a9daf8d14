package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IT-Nick/promo-quiz/internal/app"
	"github.com/IT-Nick/promo-quiz/internal/domain/questions/repository"
	"github.com/IT-Nick/promo-quiz/internal/infra/config"
	"github.com/IT-Nick/promo-quiz/internal/infra/logger"
)

// NewQuestionsCmd команда загрузки и проверки банка вопросов
func NewQuestionsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Load the question bank and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

			questions, err := app.LoadQuestions(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			if err := repository.Validate(questions); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d questions\n", len(questions))
			for i, q := range questions {
				fmt.Fprintf(out, "%2d. %s (%d options, answer %d)\n", i+1, q.Text, len(q.Options), q.AnswerIndex)
			}
			return nil
		},
	}
}
