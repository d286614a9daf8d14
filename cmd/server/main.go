package main

import (
	"os"

	"github.com/IT-Nick/promo-quiz/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
