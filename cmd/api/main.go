package main

import (
	"log/slog"
	"os"

	"github.com/burakdemirtas/credit-purchase-system/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		logger.Error(err.Error())
		os.Exit(1)
	}
}
