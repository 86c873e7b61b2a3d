package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/burakdemirtas/credit-purchase-system/internal/checkout"
	"github.com/burakdemirtas/credit-purchase-system/internal/vcs"
)

var (
	version = vcs.Version()
)

func main() {
	serverUrl := flag.String("server-url", "http://localhost:3000", "Base URL of the credit purchase API")
	printUrl := flag.Bool("print-url", false, "Print the checkout URL instead of opening a browser")
	timeout := flag.Duration("timeout", 0, "Request timeout (0 means none)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var navigator checkout.Navigator = checkout.BrowserNavigator{}
	if *printUrl {
		navigator = checkout.PrintNavigator{W: os.Stdout}
	}

	initiator := checkout.NewInitiator(*serverUrl, navigator, logger)

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()

		initiator = initiator.WithHTTPClient(&http.Client{Timeout: *timeout})
	}

	err := initiator.InitiateCheckout(ctx)
	if err != nil {
		logger.Error("Stripe checkout failed", "error", err)
		os.Exit(1)
	}
}
