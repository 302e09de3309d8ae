package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantumauth-io/quantum-go-utils/log"
	"github.com/spf13/cobra"

	clientconfig "github.com/amazoncoin-io/amazon-coin-client/cmd/amazon-coin-client/config"
	amazoncoinclient "github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var configPath string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal("command failed", "error", err.Error())
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "amazon-coin-client",
		Short:         "Buy and audit Amazon Coin across EVM and Hedera networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: search ~/.config/amazon-coin-client, ~/config, .)")

	root.AddCommand(
		newNetworksCmd(),
		newQuoteCmd(),
		newPurchaseCmd(),
		newVerifyCmd(),
		newDeploymentsCmd(),
		newHistoryCmd(),
		newBalanceCmd(),
		newSimulateCmd(),
		newServeMetricsCmd(),
	)
	return root
}

func buildInfo() amazoncoinclient.BuildInfo {
	return amazoncoinclient.BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate}
}

func loadConfig() (*clientconfig.Config, error) {
	if configPath != "" {
		return clientconfig.LoadFile(configPath)
	}
	return clientconfig.Load()
}

// openApp loads config and wires the application for one command.
func openApp(ctx context.Context, opts amazoncoinclient.Options) (*amazoncoinclient.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	b := buildInfo()
	log.Info("amazon-coin-client",
		"version", b.Version,
		"commit", b.Commit,
		"build_date", b.BuildDate,
	)
	return amazoncoinclient.NewApp(ctx, cfg, opts)
}

func closeApp(app *amazoncoinclient.App) {
	if err := app.Close(); err != nil {
		log.Error("app close failed", "error", err.Error())
	}
}
