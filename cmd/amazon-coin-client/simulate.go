package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	amazoncoinclient "github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains/localchain"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/history"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/purchase"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/utils"
)

func refuseDial(ctx context.Context, url string) (chains.Client, error) {
	return nil, errors.Newf("simulation does not dial %s", url)
}

func newSimulateCmd() *cobra.Command {
	var (
		amount string
		funds  string
		direct bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a purchase against an in-process hardhat ledger",
		Long: "Run a purchase against an in-process hardhat ledger with a throwaway key. " +
			"By default the purchase is signed and mined like a real transaction; " +
			"--direct calls the ledger without a transaction.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tokens, err := parseAmount(amount)
			if err != nil {
				return err
			}
			balance, err := utils.ParseUnits(funds, constants.TokenDecimals)
			if err != nil {
				return errors.Wrap(err, "funds")
			}

			chain, err := localchain.New(constants.ChainIDHardhat)
			if err != nil {
				return err
			}
			key, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			ownerKey, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			buyer := crypto.PubkeyToAddress(key.PublicKey)
			chain.Fund(buyer, balance)

			led, err := ledger.New(ledger.DefaultConfig(crypto.PubkeyToAddress(ownerKey.PublicKey)))
			if err != nil {
				return err
			}

			app, err := openApp(ctx, amazoncoinclient.Options{
				Signer:  key,
				Dial:    refuseDial,
				Clients: map[uint64]chains.Client{constants.ChainIDHardhat: chain},
				History: history.NewMemoryStore(),
			})
			if err != nil {
				return err
			}
			defer closeApp(app)

			entry, ok := app.Registry.Lookup(constants.ChainIDHardhat)
			if !ok || !entry.IsDeployed() {
				return errors.New("hardhat network with a contract address is required")
			}
			chain.Deploy(entry.Contract, led)

			router := app.Router
			if direct {
				router, err = purchase.NewRouter(purchase.Config{}, purchase.Deps{
					Registry: app.Registry,
					EVM:      purchase.NewLocalSubmitter(buyer, map[uint64]*ledger.Ledger{entry.ChainID: led}),
					History:  app.History,
					Balances: app.Balances,
					Metrics:  app.Metrics,
				})
				if err != nil {
					return err
				}
			}

			events := make(chan ledger.Event, 16)
			sub := led.SubscribeEvents(events)
			defer sub.Unsubscribe()

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "buyer %s funded with %s ETH\n", buyer.Hex(), funds)
			attempt, err := router.Purchase(ctx, purchase.Request{
				ChainID:       entry.ChainID,
				Amount:        tokens,
				Buyer:         buyer,
				WalletChainID: entry.ChainID,
			})
			perr := printAttempt(out, attempt, err)
			printEvents(out, events)
			printLedger(out, led, buyer)
			return perr
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "1000", "token amount to buy")
	cmd.Flags().StringVar(&funds, "funds", "1", "native balance given to the throwaway buyer")
	cmd.Flags().BoolVar(&direct, "direct", false, "call the ledger directly instead of mining a transaction")
	return cmd
}

func printEvents(w io.Writer, events <-chan ledger.Event) {
	for {
		select {
		case ev := <-events:
			switch ev.Name {
			case ledger.EventTokensPurchased:
				_, _ = fmt.Fprintf(w, "event %s buyer=%s amount=%s payment=%s\n", ev.Name, ev.To.Hex(), ev.Amount.Dec(), ev.Payment.Dec())
			case ledger.EventTransfer:
				_, _ = fmt.Fprintf(w, "event %s from=%s to=%s amount=%s\n", ev.Name, ev.From.Hex(), ev.To.Hex(), ev.Amount.Dec())
			default:
				_, _ = fmt.Fprintf(w, "event %s\n", ev.Name)
			}
		default:
			return
		}
	}
}

func printLedger(w io.Writer, led *ledger.Ledger, buyer common.Address) {
	format := func(v *uint256.Int) string { return utils.FormatUnits(v.ToBig(), constants.TokenDecimals, -1) }
	_, _ = fmt.Fprintf(w, "buyer balance: %s %s\n", format(led.BalanceOf(buyer)), constants.TokenSymbol)
	_, _ = fmt.Fprintf(w, "total supply: %s %s\n", format(led.TotalSupply()), constants.TokenSymbol)
	_, _ = fmt.Fprintf(w, "native collected: %s ETH\n", format(led.TotalNativeCollected()))
}
