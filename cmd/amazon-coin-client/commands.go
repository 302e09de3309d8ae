package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	amazoncoinclient "github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/history"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/purchase"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/utils"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/verifier"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseAmount(s string) (*big.Int, error) {
	amount, err := utils.ParseUnits(s, constants.TokenDecimals)
	if err != nil || amount.Sign() <= 0 {
		return nil, purchase.ErrInvalidAmount
	}
	return amount, nil
}

func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List configured networks and their token deployment",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), amazoncoinclient.Options{History: history.NewMemoryStore()})
			if err != nil {
				return err
			}
			defer closeApp(app)

			fallback := app.Registry.Fallback().ChainID
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "CHAIN ID\tNETWORK\tCLASS\tCONTRACT\tPRICE\tEXPLORER")
			for _, e := range app.Registry.List() {
				contract := "not deployed"
				if e.IsDeployed() {
					contract = e.Contract.Hex()
				}
				name := e.DisplayName
				if e.ChainID == fallback {
					name += " (default)"
				}
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s %s\t%s\n",
					e.ChainID, name, e.Class, contract, e.TokenPrice.String(), e.NativeSymbol, app.Registry.ExplorerAddressURL(e.ChainID, e.Contract))
			}
			return tw.Flush()
		},
	}
}

func newQuoteCmd() *cobra.Command {
	var (
		chainID uint64
		amount  string
	)
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a token purchase in native currency",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := parseAmount(amount)
			if err != nil {
				return err
			}
			app, err := openApp(cmd.Context(), amazoncoinclient.Options{History: history.NewMemoryStore()})
			if err != nil {
				return err
			}
			defer closeApp(app)

			q, err := app.Router.Quote(chainID, tokens)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if q.FellBack {
				_, _ = fmt.Fprintf(out, "chain %d is not configured, using %s\n", chainID, q.Entry.DisplayName)
			}
			_, _ = fmt.Fprintf(out, "%s %s on %s costs %s\n",
				utils.FormatUnits(q.Amount, constants.TokenDecimals, -1), constants.TokenSymbol, q.Entry.DisplayName, q.Display)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&chainID, "chain-id", constants.DefaultFallbackChainID, "network chain id")
	cmd.Flags().StringVar(&amount, "amount", "", "token amount, e.g. 1000 or 0.5")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newPurchaseCmd() *cobra.Command {
	var (
		chainID       uint64
		walletChainID uint64
		amount        string
		native        bool
	)
	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Buy tokens with native currency",
		Long: "Buy tokens with native currency. The signing key is read from " +
			constants.PrivateKeyEnv + " or prompted for without echo.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := parseAmount(amount)
			if err != nil {
				return err
			}
			key, err := loadSigner()
			if err != nil {
				return err
			}
			app, err := openApp(cmd.Context(), amazoncoinclient.Options{Signer: key})
			if err != nil {
				return err
			}
			defer closeApp(app)

			if walletChainID == 0 {
				walletChainID = chainID
			}
			attempt, err := app.Router.Purchase(cmd.Context(), purchase.Request{
				ChainID:       chainID,
				Amount:        tokens,
				Buyer:         app.Buyer(),
				WalletChainID: walletChainID,
				PreferNative:  native,
			})
			return printAttempt(cmd.OutOrStdout(), attempt, err)
		},
	}
	cmd.Flags().Uint64Var(&chainID, "chain-id", constants.DefaultFallbackChainID, "network chain id")
	cmd.Flags().Uint64Var(&walletChainID, "wallet-chain-id", 0, "chain the wallet is connected to (default: --chain-id)")
	cmd.Flags().StringVar(&amount, "amount", "", "token amount, e.g. 1000 or 0.5")
	cmd.Flags().BoolVar(&native, "native", false, "use a Hedera ContractExecute transaction on Hedera networks")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func printAttempt(w io.Writer, a *purchase.Attempt, err error) error {
	entry := a.Entry()
	states := make([]string, 0, len(a.States()))
	for _, s := range a.States() {
		states = append(states, string(s))
	}
	_, _ = fmt.Fprintf(w, "attempt %s: %s\n", a.ID, strings.Join(states, " -> "))
	if p := a.Payment(); p != nil {
		_, _ = fmt.Fprintf(w, "payment: %s %s\n", utils.FormatUnits(p, constants.TokenDecimals, -1), entry.NativeSymbol)
	}
	if tx := a.TxID(); tx != "" {
		_, _ = fmt.Fprintf(w, "transaction: %s\n", tx)
		if url := entry.TxURL(tx); url != "" {
			_, _ = fmt.Fprintf(w, "explorer: %s\n", url)
		}
	}
	if err != nil {
		return errors.Wrap(err, string(purchase.Classify(err)))
	}
	if conf := a.Receipt(); conf != nil {
		_, _ = fmt.Fprintf(w, "confirmed in block %d\n", conf.BlockNumber)
	}
	return nil
}

func newVerifyCmd() *cobra.Command {
	var (
		asJSON   bool
		simulate bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Audit the deployed token on every network",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if simulate {
				cfg.Verifier.SimulateMint = true
			}
			app, err := amazoncoinclient.NewApp(cmd.Context(), cfg, amazoncoinclient.Options{History: history.NewMemoryStore()})
			if err != nil {
				return err
			}
			defer closeApp(app)

			report := app.Verifier.VerifyAll(cmd.Context())
			if asJSON {
				return printJSON(cmd.OutOrStdout(), report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&simulate, "simulate-mint", false, "dry-run purchaseTokens on each verified network")
	return cmd
}

func printReport(w io.Writer, r verifier.Report) {
	for _, n := range r.Networks {
		status := "ok"
		if !n.Verified() {
			status = "FAILED"
		}
		_, _ = fmt.Fprintf(w, "%s (%d) %s: %s\n", n.DisplayName, n.ChainID, n.Address, status)
		if n.Error != "" {
			_, _ = fmt.Fprintf(w, "  error: %s\n", n.Error)
		}
		for _, field := range verifier.Fields {
			f, ok := n.Fields[field]
			if !ok {
				continue
			}
			line := f.Value
			if !f.OK {
				line += " (" + f.Error + ")"
			}
			_, _ = fmt.Fprintf(w, "  %-15s %s\n", field, line)
		}
		for _, m := range n.Mismatches {
			_, _ = fmt.Fprintf(w, "  mismatch %s: expected %s, got %s\n", m.Field, m.Expected, m.Actual)
		}
		if s := n.Simulation; s != nil {
			if s.OK {
				_, _ = fmt.Fprintf(w, "  mint simulation: %s tokens for %s, gas %d\n", s.Amount, s.Cost, s.GasEstimate)
			} else {
				_, _ = fmt.Fprintf(w, "  mint simulation failed: %s\n", s.Error)
			}
		}
	}
	for _, s := range r.Skipped {
		_, _ = fmt.Fprintf(w, "%s (%d): skipped, %s\n", s.Network, s.ChainID, s.Reason)
	}
	_, _ = fmt.Fprintf(w, "\nnetworks: %d, deployed: %d, failed: %d, status: %s\n",
		r.Summary.TotalNetworks, r.Summary.DeployedContracts, r.Summary.FailedVerifications, r.Summary.OverallStatus)
	for _, rec := range r.Recommendations {
		_, _ = fmt.Fprintf(w, "- %s\n", rec)
	}
}

func newDeploymentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deployments",
		Short: "Check deployment records against configured networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd.Context(), amazoncoinclient.Options{History: history.NewMemoryStore()})
			if err != nil {
				return err
			}
			defer closeApp(app)

			out := cmd.OutOrStdout()
			issues := app.Verifier.ValidateDeployments(app.Records)
			if len(issues) == 0 {
				_, _ = fmt.Fprintf(out, "%d deployment record(s) in %s are consistent\n", len(app.Records), app.Deployments.Dir())
				return nil
			}
			for _, issue := range issues {
				_, _ = fmt.Fprintf(out, "%s: %s\n", issue.Network, issue.Problem)
			}
			return errors.Newf("%d deployment issue(s)", len(issues))
		},
	}
}

func newHistoryCmd() *cobra.Command {
	var (
		buyer   string
		chainID uint64
		status  string
		limit   int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded purchase attempts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := history.Filter{ChainID: chainID, Status: history.Status(status), Limit: limit}
			if buyer != "" {
				if !common.IsHexAddress(buyer) {
					return errors.Newf("invalid buyer address %q", buyer)
				}
				f.Buyer = common.HexToAddress(buyer)
			}

			app, err := openApp(cmd.Context(), amazoncoinclient.Options{})
			if err != nil {
				return err
			}
			defer closeApp(app)

			recs, err := app.History.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "TIME\tNETWORK\tAMOUNT\tSTATUS\tTX\tERROR")
			for _, r := range recs {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), r.Network,
					utils.FormatUnits(r.Amount, constants.TokenDecimals, -1), r.Status, r.TxID, r.Error)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&buyer, "buyer", "", "only show this buyer")
	cmd.Flags().Uint64Var(&chainID, "chain-id", 0, "only show this chain")
	cmd.Flags().StringVar(&status, "status", "", "pending, success or failed")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum records")
	return cmd
}

func newBalanceCmd() *cobra.Command {
	var (
		chainID uint64
		account string
	)
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the token and native balance of an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !common.IsHexAddress(account) {
				return errors.Newf("invalid account address %q", account)
			}
			addr := common.HexToAddress(account)

			app, err := openApp(cmd.Context(), amazoncoinclient.Options{History: history.NewMemoryStore()})
			if err != nil {
				return err
			}
			defer closeApp(app)

			entry, _ := app.Registry.Resolve(chainID)
			b, err := app.Balances.Refresh(cmd.Context(), entry, addr)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s on %s\n", addr.Hex(), entry.DisplayName)
			_, _ = fmt.Fprintf(out, "native: %s %s\n", utils.FormatUnits(b.Native, constants.TokenDecimals, -1), entry.NativeSymbol)
			if !entry.IsDeployed() {
				_, _ = fmt.Fprintln(out, "token: not deployed on this network")
				return nil
			}
			asset, err := app.Assets.FetchAsset(cmd.Context(), entry.ChainID, entry.NativeSymbol, entry.Contract)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "token: %s %s (%s)\n", utils.FormatUnits(b.Token, int32(asset.Decimals), -1), asset.Symbol, asset.Name)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&chainID, "chain-id", constants.DefaultFallbackChainID, "network chain id")
	cmd.Flags().StringVar(&account, "account", "", "account address")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}
