package verifier

import (
	"context"
	"math/big"

	"github.com/cockroachdb/errors"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/contracts/bindings/go/amazoncoin"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/networks"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/utils"
)

type MintSimulation struct {
	OK          bool   `json:"ok"`
	Amount      string `json:"amount"`
	Cost        string `json:"cost"`
	GasEstimate uint64 `json:"gasEstimate,omitempty"`
	Error       string `json:"error,omitempty"`
}

// SimulateMint dry-runs purchaseTokens(amount) paying the registry price.
func (v *Verifier) SimulateMint(ctx context.Context, entry networks.Entry, amount *big.Int) MintSimulation {
	if amount == nil || amount.Sign() <= 0 {
		return MintSimulation{Amount: "0", Cost: "0", Error: "amount must be positive"}
	}
	if !entry.IsDeployed() {
		return MintSimulation{Amount: amount.String(), Cost: "0", Error: ErrNotDeployed.Error()}
	}
	client, err := v.deps.Clients.ClientFor(ctx, entry.ChainID)
	if err != nil {
		return MintSimulation{Amount: amount.String(), Cost: "0", Error: err.Error()}
	}
	return v.simulate(ctx, entry, client, amount)
}

func (v *Verifier) simulate(ctx context.Context, entry networks.Entry, client chains.Client, amount *big.Int) MintSimulation {
	sim := MintSimulation{Amount: utils.FormatUnits(amount, constants.TokenDecimals, -1), Cost: "0"}

	rate, err := entry.PriceInBaseUnits()
	if err != nil {
		sim.Error = err.Error()
		return sim
	}
	cost, err := ledger.EtherCostBig(amount, rate)
	if err != nil {
		sim.Error = err.Error()
		return sim
	}
	sim.Cost = utils.FormatUnits(cost, constants.TokenDecimals, -1)

	parsed, err := amazoncoin.AmazonCoinMetaData.GetAbi()
	if err != nil {
		sim.Error = err.Error()
		return sim
	}
	data, err := purchaseCalldata(parsed, amount)
	if err != nil {
		sim.Error = err.Error()
		return sim
	}
	msg := ethereum.CallMsg{From: v.cfg.SimulateFrom, To: &entry.Contract, Value: cost, Data: data}

	err = v.read(ctx, "simulate mint on "+entry.Name, func(ctx context.Context) error {
		_, cerr := client.CallContract(ctx, msg, nil)
		return cerr
	})
	if err != nil {
		sim.Error = errors.Wrap(err, "call purchaseTokens").Error()
		return sim
	}

	var gas uint64
	err = v.read(ctx, "estimate mint on "+entry.Name, func(ctx context.Context) error {
		var eerr error
		gas, eerr = client.EstimateGas(ctx, msg)
		return eerr
	})
	if err != nil {
		sim.Error = errors.Wrap(err, "estimate purchaseTokens").Error()
		return sim
	}
	sim.OK = true
	sim.GasEstimate = gas
	return sim
}

func purchaseCalldata(parsed *abi.ABI, amount *big.Int) ([]byte, error) {
	data, err := parsed.Pack("purchaseTokens", amount)
	if err != nil {
		return nil, errors.Wrap(err, "pack purchaseTokens")
	}
	return data, nil
}
