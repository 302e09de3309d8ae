package hedera

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
)

const StatusContractReverted = "CONTRACT_REVERT_EXECUTED"

type BalanceQuerier interface {
	QueryBalance(ctx context.Context, account AccountID) (Balance, error)
}

// RelayClient executes contract calls through the Hedera JSON-RPC relay,
// addressing the contract by its long-zero EVM address. Balances come from
// the mirror node.
type RelayClient struct {
	backend  chains.Client
	auth     *bind.TransactOpts
	abi      abi.ABI
	balances BalanceQuerier
}

func NewRelayClient(backend chains.Client, auth *bind.TransactOpts, contractABI abi.ABI, balances BalanceQuerier) (*RelayClient, error) {
	if backend == nil {
		return nil, errors.New("relay backend is nil")
	}
	if auth == nil {
		return nil, errors.New("relay signer is nil")
	}
	return &RelayClient{backend: backend, auth: auth, abi: contractABI, balances: balances}, nil
}

func (c *RelayClient) ExecuteContract(ctx context.Context, call ContractCall) (Receipt, error) {
	method, ok := c.abi.Methods[call.Function]
	if !ok {
		return Receipt{}, errors.Newf("function %q not in contract abi", call.Function)
	}

	data := make([]byte, 0, len(method.ID)+len(call.Params))
	data = append(data, method.ID...)
	data = append(data, call.Params...)

	opts := *c.auth
	opts.Context = ctx
	opts.GasLimit = call.Gas
	opts.Value = BaseUnitsFromTinybars(call.PayableTinybars)

	bound := bind.NewBoundContract(call.ContractID.EVMAddress(), c.abi, c.backend, c.backend, c.backend)
	tx, err := bound.RawTransact(&opts, data)
	if err != nil {
		return Receipt{}, errors.Wrapf(err, "execute %s on %s", call.Function, call.ContractID)
	}
	log.Info("hedera contract call submitted", "contract_id", call.ContractID.String(), "function", call.Function, "tx", tx.Hash().Hex())

	rcpt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return Receipt{TransactionID: tx.Hash().Hex()}, errors.Wrap(err, "wait for hedera receipt")
	}

	status := StatusSuccess
	if rcpt.Status != types.ReceiptStatusSuccessful {
		status = StatusContractReverted
	}
	return Receipt{TransactionID: tx.Hash().Hex(), Status: status}, nil
}

func (c *RelayClient) QueryBalance(ctx context.Context, account AccountID) (Balance, error) {
	if c.balances == nil {
		return Balance{}, errors.New("no balance source configured")
	}
	return c.balances.QueryBalance(ctx, account)
}
