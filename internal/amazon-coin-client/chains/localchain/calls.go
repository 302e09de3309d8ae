package localchain

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
)

// Error(string) selector used by solidity revert payloads.
var revertSelector = []byte{0x08, 0xc3, 0x79, 0xa0}

// RevertError mirrors the JSON-RPC error a node returns for a reverted call.
type RevertError struct {
	Reason string
}

func (e *RevertError) Error() string { return "execution reverted: " + e.Reason }

func (e *RevertError) ErrorCode() int { return 3 }

// ErrorData is the ABI-encoded Error(string) payload, hex encoded.
func (e *RevertError) ErrorData() interface{} {
	stringTy, _ := abi.NewType("string", "", nil)
	packed, err := abi.Arguments{{Type: stringTy}}.Pack(e.Reason)
	if err != nil {
		return nil
	}
	return hexutil.Encode(append(common.CopyBytes(revertSelector), packed...))
}

func revert(err error) error {
	reason := ledger.Reason(err)
	if reason == "" {
		reason = err.Error()
	}
	return &RevertError{Reason: reason}
}

// execute runs one contract call against l and returns the ABI-encoded output.
func (c *Chain) execute(l *ledger.Ledger, from common.Address, value *uint256.Int, data []byte) ([]byte, error) {
	if len(data) == 0 {
		if _, err := l.Receive(from, value); err != nil {
			return nil, revert(err)
		}
		return nil, nil
	}
	if len(data) < 4 {
		return nil, &RevertError{Reason: "function selector was not recognized"}
	}
	method, err := c.abi.MethodById(data[:4])
	if err != nil {
		return nil, &RevertError{Reason: "function selector was not recognized"}
	}
	if !value.IsZero() && !method.IsPayable() {
		return nil, &RevertError{Reason: "non-payable function " + method.Name}
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s arguments", method.Name)
	}

	out, err := call(l, from, value, method.Name, args)
	if err != nil {
		return nil, err
	}
	if len(method.Outputs) == 0 {
		return nil, nil
	}
	return method.Outputs.Pack(out...)
}

func call(l *ledger.Ledger, from common.Address, value *uint256.Int, name string, args []interface{}) ([]interface{}, error) {
	amount := func(i int) (*uint256.Int, error) {
		return toUint256(args[i].(*big.Int))
	}
	address := func(i int) common.Address {
		return args[i].(common.Address)
	}
	mutate := func(err error, out ...interface{}) ([]interface{}, error) {
		if err != nil {
			return nil, revert(err)
		}
		return out, nil
	}

	switch name {
	case "name":
		return []interface{}{l.Name()}, nil
	case "symbol":
		return []interface{}{l.Symbol()}, nil
	case "decimals":
		return []interface{}{l.Decimals()}, nil
	case "totalSupply":
		return []interface{}{l.TotalSupply().ToBig()}, nil
	case "MAX_SUPPLY":
		return []interface{}{l.MaxSupply().ToBig()}, nil
	case "INITIAL_EXCHANGE_RATE":
		return []interface{}{l.InitialExchangeRate().ToBig()}, nil
	case "exchangeRate":
		return []interface{}{l.ExchangeRate().ToBig()}, nil
	case "mintingEnabled":
		return []interface{}{l.MintingEnabled()}, nil
	case "paused":
		return []interface{}{l.Paused()}, nil
	case "owner":
		return []interface{}{l.Owner()}, nil
	case "totalEtherCollected":
		return []interface{}{l.TotalNativeCollected().ToBig()}, nil
	case "getRemainingSupply":
		return []interface{}{l.GetRemainingSupply().ToBig()}, nil
	case "balanceOf":
		return []interface{}{l.BalanceOf(address(0)).ToBig()}, nil
	case "allowance":
		return []interface{}{new(big.Int)}, nil
	case "calculateEtherCost", "calculateTokenAmount":
		x, err := amount(0)
		if err != nil {
			return nil, err
		}
		var v *uint256.Int
		if name == "calculateEtherCost" {
			v, err = l.CalculateEtherCost(x)
		} else {
			v, err = l.CalculateTokenAmount(x)
		}
		if err != nil {
			return nil, revert(err)
		}
		return []interface{}{v.ToBig()}, nil

	case "purchaseTokens":
		x, err := amount(0)
		if err != nil {
			return nil, err
		}
		return mutate(l.PurchaseTokens(from, x, value))
	case "mint":
		x, err := amount(1)
		if err != nil {
			return nil, err
		}
		return mutate(l.Mint(from, address(0), x))
	case "burn":
		x, err := amount(0)
		if err != nil {
			return nil, err
		}
		return mutate(l.Burn(from, x))
	case "transfer":
		x, err := amount(1)
		if err != nil {
			return nil, err
		}
		return mutate(l.Transfer(from, address(0), x), true)
	case "setExchangeRate":
		x, err := amount(0)
		if err != nil {
			return nil, err
		}
		return mutate(l.SetExchangeRate(from, x))
	case "setMintingEnabled":
		return mutate(l.SetMintingEnabled(from, args[0].(bool)))
	case "pause":
		return mutate(l.Pause(from))
	case "unpause":
		return mutate(l.Unpause(from))
	case "withdrawEther":
		x, err := amount(0)
		if err != nil {
			return nil, err
		}
		return mutate(l.WithdrawEther(from, x))
	case "emergencyWithdrawAll":
		return mutate(l.EmergencyWithdrawAll(from))
	case "transferOwnership":
		return mutate(l.TransferOwnership(from, address(0)))
	}
	return nil, &RevertError{Reason: name + " is not supported by the local ledger"}
}

// eventLog encodes a ledger event as the log the deployed contract emits.
func (c *Chain) eventLog(contract common.Address, ev ledger.Event) (*types.Log, error) {
	abiEvent, ok := c.abi.Events[ev.Name]
	if !ok {
		return nil, errors.Newf("localchain: unknown event %q", ev.Name)
	}
	topics := []common.Hash{abiEvent.ID}
	var data []interface{}

	switch ev.Name {
	case ledger.EventTransfer:
		topics = append(topics, addressTopic(ev.From), addressTopic(ev.To))
		data = append(data, ev.Amount.ToBig())
	case ledger.EventTokensPurchased:
		topics = append(topics, addressTopic(ev.To))
		data = append(data, ev.Amount.ToBig(), ev.Payment.ToBig())
	case ledger.EventExchangeRateUpdated:
		data = append(data, ev.OldRate.ToBig(), ev.NewRate.ToBig())
	case ledger.EventMintingStatusChanged:
		data = append(data, ev.Enabled)
	case ledger.EventPaused, ledger.EventUnpaused:
		data = append(data, ev.From)
	case ledger.EventEtherWithdrawn, ledger.EventEmergencyWithdrawal:
		topics = append(topics, addressTopic(ev.To))
		data = append(data, ev.Amount.ToBig())
	case ledger.EventOwnershipTransferred:
		topics = append(topics, addressTopic(ev.From), addressTopic(ev.To))
	}

	packed, err := abiEvent.Inputs.NonIndexed().Pack(data...)
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s", ev.Name)
	}
	return &types.Log{Address: contract, Topics: topics, Data: packed}, nil
}

func addressTopic(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}
