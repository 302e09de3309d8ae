package purchase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/hedera"
)

type DispatchKind string

const (
	DispatchEVM    DispatchKind = "evm"
	DispatchNative DispatchKind = "native"
)

// Dispatch is resolved once per attempt: EvmDispatch or NativeDispatch.
type Dispatch interface {
	Kind() DispatchKind
	isDispatch()
}

// EvmDispatch calls purchaseTokens(Amount) on Contract with Value attached.
type EvmDispatch struct {
	ChainID  uint64
	Contract common.Address
	Amount   *big.Int
	Value    *big.Int
}

func (EvmDispatch) Kind() DispatchKind { return DispatchEVM }
func (EvmDispatch) isDispatch()        {}

// NativeDispatch executes Function on ContractID through the Hedera SDK path.
type NativeDispatch struct {
	Network         string
	ContractID      hedera.ContractID
	Function        string
	Amount          *big.Int
	Gas             uint64
	PayableTinybars *big.Int
}

func (NativeDispatch) Kind() DispatchKind { return DispatchNative }
func (NativeDispatch) isDispatch()        {}
