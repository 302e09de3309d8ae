package purchase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/hedera"
)

// Submitter sends a dispatch and waits for its outcome. Submit must not
// retry: a transaction it reports as sent is never sent again.
type Submitter interface {
	Submit(ctx context.Context, d Dispatch) (Submission, error)
	Confirm(ctx context.Context, s Submission) (Confirmation, error)
}

// Submission identifies a sent transaction.
type Submission struct {
	TxID     string
	ChainID  uint64
	Contract common.Address
	Amount   *big.Int

	tx     *types.Transaction
	native *hedera.Receipt
}

type Confirmation struct {
	TxID        string
	BlockNumber uint64
	GasUsed     uint64
	// Minted is the amount reported by TokensPurchased, nil when the
	// receipt carries no logs.
	Minted *big.Int
}
