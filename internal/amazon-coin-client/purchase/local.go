package purchase

import (
	"context"
	"encoding/binary"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
)

// LocalSubmitter runs purchases directly against in-process ledgers, one per
// chain ID, as caller.
type LocalSubmitter struct {
	caller  common.Address
	ledgers map[uint64]*ledger.Ledger
	seq     atomic.Uint64
}

func NewLocalSubmitter(caller common.Address, ledgers map[uint64]*ledger.Ledger) *LocalSubmitter {
	return &LocalSubmitter{caller: caller, ledgers: ledgers}
}

func (s *LocalSubmitter) Submit(ctx context.Context, d Dispatch) (Submission, error) {
	ed, ok := d.(EvmDispatch)
	if !ok {
		return Submission{}, errors.Newf("local submitter cannot send %s dispatch", d.Kind())
	}
	l, ok := s.ledgers[ed.ChainID]
	if !ok {
		return Submission{}, errors.Newf("no local ledger for chain %d", ed.ChainID)
	}
	amount, overflow := uint256.FromBig(ed.Amount)
	if overflow {
		return Submission{}, ledger.ErrOverflow
	}
	value, overflow := uint256.FromBig(ed.Value)
	if overflow {
		return Submission{}, ledger.ErrOverflow
	}
	if err := l.PurchaseTokens(s.caller, amount, value); err != nil {
		return Submission{}, err
	}

	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], ed.ChainID)
	binary.BigEndian.PutUint64(buf[8:], s.seq.Add(1))
	return Submission{
		TxID:     crypto.Keccak256Hash(s.caller.Bytes(), buf[:]).Hex(),
		ChainID:  ed.ChainID,
		Contract: ed.Contract,
		Amount:   ed.Amount,
	}, nil
}

func (s *LocalSubmitter) Confirm(ctx context.Context, sub Submission) (Confirmation, error) {
	return Confirmation{TxID: sub.TxID, Minted: sub.Amount}, nil
}
