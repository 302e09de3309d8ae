// Package history keeps the local purchase log. It is advisory: the chain is
// the source of truth and nothing reads the log back into a purchase.
package history

import (
	"context"
	"math/big"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("history record not found")

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

type Record struct {
	ID        uuid.UUID      `json:"id"`
	ChainID   uint64         `json:"chainId"`
	Network   string         `json:"network"`
	Buyer     common.Address `json:"buyer"`
	Amount    *big.Int       `json:"amount"`
	Payment   *big.Int       `json:"payment"`
	TxID      string         `json:"txId,omitempty"`
	Status    Status         `json:"status"`
	State     string         `json:"state"`
	Dispatch  string         `json:"dispatch"`
	Error     string         `json:"error,omitempty"`
	Minted    *big.Int       `json:"minted,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	ChainID uint64
	Buyer   common.Address
	Status  Status
	Limit   int
}

func (f Filter) match(r Record) bool {
	if f.ChainID != 0 && r.ChainID != f.ChainID {
		return false
	}
	if f.Buyer != (common.Address{}) && r.Buyer != f.Buyer {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	return true
}

// Store persists records keyed by ID. Put replaces an existing record in
// place, keeping its position. List returns newest first.
type Store interface {
	Put(ctx context.Context, r Record) error
	Get(ctx context.Context, id uuid.UUID) (Record, error)
	List(ctx context.Context, f Filter) ([]Record, error)
	Close() error
}

func validate(r Record) error {
	if r.ID == uuid.Nil {
		return errors.New("history record has no id")
	}
	if r.Timestamp.IsZero() {
		return errors.Newf("history record %s has no timestamp", r.ID)
	}
	return nil
}

// newestFirst orders by timestamp, then id, descending.
func newestFirst(rs []Record) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].Timestamp.Equal(rs[j].Timestamp) {
			return rs[i].Timestamp.After(rs[j].Timestamp)
		}
		return rs[i].ID.String() > rs[j].ID.String()
	})
}
