package history

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob   = common.HexToAddress("0x00000000000000000000000000000000000000b0")
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	db, err := OpenLevelDB(filepath.Join(t.TempDir(), "history"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return map[string]Store{
		"memory":  NewMemoryStore(),
		"leveldb": db,
	}
}

func record(chainID uint64, buyer common.Address, at time.Time) Record {
	return Record{
		ID:        uuid.New(),
		ChainID:   chainID,
		Network:   "sepolia",
		Buyer:     buyer,
		Amount:    big.NewInt(1000),
		Payment:   big.NewInt(1),
		Status:    StatusPending,
		State:     "submitting",
		Dispatch:  "evm",
		Timestamp: at,
	}
}

func TestStoreOrderingAndFilters(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := record(11155111, alice, base)
			second := record(296, bob, base.Add(time.Minute))
			third := record(11155111, bob, base.Add(2*time.Minute))
			for _, r := range []Record{second, third, first} {
				require.NoError(t, s.Put(ctx, r))
			}

			all, err := s.List(ctx, Filter{})
			require.NoError(t, err)
			require.Len(t, all, 3)
			require.Equal(t, []uuid.UUID{third.ID, second.ID, first.ID}, ids(all))

			onSepolia, err := s.List(ctx, Filter{ChainID: 11155111})
			require.NoError(t, err)
			require.Equal(t, []uuid.UUID{third.ID, first.ID}, ids(onSepolia))

			bobs, err := s.List(ctx, Filter{Buyer: bob, Limit: 1})
			require.NoError(t, err)
			require.Equal(t, []uuid.UUID{third.ID}, ids(bobs))
		})
	}
}

func TestStoreUpdateKeepsPosition(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := record(296, alice, base)
			second := record(296, alice, base.Add(time.Second))
			require.NoError(t, s.Put(ctx, first))
			require.NoError(t, s.Put(ctx, second))

			first.Status = StatusSuccess
			first.State = "succeeded"
			first.TxID = "0xabc"
			first.Minted = big.NewInt(1000)
			first.Timestamp = base.Add(time.Hour)
			require.NoError(t, s.Put(ctx, first))

			got, err := s.Get(ctx, first.ID)
			require.NoError(t, err)
			require.Equal(t, StatusSuccess, got.Status)
			require.Equal(t, "0xabc", got.TxID)
			require.Equal(t, "1000", got.Minted.String())
			require.True(t, got.Timestamp.Equal(base))

			all, err := s.List(ctx, Filter{})
			require.NoError(t, err)
			require.Equal(t, []uuid.UUID{second.ID, first.ID}, ids(all))

			succeeded, err := s.List(ctx, Filter{Status: StatusSuccess})
			require.NoError(t, err)
			require.Len(t, succeeded, 1)
		})
	}
}

func TestStoreErrors(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := s.Get(ctx, uuid.New())
			require.ErrorIs(t, err, ErrNotFound)

			require.Error(t, s.Put(ctx, Record{}))
			require.Error(t, s.Put(ctx, Record{ID: uuid.New()}))
		})
	}
}

func TestLevelDBSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	ctx := context.Background()

	db, err := OpenLevelDB(path)
	require.NoError(t, err)
	r := record(31337, alice, time.Now().UTC())
	require.NoError(t, db.Put(ctx, r))
	require.NoError(t, db.Close())

	db, err = OpenLevelDB(path)
	require.NoError(t, err)
	defer db.Close()
	got, err := db.Get(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, r.Buyer, got.Buyer)
	require.Equal(t, "1000", got.Amount.String())
}

func ids(rs []Record) []uuid.UUID {
	out := make([]uuid.UUID, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}
