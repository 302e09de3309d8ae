package hedera

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func newMirrorServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/accounts/0.0.1001", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"account":"0.0.1001","evm_address":"0x00000000000000000000000000000000000003e9",
			"balance":{"balance":2500000000,"timestamp":"1700000000.000000000","tokens":[{"token_id":"0.0.5","balance":42}]}}`))
	})
	mux.HandleFunc("/api/v1/accounts/{addr}", func(w http.ResponseWriter, r *http.Request) {
		if !strings.EqualFold(r.PathValue("addr"), "0x5FbDB2315678afecb367f032d93F642f64180aa3") {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"account":"0.0.2002"}`))
	})
	mux.HandleFunc("/api/v1/contracts/{addr}", func(w http.ResponseWriter, r *http.Request) {
		if !strings.EqualFold(r.PathValue("addr"), "0xd995b5323b1Ec4194D1cb2470a9b6383263CE196") {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"contract_id":"0.0.7788","evm_address":"0xd995b5323b1ec4194d1cb2470a9b6383263ce196"}`))
	})
	mux.HandleFunc("/api/v1/accounts/0.0.500", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMirrorQueryBalance(t *testing.T) {
	srv := newMirrorServer(t)
	m := NewMirrorClient(srv.URL+"/", srv.Client())

	bal, err := m.QueryBalance(context.Background(), AccountID{Num: 1001})
	require.NoError(t, err)
	require.Equal(t, "2500000000", bal.Tinybars.String())
	require.Equal(t, "42", bal.Tokens["0.0.5"].String())
	require.Equal(t, "25", HbarString(bal.Tinybars))
}

func TestMirrorLookups(t *testing.T) {
	srv := newMirrorServer(t)
	m := NewMirrorClient(srv.URL, srv.Client())
	ctx := context.Background()

	acct, err := m.AccountIDForEVMAddress(ctx, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"))
	require.NoError(t, err)
	require.Equal(t, "0.0.2002", acct.String())

	id, err := m.ContractIDForEVMAddress(ctx, common.HexToAddress("0xd995b5323b1Ec4194D1cb2470a9b6383263CE196"))
	require.NoError(t, err)
	require.Equal(t, "0.0.7788", id.String())

	// long-zero addresses never hit the network
	id, err = m.ContractIDForEVMAddress(ctx, ContractID{Num: 9}.EVMAddress())
	require.NoError(t, err)
	require.Equal(t, "0.0.9", id.String())
}

func TestMirrorErrors(t *testing.T) {
	srv := newMirrorServer(t)
	m := NewMirrorClient(srv.URL, srv.Client())
	ctx := context.Background()

	_, err := m.QueryBalance(ctx, AccountID{Num: 404})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = m.QueryBalance(ctx, AccountID{Num: 500})
	require.ErrorContains(t, err, "status 502")
}

func TestDefaultMirrorURL(t *testing.T) {
	u, ok := DefaultMirrorURL("Testnet")
	require.True(t, ok)
	require.Equal(t, "https://testnet.mirrornode.hedera.com", u)

	_, ok = DefaultMirrorURL("devnet")
	require.False(t, ok)
}
