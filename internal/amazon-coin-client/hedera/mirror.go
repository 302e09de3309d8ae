package hedera

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
)

var ErrNotFound = errors.New("mirror node: entity not found")

var defaultMirrorNodes = map[string]string{
	NetworkTestnet:    "https://testnet.mirrornode.hedera.com",
	NetworkMainnet:    "https://mainnet.mirrornode.hedera.com",
	NetworkPreviewnet: "https://previewnet.mirrornode.hedera.com",
}

func DefaultMirrorURL(network string) (string, bool) {
	u, ok := defaultMirrorNodes[strings.ToLower(network)]
	return u, ok
}

// MirrorClient reads account and contract state from the mirror node REST
// API. It cannot execute transactions.
type MirrorClient struct {
	baseURL string
	http    *http.Client
}

func NewMirrorClient(baseURL string, httpClient *http.Client) *MirrorClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &MirrorClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type mirrorAccount struct {
	Account    string `json:"account"`
	EVMAddress string `json:"evm_address"`
	Balance    struct {
		Balance int64 `json:"balance"`
		Tokens  []struct {
			TokenID string `json:"token_id"`
			Balance int64  `json:"balance"`
		} `json:"tokens"`
	} `json:"balance"`
}

type mirrorContract struct {
	ContractID string `json:"contract_id"`
	EVMAddress string `json:"evm_address"`
}

func (m *MirrorClient) QueryBalance(ctx context.Context, account AccountID) (Balance, error) {
	var out mirrorAccount
	if err := m.get(ctx, "/api/v1/accounts/"+account.String(), &out); err != nil {
		return Balance{}, err
	}

	bal := Balance{
		Account:  account,
		Tinybars: big.NewInt(out.Balance.Balance),
		Tokens:   make(map[string]*big.Int, len(out.Balance.Tokens)),
	}
	for _, t := range out.Balance.Tokens {
		bal.Tokens[t.TokenID] = big.NewInt(t.Balance)
	}
	return bal, nil
}

func (m *MirrorClient) AccountIDForEVMAddress(ctx context.Context, addr common.Address) (AccountID, error) {
	var out mirrorAccount
	if err := m.get(ctx, "/api/v1/accounts/"+addr.Hex(), &out); err != nil {
		return AccountID{}, err
	}
	return ParseAccountID(out.Account)
}

// ContractIDForEVMAddress decodes long-zero addresses locally and asks the
// mirror node for everything else.
func (m *MirrorClient) ContractIDForEVMAddress(ctx context.Context, addr common.Address) (ContractID, error) {
	if id, ok := ContractIDFromEVMAddress(addr); ok {
		return id, nil
	}

	var out mirrorContract
	if err := m.get(ctx, "/api/v1/contracts/"+addr.Hex(), &out); err != nil {
		return ContractID{}, err
	}
	return ParseContractID(out.ContractID)
}

func (m *MirrorClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "build mirror request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "mirror GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(ErrNotFound, "GET %s", path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Newf("mirror GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode mirror response %s", path)
	}
	return nil
}
