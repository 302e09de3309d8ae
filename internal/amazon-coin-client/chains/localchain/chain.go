// Package localchain is an in-process chain that serves the AmazonCoin
// contract ABI from ledger.Ledger instances. It satisfies chains.Client, so
// the binding, the purchase submitters and the verifier run against it
// unchanged. Gas is estimated but never charged.
package localchain

import (
	"context"
	"math/big"
	"sync"

	"github.com/cockroachdb/errors"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/contracts/bindings/go/amazoncoin"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
)

const (
	transferGas = 21_000
	callGas     = 90_000
)

// placeholder runtime code reported by CodeAt for deployed ledgers
var deployedCode = []byte{0x60, 0x80, 0x60, 0x40, 0x52}

type Chain struct {
	chainID *big.Int
	signer  types.Signer
	abi     *abi.ABI

	mu        sync.Mutex
	contracts map[common.Address]*ledger.Ledger
	funds     map[common.Address]*big.Int
	nonces    map[common.Address]uint64
	receipts  map[common.Hash]*types.Receipt
	held      map[common.Hash]*types.Receipt
	hold      bool
	failures  map[string]error
	logs      []types.Log
	block     uint64
}

func New(chainID uint64) (*Chain, error) {
	parsed, err := amazoncoin.AmazonCoinMetaData.GetAbi()
	if err != nil {
		return nil, errors.Wrap(err, "localchain: parse abi")
	}
	id := new(big.Int).SetUint64(chainID)
	return &Chain{
		chainID:   id,
		signer:    types.LatestSignerForChainID(id),
		abi:       parsed,
		contracts: map[common.Address]*ledger.Ledger{},
		funds:     map[common.Address]*big.Int{},
		nonces:    map[common.Address]uint64{},
		receipts:  map[common.Hash]*types.Receipt{},
		held:      map[common.Hash]*types.Receipt{},
		failures:  map[string]error{},
	}, nil
}

// Deploy places l at addr.
func (c *Chain) Deploy(addr common.Address, l *ledger.Ledger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contracts[addr] = l
}

func (c *Chain) Ledger(addr common.Address) (*ledger.Ledger, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.contracts[addr]
	return l, ok
}

// Fund adds amount wei to the external balance of addr.
func (c *Chain) Fund(addr common.Address, amount *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funds[addr] = new(big.Int).Add(c.fundsLocked(addr), amount)
}

// HoldReceipts keeps receipts of subsequently mined transactions hidden until
// ReleaseReceipts is called, as if the transactions were still pending.
func (c *Chain) HoldReceipts(hold bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hold = hold
}

func (c *Chain) ReleaseReceipts() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for h, r := range c.held {
		c.receipts[h] = r
		delete(c.held, h)
	}
}

// FailMethod makes every eth_call of the named contract method return err.
// A nil err clears the failure.
func (c *Chain) FailMethod(method string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.failures, method)
		return
	}
	c.failures[method] = err
}

func (c *Chain) Close() {}

func (c *Chain) ChainID(ctx context.Context) (*big.Int, error) {
	return new(big.Int).Set(c.chainID), nil
}

func (c *Chain) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return c.PendingCodeAt(ctx, account)
}

func (c *Chain) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.contracts[account]; !ok {
		return nil, nil
	}
	return common.CopyBytes(deployedCode), nil
}

func (c *Chain) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nonces[account], nil
}

func (c *Chain) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (c *Chain) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

// HeaderByNumber reports a pre-London head so bound contracts build legacy
// transactions.
func (c *Chain) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &types.Header{Number: new(big.Int).SetUint64(c.block), GasLimit: 30_000_000}, nil
}

// BalanceAt is the funded balance plus anything a ledger paid out to account.
func (c *Chain) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := new(big.Int).Set(c.fundsLocked(account))
	for _, l := range c.contracts {
		total.Add(total, l.NativeBalance(account).ToBig())
	}
	return total, nil
}

func (c *Chain) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if msg.To == nil {
		return nil, errors.New("localchain: contract creation is not supported")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.contracts[*msg.To]
	if !ok {
		return nil, nil
	}
	if len(msg.Data) >= 4 {
		if method, err := c.abi.MethodById(msg.Data[:4]); err == nil {
			if ferr, failing := c.failures[method.Name]; failing {
				return nil, ferr
			}
		}
	}
	value, err := toUint256(msg.Value)
	if err != nil {
		return nil, err
	}
	return c.execute(l.Clone(), msg.From, value, msg.Data)
}

func (c *Chain) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if msg.To == nil {
		return 0, errors.New("localchain: contract creation is not supported")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if msg.Value != nil && c.fundsLocked(msg.From).Cmp(msg.Value) < 0 {
		return 0, errors.New("insufficient funds for transfer")
	}
	l, ok := c.contracts[*msg.To]
	if !ok {
		return transferGas, nil
	}
	value, err := toUint256(msg.Value)
	if err != nil {
		return 0, err
	}
	if _, err := c.execute(l.Clone(), msg.From, value, msg.Data); err != nil {
		return 0, err
	}
	return callGas, nil
}

// SendTransaction mines tx immediately. A reverted call still produces a
// receipt, with status 0 and no logs.
func (c *Chain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	from, err := types.Sender(c.signer, tx)
	if err != nil {
		return errors.Wrap(err, "invalid sender")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if want := c.nonces[from]; tx.Nonce() != want {
		return errors.Newf("invalid nonce: have %d, want %d", tx.Nonce(), want)
	}
	if c.fundsLocked(from).Cmp(tx.Value()) < 0 {
		return errors.New("insufficient funds for gas * price + value")
	}
	if _, ok := c.receipts[tx.Hash()]; ok {
		return errors.New("already known")
	}
	c.nonces[from]++
	c.block++

	receipt := &types.Receipt{
		Type:              tx.Type(),
		Status:            types.ReceiptStatusSuccessful,
		TxHash:            tx.Hash(),
		GasUsed:           transferGas,
		CumulativeGasUsed: transferGas,
		EffectiveGasPrice: tx.GasPrice(),
		BlockNumber:       new(big.Int).SetUint64(c.block),
		BlockHash:         crypto.Keccak256Hash(new(big.Int).SetUint64(c.block).Bytes()),
	}

	to := tx.To()
	var l *ledger.Ledger
	isContract := false
	if to != nil {
		l, isContract = c.contracts[*to]
	}
	switch {
	case to == nil:
		receipt.Status = types.ReceiptStatusFailed
	case !isContract:
		c.debit(from, tx.Value())
		c.funds[*to] = new(big.Int).Add(c.fundsLocked(*to), tx.Value())
	default:
		receipt.GasUsed, receipt.CumulativeGasUsed = callGas, callGas
		value, err := toUint256(tx.Value())
		if err != nil {
			return err
		}
		before := len(l.Events())
		if _, err := c.execute(l, from, value, tx.Data()); err != nil {
			receipt.Status = types.ReceiptStatusFailed
			break
		}
		c.debit(from, tx.Value())
		for _, ev := range l.Events()[before:] {
			lg, err := c.eventLog(*to, ev)
			if err != nil {
				return err
			}
			lg.BlockNumber = c.block
			lg.BlockHash = receipt.BlockHash
			lg.TxHash = tx.Hash()
			lg.Index = uint(len(receipt.Logs))
			receipt.Logs = append(receipt.Logs, lg)
			c.logs = append(c.logs, *lg)
		}
	}
	if c.hold {
		c.held[tx.Hash()] = receipt
	} else {
		c.receipts[tx.Hash()] = receipt
	}
	return nil
}

func (c *Chain) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return r, nil
}

func (c *Chain) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []types.Log
	for _, lg := range c.logs {
		if q.FromBlock != nil && lg.BlockNumber < q.FromBlock.Uint64() {
			continue
		}
		if q.ToBlock != nil && q.ToBlock.Sign() >= 0 && lg.BlockNumber > q.ToBlock.Uint64() {
			continue
		}
		if len(q.Addresses) > 0 && !containsAddress(q.Addresses, lg.Address) {
			continue
		}
		if !topicsMatch(q.Topics, lg.Topics) {
			continue
		}
		out = append(out, lg)
	}
	return out, nil
}

func (c *Chain) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("localchain: log subscriptions are not supported")
}

func (c *Chain) fundsLocked(addr common.Address) *big.Int {
	if v, ok := c.funds[addr]; ok {
		return v
	}
	return new(big.Int)
}

func (c *Chain) debit(addr common.Address, amount *big.Int) {
	c.funds[addr] = new(big.Int).Sub(c.fundsLocked(addr), amount)
}

func toUint256(v *big.Int) (*uint256.Int, error) {
	if v == nil {
		return new(uint256.Int), nil
	}
	if v.Sign() < 0 {
		return nil, errors.New("negative value")
	}
	out, overflow := uint256.FromBig(v)
	if overflow {
		return nil, errors.New("value exceeds 256 bits")
	}
	return out, nil
}

func containsAddress(list []common.Address, addr common.Address) bool {
	for _, a := range list {
		if a == addr {
			return true
		}
	}
	return false
}

func topicsMatch(filter [][]common.Hash, topics []common.Hash) bool {
	if len(filter) > len(topics) {
		return false
	}
	for i, alternatives := range filter {
		if len(alternatives) == 0 {
			continue
		}
		found := false
		for _, t := range alternatives {
			if t == topics[i] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
