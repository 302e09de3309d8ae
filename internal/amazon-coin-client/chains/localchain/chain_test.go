package localchain

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/contracts/bindings/go/amazoncoin"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
)

const testChainID = 31337

var (
	owner    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	contract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
)

func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

type fixture struct {
	chain *Chain
	led   *ledger.Ledger
	coin  *amazoncoin.AmazonCoin
	key   *ecdsa.PrivateKey
	buyer common.Address
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	chain, err := New(testChainID)
	require.NoError(t, err)
	led, err := ledger.New(ledger.DefaultConfig(owner))
	require.NoError(t, err)
	chain.Deploy(contract, led)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	buyer := crypto.PubkeyToAddress(key.PublicKey)
	chain.Fund(buyer, tokens(1))

	coin, err := amazoncoin.NewAmazonCoin(contract, chain)
	require.NoError(t, err)
	return fixture{chain: chain, led: led, coin: coin, key: key, buyer: buyer}
}

func (f fixture) auth(t *testing.T) *bind.TransactOpts {
	t.Helper()
	auth, err := bind.NewKeyedTransactorWithChainID(f.key, big.NewInt(testChainID))
	require.NoError(t, err)
	return auth
}

func TestViewsThroughBinding(t *testing.T) {
	f := newFixture(t)
	opts := &bind.CallOpts{Context: context.Background()}

	name, err := f.coin.Name(opts)
	require.NoError(t, err)
	require.Equal(t, "Amazon Coin", name)

	decimals, err := f.coin.Decimals(opts)
	require.NoError(t, err)
	require.Equal(t, uint8(18), decimals)

	supply, err := f.coin.TotalSupply(opts)
	require.NoError(t, err)
	require.Equal(t, "100000000000000000000000000", supply.String())

	rate, err := f.coin.ExchangeRate(opts)
	require.NoError(t, err)
	require.Equal(t, "100000000000000", rate.String())

	got, err := f.coin.Owner(opts)
	require.NoError(t, err)
	require.Equal(t, owner, got)

	cost, err := f.coin.CalculateEtherCost(opts, tokens(1000))
	require.NoError(t, err)
	require.Equal(t, "100000000000000000", cost.String())
}

func TestPurchaseMinesReceiptWithEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	auth := f.auth(t)
	auth.Value = big.NewInt(1e17)
	tx, err := f.coin.PurchaseTokens(auth, tokens(1000))
	require.NoError(t, err)
	require.Equal(t, uint8(types.LegacyTxType), tx.Type())

	receipt, err := bind.WaitMined(ctx, f.chain, tx)
	require.NoError(t, err)
	require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	require.Len(t, receipt.Logs, 2)

	ev, err := f.coin.ParseTokensPurchased(*receipt.Logs[1])
	require.NoError(t, err)
	require.Equal(t, f.buyer, ev.Buyer)
	require.Equal(t, tokens(1000).String(), ev.Amount.String())
	require.Equal(t, "100000000000000000", ev.Cost.String())

	require.Equal(t, tokens(1000).String(), f.led.BalanceOf(f.buyer).Dec())
	native, err := f.chain.BalanceAt(ctx, f.buyer, nil)
	require.NoError(t, err)
	require.Equal(t, "900000000000000000", native.String())

	it, err := f.coin.FilterTokensPurchased(&bind.FilterOpts{Context: ctx}, []common.Address{f.buyer})
	require.NoError(t, err)
	defer it.Close()
	require.True(t, it.Next())
	require.Equal(t, tx.Hash(), it.Event.Raw.TxHash)
	require.False(t, it.Next())
}

func TestWrongPaymentFailsEstimation(t *testing.T) {
	f := newFixture(t)

	auth := f.auth(t)
	auth.Value = big.NewInt(1)
	_, err := f.coin.PurchaseTokens(auth, tokens(1000))
	require.ErrorContains(t, err, ledger.ErrIncorrectPayment.Error())
	require.True(t, f.led.BalanceOf(f.buyer).IsZero())

	nonce, err := f.chain.PendingNonceAt(context.Background(), f.buyer)
	require.NoError(t, err)
	require.Zero(t, nonce)
}

func TestRevertedTransactionMinesWithFailedStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	auth := f.auth(t)
	auth.Value = big.NewInt(1)
	auth.GasLimit = callGas
	tx, err := f.coin.PurchaseTokens(auth, tokens(1000))
	require.NoError(t, err)

	receipt, err := bind.WaitMined(ctx, f.chain, tx)
	require.NoError(t, err)
	require.Equal(t, types.ReceiptStatusFailed, receipt.Status)
	require.Empty(t, receipt.Logs)

	native, err := f.chain.BalanceAt(ctx, f.buyer, nil)
	require.NoError(t, err)
	require.Equal(t, tokens(1).String(), native.String())
	require.True(t, f.led.TotalNativeCollected().IsZero())
}

func TestInsufficientFunds(t *testing.T) {
	f := newFixture(t)

	auth := f.auth(t)
	auth.Value = tokens(2)
	_, err := f.coin.PurchaseTokens(auth, tokens(20_000))
	require.ErrorContains(t, err, "insufficient funds")
}

func TestHeldReceiptsLookPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.chain.HoldReceipts(true)

	auth := f.auth(t)
	auth.Value = big.NewInt(1e17)
	tx, err := f.coin.PurchaseTokens(auth, tokens(1000))
	require.NoError(t, err)

	_, err = f.chain.TransactionReceipt(ctx, tx.Hash())
	require.ErrorIs(t, err, ethereum.NotFound)

	f.chain.ReleaseReceipts()
	receipt, err := f.chain.TransactionReceipt(ctx, tx.Hash())
	require.NoError(t, err)
	require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
}

func TestPlainTransferHitsReceive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	signer := types.LatestSignerForChainID(big.NewInt(testChainID))
	tx, err := types.SignTx(types.NewTransaction(0, contract, big.NewInt(1e17), callGas, big.NewInt(1), nil), signer, f.key)
	require.NoError(t, err)
	require.NoError(t, f.chain.SendTransaction(ctx, tx))

	receipt, err := f.chain.TransactionReceipt(ctx, tx.Hash())
	require.NoError(t, err)
	require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	require.Equal(t, tokens(1000).String(), f.led.BalanceOf(f.buyer).Dec())

	// replaying the same nonce is rejected
	require.ErrorContains(t, f.chain.SendTransaction(ctx, tx), "invalid nonce")
}

func TestFailMethodIsolatesReads(t *testing.T) {
	f := newFixture(t)
	opts := &bind.CallOpts{Context: context.Background()}
	f.chain.FailMethod("symbol", errors.New("rpc unavailable"))

	_, err := f.coin.Symbol(opts)
	require.ErrorContains(t, err, "rpc unavailable")
	_, err = f.coin.Name(opts)
	require.NoError(t, err)

	f.chain.FailMethod("symbol", nil)
	symbol, err := f.coin.Symbol(opts)
	require.NoError(t, err)
	require.Equal(t, "AC", symbol)
}

func TestMissingContractHasNoCode(t *testing.T) {
	f := newFixture(t)
	other, err := amazoncoin.NewAmazonCoinCaller(common.HexToAddress("0x1412D9A28bAAC801777581C28060B2C821e61823"), f.chain)
	require.NoError(t, err)

	_, err = other.Name(&bind.CallOpts{Context: context.Background()})
	require.ErrorIs(t, err, bind.ErrNoCode)
}

func TestRevertErrorData(t *testing.T) {
	err := revert(ledger.ErrMintingDisabled)
	require.EqualError(t, err, "execution reverted: AmazonCoin: Minting is currently disabled")

	var rerr *RevertError
	require.True(t, errors.As(err, &rerr))
	data, ok := rerr.ErrorData().(string)
	require.True(t, ok)
	reason, uerr := abi.UnpackRevert(hexutil.MustDecode(data))
	require.NoError(t, uerr)
	require.Equal(t, ledger.ErrMintingDisabled.Error(), reason)
}
