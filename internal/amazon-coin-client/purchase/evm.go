package purchase

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/contracts/bindings/go/amazoncoin"
)

type ClientSource interface {
	ClientFor(ctx context.Context, chainID uint64) (chains.Client, error)
}

// TransactorFunc returns signing options for chainID.
type TransactorFunc func(chainID *big.Int) (*bind.TransactOpts, error)

func KeyTransactor(key *ecdsa.PrivateKey) TransactorFunc {
	return func(chainID *big.Int) (*bind.TransactOpts, error) {
		return bind.NewKeyedTransactorWithChainID(key, chainID)
	}
}

// EVMSubmitter calls purchaseTokens through the contract binding.
type EVMSubmitter struct {
	clients    ClientSource
	transactor TransactorFunc
}

func NewEVMSubmitter(clients ClientSource, transactor TransactorFunc) *EVMSubmitter {
	return &EVMSubmitter{clients: clients, transactor: transactor}
}

func (s *EVMSubmitter) Submit(ctx context.Context, d Dispatch) (Submission, error) {
	ed, ok := d.(EvmDispatch)
	if !ok {
		return Submission{}, errors.Newf("evm submitter cannot send %s dispatch", d.Kind())
	}
	client, err := s.clients.ClientFor(ctx, ed.ChainID)
	if err != nil {
		return Submission{}, err
	}
	if s.transactor == nil {
		return Submission{}, errors.New("no signer configured")
	}
	opts, err := s.transactor(new(big.Int).SetUint64(ed.ChainID))
	if err != nil {
		return Submission{}, errors.Wrap(err, "signer")
	}
	opts.Context = ctx
	opts.Value = ed.Value

	coin, err := amazoncoin.NewAmazonCoinTransactor(ed.Contract, client)
	if err != nil {
		return Submission{}, errors.Wrap(err, "bind token")
	}
	tx, err := coin.PurchaseTokens(opts, ed.Amount)
	if err != nil {
		return Submission{}, errors.WithStack(err)
	}

	return Submission{
		TxID:     tx.Hash().Hex(),
		ChainID:  ed.ChainID,
		Contract: ed.Contract,
		Amount:   ed.Amount,
		tx:       tx,
	}, nil
}

func (s *EVMSubmitter) Confirm(ctx context.Context, sub Submission) (Confirmation, error) {
	if sub.tx == nil {
		return Confirmation{}, errors.New("submission carries no evm transaction")
	}
	client, err := s.clients.ClientFor(ctx, sub.ChainID)
	if err != nil {
		return Confirmation{}, err
	}

	receipt, err := bind.WaitMined(ctx, client, sub.tx)
	if err != nil {
		return Confirmation{}, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return Confirmation{}, errors.Newf("transaction %s reverted", sub.TxID)
	}

	conf := Confirmation{
		TxID:        sub.TxID,
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}

	filterer, err := amazoncoin.NewAmazonCoinFilterer(sub.Contract, client)
	if err != nil {
		return conf, nil
	}
	for _, lg := range receipt.Logs {
		if lg == nil || lg.Address != sub.Contract || len(lg.Topics) == 0 {
			continue
		}
		ev, err := filterer.ParseTokensPurchased(*lg)
		if err != nil {
			continue
		}
		conf.Minted = ev.Amount
		break
	}
	if conf.Minted == nil {
		log.Warn("receipt has no TokensPurchased log", "tx", sub.TxID)
	}
	return conf, nil
}
