package purchase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/contracts/bindings/go/amazoncoin"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/hedera"
)

type NativeClients interface {
	ClientFor(ctx context.Context, network string) (hedera.Client, error)
}

// NativeSubmitter executes the purchase as a Hedera ContractExecute
// transaction. The SDK returns the final receipt, so Confirm only checks it.
type NativeSubmitter struct {
	clients NativeClients
	abi     *abi.ABI
}

func NewNativeSubmitter(clients NativeClients) (*NativeSubmitter, error) {
	parsed, err := amazoncoin.AmazonCoinMetaData.GetAbi()
	if err != nil {
		return nil, errors.Wrap(err, "parse amazoncoin abi")
	}
	return &NativeSubmitter{clients: clients, abi: parsed}, nil
}

func (s *NativeSubmitter) Submit(ctx context.Context, d Dispatch) (Submission, error) {
	nd, ok := d.(NativeDispatch)
	if !ok {
		return Submission{}, errors.Newf("native submitter cannot send %s dispatch", d.Kind())
	}
	method, ok := s.abi.Methods[nd.Function]
	if !ok {
		return Submission{}, errors.Newf("function %q not in contract abi", nd.Function)
	}
	params, err := method.Inputs.Pack(nd.Amount)
	if err != nil {
		return Submission{}, errors.Wrapf(err, "encode %s params", nd.Function)
	}

	client, err := s.clients.ClientFor(ctx, nd.Network)
	if err != nil {
		return Submission{}, err
	}
	receipt, err := client.ExecuteContract(ctx, hedera.ContractCall{
		ContractID:      nd.ContractID,
		Function:        nd.Function,
		Params:          params,
		Gas:             nd.Gas,
		PayableTinybars: nd.PayableTinybars,
	})
	if err != nil {
		return Submission{}, errors.WithStack(err)
	}

	return Submission{
		TxID:     receipt.TransactionID,
		Contract: nd.ContractID.EVMAddress(),
		Amount:   nd.Amount,
		native:   &receipt,
	}, nil
}

func (s *NativeSubmitter) Confirm(ctx context.Context, sub Submission) (Confirmation, error) {
	if sub.native == nil {
		return Confirmation{}, errors.New("submission carries no hedera receipt")
	}
	if !sub.native.Succeeded() {
		return Confirmation{}, errors.Newf("hedera transaction %s failed with status %s", sub.TxID, sub.native.Status)
	}
	return Confirmation{TxID: sub.TxID}, nil
}
