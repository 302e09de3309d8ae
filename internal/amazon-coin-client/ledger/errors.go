package ledger

import (
	"github.com/cockroachdb/errors"
)

// Rejection reasons. The message of each error is the label surfaced to callers.
var (
	ErrZeroAmount          = errors.New("AmazonCoin: Amount must be greater than zero")
	ErrIncorrectPayment    = errors.New("AmazonCoin: Incorrect Ether amount sent")
	ErrMintingDisabled     = errors.New("AmazonCoin: Minting is currently disabled")
	ErrExceedsMaxSupply    = errors.New("AmazonCoin: Minting would exceed maximum supply")
	ErrZeroExchangeRate    = errors.New("AmazonCoin: Exchange rate must be greater than zero")
	ErrReceiveWhilePaused  = errors.New("AmazonCoin: Contract is paused")
	ErrInsufficientCustody = errors.New("AmazonCoin: Insufficient contract balance")
	ErrNothingToWithdraw   = errors.New("AmazonCoin: No Ether to withdraw")
	ErrOverflow            = errors.New("AmazonCoin: arithmetic overflow")

	ErrPaused    = errors.New("Pausable: paused")
	ErrNotPaused = errors.New("Pausable: not paused")

	ErrNotOwner        = errors.New("Ownable: caller is not the owner")
	ErrZeroOwner       = errors.New("Ownable: new owner is the zero address")
	ErrMintToZero      = errors.New("ERC20: mint to the zero address")
	ErrTransferToZero  = errors.New("ERC20: transfer to the zero address")
	ErrBurnExceeds     = errors.New("ERC20: burn amount exceeds balance")
	ErrTransferExceeds = errors.New("ERC20: transfer amount exceeds balance")
)

var reasons = []error{
	ErrZeroAmount, ErrIncorrectPayment, ErrMintingDisabled, ErrExceedsMaxSupply,
	ErrZeroExchangeRate, ErrReceiveWhilePaused, ErrInsufficientCustody, ErrNothingToWithdraw,
	ErrOverflow, ErrPaused, ErrNotPaused, ErrNotOwner, ErrZeroOwner, ErrMintToZero,
	ErrTransferToZero, ErrBurnExceeds, ErrTransferExceeds,
}

// Reason returns the ledger rejection label carried by err, or "" if err is
// not a ledger rejection.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r) {
			return r.Error()
		}
	}
	return ""
}
