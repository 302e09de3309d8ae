package purchase

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/ledger"
)

var (
	ErrInvalidAmount         = errors.New("please enter a valid token amount")
	ErrWrongNetwork          = errors.New("wrong network")
	ErrContractNotDeployed   = errors.New("contract not deployed on this network")
	ErrPricingUnavailable    = errors.New("network pricing not available")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrExceedsSupplyCap      = errors.New("exceeds supply cap")
	ErrConfirmationTimeout   = errors.New("confirmation timed out")
	ErrConfirmationAbandoned = errors.New("confirmation abandoned")
)

// Kind is the user-facing failure category.
type Kind string

const (
	KindNone                Kind = ""
	KindInvalidAmount       Kind = "invalid amount"
	KindWrongNetwork        Kind = "wrong network"
	KindNotDeployed         Kind = "contract not deployed"
	KindPricingUnavailable  Kind = "pricing unavailable"
	KindInsufficientFunds   Kind = "insufficient funds"
	KindExceedsSupplyCap    Kind = "exceeds supply cap"
	KindConfirmationTimeout Kind = "confirmation timed out"
	KindRejected            Kind = "rejected by contract"
	KindUnknown             Kind = "unknown"
)

// Classify maps err to a Kind. Node errors only carry the revert reason as
// text, so those are matched on their message.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ledger.ErrZeroAmount):
		return KindInvalidAmount
	case errors.Is(err, ErrWrongNetwork):
		return KindWrongNetwork
	case errors.Is(err, ErrContractNotDeployed):
		return KindNotDeployed
	case errors.Is(err, ErrPricingUnavailable):
		return KindPricingUnavailable
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	case errors.Is(err, ErrExceedsSupplyCap), errors.Is(err, ledger.ErrExceedsMaxSupply):
		return KindExceedsSupplyCap
	case errors.Is(err, ErrConfirmationTimeout), errors.Is(err, ErrConfirmationAbandoned):
		return KindConfirmationTimeout
	case ledger.Reason(err) != "":
		return KindRejected
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"), strings.Contains(msg, "insufficient_payer_balance"):
		return KindInsufficientFunds
	case strings.Contains(msg, strings.ToLower(ledger.ErrExceedsMaxSupply.Error())):
		return KindExceedsSupplyCap
	case strings.Contains(msg, "execution reverted"), strings.Contains(msg, "contract_revert_executed"):
		return KindRejected
	}
	return KindUnknown
}

// taggedError carries a sentinel alongside err without changing its message.
type taggedError struct {
	err error
	tag error
}

func (e *taggedError) Error() string        { return e.err.Error() }
func (e *taggedError) Unwrap() error        { return e.err }
func (e *taggedError) Is(target error) bool { return target == e.tag }

func tag(err, sentinel error) error {
	return &taggedError{err: err, tag: sentinel}
}

// mark attaches the matching sentinel to a transport error so errors.Is
// works downstream. The message is unchanged.
func mark(err error) error {
	switch Classify(err) {
	case KindInsufficientFunds:
		if !errors.Is(err, ErrInsufficientFunds) {
			return tag(err, ErrInsufficientFunds)
		}
	case KindExceedsSupplyCap:
		if !errors.Is(err, ErrExceedsSupplyCap) {
			return tag(err, ErrExceedsSupplyCap)
		}
	}
	return err
}
