package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

const (
	EventTransfer             = "Transfer"
	EventTokensPurchased      = "TokensPurchased"
	EventExchangeRateUpdated  = "ExchangeRateUpdated"
	EventMintingStatusChanged = "MintingStatusChanged"
	EventPaused               = "Paused"
	EventUnpaused             = "Unpaused"
	EventEtherWithdrawn       = "EtherWithdrawn"
	EventEmergencyWithdrawal  = "EmergencyWithdrawal"
	EventOwnershipTransferred = "OwnershipTransferred"
)

// Event is a log entry emitted by a successful ledger call. Only the fields
// relevant to Name are set:
//
//	Transfer             From, To, Amount
//	TokensPurchased      To (buyer), Amount, Payment
//	ExchangeRateUpdated  OldRate, NewRate
//	MintingStatusChanged Enabled
//	Paused / Unpaused    From (account)
//	EtherWithdrawn       To, Amount
//	EmergencyWithdrawal  To, Amount
//	OwnershipTransferred From (previous), To (new)
type Event struct {
	Name    string
	From    common.Address
	To      common.Address
	Amount  *uint256.Int
	Payment *uint256.Int
	OldRate *uint256.Int
	NewRate *uint256.Int
	Enabled bool
}

func transferEvent(from, to common.Address, amount *uint256.Int) Event {
	return Event{Name: EventTransfer, From: from, To: to, Amount: amount.Clone()}
}

func purchasedEvent(buyer common.Address, amount, payment *uint256.Int) Event {
	return Event{Name: EventTokensPurchased, To: buyer, Amount: amount.Clone(), Payment: payment.Clone()}
}
