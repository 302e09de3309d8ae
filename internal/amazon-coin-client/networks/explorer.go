package networks

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ExplorerAddressURL links to a contract or account on the resolved
// network's explorer.
func (r *Registry) ExplorerAddressURL(chainID uint64, addr common.Address) string {
	e, _ := r.Resolve(chainID)
	return e.AddressURL(addr.Hex())
}

// ExplorerTxURL links to a transaction by hash, or by transaction id on
// Hedera.
func (r *Registry) ExplorerTxURL(chainID uint64, txID string) string {
	e, _ := r.Resolve(chainID)
	return e.TxURL(txID)
}

func (e Entry) AddressURL(id string) string {
	if e.Class.IsHedera() {
		return joinURL(e.Explorer, "contract", id)
	}
	return joinURL(e.Explorer, "address", id)
}

func (e Entry) TxURL(id string) string {
	if e.Class.IsHedera() {
		return joinURL(e.Explorer, "transaction", id)
	}
	return joinURL(e.Explorer, "tx", id)
}

func joinURL(base, kind, id string) string {
	return strings.TrimRight(base, "/") + "/" + kind + "/" + strings.TrimSpace(id)
}
