package hedera

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
)

// EntityID is a Hedera shard.realm.num identifier.
type EntityID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

type (
	ContractID EntityID
	AccountID  EntityID
)

func ParseEntityID(s string) (EntityID, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return EntityID{}, errors.Newf("invalid entity id %q: want shard.realm.num", s)
	}

	var vals [3]uint64
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return EntityID{}, errors.Wrapf(err, "invalid entity id %q", s)
		}
		vals[i] = v
	}
	return EntityID{Shard: vals[0], Realm: vals[1], Num: vals[2]}, nil
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Num)
}

// EVMAddress returns the long-zero form: 4 bytes shard, 8 bytes realm,
// 8 bytes num.
func (id EntityID) EVMAddress() common.Address {
	var a common.Address
	binary.BigEndian.PutUint32(a[0:4], uint32(id.Shard))
	binary.BigEndian.PutUint64(a[4:12], id.Realm)
	binary.BigEndian.PutUint64(a[12:20], id.Num)
	return a
}

func ParseContractID(s string) (ContractID, error) {
	id, err := ParseEntityID(s)
	return ContractID(id), err
}

func ParseAccountID(s string) (AccountID, error) {
	id, err := ParseEntityID(s)
	return AccountID(id), err
}

func (id ContractID) String() string              { return EntityID(id).String() }
func (id ContractID) EVMAddress() common.Address { return EntityID(id).EVMAddress() }
func (id AccountID) String() string               { return EntityID(id).String() }

// ContractIDFromEVMAddress decodes a long-zero address. Addresses derived
// from an ECDSA key or CREATE2 do not embed the entity number and report
// false; resolve those through the mirror node instead.
func ContractIDFromEVMAddress(addr common.Address) (ContractID, bool) {
	shard := binary.BigEndian.Uint32(addr[0:4])
	realm := binary.BigEndian.Uint64(addr[4:12])
	num := binary.BigEndian.Uint64(addr[12:20])
	if shard != 0 || realm != 0 || num == 0 {
		return ContractID{}, false
	}
	return ContractID{Num: num}, true
}
