package verifier

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/deployments"
)

// DeploymentIssue is a problem found in a deployment record without
// touching the network.
type DeploymentIssue struct {
	Network string `json:"network"`
	Problem string `json:"problem"`
}

// ValidateDeployments cross-checks deployment records against the registry.
// Every deployed entry needs a record whose address, chain id and token
// metadata agree with it.
func (v *Verifier) ValidateDeployments(records map[string]deployments.Record) []DeploymentIssue {
	var issues []DeploymentIssue
	add := func(network, problem string) {
		issues = append(issues, DeploymentIssue{Network: network, Problem: problem})
	}

	for _, e := range v.deps.Registry.List() {
		rec, ok := records[strings.ToLower(e.Name)]
		if !ok {
			if e.IsDeployed() {
				add(e.Name, "no deployment record")
			}
			continue
		}
		if !common.IsHexAddress(rec.ContractAddress) {
			add(e.Name, "invalid contract address "+rec.ContractAddress)
			continue
		}
		if rec.ChainID != e.ChainID {
			add(e.Name, "record chain id does not match the network")
		}
		if e.IsDeployed() && rec.Address() != e.Contract {
			add(e.Name, "record address "+rec.Address().Hex()+" differs from configured "+e.Contract.Hex())
		}
		if rec.ContractInfo == nil {
			add(e.Name, "record has no contract info")
			continue
		}
		if rec.ContractInfo.Name != v.cfg.Expected.Name || rec.ContractInfo.Symbol != v.cfg.Expected.Symbol {
			add(e.Name, "record token metadata is "+rec.ContractInfo.Name+" ("+rec.ContractInfo.Symbol+")")
		}
		if rec.ContractInfo.Decimals != v.cfg.Expected.Decimals {
			add(e.Name, "record decimals differ")
		}
	}
	return issues
}
