package deployments

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
)

// Record is the content of a <network>-deployment.json file written by the
// deploy scripts.
type Record struct {
	Network         string          `json:"network" validate:"required"`
	ChainID         uint64          `json:"chainId" validate:"required"`
	ContractAddress string          `json:"contractAddress" validate:"required,eth_addr"`
	DeployerAddress string          `json:"deployerAddress,omitempty" validate:"omitempty,eth_addr"`
	TransactionHash string          `json:"transactionHash,omitempty" validate:"omitempty,startswith=0x,len=66,hexadecimal"`
	BlockNumber     uint64          `json:"blockNumber,omitempty"`
	GasUsed         json.Number     `json:"gasUsed,omitempty"`
	GasPrice        json.Number     `json:"gasPrice,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
	HederaSpecific  *HederaSpecific `json:"hederaSpecific,omitempty"`
	ContractInfo    *ContractInfo   `json:"contractInfo,omitempty"`
}

type HederaSpecific struct {
	ExplorerURL    string `json:"explorerUrl,omitempty" validate:"omitempty,url"`
	TransactionURL string `json:"transactionUrl,omitempty" validate:"omitempty,url"`
	NetworkType    string `json:"networkType,omitempty" validate:"omitempty,oneof=testnet mainnet previewnet"`
}

// ContractInfo is the on-chain state read back right after deployment.
type ContractInfo struct {
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	Decimals       uint8  `json:"decimals"`
	TotalSupply    string `json:"totalSupply" validate:"omitempty,numeric"`
	MaxSupply      string `json:"maxSupply" validate:"omitempty,numeric"`
	ExchangeRate   string `json:"exchangeRate" validate:"omitempty,numeric"`
	MintingEnabled bool   `json:"mintingEnabled"`
	Owner          string `json:"owner" validate:"omitempty,eth_addr"`
}

func (r Record) Address() common.Address {
	return common.HexToAddress(r.ContractAddress)
}

// IsDeployed reports whether the record points at a real contract.
func (r Record) IsDeployed() bool {
	return common.IsHexAddress(r.ContractAddress) && r.Address() != common.HexToAddress(constants.SentinelAddr)
}

// ExplorerURL prefers the Hedera explorer link, then the transaction link.
func (r Record) ExplorerURL() string {
	if r.HederaSpecific == nil {
		return ""
	}
	if r.HederaSpecific.ExplorerURL != "" {
		return r.HederaSpecific.ExplorerURL
	}
	return r.HederaSpecific.TransactionURL
}

func normalizeNetworkKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
