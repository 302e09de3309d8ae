package chains

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	ClassEVM    = "evm"
	ClassHedera = "hedera"
)

type AllChainsConfig struct {
	Networks        map[string]NetworkConfig `json:"networks" yaml:"networks" mapstructure:"networks" validate:"required,min=1,dive"`
	FallbackChainID uint64                   `json:"fallbackChainId" yaml:"fallbackChainId" mapstructure:"fallbackChainId"`
	PreferredRPC    string                   `json:"preferredRpc" yaml:"preferredRpc" mapstructure:"preferredRpc"`
}

// NetworkConfig describes a network, its token deployment and its RPC endpoints.
type NetworkConfig struct {
	Name          string `json:"name" yaml:"name" mapstructure:"name"`
	DisplayName   string `json:"displayName" yaml:"displayName" mapstructure:"displayName"`
	ChainID       uint64 `json:"chainId" yaml:"chainId" mapstructure:"chainId" validate:"required"`
	ChainIDHex    string `json:"chainIdHex" yaml:"chainIdHex" mapstructure:"chainIdHex"`
	Class         string `json:"class" yaml:"class" mapstructure:"class" validate:"required,oneof=evm hedera"`
	HederaNetwork string `json:"hederaNetwork" yaml:"hederaNetwork" mapstructure:"hederaNetwork" validate:"required_if=Class hedera"`
	NativeSymbol  string `json:"nativeSymbol" yaml:"nativeSymbol" mapstructure:"nativeSymbol" validate:"required"`
	TokenPrice    string `json:"tokenPrice" yaml:"tokenPrice" mapstructure:"tokenPrice" validate:"required,numeric"`
	Contract      string `json:"contract" yaml:"contract" mapstructure:"contract" validate:"omitempty,eth_addr"`
	Explorer      string `json:"explorer" yaml:"explorer" mapstructure:"explorer" validate:"required,url"`
	RPCs          []RPC  `json:"rpcs" yaml:"rpcs" mapstructure:"rpcs" validate:"dive"`
}

type RPC struct {
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	URL  string `json:"url" yaml:"url" mapstructure:"url" validate:"required,url"`
	WSS  string `json:"wss" yaml:"wss" mapstructure:"wss"`
}

// Normalize keys every network by its lowercased map name and derives
// chainIdHex from chainId when it is not set.
func (mc *AllChainsConfig) Normalize() {
	if mc == nil {
		return
	}
	for name, n := range mc.Networks {
		n.Name = strings.ToLower(strings.TrimSpace(name))
		n.Class = strings.ToLower(strings.TrimSpace(n.Class))
		n.HederaNetwork = strings.ToLower(strings.TrimSpace(n.HederaNetwork))
		n.Explorer = strings.TrimRight(strings.TrimSpace(n.Explorer), "/")
		n.Contract = strings.TrimSpace(n.Contract)
		if strings.TrimSpace(n.ChainIDHex) == "" && n.ChainID != 0 {
			n.ChainIDHex = hexutil.EncodeUint64(n.ChainID)
		}
		n.ChainIDHex = strings.ToLower(strings.TrimSpace(n.ChainIDHex))
		if n.DisplayName == "" {
			n.DisplayName = name
		}
		mc.Networks[name] = n
	}
}
