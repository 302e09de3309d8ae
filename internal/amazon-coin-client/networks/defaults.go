package networks

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
)

var (
	hbarPrice = decimal.RequireFromString("0.1")
	ethPrice  = decimal.RequireFromString("0.0001")
	sentinel  = common.HexToAddress(constants.SentinelAddr)
)

// DefaultEntries is the built-in network table used when no configuration
// overrides it.
func DefaultEntries() []Entry {
	return []Entry{
		{
			ChainID:      constants.ChainIDEthereumMainnet,
			Name:         "mainnet",
			DisplayName:  "Ethereum Mainnet",
			Class:        ClassEVM,
			Contract:     sentinel,
			NativeSymbol: "ETH",
			TokenPrice:   ethPrice,
			Explorer:     "https://etherscan.io",
		},
		{
			ChainID:       constants.ChainIDHederaMainnet,
			Name:          "hedera",
			DisplayName:   "Hedera Mainnet",
			Class:         ClassHedera,
			HederaNetwork: "mainnet",
			Contract:      sentinel,
			NativeSymbol:  "HBAR",
			TokenPrice:    hbarPrice,
			Explorer:      "https://hashscan.io/mainnet",
		},
		{
			ChainID:       constants.ChainIDHederaTestnet,
			Name:          "hederatestnet",
			DisplayName:   "Hedera Testnet",
			Class:         ClassHedera,
			HederaNetwork: "testnet",
			Contract:      common.HexToAddress("0xd995b5323b1Ec4194D1cb2470a9b6383263CE196"),
			NativeSymbol:  "HBAR",
			TokenPrice:    hbarPrice,
			Explorer:      "https://hashscan.io/testnet",
		},
		{
			ChainID:      constants.ChainIDSepolia,
			Name:         "sepolia",
			DisplayName:  "Sepolia",
			Class:        ClassEVM,
			Contract:     common.HexToAddress("0x1412D9A28bAAC801777581C28060B2C821e61823"),
			NativeSymbol: "ETH",
			TokenPrice:   ethPrice,
			Explorer:     "https://sepolia.etherscan.io",
		},
		{
			ChainID:      constants.ChainIDHardhat,
			Name:         "hardhat",
			DisplayName:  "Hardhat Local",
			Class:        ClassEVM,
			Contract:     common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
			NativeSymbol: "ETH",
			TokenPrice:   ethPrice,
			Explorer:     "http://localhost:8545",
		},
	}
}

func DefaultRegistry() *Registry {
	r, err := NewRegistry(Config{Entries: DefaultEntries(), FallbackChainID: constants.DefaultFallbackChainID})
	if err != nil {
		panic(err)
	}
	return r
}
