package constants

const (
	AppName = "amazon-coin-client"

	TokenName     = "Amazon Coin"
	TokenSymbol   = "AC"
	TokenDecimals = 18

	// InitialSupplyPercent of MAX_SUPPLY is minted to the owner at deployment.
	InitialSupplyPercent = 10

	// MaxSupplyTokens is the cap in whole tokens (10^9); scale by 10^TokenDecimals for base units.
	MaxSupplyTokens = 1_000_000_000

	// InitialExchangeRateWei is 0.0001 native units per token, scaled by 10^18.
	InitialExchangeRateWei = "100000000000000"

	SentinelAddr = "0x0000000000000000000000000000000000000000"
	NativeAddr   = SentinelAddr

	SchemaV1      = 1
	FilePerm      = 0o600
	DirectoryPerm = 0o700

	// PrivateKeyEnv holds the hex signing key for purchases.
	PrivateKeyEnv = "AMAZON_COIN_PRIVATE_KEY"

	DeploymentFileSuffix = "-deployment.json"
	HistoryDirName       = "history"
)

// Chain identifiers known to the default registry.
const (
	ChainIDEthereumMainnet uint64 = 1
	ChainIDSepolia         uint64 = 11155111
	ChainIDHederaMainnet   uint64 = 295
	ChainIDHederaTestnet   uint64 = 296
	ChainIDHederaPreview   uint64 = 297
	ChainIDHardhat         uint64 = 31337

	DefaultFallbackChainID = ChainIDHederaTestnet
)

// Hedera native dispatch.
const (
	HederaDefaultGas uint64 = 300_000
	TinybarsPerHbar         = 100_000_000
	// WeibarsPerTinybar converts 18-decimal native amounts to tinybars.
	WeibarsPerTinybar = 10_000_000_000
)
