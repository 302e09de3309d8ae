package deployments

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const hederaTestnetRecord = `{
  "network": "hederaTestnet",
  "chainId": 296,
  "contractAddress": "0xd995b5323b1Ec4194D1cb2470a9b6383263CE196",
  "deployerAddress": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
  "transactionHash": "0x9a0b7c1e4f1f0d2b6bb2c1f3c3a1d6e2b4f5a6c7d8e9f0a1b2c3d4e5f6a7b8c9",
  "blockNumber": 1234567,
  "gasUsed": "1843210",
  "gasPrice": 360000000000,
  "timestamp": "2025-01-15T10:30:00.000Z",
  "hederaSpecific": {
    "explorerUrl": "https://hashscan.io/testnet/contract/0xd995b5323b1Ec4194D1cb2470a9b6383263CE196",
    "transactionUrl": "https://hashscan.io/testnet/transaction/0x9a0b",
    "networkType": "testnet"
  },
  "contractInfo": {
    "name": "Amazon Coin",
    "symbol": "AC",
    "decimals": 18,
    "totalSupply": "100000000000000000000000000",
    "maxSupply": "1000000000000000000000000000",
    "exchangeRate": "100000000000000",
    "mintingEnabled": true,
    "owner": "0x5FbDB2315678afecb367f032d93F642f64180aa3"
  }
}`

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestLoadReadsDeploymentRecords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hederaTestnet-deployment.json", hederaTestnetRecord)
	writeFile(t, dir, "broken-deployment.json", "{")
	writeFile(t, dir, "bad-deployment.json", `{"network":"bad","chainId":1,"contractAddress":"nope","timestamp":"2025-01-15T10:30:00Z"}`)
	writeFile(t, dir, "notes.txt", "ignored")

	s, err := NewStore(dir)
	require.NoError(t, err)

	recs, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec, ok := recs["hederatestnet"]
	require.True(t, ok)
	require.Equal(t, uint64(296), rec.ChainID)
	require.True(t, rec.IsDeployed())
	require.Equal(t, "1843210", rec.GasUsed.String())
	require.Equal(t, "360000000000", rec.GasPrice.String())
	require.Equal(t, 2025, rec.Timestamp.Year())
	require.Contains(t, rec.ExplorerURL(), "hashscan.io/testnet/contract")
	require.Equal(t, uint8(18), rec.ContractInfo.Decimals)
}

func TestLoadMissingDirIsEmpty(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)

	recs, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, recs)
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(filepath.Join(t.TempDir(), "deployments"))
	require.NoError(t, err)

	rec := Record{
		Network:         "hardhat",
		ChainID:         31337,
		ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Timestamp:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Save(ctx, rec))
	require.FileExists(t, filepath.Join(s.Dir(), "hardhat-deployment.json"))

	got, err := s.Get(ctx, "hardhat")
	require.NoError(t, err)
	require.Equal(t, rec.ContractAddress, got.ContractAddress)
	require.True(t, rec.Timestamp.Equal(got.Timestamp))

	_, err = s.Get(ctx, "sepolia")
	require.ErrorIs(t, err, ErrNotFound)

	names, err := s.Networks(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"hardhat"}, names)
}

func TestSaveRejectsInvalidRecord(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	err = s.Save(context.Background(), Record{Network: "sepolia", ChainID: 11155111, ContractAddress: "0x1234"})
	require.ErrorContains(t, err, "invalid deployment record")

	_, err = NewStore(" ")
	require.Error(t, err)
}

func TestSentinelRecordIsNotDeployed(t *testing.T) {
	rec := Record{ContractAddress: "0x0000000000000000000000000000000000000000"}
	require.False(t, rec.IsDeployed())
	require.Empty(t, rec.ExplorerURL())
}
