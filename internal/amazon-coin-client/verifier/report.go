package verifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/quantumauth-io/quantum-go-utils/log"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/networks"
)

const (
	StatusHealthy        = "healthy"
	StatusIssuesDetected = "issues-detected"
)

type Summary struct {
	TotalNetworks       int    `json:"totalNetworks"`
	DeployedContracts   int    `json:"deployedContracts"`
	FailedVerifications int    `json:"failedVerifications"`
	OverallStatus       string `json:"overallStatus"`
}

type Skipped struct {
	ChainID uint64 `json:"chainId"`
	Network string `json:"network"`
	Reason  string `json:"reason"`
}

type Report struct {
	Timestamp       time.Time       `json:"timestamp"`
	Summary         Summary         `json:"summary"`
	Networks        []NetworkResult `json:"networks"`
	Skipped         []Skipped       `json:"skipped,omitempty"`
	Recommendations []string        `json:"recommendations,omitempty"`
}

// VerifyAll verifies every deployed registry entry concurrently. Results
// keep registry order.
func (v *Verifier) VerifyAll(ctx context.Context) Report {
	entries := v.deps.Registry.List()
	report := Report{Timestamp: time.Now().UTC()}

	var deployed []networks.Entry
	for _, e := range entries {
		if !e.IsDeployed() {
			report.Skipped = append(report.Skipped, Skipped{ChainID: e.ChainID, Network: e.Name, Reason: ErrNotDeployed.Error()})
			continue
		}
		deployed = append(deployed, e)
	}

	report.Networks = make([]NetworkResult, len(deployed))
	var wg sync.WaitGroup
	for i, e := range deployed {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report.Networks[i] = v.VerifyNetwork(ctx, e)
		}()
	}
	wg.Wait()

	report.Summary, report.Recommendations = summarize(len(entries), report.Networks)
	log.Info("verification finished",
		"networks", report.Summary.TotalNetworks,
		"deployed", report.Summary.DeployedContracts,
		"failed", report.Summary.FailedVerifications,
		"status", report.Summary.OverallStatus)
	return report
}

func summarize(total int, results []NetworkResult) (Summary, []string) {
	s := Summary{TotalNetworks: total, OverallStatus: StatusHealthy}
	var mintingDisabled, mismatched int
	for _, r := range results {
		if r.Verified() {
			s.DeployedContracts++
		} else {
			s.FailedVerifications++
		}
		if r.Fields[FieldMintingEnabled].OK && !r.State.MintingEnabled {
			mintingDisabled++
		}
		if len(r.Mismatches) > 0 {
			mismatched++
		}
	}

	var recs []string
	if s.FailedVerifications > 0 {
		recs = append(recs, "Some contracts failed verification. Check network connectivity and contract addresses.")
	}
	if mintingDisabled > 0 {
		recs = append(recs, fmt.Sprintf("Minting is disabled on %d network(s). Enable minting if needed.", mintingDisabled))
	}
	if mismatched > 0 {
		recs = append(recs, fmt.Sprintf("Configuration mismatch on %d network(s). Check exchange rate and token metadata.", mismatched))
	}
	if s.FailedVerifications > 0 || mismatched > 0 {
		s.OverallStatus = StatusIssuesDetected
	}
	return s, recs
}
