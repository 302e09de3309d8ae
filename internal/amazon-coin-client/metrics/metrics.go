package metrics

import "time"

// Counter families.
const (
	Purchases     = "purchases"
	Verifications = "verifications"
)

// Label keys.
const (
	LabelNetwork = "network"
	LabelState   = "state"
	LabelResult  = "result"
)

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Since observes the time elapsed from start under operation.
func Since(r Recorder, operation, network string, start time.Time) {
	r.ObserveLatency(operation, time.Since(start), map[string]string{LabelNetwork: network})
}
