package repair

import "errors"

// Sentinel errors for connectivity repair.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Connect.
	ErrNilGraph = errors.New("repair: graph is nil")

	// ErrInsufficientNeighbors indicates fewer than two eligible
	// same-level connector candidates exist for a target node.
	ErrInsufficientNeighbors = errors.New("repair: fewer than two eligible connector neighbors")
)

// anchorCount is the number of connectors a repair projects between.
const anchorCount = 2

// Options configures Connect.
type Options struct {
	// Snapshot freezes the connector candidate set before the first
	// repair, so junctions synthesized by earlier repairs are never
	// selected as anchors for later ones. The default keeps the
	// candidate set live.
	Snapshot bool
}

// Option is a functional option for Connect.
type Option func(*Options)

// WithCandidateSnapshot freezes the connector candidate set before any
// repair runs, making the outcome independent of target processing order.
func WithCandidateSnapshot() Option {
	return func(o *Options) { o.Snapshot = true }
}

// DefaultOptions returns the default configuration: live candidate view.
func DefaultOptions() Options {
	return Options{Snapshot: false}
}
