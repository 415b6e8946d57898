package lumen

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick timing and publish metrics.
// Only populated when the document's debug mode is on.
type tickStats struct {
	tickTime  time.Duration
	members   int
	observed  int
	published int
}

// debugLog prints per-tick stats to stderr.
func (e *Engine) debugLog(stats tickStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[lumen] tick: %v | members: %d | observed: %d | published: %d\n",
		stats.tickTime, stats.members, stats.observed, stats.published)
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Only called in debug mode; release-mode
// callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("lumen debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[lumen] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
