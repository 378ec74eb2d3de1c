package command

import (
	"math/rand"
	"time"

	"github.com/rocketscienceinc/ninarow/internal/config"
	"github.com/rocketscienceinc/ninarow/internal/engine"
)

// newRand - builds the rand source injected into a game session. A zero seed
// falls back to the clock; any other value makes the run reproducible.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) //nolint:gosec // not used for secrets
}

// searchDepth - config override when positive, otherwise the per-size depth.
func searchDepth(gameConf config.Game, size int) int {
	if gameConf.SearchDepth > 0 {
		return gameConf.SearchDepth
	}

	return engine.DepthForSize(size)
}
