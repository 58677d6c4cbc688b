package nodegraph

import "time"

// debugStats holds per-frame timing and size metrics.
// Only populated when the editor is in debug mode.
type debugStats struct {
	buildTime    time.Duration
	interactTime time.Duration
	nodes        int
	pins         int
	links        int
	events       int
}

// debugLog writes frame stats to the editor logger at debug level.
func (e *Editor) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	e.logger.Debug("frame",
		"build", stats.buildTime,
		"interact", stats.interactTime,
		"total", stats.buildTime+stats.interactTime,
	)
	e.logger.Debug("geometry",
		"nodes", stats.nodes,
		"pins", stats.pins,
		"links", stats.links,
		"events", stats.events,
		"mode", e.state.Mode(),
	)
}
