// Package engine implements the strategic tick pipeline: the ordered systems
// that advance the galaxy each frame, the battle resolver, and the Galaxy
// orchestrator that owns the component store and the faction commanders.
package engine

// System priorities. The ecs.World runs higher priorities first, so these
// encode the tick order, which is load-bearing: detection must run before
// resolution (a battle detected this tick only starts its countdown this
// tick), and resource/reinforcement passes see the UnderAttack flags set by
// prior ticks, not this one.
const (
	priorityResource  = 60
	priorityMovement  = 50
	priorityDetection = 40
	priorityResolve   = 30
	priorityReinforce = 20
	priorityVictory   = 10
)

// creditShare is the fraction of locally generated resources credited to the
// controlling faction's treasury.
const creditShare = 0.10

// DefaultAutoResolveDelay is the grace period before a detected battle
// auto-resolves, in seconds.
const DefaultAutoResolveDelay = 5.0
