package entity

import "github.com/EngoEngine/ecs"

// GamePhase is a terminal-state machine: once a session leaves PhasePlaying
// it never returns within that session.
type GamePhase int

const (
	PhaseSetup GamePhase = iota
	PhasePlaying
	PhaseRebelVictory
	PhaseEmpireVictory
)

func (p GamePhase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhasePlaying:
		return "Playing"
	case PhaseRebelVictory:
		return "RebelVictory"
	case PhaseEmpireVictory:
		return "EmpireVictory"
	default:
		return "Unknown"
	}
}

// DefaultVictoryThreshold is the planet share a faction must control to win.
const DefaultVictoryThreshold = 0.75

// SimulationState is the session singleton: clock, treasuries, phase, and
// cached per-faction planet counts. Exactly one instance exists per session.
type SimulationState struct {
	ecs.BasicEntity
	GameTime float64 // seconds of simulated time

	Credits       map[Faction]float64
	VictoryPoints map[Faction]int // reserved; resolution does not read these yet

	VictoryThreshold float64 // planet share in (0, 1]
	Phase            GamePhase
	PlanetCounts     map[Faction]int
	PlayerFaction    Faction
}

// NewSimulationState creates the singleton in the Setup phase.
func NewSimulationState(player Faction, threshold float64) *SimulationState {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultVictoryThreshold
	}
	return &SimulationState{
		BasicEntity:      ecs.NewBasic(),
		Credits:          make(map[Faction]float64),
		VictoryPoints:    make(map[Faction]int),
		VictoryThreshold: threshold,
		Phase:            PhaseSetup,
		PlanetCounts:     make(map[Faction]int),
		PlayerFaction:    player,
	}
}

// EID returns the singleton's entity id.
func (s *SimulationState) EID() ID {
	return ID(s.BasicEntity.ID())
}

// Ended reports whether a victory phase has been reached.
func (s *SimulationState) Ended() bool {
	return s.Phase == PhaseRebelVictory || s.Phase == PhaseEmpireVictory
}
