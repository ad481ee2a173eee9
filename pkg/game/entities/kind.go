// Package entities describes the entity kinds a generated level asks the game to spawn.
package entities

// Kind is the entity kind tag of a placement request
type Kind int

const (
	KindPlayer Kind = iota // the player character, at most one per level
	KindHazard             // static contact hazard (spikes)
	KindEnemy              // ground enemy
)

// KindInfo contains display and anchoring information for each entity kind
type KindInfo struct {
	Name string
	Icon string
	// AnchorOffset is added to the y coordinate of the ground cell's origin to
	// place the entity's anchor. Player positions are taken from an empty cell's
	// center instead and ignore it.
	AnchorOffset float64
}

// Kinds maps entity kinds to their display information
var Kinds = map[Kind]KindInfo{
	KindPlayer: {
		Name:         "Player",
		Icon:         "@",
		AnchorOffset: 0.5,
	},
	KindHazard: {
		Name:         "Hazard",
		Icon:         "^",
		AnchorOffset: 1.5,
	},
	KindEnemy: {
		Name:         "Enemy",
		Icon:         "E",
		AnchorOffset: 1.0,
	},
}

// String returns the kind's display name
func (k Kind) String() string {
	if info, ok := Kinds[k]; ok {
		return info.Name
	}
	return "Unknown"
}

// Icon returns the kind's single-character icon
func (k Kind) Icon() string {
	if info, ok := Kinds[k]; ok {
		return info.Icon
	}
	return "?"
}

// AllKinds returns the kinds in emission order
func AllKinds() []Kind {
	return []Kind{KindPlayer, KindHazard, KindEnemy}
}
