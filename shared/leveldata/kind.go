package leveldata

import "fmt"

// Kind is the behaviour of a wall tile, read from the "kind" property of its
// tileset tile.
type Kind int

const (
	KindSolid      Kind = 1
	KindOutOfWorld Kind = 2
	KindNextLevel  Kind = 3
	KindSpike      Kind = 4
)

// ParseKind converts a raw tile property into a Kind.
func ParseKind(v int) (Kind, error) {
	k := Kind(v)
	switch k {
	case KindSolid, KindOutOfWorld, KindNextLevel, KindSpike:
		return k, nil
	}
	return 0, fmt.Errorf("unknown wall kind %d", v)
}

// IsTrigger reports whether touching the kind should notify game logic.
func (k Kind) IsTrigger() bool {
	return k == KindOutOfWorld || k == KindNextLevel || k == KindSpike
}

// Blocks reports whether the kind stops movement.
func (k Kind) Blocks() bool {
	return k == KindSolid || k == KindSpike
}

func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindOutOfWorld:
		return "out-of-world"
	case KindNextLevel:
		return "next-level"
	case KindSpike:
		return "spike"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}
