package components

// ItemKind identifies a collectible placed on the field.
type ItemKind uint8

const (
	ItemApple    ItemKind = iota // grows the snake and scores
	ItemBadApple                 // shrinks the snake and costs a point
	ItemStone                    // ends the run
)

// Item is a collectible entity. Its cell lives in a separate Cell component.
// Placed is false when no free cell was left for it.
type Item struct {
	Kind   ItemKind
	Placed bool
}

// String returns the display name for an ItemKind.
func (k ItemKind) String() string {
	names := ItemKindNames()
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// ItemKindNames returns the names of all item kinds.
// The order matches the ItemKind constants.
func ItemKindNames() []string {
	return []string{"apple", "bad_apple", "stone"}
}

// DeathCause records why a run ended.
type DeathCause uint8

const (
	CauseNone     DeathCause = iota
	CauseSelf                // head entered the body
	CauseStone               // head entered a stone
	CauseStarved             // a bad apple shrank the snake to nothing
	CauseRestart             // player restarted
	CauseShutdown            // game closed mid-run
)

var causeNames = [...]string{"none", "self", "stone", "starved", "restart", "shutdown"}

func (c DeathCause) String() string {
	if int(c) < len(causeNames) {
		return causeNames[c]
	}
	return "unknown"
}
