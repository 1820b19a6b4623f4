package games

import (
	"slices"

	domaingames "github.com/preston-bernstein/club-studio/internal/domain/games"
)

// DefaultMaxSelected is how many games one template may combine.
const DefaultMaxSelected = 3

// Selection is an ordered, bounded set of game ids. Operations return a new value and
// never modify the receiver.
type Selection struct {
	max int
	ids []string
}

// NewSelection returns an empty selection capped at max (DefaultMaxSelected when max <= 0).
func NewSelection(max int) Selection {
	if max <= 0 {
		max = DefaultMaxSelected
	}
	return Selection{max: max}
}

// Toggle removes id when selected, otherwise appends it unless the cap is reached.
// At the cap the selection is returned unchanged.
func (s Selection) Toggle(id string) Selection {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(slices.Clone(s.ids), i, i+1)
		return s
	}
	if len(s.ids) >= s.Max() {
		return s
	}
	s.ids = append(slices.Clone(s.ids), id)
	return s
}

// IDs returns the selected ids in selection order.
func (s Selection) IDs() []string { return slices.Clone(s.ids) }

func (s Selection) Contains(id string) bool { return slices.Contains(s.ids, id) }

func (s Selection) Len() int { return len(s.ids) }

func (s Selection) Empty() bool { return len(s.ids) == 0 }

// Full reports whether further additions would be rejected.
func (s Selection) Full() bool { return len(s.ids) >= s.Max() }

// Max is the selection cap.
func (s Selection) Max() int {
	if s.max <= 0 {
		return DefaultMaxSelected
	}
	return s.max
}

// Confirmation is what a committed selection reports upward.
type Confirmation struct {
	GameIDs     []string
	ResultFlags []bool
	Games       []domaingames.Game
}

// Confirm commits the selection against the fetched games. It is a no-op (ok is false) on an
// empty selection. ResultFlags parallels GameIDs; ids missing from fetched count as no result.
func (s Selection) Confirm(fetched []domaingames.Game) (Confirmation, bool) {
	if s.Empty() {
		return Confirmation{}, false
	}
	byID := make(map[string]domaingames.Game, len(fetched))
	for _, g := range fetched {
		byID[g.ID] = g
	}
	flags := make([]bool, len(s.ids))
	for i, id := range s.ids {
		if g, ok := byID[id]; ok {
			flags[i] = g.HasResult()
		}
	}
	return Confirmation{
		GameIDs:     s.IDs(),
		ResultFlags: flags,
		Games:       slices.Clone(fetched),
	}, true
}
