package games

import (
	"slices"
	"time"

	domaingames "github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/providers"
	"github.com/preston-bernstein/club-studio/internal/timeutil"
)

// Partitions buckets games relative to a reference day.
type Partitions struct {
	Past   []domaingames.Game
	Today  []domaingames.Game
	Future []domaingames.Game
}

type datedGame struct {
	game domaingames.Game
	day  time.Time
}

// Partition classifies games against today, which is truncated to midnight in its own
// location. Past games are sorted most recent first, today and future games ascending.
// Equal dates keep upstream order. Games whose date cannot be parsed are left out of every
// bucket and reported as *providers.DateParseError.
func Partition(list []domaingames.Game, today time.Time) (Partitions, []error) {
	loc := today.Location()
	ref := timeutil.Midnight(today, loc)

	var past, present, future []datedGame
	var skipped []error
	for _, g := range list {
		day, err := timeutil.ParseGameDate(g.Date, loc)
		if err != nil {
			skipped = append(skipped, &providers.DateParseError{GameID: g.ID, Value: g.Date, Err: err})
			continue
		}
		dg := datedGame{game: g, day: day}
		switch {
		case day.Before(ref):
			past = append(past, dg)
		case day.Equal(ref):
			present = append(present, dg)
		default:
			future = append(future, dg)
		}
	}

	slices.SortStableFunc(past, func(a, b datedGame) int { return b.day.Compare(a.day) })
	slices.SortStableFunc(future, func(a, b datedGame) int { return a.day.Compare(b.day) })

	return Partitions{
		Past:   unwrap(past),
		Today:  unwrap(present),
		Future: unwrap(future),
	}, skipped
}

// Ordered is past ++ today ++ future, or today ++ future without past games.
func (p Partitions) Ordered(includePast bool) []domaingames.Game {
	out := make([]domaingames.Game, 0, len(p.Past)+len(p.Today)+len(p.Future))
	if includePast {
		out = append(out, p.Past...)
	}
	out = append(out, p.Today...)
	return append(out, p.Future...)
}

// Group collects games sharing the same date string, in order of first appearance.
func Group(ordered []domaingames.Game) []domaingames.DateGroup {
	groups := make([]domaingames.DateGroup, 0)
	index := make(map[string]int)
	for _, g := range ordered {
		i, ok := index[g.Date]
		if !ok {
			i = len(groups)
			index[g.Date] = i
			groups = append(groups, domaingames.DateGroup{Date: g.Date})
		}
		groups[i].Games = append(groups[i].Games, g)
	}
	for i := range groups {
		groups[i].MultiGame = len(groups[i].Games) > 1
	}
	return groups
}

func unwrap(list []datedGame) []domaingames.Game {
	out := make([]domaingames.Game, 0, len(list))
	for _, dg := range list {
		out = append(out, dg.game)
	}
	return out
}
