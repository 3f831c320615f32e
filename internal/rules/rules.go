// Package rules decides which groups of cards may be removed in Elevens.
//
// The functions here only read from the board they are given. They hold no
// state and are safe to call concurrently on a board nobody is writing to.
package rules

import "github.com/arcanaland/elevens/internal/card"

// View is the read-only slice of a board the rules need
type View interface {
	// OccupiedIndices returns the indices of the occupied slots, ascending
	OccupiedIndices() []int
	// CardAt returns the card in a slot, false for an empty or unknown slot
	CardAt(index int) (card.Card, bool)
}

// Group names the rule a set of cards satisfies
type Group int

const (
	GroupNone Group = iota
	GroupPair
	GroupTriple
)

func (g Group) String() string {
	switch g {
	case GroupPair:
		return "pair"
	case GroupTriple:
		return "jack-queen-king"
	default:
		return "none"
	}
}

// Sum that a pair of cards must reach to be removed
const Sum = 11

// IsLegalGroup reports whether the selected slots hold a pair summing to 11
// or a jack, a queen and a king.
func IsLegalGroup(v View, selection []int) bool {
	return Classify(v, selection) != GroupNone
}

// Classify returns the rule satisfied by the selected slots. Empty slots and
// repeated indices are ignored.
func Classify(v View, selection []int) Group {
	cards := collect(v, selection)
	if _, ok := findPair(cards); ok {
		return GroupPair
	}
	if _, ok := findTriple(cards); ok {
		return GroupTriple
	}
	return GroupNone
}

// HasAnyLegalMove reports whether any legal group exists on the board
func HasAnyLegalMove(v View) bool {
	_, ok := FindLegalGroup(v)
	return ok
}

// FindLegalGroup returns the slot indices of one legal group on the board.
// Pairs are preferred over the triple.
func FindLegalGroup(v View) ([]int, bool) {
	cards := collect(v, v.OccupiedIndices())
	if group, ok := findPair(cards); ok {
		return group, true
	}
	return findTriple(cards)
}

type slot struct {
	index int
	card  card.Card
}

func collect(v View, indices []int) []slot {
	seen := make(map[int]bool, len(indices))
	slots := make([]slot, 0, len(indices))
	for _, i := range indices {
		if seen[i] {
			continue
		}
		seen[i] = true
		if c, ok := v.CardAt(i); ok {
			slots = append(slots, slot{index: i, card: c})
		}
	}
	return slots
}

func findPair(slots []slot) ([]int, bool) {
	for i := 0; i < len(slots); i++ {
		for j := i + 1; j < len(slots); j++ {
			if slots[i].card.PointValue+slots[j].card.PointValue == Sum {
				return []int{slots[i].index, slots[j].index}, true
			}
		}
	}
	return nil, false
}

func findTriple(slots []slot) ([]int, bool) {
	jack, queen, king := -1, -1, -1
	for _, s := range slots {
		switch s.card.Rank {
		case "jack":
			if jack < 0 {
				jack = s.index
			}
		case "queen":
			if queen < 0 {
				queen = s.index
			}
		case "king":
			if king < 0 {
				king = s.index
			}
		}
	}
	if jack < 0 || queen < 0 || king < 0 {
		return nil, false
	}
	return []int{jack, queen, king}, true
}
