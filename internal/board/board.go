// Package board holds the nine card slots of an Elevens game and the deck
// that refills them.
package board

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/elevens/internal/card"
	"github.com/arcanaland/elevens/internal/deck"
)

// Size is the number of slots on an Elevens board
const Size = 9

var (
	ErrSlotOutOfRange = errors.New("slot out of range")
	ErrSlotEmpty      = errors.New("slot is empty")
)

// Board represents the cards in play and the undealt deck
type Board struct {
	slots [Size]*card.Card
	deck  *deck.Deck
}

// New deals a board from the given deck
func New(d *deck.Deck) *Board {
	b := &Board{deck: d}
	b.fill()
	return b
}

// NewGame shuffles a fresh deck and deals a board from it
func NewGame(r *rand.Rand) *Board {
	d := deck.New()
	d.Shuffle(r)
	return New(d)
}

// OccupiedIndices returns the indices of the slots holding a card
func (b *Board) OccupiedIndices() []int {
	indices := make([]int, 0, Size)
	for i, c := range b.slots {
		if c != nil {
			indices = append(indices, i)
		}
	}
	return indices
}

// CardAt returns the card in a slot
func (b *Board) CardAt(index int) (card.Card, bool) {
	if index < 0 || index >= Size || b.slots[index] == nil {
		return card.Card{}, false
	}
	return *b.slots[index], true
}

// Replace removes the selected cards and deals replacements into their
// slots. Slots stay empty once the deck runs out. Nothing changes if any
// index is out of range or empty.
func (b *Board) Replace(selection []int) error {
	seen := make(map[int]bool, len(selection))
	for _, i := range selection {
		if i < 0 || i >= Size {
			return fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
		}
		if b.slots[i] == nil {
			return fmt.Errorf("%w: %d", ErrSlotEmpty, i)
		}
		seen[i] = true
	}

	for _, i := range selection {
		if !seen[i] {
			continue
		}
		delete(seen, i)

		b.slots[i] = nil
		if c, ok := b.deck.Deal(); ok {
			b.slots[i] = &c
		}
	}
	return nil
}

// IsEmpty reports whether no slot holds a card
func (b *Board) IsEmpty() bool {
	return len(b.OccupiedIndices()) == 0
}

// DeckSize returns the number of undealt cards
func (b *Board) DeckSize() int {
	return b.deck.Size()
}

// GameIsWon reports whether every card has been dealt and removed
func (b *Board) GameIsWon() bool {
	return b.deck.IsEmpty() && b.IsEmpty()
}

func (b *Board) fill() {
	for i := range b.slots {
		if b.slots[i] != nil {
			continue
		}
		c, ok := b.deck.Deal()
		if !ok {
			return
		}
		b.slots[i] = &c
	}
}
