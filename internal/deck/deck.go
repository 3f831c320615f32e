package deck

import (
	"math/rand/v2"

	"github.com/arcanaland/elevens/internal/card"
)

// Deck represents the undealt cards of an Elevens game. The top of the deck
// is the end of the slice.
type Deck struct {
	cards []card.Card
}

// New builds an ordered 52-card deck from the rank and suit tables
func New() *Deck {
	cards := make([]card.Card, 0, len(card.Ranks)*len(card.Suits))
	for _, suit := range card.Suits {
		for i, rank := range card.Ranks {
			cards = append(cards, card.Card{
				Rank:       rank,
				Suit:       suit,
				PointValue: card.PointValues[i],
			})
		}
	}
	return &Deck{cards: cards}
}

// FromCards builds a deck holding the given cards, the last one on top
func FromCards(cards []card.Card) *Deck {
	return &Deck{cards: append([]card.Card(nil), cards...)}
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card
func (d *Deck) Deal() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// Size returns the number of undealt cards
func (d *Deck) Size() int {
	return len(d.cards)
}

// IsEmpty reports whether every card has been dealt
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Remaining returns a copy of the undealt cards, bottom first
func (d *Deck) Remaining() []card.Card {
	return append([]card.Card(nil), d.cards...)
}
