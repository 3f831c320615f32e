package card

import (
	"fmt"
	"strings"
)

// Ranks of the cards dealt in Elevens, in deck order
var Ranks = []string{
	"ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "jack", "queen", "king",
}

// Suits of the cards dealt in Elevens
var Suits = []string{"spades", "hearts", "diamonds", "clubs"}

// PointValues holds the point value of each entry in Ranks
var PointValues = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 0, 0, 0}

// Card represents a playing card
type Card struct {
	Rank       string // ace, 2..10, jack, queen, king
	Suit       string // spades, hearts, diamonds, clubs
	PointValue int    // ace=1 .. 10=10, face cards 0
}

// New builds a card, taking its point value from the rank table
func New(rank, suit string) (Card, error) {
	rank = strings.ToLower(strings.TrimSpace(rank))
	suit = strings.ToLower(strings.TrimSpace(suit))

	value, ok := PointValue(rank)
	if !ok {
		return Card{}, fmt.Errorf("unknown rank: %q", rank)
	}
	if !isSuit(suit) {
		return Card{}, fmt.Errorf("unknown suit: %q", suit)
	}

	return Card{Rank: rank, Suit: suit, PointValue: value}, nil
}

// Parse reads a card written as "<rank> of <suit>"
func Parse(s string) (Card, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 || strings.ToLower(parts[1]) != "of" {
		return Card{}, fmt.Errorf("invalid card format: %q", s)
	}
	return New(parts[0], parts[2])
}

// PointValue returns the point value of a rank
func PointValue(rank string) (int, bool) {
	for i, r := range Ranks {
		if r == rank {
			return PointValues[i], true
		}
	}
	return 0, false
}

// IsFace reports whether the card is a jack, queen or king
func (c Card) IsFace() bool {
	return c.Rank == "jack" || c.Rank == "queen" || c.Rank == "king"
}

// IsRed reports whether the card is a heart or a diamond
func (c Card) IsRed() bool {
	return c.Suit == "hearts" || c.Suit == "diamonds"
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Short returns a compact label such as "Q♥"
func (c Card) Short() string {
	var rank string
	switch c.Rank {
	case "ace":
		rank = "A"
	case "jack":
		rank = "J"
	case "queen":
		rank = "Q"
	case "king":
		rank = "K"
	default:
		rank = c.Rank
	}
	return rank + suitSymbol(c.Suit)
}

func suitSymbol(suit string) string {
	switch suit {
	case "spades":
		return "♠"
	case "hearts":
		return "♥"
	case "diamonds":
		return "♦"
	case "clubs":
		return "♣"
	default:
		return "•"
	}
}

func isSuit(suit string) bool {
	for _, s := range Suits {
		if s == suit {
			return true
		}
	}
	return false
}
