package board

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/elevens/internal/card"
	"github.com/arcanaland/elevens/internal/deck"
)

// Snapshot is the on-disk form of a board
type Snapshot struct {
	// Deck lists the undealt cards as "<rank> of <suit>", top card last
	Deck  []string    `toml:"deck"`
	Slots []SlotEntry `toml:"slot"`
}

// SlotEntry is one occupied slot of a snapshot
type SlotEntry struct {
	Index      int    `toml:"index"`
	Rank       string `toml:"rank"`
	Suit       string `toml:"suit"`
	PointValue *int   `toml:"point_value,omitempty"`
}

// Snapshot captures the current board and deck
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for i, c := range b.slots {
		if c == nil {
			continue
		}
		value := c.PointValue
		s.Slots = append(s.Slots, SlotEntry{
			Index:      i,
			Rank:       c.Rank,
			Suit:       c.Suit,
			PointValue: &value,
		})
	}
	for _, c := range b.deck.Remaining() {
		s.Deck = append(s.Deck, c.String())
	}
	return s
}

// FromSnapshot rebuilds a board exactly as captured, without dealing
func FromSnapshot(s Snapshot) (*Board, error) {
	b := &Board{}
	for _, entry := range s.Slots {
		if entry.Index < 0 || entry.Index >= Size {
			return nil, fmt.Errorf("%w: %d", ErrSlotOutOfRange, entry.Index)
		}
		if b.slots[entry.Index] != nil {
			return nil, fmt.Errorf("slot %d listed twice", entry.Index)
		}
		c, err := card.New(entry.Rank, entry.Suit)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", entry.Index, err)
		}
		b.slots[entry.Index] = &c
	}

	cards := make([]card.Card, 0, len(s.Deck))
	for i, name := range s.Deck {
		c, err := card.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("deck entry %d: %w", i, err)
		}
		cards = append(cards, c)
	}
	b.deck = deck.FromCards(cards)

	return b, nil
}

// Decode reads a TOML snapshot
func Decode(r io.Reader) (*Board, error) {
	var s Snapshot
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("error decoding board: %w", err)
	}
	return FromSnapshot(s)
}

// Load reads a board from a TOML snapshot file
func Load(path string) (*Board, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening board: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Save writes the board as a TOML snapshot, creating parent directories
func (b *Board) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating board directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating board file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(b.Snapshot()); err != nil {
		return fmt.Errorf("error encoding board: %w", err)
	}
	return nil
}
