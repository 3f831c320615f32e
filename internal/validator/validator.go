package validator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/elevens/internal/board"
	"github.com/arcanaland/elevens/internal/card"
	"github.com/arcanaland/elevens/internal/rules"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	BoardPath string
	Results   ValidationResults

	snapshot board.Snapshot
	seen     map[card.Card]string
}

func NewValidator(boardPath string) *Validator {
	return &Validator{
		BoardPath: boardPath,
		Results:   ValidationResults{},
		seen:      make(map[card.Card]string),
	}
}

// Validate checks a board snapshot file. Only an unreadable or malformed
// file is returned as an error; everything else lands in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decodeBoardToml(); err != nil {
		return v.Results, err
	}

	v.validateSlots()
	v.validateDeck()
	v.validateCardCount()

	if len(v.Results.Errors) == 0 {
		v.validatePlayable()
	}

	return v.Results, nil
}

func (v *Validator) decodeBoardToml() error {
	if _, err := os.Stat(v.BoardPath); os.IsNotExist(err) {
		return fmt.Errorf("board file not found: %s", v.BoardPath)
	}

	if _, err := toml.DecodeFile(v.BoardPath, &v.snapshot); err != nil {
		return fmt.Errorf("error parsing board file: %w", err)
	}
	return nil
}

// validateSlots checks every occupied slot entry
func (v *Validator) validateSlots() {
	indices := make(map[int]bool)

	for _, entry := range v.snapshot.Slots {
		if entry.Index < 0 || entry.Index >= board.Size {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("slot index %d out of range (0-%d)", entry.Index, board.Size-1))
			continue
		}
		if indices[entry.Index] {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("slot %d is listed more than once", entry.Index))
			continue
		}
		indices[entry.Index] = true

		c, err := card.New(entry.Rank, entry.Suit)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("slot %d: %v", entry.Index, err))
			continue
		}

		if entry.PointValue != nil && *entry.PointValue != c.PointValue {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("slot %d: point_value %d does not match %s (%d)",
					entry.Index, *entry.PointValue, c, c.PointValue))
		}

		v.track(c, fmt.Sprintf("slot %d", entry.Index))
	}
}

// validateDeck checks the undealt cards
func (v *Validator) validateDeck() {
	for i, name := range v.snapshot.Deck {
		c, err := card.Parse(name)
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("deck entry %d: %v", i, err))
			continue
		}
		v.track(c, fmt.Sprintf("deck entry %d", i))
	}
}

// validateCardCount checks the snapshot fits in a single deck
func (v *Validator) validateCardCount() {
	total := len(v.snapshot.Slots) + len(v.snapshot.Deck)
	limit := len(card.Ranks) * len(card.Suits)
	if total > limit {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("snapshot holds %d cards, a deck only has %d", total, limit))
	}
}

// validatePlayable warns about boards that cannot continue normally
func (v *Validator) validatePlayable() {
	b, err := board.FromSnapshot(v.snapshot)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return
	}

	occupied := len(b.OccupiedIndices())
	if occupied < board.Size && b.DeckSize() > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("board has %d empty slots but %d cards remain in the deck", board.Size-occupied, b.DeckSize()))
	}

	if b.GameIsWon() {
		return
	}
	if !rules.HasAnyLegalMove(b) {
		v.Results.Warnings = append(v.Results.Warnings, "no legal move remains on the board")
	}
}

func (v *Validator) track(c card.Card, where string) {
	if first, ok := v.seen[c]; ok {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s duplicates %s (%s)", where, first, c))
		return
	}
	v.seen[c] = where
}
