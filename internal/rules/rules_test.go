package rules_test

import (
	"testing"

	"github.com/arcanaland/elevens/internal/card"
	"github.com/arcanaland/elevens/internal/rules"
	"github.com/stretchr/testify/require"
)

// slots is a minimal View; nil entries are empty slots
type slots []*card.Card

func (s slots) OccupiedIndices() []int {
	var out []int
	for i, c := range s {
		if c != nil {
			out = append(out, i)
		}
	}
	return out
}

func (s slots) CardAt(index int) (card.Card, bool) {
	if index < 0 || index >= len(s) || s[index] == nil {
		return card.Card{}, false
	}
	return *s[index], true
}

func mustCard(t *testing.T, rank string) *card.Card {
	t.Helper()
	c, err := card.New(rank, "spades")
	require.NoError(t, err)
	return &c
}

func board(t *testing.T, ranks ...string) slots {
	t.Helper()
	s := make(slots, len(ranks))
	for i, r := range ranks {
		if r != "" {
			s[i] = mustCard(t, r)
		}
	}
	return s
}

func TestIsLegalGroupPairs(t *testing.T) {
	for _, a := range card.Ranks {
		for _, b := range card.Ranks {
			va, _ := card.PointValue(a)
			vb, _ := card.PointValue(b)
			v := board(t, a, b)
			require.Equal(t, va+vb == 11, rules.IsLegalGroup(v, []int{0, 1}), "%s + %s", a, b)
		}
	}
}

func TestIsLegalGroup(t *testing.T) {
	tests := []struct {
		name      string
		board     []string
		selection []int
		expected  rules.Group
	}{
		{"ace and two", []string{"ace", "2"}, []int{0, 1}, rules.GroupNone},
		{"ace and ten", []string{"ace", "10"}, []int{0, 1}, rules.GroupPair},
		{"jack and queen", []string{"jack", "queen"}, []int{0, 1}, rules.GroupNone},
		{"jack queen king", []string{"jack", "queen", "king"}, []int{0, 1, 2}, rules.GroupTriple},
		{"king queen jack reversed", []string{"jack", "queen", "king"}, []int{2, 1, 0}, rules.GroupTriple},
		{"triple with extra card", []string{"jack", "2", "queen", "king"}, []int{0, 1, 2, 3}, rules.GroupTriple},
		{"pair not adjacent", []string{"3", "2", "4", "8"}, []int{0, 1, 2, 3}, rules.GroupPair},
		{"unselected partner", []string{"3", "8"}, []int{0}, rules.GroupNone},
		{"same index twice", []string{"ace", "5"}, []int{1, 1}, rules.GroupNone},
		{"empty slot ignored", []string{"5", "", "6"}, []int{0, 1, 2}, rules.GroupPair},
		{"only empty slots", []string{"", ""}, []int{0, 1}, rules.GroupNone},
		{"out of range", []string{"5"}, []int{0, 9, -1}, rules.GroupNone},
		{"empty selection", []string{"5", "6"}, nil, rules.GroupNone},
		{"face cards alone", []string{"jack", "jack", "king"}, []int{0, 1, 2}, rules.GroupNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board(t, tt.board...)
			require.Equal(t, tt.expected, rules.Classify(b, tt.selection))
			require.Equal(t, tt.expected != rules.GroupNone, rules.IsLegalGroup(b, tt.selection))
		})
	}
}

func TestIsLegalGroupIsSymmetric(t *testing.T) {
	b := board(t, "2", "queen", "7", "jack", "4", "king")
	base := []int{0, 1, 2, 3, 4, 5}
	expected := rules.IsLegalGroup(b, base)
	require.True(t, expected)

	permutations := [][]int{
		{5, 4, 3, 2, 1, 0},
		{1, 3, 5, 0, 2, 4},
		{4, 0, 5, 1, 3, 2},
	}
	for _, p := range permutations {
		require.Equal(t, expected, rules.IsLegalGroup(b, p))
	}

	noMove := board(t, "2", "3", "queen", "king")
	require.False(t, rules.IsLegalGroup(noMove, []int{0, 1, 2, 3}))
	require.False(t, rules.IsLegalGroup(noMove, []int{3, 2, 1, 0}))
}

func TestHasAnyLegalMove(t *testing.T) {
	tests := []struct {
		name     string
		board    []string
		expected bool
	}{
		{"empty board", []string{"", "", "", "", "", "", "", "", ""}, false},
		{"no slots", nil, false},
		{"pair present", []string{"2", "", "9"}, true},
		{"triple scattered", []string{"jack", "2", "3", "queen", "4", "", "king"}, true},
		{"missing king", []string{"jack", "queen", "2", "3", "4", "2", "3", "4", "ace"}, false},
		{"no pair", []string{"ace", "2", "3", "4", "5", "ace", "2", "3", "4"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := board(t, tt.board...)
			require.Equal(t, tt.expected, rules.HasAnyLegalMove(b))

			group, ok := rules.FindLegalGroup(b)
			require.Equal(t, tt.expected, ok)
			if ok {
				require.True(t, rules.IsLegalGroup(b, group))
			}
		})
	}
}

// HasAnyLegalMove must agree with a brute-force pair and triple search
func TestHasAnyLegalMoveMatchesExhaustiveSearch(t *testing.T) {
	hands := [][]string{
		{"ace", "2", "3", "4", "5", "jack", "queen", "ace", "2"},
		{"ace", "2", "3", "4", "7", "jack", "queen", "ace", "2"},
		{"king", "king", "king", "queen", "queen", "10", "9", "8", "7"},
		{"king", "king", "king", "queen", "queen", "jack", "9", "8", "7"},
		{"6", "6", "6", "6", "", "", "", "", "3"},
	}

	for _, hand := range hands {
		b := board(t, hand...)
		occupied := b.OccupiedIndices()

		expected := false
		for i := 0; i < len(occupied); i++ {
			for j := i + 1; j < len(occupied); j++ {
				if rules.IsLegalGroup(b, []int{occupied[i], occupied[j]}) {
					expected = true
				}
			}
		}
		if rules.IsLegalGroup(b, occupied) {
			expected = true
		}

		require.Equal(t, expected, rules.HasAnyLegalMove(b), "%v", hand)
	}
}

func TestClearDownScenario(t *testing.T) {
	b := board(t, "3", "8", "5", "6", "ace", "9", "jack", "queen", "king")
	require.True(t, rules.HasAnyLegalMove(b))

	require.True(t, rules.IsLegalGroup(b, []int{0, 1}))
	b[0], b[1] = nil, nil
	require.True(t, rules.HasAnyLegalMove(b))

	require.True(t, rules.IsLegalGroup(b, []int{2, 3}))
	b[2], b[3] = nil, nil
	require.True(t, rules.HasAnyLegalMove(b))

	// 1 + 9 = 10, not a pair; only the triple is left to play
	require.False(t, rules.IsLegalGroup(b, []int{4, 5}))
	b[4], b[5] = nil, nil

	require.True(t, rules.HasAnyLegalMove(b))
	require.True(t, rules.IsLegalGroup(b, []int{6, 7, 8}))
	b[6], b[7], b[8] = nil, nil, nil

	require.False(t, rules.HasAnyLegalMove(b))
}

func TestRulesDoNotMutateBoard(t *testing.T) {
	b := board(t, "3", "8", "jack", "queen", "king")
	before := make(slots, len(b))
	for i, c := range b {
		cp := *c
		before[i] = &cp
	}

	rules.IsLegalGroup(b, []int{0, 1, 2, 3, 4})
	rules.HasAnyLegalMove(b)
	rules.FindLegalGroup(b)

	require.Equal(t, before, b)
}
