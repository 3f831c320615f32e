package card_test

import (
	"testing"

	"github.com/arcanaland/elevens/internal/card"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := card.New("Queen", " Hearts ")
	require.NoError(t, err)
	require.Equal(t, card.Card{Rank: "queen", Suit: "hearts", PointValue: 0}, c)
	require.True(t, c.IsFace())
	require.True(t, c.IsRed())

	c, err = card.New("7", "clubs")
	require.NoError(t, err)
	require.Equal(t, 7, c.PointValue)
	require.False(t, c.IsFace())

	_, err = card.New("joker", "clubs")
	require.Error(t, err)

	_, err = card.New("ace", "stars")
	require.Error(t, err)
}

func TestPointValueTable(t *testing.T) {
	require.Len(t, card.PointValues, len(card.Ranks))

	for i, rank := range card.Ranks {
		v, ok := card.PointValue(rank)
		require.True(t, ok)
		require.Equal(t, card.PointValues[i], v)
	}

	v, _ := card.PointValue("ace")
	require.Equal(t, 1, v)
	v, _ = card.PointValue("10")
	require.Equal(t, 10, v)
	v, _ = card.PointValue("king")
	require.Equal(t, 0, v)
}

func TestParse(t *testing.T) {
	c, err := card.Parse("ace of spades")
	require.NoError(t, err)
	require.Equal(t, "ace of spades", c.String())
	require.Equal(t, "A♠", c.Short())

	c, err = card.Parse("10 OF diamonds")
	require.NoError(t, err)
	require.Equal(t, "10♦", c.Short())

	_, err = card.Parse("ace spades")
	require.Error(t, err)
}
