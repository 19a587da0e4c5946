package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/influence/influence/game"
	"github.com/ratel-online/influence/influence/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullDeck = []role.Role{
	role.Duke, role.Duke, role.Duke,
	role.Assassin, role.Assassin, role.Assassin,
	role.Captain, role.Captain, role.Captain,
	role.Ambassador, role.Ambassador, role.Ambassador,
	role.Contessa, role.Contessa, role.Contessa,
}

func TestNewDeck(t *testing.T) {
	deck := game.NewDeck(rand.New(rand.NewSource(7)))
	require.Equal(t, game.DeckSize, deck.Size())
	require.ElementsMatch(t, fullDeck, deck.Cards())
}

func TestDraw(t *testing.T) {
	t.Run("takes_from_the_top", func(t *testing.T) {
		deck := game.NewDeckOf([]role.Role{role.Duke, role.Captain, role.Contessa}, rand.New(rand.NewSource(1)))
		assert.Equal(t, []role.Role{role.Duke, role.Captain}, deck.Draw(2))
		assert.Equal(t, []role.Role{role.Contessa}, deck.Cards())
	})

	t.Run("returns_what_is_left_when_short", func(t *testing.T) {
		deck := game.NewDeckOf([]role.Role{role.Duke}, rand.New(rand.NewSource(1)))
		assert.Equal(t, []role.Role{role.Duke}, deck.Draw(2))
		assert.Empty(t, deck.Draw(1))
		assert.Equal(t, 0, deck.Size())
	})

	t.Run("returns_no_cards_when_argument_is_zero", func(t *testing.T) {
		deck := game.NewDeck(rand.New(rand.NewSource(1)))
		assert.Empty(t, deck.Draw(0))
		assert.Equal(t, game.DeckSize, deck.Size())
	})
}

func TestReturn(t *testing.T) {
	deck := game.NewDeckOf([]role.Role{role.Captain}, rand.New(rand.NewSource(1)))
	deck.ReturnTop(role.Duke)
	deck.ReturnBottom(role.Contessa, role.Assassin)
	assert.Equal(t, []role.Role{role.Duke, role.Captain, role.Contessa, role.Assassin}, deck.Cards())
}

func TestShuffle(t *testing.T) {
	deck := game.NewDeckOf(fullDeck, rand.New(rand.NewSource(3)))
	deck.Shuffle()
	assert.ElementsMatch(t, fullDeck, deck.Cards())
	assert.NotEqual(t, fullDeck, deck.Cards())
}

func TestCardsIsACopy(t *testing.T) {
	deck := game.NewDeckOf([]role.Role{role.Duke}, rand.New(rand.NewSource(1)))
	cards := deck.Cards()
	cards[0] = role.Contessa
	assert.Equal(t, []role.Role{role.Duke}, deck.Cards())
}
