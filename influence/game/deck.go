package game

import (
	"math/rand"

	"github.com/ratel-online/influence/influence/role"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = role.Copies * 5

// Deck is an ordered pile of roles. Index 0 is the top.
type Deck struct {
	cards []role.Role
	rand  *rand.Rand
}

// NewDeck returns a full shuffled deck.
func NewDeck(r *rand.Rand) *Deck {
	cards := make([]role.Role, 0, DeckSize)
	for _, each := range role.All {
		for i := 0; i < role.Copies; i++ {
			cards = append(cards, each)
		}
	}
	deck := NewDeckOf(cards, r)
	deck.Shuffle()
	return deck
}

// NewDeckOf returns a deck holding cards in the given order, top first.
func NewDeckOf(cards []role.Role, r *rand.Rand) *Deck {
	return &Deck{
		cards: append([]role.Role(nil), cards...),
		rand:  r,
	}
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []role.Role {
	return append([]role.Role(nil), d.cards...)
}

// Draw takes up to amount cards from the top.
func (d *Deck) Draw(amount int) []role.Role {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := append([]role.Role(nil), d.cards[:amount]...)
	d.cards = d.cards[amount:]
	return cards
}

func (d *Deck) ReturnTop(cards ...role.Role) {
	d.cards = append(append([]role.Role(nil), cards...), d.cards...)
}

func (d *Deck) ReturnBottom(cards ...role.Role) {
	d.cards = append(d.cards, cards...)
}

// Shuffle permutes the whole deck.
func (d *Deck) Shuffle() {
	d.rand.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}
