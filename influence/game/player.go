package game

import "github.com/ratel-online/influence/influence/role"

// Seat is a roster entry used to start a game.
type Seat struct {
	ID   int64
	Name string
}

type Player struct {
	id       int64
	name     string
	coins    int
	hand     []role.Role
	revealed []role.Role
}

func newPlayer(seat Seat) *Player {
	return &Player{id: seat.ID, name: seat.Name}
}

func (p Player) ID() int64 {
	return p.id
}

func (p Player) Name() string {
	return p.name
}

func (p Player) Coins() int {
	return p.coins
}

func (p Player) Hand() []role.Role {
	return append([]role.Role(nil), p.hand...)
}

func (p Player) Revealed() []role.Role {
	return append([]role.Role(nil), p.revealed...)
}

// Alive reports whether the player still holds a concealed card.
func (p Player) Alive() bool {
	return len(p.hand) > 0
}

func (p *Player) has(r role.Role) bool {
	for _, card := range p.hand {
		if card == r {
			return true
		}
	}
	return false
}

// take removes one copy of r from the hand.
func (p *Player) take(r role.Role) bool {
	for i, card := range p.hand {
		if card == r {
			p.hand = append(p.hand[:i:i], p.hand[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Player) give(cards ...role.Role) {
	p.hand = append(p.hand, cards...)
}

func (p *Player) clone() Player {
	c := *p
	c.hand = p.Hand()
	c.revealed = p.Revealed()
	return c
}
