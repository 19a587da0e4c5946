package game

import "github.com/ratel-online/influence/influence/event"

// advanceTurn clears every pending record and seats the next living player.
func (g *Game) advanceTurn() {
	g.pending = nil
	g.block = nil
	g.reveal = nil
	g.exchange = nil
	g.current = g.nextSeat(g.current)
	g.setPhase(PhaseAction)
}

// nextSeat returns the first living seat after from, wrapping around.
func (g *Game) nextSeat(from int) int {
	count := len(g.players)
	for step := 1; step <= count; step++ {
		seat := (from + step) % count
		if g.players[seat].Alive() {
			return seat
		}
	}
	return from
}

// checkWinner ends the game when exactly one player is alive.
func (g *Game) checkWinner() bool {
	var last *Player
	seat := 0
	for i, p := range g.players {
		if !p.Alive() {
			continue
		}
		if last != nil {
			return false
		}
		last, seat = p, i
	}
	if last == nil {
		return false
	}
	g.pending = nil
	g.block = nil
	g.reveal = nil
	g.exchange = nil
	g.current = seat
	g.winner = last.id
	g.setPhase(PhaseGameOver)
	g.logf("%s wins", last.name)
	event.GameOver.Emit(event.GameOverPayload{GameID: g.id, WinnerID: last.id, WinnerName: last.name})
	return true
}
