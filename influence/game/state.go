package game

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ratel-online/influence/influence/intent"
	"github.com/ratel-online/influence/influence/role"
)

type PlayerState struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Coins    int         `json:"coins"`
	Hand     []role.Role `json:"hand,omitempty"`
	HandSize int         `json:"handSize"`
	Revealed []role.Role `json:"revealed"`
	Alive    bool        `json:"alive"`
}

// State is the snapshot sent to one viewer. Other players' hands are
// reduced to their size, and only the exchanging player sees the offer.
type State struct {
	GameID        uuid.UUID      `json:"gameId"`
	You           int64          `json:"you"`
	Players       []PlayerState  `json:"players"`
	DeckSize      int            `json:"deckSize"`
	CurrentIndex  int            `json:"currentPlayerIndex"`
	CurrentID     int64          `json:"currentPlayerId"`
	Phase         Phase          `json:"phase"`
	PendingAction *PendingAction `json:"pendingAction"`
	PendingBlock  *PendingBlock  `json:"pendingBlock"`
	RevealRequest *RevealRequest `json:"revealRequest"`
	Passed        []int64        `json:"passedPlayerIds"`
	Exchange      *ExchangeOffer `json:"exchangeOffer"`
	Log           []string       `json:"actionLog"`
	WinnerID      int64          `json:"winnerId,omitempty"`
	Awaiting      []intent.Kind  `json:"awaiting,omitempty"`
}

func (g *Game) ExtractState(viewerID int64) State {
	state := State{
		GameID:       g.id,
		You:          viewerID,
		DeckSize:     g.deck.Size(),
		CurrentIndex: g.current,
		CurrentID:    g.players[g.current].id,
		Phase:        g.phase,
		Passed:       []int64{},
		Log:          g.Log(),
		WinnerID:     g.winner,
		Awaiting:     g.LegalIntents(viewerID),
	}
	for _, p := range g.players {
		ps := PlayerState{
			ID:       p.id,
			Name:     p.name,
			Coins:    p.coins,
			HandSize: len(p.hand),
			Revealed: p.Revealed(),
			Alive:    p.Alive(),
		}
		if p.id == viewerID {
			ps.Hand = p.Hand()
		}
		state.Players = append(state.Players, ps)
		if g.passed[p.id] {
			state.Passed = append(state.Passed, p.id)
		}
	}
	if g.pending != nil {
		pending := *g.pending
		state.PendingAction = &pending
	}
	if g.block != nil {
		block := *g.block
		state.PendingBlock = &block
	}
	if g.reveal != nil {
		reveal := *g.reveal
		state.RevealRequest = &reveal
	}
	if g.exchange != nil {
		offer := ExchangeOffer{PlayerID: g.exchange.PlayerID, Keep: g.exchange.Keep}
		if g.exchange.PlayerID == viewerID {
			offer.Options = append([]role.Role(nil), g.exchange.Options...)
		}
		state.Exchange = &offer
	}
	return state
}

// Player looks up a seat of the snapshot by id.
func (s State) Player(id int64) (PlayerState, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return PlayerState{}, false
}

func (s State) PlayerName(id int64) string {
	if p, ok := s.Player(id); ok {
		return p.Name
	}
	return ""
}

func (s State) String() string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-6s%-16s%-8s%-8s%s\n", "ID", "Name", "Coins", "Cards", "Revealed"))
	for i, p := range s.Players {
		marker := " "
		if i == s.CurrentIndex {
			marker = "*"
		}
		name := p.Name
		if !p.Alive {
			name += " (out)"
		}
		buf.WriteString(fmt.Sprintf("%s%-5d%-16s%-8d%-8d%s\n", marker, p.ID, name, p.Coins, p.HandSize, paint(p.Revealed)))
	}
	if me, ok := s.Player(s.You); ok && len(me.Hand) > 0 {
		buf.WriteString(fmt.Sprintf("Your cards: %s\n", paint(me.Hand)))
	}
	buf.WriteString(fmt.Sprintf("Deck: %d, phase: %s\n", s.DeckSize, s.Phase))
	if s.PendingAction != nil {
		line := fmt.Sprintf("Pending: %s %s", s.PlayerName(s.PendingAction.ActorID), s.PendingAction.Action)
		if s.PendingAction.TargetID != 0 {
			line += " on " + s.PlayerName(s.PendingAction.TargetID)
		}
		if s.PendingAction.Claim.Valid() {
			line += " claiming " + s.PendingAction.Claim.Paint()
		}
		buf.WriteString(line + "\n")
	}
	if s.PendingBlock != nil {
		buf.WriteString(fmt.Sprintf("Block: %s claims %s\n", s.PlayerName(s.PendingBlock.BlockerID), s.PendingBlock.Role.Paint()))
	}
	if s.RevealRequest != nil {
		buf.WriteString(fmt.Sprintf("%s %s and must reveal a card\n", s.PlayerName(s.RevealRequest.PlayerID), s.RevealRequest.Reason.Describe()))
	}
	if s.Exchange != nil && len(s.Exchange.Options) > 0 {
		buf.WriteString(fmt.Sprintf("Exchange options: %s, keep %d\n", paint(s.Exchange.Options), s.Exchange.Keep))
	}
	if n := len(s.Log); n > 0 {
		buf.WriteString(">> " + s.Log[n-1] + "\n")
	}
	if s.WinnerID != 0 {
		buf.WriteString(fmt.Sprintf("%s wins!\n", s.PlayerName(s.WinnerID)))
	}
	for _, kind := range s.Awaiting {
		if prompt, ok := prompts[kind]; ok {
			buf.WriteString(prompt + "\n")
		}
	}
	return buf.String()
}

var prompts = map[intent.Kind]string{
	intent.PerformAction:       "Your turn: income | foreign_aid | tax | steal <id> | assassinate <id> | exchange | coup <id>",
	intent.ChallengeResponse:   "challenge | pass",
	intent.DeclareBlock:        "block <role> | noblock",
	intent.BlockResponse:       "challenge | pass",
	intent.ForeignAidResponse:  "block | pass",
	intent.RevealCard:          "reveal <role>",
	intent.ReturnExchangeCards: "keep <role> ...",
}

func paint(roles []role.Role) string {
	painted := make([]string, len(roles))
	for i, r := range roles {
		painted[i] = r.Paint()
	}
	return strings.Join(painted, " ")
}
