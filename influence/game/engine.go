package game

import (
	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/influence/action"
	"github.com/ratel-online/influence/influence/event"
	"github.com/ratel-online/influence/influence/intent"
	"github.com/ratel-online/influence/influence/role"
)

// PerformAction declares an action for the seated player. The cost is paid
// at declaration and is not refunded if the action is challenged or blocked.
func (g *Game) PerformAction(actorID int64, name string, targetID int64) (bool, error) {
	a, err := action.ByName(name)
	if err != nil {
		return false, err
	}
	if g.phase != PhaseAction {
		return false, nil
	}
	actor := g.players[g.current]
	if actor.id != actorID {
		return false, nil
	}
	entry := a.Entry()
	var target *Player
	if entry.Targeted {
		target = g.player(targetID)
		if target == nil || target == actor || !target.Alive() {
			return false, nil
		}
	}
	if actor.coins < entry.Cost {
		return false, nil
	}

	actor.coins -= entry.Cost
	g.pending = &PendingAction{Action: a, ActorID: actor.id, Claim: entry.Claim}
	payload := event.ActionDeclaredPayload{GameID: g.id, PlayerName: actor.name, Action: a}
	if target != nil {
		g.pending.TargetID = target.id
		payload.TargetName = target.name
		g.logf("%s declares %s on %s", actor.name, a, target.name)
	} else {
		g.logf("%s declares %s", actor.name, a)
	}
	event.ActionDeclared.Emit(payload)

	switch {
	case entry.Challengeable():
		g.setPhase(PhaseChallenge)
	case a == action.Coup:
		g.requestReveal(target.id, TargetedByUnblockableAction)
	case entry.Blockable():
		g.setPhase(PhaseBlockDeclarationPeriod)
	default:
		g.resolve(TargetedByUnblockableAction)
	}
	return true, nil
}

// ChallengeResponse answers a role claim with challenge or pass.
func (g *Game) ChallengeResponse(responderID int64, response intent.Response) (bool, error) {
	if response != intent.Challenge && response != intent.Pass {
		return false, consts.ErrorsIntentMalformed
	}
	if g.phase != PhaseChallenge || !g.canRespond(responderID, g.pending.ActorID) {
		return false, nil
	}
	responder := g.player(responderID)
	if response == intent.Pass {
		g.passed[responderID] = true
		g.logf("%s passes", responder.name)
		if g.allPassed(g.pending.ActorID) {
			g.proceed()
		}
		return true, nil
	}

	actor := g.player(g.pending.ActorID)
	claim := g.pending.Claim
	g.logf("%s challenges %s's %s", responder.name, actor.name, claim)
	if actor.has(claim) {
		g.logf("%s shows %s", actor.name, claim)
		g.cycle(actor, claim)
		g.requestReveal(responder.id, FailedChallenge)
	} else {
		g.requestReveal(actor.id, CaughtBluffing)
	}
	return true, nil
}

// DeclareBlock is the target's answer to a blockable action: a blocking
// role or no_block.
func (g *Game) DeclareBlock(playerID int64, blockType string) (bool, error) {
	noBlock := intent.IsNoBlock(blockType)
	r := role.None
	if !noBlock {
		var err error
		if r, err = role.ByName(blockType); err != nil {
			return false, err
		}
	}
	if g.phase != PhaseDeclareBlock || g.pending.TargetID != playerID {
		return false, nil
	}
	target := g.player(playerID)
	if noBlock {
		g.logf("%s does not block", target.name)
		g.resolve(TargetedByUnblockableAction)
		return true, nil
	}
	if !g.pending.Action.Entry().BlockableBy(r) {
		return false, nil
	}
	g.block = &PendingBlock{BlockerID: playerID, Role: r}
	g.logf("%s blocks with %s", target.name, r)
	g.setPhase(PhaseBlockChallenge)
	return true, nil
}

// BlockResponse answers a declared block with challenge or pass.
func (g *Game) BlockResponse(responderID int64, response intent.Response) (bool, error) {
	if response != intent.Challenge && response != intent.Pass {
		return false, consts.ErrorsIntentMalformed
	}
	if g.phase != PhaseBlockChallenge || !g.canRespond(responderID, g.block.BlockerID) {
		return false, nil
	}
	responder := g.player(responderID)
	if response == intent.Pass {
		g.passed[responderID] = true
		g.logf("%s passes", responder.name)
		if g.allPassed(g.block.BlockerID) {
			g.logf("%s is blocked", g.pending.Action)
			g.advanceTurn()
		}
		return true, nil
	}

	blocker := g.player(g.block.BlockerID)
	g.logf("%s challenges %s's block", responder.name, blocker.name)
	if blocker.has(g.block.Role) {
		g.logf("%s shows %s", blocker.name, g.block.Role)
		g.cycle(blocker, g.block.Role)
		g.requestReveal(responder.id, FailedBlockChallenge)
	} else {
		g.requestReveal(blocker.id, CaughtBluffingBlock)
	}
	return true, nil
}

// ForeignAidResponse lets any other living player block foreign aid, or pass.
func (g *Game) ForeignAidResponse(responderID int64, response intent.Response) (bool, error) {
	if response != intent.Block && response != intent.Pass {
		return false, consts.ErrorsIntentMalformed
	}
	if g.phase != PhaseBlockDeclarationPeriod || !g.canRespond(responderID, g.pending.ActorID) {
		return false, nil
	}
	responder := g.player(responderID)
	if response == intent.Pass {
		g.passed[responderID] = true
		g.logf("%s passes", responder.name)
		if g.allPassed(g.pending.ActorID) {
			g.resolve(TargetedByUnblockableAction)
		}
		return true, nil
	}

	blocker := g.pending.Action.Entry().Blockers[0]
	g.block = &PendingBlock{BlockerID: responderID, Role: blocker}
	g.logf("%s blocks with %s", responder.name, blocker)
	g.setPhase(PhaseBlockChallenge)
	return true, nil
}

// SmuggleGoodsResponse is ForeignAidResponse under its reskinned name.
func (g *Game) SmuggleGoodsResponse(responderID int64, response intent.Response) (bool, error) {
	return g.ForeignAidResponse(responderID, response)
}

// RevealCard turns a concealed card face up for the player who owes one.
// Naming a role the player does not hold is a no-op.
func (g *Game) RevealCard(playerID int64, cardName string) (bool, error) {
	r, err := role.ByName(cardName)
	if err != nil {
		return false, err
	}
	if g.phase != PhaseRevealCard || g.reveal.PlayerID != playerID {
		return false, nil
	}
	p := g.player(playerID)
	if !p.take(r) {
		return false, nil
	}
	p.revealed = append(p.revealed, r)
	g.logf("%s %s and reveals %s", p.name, g.reveal.Reason.Describe(), r)
	event.CardRevealed.Emit(event.CardRevealedPayload{GameID: g.id, PlayerName: p.name, Role: r})
	if !p.Alive() {
		g.logf("%s is eliminated", p.name)
		event.PlayerEliminated.Emit(event.PlayerEliminatedPayload{GameID: g.id, PlayerName: p.name})
	}
	if g.checkWinner() {
		return true, nil
	}

	reason := g.reveal.Reason
	g.reveal = nil
	switch reason {
	case FailedChallenge:
		g.proceed()
	case CaughtBluffingBlock:
		g.block = nil
		g.resolve(TargetedAfterBlockFails)
	case CaughtBluffing, FailedBlockChallenge, TargetedByUnblockableAction, TargetedAfterBlockFails:
		g.advanceTurn()
	}
	return true, nil
}

// ReturnExchangeCards keeps the named cards from the offer and puts the rest
// on the bottom of the deck.
func (g *Game) ReturnExchangeCards(playerID int64, keptCards []string) (bool, error) {
	kept := make([]role.Role, 0, len(keptCards))
	for _, name := range keptCards {
		r, err := role.ByName(name)
		if err != nil {
			return false, err
		}
		kept = append(kept, r)
	}
	if g.phase != PhaseExchangeCards || g.exchange.PlayerID != playerID {
		return false, nil
	}
	if len(kept) != g.exchange.Keep {
		return false, nil
	}
	rest, ok := subtract(g.exchange.Options, kept)
	if !ok {
		return false, nil
	}
	p := g.player(playerID)
	p.hand = kept
	g.deck.ReturnBottom(rest...)
	g.logf("%s exchanges cards", p.name)
	g.advanceTurn()
	return true, nil
}

// proceed continues a claimed action whose claim survived.
func (g *Game) proceed() {
	entry := g.pending.Action.Entry()
	if entry.Blockable() {
		if !entry.Targeted {
			g.setPhase(PhaseBlockDeclarationPeriod)
			return
		}
		if target := g.player(g.pending.TargetID); target != nil && target.Alive() {
			g.setPhase(PhaseDeclareBlock)
			return
		}
	}
	g.resolve(TargetedByUnblockableAction)
}

// resolve applies the pending action's effect. reason is used when the
// effect is a reveal.
func (g *Game) resolve(reason RevealReason) {
	p := g.pending
	actor := g.player(p.ActorID)
	entry := p.Action.Entry()
	switch p.Action {
	case action.Income, action.ForeignAid, action.Tax:
		actor.coins += entry.Gain
		g.logf("%s takes %d coins", actor.name, entry.Gain)
	case action.Steal:
		target := g.player(p.TargetID)
		amount := 0
		if target.Alive() {
			amount = entry.Gain
			if target.coins < amount {
				amount = target.coins
			}
		}
		target.coins -= amount
		actor.coins += amount
		g.logf("%s steals %d coins from %s", actor.name, amount, target.name)
	case action.Assassinate, action.Coup:
		if target := g.player(p.TargetID); target.Alive() {
			g.requestReveal(target.id, reason)
			return
		}
	case action.Exchange:
		g.startExchange(actor)
		return
	}
	g.advanceTurn()
}

func (g *Game) requestReveal(playerID int64, reason RevealReason) {
	g.reveal = &RevealRequest{PlayerID: playerID, Reason: reason}
	g.setPhase(PhaseRevealCard)
}

// cycle returns a proven card to the deck, reshuffles, and draws a replacement.
func (g *Game) cycle(p *Player, r role.Role) {
	p.take(r)
	g.deck.ReturnBottom(r)
	g.deck.Shuffle()
	p.give(g.deck.Draw(1)...)
}

// startExchange draws into the hand so every card stays accounted for.
func (g *Game) startExchange(p *Player) {
	keep := len(p.hand)
	p.give(g.deck.Draw(action.ExchangeDraw)...)
	g.pending = nil
	g.exchange = &ExchangeOffer{PlayerID: p.id, Options: p.Hand(), Keep: keep}
	g.setPhase(PhaseExchangeCards)
}

func (g *Game) canRespond(playerID, excluded int64) bool {
	p := g.player(playerID)
	return p != nil && p.Alive() && p.id != excluded && !g.passed[playerID]
}

func (g *Game) allPassed(excluded int64) bool {
	for _, p := range g.players {
		if p.Alive() && p.id != excluded && !g.passed[p.id] {
			return false
		}
	}
	return true
}

// subtract removes kept from options as a multiset.
func subtract(options, kept []role.Role) ([]role.Role, bool) {
	rest := append([]role.Role(nil), options...)
	for _, k := range kept {
		found := false
		for i, r := range rest {
			if r == k {
				rest = append(rest[:i], rest[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return rest, true
}
