package game

import "strings"

// Phase is a state of the resolution engine.
type Phase int

const (
	_ Phase = iota
	PhaseAction
	PhaseChallenge
	PhaseDeclareBlock
	PhaseBlockDeclarationPeriod
	PhaseBlockChallenge
	PhaseRevealCard
	PhaseExchangeCards
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseAction:                 "action",
	PhaseChallenge:              "challenge",
	PhaseDeclareBlock:           "declare_block",
	PhaseBlockDeclarationPeriod: "block_declaration_period",
	PhaseBlockChallenge:         "block_challenge",
	PhaseRevealCard:             "reveal_card",
	PhaseExchangeCards:          "exchange_cards",
	PhaseGameOver:               "game_over",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// RevealReason records why a player owes a card, which decides what follows the reveal.
type RevealReason int

const (
	_ RevealReason = iota
	FailedChallenge
	CaughtBluffing
	FailedBlockChallenge
	CaughtBluffingBlock
	TargetedByUnblockableAction
	TargetedAfterBlockFails
)

var reasonNames = map[RevealReason]string{
	FailedChallenge:             "FailedChallenge",
	CaughtBluffing:              "CaughtBluffing",
	FailedBlockChallenge:        "FailedBlockChallenge",
	CaughtBluffingBlock:         "CaughtBluffingBlock",
	TargetedByUnblockableAction: "TargetedByUnblockableAction",
	TargetedAfterBlockFails:     "TargetedAfterBlockFails",
}

func (r RevealReason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}

func (r RevealReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Describe is the human form used in prompts and the action log.
func (r RevealReason) Describe() string {
	switch r {
	case FailedChallenge:
		return "lost a challenge"
	case CaughtBluffing:
		return "was caught bluffing"
	case FailedBlockChallenge:
		return "lost a challenge against a block"
	case CaughtBluffingBlock:
		return "was caught bluffing a block"
	case TargetedByUnblockableAction, TargetedAfterBlockFails:
		return "was hit"
	}
	return strings.ToLower(r.String())
}
