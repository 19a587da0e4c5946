package action

import (
	"strings"

	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/influence/role"
)

// Action is a turn action. The zero value is not an action.
type Action int

const (
	_ Action = iota
	Income
	ForeignAid
	Tax
	Steal
	Assassinate
	Exchange
	Coup
)

// Entry is one row of the action catalog.
type Entry struct {
	Action   Action
	Name     string
	Aliases  []string
	Cost     int
	Claim    role.Role
	Targeted bool
	Blockers []role.Role
	// Gain is the coin delta for the actor, or the most coins taken from the target for Steal.
	Gain int
}

// StealAmount is the most coins a steal can take.
const StealAmount = 2

// ExchangeDraw is the number of cards drawn by an exchange.
const ExchangeDraw = 2

var catalog = map[Action]Entry{
	Income: {
		Action:  Income,
		Name:    "income",
		Aliases: []string{"harvest"},
		Gain:    1,
	},
	ForeignAid: {
		Action:   ForeignAid,
		Name:     "foreign_aid",
		Aliases:  []string{"foreign-aid", "foreignaid", "aid", "smuggle_goods", "smugglegoods", "smuggle"},
		Blockers: []role.Role{role.Duke},
		Gain:     2,
	},
	Tax: {
		Action: Tax,
		Name:   "tax",
		Claim:  role.Duke,
		Gain:   3,
	},
	Steal: {
		Action:   Steal,
		Name:     "steal",
		Claim:    role.Captain,
		Targeted: true,
		Blockers: []role.Role{role.Contessa, role.Captain},
		Gain:     StealAmount,
	},
	Assassinate: {
		Action:   Assassinate,
		Name:     "assassinate",
		Aliases:  []string{"assassination"},
		Cost:     3,
		Claim:    role.Assassin,
		Targeted: true,
		Blockers: []role.Role{role.Contessa},
	},
	Exchange: {
		Action: Exchange,
		Name:   "exchange",
		Claim:  role.Ambassador,
	},
	Coup: {
		Action:   Coup,
		Name:     "coup",
		Aliases:  []string{"overthrow"},
		Cost:     7,
		Targeted: true,
	},
}

// All lists every action in catalog order.
var All = []Action{Income, ForeignAid, Tax, Steal, Assassinate, Exchange, Coup}

var byName = func() map[string]Action {
	m := map[string]Action{}
	for _, a := range All {
		entry := catalog[a]
		m[entry.Name] = a
		for _, alias := range entry.Aliases {
			m[alias] = a
		}
	}
	return m
}()

func (a Action) Valid() bool {
	_, ok := catalog[a]
	return ok
}

// Entry returns the catalog row. It panics on an invalid action.
func (a Action) Entry() Entry {
	entry, ok := catalog[a]
	if !ok {
		panic("action: unknown action")
	}
	return entry
}

func (a Action) String() string {
	if entry, ok := catalog[a]; ok {
		return entry.Name
	}
	return "unknown"
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ByName(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ByName resolves an action name or alias, ignoring case.
func ByName(name string) (Action, error) {
	if a, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return 0, consts.ErrorsUnknownAction
}

// Challengeable reports whether the action carries a role claim.
func (e Entry) Challengeable() bool {
	return e.Claim != role.None
}

func (e Entry) Blockable() bool {
	return len(e.Blockers) > 0
}

func (e Entry) BlockableBy(r role.Role) bool {
	for _, blocker := range e.Blockers {
		if blocker == r {
			return true
		}
	}
	return false
}
