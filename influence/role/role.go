package role

import (
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/ratel-online/influence/consts"
)

// Role is a hidden card type. The zero value is None.
type Role int

const (
	None Role = iota
	Duke
	Assassin
	Captain
	Ambassador
	Contessa
)

// Copies is the number of cards of each role in the deck.
const Copies = 3

// All lists every role in deck order.
var All = []Role{Duke, Assassin, Captain, Ambassador, Contessa}

var canonical = [...]string{"", "Duke", "Assassin", "Captain", "Ambassador", "Contessa"}

var (
	mu    sync.RWMutex
	names = canonical
)

var painters = map[Role]func(string, ...interface{}) string{
	Duke:       color.New(color.FgHiMagenta).SprintfFunc(),
	Assassin:   color.New(color.FgHiRed).SprintfFunc(),
	Captain:    color.New(color.FgHiCyan).SprintfFunc(),
	Ambassador: color.New(color.FgHiGreen).SprintfFunc(),
	Contessa:   color.New(color.FgHiYellow).SprintfFunc(),
}

func (r Role) Valid() bool {
	return r >= Duke && r <= Contessa
}

func (r Role) String() string {
	if !r.Valid() {
		return "None"
	}
	mu.RLock()
	defer mu.RUnlock()
	return names[r]
}

// Paint returns the display name coloured for terminals.
func (r Role) Paint() string {
	paint, ok := painters[r]
	if !ok {
		return r.String()
	}
	return paint(r.String())
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ByName(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ByName resolves a display name or a classic name, ignoring case.
// Display names win, so a reskin may reuse another role's classic name.
func ByName(name string) (Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return None, consts.ErrorsUnknownRole
	}
	mu.RLock()
	defer mu.RUnlock()
	for _, r := range All {
		if strings.EqualFold(names[r], name) {
			return r, nil
		}
	}
	for _, r := range All {
		if strings.EqualFold(canonical[r], name) {
			return r, nil
		}
	}
	return None, consts.ErrorsUnknownRole
}

// Rename reskins the five roles, in the order of All.
func Rename(displayNames []string) error {
	if len(displayNames) != len(All) {
		return consts.ErrorsRoleNames
	}
	seen := map[string]bool{}
	next := canonical
	for i, name := range displayNames {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			return consts.ErrorsRoleNames
		}
		seen[key] = true
		next[All[i]] = name
	}
	mu.Lock()
	names = next
	mu.Unlock()
	return nil
}

// Reset restores the classic names.
func Reset() {
	mu.Lock()
	names = canonical
	mu.Unlock()
}

// Names returns the display names of the given roles.
func Names(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.String()
	}
	return out
}
