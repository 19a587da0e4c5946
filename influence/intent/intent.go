// Package intent decodes player intents from JSON packets and terminal commands.
package intent

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ratel-online/influence/consts"
	"github.com/ratel-online/influence/influence/action"
)

// Kind names one of the intents a player can send.
type Kind int

const (
	_ Kind = iota
	PerformAction
	ChallengeResponse
	DeclareBlock
	BlockResponse
	ForeignAidResponse
	SmuggleGoodsResponse
	RevealCard
	ReturnExchangeCards
)

var kindNames = map[Kind]string{
	PerformAction:        "performAction",
	ChallengeResponse:    "challengeResponse",
	DeclareBlock:         "declareBlock",
	BlockResponse:        "blockResponse",
	ForeignAidResponse:   "foreignAidResponse",
	SmuggleGoodsResponse: "smuggleGoodsResponse",
	RevealCard:           "revealCard",
	ReturnExchangeCards:  "returnExchangeCards",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return ""
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if strings.EqualFold(name, string(text)) {
			*k = kind
			return nil
		}
	}
	return consts.ErrorsUnknownIntent
}

// Response is the answer to a challenge or block window.
type Response int

const (
	_ Response = iota
	Challenge
	Pass
	Block
)

var responseNames = map[Response]string{
	Challenge: "challenge",
	Pass:      "pass",
	Block:     "block",
}

func (r Response) String() string {
	return responseNames[r]
}

func (r Response) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Response) UnmarshalText(text []byte) error {
	for response, name := range responseNames {
		if strings.EqualFold(name, string(text)) {
			*r = response
			return nil
		}
	}
	return consts.ErrorsIntentMalformed
}

// NoBlock is the declareBlock value that lets the action through.
const NoBlock = "no_block"

func IsNoBlock(blockType string) bool {
	switch strings.ToLower(strings.TrimSpace(blockType)) {
	case NoBlock, "noblock", "no block", "none", "allow":
		return true
	}
	return false
}

type Intent struct {
	Kind      Kind     `json:"type"`
	Action    string   `json:"action,omitempty"`
	TargetID  int64    `json:"targetId,omitempty"`
	Response  Response `json:"response,omitempty"`
	BlockType string   `json:"blockType,omitempty"`
	CardName  string   `json:"cardName,omitempty"`
	KeptCards []string `json:"keptCards,omitempty"`
}

// Validate checks that the fields required by the kind are present.
func (in Intent) Validate() error {
	switch in.Kind {
	case PerformAction:
		if in.Action == "" {
			return consts.ErrorsIntentMalformed
		}
	case ChallengeResponse, BlockResponse, ForeignAidResponse, SmuggleGoodsResponse:
		if in.Response == 0 {
			return consts.ErrorsIntentMalformed
		}
	case DeclareBlock:
		if in.BlockType == "" {
			return consts.ErrorsIntentMalformed
		}
	case RevealCard:
		if in.CardName == "" {
			return consts.ErrorsIntentMalformed
		}
	case ReturnExchangeCards:
		if len(in.KeptCards) == 0 {
			return consts.ErrorsIntentMalformed
		}
	default:
		return consts.ErrorsUnknownIntent
	}
	return nil
}

// Decode reads the JSON form of an intent.
func Decode(data []byte) (Intent, error) {
	var in Intent
	if err := json.Unmarshal(data, &in); err != nil {
		if err == consts.ErrorsUnknownIntent || err == consts.ErrorsIntentMalformed {
			return Intent{}, err
		}
		return Intent{}, consts.ErrorsIntentMalformed
	}
	return in, in.Validate()
}

// Parse accepts either a JSON object or a terminal command. awaiting is the
// kind the sender is expected to answer with, used to disambiguate "pass",
// "challenge" and "block".
func Parse(data []byte, awaiting Kind) (Intent, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return Decode(trimmed)
	}
	return ParseText(string(trimmed), awaiting)
}

func ParseText(line string, awaiting Kind) (Intent, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Intent{}, consts.ErrorsIntentMalformed
	}
	command, args := strings.ToLower(tokens[0]), tokens[1:]

	var in Intent
	switch command {
	case "challenge", "c":
		in = Intent{Kind: ChallengeResponse, Response: Challenge}
		if awaiting == BlockResponse {
			in.Kind = BlockResponse
		}
	case "pass", "p":
		switch awaiting {
		case BlockResponse, ForeignAidResponse, SmuggleGoodsResponse:
			in = Intent{Kind: awaiting, Response: Pass}
		case DeclareBlock:
			in = Intent{Kind: DeclareBlock, BlockType: NoBlock}
		default:
			in = Intent{Kind: ChallengeResponse, Response: Pass}
		}
	case "block", "b":
		switch {
		case awaiting == ForeignAidResponse || awaiting == SmuggleGoodsResponse:
			in = Intent{Kind: awaiting, Response: Block}
		case len(args) > 0:
			in = Intent{Kind: DeclareBlock, BlockType: strings.Join(args, " ")}
		case awaiting == DeclareBlock:
			return Intent{}, consts.ErrorsIntentMalformed
		default:
			in = Intent{Kind: ForeignAidResponse, Response: Block}
		}
	case "noblock", "allow":
		in = Intent{Kind: DeclareBlock, BlockType: NoBlock}
	case "reveal", "r":
		in = Intent{Kind: RevealCard, CardName: strings.Join(args, " ")}
	case "keep", "k":
		in = Intent{Kind: ReturnExchangeCards, KeptCards: args}
	default:
		if _, err := action.ByName(command); err != nil {
			return Intent{}, consts.ErrorsUnknownIntent
		}
		in = Intent{Kind: PerformAction, Action: command}
		if len(args) > 0 {
			target, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return Intent{}, consts.ErrorsIntentMalformed
			}
			in.TargetID = target
		}
	}
	return in, in.Validate()
}
