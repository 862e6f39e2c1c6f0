package warlight

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexString accepts JSON strings, numbers and booleans. The API is not
// consistent about quoting scalar values.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := wire.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(raw)
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// Int64 parses the value as a base 10 integer.
func (f FlexString) Int64() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(string(f)), 10, 64)
}

// Bool parses the value as a boolean; the API sends "True"/"False".
func (f FlexString) Bool() bool {
	b, err := strconv.ParseBool(strings.TrimSpace(string(f)))
	return err == nil && b
}

// QueryOptions selects optional sections of a game feed.
type QueryOptions struct {
	History  bool
	Settings bool
}

// GameFeed is the decoded GameFeed response. Raw holds the full response
// body for fields not modeled here.
type GameFeed struct {
	ID            FlexString      `json:"id"`
	State         FlexString      `json:"state"`
	Name          FlexString      `json:"name"`
	NumberOfTurns FlexString      `json:"numberOfTurns"`
	TemplateID    FlexString      `json:"templateID"`
	Players       []GamePlayer    `json:"players"`
	Settings      map[string]any  `json:"settings,omitempty"`
	Raw           json.RawMessage `json:"-"`
}

// GamePlayer is a participant as reported by the game feed.
type GamePlayer struct {
	ID                 FlexString `json:"id"`
	Name               FlexString `json:"name"`
	Email              FlexString `json:"email"`
	IsAI               FlexString `json:"isAI"`
	Color              FlexString `json:"color"`
	State              FlexString `json:"state"`
	Team               FlexString `json:"team"`
	HumanTurnedIntoAI  FlexString `json:"humanTurnedIntoAI"`
	HasCommittedOrders FlexString `json:"hasCommittedOrders"`
}

// CreateGameRequest describes a game to create from a template.
type CreateGameRequest struct {
	TemplateID int64
	Name       string
	Message    string
	Teams      []TeamEntry
	// Teamless sends the players without teams when no entry is a multi-player group.
	Teamless bool
	// Settings overrides template settings; sent as an empty object when nil.
	Settings map[string]any
	Bonuses  []Bonus
}

type createGamePayload struct {
	HostEmail         string          `json:"hostEmail"`
	HostAPIToken      string          `json:"hostAPIToken"`
	TemplateID        int64           `json:"templateID"`
	GameName          string          `json:"gameName"`
	PersonalMessage   string          `json:"personalMessage"`
	Players           []Player        `json:"players"`
	Settings          map[string]any  `json:"settings"`
	OverriddenBonuses []BonusOverride `json:"overriddenBonuses,omitempty"`
}

type deleteGamePayload struct {
	Email    string `json:"Email"`
	APIToken string `json:"APIToken"`
	GameID   int64  `json:"gameID"`
}

type mapDetailsPayload struct {
	Email    string       `json:"email"`
	APIToken string       `json:"APIToken"`
	MapID    string       `json:"mapID"`
	Commands []MapCommand `json:"commands"`
}
