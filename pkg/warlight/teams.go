package warlight

import (
	"fmt"
	"strconv"
	"strings"
)

// NoTeam is the team value sent for every player of a teamless game.
const NoTeam = "None"

// Player is one participant of a created game as the API expects it.
type Player struct {
	Token string `json:"token"`
	Team  string `json:"team"`
}

// TeamEntry is one element of a team specification: either a bare player
// identifier or an ordered group of identifiers.
type TeamEntry struct {
	members []string
	group   bool
}

// Solo returns an entry for a single player identifier.
func Solo(id any) TeamEntry {
	return TeamEntry{members: []string{fmt.Sprint(id)}}
}

// Group returns an entry for an ordered group of player identifiers.
// A group of one is still a group.
func Group(ids ...any) TeamEntry {
	members := make([]string, 0, len(ids))
	for _, id := range ids {
		members = append(members, fmt.Sprint(id))
	}
	return TeamEntry{members: members, group: true}
}

// Members returns the string forms of the entry's identifiers.
func (e TeamEntry) Members() []string {
	return append([]string(nil), e.members...)
}

// IsGroup reports whether the entry was built with Group.
func (e TeamEntry) IsGroup() bool {
	return e.group
}

func (e TeamEntry) multiPlayer() bool {
	return e.group && len(e.members) > 1
}

// CanBeTeamless reports whether a game with these teams can be created without
// explicit teams. It never is when allowTeamless is false.
func CanBeTeamless(teams []TeamEntry, allowTeamless bool) bool {
	if !allowTeamless {
		return false
	}
	for _, team := range teams {
		if team.multiPlayer() {
			return false
		}
	}
	return true
}

// MakePlayers flattens a team specification into player records. Team indices
// follow entry positions. In teamless mode a group only contributes its first
// member.
func MakePlayers(teams []TeamEntry, allowTeamless bool) []Player {
	teamless := CanBeTeamless(teams, allowTeamless)

	players := make([]Player, 0, len(teams))
	for teamID, team := range teams {
		if teamless {
			if len(team.members) > 0 {
				players = append(players, Player{Token: team.members[0], Team: NoTeam})
			}
			continue
		}
		id := strconv.Itoa(teamID)
		for _, member := range team.members {
			players = append(players, Player{Token: member, Team: id})
		}
	}
	return players
}

// ParseTeams reads a whitespace separated team specification such as
// "[0,1] [2,3]" or "0 1 [2]". Bracketed or comma separated entries are groups.
func ParseTeams(spec string) ([]TeamEntry, error) {
	fields := strings.Fields(spec)
	teams := make([]TeamEntry, 0, len(fields))
	for _, field := range fields {
		entry, err := parseTeamEntry(field)
		if err != nil {
			return nil, err
		}
		teams = append(teams, entry)
	}
	return teams, nil
}

func parseTeamEntry(field string) (TeamEntry, error) {
	raw := field
	bracketed := strings.HasPrefix(raw, "[") || strings.HasSuffix(raw, "]")
	if bracketed {
		if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
			return TeamEntry{}, argError("parse_teams", "team", fmt.Sprintf("unbalanced brackets in %q", field))
		}
		raw = strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	}
	if strings.ContainsAny(raw, "[]") {
		return TeamEntry{}, argError("parse_teams", "team", fmt.Sprintf("nested or stray brackets in %q", field))
	}

	if !bracketed && !strings.Contains(raw, ",") {
		return Solo(raw), nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]any, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return TeamEntry{}, argError("parse_teams", "team", fmt.Sprintf("empty player in %q", field))
		}
		ids = append(ids, part)
	}
	return Group(ids...), nil
}
