package warlight

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceKind selects what a game id listing is scoped to.
type SourceKind string

const (
	SourceLadder     SourceKind = "ladder"
	SourceTournament SourceKind = "tournament"
)

// GameSource names a ladder or tournament.
type GameSource struct {
	Kind SourceKind
	ID   int64
}

// Ladder returns the source for a ladder id.
func Ladder(id int64) GameSource {
	return GameSource{Kind: SourceLadder, ID: id}
}

// Tournament returns the source for a tournament id.
func Tournament(id int64) GameSource {
	return GameSource{Kind: SourceTournament, ID: id}
}

// ParseGameSource reads a (kind, id) pair such as ("ladder", "4"). Anything
// other than exactly two arguments is rejected.
func ParseGameSource(args ...string) (GameSource, error) {
	if len(args) != 2 {
		return GameSource{}, argError(OpGameIDs, "source", fmt.Sprintf("need both source type and id, got %d arguments", len(args)))
	}
	kind, err := parseSourceKind(args[0])
	if err != nil {
		return GameSource{}, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(args[1]), 10, 64)
	if err != nil {
		return GameSource{}, argError(OpGameIDs, "source id", fmt.Sprintf("%q is not an integer", args[1]))
	}
	return GameSource{Kind: kind, ID: id}, nil
}

func parseSourceKind(raw string) (SourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(SourceLadder):
		return SourceLadder, nil
	case string(SourceTournament):
		return SourceTournament, nil
	default:
		return "", argError(OpGameIDs, "source type", fmt.Sprintf("%q must be either ladder or tournament", raw))
	}
}

func (s GameSource) validate(op string) *ArgumentError {
	if s.Kind != SourceLadder && s.Kind != SourceTournament {
		return argError(op, "source type", fmt.Sprintf("%q must be either ladder or tournament", s.Kind))
	}
	return nil
}

func (s GameSource) param() string {
	if s.Kind == SourceTournament {
		return "TournamentID"
	}
	return "LadderID"
}
