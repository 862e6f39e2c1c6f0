// Package fixture provides an in-memory stand-in for the Warlight API,
// useful for local testing and end-to-end tests of the client.
package fixture

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Email and Password are the credentials of the seeded account.
	Email    = "host@example.com"
	Password = "hunter2"
	// Token is the API token issued to the seeded account.
	Token = "fixture-token"

	// LadderID and TournamentID are seeded sources for GameIDFeed.
	LadderID     = 4
	TournamentID = 7
	// InviteToken is a known invite token for ValidateInviteToken.
	InviteToken = "invite-123"
	// MapID is a map owned by the seeded account.
	MapID = 50

	firstGameID = 1000
)

// Request is one call received by the server.
type Request struct {
	Endpoint string
	Query    url.Values
	Body     []byte
}

// Game is a game held by the server.
type Game struct {
	ID         int64
	TemplateID int64
	Name       string
	Message    string
	Players    []Player
	Settings   map[string]any
	Bonuses    []Bonus
}

// Player is a participant as received from CreateGame.
type Player struct {
	Token string `json:"token"`
	Team  string `json:"team"`
}

// Bonus is an overridden bonus received from CreateGame.
type Bonus struct {
	BonusName string `json:"bonusName"`
	Value     int    `json:"value"`
}

// Server emulates the subset of the API the client uses.
type Server struct {
	mu          sync.Mutex
	nextID      int64
	games       map[int64]*Game
	ladders     map[int64][]int64
	tournaments map[int64][]int64
	mapCommands map[int64][]map[string]any
	requests    []Request
}

// New returns a server seeded with one ladder game and one tournament game.
func New() *Server {
	s := &Server{
		nextID:      firstGameID,
		games:       make(map[int64]*Game),
		ladders:     make(map[int64][]int64),
		tournaments: make(map[int64][]int64),
		mapCommands: make(map[int64][]map[string]any),
	}
	ladderGame := s.addGame(&Game{TemplateID: 1, Name: "Ladder game", Players: []Player{{Token: "1", Team: "0"}, {Token: "2", Team: "1"}}})
	tourneyGame := s.addGame(&Game{TemplateID: 2, Name: "Tournament game", Players: []Player{{Token: "3", Team: "None"}, {Token: "4", Team: "None"}}})
	s.ladders[LadderID] = []int64{ladderGame.ID}
	s.tournaments[TournamentID] = []int64{tourneyGame.ID}
	s.mapCommands[MapID] = nil
	return s
}

// Game returns a copy of a stored game.
func (s *Server) Game(id int64) (Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return Game{}, false
	}
	return *g, true
}

// MapCommands returns the commands applied to a map so far.
func (s *Server) MapCommands(mapID int64) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.mapCommands[mapID]...)
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// ServeHTTP implements http.Handler. Paths are matched on their last segment.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	body, _ := io.ReadAll(r.Body)
	endpoint := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	query := r.URL.Query()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, Request{Endpoint: endpoint, Query: query, Body: body})

	status := http.StatusOK
	var out map[string]any
	switch endpoint {
	case "GetAPIToken":
		out = s.apiToken(query)
	case "GameFeed":
		out = s.gameFeed(query)
	case "CreateGame":
		out = s.createGame(body)
	case "DeleteLobbyGame":
		out = s.deleteGame(body)
	case "GameIDFeed":
		out = s.gameIDs(query)
	case "ValidateInviteToken":
		out = s.validateToken(query)
	case "SetMapDetails":
		out = s.setMapDetails(body)
	default:
		status = http.StatusNotFound
		out = errorResponse("unknown endpoint " + endpoint)
	}
	writeJSON(w, status, out)
}

func (s *Server) addGame(g *Game) *Game {
	g.ID = s.nextID
	s.nextID++
	s.games[g.ID] = g
	return g
}

func (s *Server) apiToken(q url.Values) map[string]any {
	if q.Get("Email") != Email || q.Get("Password") != Password {
		return errorResponse("Invalid email or password")
	}
	return map[string]any{"APIToken": Token}
}

func (s *Server) gameFeed(q url.Values) map[string]any {
	if resp, ok := checkAuth(q.Get("Email"), q.Get("APIToken")); !ok {
		return resp
	}
	id, err := strconv.ParseInt(q.Get("GameID"), 10, 64)
	if err != nil {
		return errorResponse("Invalid GameID")
	}
	g, ok := s.games[id]
	if !ok {
		return errorResponse("Loading the game produced an error: ServerGameKeyNotFound")
	}

	players := make([]map[string]any, 0, len(g.Players))
	for i, p := range g.Players {
		players = append(players, map[string]any{
			"id":    p.Token,
			"name":  "Player " + p.Token,
			"isAI":  "False",
			"color": "#0000ff",
			"state": "Invited",
			"team":  p.Team,
			"index": i,
		})
	}
	out := map[string]any{
		"id":            strconv.FormatInt(g.ID, 10),
		"state":         "WaitingForPlayers",
		"name":          g.Name,
		"numberOfTurns": "-1",
		"templateID":    g.TemplateID,
		"players":       players,
	}
	if q.Get("GetSettings") == "true" {
		settings := map[string]any{"Fog": "Foggy"}
		for k, v := range g.Settings {
			settings[k] = v
		}
		out["settings"] = settings
	}
	if q.Get("GetHistory") == "true" {
		out["turns"] = []any{}
	}
	return out
}

func (s *Server) createGame(body []byte) map[string]any {
	var req struct {
		HostEmail         string         `json:"hostEmail"`
		HostAPIToken      string         `json:"hostAPIToken"`
		TemplateID        int64          `json:"templateID"`
		GameName          string         `json:"gameName"`
		PersonalMessage   string         `json:"personalMessage"`
		Players           []Player       `json:"players"`
		Settings          map[string]any `json:"settings"`
		OverriddenBonuses []Bonus        `json:"overriddenBonuses"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errorResponse("Invalid JSON: " + err.Error())
	}
	if resp, ok := checkAuth(req.HostEmail, req.HostAPIToken); !ok {
		return resp
	}
	if len(req.Players) == 0 {
		return errorResponse("You must invite at least one player")
	}
	g := s.addGame(&Game{
		TemplateID: req.TemplateID,
		Name:       req.GameName,
		Message:    req.PersonalMessage,
		Players:    req.Players,
		Settings:   req.Settings,
		Bonuses:    req.OverriddenBonuses,
	})
	return map[string]any{"gameID": g.ID}
}

func (s *Server) deleteGame(body []byte) map[string]any {
	var req struct {
		Email    string `json:"Email"`
		APIToken string `json:"APIToken"`
		GameID   int64  `json:"gameID"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errorResponse("Invalid JSON: " + err.Error())
	}
	if resp, ok := checkAuth(req.Email, req.APIToken); !ok {
		return resp
	}
	if _, ok := s.games[req.GameID]; !ok {
		return errorResponse("ServerGameKeyNotFound")
	}
	delete(s.games, req.GameID)
	return map[string]any{"success": "true"}
}

func (s *Server) gameIDs(q url.Values) map[string]any {
	if resp, ok := checkAuth(q.Get("Email"), q.Get("APIToken")); !ok {
		return resp
	}
	var (
		ids   []int64
		found bool
	)
	if raw := q.Get("LadderID"); raw != "" {
		id, _ := strconv.ParseInt(raw, 10, 64)
		ids, found = s.ladders[id]
	} else if raw := q.Get("TournamentID"); raw != "" {
		id, _ := strconv.ParseInt(raw, 10, 64)
		ids, found = s.tournaments[id]
	} else {
		return errorResponse("Must provide LadderID or TournamentID")
	}
	if !found {
		return errorResponse("Ladder or tournament not found")
	}
	if ids == nil {
		ids = []int64{}
	}
	return map[string]any{"gameIDs": ids}
}

func (s *Server) validateToken(q url.Values) map[string]any {
	if resp, ok := checkAuth(q.Get("Email"), q.Get("APIToken")); !ok {
		return resp
	}
	valid := q.Get("Token") == InviteToken
	out := map[string]any{"tokenIsValid": valid}
	if valid {
		out["name"] = "Invited Player"
		out["isMember"] = "False"
	}
	if raw := q.Get("TemplateIDs"); raw != "" {
		templates := make(map[string]any)
		for _, id := range strings.Split(raw, ",") {
			templates["template"+id] = map[string]any{"result": "CanUseTemplate"}
		}
		out["templates"] = templates
	}
	return out
}

func (s *Server) setMapDetails(body []byte) map[string]any {
	var req struct {
		Email    string           `json:"email"`
		APIToken string           `json:"APIToken"`
		MapID    string           `json:"mapID"`
		Commands []map[string]any `json:"commands"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return errorResponse("Invalid JSON: " + err.Error())
	}
	if resp, ok := checkAuth(req.Email, req.APIToken); !ok {
		return resp
	}
	id, err := strconv.ParseInt(req.MapID, 10, 64)
	if err != nil {
		return errorResponse("Invalid mapID")
	}
	if _, ok := s.mapCommands[id]; !ok {
		return errorResponse("You do not own this map")
	}
	for _, cmd := range req.Commands {
		if _, ok := cmd["command"]; !ok {
			return errorResponse("Command missing")
		}
	}
	s.mapCommands[id] = append(s.mapCommands[id], req.Commands...)
	return map[string]any{}
}

func checkAuth(email, token string) (map[string]any, bool) {
	if email != Email || token != Token {
		return errorResponse("Invalid credentials"), false
	}
	return nil, true
}

func errorResponse(msg string) map[string]any {
	return map[string]any{"error": msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
