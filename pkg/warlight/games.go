package warlight

import (
	"context"
	"strconv"
	"strings"

	"github.com/preston-bernstein/warlight-go/internal/logging"
)

// QueryGame fetches the feed of a game. Unknown games yield an error matching
// ErrGameNotFound.
func (c *Client) QueryGame(ctx context.Context, gameID int64, opts QueryOptions) (*GameFeed, error) {
	query := c.credentials()
	query.Set("GameID", strconv.FormatInt(gameID, 10))
	query.Set("GetHistory", strconv.FormatBool(opts.History))
	query.Set("GetSettings", strconv.FormatBool(opts.Settings))

	resp, err := c.do(ctx, call{
		op:             OpQueryGame,
		endpoint:       endpointGameFeed,
		query:          query,
		notFoundMarker: gameNotFoundMarker,
	})
	if err != nil {
		return nil, err
	}

	var feed GameFeed
	if err := wire.Unmarshal(resp.raw, &feed); err != nil {
		return nil, c.decodeFailure(OpQueryGame, err)
	}
	feed.Raw = resp.raw
	return &feed, nil
}

// CreateGame creates a game from a template and returns its id.
func (c *Client) CreateGame(ctx context.Context, req CreateGameRequest) (int64, error) {
	if req.TemplateID <= 0 {
		return 0, c.reject(argError(OpCreateGame, "template", "must be a positive id"))
	}
	if strings.TrimSpace(req.Name) == "" {
		return 0, c.reject(argError(OpCreateGame, "name", "must not be empty"))
	}

	settings := req.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	payload := createGamePayload{
		HostEmail:       c.email,
		HostAPIToken:    c.token,
		TemplateID:      req.TemplateID,
		GameName:        req.Name,
		PersonalMessage: req.Message,
		Players:         MakePlayers(req.Teams, req.Teamless),
		Settings:        settings,
	}
	if len(req.Bonuses) > 0 {
		payload.OverriddenBonuses = OverrideBonuses(req.Bonuses)
	}

	resp, err := c.do(ctx, call{op: OpCreateGame, endpoint: endpointCreateGame, body: payload})
	if err != nil {
		return 0, err
	}

	var id FlexString
	if err := resp.fields.field("gameID", &id); err != nil {
		return 0, c.decodeFailure(OpCreateGame, err)
	}
	gameID, err := id.Int64()
	if err != nil {
		return 0, c.decodeFailure(OpCreateGame, err)
	}
	logging.Info(c.logger, "game created", logging.FieldGameID, gameID, logging.FieldCount, len(payload.Players))
	return gameID, nil
}

// DeleteGame deletes a lobby game that has not started yet.
func (c *Client) DeleteGame(ctx context.Context, gameID int64) error {
	resp, err := c.do(ctx, call{
		op:       OpDeleteGame,
		endpoint: endpointDeleteGame,
		body:     deleteGamePayload{Email: c.email, APIToken: c.token, GameID: gameID},
	})
	if err != nil {
		return err
	}
	if !resp.fields.has("success") {
		return &APIError{Op: OpDeleteGame, StatusCode: resp.statusCode, Message: "unknown error: response did not report success"}
	}
	logging.Info(c.logger, "game deleted", logging.FieldGameID, gameID)
	return nil
}

// GameIDs lists the games of a ladder or tournament.
func (c *Client) GameIDs(ctx context.Context, src GameSource) ([]int64, error) {
	if err := src.validate(OpGameIDs); err != nil {
		return nil, c.reject(err)
	}

	query := c.credentials()
	query.Set(src.param(), strconv.FormatInt(src.ID, 10))

	resp, err := c.do(ctx, call{op: OpGameIDs, endpoint: endpointGameIDFeed, query: query})
	if err != nil {
		return nil, err
	}

	var raw []FlexString
	if err := resp.fields.field("gameIDs", &raw); err != nil {
		return nil, c.decodeFailure(OpGameIDs, err)
	}
	ids := make([]int64, 0, len(raw))
	for _, r := range raw {
		id, err := r.Int64()
		if err != nil {
			return nil, c.decodeFailure(OpGameIDs, err)
		}
		ids = append(ids, id)
	}
	logging.Debug(c.logger, "game ids listed", logging.FieldSource, string(src.Kind), logging.FieldCount, len(ids))
	return ids, nil
}
