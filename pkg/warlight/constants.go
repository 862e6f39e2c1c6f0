package warlight

import "time"

const (
	defaultBaseURL     = "https://www.warlight.net/API"
	defaultHTTPTimeout = 30 * time.Second
	userAgent          = "warlight-go"

	// Responses are small JSON objects; game feeds with history are the largest.
	maxResponseBytes = 32 << 20

	// gameNotFoundMarker appears in the error text of GameFeed for unknown game ids.
	gameNotFoundMarker = "ServerGameKeyNotFound"
)

const (
	endpointAPIToken      = "GetAPIToken"
	endpointGameFeed      = "GameFeed"
	endpointCreateGame    = "CreateGame"
	endpointDeleteGame    = "DeleteLobbyGame"
	endpointGameIDFeed    = "GameIDFeed"
	endpointValidateToken = "ValidateInviteToken"
	endpointSetMapDetails = "SetMapDetails"
)

// Operation names used for logging, metrics and error messages.
const (
	OpGetAPIToken         = "get_api_token"
	OpQueryGame           = "query_game"
	OpCreateGame          = "create_game"
	OpDeleteGame          = "delete_game"
	OpGameIDs             = "game_ids"
	OpValidateInviteToken = "validate_invite_token"
	OpSetMapDetails       = "set_map_details"
)
