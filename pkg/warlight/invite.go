package warlight

import (
	"context"
	"strconv"
	"strings"
)

// ValidateInviteToken checks an invite token, optionally against templates,
// and returns the decoded response object.
func (c *Client) ValidateInviteToken(ctx context.Context, token string, templateIDs ...int64) (map[string]any, error) {
	if strings.TrimSpace(token) == "" {
		return nil, c.reject(argError(OpValidateInviteToken, "token", "must not be empty"))
	}

	query := c.credentials()
	query.Set("Token", token)
	if len(templateIDs) > 0 {
		ids := make([]string, 0, len(templateIDs))
		for _, id := range templateIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		query.Set("TemplateIDs", strings.Join(ids, ","))
	}

	resp, err := c.do(ctx, call{op: OpValidateInviteToken, endpoint: endpointValidateToken, query: query})
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := wire.Unmarshal(resp.raw, &out); err != nil {
		return nil, c.decodeFailure(OpValidateInviteToken, err)
	}
	return out, nil
}
