package pinboard

import (
	"context"
	"net/http"
)

// Hello checks the credentials and that the API is reachable. It does not
// count against rate limits.
func (c *Client) Hello(ctx context.Context) (any, error) {
	return c.Execute(ctx, http.MethodGet, "hello", nil, nil)
}

// LastUpdate returns the timestamps of the last changes to bookmarks and
// notes. Poll it before fetching anything larger.
func (c *Client) LastUpdate(ctx context.Context) (any, error) {
	return c.Execute(ctx, http.MethodGet, "last_update", nil, nil)
}
