package pinboard

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetTags returns the user's tags with usage counts. A non-zero cutoff
// drops tags used fewer times. The service rate-limits this call to once a
// minute.
func (c *Client) GetTags(ctx context.Context, cutoff int) (any, error) {
	query := url.Values{}
	if cutoff != 0 {
		query.Set("cutoff", strconv.Itoa(cutoff))
	}
	return c.Execute(ctx, http.MethodGet, "tags", query, nil)
}

// RenameTags renames old to new. old may list up to 30 comma-separated
// tags, which are merged into new. Case-only changes are not supported by
// the service.
func (c *Client) RenameTags(ctx context.Context, oldTag, newTag string) (any, error) {
	data := url.Values{}
	data.Set("old", oldTag)
	data.Set("new", newTag)
	return c.Execute(ctx, http.MethodPost, "tags/rename", nil, data)
}

// DeleteTags deletes between 1 and 100 tags.
func (c *Client) DeleteTags(ctx context.Context, tags []string) (any, error) {
	if len(tags) == 0 || len(tags) > maxBatchSize {
		return nil, invalidArgument("must provide 1 to %d tags for deletion, got %d", maxBatchSize, len(tags))
	}
	data := url.Values{}
	data.Set("tags", joinList(tags))
	return c.Execute(ctx, http.MethodPost, "tags/delete", nil, data)
}
