package pinboard

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Filter restricts bookmark listing by status.
type Filter string

const (
	FilterPublic  Filter = "public"
	FilterPrivate Filter = "private"
	FilterRead    Filter = "read"
)

// listParams holds the selectors for list calls. A fresh value with the
// defaults is built for every call.
type listParams struct {
	ids       []string
	tags      []string
	startDate *time.Time
	endDate   *time.Time
	filter    Filter
	url       string
	count     int
	offset    int
}

func newListParams(opts []ListOption) *listParams {
	p := &listParams{count: defaultCount}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ListOption configures GetBookmarks and GetNotes. GetNotes honors only
// WithCount and WithOffset.
type ListOption func(*listParams)

// WithIDs selects bookmarks by id (the service accepts up to 50). When set,
// every other selector is ignored.
func WithIDs(ids ...string) ListOption {
	return func(p *listParams) {
		p.ids = ids
	}
}

// WithURL selects the bookmark for one URL. When set and no ids are given,
// every other selector is ignored.
func WithURL(u string) ListOption {
	return func(p *listParams) {
		p.url = u
	}
}

// WithTags filters by tags (the service accepts up to 3).
func WithTags(tags ...string) ListOption {
	return func(p *listParams) {
		p.tags = tags
	}
}

// WithStartDate returns bookmarks created after t.
func WithStartDate(t time.Time) ListOption {
	return func(p *listParams) {
		p.startDate = &t
	}
}

// WithEndDate returns bookmarks created before t.
func WithEndDate(t time.Time) ListOption {
	return func(p *listParams) {
		p.endDate = &t
	}
}

// WithFilter filters by bookmark status.
func WithFilter(f Filter) ListOption {
	return func(p *listParams) {
		p.filter = f
	}
}

// WithCount sets the page size. Default: 25. Values above the endpoint
// maximum are clamped.
func WithCount(n int) ListOption {
	return func(p *listParams) {
		p.count = n
	}
}

// WithOffset sets the pagination offset. Default: 0.
func WithOffset(n int) ListOption {
	return func(p *listParams) {
		p.offset = n
	}
}

// NewBookmark describes a bookmark to create. Empty Description, zero
// Created and empty Tags are left out of the request.
type NewBookmark struct {
	URL         string
	Title       string
	Description string
	Created     time.Time
	Tags        []string
	Private     bool
	ToRead      bool
	ExactURL    bool
}

// BookmarkUpdate lists the fields to change on a bookmark. Nil fields are
// left unchanged. A non-nil empty Tags slice erases the tags; an empty
// string pointer erases that field.
type BookmarkUpdate struct {
	URL         *string
	Title       *string
	Description *string
	Created     *time.Time
	Tags        []string
	Private     *bool
	ToRead      *bool
	ExactURL    *bool
}

func (u BookmarkUpdate) values() url.Values {
	data := url.Values{}
	if u.URL != nil {
		data.Set("url", *u.URL)
	}
	if u.Title != nil {
		data.Set("title", *u.Title)
	}
	if u.Description != nil {
		data.Set("description", *u.Description)
	}
	if u.Created != nil {
		data.Set("created", formatTimestamp(*u.Created))
	}
	if u.Tags != nil {
		data.Set("tags", joinList(u.Tags))
	}
	if u.Private != nil {
		data.Set("private", yesNo(*u.Private))
	}
	if u.ToRead != nil {
		data.Set("toread", yesNo(*u.ToRead))
	}
	if u.ExactURL != nil {
		data.Set("exact_url", yesNo(*u.ExactURL))
	}
	return data
}

// GetBookmarks lists bookmarks. Selectors are applied by priority: ids
// first, then url, then the combination of tags, dates, filter and paging.
func (c *Client) GetBookmarks(ctx context.Context, opts ...ListOption) (any, error) {
	p := newListParams(opts)

	query := url.Values{}
	switch {
	case len(p.ids) > 0:
		query.Set("ids", joinList(p.ids))
	case p.url != "":
		query.Set("url", p.url)
	default:
		if len(p.tags) > 0 {
			query.Set("tags", joinList(p.tags))
		}
		if p.startDate != nil {
			query.Set("start_date", formatTimestamp(*p.startDate))
		}
		if p.endDate != nil {
			query.Set("end_date", formatTimestamp(*p.endDate))
		}
		if p.filter != "" {
			query.Set("filter", string(p.filter))
		}
		query.Set("count", strconv.Itoa(clampCount(p.count, maxBookmarksCount)))
		query.Set("offset", strconv.Itoa(p.offset))
	}

	return c.Execute(ctx, http.MethodGet, "bookmarks", query, nil)
}

// GetAllBookmarks returns every bookmark. The service rate-limits this call
// to five an hour.
func (c *Client) GetAllBookmarks(ctx context.Context) (any, error) {
	return c.Execute(ctx, http.MethodGet, "bookmarks/all", nil, nil)
}

// GetBookmark returns one bookmark.
func (c *Client) GetBookmark(ctx context.Context, id string) (any, error) {
	path, err := resourcePath("bookmarks", id)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, http.MethodGet, path, nil, nil)
}

// AddBookmark creates a bookmark. Unset flags are sent as "no".
func (c *Client) AddBookmark(ctx context.Context, b NewBookmark) (any, error) {
	data := url.Values{}
	data.Set("url", b.URL)
	data.Set("title", b.Title)
	data.Set("private", yesNo(b.Private))
	data.Set("toread", yesNo(b.ToRead))
	data.Set("exact_url", yesNo(b.ExactURL))
	if b.Description != "" {
		data.Set("description", b.Description)
	}
	if !b.Created.IsZero() {
		data.Set("created", formatTimestamp(b.Created))
	}
	if len(b.Tags) > 0 {
		data.Set("tags", joinList(b.Tags))
	}

	return c.Execute(ctx, http.MethodPost, "bookmarks", nil, data)
}

// UpdateBookmark changes the given fields of a bookmark. Changing the URL
// changes the bookmark id. An update with no fields fails locally.
func (c *Client) UpdateBookmark(ctx context.Context, id string, u BookmarkUpdate) (any, error) {
	data := u.values()
	if len(data) == 0 {
		return nil, invalidArgument("no fields provided for update")
	}
	path, err := resourcePath("bookmarks", id)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, http.MethodPost, path, nil, data)
}

// DeleteBookmark permanently deletes a bookmark.
func (c *Client) DeleteBookmark(ctx context.Context, id string) (any, error) {
	path, err := resourcePath("bookmarks", id)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, http.MethodDelete, path, nil, nil)
}

// DeleteBookmarks deletes between 1 and 100 bookmarks in one call.
func (c *Client) DeleteBookmarks(ctx context.Context, ids []string) (any, error) {
	if len(ids) == 0 || len(ids) > maxBatchSize {
		return nil, invalidArgument("must provide 1 to %d bookmark IDs for batch deletion, got %d", maxBatchSize, len(ids))
	}
	data := url.Values{}
	data.Set("ids", joinList(ids))
	return c.Execute(ctx, http.MethodPost, "bookmarks/delete", nil, data)
}
