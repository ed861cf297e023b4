package pinboard

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// NoteUpdate lists the fields to change on a note. Nil fields are left
// unchanged.
type NoteUpdate struct {
	Title       *string
	Body        *string
	UseMarkdown *bool
}

func (u NoteUpdate) values() url.Values {
	data := url.Values{}
	if u.Title != nil {
		data.Set("title", *u.Title)
	}
	if u.Body != nil {
		data.Set("note", *u.Body)
	}
	if u.UseMarkdown != nil {
		data.Set("use_markdown", yesNo(*u.UseMarkdown))
	}
	return data
}

// GetNotes lists notes, newest first. Only WithCount and WithOffset apply;
// count is clamped to 100.
func (c *Client) GetNotes(ctx context.Context, opts ...ListOption) (any, error) {
	p := newListParams(opts)

	query := url.Values{}
	query.Set("count", strconv.Itoa(clampCount(p.count, maxNotesCount)))
	query.Set("offset", strconv.Itoa(p.offset))
	return c.Execute(ctx, http.MethodGet, "notes", query, nil)
}

// GetNote returns one note.
func (c *Client) GetNote(ctx context.Context, id string) (any, error) {
	path, err := resourcePath("notes", id)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, http.MethodGet, path, nil, nil)
}

// CreateNote creates a note.
func (c *Client) CreateNote(ctx context.Context, title, body string, useMarkdown bool) (any, error) {
	data := url.Values{}
	data.Set("title", title)
	data.Set("note", body)
	data.Set("use_markdown", yesNo(useMarkdown))
	return c.Execute(ctx, http.MethodPost, "notes", nil, data)
}

// UpdateNote changes the given fields of a note. An update with no fields
// fails locally.
func (c *Client) UpdateNote(ctx context.Context, id string, u NoteUpdate) (any, error) {
	data := u.values()
	if len(data) == 0 {
		return nil, invalidArgument("no fields provided for update")
	}
	path, err := resourcePath("notes", id)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, http.MethodPost, path, nil, data)
}

// DeleteNote deletes a note.
func (c *Client) DeleteNote(ctx context.Context, id string) (any, error) {
	path, err := resourcePath("notes", id)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, http.MethodDelete, path, nil, nil)
}
