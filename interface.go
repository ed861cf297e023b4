package pinboard

import (
	"context"
	"net/url"
)

// API defines the interface for the Pinboard API client.
type API interface {
	Execute(ctx context.Context, method, path string, query, body url.Values) (any, error)

	Hello(ctx context.Context) (any, error)
	LastUpdate(ctx context.Context) (any, error)

	GetBookmarks(ctx context.Context, opts ...ListOption) (any, error)
	GetAllBookmarks(ctx context.Context) (any, error)
	GetBookmark(ctx context.Context, id string) (any, error)
	AddBookmark(ctx context.Context, b NewBookmark) (any, error)
	UpdateBookmark(ctx context.Context, id string, u BookmarkUpdate) (any, error)
	DeleteBookmark(ctx context.Context, id string) (any, error)
	DeleteBookmarks(ctx context.Context, ids []string) (any, error)

	GetTags(ctx context.Context, cutoff int) (any, error)
	RenameTags(ctx context.Context, oldTag, newTag string) (any, error)
	DeleteTags(ctx context.Context, tags []string) (any, error)

	GetNotes(ctx context.Context, opts ...ListOption) (any, error)
	GetNote(ctx context.Context, id string) (any, error)
	CreateNote(ctx context.Context, title, body string, useMarkdown bool) (any, error)
	UpdateNote(ctx context.Context, id string, u NoteUpdate) (any, error)
	DeleteNote(ctx context.Context, id string) (any, error)
}

var _ API = (*Client)(nil)
