package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pinboard"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List, add, update and delete bookmarks",
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarks",
	Long:  "List bookmarks. --id wins over --url, which wins over the other filters.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := bookmarkListOptions(cmd)
		if err != nil {
			return err
		}
		return application.Run(cmd.Context(), "bookmarks list", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.GetBookmarks(ctx, opts...)
		})
	},
}

var bookmarksAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Fetch every bookmark (rate-limited to five calls an hour)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Run(cmd.Context(), "bookmarks all", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.GetAllBookmarks(ctx)
		})
	},
}

var bookmarksGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Run(cmd.Context(), "bookmarks get", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.GetBookmark(ctx, args[0])
		})
	},
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a bookmark",
	Long:  "Add a bookmark. Without --title the page title is fetched, falling back to the URL.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		b := pinboard.NewBookmark{URL: args[0]}
		b.Title, _ = f.GetString("title")
		b.Description, _ = f.GetString("description")
		b.Tags, _ = f.GetStringSlice("tags")
		b.Private, _ = f.GetBool("private")
		b.ToRead, _ = f.GetBool("toread")
		b.ExactURL, _ = f.GetBool("exact-url")
		if created, _ := f.GetString("created"); created != "" {
			t, err := parseTime(created)
			if err != nil {
				return err
			}
			b.Created = t
		}
		return application.AddBookmark(cmd.Context(), b)
	},
}

var bookmarksUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a bookmark",
	Long:  "Update a bookmark. Only the flags given are sent; pass --tags \"\" to clear tags.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := bookmarkUpdate(cmd)
		if err != nil {
			return err
		}
		return application.Run(cmd.Context(), "bookmarks update", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.UpdateBookmark(ctx, args[0], u)
		})
	},
}

var bookmarksDeleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one bookmark, or up to 100 in one call",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.DeleteBookmarks(cmd.Context(), args)
	},
}

func bookmarkListOptions(cmd *cobra.Command) ([]pinboard.ListOption, error) {
	f := cmd.Flags()
	var opts []pinboard.ListOption

	if ids, _ := f.GetStringSlice("id"); len(ids) > 0 {
		opts = append(opts, pinboard.WithIDs(ids...))
	}
	if u, _ := f.GetString("url"); u != "" {
		opts = append(opts, pinboard.WithURL(u))
	}
	if tags, _ := f.GetStringSlice("tag"); len(tags) > 0 {
		opts = append(opts, pinboard.WithTags(tags...))
	}
	if s, _ := f.GetString("start"); s != "" {
		t, err := parseTime(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pinboard.WithStartDate(t))
	}
	if s, _ := f.GetString("end"); s != "" {
		t, err := parseTime(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pinboard.WithEndDate(t))
	}
	if s, _ := f.GetString("filter"); s != "" {
		opts = append(opts, pinboard.WithFilter(pinboard.Filter(s)))
	}
	opts = append(opts, pagingOptions(cmd)...)

	return opts, nil
}

func pagingOptions(cmd *cobra.Command) []pinboard.ListOption {
	f := cmd.Flags()
	var opts []pinboard.ListOption
	if f.Changed("count") {
		n, _ := f.GetInt("count")
		opts = append(opts, pinboard.WithCount(n))
	}
	if f.Changed("offset") {
		n, _ := f.GetInt("offset")
		opts = append(opts, pinboard.WithOffset(n))
	}
	return opts
}

func bookmarkUpdate(cmd *cobra.Command) (pinboard.BookmarkUpdate, error) {
	f := cmd.Flags()
	var u pinboard.BookmarkUpdate

	if f.Changed("url") {
		s, _ := f.GetString("url")
		u.URL = pinboard.String(s)
	}
	if f.Changed("title") {
		s, _ := f.GetString("title")
		u.Title = pinboard.String(s)
	}
	if f.Changed("description") {
		s, _ := f.GetString("description")
		u.Description = pinboard.String(s)
	}
	if f.Changed("created") {
		s, _ := f.GetString("created")
		t, err := parseTime(s)
		if err != nil {
			return u, err
		}
		u.Created = pinboard.Time(t)
	}
	if f.Changed("tags") {
		tags, _ := f.GetStringSlice("tags")
		if tags == nil {
			tags = []string{}
		}
		u.Tags = tags
	}
	if f.Changed("private") {
		b, _ := f.GetBool("private")
		u.Private = pinboard.Bool(b)
	}
	if f.Changed("toread") {
		b, _ := f.GetBool("toread")
		u.ToRead = pinboard.Bool(b)
	}
	if f.Changed("exact-url") {
		b, _ := f.GetBool("exact-url")
		u.ExactURL = pinboard.Bool(b)
	}

	return u, nil
}

func addBookmarkFieldFlags(f *pflag.FlagSet) {
	f.String("title", "", "Title")
	f.String("description", "", "Description")
	f.StringSlice("tags", nil, "Tags")
	f.String("created", "", "Creation time (YYYY-MM-DD or RFC 3339)")
	f.Bool("private", false, "Private bookmark")
	f.Bool("toread", false, "Mark as unread")
	f.Bool("exact-url", false, "Keep the URL exactly as given")
}

func init() {
	lf := bookmarksListCmd.Flags()
	lf.StringSlice("id", nil, "Bookmark ids (up to 50)")
	lf.String("url", "", "Select the bookmark for this URL")
	lf.StringSlice("tag", nil, "Filter by tag (up to 3)")
	lf.String("start", "", "Created after (YYYY-MM-DD or RFC 3339)")
	lf.String("end", "", "Created before (YYYY-MM-DD or RFC 3339)")
	lf.String("filter", "", "Filter: public, private or read")
	lf.Int("count", 25, "Page size (max 1000)")
	lf.Int("offset", 0, "Pagination offset")

	addBookmarkFieldFlags(bookmarksAddCmd.Flags())
	addBookmarkFieldFlags(bookmarksUpdateCmd.Flags())
	bookmarksUpdateCmd.Flags().String("url", "", "New URL (changes the bookmark id)")

	bookmarksCmd.AddCommand(bookmarksListCmd, bookmarksAllCmd, bookmarksGetCmd, bookmarksAddCmd, bookmarksUpdateCmd, bookmarksDeleteCmd)
	rootCmd.AddCommand(bookmarksCmd)
}
