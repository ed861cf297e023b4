package main

import (
	"context"

	"github.com/spf13/cobra"

	"pinboard"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List, create, update and delete notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := pagingOptions(cmd)
		return application.Run(cmd.Context(), "notes list", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.GetNotes(ctx, opts...)
		})
	},
}

var notesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Run(cmd.Context(), "notes get", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.GetNote(ctx, args[0])
		})
	},
}

var notesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		title, _ := f.GetString("title")
		body, _ := f.GetString("body")
		markdown, _ := f.GetBool("markdown")
		return application.Run(cmd.Context(), "notes create", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.CreateNote(ctx, title, body, markdown)
		})
	},
}

var notesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a note; only the flags given are sent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		var u pinboard.NoteUpdate
		if f.Changed("title") {
			s, _ := f.GetString("title")
			u.Title = pinboard.String(s)
		}
		if f.Changed("body") {
			s, _ := f.GetString("body")
			u.Body = pinboard.String(s)
		}
		if f.Changed("markdown") {
			b, _ := f.GetBool("markdown")
			u.UseMarkdown = pinboard.Bool(b)
		}
		return application.Run(cmd.Context(), "notes update", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.UpdateNote(ctx, args[0], u)
		})
	},
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Run(cmd.Context(), "notes delete", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.DeleteNote(ctx, args[0])
		})
	},
}

func init() {
	notesListCmd.Flags().Int("count", 25, "Page size (max 100)")
	notesListCmd.Flags().Int("offset", 0, "Pagination offset")

	for _, c := range []*cobra.Command{notesCreateCmd, notesUpdateCmd} {
		c.Flags().String("title", "", "Title")
		c.Flags().String("body", "", "Note text")
		c.Flags().Bool("markdown", false, "Render the note as Markdown")
	}
	_ = notesCreateCmd.MarkFlagRequired("title")

	notesCmd.AddCommand(notesListCmd, notesGetCmd, notesCreateCmd, notesUpdateCmd, notesDeleteCmd)
	rootCmd.AddCommand(notesCmd)
}
