package main

import (
	"context"

	"github.com/spf13/cobra"

	"pinboard"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List, rename and delete tags",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags with usage counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cutoff, _ := cmd.Flags().GetInt("cutoff")
		return application.Run(cmd.Context(), "tags list", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.GetTags(ctx, cutoff)
		})
	},
}

var tagsRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a tag, or merge up to 30 comma-separated tags into one",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Run(cmd.Context(), "tags rename", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.RenameTags(ctx, args[0], args[1])
		})
	},
}

var tagsDeleteCmd = &cobra.Command{
	Use:   "delete <tag>...",
	Short: "Delete up to 100 tags",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Run(cmd.Context(), "tags delete", func(ctx context.Context, api pinboard.API) (any, error) {
			return api.DeleteTags(ctx, args)
		})
	},
}

func init() {
	tagsListCmd.Flags().Int("cutoff", 0, "Hide tags used fewer times than this")

	tagsCmd.AddCommand(tagsListCmd, tagsRenameCmd, tagsDeleteCmd)
	rootCmd.AddCommand(tagsCmd)
}
