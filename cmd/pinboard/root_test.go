package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinboard"
)

func TestParseTime(t *testing.T) {
	got, err := parseTime("2023-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseTime("2023-05-01T10:00:00+02:00")
	require.NoError(t, err)
	_, offset := got.Zone()
	assert.Equal(t, 2*60*60, offset)

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}

func TestFlagOverrides(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.String("token", "", "")
	flags.Bool("test-mode", false, "")
	flags.String("output", "json", "")
	flags.String("log-level", "info", "")
	flags.Duration("timeout", 10*time.Second, "")
	require.NoError(t, flags.Parse([]string{"--token", "u:T", "--output", "yaml", "--test-mode"}))

	assert.Equal(t, map[string]any{
		"auth_token": "u:T",
		"output":     "yaml",
		"test_mode":  "true",
	}, flagOverrides(flags))
}

func newUpdateCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "update"}
	addBookmarkFieldFlags(cmd.Flags())
	cmd.Flags().String("url", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestBookmarkUpdate(t *testing.T) {
	u, err := bookmarkUpdate(newUpdateCmd(t, "--private=false", "--title", "New"))
	require.NoError(t, err)
	assert.Equal(t, pinboard.BookmarkUpdate{Private: pinboard.Bool(false), Title: pinboard.String("New")}, u)

	u, err = bookmarkUpdate(newUpdateCmd(t, "--tags="))
	require.NoError(t, err)
	assert.NotNil(t, u.Tags)
	assert.Empty(t, u.Tags)

	u, err = bookmarkUpdate(newUpdateCmd(t))
	require.NoError(t, err)
	assert.Equal(t, pinboard.BookmarkUpdate{}, u)

	_, err = bookmarkUpdate(newUpdateCmd(t, "--created", "soon"))
	assert.Error(t, err)
}
