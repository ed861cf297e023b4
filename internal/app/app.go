package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	"pinboard"
	"pinboard/internal/config"
)

// TitleFetcher looks up the title of a web page.
type TitleFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// App holds the command's dependencies and configuration.
type App struct {
	Config *config.Config
	Client pinboard.API
	Titles TitleFetcher
	Out    io.Writer
	Logger zerolog.Logger
}

// Option is a functional option for configuring the App.
type Option func(*App)

// NewApp creates a new App instance with the given options.
func NewApp(opts ...Option) *App {
	app := &App{
		Config: &config.Config{Output: "json"},
		Out:    os.Stdout,
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// WithConfig sets the application configuration.
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithClient sets the Pinboard API client.
func WithClient(client pinboard.API) Option {
	return func(a *App) {
		a.Client = client
	}
}

// WithTitleFetcher enables title lookup for bookmarks added without one.
func WithTitleFetcher(f TitleFetcher) Option {
	return func(a *App) {
		a.Titles = f
	}
}

// WithOutput sets where results are written.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.Out = w
	}
}

// WithLogger sets the application logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *App) {
		a.Logger = logger
	}
}

// NewClient builds a Pinboard client from cfg.
func NewClient(cfg *config.Config, logger zerolog.Logger) (*pinboard.Client, error) {
	opts := []pinboard.Option{
		pinboard.WithLogger(logger),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, pinboard.WithTimeout(cfg.Timeout))
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		burst := max(cfg.RateLimit.Burst, 1)
		opts = append(opts, pinboard.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), burst)))
	}

	client, err := pinboard.NewClient(cfg.AuthToken, cfg.TestMode, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Pinboard client: %w", err)
	}
	return client, nil
}

// Run performs one API call and renders its result.
func (a *App) Run(ctx context.Context, name string, call func(context.Context, pinboard.API) (any, error)) error {
	a.Logger.Debug().Str("command", name).Msg("calling Pinboard")

	res, err := call(ctx, a.Client)
	if err != nil {
		a.Logger.Debug().Err(err).Str("command", name).Stringer("kind", pinboard.KindOf(err)).Msg("call failed")
		return fmt.Errorf("%s: %w", name, err)
	}

	return a.Render(res)
}

// AddBookmark creates b, looking up the page title first when b has none.
func (a *App) AddBookmark(ctx context.Context, b pinboard.NewBookmark) error {
	if b.Title == "" {
		b.Title = a.resolveTitle(ctx, b.URL)
	}
	return a.Run(ctx, "bookmarks add", func(ctx context.Context, api pinboard.API) (any, error) {
		return api.AddBookmark(ctx, b)
	})
}

// DeleteBookmarks deletes one bookmark by id, or several in one batch call.
func (a *App) DeleteBookmarks(ctx context.Context, ids []string) error {
	return a.Run(ctx, "bookmarks delete", func(ctx context.Context, api pinboard.API) (any, error) {
		if len(ids) == 1 {
			return api.DeleteBookmark(ctx, ids[0])
		}
		return api.DeleteBookmarks(ctx, ids)
	})
}

// resolveTitle falls back to the URL itself when the page title cannot be
// found.
func (a *App) resolveTitle(ctx context.Context, pageURL string) string {
	if a.Titles == nil {
		return pageURL
	}

	title, err := a.Titles.Fetch(ctx, pageURL)
	if err != nil {
		a.Logger.Warn().Err(err).Str("url", pageURL).Msg("failed to fetch page title, using URL")
		return pageURL
	}
	if title == "" {
		a.Logger.Info().Str("url", pageURL).Msg("page has no title, using URL")
		return pageURL
	}
	return title
}

// Render writes v in the configured output format. A nil result (an empty
// response) writes nothing.
func (a *App) Render(v any) error {
	if v == nil {
		return nil
	}

	switch a.Config.Output {
	case "yaml":
		enc := yaml.NewEncoder(a.Out)
		enc.SetIndent(2)
		if err := enc.Encode(yamlValue(v)); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(a.Out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		return nil
	}
}

// yamlValue converts json.Number leaves to native numbers, which the YAML
// encoder would otherwise quote as strings.
func yamlValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = yamlValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = yamlValue(val)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
