// Package slug derives URL-safe identifiers from titles and keeps them unique
// within a table.
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dewinson2/MJCL/internal/logger"
)

// DefaultMaxAttempts is the number of candidates (base, base-1, ...) tried
// before falling back to a timestamp suffix.
const DefaultMaxAttempts = 10

// fallbackBaseLength is the length of the generated base used when a title
// has no word characters.
const fallbackBaseLength = 8

var (
	// Unicode separators such as NBSP count as whitespace too.
	whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
	nonWord       = regexp.MustCompile(`[^a-z0-9_-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Normalize lowercases the title, strips diacritics, turns whitespace runs
// into single hyphens and drops everything that is not a word character or
// a hyphen. Normalize(Normalize(s)) == Normalize(s).
func Normalize(title string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		stripped = title
	}

	s := strings.ToLower(strings.TrimSpace(stripped))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonWord.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Checker reports whether a slug is already taken by a row other than
// excludeID. An excludeID of zero excludes nothing.
type Checker interface {
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
}

// Observer is notified about collisions and fallbacks.
type Observer interface {
	SlugCollision()
	SlugFallback(reason string)
}

// Fallback reasons
const (
	FallbackExhausted  = "exhausted"
	FallbackCheckError = "check_error"
)

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n >= 1 {
			g.maxAttempts = n
		}
	}
}

// WithClock overrides the clock used for the timestamp suffix.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithObserver attaches an observer.
func WithObserver(o Observer) Option {
	return func(g *Generator) { g.observer = o }
}

// Generator produces unique slugs. It only reads through the Checker.
type Generator struct {
	checker     Checker
	maxAttempts int
	now         func() time.Time
	newID       func() string
	observer    Observer
}

// NewGenerator creates a generator backed by checker.
func NewGenerator(checker Checker, opts ...Option) *Generator {
	g := &Generator{
		checker:     checker,
		maxAttempts: DefaultMaxAttempts,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Base returns the normalized title, or a generated identifier when the title
// normalizes to nothing.
func (g *Generator) Base(title string) string {
	if base := Normalize(title); base != "" {
		return base
	}
	id := strings.ReplaceAll(g.newID(), "-", "")
	if len(id) > fallbackBaseLength {
		id = id[:fallbackBaseLength]
	}
	return id
}

// Generate returns base, base-1, ... base-(maxAttempts-1), whichever is free
// first. When none is free, or when the check itself fails, it returns the
// base suffixed with the current Unix time in milliseconds.
//
// The check is not atomic with the caller's write; callers must still handle
// a unique violation on insert or update.
func (g *Generator) Generate(ctx context.Context, title string, excludeID int64) string {
	base := g.Base(title)

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate := base
		if attempt > 0 {
			candidate = fmt.Sprintf("%s-%d", base, attempt)
		}

		taken, err := g.checker.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			logger.FromContext(ctx).Error("Failed to check slug uniqueness",
				"error", err,
				"slug", candidate)
			g.fallback(FallbackCheckError)
			return g.timestamped(base)
		}
		if !taken {
			return candidate
		}
		if g.observer != nil {
			g.observer.SlugCollision()
		}
	}

	logger.FromContext(ctx).Warn("Slug candidates exhausted, using timestamp suffix",
		"base", base,
		"attempts", g.maxAttempts)
	g.fallback(FallbackExhausted)
	return g.timestamped(base)
}

func (g *Generator) timestamped(base string) string {
	return fmt.Sprintf("%s-%d", base, g.now().UnixMilli())
}

func (g *Generator) fallback(reason string) {
	if g.observer != nil {
		g.observer.SlugFallback(reason)
	}
}
