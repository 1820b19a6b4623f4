// Package preview describes template renders of up to three games and the renderer
// capability that turns them into images.
package preview

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// MaxGames is how many games one template can show.
const MaxGames = 3

// Theme selects the template styling.
type Theme string

const (
	ThemeKanva      Theme = "kanva"
	ThemeKanvaLight Theme = "kanva-light"
	ThemeKanvaDark  Theme = "kanva-dark"
)

// DefaultTheme is used when a request leaves the theme empty.
const DefaultTheme = ThemeKanva

// Themes lists the built-in themes in display order.
func Themes() []Theme {
	return []Theme{ThemeKanva, ThemeKanvaLight, ThemeKanvaDark}
}

// Label is the display name of the theme.
func (t Theme) Label() string {
	switch t {
	case ThemeKanva:
		return "KANVA"
	case ThemeKanvaLight:
		return "KANVA Light"
	case ThemeKanvaDark:
		return "KANVA Dark"
	default:
		return string(t)
	}
}

// Kind is the template flavour: an upcoming-game announcement or a final score.
type Kind string

const (
	KindPreview Kind = "preview"
	KindResult  Kind = "result"
)

// Element is the custom element rendering this kind.
func (k Kind) Element() string {
	if k == KindResult {
		return "game-result"
	}
	return "game-preview"
}

var (
	ErrNoGames           = errors.New("at least one game is required")
	ErrTooManyGames      = fmt.Errorf("at most %d games can be combined", MaxGames)
	ErrUnknownTheme      = errors.New("unknown theme")
	ErrUnknownKind       = errors.New("unknown template kind")
	ErrResultUnavailable = errors.New("none of the selected games has a result")
	ErrMissingAPIType    = errors.New("sport api type is required")
)

// Request is everything a renderer needs: the endpoint type, ordered game ids with their
// result flags, and the look.
type Request struct {
	APIType     string   `json:"apiType"`
	GameIDs     []string `json:"gameIds"`
	ResultFlags []bool   `json:"resultFlags,omitempty"`
	Theme       Theme    `json:"theme,omitempty"`
	Kind        Kind     `json:"kind,omitempty"`
}

// DefaultKind picks the result template as soon as any selected game has a result.
func DefaultKind(flags []bool) Kind {
	if slices.Contains(flags, true) {
		return KindResult
	}
	return KindPreview
}

// ResultAvailable reports whether the result template can be used.
func (r Request) ResultAvailable() bool {
	return slices.Contains(r.ResultFlags, true)
}

// Normalize fills in the default theme and kind.
func (r Request) Normalize() Request {
	r.APIType = strings.TrimSpace(r.APIType)
	if r.Theme == "" {
		r.Theme = DefaultTheme
	}
	if r.Kind == "" {
		r.Kind = DefaultKind(r.ResultFlags)
	}
	return r
}

// Validate checks a normalized request.
func (r Request) Validate() error {
	if r.APIType == "" {
		return ErrMissingAPIType
	}
	switch n := len(r.GameIDs); {
	case n == 0:
		return ErrNoGames
	case n > MaxGames:
		return ErrTooManyGames
	}
	for _, id := range r.GameIDs {
		if strings.TrimSpace(id) == "" {
			return ErrNoGames
		}
	}
	if !slices.Contains(Themes(), r.Theme) {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, r.Theme)
	}
	switch r.Kind {
	case KindPreview:
	case KindResult:
		if !r.ResultAvailable() {
			return ErrResultUnavailable
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
	return nil
}

// Artifact is a rendered template.
type Artifact struct {
	ContentType string
	Data        []byte
}

// Renderer turns a request into an artifact.
type Renderer interface {
	Render(ctx context.Context, req Request) (Artifact, error)
}
