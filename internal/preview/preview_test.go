package preview

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/club-studio/internal/metrics"
)

func TestDefaultKindSwitchesToResult(t *testing.T) {
	assert.Equal(t, KindPreview, DefaultKind(nil))
	assert.Equal(t, KindPreview, DefaultKind([]bool{false, false}))
	assert.Equal(t, KindResult, DefaultKind([]bool{false, true}))
}

func TestNormalizeFillsDefaults(t *testing.T) {
	req := Request{APIType: " swissvolley ", GameIDs: []string{"1"}, ResultFlags: []bool{true}}.Normalize()
	assert.Equal(t, "swissvolley", req.APIType)
	assert.Equal(t, ThemeKanva, req.Theme)
	assert.Equal(t, KindResult, req.Kind)
}

func TestValidate(t *testing.T) {
	base := Request{APIType: "swissunihockey", GameIDs: []string{"a"}, Theme: ThemeKanvaDark, Kind: KindPreview}
	require.NoError(t, base.Validate())

	cases := []struct {
		name   string
		mutate func(*Request)
		want   error
	}{
		{"no api type", func(r *Request) { r.APIType = "" }, ErrMissingAPIType},
		{"no games", func(r *Request) { r.GameIDs = nil }, ErrNoGames},
		{"blank game", func(r *Request) { r.GameIDs = []string{" "} }, ErrNoGames},
		{"too many", func(r *Request) { r.GameIDs = []string{"1", "2", "3", "4"} }, ErrTooManyGames},
		{"theme", func(r *Request) { r.Theme = "neon" }, ErrUnknownTheme},
		{"kind", func(r *Request) { r.Kind = "poster" }, ErrUnknownKind},
		{"result without results", func(r *Request) { r.Kind = KindResult; r.ResultFlags = []bool{false} }, ErrResultUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			assert.ErrorIs(t, req.Validate(), tc.want)
		})
	}
}

func TestPageCarriesAttributes(t *testing.T) {
	page, err := Page(Request{
		APIType:     "swisshandball",
		GameIDs:     []string{"g1", "g2", "g3"},
		ResultFlags: []bool{false, true, false},
		Theme:       ThemeKanvaLight,
	}, "https://cdn.example/components.js")
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, `<game-result type="swisshandball" game="g1" game-2="g2" game-3="g3" theme="kanva-light">`)
	assert.Contains(t, html, `src="https://cdn.example/components.js"`)
	assert.NotContains(t, html, "<game-preview")
}

func TestPageSingleGameOmitsExtraAttributes(t *testing.T) {
	page, err := Page(Request{APIType: "swissunihockey", GameIDs: []string{"only"}}, "")
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, `<game-preview type="swissunihockey" game="only" theme="kanva">`)
	assert.NotContains(t, html, "game-2")
	assert.Contains(t, html, DefaultComponentsURL)
}

func TestPageEscapesIDs(t *testing.T) {
	page, err := Page(Request{APIType: "swissunihockey", GameIDs: []string{`"><script>alert(1)</script>`}}, "")
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(page), "<script>alert"), "ids must be escaped")
}

func TestHTMLRenderer(t *testing.T) {
	art, err := HTMLRenderer{}.Render(context.Background(), Request{APIType: "swissvolley", GameIDs: []string{"9"}})
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", art.ContentType)
	assert.Contains(t, string(art.Data), `game="9"`)
}

type failingRenderer struct{ err error }

func (f failingRenderer) Render(ctx context.Context, req Request) (Artifact, error) {
	if f.err != nil {
		return Artifact{}, f.err
	}
	time.Sleep(time.Millisecond)
	return Artifact{ContentType: "image/png", Data: []byte("png")}, nil
}

func TestWithMetricsRecordsRenders(t *testing.T) {
	rec := metrics.NewRecorder()
	ok := WithMetrics(failingRenderer{}, nil, rec)
	_, err := ok.Render(context.Background(), Request{APIType: "swissvolley", GameIDs: []string{"1"}, ResultFlags: []bool{true}})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Renders("result"))

	boom := errors.New("chrome crashed")
	bad := WithMetrics(failingRenderer{err: boom}, nil, rec)
	_, err = bad.Render(context.Background(), Request{APIType: "swissvolley", GameIDs: []string{"1"}})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, rec.Renders("preview"))
}
