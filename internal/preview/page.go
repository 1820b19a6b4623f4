package preview

import (
	"bytes"
	"context"
	"html/template"
)

// DefaultComponentsURL hosts the template web components.
const DefaultComponentsURL = "https://unpkg.com/kanva-web-components@latest/dist/kanva-web-components/kanva-web-components.esm.js"

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Element}}</title>
<script type="module" src="{{.ComponentsURL}}"></script>
<style>html,body{margin:0;padding:0;background:transparent}#stage{display:inline-block}</style>
</head>
<body>
<div id="stage">
{{if eq .Element "game-result"}}<game-result {{template "attrs" .}}></game-result>{{else}}<game-preview {{template "attrs" .}}></game-preview>{{end}}
</div>
</body>
</html>
{{define "attrs"}}type="{{.APIType}}" game="{{.Game}}"{{with .Game2}} game-2="{{.}}"{{end}}{{with .Game3}} game-3="{{.}}"{{end}} theme="{{.Theme}}"{{end}}`))

type pageData struct {
	Element       string
	ComponentsURL string
	APIType       string
	Game          string
	Game2         string
	Game3         string
	Theme         string
}

// Page renders the HTML document hosting the template component for req.
func Page(req Request, componentsURL string) ([]byte, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if componentsURL == "" {
		componentsURL = DefaultComponentsURL
	}
	data := pageData{
		Element:       req.Kind.Element(),
		ComponentsURL: componentsURL,
		APIType:       req.APIType,
		Game:          req.GameIDs[0],
		Theme:         string(req.Theme),
	}
	if len(req.GameIDs) > 1 {
		data.Game2 = req.GameIDs[1]
	}
	if len(req.GameIDs) > 2 {
		data.Game3 = req.GameIDs[2]
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HTMLRenderer returns the hosting page itself. Useful where no browser is available.
type HTMLRenderer struct {
	ComponentsURL string
}

func (r HTMLRenderer) Render(ctx context.Context, req Request) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	page, err := Page(req, r.ComponentsURL)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{ContentType: "text/html; charset=utf-8", Data: page}, nil
}
