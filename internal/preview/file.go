package preview

import (
	"fmt"
	"strings"
)

// FileName is the name an artifact rendered for req is saved under.
func FileName(req Request, art Artifact) string {
	return fmt.Sprintf("%s-%s-%s%s", req.APIType, string(req.Kind), strings.Join(req.GameIDs, "_"), art.Extension())
}

// Extension derives a file extension from the content type.
func (a Artifact) Extension() string {
	switch {
	case strings.HasPrefix(a.ContentType, "image/png"):
		return ".png"
	case strings.HasPrefix(a.ContentType, "text/html"):
		return ".html"
	}
	return ".bin"
}
