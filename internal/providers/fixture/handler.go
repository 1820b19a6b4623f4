package fixture

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/graphql-go/graphql"

	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/providers"
)

// Handler answers GET /<apiType>?query=<graphql> like the live federation endpoints.
type Handler struct {
	schemas map[string]graphql.Schema
	logger  *slog.Logger
}

// NewHandler builds one schema per supported sport over source.
func NewHandler(source providers.DataProvider, logger *slog.Logger) (*Handler, error) {
	schemas := make(map[string]graphql.Schema, len(sports.All()))
	for _, s := range sports.All() {
		schema, err := NewSchema(s, source)
		if err != nil {
			return nil, err
		}
		schemas[s.APIType()] = schema
	}
	return &Handler{schemas: schemas, logger: logger}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiType := path.Base(r.URL.Path)
	schema, ok := h.schemas[apiType]
	if !ok {
		http.NotFound(w, r)
		return
	}
	query := r.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		http.Error(w, "missing query", http.StatusBadRequest)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       r.Context(),
	})
	if result.HasErrors() {
		logging.Warn(h.logger, "fixture query failed",
			"api_type", apiType,
			"errors", len(result.Errors),
			"first_error", result.Errors[0].Message,
		)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logging.Error(h.logger, "fixture encode failed", err)
	}
}
