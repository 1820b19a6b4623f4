package federation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type envelope struct {
	Data map[string]json.RawMessage `json:"data"`
}

type clubResponse struct {
	ID   flexString `json:"id"`
	Name flexString `json:"name"`
}

type teamResponse struct {
	ID   flexString `json:"id"`
	Name flexString `json:"name"`
	Liga flexString `json:"liga"`
}

type gameResponse struct {
	ID           flexString `json:"id"`
	Date         flexString `json:"date"`
	Time         flexString `json:"time"`
	TeamHome     flexString `json:"teamHome"`
	TeamAway     flexString `json:"teamAway"`
	Result       flexString `json:"result"`
	ResultDetail flexString `json:"resultDetail"`
	Location     flexString `json:"location"`
	City         flexString `json:"city"`
	TeamHomeLogo flexString `json:"teamHomeLogo"`
	TeamAwayLogo flexString `json:"teamAwayLogo"`
}

// flexString accepts JSON strings, numbers and null. Federations disagree on id types.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*f = ""
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*f = flexString(n.String())
		return nil
	default:
		return fmt.Errorf("expected string or number, got %s", b)
	}
}
