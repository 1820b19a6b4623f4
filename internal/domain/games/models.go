package games

// NotPlayedResult is the federation sentinel for a game without a score yet.
const NotPlayedResult = "-:-"

// Game is the canonical game shape. Date is DD.MM.YYYY and Time is display text.
type Game struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	HomeTeam     string `json:"homeTeam"`
	AwayTeam     string `json:"awayTeam"`
	Result       string `json:"result,omitempty"`
	ResultDetail string `json:"resultDetail,omitempty"`
	Location     string `json:"location,omitempty"`
	City         string `json:"city,omitempty"`
	HomeTeamLogo string `json:"homeTeamLogo,omitempty"`
	AwayTeamLogo string `json:"awayTeamLogo,omitempty"`
}

// HasResult reports whether a score has been recorded.
func (g Game) HasResult() bool {
	return g.Result != "" && g.Result != NotPlayedResult
}

// DateGroup is a run of games sharing the same date string.
type DateGroup struct {
	Date      string `json:"date"`
	Games     []Game `json:"games"`
	MultiGame bool   `json:"multiGame"`
}

// ListResponse is the payload returned by the games endpoint.
type ListResponse struct {
	Sport       string      `json:"sport"`
	TeamID      string      `json:"teamId"`
	IncludePast bool        `json:"includePast"`
	Games       []Game      `json:"games"`
	Groups      []DateGroup `json:"groups"`
}
