package teams

// Team is one team of a club. League is only reported by some federations.
type Team struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	League string `json:"league,omitempty"`
}
