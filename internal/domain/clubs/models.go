package clubs

// Club is a federation member club.
type Club struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
