package federation

import "time"

const (
	defaultBaseURL     = "https://europe-west6-myclubmanagement.cloudfunctions.net/api"
	defaultHTTPTimeout = 10 * time.Second
	// errorBodyLimit bounds how much of a failed response is kept for the log line.
	errorBodyLimit = 512
)
