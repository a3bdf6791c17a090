package session

// InitiateOutput carries the consent URL and the CSRF state bound to it.
type InitiateOutput struct {
	AuthURL string
	State   string
}

// CompleteInput is the redirect callback payload.
type CompleteInput struct {
	Code  string
	State string
}

// CompleteOutput identifies the user whose connection was established.
type CompleteOutput struct {
	UserID string
}
