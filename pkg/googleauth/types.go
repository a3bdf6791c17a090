package googleauth

// Config holds the OAuth client registration plus provider endpoints.
// Endpoint URLs are overridable so tests can point at a local server.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string

	AuthURL   string // default: Google authorization endpoint
	TokenURL  string // default: Google token endpoint
	RevokeURL string // default: Google revocation endpoint
}

// Default Google OAuth 2.0 endpoints.
const (
	GoogleAuthURL   = "https://accounts.google.com/o/oauth2/auth"
	GoogleTokenURL  = "https://oauth2.googleapis.com/token"
	GoogleRevokeURL = "https://oauth2.googleapis.com/revoke"
)
