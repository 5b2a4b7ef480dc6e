package openai

// apiKeyPlaceholder is the sample value shipped in .env.example. A key left
// at the placeholder counts as not configured.
const apiKeyPlaceholder = "your_openai_api_key_here"

// Credentials reports whether a usable API key is configured
type Credentials struct {
	apiKey string
}

// NewCredentials creates a new Credentials
func NewCredentials(apiKey string) Credentials {
	return Credentials{apiKey: apiKey}
}

// IsConfigured implements domain.CredentialChecker. The "-" value is the
// unset-config sentinel and counts as not configured.
func (c Credentials) IsConfigured() bool {
	return c.apiKey != "" && c.apiKey != "-" && c.apiKey != apiKeyPlaceholder
}
