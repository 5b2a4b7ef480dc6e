package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// UnknownActionErr represents an error when an action identifier is outside
// the enumerated action set. It indicates a programming error upstream.
type UnknownActionErr struct {
	domainErr
}

// NewUnknownActionErr creates a new UnknownActionErr for the given identifier.
func NewUnknownActionErr(identifier string) *UnknownActionErr {
	return &UnknownActionErr{
		domainErr: domainErr{message: "unknown action: " + identifier},
	}
}

// EmptyContentErr represents an error when there is no text available to
// process (empty selection over an empty document).
type EmptyContentErr struct {
	domainErr
}

// NewEmptyContentErr creates a new EmptyContentErr with the given message.
func NewEmptyContentErr(message string) *EmptyContentErr {
	return &EmptyContentErr{
		domainErr: domainErr{message: message},
	}
}

// MissingCredentialMessage is the user-facing message shown when no usable
// API credential is configured.
const MissingCredentialMessage = "OpenAI API key is missing. Add your key to .env to enable AI features."

// MissingCredentialErr represents an error when no usable API credential is
// configured. It is surfaced before any network attempt.
type MissingCredentialErr struct {
	domainErr
}

// NewMissingCredentialErr creates a new MissingCredentialErr.
func NewMissingCredentialErr() *MissingCredentialErr {
	return &MissingCredentialErr{
		domainErr: domainErr{message: MissingCredentialMessage},
	}
}

// TransportErr represents a network-level failure reaching the LLM provider.
type TransportErr struct {
	domainErr
}

// NewTransportErr creates a new TransportErr with the given message.
func NewTransportErr(message string) *TransportErr {
	return &TransportErr{
		domainErr: domainErr{message: message},
	}
}

// ModelRejectedErr represents an API-level rejection from the LLM provider,
// e.g. a model not entitled under the current credential. The message carries
// the underlying provider text.
type ModelRejectedErr struct {
	domainErr
}

// NewModelRejectedErr creates a new ModelRejectedErr with the given message.
func NewModelRejectedErr(message string) *ModelRejectedErr {
	return &ModelRejectedErr{
		domainErr: domainErr{message: message},
	}
}

// RequestInFlightErr represents an attempt to start a request while another
// one is still being processed.
type RequestInFlightErr struct {
	domainErr
}

// NewRequestInFlightErr creates a new RequestInFlightErr.
func NewRequestInFlightErr() *RequestInFlightErr {
	return &RequestInFlightErr{
		domainErr: domainErr{message: "another request is already being processed"},
	}
}
