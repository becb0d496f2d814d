package services

// ErrorKind identifies a class of authentication failure so handlers can
// pick a status code without matching on message strings.
type ErrorKind int

const (
	// KindValidation covers malformed or missing input (400).
	KindValidation ErrorKind = iota
	// KindDuplicateEmail means the email is already registered (409).
	KindDuplicateEmail
	// KindInvalidCredentials covers unknown email and wrong password alike,
	// so a caller cannot tell which part was wrong (401).
	KindInvalidCredentials
	// KindInvalidToken covers expired, tampered and malformed tokens (401).
	KindInvalidToken
	// KindStoreFailure means the credential store rejected a write (400 on
	// the registration path).
	KindStoreFailure
	// KindSecretMissing means the signing secret is not configured.
	KindSecretMissing
)

// AuthError is the closed error set of the authentication core. Message is
// what the API returns to the client; Kind is what handlers branch on.
type AuthError struct {
	Kind    ErrorKind
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func authErr(kind ErrorKind, message string) *AuthError {
	return &AuthError{Kind: kind, Message: message}
}

// KindOf extracts the kind from an error returned by AuthService. Anything
// that is not an AuthError is reported as a store failure.
func KindOf(err error) ErrorKind {
	if ae, ok := err.(*AuthError); ok {
		return ae.Kind
	}
	return KindStoreFailure
}
