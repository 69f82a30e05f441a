package lowcode

import apierrors "github.com/olgasafonova/lowcodeapi-go/internal/errors"

// Error types returned by the client and its modules.
type (
	// ValidationError reports a bad constructor argument
	ValidationError = apierrors.ValidationError

	// AuthenticationError reports an HTTP 401 response
	AuthenticationError = apierrors.AuthenticationError

	// RequestError reports any other non-2xx response
	RequestError = apierrors.RequestError

	// NetworkError reports a transport failure; it unwraps to the cause
	NetworkError = apierrors.NetworkError
)

// IsValidation reports whether err is or wraps a *ValidationError
func IsValidation(err error) bool {
	return apierrors.IsValidation(err)
}

// IsAuthentication reports whether err is or wraps an *AuthenticationError
func IsAuthentication(err error) bool {
	return apierrors.IsAuthentication(err)
}

// IsRequest reports whether err is or wraps a *RequestError
func IsRequest(err error) bool {
	return apierrors.IsRequest(err)
}

// IsNetwork reports whether err is or wraps a *NetworkError
func IsNetwork(err error) bool {
	return apierrors.IsNetwork(err)
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	return apierrors.StatusCode(err)
}
