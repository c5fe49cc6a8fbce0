package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer             = errors.New("Internal server error")
	ErrClient                     = errors.New("Bad request")
	ErrNotLoggedIn                = errors.New("Unauthorized access")
	ErrInvalidCredentials         = errors.New("Invalid email or password")
	ErrAccountDisabled            = errors.New("Account is disabled")
	ErrAccountUnverified          = errors.New("Account is not verified")
	ErrEmailAlreadyUsed           = errors.New("User with this email already exists")
	ErrNotFound                   = errors.New("Resource not found")
	ErrUserNotFound               = errors.New("User not found")
	ErrCertificateNotFound        = errors.New("Certificate not found")
	ErrUniversityNotFound         = errors.New("University not found")
	ErrStudentUniversityRequired  = errors.New("Students must select a university")
	ErrUniversityNameExists       = errors.New("University name already exists")
	ErrUniversityEmailExists      = errors.New("University email already exists")
	ErrUniversityAlreadyVerified  = errors.New("University is already verified")
	ErrUniversityAlreadyUnverified = errors.New("University is already unverified")
	ErrRegistrationFailed         = errors.New("Failed to register university")
	ErrUnknownRole                = errors.New("Unknown user role")
	ErrUpstreamService            = errors.New("Upstream service call failed")
)

var errorMap = map[error]int{
	ErrInternalServer:              http.StatusInternalServerError,
	ErrClient:                      http.StatusBadRequest,
	ErrNotLoggedIn:                 http.StatusUnauthorized,
	ErrInvalidCredentials:          http.StatusUnauthorized,
	ErrAccountDisabled:             http.StatusUnauthorized,
	ErrAccountUnverified:           http.StatusUnauthorized,
	ErrEmailAlreadyUsed:            http.StatusBadRequest,
	ErrNotFound:                    http.StatusNotFound,
	ErrUserNotFound:                http.StatusNotFound,
	ErrCertificateNotFound:         http.StatusNotFound,
	ErrUniversityNotFound:          http.StatusNotFound,
	ErrStudentUniversityRequired:   http.StatusBadRequest,
	ErrUniversityNameExists:        http.StatusBadRequest,
	ErrUniversityEmailExists:       http.StatusBadRequest,
	ErrUniversityAlreadyVerified:   http.StatusBadRequest,
	ErrUniversityAlreadyUnverified: http.StatusBadRequest,
	ErrRegistrationFailed:          http.StatusBadRequest,
	ErrUnknownRole:                 http.StatusBadRequest,
	ErrUpstreamService:             http.StatusBadGateway,
}

// GetErrorStatusCode resolves wrapped sentinels too, so services can annotate
// an error with upstream detail without losing the status mapping.
func GetErrorStatusCode(err error) int {
	if code, ok := errorMap[err]; ok {
		return code
	}

	for sentinel, code := range errorMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}

	return http.StatusInternalServerError
}
