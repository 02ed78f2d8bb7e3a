package drive

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// AuthError indicates the Drive service handle could not be built, or the
// access token was rejected by the remote service.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("drive auth failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("drive auth failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// NotFoundError indicates the remote file does not exist.
type NotFoundError struct {
	FileID string
	Err    error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.FileID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// UnsupportedTypeError indicates the file's MIME type is rejected by the
// content-type policy. Only get_content applies this gate.
type UnsupportedTypeError struct {
	FileID   string
	MimeType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported content type %s for file %s", e.MimeType, e.FileID)
}

// RemoteError indicates a transport or API failure that is neither an auth
// nor a not-found condition.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("drive %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// IOError indicates a local file could not be read during upload.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read local file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// wrapAPIError classifies a Drive API failure into the error taxonomy.
// The HTTP status of a googleapi.Error decides the category; anything else
// is a RemoteError for the given operation.
func wrapAPIError(op, fileID string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return &NotFoundError{FileID: fileID, Err: err}
		case http.StatusUnauthorized, http.StatusForbidden:
			return &AuthError{Reason: "access token rejected by remote service", Err: err}
		}
	}
	return &RemoteError{Op: op, Err: err}
}
