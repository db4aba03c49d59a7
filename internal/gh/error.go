package gh

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/HiDeoo/hideoo.dev/internal/utils/errutils"
)

// TransportError is returned when the API responds with a non-success HTTP
// status. It is always fatal for the build.
type TransportError struct {
	StatusCode int
	Reason     string
}

func newTransportError(res *http.Response) TransportError {
	reason := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode)))
	if reason == "" {
		reason = http.StatusText(res.StatusCode)
	}
	return TransportError{StatusCode: res.StatusCode, Reason: reason}
}

func (e TransportError) Error() string {
	return fmt.Sprintf("%d: %s while fetching GitHub API", e.StatusCode, e.Reason)
}

// IsHTTPUnauthorized returns true if the given error is an HTTP 401 Unauthorized error.
func IsHTTPUnauthorized(err error) bool {
	if terr, ok := errutils.As[TransportError](err); ok {
		return terr.StatusCode == http.StatusUnauthorized
	}
	// The githubv4 client doesn't export proper error types so we have to
	// check the string.
	return err != nil && strings.Contains(err.Error(), "status code: 401")
}
