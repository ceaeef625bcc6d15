package restapi

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// CallError reports an API response outside the success range. The status
// code and raw body are preserved so callers can react to specific
// failures.
type CallError struct {
	StatusCode int
	Body       string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("api call failed with status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

// AsCallError unwraps err to a *CallError if one is present.
func AsCallError(err error) (*CallError, bool) {
	var callErr *CallError
	if errors.As(err, &callErr) {
		return callErr, true
	}

	return nil, false
}
