package api

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/eventposter/internal/common"
)

// Error carries the server's status and message back to the initiating view.
// Status is 0 for transport-level failures that never produced a response.
// Use errors.Is with the common sentinels to branch on the class of failure.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized, e.Status == http.StatusForbidden:
		return common.ErrUnauthorized
	case e.Status == http.StatusNotFound:
		return common.ErrNotFound
	case e.Status == 0, e.Status >= http.StatusInternalServerError:
		return common.ErrUnavailable
	default:
		return nil
	}
}
