package collector

import (
	"errors"

	"github.com/aws/smithy-go"
)

// isAccessDenied reports whether an API error means the credentials lack
// the describe permission, as opposed to a transport or service failure.
func isAccessDenied(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "UnauthorizedOperation", "AccessDenied", "AccessDeniedException", "UnauthorizedException":
		return true
	}
	return false
}
