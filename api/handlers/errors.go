// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts service errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts service errors to appropriate Huma HTTP errors.
// The debug endpoints are the only ones that surface errors at all; the
// display endpoint always degrades to a fallback payload instead.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}
	return huma.Error503ServiceUnavailable("Upstream source unavailable", err)
}
