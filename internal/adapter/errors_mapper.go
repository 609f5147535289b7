package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-ride-hail/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a sentinel-wrapped error
// carrying the server's message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	switch status := resp.StatusCode(); {
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, message)
	}
}

// errorMessage prefers error.message of the failure envelope, then the raw
// body, then the status text.
func errorMessage(resp *resty.Response) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}

	return http.StatusText(resp.StatusCode())
}
