package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-login-flow/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError classifies a non-2xx login response into an [models.APIError].
// The mapping is total: every status lands on one of the closed error codes.
func mapHTTPError(resp *resty.Response) *models.APIError {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return &models.APIError{Code: models.CodeInvalidRequest, Message: body, HTTPStatus: resp.StatusCode()}
	case http.StatusUnauthorized:
		return &models.APIError{Code: models.CodeInvalidCredentials, Message: "invalid login/password", HTTPStatus: resp.StatusCode()}
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return &models.APIError{Code: models.CodeServerUnavailable, Message: body, HTTPStatus: resp.StatusCode()}
	default:
		return &models.APIError{Code: models.CodeServerError, Message: body, HTTPStatus: resp.StatusCode()}
	}
}
