// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-login-flow/models"

// humanizeAPIError turns a classified login failure into a message fit for
// the failure alert.
func humanizeAPIError(err models.APIError) string {
	switch err.Code {
	case models.CodeInvalidCredentials:
		return "Invalid username or password"
	case models.CodeServerUnavailable:
		return "No network or the server is unavailable"
	default:
		if err.Message != "" {
			return err.Message
		}
		return "Something went wrong, try again later"
	}
}
