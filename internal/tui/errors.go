// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-safe-auth/internal/adapter"
	"github.com/MKhiriev/go-safe-auth/internal/authkit"
	"github.com/MKhiriev/go-safe-auth/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrOperationInProgress):
		return "Another login or logout is still running"
	case errors.Is(err, authkit.ErrLoginTimeout):
		return "Login timed out, the browser flow was not completed"
	case errors.Is(err, authkit.ErrLoginCancelled):
		return "Login cancelled"
	case errors.Is(err, authkit.ErrNoAdaptersAvailable):
		return "No login methods available for this client id"
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return "The provider rejected the client id"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable or provider unreachable"
	}

	return err.Error()
}
