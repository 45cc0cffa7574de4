// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	cnserrors "github.com/redhat/wine-cellar/pkg/errors"
	"github.com/redhat/wine-cellar/pkg/serializer"
)

// Error codes used by the server itself; aliases of pkg/errors codes.
const (
	ErrCodeRateLimitExceeded = cnserrors.ErrCodeRateLimitExceeded
	ErrCodeInternal          = cnserrors.ErrCodeInternal
	ErrCodeInvalidRequest    = cnserrors.ErrCodeInvalidRequest
	ErrCodeMethodNotAllowed  = cnserrors.ErrCodeMethodNotAllowed
	ErrCodeNotFound          = cnserrors.ErrCodeNotFound
	ErrCodeUnavailable       = cnserrors.ErrCodeUnavailable
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cnserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as an ErrorResponse.
//
// Parameters:
//   - w, r: the response being written and the request it answers; the
//     request ID is read from r's context
//   - err: the failure; a *cnserrors.StructuredError anywhere in its chain
//     sets the code, status and message, and its context plus "cause"
//     become details
//   - fallbackMessage: used when err is not structured (answered as 500
//     INTERNAL) or carries an empty message
//   - extraDetails: merged last, overriding keys taken from err
//
// Retryable is derived from the code: TIMEOUT, SERVICE_UNAVAILABLE,
// RATE_LIMIT_EXCEEDED and INTERNAL are retryable.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *cnserrors.StructuredError
	if err == nil || !stderrors.As(err, &se) {
		details := map[string]any{}
		if err != nil {
			details["error"] = err.Error()
		}
		WriteError(w, r, http.StatusInternalServerError, cnserrors.ErrCodeInternal,
			fallbackMessage, true, mergeDetails(details, extraDetails))
		return
	}

	details := map[string]any{}
	for k, v := range se.Context {
		details[k] = v
	}
	if se.Cause != nil {
		details["cause"] = se.Cause.Error()
	}

	message := se.Message
	if message == "" {
		message = fallbackMessage
	}

	WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, message,
		retryableFromCode(se.Code), mergeDetails(details, extraDetails))
}

// HTTPStatusFromCode maps an error code to its HTTP status. Unknown codes
// are 500.
func HTTPStatusFromCode(code cnserrors.ErrorCode) int {
	switch code {
	case cnserrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case cnserrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case cnserrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cnserrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cnserrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cnserrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cnserrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cnserrors.ErrorCode) bool {
	switch code {
	case cnserrors.ErrCodeTimeout,
		cnserrors.ErrCodeUnavailable,
		cnserrors.ErrCodeRateLimitExceeded,
		cnserrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries over a's, or nil when
// both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
