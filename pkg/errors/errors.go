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

package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// ErrorCode classifies a failure. The string values are part of the public
// API error contract.
type ErrorCode string

// Error codes returned to API and CLI callers.
const (
	// ErrCodeInvalidRequest: missing or malformed lookup parameters, or an
	// invalid catalog document.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeNotFound: the requested resource does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeUnauthorized: registry or cluster credentials were rejected.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeTimeout: the lookup deadline passed or the caller went away.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal: anything not classified elsewhere.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeRateLimitExceeded: the client exceeded the request rate.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeMethodNotAllowed: the HTTP method is not served on the route.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	// ErrCodeUnavailable: the catalog or its backing store cannot be reached.
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// StructuredError is an error with a code, a message for humans, an optional
// cause and optional key/value context rendered into API error details.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

func (e *StructuredError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a StructuredError with the same code and no
// message, so errors.Is(err, errors.New(code, "")) matches on code alone.
func (e *StructuredError) Is(target error) bool {
	t, ok := target.(*StructuredError)
	if !ok || t.Message != "" {
		return false
	}
	return t.Code == e.Code
}

// WithContext returns a copy of e with key set in its context.
func (e *StructuredError) WithContext(key string, value any) *StructuredError {
	out := *e
	out.Context = make(map[string]any, len(e.Context)+1)
	maps.Copy(out.Context, e.Context)
	out.Context[key] = value
	return &out
}

func build(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: context}
}

// New returns an error with code and message.
func New(code ErrorCode, message string) *StructuredError {
	return build(code, message, nil, nil)
}

// NewWithContext is New with attached context.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return build(code, message, nil, context)
}

// Wrap classifies cause under code.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return build(code, message, cause, nil)
}

// WrapWithContext is Wrap with attached context.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return build(code, message, cause, context)
}

// CodeOf returns the code of the first StructuredError in err's chain.
// Unclassified errors report ErrCodeInternal; nil yields "".
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether CodeOf(err) is code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
