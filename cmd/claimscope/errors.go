// cmd/claimscope/errors.go
package main

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeSearch   ErrorType = "search"
	ErrorTypeAnalysis ErrorType = "analysis"
	ErrorTypeDiscord  ErrorType = "discord"
	ErrorTypeInternal ErrorType = "internal"
)

// Error codes
const (
	ErrConfigMissingKey = "CONFIG_001"
	ErrConfigValidation = "CONFIG_002"

	ErrSearchTransport = "SEARCH_001"
	ErrSearchParse     = "SEARCH_002"

	ErrAnalysisRequest = "ANALYSIS_001"
	ErrAnalysisParse   = "ANALYSIS_002"
)

// ClaimScopeError is the custom error type for the application
type ClaimScopeError struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Inner   error     `json:"inner,omitempty"`
}

func (e *ClaimScopeError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("[%s-%s] %s: %v", e.Type, e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("[%s-%s] %s", e.Type, e.Code, e.Message)
}

func (e *ClaimScopeError) Unwrap() error {
	return e.Inner
}

// NewError creates a new ClaimScopeError
func NewError(errType ErrorType, code string, message string, inner error) *ClaimScopeError {
	return &ClaimScopeError{
		Type:    errType,
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// NewConfigError creates a configuration error
func NewConfigError(code string, message string, inner error) *ClaimScopeError {
	return NewError(ErrorTypeConfig, code, message, inner)
}

// ErrorEvent represents a recorded error event
type ErrorEvent struct {
	Component string    `json:"component"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
}

var (
	errorLog   []ErrorEvent
	errorMutex sync.Mutex
)

const maxErrorLog = 100

// RecordError logs an error and keeps it in the recent-errors buffer shown on
// the dashboard. A nil error is a no-op.
func RecordError(component string, err error) {
	if err == nil {
		return
	}

	Logger().Error("%s: %v", component, err)

	errorMutex.Lock()
	defer errorMutex.Unlock()

	errorLog = append(errorLog, ErrorEvent{
		Component: component,
		Message:   err.Error(),
		Time:      time.Now(),
	})
	if len(errorLog) > maxErrorLog {
		errorLog = errorLog[len(errorLog)-maxErrorLog:]
	}
}

// RecentErrors returns a copy of the recent-errors buffer, newest last
func RecentErrors() []ErrorEvent {
	errorMutex.Lock()
	defer errorMutex.Unlock()

	out := make([]ErrorEvent, len(errorLog))
	copy(out, errorLog)
	return out
}

// RecoverFromPanic logs a panic with its stack trace. Use with defer.
func RecoverFromPanic(component string) {
	if r := recover(); r != nil {
		Logger().Error("panic in %s: %v\n%s", component, r, debug.Stack())
	}
}
