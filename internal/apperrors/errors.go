// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
	"strings"
)

// ConfigurationError indicates the option catalog or a profile document is
// inconsistent. It is raised before any external process starts.
type ConfigurationError struct {
	Subject string   // Option or file the error refers to
	Message string   // Error message
	Details []string // Additional details
}

func (e *ConfigurationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("configuration error: %s: %s", e.Subject, e.Message)
	}
	return fmt.Sprintf("configuration error: %s: %s (%s)", e.Subject, e.Message, strings.Join(e.Details, ", "))
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(subject, message string, details ...string) *ConfigurationError {
	return &ConfigurationError{
		Subject: subject,
		Message: message,
		Details: details,
	}
}

// UnknownOptionError indicates an option name not present in the catalog.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s", e.Name)
}

// NewUnknownOptionError creates a new unknown-option error.
func NewUnknownOptionError(name string) *UnknownOptionError {
	return &UnknownOptionError{Name: name}
}

// ResourceError indicates the host lacks the resources to run a build.
type ResourceError struct {
	RequiredMB  int
	AvailableMB int
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("insufficient memory: %d MB required for one job, %d MB available", e.RequiredMB, e.AvailableMB)
}

// NewResourceError creates a new resource-insufficiency error.
func NewResourceError(requiredMB, availableMB int) *ResourceError {
	return &ResourceError{RequiredMB: requiredMB, AvailableMB: availableMB}
}

// StageError indicates an external stage (install, configure, build) failed.
type StageError struct {
	Stage    string
	ExitCode int
	Cause    error
}

func (e *StageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stage %s failed (exit %d): %v", e.Stage, e.ExitCode, e.Cause)
	}
	return fmt.Sprintf("stage %s failed (exit %d)", e.Stage, e.ExitCode)
}

func (e *StageError) Unwrap() error {
	return e.Cause
}

// NewStageError creates a new stage error.
func NewStageError(stage string, exitCode int, cause error) *StageError {
	return &StageError{
		Stage:    stage,
		ExitCode: exitCode,
		Cause:    cause,
	}
}
