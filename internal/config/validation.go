package config

import (
	"fmt"
	"strings"

	"github.com/sqve/gitfu/internal/validation"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("configuration validation failed:\n%s", strings.Join(messages, "\n"))
}

// ValidateConfig validates a configuration struct
func ValidateConfig(config *Config) error {
	var errors ValidationErrors

	remote := config.Git.DefaultRemote
	if err := validation.ValidateRemoteName(remote); err != nil {
		errors = append(errors, ValidationError{
			Field:   "git.default_remote",
			Value:   remote,
			Message: "remote name " + err.Error(),
		})
	}

	for _, branch := range config.Branch.Protected {
		if err := validation.ValidateBranchName(branch); err != nil {
			errors = append(errors, ValidationError{
				Field:   "branch.protected",
				Value:   branch,
				Message: "protected branch name " + err.Error(),
			})
			break
		}
	}

	marker := config.Switch.WipMarker
	if strings.TrimSpace(marker) == "" {
		errors = append(errors, ValidationError{
			Field:   "switch.wip_marker",
			Value:   marker,
			Message: "WIP marker cannot be empty",
		})
	} else if strings.Contains(marker, "\n") {
		errors = append(errors, ValidationError{
			Field:   "switch.wip_marker",
			Value:   marker,
			Message: "WIP marker must be a single line",
		})
	}

	if len(errors) > 0 {
		return errors
	}

	return nil
}
