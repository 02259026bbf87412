package service

import (
	"net/mail"
	"slices"
	"strings"

	"github.com/MKhiriev/stream-console/models"
)

// Page size bounds applied before a list request leaves the console.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

func clampPage(page models.PageRequest) models.PageRequest {
	if page.Page < 1 {
		page.Page = 1
	}
	switch {
	case page.Limit < 1:
		page.Limit = DefaultPageLimit
	case page.Limit > MaxPageLimit:
		page.Limit = MaxPageLimit
	}
	return page
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrValidationNoID
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrValidationNoEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrValidationInvalidEmail
	}
	return nil
}

func validateRole(role string) error {
	if !slices.Contains(models.Roles(), role) {
		return ErrValidationInvalidRole
	}
	return nil
}

func validateStreamStatus(status string) error {
	if !slices.Contains(models.StreamStatuses(), status) {
		return ErrValidationInvalidStatus
	}
	return nil
}

func validateUserInput(in models.UserInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrValidationNoName
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if in.Password == "" {
		return ErrValidationNoPassword
	}
	return validateRole(in.Role)
}

func validateUserPatch(patch models.UserPatch) error {
	if patch.Empty() {
		return ErrNothingToUpdate
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return ErrValidationNoName
	}
	if patch.Email != nil {
		if err := validateEmail(*patch.Email); err != nil {
			return err
		}
	}
	if patch.Password != nil && *patch.Password == "" {
		return ErrValidationNoPassword
	}
	if patch.Role != nil {
		return validateRole(*patch.Role)
	}
	return nil
}

func validateStreamInput(in models.StreamInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrValidationNoTitle
	}
	if strings.TrimSpace(in.StreamerID) == "" {
		return ErrValidationNoStreamer
	}
	if in.Status != "" {
		return validateStreamStatus(in.Status)
	}
	return nil
}

func validateStreamPatch(patch models.StreamPatch) error {
	if patch.Empty() {
		return ErrNothingToUpdate
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return ErrValidationNoTitle
	}
	if patch.Status != nil {
		return validateStreamStatus(*patch.Status)
	}
	return nil
}
