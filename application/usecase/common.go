package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pradera/pradera/application/port/outbound"
	domainerr "github.com/pradera/pradera/domain/error"
	"github.com/pradera/pradera/infrastructure/http/validator"
)

// Options carries the collaborators every site use case shares. Zero values
// are replaced by defaults in withDefaults.
type Options struct {
	BannedWords []string
	NewID       func() string
	Now         func() time.Time
}

func (o Options) withDefaults() Options {
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if !validator.ValidateRequired(f.value) {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domainerr.ErrMissingField(missing...)
	}
	return nil
}

// presence lets requireFields check fields whose zero value is meaningful.
func presence(sent bool) string {
	if sent {
		return "set"
	}
	return ""
}

func checkBanned(words []string, fields ...field) error {
	for _, f := range fields {
		if _, found := validator.ContainsBannedWord(f.value, words); found {
			return domainerr.ErrBannedContent(f.name)
		}
	}
	return nil
}

func checkMinInt(name string, value *int, min int) error {
	if value != nil && *value < min {
		return domainerr.ErrOutOfRange(name, float64(min), float64(min))
	}
	return nil
}

func checkMinFloat(name string, value *float64, min float64) error {
	if value != nil && *value < min {
		return domainerr.ErrOutOfRange(name, min, min)
	}
	return nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(name, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domainerr.ErrInvalidValue(name, value)
}

func parseOptionalDate(name string, value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := parseDate(name, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// mapRepoError converts repository sentinels into API errors for kind.
func mapRepoError(kind, id, operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, outbound.ErrNotFound):
		return domainerr.ErrResourceNotFound(kind, id)
	case errors.Is(err, outbound.ErrDuplicate):
		return domainerr.ErrDuplicateResource(kind, err)
	case errors.Is(err, outbound.ErrReferenceViolation):
		return domainerr.ErrReferenceViolation(kind, err)
	}
	return domainerr.ErrDatabaseError(operation, err)
}

func nonEmpty(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
