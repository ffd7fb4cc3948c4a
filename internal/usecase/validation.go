package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/sirupsen/logrus"
)

// isValidEmail provides a basic check for email format.
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	domainParts := strings.Split(parts[1], ".")
	return len(domainParts) >= 2 && domainParts[0] != "" && domainParts[len(domainParts)-1] != ""
}

// validatePassword enforces basic password complexity rules.
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long: %w", domain.ErrInvalidInput)
	}
	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("password must contain at least one uppercase letter, one lowercase letter, and one digit: %w", domain.ErrInvalidInput)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrInvalidInput)
}

// normalizeStatus applies the active default and rejects unknown values.
func normalizeStatus(s domain.Status) (domain.Status, error) {
	s = domain.Status(strings.ToLower(strings.TrimSpace(string(s))))
	if s == "" {
		return domain.StatusActive, nil
	}
	if !s.Valid() {
		return "", invalid("status must be 'active' or 'inactive', got '%s'", s)
	}
	return s, nil
}

// stringUpdate reads a partial-update value. JSON null is accepted only when
// nullable is set and reads as "".
func stringUpdate(key string, value interface{}, nullable bool) (string, error) {
	if value == nil {
		if nullable {
			return "", nil
		}
		return "", invalid("%s cannot be null", key)
	}
	s, ok := value.(string)
	if !ok {
		return "", invalid("%s must be a string", key)
	}
	return strings.TrimSpace(s), nil
}

// requireReference turns a not-found lookup into a missing reference.
func requireReference(err error, entity, id string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s with id %s %w", entity, id, domain.ErrMissingReference)
	}
	return err
}

type notifier struct {
	publisher domain.EventPublisher
	log       *logrus.Logger
}

// notify publishes a change event. Failures are logged and never fail the
// mutation that already succeeded.
func (n notifier) notify(ctx context.Context, entity string, action domain.ChangeAction, id string) {
	if n.publisher == nil {
		return
	}
	change := domain.EntityChange{
		Entity:     entity,
		Action:     action,
		ID:         id,
		Actor:      domain.ActorFrom(ctx),
		OccurredAt: time.Now().UTC(),
	}
	if err := n.publisher.Publish(ctx, change); err != nil {
		n.log.Warnf("Use Case: Failed to publish %s %s event for ID %s: %v", entity, action, id, err)
	}
}
