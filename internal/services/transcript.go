package services

import (
	"fmt"
	"strings"

	"github.com/Hairash/ai-helper/internal/models"
)

const (
	labelMe        = "Me"
	labelRecruiter = "Recruiter"
)

// FormatTranscript renders the conversation as one "<Label>: <text>" line per
// message, in input order. Messages are expected to be validated already.
func FormatTranscript(messages []models.Message) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", roleLabel(m.Role), m.Text))
	}
	return strings.Join(lines, "\n")
}

func roleLabel(role string) string {
	if normalizeRole(role) == models.RoleMe {
		return labelMe
	}
	return labelRecruiter
}

func normalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// ValidateMessages rejects an empty transcript and any message with a missing
// or unknown role or an empty text.
func ValidateMessages(messages []models.Message) error {
	if len(messages) == 0 {
		return &ValidationError{Message: "No messages provided"}
	}

	fields := make(map[string]string)
	for i, m := range messages {
		switch normalizeRole(m.Role) {
		case models.RoleMe, models.RoleThem:
		case "":
			fields[fmt.Sprintf("messages[%d].role", i)] = "Role is required"
		default:
			fields[fmt.Sprintf("messages[%d].role", i)] = fmt.Sprintf("Unknown role %q, expected %q or %q", m.Role, models.RoleMe, models.RoleThem)
		}
		if strings.TrimSpace(m.Text) == "" {
			fields[fmt.Sprintf("messages[%d].text", i)] = "Text is required"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Message: "Invalid messages", Fields: fields}
	}
	return nil
}
