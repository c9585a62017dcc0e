package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jesses-code-adventures/cms/internal/database"
)

// Kind classifies an Outcome so transports can pick a status code without
// parsing the message.
type Kind int

const (
	KindOK Kind = iota
	KindNotFound
	KindInvalid
	KindUnavailable
	KindFailed
	KindNothingToRender
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindUnavailable:
		return "unavailable"
	case KindNothingToRender:
		return "nothing_to_render"
	default:
		return "failed"
	}
}

// Outcome is the (success, message) pair every mutation reports.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
}

const (
	msgUnavailable   = "Database connection failed."
	msgRenderFailed  = "Failed to generate PDF."
	msgInvalidAmount = "Amount must be greater than zero."
)

func succeeded(message string) Outcome {
	return Outcome{Success: true, Message: message, Kind: KindOK}
}

func failed(kind Kind, message string) Outcome {
	return Outcome{Success: false, Message: message, Kind: kind}
}

// outcomeFor maps a repository error onto the failure taxonomy. Constraint
// errors keep the database's own text.
func outcomeFor(entity, action string, err error) Outcome {
	switch {
	case errors.Is(err, database.ErrUnavailable):
		return failed(KindUnavailable, msgUnavailable)
	case errors.Is(err, database.ErrNotFound):
		return failed(KindNotFound, entity+" not found.")
	case errors.Is(err, database.ErrInvalid):
		var fieldErr *database.FieldError
		if errors.As(err, &fieldErr) {
			return failed(KindInvalid, fieldLabel(fieldErr.Field)+" is a required field.")
		}
		return failed(KindInvalid, err.Error())
	default:
		return failed(KindFailed, fmt.Sprintf("Error %s %s: %v", action, strings.ToLower(entity), err))
	}
}

// fieldLabel turns a column name such as client_name into "Client Name".
func fieldLabel(field string) string {
	parts := strings.Split(field, "_")
	for i, p := range parts {
		if p == "id" {
			parts[i] = "ID"
			continue
		}
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// ErrorOutcome classifies an error from a read the caller made directly,
// such as a list, the same way mutations are classified.
func ErrorOutcome(entity, action string, err error) Outcome {
	return outcomeFor(entity, action, err)
}
