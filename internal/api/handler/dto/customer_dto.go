package dto

import (
	"fmt"
	"unicode/utf8"

	"customer-service/internal/domain/customer"
)

const (
	minFirstNameLen = 3
	minLastNameLen  = 3
	minEmailLen     = 5
)

// Violations maps a field name to the list of rules it broke. A field absent
// from the map had no violations; a field may break more than one rule at
// once.
type Violations map[string][]string

func (v Violations) Add(field, message string) {
	v[field] = append(v[field], message)
}

func (v Violations) IsEmpty() bool {
	return len(v) == 0
}

// ValidateCustomer checks an inbound representation against the field rules
// before any business logic runs. It is the single validation gate for
// create payloads.
func ValidateCustomer(rep customer.Representation) Violations {
	v := Violations{}
	checkField(v, "firstName", rep.FirstName, minFirstNameLen)
	checkField(v, "lastName", rep.LastName, minLastNameLen)
	checkField(v, "email", rep.Email, minEmailLen)
	return v
}

func checkField(v Violations, field, value string, minLen int) {
	if value == "" {
		v.Add(field, "must not be empty")
	}
	if utf8.RuneCountInString(value) < minLen {
		v.Add(field, fmt.Sprintf("length must be at least %d", minLen))
	}
}

type ErrorDetail struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
