package validation

import (
	"fmt"
	"strings"
)

// Field identifies one of the three loan inputs.
type Field string

const (
	FieldPrincipal Field = "principal"
	FieldRate      Field = "rate"
	FieldMonths    Field = "months"
)

// Violation codes.
const (
	// CodeInvalid marks a value that is not a usable number for the field.
	CodeInvalid = "invalid"

	// CodeOutOfRange marks a usable number beyond the accepted limit.
	CodeOutOfRange = "out_of_range"
)

// Violation is a single broken rule.
type Violation struct {
	Field   Field  `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Errors lists every rule a loan request broke, ordered principal, rate,
// months. It is never empty when returned as an error.
type Errors struct {
	Violations []Violation
}

func (e *Errors) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Messages(), "; "))
}

// Messages returns the human-readable messages in order.
func (e *Errors) Messages() []string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}
	return messages
}

// Fields returns the offending fields in order.
func (e *Errors) Fields() []Field {
	fields := make([]Field, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func (e *Errors) add(field Field, code, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Code: code, Message: message})
}
