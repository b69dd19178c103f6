package keyadmin

import (
	"context"
	"fmt"
)

// FieldSpec describes one form field for the hosting framework to render.
// The framework itself (widgets, translation, sessions) stays outside this
// package; only the field tree crosses the boundary.
type FieldSpec struct {
	Name     string
	Label    string
	Help     string
	Required bool
}

// FieldError attaches a validation message to a named field.
type FieldError struct {
	Field   string
	Message string
}

// Severity classifies a submission outcome message.
type Severity string

const (
	SeverityStatus  Severity = "status"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Outcome is the user-visible result of a form submission.
type Outcome struct {
	Message  string
	Severity Severity
}

// Form is the narrow form lifecycle contract the hosting framework drives:
// render the field tree, validate raw values, submit.
type Form interface {
	Render() []FieldSpec
	Validate(values map[string]string) []FieldError
	Submit(ctx context.Context, values map[string]string) (*Outcome, error)
}

// Form value keys.
const (
	FieldDescription = "description"
	FieldActions     = "actions"
	FieldCollections = "collections"
	FieldExpiry      = "expiry"
)

// KeyForm implements Form for key creation over a Surface.
type KeyForm struct {
	surface *Surface
}

var _ Form = (*KeyForm)(nil)

// NewKeyForm creates the key-creation form.
func NewKeyForm(surface *Surface) *KeyForm {
	return &KeyForm{surface: surface}
}

// Render returns the key-creation field tree.
func (f *KeyForm) Render() []FieldSpec {
	return []FieldSpec{
		{
			Name:     FieldDescription,
			Label:    "Description",
			Help:     "What this key is for.",
			Required: true,
		},
		{
			Name:     FieldActions,
			Label:    "Actions",
			Help:     "Comma-separated engine actions, e.g. \"documents:search, collections:list\".",
			Required: true,
		},
		{
			Name:     FieldCollections,
			Label:    "Collections",
			Help:     "Comma-separated collection names; regex patterns are allowed.",
			Required: true,
		},
		{
			Name:  FieldExpiry,
			Label: "Expires",
			Help:  "A date, or \"never\". Empty means never.",
		},
	}
}

// Validate checks raw form values and reports every problem per field.
func (f *KeyForm) Validate(values map[string]string) []FieldError {
	var errs []FieldError
	if values[FieldDescription] == "" {
		errs = append(errs, FieldError{
			Field:   FieldDescription,
			Message: "Description is required.",
		})
	}
	if len(SplitCSV(values[FieldActions])) == 0 {
		errs = append(errs, FieldError{
			Field:   FieldActions,
			Message: "At least one action is required.",
		})
	}
	if len(SplitCSV(values[FieldCollections])) == 0 {
		errs = append(errs, FieldError{
			Field:   FieldCollections,
			Message: "At least one collection pattern is required.",
		})
	}
	if _, err := ParseExpiry(values[FieldExpiry]); err != nil {
		errs = append(errs, FieldError{
			Field:   FieldExpiry,
			Message: err.Error(),
		})
	}
	return errs
}

// Submit creates the key and renders the one-time secret into the outcome
// message exactly once. Façade errors propagate to the caller.
func (f *KeyForm) Submit(ctx context.Context, values map[string]string) (*Outcome, error) {
	created, err := f.surface.Create(ctx, Input{
		Description: values[FieldDescription],
		Actions:     values[FieldActions],
		Collections: values[FieldCollections],
		Expiry:      values[FieldExpiry],
	})
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Message: fmt.Sprintf("Created key %d. Secret: %s. %s",
			created.Key.ID, created.Key.Value, created.Warning),
		Severity: SeverityWarning,
	}, nil
}
