package contact

import "fmt"

// Phase is the coarse state of the form.
type Phase string

const (
	PhaseEditing   Phase = "editing"
	PhaseSubmitted Phase = "submitted"
)

// Form is the contact form component. It is not safe for concurrent use;
// each session (request, terminal run) owns its own Form.
type Form struct {
	values    FormState
	errors    ErrorState
	submitted *Submission
	phase     Phase
}

// New returns an empty form in the editing phase.
func New() *Form {
	return &Form{
		errors: ErrorState{},
		phase:  PhaseEditing,
	}
}

// Change stores value for field and re-evaluates that field's rule only.
// A snapshot from an earlier submit survives edits until one of them
// introduces an error.
func (f *Form) Change(field Field, value string) error {
	if !field.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	f.ensure()

	f.values.set(field, value)
	f.phase = PhaseEditing
	f.applyRule(field)

	if !f.errors.Empty() {
		f.submitted = nil
	}
	return nil
}

// Fill applies every non-empty value in state as if it had been typed into
// its control, in display order.
func (f *Form) Fill(state FormState) {
	for _, field := range Fields {
		if value := state.Get(field); value != "" {
			_ = f.Change(field, value)
		}
	}
}

// Submit evaluates every rule. When any fails the errors are recorded and
// the previous snapshot is discarded; otherwise the current values become
// the submission.
func (f *Form) Submit() (Submission, bool) {
	f.ensure()
	for _, field := range Fields {
		f.applyRule(field)
	}

	if !f.errors.Empty() {
		f.submitted = nil
		f.phase = PhaseEditing
		return Submission{}, false
	}

	snapshot := Submission{FormState: f.values}
	f.submitted = &snapshot
	f.phase = PhaseSubmitted
	return snapshot, true
}

// Reset clears values, errors and the submission.
func (f *Form) Reset() {
	*f = *New()
}

// Values returns a copy of the controlled values.
func (f *Form) Values() FormState {
	return f.values
}

// Value returns the current value of field.
func (f *Form) Value(field Field) string {
	return f.values.Get(field)
}

// Errors returns a copy of the error map.
func (f *Form) Errors() ErrorState {
	return f.errors.clone()
}

// Error returns the rule message for field, or "" when it passes.
func (f *Form) Error(field Field) string {
	return f.errors[field]
}

// Submitted returns the last valid submission.
func (f *Form) Submitted() (Submission, bool) {
	if f.submitted == nil {
		return Submission{}, false
	}
	return *f.submitted, true
}

// Summary returns the lines of the summary block, or nil before the first
// valid submit.
func (f *Form) Summary() []SummaryLine {
	if f.submitted == nil {
		return nil
	}
	return f.submitted.Lines()
}

// Phase reports whether the form is being edited or has been submitted.
func (f *Form) Phase() Phase {
	if f.phase == "" {
		return PhaseEditing
	}
	return f.phase
}

func (f *Form) applyRule(field Field) {
	if message := Check(field, f.values.Get(field)); message != "" {
		f.errors[field] = message
		return
	}
	delete(f.errors, field)
}

func (f *Form) ensure() {
	if f.errors == nil {
		f.errors = ErrorState{}
	}
}
