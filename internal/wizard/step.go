// Package wizard drives the multi-step order form: an ordered list of steps
// with skip and jump rules evaluated against the live selection map, plus
// per-step required-field validation.
//
// The machine holds no state beyond the current selections; the step pointer
// lives with the caller (the UI) and is never persisted.
package wizard

// StepID is a structural identifier for a wizard step. Navigation and jump
// rules reference these instead of matching on display titles.
type StepID string

const (
	StepContact       StepID = "contact"
	StepDeer          StepID = "deer"
	StepProcessing    StepID = "processing"
	StepQuickOptions  StepID = "quick-options"
	StepCapeHide      StepID = "cape-hide"
	StepBackStraps    StepID = "back-straps"
	StepHindLegs      StepID = "hind-legs"
	StepRoasts        StepID = "roasts"
	StepGroundVenison StepID = "ground-venison"
	StepSpecialty     StepID = "specialty-meats"
	StepSummary       StepID = "summary"
)

// Selections is the live field-value map a wizard session accumulates.
type Selections map[string]interface{}

// Clone returns a shallow copy of the selection map.
func (s Selections) Clone() Selections {
	out := make(Selections, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Step is one wizard step definition.
type Step struct {
	ID    StepID
	Title string
	// Fields are the catalog keys this step presents.
	Fields []string
	// RequiredFields are checked by Validate before allowing Next. When
	// empty, every Fields entry the catalog marks required is checked.
	RequiredFields []string
	// Skip reports whether the step should be passed over given the current
	// selections. Nil means never skipped.
	Skip func(Selections) bool
	// JumpTarget returns a step to go to directly from this step, bypassing
	// the ordered walk. Nil or a false second return means no jump.
	JumpTarget func(Selections) (StepID, bool)
}

// FieldError is a single required-field validation failure. Validation
// failures block the step transition but are never fatal.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
