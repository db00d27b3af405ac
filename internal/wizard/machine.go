package wizard

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
)

// Machine walks an ordered step list against a live selection map.
type Machine struct {
	catalog    *catalog.Catalog
	steps      []Step
	indexByID  map[StepID]int
	selections Selections
	// jumpOrigin records, per jump target, the decision step the jump was
	// taken from, so Prev can return there instead of the physically
	// preceding step.
	jumpOrigin map[StepID]StepID
}

// NewMachine creates a machine over the given steps. Step IDs must be unique
// and every step field must exist in the catalog.
func NewMachine(c *catalog.Catalog, steps []Step) (*Machine, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("wizard: no steps defined")
	}

	indexByID := make(map[StepID]int, len(steps))
	for i, s := range steps {
		if _, dup := indexByID[s.ID]; dup {
			return nil, fmt.Errorf("wizard: duplicate step id %q", s.ID)
		}
		indexByID[s.ID] = i
		for _, key := range s.Fields {
			if !c.HasKey(key) {
				return nil, fmt.Errorf("wizard: step %q references unknown field %q", s.ID, key)
			}
		}
	}

	return &Machine{
		catalog:    c,
		steps:      steps,
		indexByID:  indexByID,
		selections: make(Selections),
		jumpOrigin: make(map[StepID]StepID),
	}, nil
}

// Steps returns the ordered step definitions.
func (m *Machine) Steps() []Step {
	out := make([]Step, len(m.steps))
	copy(out, m.steps)
	return out
}

// Selections returns a copy of the live selection map.
func (m *Machine) Selections() Selections {
	return m.selections.Clone()
}

// Load replaces the live selections wholesale, without triggering side
// effects. Used to resume a session from values the client already holds.
func (m *Machine) Load(sel Selections) {
	m.selections = sel.Clone()
	if m.selections == nil {
		m.selections = make(Selections)
	}
}

// Apply writes one selection and runs its side effects. Resets execute here,
// before any skip predicate can observe the map, because the predicates read
// the same fields the resets mutate.
func (m *Machine) Apply(key string, value interface{}) {
	m.selections[key] = value
	m.runResets(key)
}

// EnforceResets re-applies the side-effecting selection rules to the current
// map. Called after a bulk Load so a resumed session cannot carry values a
// decision selection should have cleared.
func (m *Machine) EnforceResets() {
	m.runResets(catalog.KeySkinnedOrBoneless)
	m.runResets(catalog.KeyQuickOption)
}

// Start returns the first non-skipped step.
func (m *Machine) Start() StepID {
	for _, s := range m.steps {
		if !m.skipped(s) {
			return s.ID
		}
	}
	return m.steps[len(m.steps)-1].ID
}

// Terminal returns the final step.
func (m *Machine) Terminal() StepID {
	return m.steps[len(m.steps)-1].ID
}

// Next advances from the given step: a jump target wins, otherwise the
// lowest-index later step whose skip predicate is false. An unknown jump
// target is a configuration defect and degrades to the simple ordered walk.
func (m *Machine) Next(id StepID) StepID {
	i, ok := m.indexByID[id]
	if !ok {
		return m.Start()
	}

	step := m.steps[i]
	if step.JumpTarget != nil {
		if target, jump := step.JumpTarget(m.selections); jump {
			if _, known := m.indexByID[target]; known {
				m.jumpOrigin[target] = id
				return target
			}
			log.Warn().
				Str("step", string(id)).
				Str("target", string(target)).
				Msg("Wizard jump target not defined, falling back to ordered walk")
		}
	}

	for j := i + 1; j < len(m.steps); j++ {
		if !m.skipped(m.steps[j]) {
			return m.steps[j].ID
		}
	}
	return m.Terminal()
}

// Prev retreats from the given step. A step reached via a jump goes back to
// the originating decision step, not the physically preceding index.
func (m *Machine) Prev(id StepID) StepID {
	if origin, ok := m.jumpOrigin[id]; ok {
		delete(m.jumpOrigin, id)
		return origin
	}
	// A resumed session has no recorded origin; recover it from the
	// selections by finding the earliest step whose jump currently lands
	// here.
	i, ok := m.indexByID[id]
	if !ok {
		return m.Start()
	}
	for j := 0; j < i; j++ {
		s := m.steps[j]
		if s.JumpTarget == nil || m.skipped(s) {
			continue
		}
		if target, jump := s.JumpTarget(m.selections); jump && target == id {
			return s.ID
		}
	}

	for j := i - 1; j >= 0; j-- {
		if !m.skipped(m.steps[j]) {
			return m.steps[j].ID
		}
	}
	return m.Start()
}

// Validate checks the step's required fields against the current selections.
// Failures are reported per field and block the transition; they are never
// fatal.
func (m *Machine) Validate(id StepID) []FieldError {
	i, ok := m.indexByID[id]
	if !ok {
		return nil
	}
	step := m.steps[i]

	required := step.RequiredFields
	if len(required) == 0 {
		for _, key := range step.Fields {
			if f, ok := m.catalog.Field(key); ok && f.Required {
				required = append(required, key)
			}
		}
	}

	var errs []FieldError
	for _, key := range required {
		if catalog.IsSelected(m.selections[key]) {
			continue
		}
		label := key
		if f, ok := m.catalog.Field(key); ok {
			label = f.Label
		}
		errs = append(errs, FieldError{Field: key, Message: label + " is required"})
	}
	return errs
}

func (m *Machine) skipped(s Step) bool {
	return s.Skip != nil && s.Skip(m.selections)
}

// runResets applies the side effects of a decision field. Choosing "Grind
// Everything" forces every cut preference to its grind default and clears the
// tenderizing, jerky-flavor, and specialty fields; choosing "Donation" clears
// cape/hide/euro-mount and every specialty and ground-venison field.
func (m *Machine) runResets(key string) {
	switch key {
	case catalog.KeyQuickOption:
		if selected, _ := catalog.NormalizeValue(m.selections[key]); selected == catalog.ValueGrindEverything {
			m.resetForGrindEverything()
		}
	case catalog.KeySkinnedOrBoneless:
		if selected, _ := catalog.NormalizeValue(m.selections[key]); selected == catalog.ValueDonation {
			m.resetForDonation()
		}
	}
}

func (m *Machine) resetForGrindEverything() {
	m.selections[catalog.KeyBackStrap1] = catalog.ValueGrind
	m.selections[catalog.KeyBackStrap2] = catalog.ValueGrind
	m.selections[catalog.KeyHindLeg1] = catalog.ValueGrind
	m.selections[catalog.KeyHindLeg2] = catalog.ValueGrind
	m.selections[catalog.KeyRoast] = catalog.ValueGrind
	m.selections[catalog.KeyHindLegTenderized1] = ""
	m.selections[catalog.KeyHindLegTenderized2] = ""
	m.selections[catalog.KeyHindLegJerky1] = ""
	m.selections[catalog.KeyHindLegJerky2] = ""
	m.selections[catalog.KeyGroundVenisonAmount] = "All Burger"
	m.clearSpecialtyMeats()
}

func (m *Machine) resetForDonation() {
	m.selections[catalog.KeyCape] = ""
	m.selections[catalog.KeyHide] = ""
	m.selections[catalog.KeyEuroMount] = ""
	m.selections[catalog.KeyGroundVenison] = ""
	m.selections[catalog.KeyGroundVenisonAmount] = ""
	m.clearSpecialtyMeats()
}

func (m *Machine) clearSpecialtyMeats() {
	for _, g := range m.catalog.SpecialtyMeatGroups() {
		for _, sub := range g.Suboptions {
			m.selections[sub.Key] = ""
		}
	}
}
