package service

import (
	"errors"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/wizard"
)

// Navigation directions accepted by Navigate.
const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

var (
	// ErrUnknownStep is returned when the client names a step that does not exist.
	ErrUnknownStep = errors.New("unknown wizard step")
	// ErrUnknownDirection is returned for a direction other than next or prev.
	ErrUnknownDirection = errors.New("unknown navigation direction")
)

// NavigationResult describes where the wizard lands after a move.
type NavigationResult struct {
	// Step is the step the client should render next. On a blocked forward
	// move it is the current step, unchanged.
	Step wizard.StepID
	// Title is the display title of Step.
	Title string
	// Fields are the catalog field keys shown on Step.
	Fields []string
	// Errors holds per-field validation failures that blocked a forward move.
	Errors []wizard.FieldError
	// Terminal is true when Step is the summary step.
	Terminal bool
	// Selections is the effective selection map after decision-field resets.
	Selections map[string]interface{}
}

// WizardNavigator drives the order wizard statelessly: every call rebuilds
// the machine from the selections the client sent, so no session state
// survives on the server between requests.
type WizardNavigator interface {
	// Start returns the first step for a fresh or resumed selection set.
	Start(selections map[string]interface{}) (NavigationResult, error)
	// Navigate moves next or prev from the given step. A forward move is
	// blocked, with field errors, until the step's required fields are set.
	Navigate(current string, direction string, selections map[string]interface{}) (NavigationResult, error)
}

// WizardNavigatorImpl implements WizardNavigator over the deer catalog steps.
type WizardNavigatorImpl struct {
	catalog *catalog.Catalog
}

// NewWizardNavigator creates a navigator for the given catalog.
func NewWizardNavigator(c *catalog.Catalog) *WizardNavigatorImpl {
	return &WizardNavigatorImpl{catalog: c}
}

// Start returns the first step for a fresh or resumed selection set.
func (n *WizardNavigatorImpl) Start(selections map[string]interface{}) (NavigationResult, error) {
	m, err := n.machine(selections)
	if err != nil {
		return NavigationResult{}, err
	}
	return n.result(m, m.Start(), nil), nil
}

// Navigate moves next or prev from the given step.
func (n *WizardNavigatorImpl) Navigate(current string, direction string, selections map[string]interface{}) (NavigationResult, error) {
	m, err := n.machine(selections)
	if err != nil {
		return NavigationResult{}, err
	}

	id := wizard.StepID(current)
	if !n.knownStep(m, id) {
		return NavigationResult{}, ErrUnknownStep
	}

	switch direction {
	case DirectionNext:
		if errs := m.Validate(id); len(errs) > 0 {
			return n.result(m, id, errs), nil
		}
		return n.result(m, m.Next(id), nil), nil
	case DirectionPrev:
		return n.result(m, m.Prev(id), nil), nil
	default:
		return NavigationResult{}, ErrUnknownDirection
	}
}

func (n *WizardNavigatorImpl) machine(selections map[string]interface{}) (*wizard.Machine, error) {
	m, err := wizard.NewDeerMachine(n.catalog)
	if err != nil {
		return nil, err
	}
	m.Load(selections)
	m.EnforceResets()
	return m, nil
}

func (n *WizardNavigatorImpl) knownStep(m *wizard.Machine, id wizard.StepID) bool {
	for _, s := range m.Steps() {
		if s.ID == id {
			return true
		}
	}
	return false
}

func (n *WizardNavigatorImpl) result(m *wizard.Machine, id wizard.StepID, errs []wizard.FieldError) NavigationResult {
	res := NavigationResult{
		Step:       id,
		Errors:     errs,
		Terminal:   id == m.Terminal(),
		Selections: m.Selections(),
	}
	for _, s := range m.Steps() {
		if s.ID == id {
			res.Title = s.Title
			res.Fields = s.Fields
			break
		}
	}
	return res
}
