package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
)

func newDeerMachine(t *testing.T) *Machine {
	t.Helper()
	m, err := NewDeerMachine(catalog.DeerCatalog())
	require.NoError(t, err)
	return m
}

func TestNewMachine_Errors(t *testing.T) {
	c := catalog.DeerCatalog()

	t.Run("no steps", func(t *testing.T) {
		_, err := NewMachine(c, nil)
		assert.ErrorContains(t, err, "no steps")
	})

	t.Run("duplicate step id", func(t *testing.T) {
		_, err := NewMachine(c, []Step{{ID: "a"}, {ID: "a"}})
		assert.ErrorContains(t, err, `duplicate step id "a"`)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := NewMachine(c, []Step{{ID: "a", Fields: []string{"noSuchField"}}})
		assert.ErrorContains(t, err, `unknown field "noSuchField"`)
	})
}

func TestMachine_OrderedWalk(t *testing.T) {
	m := newDeerMachine(t)

	want := []StepID{
		StepContact, StepDeer, StepProcessing, StepQuickOptions,
		StepCapeHide, StepBackStraps, StepHindLegs, StepRoasts,
		StepGroundVenison, StepSpecialty, StepSummary,
	}

	got := []StepID{m.Start()}
	for got[len(got)-1] != m.Terminal() {
		got = append(got, m.Next(got[len(got)-1]))
	}
	assert.Equal(t, want, got)
}

func TestMachine_DonationJumpsToSummary(t *testing.T) {
	m := newDeerMachine(t)
	m.Apply(catalog.KeySkinnedOrBoneless, catalog.ValueDonation)

	next := m.Next(StepProcessing)
	assert.Equal(t, StepSummary, next)

	// Back returns to the decision step the jump came from
	assert.Equal(t, StepProcessing, m.Prev(StepSummary))
}

func TestMachine_DonationResets(t *testing.T) {
	m := newDeerMachine(t)
	m.Apply(catalog.KeyCape, "true")
	m.Apply(catalog.KeyHide, true)
	m.Apply("summerSausageMild", "10")
	m.Apply(catalog.KeyGroundVenison, "Add Beef Trim")

	m.Apply(catalog.KeySkinnedOrBoneless, catalog.ValueDonation)

	sel := m.Selections()
	assert.False(t, catalog.IsSelected(sel[catalog.KeyCape]))
	assert.False(t, catalog.IsSelected(sel[catalog.KeyHide]))
	assert.False(t, catalog.IsSelected(sel["summerSausageMild"]))
	assert.False(t, catalog.IsSelected(sel[catalog.KeyGroundVenison]))
}

func TestMachine_GrindEverything(t *testing.T) {
	m := newDeerMachine(t)
	m.Apply(catalog.KeyBackStrap1, "Sliced")
	m.Apply(catalog.KeyHindLeg1, "Smoked Whole Ham")
	m.Apply(catalog.KeyHindLegTenderized1, "true")
	m.Apply(catalog.KeyHindLegJerky1, "Hot")
	m.Apply("snackSticksRegular", "Evenly")

	m.Apply(catalog.KeyQuickOption, catalog.ValueGrindEverything)

	sel := m.Selections()
	assert.Equal(t, catalog.ValueGrind, sel[catalog.KeyBackStrap1])
	assert.Equal(t, catalog.ValueGrind, sel[catalog.KeyBackStrap2])
	assert.Equal(t, catalog.ValueGrind, sel[catalog.KeyHindLeg1])
	assert.Equal(t, catalog.ValueGrind, sel[catalog.KeyHindLeg2])
	assert.Equal(t, catalog.ValueGrind, sel[catalog.KeyRoast])
	assert.Equal(t, "All Burger", sel[catalog.KeyGroundVenisonAmount])
	assert.False(t, catalog.IsSelected(sel[catalog.KeyHindLegTenderized1]))
	assert.False(t, catalog.IsSelected(sel[catalog.KeyHindLegJerky1]))
	assert.False(t, catalog.IsSelected(sel["snackSticksRegular"]))

	// And the walk short-circuits
	assert.Equal(t, StepSummary, m.Next(StepQuickOptions))
	assert.Equal(t, StepQuickOptions, m.Prev(StepSummary))
}

func TestMachine_AllSpecialtySkipsSpecialtyStep(t *testing.T) {
	m := newDeerMachine(t)
	m.Apply(catalog.KeyGroundVenisonAmount, catalog.ValueAllSpecialty)

	assert.Equal(t, StepSummary, m.Next(StepGroundVenison))
	assert.Equal(t, StepGroundVenison, m.Prev(StepSummary))
}

func TestMachine_SkippedStepsInOrderedWalk(t *testing.T) {
	m := newDeerMachine(t)
	m.Apply(catalog.KeyQuickOption, catalog.ValueGrindEverything)

	// Cape & hide still shows for a grind-everything order, but every
	// cut-preference step after it is skipped in the ordered walk.
	assert.Equal(t, StepSummary, m.Next(StepCapeHide))
}

func TestMachine_PrevOrderedWalk(t *testing.T) {
	m := newDeerMachine(t)

	assert.Equal(t, StepContact, m.Prev(StepDeer))
	assert.Equal(t, StepContact, m.Prev(StepContact))

	// Unknown ids restart
	assert.Equal(t, StepContact, m.Next("bogus"))
	assert.Equal(t, StepContact, m.Prev("bogus"))
}

func TestMachine_PrevRecoversJumpOriginAfterResume(t *testing.T) {
	// A resumed session holds the selections but not the in-memory jump
	// origin; Prev still has to land on the decision step.
	m := newDeerMachine(t)
	m.Load(Selections{
		catalog.KeySkinnedOrBoneless: catalog.ValueDonation,
	})

	assert.Equal(t, StepProcessing, m.Prev(StepSummary))
}

func TestMachine_LoadAndEnforceResets(t *testing.T) {
	m := newDeerMachine(t)
	m.Load(Selections{
		catalog.KeySkinnedOrBoneless: catalog.ValueDonation,
		catalog.KeyCape:              "true",
		"summerSausageMild":          "10",
	})

	// Load alone does not mutate
	assert.Equal(t, "true", m.Selections()[catalog.KeyCape])

	m.EnforceResets()

	sel := m.Selections()
	assert.False(t, catalog.IsSelected(sel[catalog.KeyCape]))
	assert.False(t, catalog.IsSelected(sel["summerSausageMild"]))
}

func TestMachine_LoadNil(t *testing.T) {
	m := newDeerMachine(t)
	m.Load(nil)
	m.Apply(catalog.KeyName, "Jo Hunter")
	assert.Equal(t, "Jo Hunter", m.Selections()[catalog.KeyName])
}

func TestMachine_Validate(t *testing.T) {
	m := newDeerMachine(t)

	t.Run("missing required contact fields", func(t *testing.T) {
		errs := m.Validate(StepContact)
		require.NotEmpty(t, errs)

		fields := make(map[string]string, len(errs))
		for _, e := range errs {
			fields[e.Field] = e.Message
		}
		assert.Contains(t, fields, catalog.KeyName)
		assert.Contains(t, fields, catalog.KeyPhone)
		assert.Equal(t, "Full Name is required", fields[catalog.KeyName])

		// Optional fields never appear
		assert.NotContains(t, fields, catalog.KeyCommunication)
	})

	t.Run("filled step passes", func(t *testing.T) {
		m.Apply(catalog.KeyName, "Jo Hunter")
		m.Apply(catalog.KeyPhone, "(330) 555-0199")
		m.Apply(catalog.KeyAddress, "1 Main St")
		m.Apply(catalog.KeyCity, "Sugarcreek")
		m.Apply(catalog.KeyState, "OH")
		m.Apply(catalog.KeyZip, "44681")
		assert.Empty(t, m.Validate(StepContact))
	})

	t.Run("unknown step validates empty", func(t *testing.T) {
		assert.Empty(t, m.Validate("bogus"))
	})

	t.Run("steps without required fields pass", func(t *testing.T) {
		assert.Empty(t, m.Validate(StepSummary))
	})
}

func TestMachine_SelectionsIsACopy(t *testing.T) {
	m := newDeerMachine(t)
	m.Apply(catalog.KeyName, "Jo Hunter")

	sel := m.Selections()
	sel[catalog.KeyName] = "Mutated"

	assert.Equal(t, "Jo Hunter", m.Selections()[catalog.KeyName])
}
