package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/wizard"
)

func filledContact() map[string]interface{} {
	return map[string]interface{}{
		catalog.KeyName:    "Jo Hunter",
		catalog.KeyPhone:   "(330) 555-0199",
		catalog.KeyAddress: "1 Main St",
		catalog.KeyCity:    "Sugarcreek",
		catalog.KeyState:   "OH",
		catalog.KeyZip:     "44681",
	}
}

func TestWizardNavigator_Start(t *testing.T) {
	nav := NewWizardNavigator(catalog.DeerCatalog())

	res, err := nav.Start(nil)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepContact, res.Step)
	assert.Equal(t, catalog.SectionContact, res.Title)
	assert.Contains(t, res.Fields, catalog.KeyName)
	assert.False(t, res.Terminal)
	assert.Empty(t, res.Errors)
}

func TestWizardNavigator_Navigate(t *testing.T) {
	nav := NewWizardNavigator(catalog.DeerCatalog())

	t.Run("forward move blocked until required fields set", func(t *testing.T) {
		res, err := nav.Navigate("contact", DirectionNext, nil)
		require.NoError(t, err)

		// Stays on the step and reports what is missing
		assert.Equal(t, wizard.StepContact, res.Step)
		require.NotEmpty(t, res.Errors)
		fields := make([]string, 0, len(res.Errors))
		for _, e := range res.Errors {
			fields = append(fields, e.Field)
		}
		assert.Contains(t, fields, catalog.KeyName)
	})

	t.Run("forward move with required fields set", func(t *testing.T) {
		res, err := nav.Navigate("contact", DirectionNext, filledContact())
		require.NoError(t, err)
		assert.Equal(t, wizard.StepDeer, res.Step)
		assert.Empty(t, res.Errors)
	})

	t.Run("donation jumps to summary", func(t *testing.T) {
		sel := map[string]interface{}{
			catalog.KeySkinnedOrBoneless: catalog.ValueDonation,
		}
		res, err := nav.Navigate("processing", DirectionNext, sel)
		require.NoError(t, err)
		assert.Equal(t, wizard.StepSummary, res.Step)
		assert.True(t, res.Terminal)
	})

	t.Run("prev from summary returns to the decision step", func(t *testing.T) {
		sel := map[string]interface{}{
			catalog.KeySkinnedOrBoneless: catalog.ValueDonation,
		}
		res, err := nav.Navigate("summary", DirectionPrev, sel)
		require.NoError(t, err)
		assert.Equal(t, wizard.StepProcessing, res.Step)
	})

	t.Run("resets applied to resumed selections", func(t *testing.T) {
		// A resumed session that picked Donation after selecting a cape must
		// come back with the cape cleared.
		sel := map[string]interface{}{
			catalog.KeySkinnedOrBoneless: catalog.ValueDonation,
			catalog.KeyCape:              "true",
		}
		res, err := nav.Navigate("processing", DirectionNext, sel)
		require.NoError(t, err)
		assert.False(t, catalog.IsSelected(res.Selections[catalog.KeyCape]))
	})

	t.Run("unknown step", func(t *testing.T) {
		_, err := nav.Navigate("bogus", DirectionNext, nil)
		assert.ErrorIs(t, err, ErrUnknownStep)
	})

	t.Run("unknown direction", func(t *testing.T) {
		_, err := nav.Navigate("contact", "sideways", nil)
		assert.ErrorIs(t, err, ErrUnknownDirection)
	})
}
