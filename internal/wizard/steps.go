package wizard

import (
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
)

// NewDeerMachine builds the machine for the deer-processing order form.
func NewDeerMachine(c *catalog.Catalog) (*Machine, error) {
	return NewMachine(c, DeerSteps(c))
}

// DeerSteps returns the ordered steps of the deer-processing wizard.
//
// Skip and jump rules are plain predicates over the selection map. Three
// decisions short-circuit the walk straight to Summary: a donated deer, the
// grind-everything quick option, and a ground-venison amount of "all
// specialty, no burger".
func DeerSteps(c *catalog.Catalog) []Step {
	specialtyKeys := specialtyFieldKeys(c)

	return []Step{
		{
			ID:    StepContact,
			Title: catalog.SectionContact,
			Fields: []string{
				catalog.KeyName, catalog.KeyPhone, catalog.KeyAddress,
				catalog.KeyCity, catalog.KeyState, catalog.KeyZip,
				catalog.KeyCommunication,
			},
		},
		{
			ID:    StepDeer,
			Title: catalog.SectionDeer,
			Fields: []string{
				catalog.KeyTagNumber, catalog.KeyStateHarvested,
				catalog.KeyBuckOrDoe, catalog.KeyDateHarvested,
			},
		},
		{
			ID:     StepProcessing,
			Title:  catalog.SectionProcessing,
			Fields: []string{catalog.KeySkinnedOrBoneless},
			JumpTarget: func(sel Selections) (StepID, bool) {
				if is(sel, catalog.KeySkinnedOrBoneless, catalog.ValueDonation) {
					return StepSummary, true
				}
				return "", false
			},
		},
		{
			ID:     StepQuickOptions,
			Title:  catalog.SectionQuickOptions,
			Fields: []string{catalog.KeyQuickOption},
			JumpTarget: func(sel Selections) (StepID, bool) {
				if is(sel, catalog.KeyQuickOption, catalog.ValueGrindEverything) {
					return StepSummary, true
				}
				return "", false
			},
		},
		{
			ID:     StepCapeHide,
			Title:  catalog.SectionCapeHide,
			Fields: []string{catalog.KeyCape, catalog.KeyHide, catalog.KeyEuroMount},
			Skip:   donation,
		},
		{
			ID:     StepBackStraps,
			Title:  catalog.SectionBackStraps,
			Fields: []string{catalog.KeyBackStrap1, catalog.KeyBackStrap2},
			Skip:   donationOrGrindEverything,
		},
		{
			ID:    StepHindLegs,
			Title: catalog.SectionHindLegs,
			Fields: []string{
				catalog.KeyHindLeg1, catalog.KeyHindLeg2,
				catalog.KeyHindLegTenderized1, catalog.KeyHindLegTenderized2,
				catalog.KeyHindLegJerky1, catalog.KeyHindLegJerky2,
			},
			Skip: donationOrGrindEverything,
		},
		{
			ID:     StepRoasts,
			Title:  catalog.SectionRoasts,
			Fields: []string{catalog.KeyRoast},
			Skip:   donationOrGrindEverything,
		},
		{
			ID:     StepGroundVenison,
			Title:  catalog.SectionGroundVenison,
			Fields: []string{catalog.KeyGroundVenison, catalog.KeyGroundVenisonAmount},
			Skip:   donationOrGrindEverything,
			JumpTarget: func(sel Selections) (StepID, bool) {
				if is(sel, catalog.KeyGroundVenisonAmount, catalog.ValueAllSpecialty) {
					return StepSummary, true
				}
				return "", false
			},
		},
		{
			ID:     StepSpecialty,
			Title:  catalog.SectionSpecialty,
			Fields: specialtyKeys,
			Skip: func(sel Selections) bool {
				return donationOrGrindEverything(sel) ||
					is(sel, catalog.KeyGroundVenisonAmount, catalog.ValueAllSpecialty)
			},
		},
		{
			ID:    StepSummary,
			Title: "Summary",
		},
	}
}

func donation(sel Selections) bool {
	return is(sel, catalog.KeySkinnedOrBoneless, catalog.ValueDonation)
}

func donationOrGrindEverything(sel Selections) bool {
	return donation(sel) || is(sel, catalog.KeyQuickOption, catalog.ValueGrindEverything)
}

// is reports whether a selection field normalizes to the given value.
func is(sel Selections, key, value string) bool {
	normalized, selected := catalog.NormalizeValue(sel[key])
	return selected && normalized == value
}

func specialtyFieldKeys(c *catalog.Catalog) []string {
	var keys []string
	for _, g := range c.SpecialtyMeatGroups() {
		for _, sub := range g.Suboptions {
			keys = append(keys, sub.Key)
		}
	}
	return keys
}
