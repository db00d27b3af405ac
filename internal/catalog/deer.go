package catalog

import "github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"

// Field keys referenced by the wizard, the pricing engine, and the
// fingerprint field list. Keeping them as constants removes the
// string-literal matching the old intake form relied on.
const (
	KeyName          = "name"
	KeyPhone         = "phone"
	KeyAddress       = "address"
	KeyCity          = "city"
	KeyState         = "state"
	KeyZip           = "zip"
	KeyCommunication = "communication"

	KeyTagNumber        = "tagNumber"
	KeyStateHarvested   = "stateHarvestedIn"
	KeyBuckOrDoe        = "buckOrDoe"
	KeyDateHarvested    = "dateHarvested"

	KeySkinnedOrBoneless = "skinnedOrBoneless"
	KeyQuickOption       = "quickOption"

	KeyCape      = "cape"
	KeyHide      = "hide"
	KeyEuroMount = "euroMount"

	KeyBackStrap1 = "backStrap1Preference"
	KeyBackStrap2 = "backStrap2Preference"

	KeyHindLeg1           = "hindLegPreference1"
	KeyHindLeg2           = "hindLegPreference2"
	KeyHindLegTenderized1 = "hindLegTenderized1"
	KeyHindLegTenderized2 = "hindLegTenderized2"
	KeyHindLegJerky1      = "hindLegJerky1Flavor"
	KeyHindLegJerky2      = "hindLegJerky2Flavor"

	KeyRoast               = "roast"
	KeyGroundVenison       = "groundVenison"
	KeyGroundVenisonAmount = "groundVenisonAmount"
)

// Option values with wizard side effects.
const (
	ValueDonation        = "Donation"
	ValueGrindEverything = "Grind Everything - All Burger"
	ValueCustomCuts      = "Custom Cuts"
	ValueAllSpecialty    = "None - All Specialty Meat"
	ValueSteaks          = "Steaks"
	ValueGrind           = "Grind"
	ValueWholeMuscleJerky = "Whole Muscle Jerky"
)

// Wizard section labels.
const (
	SectionContact       = "Contact Information"
	SectionDeer          = "Deer Information"
	SectionProcessing    = "Processing Type"
	SectionQuickOptions  = "Quick Options"
	SectionCapeHide      = "Cape & Hide"
	SectionBackStraps    = "Back Straps"
	SectionHindLegs      = "Hind Legs"
	SectionRoasts        = "Roasts"
	SectionGroundVenison = "Ground Venison"
	SectionSpecialty     = "Specialty Meats"
)

// DeerCatalogVersion identifies the catalog currently in effect.
const DeerCatalogVersion = "2024.1"

// DeerCatalog returns the deer-processing catalog in effect for this
// deployment. Prices are in cents.
func DeerCatalog() *Catalog {
	return MustNew(DeerCatalogVersion, deerFields(), deerSpecialtyGroups())
}

func deerFields() []Field {
	return []Field{
		// Contact information
		{Key: KeyName, Section: SectionContact, Label: "Full Name", Kind: KindText, Required: true},
		{Key: KeyPhone, Section: SectionContact, Label: "Phone", Kind: KindText, Required: true},
		{Key: KeyAddress, Section: SectionContact, Label: "Address", Kind: KindText, Required: true},
		{Key: KeyCity, Section: SectionContact, Label: "City", Kind: KindText, Required: true},
		{Key: KeyState, Section: SectionContact, Label: "State", Kind: KindSelect, Required: true, DefaultValue: "OH",
			Options: opts("OH", "PA", "WV", "MI", "IN", "KY")},
		{Key: KeyZip, Section: SectionContact, Label: "Zip", Kind: KindText, Required: true},
		{Key: KeyCommunication, Section: SectionContact, Label: "Preferred Communication", Kind: KindRadio, DefaultValue: "Text",
			Options: opts("Call", "Text")},

		// Deer information
		{Key: KeyTagNumber, Section: SectionDeer, Label: "Confirmation Number", Kind: KindText, Required: true},
		{Key: KeyStateHarvested, Section: SectionDeer, Label: "State Harvested In", Kind: KindSelect, Required: true, DefaultValue: "OH",
			Options: opts("OH", "PA", "WV")},
		{Key: KeyBuckOrDoe, Section: SectionDeer, Label: "Buck or Doe", Kind: KindSelect, Required: true,
			Options: opts("Buck", "Doe", "Button Buck", "Other")},
		{Key: KeyDateHarvested, Section: SectionDeer, Label: "Date Harvested", Kind: KindText},

		// Processing type
		{Key: KeySkinnedOrBoneless, Section: SectionProcessing, Label: "Processing Type", Kind: KindRadio, Required: true,
			Options: []Option{
				{Value: "Skinned, Cut, Ground, Vacuum packed", Label: "Skinned, Cut, Ground, Vacuum packed", Price: model.Cents(11000)},
				{Value: "Boneless, 100% deboned already", Label: "Boneless, 100% deboned already", Price: model.Cents(9500)},
				{Value: ValueDonation, Label: "Donation", Price: 0},
			}},

		// Quick options
		{Key: KeyQuickOption, Section: SectionQuickOptions, Label: "Quick Option", Kind: KindRadio, DefaultValue: ValueCustomCuts,
			Options: opts(ValueCustomCuts, ValueGrindEverything)},

		// Cape & hide
		{Key: KeyCape, Section: SectionCapeHide, Label: "Cape for shoulder mount", Kind: KindCheckbox,
			Options: []Option{{Value: "true", Label: "Cape for shoulder mount", Price: model.Cents(5000)}}},
		{Key: KeyHide, Section: SectionCapeHide, Label: "Keep skinned hide", Kind: KindCheckbox,
			Options: []Option{{Value: "true", Label: "Keep skinned hide", Price: model.Cents(1500)}}},
		{Key: KeyEuroMount, Section: SectionCapeHide, Label: "Euro Mount", Kind: KindSelect, DefaultValue: "none",
			Options: []Option{
				{Value: "none", Label: "None"},
				{Value: "Keep head", Label: "Keep head"},
				{Value: "Boiled finished mount", Label: "Boiled finished mount", Price: model.Cents(14500)},
				{Value: "Beetles finished mount", Label: "Beetles finished mount", Price: model.Cents(17500)},
			}},

		// Back straps
		{Key: KeyBackStrap1, Section: SectionBackStraps, Label: "Back Strap 1 Preference", Kind: KindRadio, DefaultValue: "Cut in half",
			Options: opts("Cut in half", "Sliced", "Butterfly", ValueGrind, "Whole")},
		{Key: KeyBackStrap2, Section: SectionBackStraps, Label: "Back Strap 2 Preference", Kind: KindRadio, DefaultValue: "Cut in half",
			Options: opts("Cut in half", "Sliced", "Butterfly", ValueGrind, "Whole")},

		// Hind legs
		{Key: KeyHindLeg1, Section: SectionHindLegs, Label: "Hind Leg 1 Preference", Kind: KindRadio, DefaultValue: ValueGrind,
			Options: []Option{
				{Value: ValueSteaks, Label: "Steaks"},
				{Value: "Smoked Whole Ham", Label: "Smoked Whole Ham", Price: model.Cents(4000)},
				{Value: ValueWholeMuscleJerky, Label: "Whole Muscle Jerky", Price: model.Cents(3500)},
				{Value: ValueGrind, Label: "Grind"},
			}},
		{Key: KeyHindLeg2, Section: SectionHindLegs, Label: "Hind Leg 2 Preference", Kind: KindRadio, DefaultValue: ValueGrind,
			Options: []Option{
				{Value: ValueSteaks, Label: "Steaks"},
				{Value: "Smoked Whole Ham", Label: "Smoked Whole Ham", Price: model.Cents(4000)},
				{Value: ValueWholeMuscleJerky, Label: "Whole Muscle Jerky", Price: model.Cents(3500)},
				{Value: ValueGrind, Label: "Grind"},
			}},
		{Key: KeyHindLegTenderized1, Section: SectionHindLegs, Label: "Tenderized Cubed Steaks", Kind: KindCheckbox,
			Options: []Option{{Value: "true", Label: "Tenderized Cubed Steaks", Price: model.Cents(500)}}},
		{Key: KeyHindLegTenderized2, Section: SectionHindLegs, Label: "Tenderized Cubed Steaks", Kind: KindCheckbox,
			Options: []Option{{Value: "true", Label: "Tenderized Cubed Steaks", Price: model.Cents(500)}}},
		{Key: KeyHindLegJerky1, Section: SectionHindLegs, Label: "Whole Muscle Jerky 1 Flavor", Kind: KindSelect,
			Options: opts("Mild", "Hot", "Teriyaki")},
		{Key: KeyHindLegJerky2, Section: SectionHindLegs, Label: "Whole Muscle Jerky 2 Flavor", Kind: KindSelect,
			Options: opts("Mild", "Hot", "Teriyaki")},

		// Roasts
		{Key: KeyRoast, Section: SectionRoasts, Label: "Roast Preference", Kind: KindRadio, DefaultValue: ValueGrind,
			Options: opts("2-3 lbs Roasts", "Whole", ValueGrind)},

		// Ground venison
		{Key: KeyGroundVenison, Section: SectionGroundVenison, Label: "Ground Venison", Kind: KindRadio, DefaultValue: "Plain",
			Options: []Option{
				{Value: "Plain", Label: "Plain"},
				{Value: "Add Beef Trim", Label: "Add Beef Trim", Price: model.Cents(500)},
				{Value: "Add Pork Trim", Label: "Add Pork Trim", Price: model.Cents(500)},
			}},
		{Key: KeyGroundVenisonAmount, Section: SectionGroundVenison, Label: "Ground Venison Amount", Kind: KindSelect, DefaultValue: Evenly,
			Options: opts(Evenly, "All Burger", ValueAllSpecialty)},
	}
}

func deerSpecialtyGroups() []SpecialtyMeatGroup {
	return []SpecialtyMeatGroup{
		{Name: "Trail Bologna", Image: "trail-bologna.jpg", Suboptions: []Suboption{
			{Key: "trailBolognaRegular", Label: "Regular", Price: model.Cents(1500)},
			{Key: "trailBolognaCheddarCheese", Label: "Cheddar Cheese", Price: model.Cents(2000)},
			{Key: "trailBolognaHotPepperJackCheese", Label: "Hot Pepper Jack Cheese", Price: model.Cents(2000)},
		}},
		{Name: "Garlic Ring Bologna", Image: "garlic-ring.jpg", Suboptions: []Suboption{
			{Key: "garlicRingBologna", Label: "Regular", Price: model.Cents(2000)},
		}},
		{Name: "Summer Sausage", Image: "summer.jpg", Suboptions: []Suboption{
			{Key: "summerSausageMild", Label: "Mild", Price: model.Cents(1500)},
			{Key: "summerSausageHot", Label: "Hot", Price: model.Cents(1500)},
		}},
		{Name: "Smoked Kielbasa Sausage", Image: "smoked-kielbasa.jpg", Suboptions: []Suboption{
			{Key: "smokedKielbasaSausage", Label: "Regular", Price: model.Cents(1750)},
		}},
		{Name: "Italian Sausage Links", Image: "italian-sausage.jpg", Suboptions: []Suboption{
			{Key: "italianSausageLinksMild", Label: "Mild", Price: model.Cents(1500)},
			{Key: "italianSausageLinksHot", Label: "Hot", Price: model.Cents(1500)},
		}},
		{Name: "Country Breakfast Sausage", Image: "country-breakfast.jpg", Suboptions: []Suboption{
			{Key: "countryBreakfastSausage", Label: "Regular", Price: model.Cents(1500)},
		}},
		{Name: "Baby Links", Image: "baby-links.jpg", Suboptions: []Suboption{
			{Key: "babyLinksCountry", Label: "Country", Price: model.Cents(2000)},
			{Key: "babyLinksMaple", Label: "Maple", Price: model.Cents(2000)},
		}},
		{Name: "Snack Sticks", Image: "snack-sticks.jpg", Suboptions: []Suboption{
			{Key: "snackSticksRegular", Label: "Regular", Price: model.Cents(2500)},
			{Key: "snackSticksCheddarCheese", Label: "Cheddar Cheese", Price: model.Cents(3000)},
			{Key: "snackSticksHotPepperJackCheese", Label: "Hot Pepper Jack Cheese", Price: model.Cents(3000)},
			{Key: "snackSticksHoneyBBQ", Label: "Honey BBQ", Price: model.Cents(3000)},
		}},
		{Name: "Hot Dogs", Image: "hot-dogs.jpg", Suboptions: []Suboption{
			{Key: "hotDogsRegular", Label: "Regular", Price: model.Cents(1750)},
			{Key: "hotDogsCheddarCheese", Label: "Cheddar Cheese", Price: model.Cents(2250)},
		}},
		{Name: "Jerky Restructured", Image: "jerky.jpg", Suboptions: []Suboption{
			{Key: "jerkyRestructuredMild", Label: "Mild", Price: model.Cents(3500)},
			{Key: "jerkyRestructuredHot", Label: "Hot", Price: model.Cents(3500)},
			{Key: "jerkyRestructuredTeriyaki", Label: "Teriyaki", Price: model.Cents(3500)},
		}},
	}
}

// opts builds unpriced options whose value doubles as the label.
func opts(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}
