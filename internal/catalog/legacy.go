package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

// LegacyPriceTableVersion identifies the pinned price table used to repair
// orders created before pricing snapshots existed.
const LegacyPriceTableVersion = "2019-legacy"

// LegacyPriceTable returns the price table in effect during the period the
// un-snapshotted legacy orders were created. It is a deliberately separate
// artifact from the live catalog: the live catalog has been repriced several
// times since those orders were taken, so repairing against it would assign
// prices the customers were never charged.
//
// Keys follow the same flattened form as Catalog.PriceTable. Amounts are in
// cents.
func LegacyPriceTable() model.PriceSnapshot {
	return model.PriceSnapshot{
		CatalogVersion: LegacyPriceTableVersion,
		Prices: map[string]model.Money{
			KeySkinnedOrBoneless + ".Skinned, Cut, Ground, Vacuum packed": 9500,
			KeySkinnedOrBoneless + ".Boneless, 100% deboned already":      8500,

			KeyCape + ".true":                       4000,
			KeyHide + ".true":                       1000,
			KeyEuroMount + ".Boiled finished mount": 12500,
			KeyEuroMount + ".Beetles finished mount": 15000,

			KeyHindLeg1 + ".Smoked Whole Ham":   3500,
			KeyHindLeg1 + "." + ValueWholeMuscleJerky: 3000,
			KeyHindLeg2 + ".Smoked Whole Ham":   3500,
			KeyHindLeg2 + "." + ValueWholeMuscleJerky: 3000,
			KeyHindLegTenderized1 + ".true":     500,
			KeyHindLegTenderized2 + ".true":     500,

			KeyGroundVenison + ".Add Beef Trim": 500,
			KeyGroundVenison + ".Add Pork Trim": 500,

			"trailBolognaRegular":               1250,
			"trailBolognaCheddarCheese":         1750,
			"trailBolognaHotPepperJackCheese":   1750,
			"garlicRingBologna":                 1750,
			"summerSausageMild":                 1250,
			"summerSausageHot":                  1250,
			"smokedKielbasaSausage":             1500,
			"italianSausageLinksMild":           1250,
			"italianSausageLinksHot":            1250,
			"countryBreakfastSausage":           1250,
			"babyLinksCountry":                  1750,
			"babyLinksMaple":                    1750,
			"snackSticksRegular":                2250,
			"snackSticksCheddarCheese":          2750,
			"snackSticksHotPepperJackCheese":    2750,
			"snackSticksHoneyBBQ":               2750,
			"hotDogsRegular":                    1500,
			"hotDogsCheddarCheese":              2000,
			"jerkyRestructuredMild":             3000,
			"jerkyRestructuredHot":              3000,
			"jerkyRestructuredTeriyaki":         3000,
		},
	}
}

// legacyTableFile is the JSON shape of an externally pinned price table.
type legacyTableFile struct {
	CatalogVersion string           `json:"catalog_version"`
	Prices         map[string]int64 `json:"prices"`
}

// LoadLegacyPriceTable reads a pinned price table from a JSON file. An empty
// path returns the built-in table.
func LoadLegacyPriceTable(path string) (model.PriceSnapshot, error) {
	if path == "" {
		return LegacyPriceTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.PriceSnapshot{}, fmt.Errorf("legacy price table: %w", err)
	}

	var file legacyTableFile
	if err := json.Unmarshal(data, &file); err != nil {
		return model.PriceSnapshot{}, fmt.Errorf("legacy price table: %w", err)
	}
	if file.CatalogVersion == "" || len(file.Prices) == 0 {
		return model.PriceSnapshot{}, fmt.Errorf("legacy price table %s: missing catalog_version or prices", path)
	}

	prices := make(map[string]model.Money, len(file.Prices))
	for k, v := range file.Prices {
		prices[k] = model.Cents(v)
	}
	return model.PriceSnapshot{CatalogVersion: file.CatalogVersion, Prices: prices}, nil
}
