package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

func TestLegacyPriceTable(t *testing.T) {
	table := LegacyPriceTable()

	assert.Equal(t, LegacyPriceTableVersion, table.CatalogVersion)

	// The legacy era predates the last reprice, so every shared key should
	// be at or below the live catalog price.
	live := DeerCatalog().PriceTable()
	for key, legacyPrice := range table.Prices {
		livePrice, ok := live[key]
		if !ok {
			continue
		}
		assert.LessOrEqual(t, int64(legacyPrice), int64(livePrice), "key %s", key)
	}

	assert.Equal(t, model.Cents(9500), table.Prices[KeySkinnedOrBoneless+".Skinned, Cut, Ground, Vacuum packed"])
	assert.Equal(t, model.Cents(1250), table.Prices["summerSausageMild"])
}

func TestLoadLegacyPriceTable(t *testing.T) {
	t.Run("empty path returns built-in table", func(t *testing.T) {
		table, err := LoadLegacyPriceTable("")
		require.NoError(t, err)
		assert.Equal(t, LegacyPriceTableVersion, table.CatalogVersion)
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pinned.json")
		content := `{"catalog_version":"2018-pinned","prices":{"summerSausageMild":1000,"cape.true":3500}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		table, err := LoadLegacyPriceTable(path)
		require.NoError(t, err)
		assert.Equal(t, "2018-pinned", table.CatalogVersion)
		assert.Equal(t, model.Cents(1000), table.Prices["summerSausageMild"])
		assert.Equal(t, model.Cents(3500), table.Prices["cape.true"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadLegacyPriceTable(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := LoadLegacyPriceTable(path)
		assert.Error(t, err)
	})

	t.Run("missing version or prices", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"prices":{}}`), 0o600))

		_, err := LoadLegacyPriceTable(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing catalog_version or prices")
	})
}
