package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

func testFields() []Field {
	return []Field{
		{Key: "cut", Section: "Processing", Label: "Cut", Kind: KindRadio,
			Options: []Option{
				{Value: "Whole", Label: "Whole"},
				{Value: "Sliced", Label: "Sliced", Price: model.Cents(500)},
			}},
		{Key: "vacuum", Section: "Processing", Label: "Vacuum Pack", Kind: KindCheckbox,
			Options: []Option{{Value: "true", Label: "Vacuum Pack", Price: model.Cents(1000)}}},
	}
}

func testGroups() []SpecialtyMeatGroup {
	return []SpecialtyMeatGroup{
		{Name: "Sausage", Suboptions: []Suboption{
			{Key: "sausageMild", Label: "Mild", Price: model.Cents(1500)},
			{Key: "sausageHot", Label: "Hot", Price: model.Cents(1500)},
		}},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		fields  []Field
		groups  []SpecialtyMeatGroup
		wantErr string
	}{
		{
			name:   "valid definitions",
			fields: testFields(),
			groups: testGroups(),
		},
		{
			name: "duplicate field key",
			fields: []Field{
				{Key: "cut", Kind: KindRadio},
				{Key: "cut", Kind: KindSelect},
			},
			wantErr: `duplicate field key "cut"`,
		},
		{
			name: "duplicate suboption key",
			groups: []SpecialtyMeatGroup{
				{Name: "Sausage", Suboptions: []Suboption{
					{Key: "sausageMild"},
					{Key: "sausageMild"},
				}},
			},
			wantErr: `duplicate suboption key "sausageMild"`,
		},
		{
			name:   "suboption key collides with field",
			fields: []Field{{Key: "sausageMild", Kind: KindText}},
			groups: []SpecialtyMeatGroup{
				{Name: "Sausage", Suboptions: []Suboption{{Key: "sausageMild"}}},
			},
			wantErr: `suboption key "sausageMild" collides with field`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("test", tt.fields, tt.groups)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", c.Version())
		})
	}
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		MustNew("bad", []Field{{Key: "a"}, {Key: "a"}}, nil)
	})
}

func TestCatalog_Field(t *testing.T) {
	c := MustNew("test", testFields(), testGroups())

	f, ok := c.Field("cut")
	require.True(t, ok)
	assert.Equal(t, "Cut", f.Label)
	assert.Equal(t, KindRadio, f.Kind)

	_, ok = c.Field("missing")
	assert.False(t, ok)

	// Suboption keys are not fields
	_, ok = c.Field("sausageMild")
	assert.False(t, ok)
}

func TestField_Option(t *testing.T) {
	f := testFields()[0]

	opt, ok := f.Option("Sliced")
	require.True(t, ok)
	assert.Equal(t, model.Cents(500), opt.Price)

	_, ok = f.Option("Cubed")
	assert.False(t, ok)
}

func TestCatalog_Suboption(t *testing.T) {
	c := MustNew("test", testFields(), testGroups())

	sub, ok := c.Suboption("sausageHot")
	require.True(t, ok)
	assert.Equal(t, "Hot", sub.Label)
	assert.Equal(t, model.Cents(1500), sub.Price)

	_, ok = c.Suboption("cut")
	assert.False(t, ok)
}

func TestCatalog_HasKey(t *testing.T) {
	c := MustNew("test", testFields(), testGroups())

	assert.True(t, c.HasKey("cut"))
	assert.True(t, c.HasKey("sausageMild"))
	assert.False(t, c.HasKey("nope"))
}

func TestCatalog_AllFieldKeys(t *testing.T) {
	c := MustNew("test", testFields(), testGroups())

	assert.Equal(t, []string{"cut", "vacuum", "sausageMild", "sausageHot"}, c.AllFieldKeys())
}

func TestCatalog_PriceTable(t *testing.T) {
	c := MustNew("test", testFields(), testGroups())

	table := c.PriceTable()

	assert.Equal(t, model.Cents(500), table["cut.Sliced"])
	assert.Equal(t, model.Cents(1000), table["vacuum.true"])
	assert.Equal(t, model.Cents(1500), table["sausageMild"])
	assert.Equal(t, model.Cents(1500), table["sausageHot"])

	// Unpriced options are not part of the table
	_, ok := table["cut.Whole"]
	assert.False(t, ok)
}

func TestCatalog_FieldsAreCopies(t *testing.T) {
	c := MustNew("test", testFields(), testGroups())

	fields := c.Fields()
	fields[0].Key = "mutated"

	f, ok := c.Field("cut")
	require.True(t, ok)
	assert.Equal(t, "cut", f.Key)
}

func TestDeerCatalog(t *testing.T) {
	c := DeerCatalog()

	assert.Equal(t, DeerCatalogVersion, c.Version())

	// The processing-type field carries the headline prices
	f, ok := c.Field(KeySkinnedOrBoneless)
	require.True(t, ok)
	skinned, ok := f.Option("Skinned, Cut, Ground, Vacuum packed")
	require.True(t, ok)
	assert.Equal(t, model.Cents(11000), skinned.Price)

	donation, ok := f.Option(ValueDonation)
	require.True(t, ok)
	assert.Equal(t, model.Cents(0), donation.Price)

	// Every specialty suboption is addressable and priced per 5 lbs
	sub, ok := c.Suboption("summerSausageMild")
	require.True(t, ok)
	assert.Equal(t, model.Cents(1500), sub.Price)

	table := c.PriceTable()
	assert.Equal(t, model.Cents(3500), table[KeyHindLeg1+"."+ValueWholeMuscleJerky])
	assert.Equal(t, model.Cents(500), table[KeyHindLegTenderized1+".true"])
}
