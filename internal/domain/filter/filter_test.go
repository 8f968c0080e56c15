package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/filter"
)

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt(n int) *int              { return &n }

func TestPage_Validate(t *testing.T) {
	cases := []struct {
		name string
		page filter.Page
		ok   bool
	}{
		{"por defecto", filter.DefaultPage(), true},
		{"máximo permitido", filter.Page{Limit: filter.MaxLimit, Offset: 5}, true},
		{"limit cero", filter.Page{Limit: 0}, false},
		{"limit negativo", filter.Page{Limit: -1}, false},
		{"limit sobre el máximo", filter.Page{Limit: filter.MaxLimit + 1}, false},
		{"offset negativo", filter.Page{Limit: 10, Offset: -1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.page.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestDateRange_InicioPosteriorAlFinEsInvalido(t *testing.T) {
	r := filter.DateRange{
		Start: ptrTime(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		End:   ptrTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	assert.ErrorIs(t, r.Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, filter.Sales{Dates: r}.Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, filter.Revenue{Dates: r}.Validate(), domain.ErrInvalidInput)
}

func TestDateRange_ContainsEsInclusivo(t *testing.T) {
	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	r := filter.DateRange{Start: &start, End: &end}

	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end))
	assert.False(t, r.Contains(end.Add(time.Second)))
	assert.True(t, filter.DateRange{}.Contains(end), "rango vacío no restringe")
}

func TestParseDate(t *testing.T) {
	start, err := filter.ParseDate("start_date", "2024-01-05", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), *start)

	end, err := filter.ParseDate("end_date", "2024-01-05", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 23, 59, 59, 999999999, time.UTC), *end, "una fecha final sin hora cubre todo el día")

	ts, err := filter.ParseDate("end_date", "2024-01-05T10:00:00-05:00", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 15, 0, 0, 0, time.UTC), *ts, "RFC3339 se respeta y se normaliza a UTC")

	empty, err := filter.ParseDate("start_date", "  ", false)
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = filter.ParseDate("start_date", "05/01/2024", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventory_LowStockOnlyAnulaMaxQuantity(t *testing.T) {
	f := filter.Inventory{MaxQuantity: ptrInt(3)}
	assert.Equal(t, 3, *f.EffectiveMaxQuantity())

	f.LowStockOnly = true
	assert.Nil(t, f.EffectiveMaxQuantity())

	assert.ErrorIs(t, filter.Inventory{MaxQuantity: ptrInt(-1)}.Validate(), domain.ErrInvalidInput)
}

func TestValidID(t *testing.T) {
	assert.NoError(t, filter.Products{}.Validate())
	assert.NoError(t, filter.Products{CategoryID: "6f1c1a56-4d4b-4b7e-9a53-0c1f8f9a2b10"}.Validate())
	assert.ErrorIs(t, filter.Products{CategoryID: "7"}.Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, filter.Sales{ProductID: "abc"}.Validate(), domain.ErrInvalidInput)
}
