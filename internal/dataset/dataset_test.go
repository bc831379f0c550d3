package dataset

import (
	"testing"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDatasetIsValid(t *testing.T) {
	orders, shoes := Orders(), Shoes()

	require.Len(t, orders, 1)
	require.Len(t, shoes, 24)
	assert.NoError(t, Validate(orders, shoes, true))
	assert.Empty(t, DanglingReferences(orders, shoes))
}

func TestSampleOrderLines(t *testing.T) {
	o := Orders()[0]
	require.Len(t, o.Lines, 2)
	assert.Equal(t, model.OrderLine{Size: 40, ShoeID: "ad8bd387-511e-44b4-8c2f-c1902bc8b764"}, o.Lines[0])
	assert.Equal(t, model.OrderLine{Size: 42, ShoeID: "923e0c42-c180-4fc0-9796-bcd4902ffdfe"}, o.Lines[1])
}

func TestShoesReturnsCopies(t *testing.T) {
	a := Shoes()
	a[0].AvailableSizes[0] = "99"
	a[0].Brand = "changed"

	b := Shoes()
	assert.Equal(t, "38", b[0].AvailableSizes[0])
	assert.Equal(t, "Nike", b[0].Brand)
}

func TestValidateDanglingReference(t *testing.T) {
	orders := Orders()
	orders[0].Lines = append(orders[0].Lines, model.OrderLine{Size: 44, ShoeID: "00000000-0000-4000-8000-000000000000"})
	shoes := Shoes()

	assert.NoError(t, Validate(orders, shoes, false))

	err := Validate(orders, shoes, true)
	assert.ErrorIs(t, err, ErrDanglingReference)
	assert.Equal(t, []string{"00000000-0000-4000-8000-000000000000"}, DanglingReferences(orders, shoes))
}

func TestValidateRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name   string
		orders []model.Order
		shoes  []model.Shoe
		want   error
	}{
		{
			name:  "non uuid shoe id",
			shoes: []model.Shoe{{ShoeID: "shoe-1", Price: model.MustPrice("1.00")}},
			want:  ErrInvalidRecord,
		},
		{
			name: "duplicate shoe",
			shoes: []model.Shoe{
				{ShoeID: "ad8bd387-511e-44b4-8c2f-c1902bc8b764"},
				{ShoeID: "ad8bd387-511e-44b4-8c2f-c1902bc8b764"},
			},
			want: ErrDuplicateKey,
		},
		{
			name:  "negative price",
			shoes: []model.Shoe{{ShoeID: "ad8bd387-511e-44b4-8c2f-c1902bc8b764", Price: model.MustPrice("-1")}},
			want:  ErrInvalidRecord,
		},
		{
			name:   "order without lines",
			orders: []model.Order{{OrderID: "89d7ab43-f11c-4f08-a25f-505a82376a2a"}},
			want:   ErrInvalidRecord,
		},
		{
			name: "zero size",
			orders: []model.Order{{
				OrderID: "89d7ab43-f11c-4f08-a25f-505a82376a2a",
				Lines:   []model.OrderLine{{Size: 0, ShoeID: "ad8bd387-511e-44b4-8c2f-c1902bc8b764"}},
			}},
			want: ErrInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(tt.orders, tt.shoes, false), tt.want)
		})
	}
}
