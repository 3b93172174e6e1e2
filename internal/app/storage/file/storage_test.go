package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
	err_storage "github.com/avGenie/go-coffee-settlement/internal/app/storage/api/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdataPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoadPayments(t *testing.T) {
	type want struct {
		payments entity.Payments
		err      error
	}
	tests := []struct {
		name   string
		file   string
		format Format

		want want
	}{
		{
			name: "json payments",
			file: "payments.json",

			want: want{
				payments: entity.Payments{
					{User: "alice", Amount: 5.0},
					{User: "bob", Amount: 3.0},
					{User: "alice", Amount: 1.5},
				},
			},
		},
		{
			name: "yaml payments",
			file: "payments.yaml",

			want: want{
				payments: entity.Payments{
					{User: "alice", Amount: 5.0},
					{User: "bob", Amount: 3.0},
				},
			},
		},
		{
			name: "empty array",
			file: "empty.json",

			want: want{
				payments: entity.Payments{},
			},
		},
		{
			name:   "forced json format on unknown extension",
			file:   "payments.txt",
			format: FormatJSON,

			want: want{
				payments: entity.Payments{
					{User: "alice", Amount: 5.0},
					{User: "bob", Amount: 3.0},
					{User: "alice", Amount: 1.5},
				},
			},
		},
		{
			name: "missing file",
			file: "missing.json",

			want: want{
				err: err_storage.ErrSourceNotFound,
			},
		},
		{
			name: "unknown extension",
			file: "payments.txt",

			want: want{
				err: err_storage.ErrUnsupportedFormat,
			},
		},
		{
			name: "malformed json",
			file: "payments_malformed.json",

			want: want{
				err: err_storage.ErrMalformedSource,
			},
		},
		{
			name: "unknown field",
			file: "payments_unknown_field.json",

			want: want{
				err: err_storage.ErrMalformedSource,
			},
		},
		{
			name: "trailing data",
			file: "payments_trailing.json",

			want: want{
				err: err_storage.ErrMalformedSource,
			},
		},
		{
			name: "blank file",
			file: "blank.json",

			want: want{
				err: err_storage.ErrMalformedSource,
			},
		},
		{
			name: "payment without user",
			file: "payments_empty_user.json",

			want: want{
				err: err_storage.ErrInvalidRecord,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			storage := NewFileStorage(test.format)

			payments, err := storage.LoadPayments(context.Background(), testdataPath(test.file))
			if test.want.err != nil {
				assert.ErrorIs(t, err, test.want.err)
				assert.Nil(t, payments)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want.payments, payments)
		})
	}
}

func TestLoadProducts(t *testing.T) {
	storage := NewFileStorage(FormatAuto)

	products, err := storage.LoadProducts(context.Background(), testdataPath("products.json"))
	require.NoError(t, err)
	assert.Equal(t, entity.Products{
		{DrinkName: "latte", Prices: map[string]float64{"small": 2.5, "large": 3.5}},
		{DrinkName: "espresso", Prices: map[string]float64{"small": 2.0}},
	}, products)

	products, err = storage.LoadProducts(context.Background(), testdataPath("products.yml"))
	require.NoError(t, err)
	assert.Equal(t, entity.Products{
		{DrinkName: "latte", Prices: map[string]float64{"small": 2.5, "large": 3.5}},
	}, products)

	_, err = storage.LoadProducts(context.Background(), testdataPath("products_no_prices.json"))
	assert.ErrorIs(t, err, err_storage.ErrInvalidRecord)
}

func TestLoadOrders(t *testing.T) {
	storage := NewFileStorage(FormatAuto)

	orders, err := storage.LoadOrders(context.Background(), testdataPath("orders.json"))
	require.NoError(t, err)
	assert.Equal(t, entity.Orders{
		{User: "alice", Drink: "latte", Size: "large"},
		{User: "bob", Drink: "Latte", Size: "small"},
	}, orders)

	orders, err = storage.LoadOrders(context.Background(), testdataPath("orders.yaml"))
	require.NoError(t, err)
	assert.Equal(t, entity.Orders{
		{User: "alice", Drink: "latte", Size: "large"},
	}, orders)

	_, err = storage.LoadOrders(context.Background(), testdataPath("orders_no_size.json"))
	assert.ErrorIs(t, err, err_storage.ErrInvalidRecord)
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	storage := NewFileStorage(FormatAuto)
	_, err := storage.LoadOrders(ctx, testdataPath("orders.json"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string

		want    Format
		wantErr bool
	}{
		{name: "empty", raw: "", want: FormatAuto},
		{name: "auto", raw: "auto", want: FormatAuto},
		{name: "json", raw: "JSON", want: FormatJSON},
		{name: "yaml", raw: "yaml", want: FormatYAML},
		{name: "yml", raw: " yml ", want: FormatYAML},
		{name: "csv", raw: "csv", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			format, err := ParseFormat(test.raw)
			if test.wantErr {
				assert.ErrorIs(t, err, err_storage.ErrUnsupportedFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want, format)
		})
	}
}
