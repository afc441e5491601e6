package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload_Employee(t *testing.T) {
	p, err := ParsePayload([]byte(`{"type":"employee","name":"Alice","store":"Downtown"}`))
	require.NoError(t, err)

	assert.Equal(t, PayloadKindEmployee, p.Kind)
	require.NotNil(t, p.Employee)
	assert.Equal(t, "Alice", p.Employee.Name)
	assert.Equal(t, "Downtown", p.Employee.Store)
	assert.True(t, p.Employee.Complete())
}

func TestParsePayload_Item(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		complete  bool
		wantPrice string
	}{
		{
			name:      "string price",
			raw:       `{"type":"item","id":"A","name":"Widget","price":"2.00","image":"w.png"}`,
			complete:  true,
			wantPrice: "2.00",
		},
		{
			name:      "numeric price",
			raw:       `{"type":"item","id":"A","name":"Widget","price":2}`,
			complete:  true,
			wantPrice: "2.00",
		},
		{
			name:     "non-numeric price",
			raw:      `{"type":"item","id":"A","name":"Widget","price":"two"}`,
			complete: false,
		},
		{
			name:     "null price",
			raw:      `{"type":"item","id":"A","name":"Widget","price":null}`,
			complete: false,
		},
		{
			name:     "missing price",
			raw:      `{"type":"item","id":"A","name":"Widget"}`,
			complete: false,
		},
		{
			name:     "missing id",
			raw:      `{"type":"item","name":"Widget","price":"2.00"}`,
			complete: false,
		},
		{
			name:     "missing name",
			raw:      `{"type":"item","id":"A","price":"2.00"}`,
			complete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePayload([]byte(tt.raw))
			require.NoError(t, err)

			assert.Equal(t, PayloadKindItem, p.Kind)
			require.NotNil(t, p.Item)
			assert.Equal(t, tt.complete, p.Item.Complete())
			if tt.complete {
				assert.Equal(t, tt.wantPrice, p.Item.Price.Amount.StringFixed(2))
			}
		})
	}
}

func TestParsePayload_Payment(t *testing.T) {
	p, err := ParsePayload([]byte(`{"type":"payment","name":"V","number":"4111111111111111"}`))
	require.NoError(t, err)

	assert.Equal(t, PayloadKindPayment, p.Kind)
	require.NotNil(t, p.Payment)
	assert.True(t, p.Payment.Complete())

	p, err = ParsePayload([]byte(`{"type":"payment","name":"V"}`))
	require.NoError(t, err)
	assert.False(t, p.Payment.Complete())
}

func TestParsePayload_UnknownType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown type", `{"type":"coupon","code":"TEN"}`},
		{"missing type", `{"name":"Alice"}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePayload([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, PayloadKindInvalid, p.Kind)
			assert.Nil(t, p.Employee)
			assert.Nil(t, p.Item)
			assert.Nil(t, p.Payment)
		})
	}
}

func TestParsePayload_Malformed(t *testing.T) {
	_, err := ParsePayload([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParsePayload([]byte(``))
	assert.Error(t, err)
}
