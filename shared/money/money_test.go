package money_test

import (
	"encoding/json"
	"testing"

	"busbooking/shared/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    money.Amount
		wantErr bool
	}{
		{input: "500", want: 50000},
		{input: "650.5", want: 65050},
		{input: "650.50", want: 65050},
		{input: "650.500", want: 65050},
		{input: "-12.75", want: -1275},
		{input: ".5", want: 50},
		{input: "1.234", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: "+5", want: 500},
		{input: "5.", want: 500},
		{input: "1.-5", wantErr: true},
		{input: "1.+5", wantErr: true},
		{input: "--5", wantErr: true},
		{input: "+-5", wantErr: true},
		{input: "-", wantErr: true},
		{input: ".", wantErr: true},
		{input: "1.2.3", wantErr: true},
		{input: "1 000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := money.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount_Arithmetic(t *testing.T) {
	price := money.FromMajor(300)

	assert.Equal(t, money.FromMajor(900), price.Times(3))
	assert.Equal(t, money.Amount(0), price.Times(0))

	delta := money.FromMajor(650).Sub(money.FromMajor(500))
	assert.Equal(t, money.FromMajor(150), delta)
	assert.Equal(t, 1, delta.Sign())
	assert.Equal(t, -1, delta.Sub(money.FromMajor(200)).Sign())
	assert.Equal(t, money.FromMajor(50), delta.Sub(money.FromMajor(200)).Abs())
	assert.Equal(t, 0, money.Amount(0).Sign())
}

func TestAmount_JSON(t *testing.T) {
	var payload struct {
		Price money.Amount `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price": 650.00}`), &payload))
	assert.Equal(t, money.FromMajor(650), payload.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "499.99"}`), &payload))
	assert.Equal(t, money.Amount(49999), payload.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": 5E+2}`), &payload))
	assert.Equal(t, money.FromMajor(500), payload.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"price": "1.-5"}`), &payload))

	out, err := json.Marshal(struct {
		Amount money.Amount `json:"amount"`
	}{Amount: money.Amount(-1550)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": -15.50}`, string(out))
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "150.00", money.FromMajor(150).String())
	assert.Equal(t, "-0.05", money.Amount(-5).String())
}
