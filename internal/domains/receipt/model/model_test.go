package model_test

import (
	"testing"

	"busbooking/internal/domains/receipt/model"
	"busbooking/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestParseFileName(t *testing.T) {
	tests := []struct {
		name   string
		want   int64
		wantOK bool
	}{
		{name: "booking-41.pdf", want: 41, wantOK: true},
		{name: "booking-0.pdf"},
		{name: "../booking-41.pdf"},
		{name: "booking-41.pdf.exe"},
		{name: "receipt-41.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := model.ParseFileName(tt.name)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestReceipt_Rows(t *testing.T) {
	receipt := model.Receipt{
		BookingID:     41,
		PassengerName: "Asha",
		BusName:       "Volvo AC",
		SeatNumber:    "R01",
		BookingDate:   "2026-11-12T08:30:00",
		Amount:        money.FromMajor(500),
	}

	rows := receipt.Rows(func(string) string { return "12 Nov" })

	assert.Equal(t, "booking-41.pdf", receipt.FileName())
	assert.Equal(t, [2]string{"Booking ID", "41"}, rows[0])
	assert.Equal(t, [2]string{"Route", "N/A"}, rows[3])
	assert.Equal(t, [2]string{"Booking Date", "12 Nov"}, rows[5])
	assert.Equal(t, [2]string{"Amount", "Rs. 500.00"}, rows[6])
	assert.Equal(t, [2]string{"Status", "N/A"}, rows[7])
}
