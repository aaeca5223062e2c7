package timezone_test

import (
	"testing"
	"time"

	"busbooking/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "already dd-mm-yyyy", input: "05-03-2025", want: "05-03-2025"},
		{name: "iso date", input: "2025-03-05", want: "05-03-2025"},
		{name: "iso datetime", input: "2025-03-05T10:30:00", want: "05-03-2025"},
		{name: "rfc3339", input: "2025-03-05T10:30:00Z", want: "05-03-2025"},
		{name: "slash locale", input: "05/03/2025", want: "05-03-2025"},
		{name: "long month", input: "Mar 5, 2025", want: "05-03-2025"},
		{name: "surrounding spaces", input: "  2025-03-05 ", want: "05-03-2025"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.NormalizeDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "05-03-2025", timezone.DisplayDate("2025-03-05"))
	assert.Equal(t, "05-03-2025", timezone.DisplayDate("05-03-2025"))
	assert.Equal(t, "soon", timezone.DisplayDate("soon"))
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "09:15", want: "09:15"},
		{input: "09:15:00", want: "09:15"},
		{input: "9:15 PM", want: "21:15"},
		{input: "25:99", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := timezone.NormalizeTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	moment := time.Date(2025, 3, 5, 10, 30, 0, 0, timezone.GetLocation())

	assert.Equal(t, "2025-03-05T10:30:00", timezone.FormatDateTime(moment))
}
