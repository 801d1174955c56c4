package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseISO(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantOk  bool
	}{
		{
			name:   "trailing Z is UTC",
			value:  "2024-03-01T10:30:00Z",
			want:   time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			wantOk: true,
		},
		{
			name:   "zone-less assumed UTC",
			value:  "2024-03-01T10:30:00",
			want:   time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			wantOk: true,
		},
		{
			name:   "zoned converted to UTC",
			value:  "2024-03-01T10:30:00+02:00",
			want:   time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC),
			wantOk: true,
		},
		{
			name:   "space separator",
			value:  "2024-03-01 10:30:00",
			want:   time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			wantOk: true,
		},
		{
			name:   "date only",
			value:  "2024-03-01",
			want:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantOk: true,
		},
		{
			name:   "fractional seconds",
			value:  "2024-03-01T10:30:00.5Z",
			want:   time.Date(2024, 3, 1, 10, 30, 0, 500000000, time.UTC),
			wantOk: true,
		},
		{
			name:   "empty",
			value:  "",
			wantOk: false,
		},
		{
			name:   "garbage",
			value:  "yesterday",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseISO(tt.value)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}
}
