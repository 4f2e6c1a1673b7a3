package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		want    time.Time
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "naive with microseconds",
			input: "2024-01-15T10:30:00.123456",
			want:  time.Date(2024, 1, 15, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:  "naive without fraction",
			input: "2024-01-15T10:30:00",
			want:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "space separated",
			input: "2024-01-15 10:30:00.5",
			want:  time.Date(2024, 1, 15, 10, 30, 0, 500000000, time.UTC),
		},
		{
			name:  "RFC3339 zulu",
			input: "2024-01-15T10:30:00Z",
			want:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 with offset",
			input: "2024-01-15T13:30:00+03:00",
			want:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestFormatTimestamp_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 42000, time.FixedZone("MSK", 3*3600))

	s := FormatTimestamp(now)
	assert.Equal(t, "2025-03-01T05:00:00.000042", s)

	parsed, err := ParseTimestamp(s)
	require.NoError(t, err)
	assert.True(t, now.Equal(parsed))
}
