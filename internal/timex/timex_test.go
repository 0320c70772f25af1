package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"string", `"3s"`, 3 * time.Second, false},
		{"millis", `"250ms"`, 250 * time.Millisecond, false},
		{"nanoseconds", `1000000000`, time.Second, false},
		{"bad string", `"soon"`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 1500 * time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(b))
}

func TestToday(t *testing.T) {
	now := time.Date(2024, time.March, 9, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2024-03-09", Today(now))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-01", "2024-01-02", 1},
		{"2024-01-01", "2024-01-05", 4},
		{"2024-02-28", "2024-03-01", 2},
		{"2024-03-09", "2024-03-11", 2},
		{"2024-01-05", "2024-01-01", -4},
	}
	for _, tt := range tests {
		got, ok := DaysBetween(tt.a, tt.b)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.a, tt.b)
	}

	_, ok := DaysBetween("yesterday", "2024-01-01")
	assert.False(t, ok)
}
