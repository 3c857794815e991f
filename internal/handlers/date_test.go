package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "valid date", input: `"2026-08-01"`, expected: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{name: "wrong separator", input: `"2026/08/01"`, wantErr: true},
		{name: "day first", input: `"01-08-2026"`, wantErr: true},
		{name: "with time component", input: `"2026-08-01T10:00:00Z"`, wantErr: true},
		{name: "empty", input: `""`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DateOnly
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(d.Time()))
		})
	}
}

func TestDateOnly_MarshalJSON(t *testing.T) {
	d := DateOnly(time.Date(2026, 8, 1, 15, 30, 0, 0, time.UTC))
	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-08-01"`, string(data))
}
