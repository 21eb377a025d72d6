package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent-discovery/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	paris := time.FixedZone("CEST", 2*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"2024-05-01 15:30:00"`},
		{"converted to utc", time.Date(2024, 5, 1, 17, 30, 0, 0, paris), `"2024-05-01 15:30:00"`},
		{"zero", time.Time{}, `null`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(b))
		})
	}
}
