package youtube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestNormalizeListParams_MaxResults(t *testing.T) {
	tests := []struct {
		name string
		in   *int
		want int
	}{
		{"absent defaults to 20", nil, 20},
		{"in range passes through", intPtr(50), 50},
		{"below one clamps to one", intPtr(0), 1},
		{"negative clamps to one", intPtr(-5), 1},
		{"above hundred clamps to hundred", intPtr(500), 100},
		{"boundary one", intPtr(1), 1},
		{"boundary hundred", intPtr(100), 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := NormalizeListParams(tc.in, "")
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeListParams_Order(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "relevance"},
		{"relevance", "relevance"},
		{"time", "time"},
		{"TIME", "time"},
		{"Relevance", "relevance"},
		{"rating", "relevance"},
		{"newest", "relevance"},
	}

	for _, tc := range tests {
		_, got := NormalizeListParams(nil, tc.in)
		require.Equal(t, tc.want, got, "order %q", tc.in)
	}
}
