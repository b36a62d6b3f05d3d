package pricing

import (
	"encoding/json"
	"testing"

	"skinclinic/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResolveAllowedPackages(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "plain array",
			raw:  `["1 session","5 sessions"]`,
			want: []string{"1 session", "5 sessions"},
		},
		{
			name: "json string wrapping an array",
			raw:  `"[\"1 session\",\"3 sessions\"]"`,
			want: []string{"1 session", "3 sessions"},
		},
		{
			name: "object with options",
			raw:  `{"options":["1 session","5 sessions"]}`,
			want: []string{"1 session", "5 sessions"},
		},
		{
			name: "json string wrapping an object with options",
			raw:  `"{\"options\":[\"1 session\",\"5 sessions\"]}"`,
			want: []string{"1 session", "5 sessions"},
		},
		{
			name: "legacy object with session_options",
			raw:  `{"session_options":["2 sessions","4 sessions"]}`,
			want: []string{"2 sessions", "4 sessions"},
		},
		{
			name: "empty array falls back",
			raw:  `[]`,
			want: DefaultPackages,
		},
		{
			name: "garbage falls back",
			raw:  `not json at all`,
			want: DefaultPackages,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &domain.Service{SessionOptions: json.RawMessage(tc.raw)}
			assert.Equal(t, tc.want, ResolveAllowedPackages(svc))
		})
	}
}

func TestResolveAllowedPackages_MissingOptions(t *testing.T) {
	assert.Equal(t, DefaultPackages, ResolveAllowedPackages(nil))
	assert.Equal(t, DefaultPackages, ResolveAllowedPackages(&domain.Service{}))
}
