package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/pluralkit-go/pluralkit"
)

func strPtr(s string) *string { return &s }

func testMembers() []pluralkit.Member {
	return []pluralkit.Member{
		{
			ID:          "alcde",
			Name:        "Alice",
			Created:     time.Now().AddDate(-2, 0, 0),
			KeepProxy:   true,
			ProxyTags:   []pluralkit.ProxyTag{{Prefix: strPtr("a:")}},
			Pronouns:    strPtr("she/her"),
			DisplayName: strPtr("Ali"),
			Birthday:    &pluralkit.Date{Year: 4, Month: time.March, Day: 15},
		},
		{
			ID:      "bbcde",
			Name:    "Bob",
			Created: time.Now().AddDate(0, -1, 0),
		},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "simple comparison", expression: `Name == "Alice"`, wantErr: false},
		{name: "contains", expression: `Name contains "li"`, wantErr: false},
		{name: "helper function", expression: `Created < daysAgo(30)`, wantErr: false},
		{name: "empty expression", expression: "", wantErr: true},
		{name: "whitespace only", expression: "   ", wantErr: true},
		{name: "syntax error", expression: `Name ==`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMatch(t *testing.T) {
	members := testMembers()

	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{name: "by name", expression: `Name == "Alice"`, want: []string{"Alice"}},
		{name: "by pronouns", expression: `Pronouns != ""`, want: []string{"Alice"}},
		{name: "by proxy tags", expression: `KeepProxy and len(ProxyTags) > 0`, want: []string{"Alice"}},
		{name: "by age", expression: `Created < daysAgo(365)`, want: []string{"Alice"}},
		{name: "by birthday", expression: `Birthday == ""`, want: []string{"Bob"}},
		{name: "match all", expression: `Visibility == "public"`, want: []string{"Alice", "Bob"}},
		{name: "match none", expression: `Name == "Carol"`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Members(members)
			require.NoError(t, err)

			var names []string
			for _, m := range matched {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestMatchUndefinedVariable(t *testing.T) {
	f, err := Compile(`Nonexistent == "x"`)
	require.NoError(t, err)

	// undefined variables evaluate as nil, not an error
	ok, err := f.Match(testMembers()[0])
	require.NoError(t, err)
	assert.False(t, ok)
}
