package plan

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_TruncateComment(t *testing.T) {
	var cases = []struct {
		in   string
		max  int
		want string
	}{
		{"Calling", 50, "Calling"},
		{strings.Repeat("a", 50), 50, strings.Repeat("a", 50)},
		{strings.Repeat("a", 51), 50, strings.Repeat("a", 47) + "..."},
		{"Net control", 8, "Net c..."},
		{"abcdef", 2, "ab"},
		{"abcdef", 0, ""},
		{"", 0, ""},
		{"ÅÅÅÅÅÅ", 5, "ÅÅ..."},
	}
	for _, c := range cases {
		var got, err = TruncateComment(c.in, c.max)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%q/%d", c.in, c.max)
	}
}

func Test_TruncateCommentRejectsMax(t *testing.T) {
	for _, max := range []int{-1, 61, 500} {
		var _, err = TruncateComment("x", max)
		assert.ErrorIs(t, err, ErrCommentMax)
	}
}

func Test_TruncateCommentProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var s = rapid.String().Draw(t, "comment")
		var max = rapid.IntRange(0, MaxCommentLimit).Draw(t, "max")

		var got, err = TruncateComment(s, max)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if utf8.RuneCountInString(got) > max {
			t.Fatalf("%q is longer than %d", got, max)
		}
		if utf8.RuneCountInString(s) <= max && got != s {
			t.Fatalf("%q changed to %q", s, got)
		}
	})
}
