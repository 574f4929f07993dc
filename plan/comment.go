package plan

import (
	"errors"
	"fmt"
)

const (
	MaxCommentLimit = 60
	ellipsis        = "..."
)

var ErrCommentMax = errors.New("comment maximum size must be between 0 and 60 inclusive")

// TruncateComment shortens s to max runes, the last three being an ellipsis.
func TruncateComment(s string, max int) (string, error) {
	if max < 0 || max > MaxCommentLimit {
		return "", fmt.Errorf("%w: given %d", ErrCommentMax, max)
	}
	r := []rune(s)
	if len(r) <= max {
		return s, nil
	}
	keep := max - len(ellipsis)
	if keep < 0 {
		return string(r[:max]), nil
	}
	return string(r[:keep]) + ellipsis, nil
}
