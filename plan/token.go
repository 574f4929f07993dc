package plan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	ErrMalformedToken = errors.New("unexpected content in the version token file")
	ErrNoToken        = errors.New("no version token found")
)

var (
	blankLine    = regexp.MustCompile(`^\s*$`)
	commentLine  = regexp.MustCompile(`^\s*#`)
	versionToken = regexp.MustCompile(`^\s*\w{1,6}\s*$`)
)

// LoadVersionToken returns the first token line of r. Blank lines and lines
// starting with # are ignored; a token is one to six word characters.
func LoadVersionToken(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case blankLine.MatchString(line), commentLine.MatchString(line):
			continue
		case versionToken.MatchString(line):
			return strings.TrimSpace(line), nil
		default:
			return "", fmt.Errorf("%w: %q", ErrMalformedToken, line)
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", ErrNoToken
}

func LoadVersionTokenFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	tok, err := LoadVersionToken(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return tok, nil
}
