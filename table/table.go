package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gocarina/gocsv"
)

// MaxSkip is the largest number of leading rows a converter may be asked to skip.
const MaxSkip = 9

var ErrEmpty = errors.New("no rows found")

const bom = "\ufeff"

// Spreadsheet exports are not always well formed: rows vary in length and
// quotes show up mid-field.
func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// ReadRecords reads every delimited row from r after discarding the first
// skip lines. Row order is kept.
func ReadRecords(r io.Reader, skip int) ([][]string, error) {
	br := bufio.NewReader(r)
	for i := 0; i < skip; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, err
		}
	}
	recs, err := newReader(br).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) > 0 && len(recs[0]) > 0 {
		recs[0][0] = strings.TrimPrefix(recs[0][0], bom)
	}
	return recs, nil
}

type records [][]string

func (r records) GetCSVRows() ([][]string, error) {
	return r, nil
}

// ReadStructs maps a headed table onto out, a pointer to a slice of structs
// with csv tags. The first skip rows after the header are dropped.
func ReadStructs(r io.Reader, skip int, out any) error {
	recs, err := ReadRecords(r, 0)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return ErrEmpty
	}
	body := recs[1:]
	if skip > len(body) {
		skip = len(body)
	}
	rows := append(records{recs[0]}, body[skip:]...)
	if err := gocsv.UnmarshalDecoder(rows, out); err != nil {
		return fmt.Errorf("could not map rows: %w", err)
	}
	return nil
}

// WriteStructs writes the header taken from the csv tags of in, then every row.
func WriteStructs(w io.Writer, in any) error {
	return gocsv.Marshal(in, w)
}

// WriteStructsWithHeader writes a fixed header line in place of the tag
// derived one.
func WriteStructsWithHeader(w io.Writer, header string, in any) error {
	if _, err := io.WriteString(w, header+"\n"); err != nil {
		return err
	}
	return gocsv.MarshalWithoutHeaders(in, w)
}

// ClampSkip parses a skip count. Anything that is not a number in
// [0, MaxSkip] is replaced by zero with a warning.
func ClampSkip(raw string, logger *log.Logger) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warnf("Trying to convert %s to a positive integer failed. Ignoring", raw)
		return 0
	}
	if n < 0 || n > MaxSkip {
		logger.Warnf("The number of rows to skip is out of range (0 .. %d): %d. Ignoring", MaxSkip, n)
		return 0
	}
	return n
}

// IsMalformed reports whether err was caused by the contents of a table
// rather than by reading or writing it.
func IsMalformed(err error) bool {
	var perr *csv.ParseError
	return errors.Is(err, ErrEmpty) || errors.As(err, &perr)
}
