package plan

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jrwynneiii/freqplantools/table"
)

// ICSOptions controls ConvertICS. Sentinel rows are written when Token is set.
type ICSOptions struct {
	Skip  int
	Token string
}

// ConvertICS reads an ICS-217A export from r and writes a CHIRP table to w.
// It returns the number of lines written, header included.
func ConvertICS(r io.Reader, w io.Writer, m ICSMapper, opts ICSOptions) (int, error) {
	recs, err := table.ReadRecords(r, opts.Skip)
	if err != nil {
		return 0, fmt.Errorf("could not read ICS-217A rows: %w", err)
	}
	rows := make([]ICSRow, len(recs))
	for i, rec := range recs {
		rows[i] = ICSRow(rec)
	}

	channels := m.Map(rows)
	if opts.Token != "" {
		channels = WithSentinels(channels, opts.Token, m.Conf, m.Logger)
	}

	if err := table.WriteStructs(w, &channels); err != nil {
		return 0, fmt.Errorf("could not write CHIRP rows: %w", err)
	}
	return len(channels) + 1, nil
}

// ConvertRT reads a CHIRP table from r and writes RT Systems rows to w.
func ConvertRT(r io.Reader, w io.Writer, m RTMapper) (int, error) {
	rows, err := readChirp(r, 0, m.Logger)
	if err != nil {
		return 0, err
	}
	out, err := m.Map(rows)
	if err != nil {
		return 0, err
	}
	if err := table.WriteStructs(w, &out); err != nil {
		return 0, fmt.Errorf("could not write RT Systems rows: %w", err)
	}
	return len(out) + 1, nil
}

// ConvertWeb reads a CHIRP table from r and writes the website table to w,
// dropping skip rows after the header.
func ConvertWeb(r io.Reader, w io.Writer, m WebMapper, skip int) (int, error) {
	rows, err := readChirp(r, skip, m.Logger)
	if err != nil {
		return 0, err
	}
	out := m.Map(rows)
	if err := table.WriteStructsWithHeader(w, WebHeader, &out); err != nil {
		return 0, fmt.Errorf("could not write website rows: %w", err)
	}
	return len(out) + 1, nil
}

// ReadChirp loads a CHIRP table, dropping rows with neither a name nor a frequency.
func ReadChirp(r io.Reader) ([]*ChirpChannel, error) {
	return readChirp(r, 0, nil)
}

func readChirp(r io.Reader, skip int, logger *log.Logger) ([]*ChirpChannel, error) {
	var rows []*ChirpChannel
	if err := table.ReadStructs(r, skip, &rows); err != nil {
		return nil, fmt.Errorf("could not read CHIRP rows: %w", err)
	}
	kept := rows[:0]
	for i, row := range rows {
		if strings.TrimSpace(row.Name) == "" && strings.TrimSpace(row.Frequency) == "" {
			orDefault(logger).Warnf("Row %d is blank. Skipping", i+1)
			continue
		}
		kept = append(kept, row)
	}
	return kept, nil
}
