package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Channel string `csv:"Channel"`
	Name    string `csv:"Name"`
}

func Test_ReadRecordsSkipsLines(t *testing.T) {
	var in = "title line\nanother,one\n1,CLAC01,146.52\n2,\"CLAC, 02\"\n"
	var recs, err = ReadRecords(strings.NewReader(in), 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "CLAC01", "146.52"}, {"2", "CLAC, 02"}}, recs)
}

func Test_ReadRecordsSkipPastEnd(t *testing.T) {
	var recs, err = ReadRecords(strings.NewReader("a,b\n"), 5)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func Test_ReadRecordsStripsBOM(t *testing.T) {
	var recs, err = ReadRecords(strings.NewReader("\ufeffLocation,Name\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, "Location", recs[0][0])
}

func Test_ReadStructs(t *testing.T) {
	var in = "Name,Channel,Extra\nFIRST,1,x\nSECOND,2\nTHIRD,3,y\n"
	var rows []*row
	require.NoError(t, ReadStructs(strings.NewReader(in), 1, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, row{Channel: "2", Name: "SECOND"}, *rows[0])
	assert.Equal(t, row{Channel: "3", Name: "THIRD"}, *rows[1])
}

func Test_ReadStructsEmpty(t *testing.T) {
	var rows []*row
	assert.ErrorIs(t, ReadStructs(strings.NewReader(""), 0, &rows), ErrEmpty)
}

func Test_WriteStructs(t *testing.T) {
	var buf bytes.Buffer
	var rows = []*row{{Channel: "1", Name: "A, B"}, {Channel: "2", Name: "C"}}

	require.NoError(t, WriteStructs(&buf, rows))
	assert.Equal(t, "Channel,Name\n1,\"A, B\"\n2,C\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteStructsWithHeader(&buf, "Channel, Name", rows))
	assert.Equal(t, "Channel, Name\n1,\"A, B\"\n2,C\n", buf.String())
}

func Test_ZstdRoundTrip(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "plan.csv.zst")
	var content = "Location,Name\n1,CLAC01\n"

	var w, err = CreateOutput(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenInput(path)
	require.NoError(t, err)
	defer r.Close()
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func Test_PlainFileRoundTrip(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "plan.csv")
	var w, err = CreateOutput(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, "x\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := OpenInput(path)
	require.NoError(t, err)
	defer r.Close()
	got, _ := io.ReadAll(r)
	assert.Equal(t, "x\n", string(got))
}

func Test_OpenInputMissing(t *testing.T) {
	var _, err = OpenInput(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func Test_ClampSkip(t *testing.T) {
	var buf bytes.Buffer
	var logger = log.New(&buf)
	logger.SetLevel(log.WarnLevel)

	assert.Equal(t, 0, ClampSkip("", logger))
	assert.Equal(t, 3, ClampSkip("3", logger))
	assert.Equal(t, 9, ClampSkip(" 9 ", logger))
	assert.Empty(t, buf.String())

	assert.Equal(t, 0, ClampSkip("10", logger))
	assert.Contains(t, buf.String(), "out of range")

	assert.Equal(t, 0, ClampSkip("-1", logger))
	assert.Equal(t, 0, ClampSkip("three", logger))
	assert.Contains(t, buf.String(), "three")
}

func Test_IsMalformed(t *testing.T) {
	assert.True(t, IsMalformed(fmt.Errorf("reading: %w", ErrEmpty)))
	assert.True(t, IsMalformed(&csv.ParseError{Line: 1, Err: csv.ErrQuote}))
	assert.False(t, IsMalformed(io.ErrUnexpectedEOF))
}
