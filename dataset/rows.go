package dataset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
	"github.com/jgbaldwinbrown/csvh"
)

// ErrParse marks a malformed row. Messages carry the file name and line.
var ErrParse = errors.New("dataset: parse error")

// sampleBytes is how much of a file is inspected to guess its delimiter.
const sampleBytes = 64 * 1024

// maxLine bounds a single line; UKBB relatedness rows are short but .fam
// files from some pipelines carry long FIDs.
const maxLine = 1 << 20

// splitter turns one line into fields.
type splitter func(line string) []string

// detectSplitter picks a tab or comma splitter when the detector lists either
// among its candidates, tab first, and otherwise falls back to runs of
// whitespace, which is what PLINK and UKBB text outputs use. The candidate
// list is unordered and may hold any byte that repeats evenly per line, such
// as the underscore in FAM_1.
func detectSplitter(sample []byte) splitter {
	candidates := make(map[string]bool)
	for _, d := range detector.New().DetectDelimiter(bytes.NewReader(sample), '"') {
		candidates[d] = true
	}
	for _, delim := range []string{"\t", ","} {
		if candidates[delim] {
			return fieldSplitter(delim)
		}
	}

	return strings.Fields
}

// fieldSplitter splits on delim and trims each field.
func fieldSplitter(delim string) splitter {
	return func(line string) []string {
		fields := strings.Split(line, delim)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		return fields
	}
}

// eachRow opens path (plain or gzip) and calls fn with the 1-based line
// number and fields of every non-blank line.
func eachRow(path string, fn func(line int, fields []string) error) error {
	f, err := csvh.OpenMaybeGz(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := scanRows(f, fn); err != nil {
		return pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return nil
}

// scanRows is eachRow on an open stream.
func scanRows(r io.Reader, fn func(line int, fields []string) error) error {
	br := bufio.NewReaderSize(r, sampleBytes)
	// a short file returns io.EOF with whatever it holds
	sample, _ := br.Peek(sampleBytes)
	split := detectSplitter(sample)

	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := fn(line, split(text)); err != nil {
			return err
		}
	}

	return sc.Err()
}

// rowError reports a malformed row.
func rowError(line int, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %w: %s", line, ErrParse, fmt.Sprintf(format, args...))
}
