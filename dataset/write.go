package dataset

import (
	"bufio"
	"io"

	"github.com/carbocation/pfx"
	"github.com/jgbaldwinbrown/csvh"
)

// WriteIDs writes one ID per line to path, gzip-compressed when path ends
// in .gz. Each group is written in order, so callers can pass the accepted
// tiers followed by the strictly unrelated set.
func WriteIDs(path string, groups ...[]string) (err error) {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return pfx.Err(e)
	}
	defer func() { csvh.DeferE(&err, w.Close()) }()

	return WriteIDsTo(w, groups...)
}

// WriteIDsTo is WriteIDs on an open stream.
func WriteIDsTo(w io.Writer, groups ...[]string) error {
	bw := bufio.NewWriter(w)
	for _, ids := range groups {
		for _, id := range ids {
			if _, err := bw.WriteString(id); err != nil {
				return pfx.Err(err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return pfx.Err(err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
