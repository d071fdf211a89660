package spadeio

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailspade/spade/mining"
)

var outHeader = []string{"pattern_len", "num_elts", "tidlist_len", "sup", "pattern"}

// OutWriter is a mining.DiscoverySink that appends one CSV row per
// discovery to an OUT file, writing the header on creation.
type OutWriter struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// NewOutWriter creates (truncating) the file at path and writes the OUT
// header row.
func NewOutWriter(path string) (*OutWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.E(err, "couldn't create OUT file:", path)
	}
	w := csv.NewWriter(f)
	if err := w.Write(outHeader); err != nil {
		f.Close()
		return nil, errors.E(err, "error writing OUT header:", path)
	}
	return &OutWriter{path: path, f: f, w: w}, nil
}

// OnDiscover appends one row for d. It satisfies mining.DiscoverySink.
func (o *OutWriter) OnDiscover(d mining.Discovery) error {
	row := []string{
		strconv.Itoa(d.Length),
		strconv.Itoa(d.Elts),
		strconv.Itoa(d.TidListLen),
		strconv.Itoa(d.Sup),
		d.Pattern.Format(),
	}
	if err := o.w.Write(row); err != nil {
		return errors.E(err, "error writing OUT row:", o.path)
	}
	return nil
}

// Close flushes buffered rows and closes the underlying file.
func (o *OutWriter) Close() (err error) {
	o.w.Flush()
	if ferr := o.w.Error(); ferr != nil && err == nil {
		err = errors.E(ferr, "error flushing OUT file:", o.path)
	}
	if cerr := o.f.Close(); cerr != nil && err == nil {
		err = errors.E(cerr, "error closing OUT file:", o.path)
	}
	return err
}
