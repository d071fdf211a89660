package spaderecord

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// ReadCSV reads the CSV record format: a header row `sid,eid,items`
// followed by one data row per event, with items whitespace-separated
// within the items field (e.g. "a b c"). Returned records are sorted by
// (Sid, Eid) and validated per Validate.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv header")
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, want := range []string{"sid", "eid", "items"} {
		if _, ok := col[want]; !ok {
			return nil, errMalformed("csv header missing column " + want)
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading csv row")
		}
		sid, err := strconv.Atoi(row[col["sid"]])
		if err != nil {
			return nil, errMalformed("non-integer sid " + row[col["sid"]])
		}
		eid, err := strconv.Atoi(row[col["eid"]])
		if err != nil {
			return nil, errMalformed("non-integer eid " + row[col["eid"]])
		}
		raw := strings.TrimSpace(row[col["items"]])
		if raw == "" {
			return nil, errMalformed("empty items field")
		}
		records = append(records, Record{Sid: sid, Eid: eid, Items: canonicalItems(strings.Fields(raw))})
	}

	sortRecords(records)
	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadCSVFile is ReadCSV over the file at path, transparently gzip
// decompressing when fileio.DetermineType recognizes a gzip extension.
func ReadCSVFile(path string) ([]Record, error) {
	return readFile(path, ReadCSV)
}

func readFile(path string, read func(io.Reader) ([]Record, error)) (records []Record, err error) {
	ctx := vcontext.Background()
	var f file.File
	if f, err = file.Open(ctx, path); err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer func() {
		if cerr := f.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()

	reader := io.Reader(f.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, gerr := gzip.NewReader(reader)
		if gerr != nil {
			return nil, errors.Wrapf(gerr, "opening gzip reader for %s", path)
		}
		reader = gz
	}
	return read(reader)
}
