package spaderecord

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadSPMF reads the SPMF sequence-database format: items are tokens,
// "-1" ends an event, "-2" ends a sequence. Blank lines and lines starting
// with "#" are skipped. One line holds one sequence; its events are
// numbered 1, 2, ... in the order "-1" (or a closing "-2") terminates
// them. Returned records
// are sorted by (Sid, Eid) and validated per Validate.
func ReadSPMF(r io.Reader) ([]Record, error) {
	var records []Record
	sid := 1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var current []string
		eid := 1
		hadAny := false
		for _, tok := range strings.Fields(line) {
			switch tok {
			case "-1":
				if len(current) > 0 {
					records = append(records, Record{Sid: sid, Eid: eid, Items: canonicalItems(current)})
					eid++
					current = nil
					hadAny = true
				}
			case "-2":
				if len(current) > 0 {
					records = append(records, Record{Sid: sid, Eid: eid, Items: canonicalItems(current)})
					current = nil
					hadAny = true
				}
				if hadAny {
					sid++
				}
				eid = 1
				hadAny = false
			default:
				current = append(current, tok)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading spmf input")
	}

	sortRecords(records)
	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadSPMFFile is ReadSPMF over the file at path, transparently gzip
// decompressing when fileio.DetermineType recognizes a gzip extension.
func ReadSPMFFile(path string) ([]Record, error) {
	return readFile(path, ReadSPMF)
}
