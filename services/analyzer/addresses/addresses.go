package addresses

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
)

// Load reads the campus roster CSV and returns the values of its "address"
// column (matched case-insensitively). A file without that column yields an
// empty roster, not an error; the operator simply gets no pre-filled list.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

func read(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "address") {
			col = i
			break
		}
	}
	if col == -1 {
		return []string{}, nil
	}

	out := []string{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if col >= len(record) {
			continue
		}
		if addr := strings.TrimSpace(record[col]); addr != "" {
			out = append(out, addr)
		}
	}
	return out, nil
}
