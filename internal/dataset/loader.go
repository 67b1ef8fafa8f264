package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

// objectPattern grabs the outermost {...} span of a line so records embedded
// in log prefixes or trailing garbage can still be recovered.
var objectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// Load reads a newline-delimited JSON file into records. A missing file is an
// empty dataset, not an error. Lines that cannot be parsed even after brace
// recovery are dropped; one bad line never rejects the rest of the corpus.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Record{}, nil
		}
		return nil, err
	}
	defer f.Close()

	records := make([]Record, 0)
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			rec, ok := parseLine(line)
			if ok {
				records = append(records, rec)
			}
			// unparseable lines are deliberately swallowed: tolerant
			// parsing per the data contract
		}
		if err != nil {
			if err == io.EOF {
				return records, nil
			}
			return nil, err
		}
	}
}

// parseLine parses one line as a JSON object, retrying on the balanced-brace
// substring when the raw line is not valid JSON on its own.
func parseLine(line string) (Record, bool) {
	var rec Record
	if err := json.Unmarshal([]byte(line), &rec); err == nil && rec != nil {
		return rec, true
	}
	if m := objectPattern.FindString(line); m != "" {
		rec = nil
		if err := json.Unmarshal([]byte(m), &rec); err == nil && rec != nil {
			return rec, true
		}
	}
	return nil, false
}
