package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// writeJSON writes v as indented JSON. A non empty path selects a part of the
// document with a JSONPath expression such as "$.cashflows[*].amount".
func writeJSON(w io.Writer, v any, path string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if path != "" {
		var jobj any
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&jobj); err != nil {
			return err
		}
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			return fmt.Errorf("invalid query %q: %w", path, err)
		}
		// jsonpath returns a list for wildcards and filters, a single match
		// is printed as is.
		if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
			jval = jlist[0]
		}
		if data, err = json.Marshal(jval); err != nil {
			return err
		}
	}
	var b bytes.Buffer
	if err := json.Indent(&b, data, "", "  "); err != nil {
		return err
	}
	b.WriteByte('\n')
	_, err = b.WriteTo(w)
	return err
}
