package pipeline

import (
	"bytes"
	"encoding/json"
	"io"

	log "github.com/sirupsen/logrus"
)

// Result is the accumulated channel -> keywords mapping. Unlike a plain
// map it keeps insertion order, so the emitted JSON object lists
// channels in processing order.
type Result struct {
	names   []string
	entries map[string][]string
}

// NewResult creates an empty result mapping.
func NewResult() *Result {
	return &Result{entries: make(map[string][]string)}
}

// Add records keywords under a channel display name. Adding the same
// name again replaces the keywords but keeps the original position.
func (r *Result) Add(name string, keywords []string) {
	if _, ok := r.entries[name]; !ok {
		r.names = append(r.names, name)
	}
	r.entries[name] = keywords
}

// Len returns the number of channels in the mapping.
func (r *Result) Len() int {
	return len(r.names)
}

// Keywords returns the keyword list for a channel display name.
func (r *Result) Keywords(name string) ([]string, bool) {
	keywords, ok := r.entries[name]
	return keywords, ok
}

// Names returns the channel display names in insertion order.
func (r *Result) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// MarshalJSON emits the mapping as a JSON object with keys in insertion
// order.
func (r *Result) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, name := range r.names {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := marshalNoEscape(name)
		if err != nil {
			return nil, err
		}
		value, err := marshalNoEscape(r.entries[name])
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, value...)
	}
	return append(buf, '}'), nil
}

// marshalNoEscape marshals without HTML escaping so keyword text passes
// through untouched.
func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Emit writes the mapping to w as pretty-printed JSON with non-ASCII
// characters preserved literally. An empty mapping is logged as an
// error and nothing is written.
func (r *Result) Emit(w io.Writer) error {
	if r.Len() == 0 {
		log.Error("no keywords extracted from any channel")
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return err
	}

	log.Infof("successfully processed %d channels", r.Len())
	return nil
}
