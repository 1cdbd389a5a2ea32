package normalize

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Probe returns the value at the first path that holds a usable value. Paths
// are gjson paths tried in the given order; the first match wins even when a
// later path holds a different value.
func Probe(doc gjson.Result, paths ...string) gjson.Result {
	return probe(doc, paths, usable)
}

// ProbeString resolves the first path holding a non-null scalar.
func ProbeString(doc gjson.Result, paths ...string) *string {
	r := probe(doc, paths, scalar)
	if !r.Exists() {
		return nil
	}
	return Text(r.String())
}

// ProbeDate resolves the first non-null scalar and normalizes it to an ISO
// date. A first match that is not a date yields nil rather than falling
// through to later paths.
func ProbeDate(doc gjson.Result, paths ...string) *string {
	s := ProbeString(doc, paths...)
	if s == nil {
		return nil
	}
	return Date(*s)
}

// ProbeRows resolves the first path holding an array or an object and returns
// its rows. found is false when none of the paths exist in that shape.
func ProbeRows(doc gjson.Result, paths ...string) (rows []gjson.Result, found bool) {
	r := probe(doc, paths, func(r gjson.Result) bool { return r.IsArray() || r.IsObject() })
	if !r.Exists() {
		return nil, false
	}
	return Rows(r), true
}

// WithData expands every path into itself followed by its variant nested
// under a top-level "data" wrapper.
func WithData(paths ...string) []string {
	out := make([]string, 0, len(paths)*2)
	for _, p := range paths {
		out = append(out, p, "data."+p)
	}
	return out
}

// Under prefixes each field with each parent, parents first, so that
// Under([]string{"a", "b"}, "x", "y") is a.x, a.y, b.x, b.y.
func Under(parents []string, fields ...string) []string {
	out := make([]string, 0, len(parents)*len(fields))
	for _, parent := range parents {
		for _, f := range fields {
			if parent == "" {
				out = append(out, f)
				continue
			}
			out = append(out, parent+"."+f)
		}
	}
	return out
}

var pathSpecial = regexp.MustCompile(`([.*?|#@\\!=<>%])`)

// Key escapes a literal object key for use inside a gjson path.
func Key(name string) string {
	return pathSpecial.ReplaceAllString(name, `\$1`)
}

func probe(doc gjson.Result, paths []string, accept func(gjson.Result) bool) gjson.Result {
	for _, p := range paths {
		if r := doc.Get(p); accept(r) {
			return r
		}
	}
	return gjson.Result{}
}

func usable(r gjson.Result) bool {
	switch {
	case !r.Exists(), r.Type == gjson.Null:
		return false
	case r.Type == gjson.String:
		return !IsNull(r.Str)
	}
	return true
}

func scalar(r gjson.Result) bool {
	return usable(r) && !r.IsArray() && !r.IsObject()
}

// Rows returns the elements of an array, or the value itself when a provider
// sends a single object where a list is expected.
func Rows(r gjson.Result) []gjson.Result {
	switch {
	case r.IsArray():
		return r.Array()
	case r.IsObject():
		return []gjson.Result{r}
	}
	return nil
}

// Fields indexes an object's members by Label(key). When two keys collapse to
// the same label the first one in document order is kept.
func Fields(row gjson.Result) map[string]gjson.Result {
	fields := make(map[string]gjson.Result)
	row.ForEach(func(key, value gjson.Result) bool {
		label := Label(key.String())
		if _, seen := fields[label]; !seen {
			fields[label] = value
		}
		return true
	})
	return fields
}

// Label lowercases a key and drops everything but letters and digits, so that
// "Business on Date", "business_on_date" and "BusinessOnDate" compare equal.
func Label(key string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(key) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Pick returns the text of the first label present with a non-null scalar.
func Pick(fields map[string]gjson.Result, labels ...string) *string {
	for _, label := range labels {
		if v, ok := fields[label]; ok && scalar(v) {
			if s := Text(v.String()); s != nil {
				return s
			}
		}
	}
	return nil
}

// PickDate is Pick followed by Date.
func PickDate(fields map[string]gjson.Result, labels ...string) *string {
	s := Pick(fields, labels...)
	if s == nil {
		return nil
	}
	return Date(*s)
}
