package main

import (
	"strings"

	"github.com/tidwall/sjson"

	"github.com/dshills/wininf"
)

// jsonEntry mirrors one directive in the rendered document.
type jsonEntry struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}

// pathEscaper escapes characters that are path syntax to sjson/gjson,
// since INF section names routinely contain dots.
var pathEscaper = strings.NewReplacer(
	".", `\.`,
	"*", `\*`,
	"?", `\?`,
	"|", `\|`,
)

// renderJSON renders a document as a JSON object mapping section names
// to arrays of entries, section names sorted for stable output.
func renderJSON(doc *wininf.Document) ([]byte, error) {
	out := []byte(`{}`)
	var err error
	for _, name := range sortedNames(doc) {
		path := pathEscaper.Replace(name)
		out, err = sjson.SetRawBytes(out, path, []byte(`[]`))
		if err != nil {
			return nil, err
		}
		for _, e := range doc.Sections[name].Entries {
			var je jsonEntry
			switch e := e.(type) {
			case wininf.KeyValue:
				je = jsonEntry{Key: e.Key, Value: valueText(e.Value)}
			case wininf.OnlyValue:
				je = jsonEntry{Value: valueText(e.Value)}
			}
			out, err = sjson.SetBytes(out, path+".-1", je)
			if err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func valueText(v wininf.Value) string {
	switch v := v.(type) {
	case wininf.Raw:
		return string(v)
	case wininf.List:
		return strings.Join(v, ",")
	case wininf.CommaSeparated:
		return strings.Join(v, ",")
	default:
		return ""
	}
}
