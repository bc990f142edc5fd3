package csvdb

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// labels the WHATWG index does not know but Korean public data uses.
var encodingAliases = map[string]string{
	"utf8":  "utf-8",
	"cp949": "windows-949",
	"ms949": "windows-949",
	"uhc":   "windows-949",
}

// LookupEncoding resolves an encoding label ("utf-8", "euc-kr", "cp949").
// An empty label means UTF-8.
func LookupEncoding(label string) (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(label))
	if name == "" {
		name = cDefaultEncoding
	}
	if alias, ok := encodingAliases[name]; ok {
		name = alias
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "no decoder for encoding %q", label)
	}
	return enc, nil
}

// newDecoder decodes enc and drops a leading byte order mark. A BOM wins
// over the configured encoding.
func newDecoder(label string) (transform.Transformer, error) {
	enc, err := LookupEncoding(label)
	if err != nil {
		return nil, err
	}
	return unicode.BOMOverride(enc.NewDecoder()), nil
}
