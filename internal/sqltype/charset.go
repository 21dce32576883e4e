package sqltype

import (
	"strings"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultCharsetName is the process-wide default until SetDefaultCharset is
// called.
const DefaultCharsetName = "ISO-8859-1"

// Charset is a character set attached to a character-family descriptor.
// Name keeps the spelling used in SQL text; Canonical is the IANA name.
type Charset struct {
	Name      string
	Canonical string
}

// IsZero reports whether no charset is attached.
func (c Charset) IsZero() bool {
	return c == Charset{}
}

func (c Charset) String() string {
	return c.Name
}

// sqlCharsetAliases are spellings common in SQL text that the IANA index
// does not register. The HTML index would map them to a different charset.
var sqlCharsetAliases = map[string]string{
	"ascii": "US-ASCII",
}

// LookupCharset resolves name through the IANA charset index, then through
// the WHATWG (HTML) index, which knows spellings such as utf8.
func LookupCharset(name string) (Charset, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Charset{}, &UnsupportedCharsetError{Name: name}
	}
	enc := lookupEncoding(trimmed)
	if enc == nil {
		return Charset{}, &UnsupportedCharsetError{Name: name}
	}
	canonical, err := canonicalName(enc)
	if err != nil {
		return Charset{}, &UnsupportedCharsetError{Name: name}
	}
	return Charset{Name: trimmed, Canonical: canonical}, nil
}

// lookupEncoding returns nil when name is unknown or names a registered but
// unsupported charset.
func lookupEncoding(name string) encoding.Encoding {
	if alias, ok := sqlCharsetAliases[strings.ToLower(name)]; ok {
		name = alias
	}
	// IANA first: the HTML index maps latin1 to windows-1252
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc
	}
	if enc, err := htmlindex.Get(name); err == nil && enc != nil {
		return enc
	}
	return nil
}

// canonicalName prefers the MIME name of enc and falls back to its IANA
// registry name.
func canonicalName(enc encoding.Encoding) (string, error) {
	if name, err := ianaindex.MIME.Name(enc); err == nil && name != "" {
		return name, nil
	}
	return ianaindex.IANA.Name(enc)
}

var (
	defaultCharset   Charset
	defaultCharsetMu sync.RWMutex
)

func init() {
	cs, err := LookupCharset(DefaultCharsetName)
	if err != nil {
		cs = Charset{Name: DefaultCharsetName, Canonical: DefaultCharsetName}
	}
	defaultCharset = cs
}

// DefaultCharset returns the process-wide default charset.
func DefaultCharset() Charset {
	defaultCharsetMu.RLock()
	defer defaultCharsetMu.RUnlock()
	return defaultCharset
}

// SetDefaultCharset replaces the process-wide default charset.
func SetDefaultCharset(name string) error {
	cs, err := LookupCharset(name)
	if err != nil {
		return err
	}
	defaultCharsetMu.Lock()
	defer defaultCharsetMu.Unlock()
	defaultCharset = cs
	return nil
}
