// Package fields substitutes ProjectData values into display strings,
// falling back to each field's literal whenever a value is missing.
package fields

import (
	"fmt"
	"strings"

	"github.com/realty-decks/deck-backend/internal/deck/domain"
)

// Placeholder is shown when a field has no value and no fallback literal.
const Placeholder = "—"

// Extra keys resolvable in templates besides ProjectData fields.
const (
	KeyCompanyName = "companyName"
	KeyGeneratedOn = "generatedOn"
)

// Resolve returns the trimmed value of f, or its fallback literal. The
// result is never empty.
func Resolve(data domain.ProjectData, f domain.Field) string {
	if v := strings.TrimSpace(data.Get(f)); v != "" {
		return v
	}
	return Fallback(f)
}

// Values is the lookup scope for templates: the project record plus keys
// that live outside it, such as the brand's companyName.
type Values struct {
	Data  domain.ProjectData
	Extra map[string]string
}

func NewValues(data domain.ProjectData, companyName string) Values {
	return Values{Data: data, Extra: map[string]string{KeyCompanyName: companyName}}
}

// lookup reports the value for key and whether key names a bindable field.
func (v Values) lookup(key string) (string, bool) {
	if f, ok := domain.LookupField(key); ok {
		return strings.TrimSpace(v.Data.Get(f)), true
	}
	if val, ok := v.Extra[key]; ok {
		return strings.TrimSpace(val), true
	}
	return "", false
}

// First returns the first non-blank value among keys, or "".
func (v Values) First(keys ...string) string {
	for _, k := range keys {
		if val, _ := v.lookup(k); val != "" {
			return val
		}
	}
	return ""
}

// Expand interpolates {a|b} placeholders. The first key holding a value
// wins. When none does, a chain that names a field renders the fallback of
// its first field; a chain of extra keys renders its trailing literal, if
// any, else Placeholder. Text outside braces, and an unterminated '{', are
// copied verbatim.
func Expand(tmpl string, v Values) string {
	var b strings.Builder
	b.Grow(len(tmpl))
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			b.WriteString(tmpl)
			break
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			b.WriteString(tmpl)
			break
		}
		b.WriteString(tmpl[:open])
		b.WriteString(resolvePlaceholder(tmpl[open+1:open+end], v))
		tmpl = tmpl[open+end+1:]
	}
	return b.String()
}

func resolvePlaceholder(expr string, v Values) string {
	var (
		primary    domain.Field
		hasPrimary bool
		literal    string
	)
	for _, seg := range strings.Split(expr, "|") {
		key := strings.TrimSpace(seg)
		val, isKey := v.lookup(key)
		if !isKey {
			if literal == "" {
				literal = seg
			}
			continue
		}
		if val != "" {
			return val
		}
		if f, ok := domain.LookupField(key); ok && !hasPrimary {
			primary, hasPrimary = f, true
		}
	}
	switch {
	case hasPrimary:
		return Fallback(primary)
	case literal != "":
		return literal
	default:
		return Placeholder
	}
}

// Placeholders lists the key chains of every placeholder in tmpl.
func Placeholders(tmpl string) [][]string {
	var out [][]string
	for {
		open := strings.IndexByte(tmpl, '{')
		if open < 0 {
			return out
		}
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			return out
		}
		var chain []string
		for _, seg := range strings.Split(tmpl[open+1:open+end], "|") {
			chain = append(chain, strings.TrimSpace(seg))
		}
		out = append(out, chain)
		tmpl = tmpl[open+end+1:]
	}
}

// CheckTemplate rejects placeholders that pair a field with an inline
// literal, since the field's table literal would silently win, and keys
// that resolve to nothing.
func CheckTemplate(tmpl string) error {
	for _, chain := range Placeholders(tmpl) {
		var field, literal string
		for _, key := range chain {
			switch {
			case isField(key):
				if field == "" {
					field = key
				}
			case key == KeyCompanyName || key == KeyGeneratedOn:
			default:
				literal = key
			}
		}
		if field != "" && literal != "" {
			return fmt.Errorf("placeholder {%s}: literal %q next to field %s", strings.Join(chain, "|"), literal, field)
		}
		if field == "" && literal == "" && len(chain) == 1 && chain[0] == "" {
			return fmt.Errorf("empty placeholder {}")
		}
	}
	return nil
}

func isField(key string) bool {
	_, ok := domain.LookupField(key)
	return ok
}

// Present reports whether key currently holds a value. Optional regions use
// it to decide whether they render at all.
func Present(key string, v Values) bool {
	val, _ := v.lookup(key)
	return val != ""
}

// SplitList splits a comma separated value, trims items, drops blanks and
// keeps at most max items (max <= 0 keeps all).
func SplitList(value string, max int) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}
