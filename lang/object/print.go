package object

import (
	"fmt"
	"strconv"
	"strings"
)

// Display returns the `=` (human-readable) form of o.
func Display(o Object) string {
	switch o.Tag {
	case TagInt:
		return strconv.Itoa(int(o.Int))
	case TagReal:
		return formatReal(o.Real)
	case TagBool:
		return strconv.FormatBool(o.Bool)
	case TagNull:
		return "null"
	case TagMark:
		return "mark"
	case TagName:
		return o.NameV
	case TagString:
		return string(o.Str.Bytes())
	case TagArray:
		return syntaxArray(o, Display)
	case TagDict:
		return "-dict-"
	case TagOperator:
		return "--" + o.Op.Name + "--"
	case TagSave:
		return "-save-"
	case TagFile:
		return "-file-"
	}
	return "-invalid-"
}

// Syntax returns the `==` (syntactic, round-trippable) form of o.
func Syntax(o Object) string {
	switch o.Tag {
	case TagInt:
		return strconv.Itoa(int(o.Int))
	case TagReal:
		return formatReal(o.Real)
	case TagBool:
		return strconv.FormatBool(o.Bool)
	case TagNull:
		return "null"
	case TagMark:
		return "-mark-"
	case TagName:
		if o.Literal {
			return "/" + o.NameV
		}
		return o.NameV
	case TagString:
		return syntaxString(o.Str.Bytes())
	case TagArray:
		return syntaxArray(o, Syntax)
	case TagDict:
		return "-dict-"
	case TagOperator:
		return "--" + o.Op.Name + "--"
	case TagSave:
		return "-save-"
	case TagFile:
		return "-file-"
	}
	return "-invalid-"
}

func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// PostScript reals always show a decimal point or exponent, e.g. "50.0"
	// rather than Go's bare "50".
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func syntaxArray(o Object, form func(Object) string) string {
	open, close := "[", "]"
	if !o.Literal {
		open, close = "{", "}"
	}
	var b strings.Builder
	b.WriteString(open)
	for i := 0; i < o.Arr.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(form(o.Arr.At(i)))
	}
	b.WriteString(close)
	return b.String()
}

// syntaxString escapes a byte string the way `==` does: backslash-escape
// parens and backslashes, standard C escapes for \n\t\r, octal \NNN for
// other bytes below 0x20.
func syntaxString(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, c := range b {
		switch c {
		case '(', ')', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if c < 0x20 {
				sb.WriteString(fmt.Sprintf(`\%03o`, c))
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
