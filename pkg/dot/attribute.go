package dot

import (
	"io"
	"strconv"
	"strings"
)

// attrKind is the closed set of value shapes an attribute can take. Each
// kind has exactly one serialization rule in [Attribute.print].
type attrKind int

const (
	kindScalar     attrKind = iota // name="value"
	kindBool                       // name=true / name=false
	kindEnum                       // name="value", omitted at the enum default
	kindList                       // name="v1:v2:...:vn", omitted when empty
	kindPoint                      // name="x,y"
	kindAddScalar                  // name="+value"
	kindAddPoint                   // name="+x,y"
	kindPointList                  // name="x1,y1 x2,y2"
	kindCustom                     // name="value", both arbitrary strings
)

// Attribute is a named, typed value owned by exactly one [AttributeSet].
// The payload is captured in final form at construction: strings are escaped
// once, numbers are formatted once. Printing an attribute any number of
// times yields identical bytes.
type Attribute struct {
	name  string
	kind  attrKind
	value string
	omit  bool // enum default sentinel or empty list
}

// Name returns the attribute name as it appears in the output.
func (a Attribute) Name() string { return a.name }

// escape prepares a raw string for use inside a quoted DOT value. Embedded
// quotes become \" and newlines become the two characters \n. Called exactly
// once, when the value enters an Attribute.
func escape(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// formatFloat renders a float in locale-independent shortest decimal form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatPoint(x, y float64) string {
	return formatFloat(x) + "," + formatFloat(y)
}

func newStringAttribute(name, value string) Attribute {
	return Attribute{name: name, kind: kindScalar, value: escape(value)}
}

func newFloatAttribute(name string, value float64) Attribute {
	return Attribute{name: name, kind: kindScalar, value: formatFloat(value)}
}

func newIntAttribute(name string, value int) Attribute {
	return Attribute{name: name, kind: kindScalar, value: strconv.Itoa(value)}
}

func newBoolAttribute(name string, value bool) Attribute {
	return Attribute{name: name, kind: kindBool, value: strconv.FormatBool(value)}
}

// newEnumAttribute captures an enum value. isDefault marks the enum's
// designated default sentinel, which is never stated explicitly in output.
func newEnumAttribute(name, value string, isDefault bool) Attribute {
	return Attribute{name: name, kind: kindEnum, value: value, omit: isDefault}
}

func newListAttribute(name string, values []string) Attribute {
	return Attribute{
		name:  name,
		kind:  kindList,
		value: strings.Join(values, ":"),
		omit:  len(values) == 0,
	}
}

func newFloatListAttribute(name string, values []float64) Attribute {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return newListAttribute(name, parts)
}

func newPointAttribute(name string, x, y float64) Attribute {
	return Attribute{name: name, kind: kindPoint, value: formatPoint(x, y)}
}

func newAddFloatAttribute(name string, value float64) Attribute {
	return Attribute{name: name, kind: kindAddScalar, value: formatFloat(value)}
}

func newAddPointAttribute(name string, x, y float64) Attribute {
	return Attribute{name: name, kind: kindAddPoint, value: formatPoint(x, y)}
}

func newPointListAttribute(name string, points [][2]float64) Attribute {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = formatPoint(p[0], p[1])
	}
	return Attribute{
		name:  name,
		kind:  kindPointList,
		value: strings.Join(parts, " "),
		omit:  len(points) == 0,
	}
}

// NewCustomAttribute builds an attribute with an arbitrary name and string
// value. This is the only path for attribute names outside the documented
// catalogue. The value is escaped here, once.
func NewCustomAttribute(name, value string) Attribute {
	return Attribute{name: name, kind: kindCustom, value: escape(value)}
}

// suppressed reports whether the attribute is omitted from output entirely
// (enum default sentinel, empty list).
func (a Attribute) suppressed() bool { return a.omit }

// print writes the name=value form for this attribute's kind. The payload is
// already final; no escaping happens here.
func (a Attribute) print(w io.StringWriter) {
	switch a.kind {
	case kindBool:
		w.WriteString(a.name)
		w.WriteString("=")
		w.WriteString(a.value)
	case kindAddScalar, kindAddPoint:
		w.WriteString(a.name)
		w.WriteString(`="+`)
		w.WriteString(a.value)
		w.WriteString(`"`)
	default:
		w.WriteString(a.name)
		w.WriteString(`="`)
		w.WriteString(a.value)
		w.WriteString(`"`)
	}
}
