package dot

import "io"

// AttributeSet is an insertion-ordered sequence of attributes scoped to one
// entity. Order is preserved and is print order. Setting the same attribute
// twice appends a second entry; Graphviz applies the later one.
type AttributeSet struct {
	attrs []Attribute
}

// Add appends an attribute to the set.
func (s *AttributeSet) Add(a Attribute) {
	s.attrs = append(s.attrs, a)
}

// SetCustom appends an attribute with an arbitrary name and string value.
// This is the entry point for attribute names outside the typed catalogue.
func (s *AttributeSet) SetCustom(name, value string) {
	s.Add(NewCustomAttribute(name, value))
}

// Len returns the number of attributes in the set, including entries that
// are suppressed in output (enum defaults, empty lists).
func (s *AttributeSet) Len() int { return len(s.attrs) }

// Empty reports whether printing the set would produce no output.
func (s *AttributeSet) Empty() bool {
	for _, a := range s.attrs {
		if !a.suppressed() {
			return false
		}
	}
	return true
}

// print writes the comma-separated a_list form, without brackets.
// Suppressed entries are skipped entirely.
func (s *AttributeSet) print(w io.StringWriter) {
	s.printWith(w)
}

// printWith behaves like print but with extra attributes appended after the
// owned entries. Used for transient label injection at print time.
func (s *AttributeSet) printWith(w io.StringWriter, extra ...Attribute) {
	first := true
	emit := func(a Attribute) {
		if a.suppressed() {
			return
		}
		if !first {
			w.WriteString(", ")
		}
		a.print(w)
		first = false
	}
	for _, a := range s.attrs {
		emit(a)
	}
	for _, a := range extra {
		emit(a)
	}
}

// Typed add helpers shared by the setter catalogues.

func (s *AttributeSet) addString(name, val string)        { s.Add(newStringAttribute(name, val)) }
func (s *AttributeSet) addFloat(name string, val float64) { s.Add(newFloatAttribute(name, val)) }
func (s *AttributeSet) addInt(name string, val int)       { s.Add(newIntAttribute(name, val)) }
func (s *AttributeSet) addBool(name string, val bool)     { s.Add(newBoolAttribute(name, val)) }

func (s *AttributeSet) addEnum(name, val string, isDefault bool) {
	s.Add(newEnumAttribute(name, val, isDefault))
}

func (s *AttributeSet) addList(name string, vals []string) {
	s.Add(newListAttribute(name, vals))
}

func (s *AttributeSet) addFloatList(name string, vals []float64) {
	s.Add(newFloatListAttribute(name, vals))
}

func (s *AttributeSet) addPoint(name string, x, y float64) {
	s.Add(newPointAttribute(name, x, y))
}

func (s *AttributeSet) addAddFloat(name string, val float64) {
	s.Add(newAddFloatAttribute(name, val))
}

func (s *AttributeSet) addAddPoint(name string, x, y float64) {
	s.Add(newAddPointAttribute(name, x, y))
}

func (s *AttributeSet) addPointList(name string, pts [][2]float64) {
	s.Add(newPointListAttribute(name, pts))
}
