package dot

// EdgeAttributes is the typed setter catalogue for edge attributes, used
// both on individual edges and as a scope's default-edge collection.
type EdgeAttributes struct {
	AttributeSet
}

// SetURL attaches a hyperlink to the edge in supporting formats.
func (s *EdgeAttributes) SetURL(val string) { s.addString("URL", val) }

// SetArrowHead sets the glyph drawn at the head of the edge.
func (s *EdgeAttributes) SetArrowHead(val ArrowType) {
	s.addEnum("arrowhead", val.String(), val == ArrowDefault)
}

// SetArrowTail sets the glyph drawn at the tail of the edge.
func (s *EdgeAttributes) SetArrowTail(val ArrowType) {
	s.addEnum("arrowtail", val.String(), val == ArrowDefault)
}

// SetArrowSize sets the multiplicative scale of arrowheads.
func (s *EdgeAttributes) SetArrowSize(val float64) { s.addFloat("arrowsize", val) }

// SetColor sets the edge line color.
func (s *EdgeAttributes) SetColor(val Color) {
	s.addEnum("color", val.String(), val == ColorDefault)
}

// SetColorList draws parallel edge lines in multiple colors.
func (s *EdgeAttributes) SetColorList(vals []Color) {
	s.addList("color", colorList(vals))
}

// SetComment inserts a device-dependent comment into the output.
func (s *EdgeAttributes) SetComment(val string) { s.addString("comment", val) }

// SetConstraint includes the edge in rank assignment when true (default).
func (s *EdgeAttributes) SetConstraint(val bool) { s.addBool("constraint", val) }

// SetDecorate connects the edge label to the edge with a line when true.
func (s *EdgeAttributes) SetDecorate(val bool) { s.addBool("decorate", val) }

// SetDir sets which ends of the edge carry arrowheads.
func (s *EdgeAttributes) SetDir(val DirType) {
	s.addEnum("dir", val.String(), val == DirDefault)
}

// SetFontColor sets the color used for the edge label.
func (s *EdgeAttributes) SetFontColor(val Color) {
	s.addEnum("fontcolor", val.String(), val == ColorDefault)
}

// SetFontName sets the font used for the edge label.
func (s *EdgeAttributes) SetFontName(val string) { s.addString("fontname", val) }

// SetFontSize sets the label font size in points.
func (s *EdgeAttributes) SetFontSize(val float64) { s.addFloat("fontsize", val) }

// SetHeadClip clips the edge to the boundary of the head node when true.
func (s *EdgeAttributes) SetHeadClip(val bool) { s.addBool("headclip", val) }

// SetHeadLabel sets text placed near the head of the edge.
func (s *EdgeAttributes) SetHeadLabel(val string) { s.addString("headlabel", val) }

// SetHeadPort names the port on the head node the edge attaches to.
func (s *EdgeAttributes) SetHeadPort(val string) { s.addString("headport", val) }

// SetLabelAngle sets the angle of head/tail labels relative to the edge.
func (s *EdgeAttributes) SetLabelAngle(val float64) { s.addFloat("labelangle", val) }

// SetLabelDistance scales the distance of head/tail labels from the node.
func (s *EdgeAttributes) SetLabelDistance(val float64) { s.addFloat("labeldistance", val) }

// SetLabelFloat allows the edge label to be placed less carefully.
func (s *EdgeAttributes) SetLabelFloat(val bool) { s.addBool("labelfloat", val) }

// SetLabelFontColor sets the color of head/tail labels.
func (s *EdgeAttributes) SetLabelFontColor(val Color) {
	s.addEnum("labelfontcolor", val.String(), val == ColorDefault)
}

// SetLabelFontName sets the font of head/tail labels.
func (s *EdgeAttributes) SetLabelFontName(val string) { s.addString("labelfontname", val) }

// SetLabelFontSize sets the font size of head/tail labels, in points.
func (s *EdgeAttributes) SetLabelFontSize(val float64) { s.addFloat("labelfontsize", val) }

// SetLen sets the preferred edge length in inches.
func (s *EdgeAttributes) SetLen(val float64) { s.addFloat("len", val) }

// SetLHead clips the head of the edge to the named cluster boundary.
// Requires compound=true on the root graph.
func (s *EdgeAttributes) SetLHead(val string) { s.addString("lhead", val) }

// SetLTail clips the tail of the edge to the named cluster boundary.
func (s *EdgeAttributes) SetLTail(val string) { s.addString("ltail", val) }

// SetMinLen sets the minimum edge length in rank units.
func (s *EdgeAttributes) SetMinLen(val int) { s.addInt("minlen", val) }

// SetNoJustify keeps multi-line labels left-justified when true.
func (s *EdgeAttributes) SetNoJustify(val bool) { s.addBool("nojustify", val) }

// SetPenWidth sets the width of the edge pen, in points.
func (s *EdgeAttributes) SetPenWidth(val float64) { s.addFloat("penwidth", val) }

// SetStyle sets the edge drawing style.
func (s *EdgeAttributes) SetStyle(val EdgeStyle) {
	s.addEnum("style", val.String(), val == EdgeStyleDefault)
}

// SetTailClip clips the edge to the boundary of the tail node when true.
func (s *EdgeAttributes) SetTailClip(val bool) { s.addBool("tailclip", val) }

// SetTailLabel sets text placed near the tail of the edge.
func (s *EdgeAttributes) SetTailLabel(val string) { s.addString("taillabel", val) }

// SetTailPort names the port on the tail node the edge attaches to.
func (s *EdgeAttributes) SetTailPort(val string) { s.addString("tailport", val) }

// SetTarget sets the browser window used for the edge URL.
func (s *EdgeAttributes) SetTarget(val string) { s.addString("target", val) }

// SetTooltip sets the tooltip shown on hover in svg and cmap output.
func (s *EdgeAttributes) SetTooltip(val string) { s.addString("tooltip", val) }

// SetWeight scales the importance of keeping the edge short and straight.
func (s *EdgeAttributes) SetWeight(val float64) { s.addFloat("weight", val) }

// SetXLabel sets an external label placed near the edge.
func (s *EdgeAttributes) SetXLabel(val string) { s.addString("xlabel", val) }
