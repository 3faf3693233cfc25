package dot

// NodeAttributes is the typed setter catalogue for node attributes, used
// both on individual nodes and as a scope's default-node collection.
type NodeAttributes struct {
	AttributeSet
}

// SetURL attaches a hyperlink to the node in supporting formats.
func (s *NodeAttributes) SetURL(val string) { s.addString("URL", val) }

// SetColor sets the color of the node outline.
func (s *NodeAttributes) SetColor(val Color) {
	s.addEnum("color", val.String(), val == ColorDefault)
}

// SetColorList sets a gradient outline from a color list.
func (s *NodeAttributes) SetColorList(vals []Color) {
	s.addList("color", colorList(vals))
}

// SetComment inserts a device-dependent comment into the output.
func (s *NodeAttributes) SetComment(val string) { s.addString("comment", val) }

// SetDistortion sets the distortion factor for polygon shapes.
func (s *NodeAttributes) SetDistortion(val float64) { s.addFloat("distortion", val) }

// SetFillColor sets the fill color when the node style is filled.
func (s *NodeAttributes) SetFillColor(val Color) {
	s.addEnum("fillcolor", val.String(), val == ColorDefault)
}

// SetFixedSize keeps width and height fixed regardless of label size.
func (s *NodeAttributes) SetFixedSize(val bool) { s.addBool("fixedsize", val) }

// SetFontColor sets the color used for the node label.
func (s *NodeAttributes) SetFontColor(val Color) {
	s.addEnum("fontcolor", val.String(), val == ColorDefault)
}

// SetFontName sets the font used for the node label.
func (s *NodeAttributes) SetFontName(val string) { s.addString("fontname", val) }

// SetFontSize sets the label font size in points.
func (s *NodeAttributes) SetFontSize(val float64) { s.addFloat("fontsize", val) }

// SetGradientAngle sets the angle of a gradient fill.
func (s *NodeAttributes) SetGradientAngle(val int) { s.addInt("gradientangle", val) }

// SetGroup names a group; dot favors straight edges within a group.
func (s *NodeAttributes) SetGroup(val string) { s.addString("group", val) }

// SetHeight sets the initial node height in inches.
func (s *NodeAttributes) SetHeight(val float64) { s.addFloat("height", val) }

// SetImage gives the name of an image file displayed inside the node.
func (s *NodeAttributes) SetImage(val string) { s.addString("image", val) }

// SetLabelLoc sets the vertical placement of the node label.
func (s *NodeAttributes) SetLabelLoc(val LabelLoc) {
	s.addEnum("labelloc", val.String(), val == LabelLocDefault)
}

// SetMargin sets the space around the node label.
func (s *NodeAttributes) SetMargin(x, y float64) { s.addPoint("margin", x, y) }

// SetNoJustify keeps multi-line labels left-justified when true.
func (s *NodeAttributes) SetNoJustify(val bool) { s.addBool("nojustify", val) }

// SetOrientation rotates polygon shapes by the given angle in degrees.
func (s *NodeAttributes) SetOrientation(val float64) { s.addFloat("orientation", val) }

// SetPenWidth sets the width of the outline pen, in points.
func (s *NodeAttributes) SetPenWidth(val float64) { s.addFloat("penwidth", val) }

// SetPeripheries sets the number of outline boundaries.
func (s *NodeAttributes) SetPeripheries(val int) { s.addInt("peripheries", val) }

// SetPos pins the node position, in points.
func (s *NodeAttributes) SetPos(x, y float64) { s.addPoint("pos", x, y) }

// SetRegular forces the polygon to be regular when true.
func (s *NodeAttributes) SetRegular(val bool) { s.addBool("regular", val) }

// SetShape sets the node shape.
func (s *NodeAttributes) SetShape(val NodeShape) {
	s.addEnum("shape", val.String(), val == ShapeDefault)
}

// SetSides sets the number of sides for polygon shapes.
func (s *NodeAttributes) SetSides(val int) { s.addInt("sides", val) }

// SetSkew sets the skew factor for polygon shapes.
func (s *NodeAttributes) SetSkew(val float64) { s.addFloat("skew", val) }

// SetSortV sets the sort order of the node within its graph component.
func (s *NodeAttributes) SetSortV(val int) { s.addInt("sortv", val) }

// SetStyle sets the node drawing style.
func (s *NodeAttributes) SetStyle(val NodeStyle) {
	s.addEnum("style", val.String(), val == NodeStyleDefault)
}

// SetStyleList sets multiple drawing styles, e.g. rounded and filled.
func (s *NodeAttributes) SetStyleList(vals []NodeStyle) {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = v.String()
	}
	s.addList("style", strs)
}

// SetTarget sets the browser window used for the node URL.
func (s *NodeAttributes) SetTarget(val string) { s.addString("target", val) }

// SetTooltip sets the tooltip shown on hover in svg and cmap output.
func (s *NodeAttributes) SetTooltip(val string) { s.addString("tooltip", val) }

// SetWidth sets the initial node width in inches.
func (s *NodeAttributes) SetWidth(val float64) { s.addFloat("width", val) }

// SetXLabel sets an external label placed outside the node.
func (s *NodeAttributes) SetXLabel(val string) { s.addString("xlabel", val) }
