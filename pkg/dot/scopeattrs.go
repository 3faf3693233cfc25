package dot

// SubgraphAttributes is the typed setter catalogue for plain (non-cluster)
// subgraph scopes. Plain subgraphs exist mainly to group nodes for rank
// constraints, so the catalogue is small.
type SubgraphAttributes struct {
	AttributeSet
}

// SetRank constrains the rank assignment of all nodes in the subgraph.
func (s *SubgraphAttributes) SetRank(val RankType) {
	s.addEnum("rank", val.String(), val == RankDefault)
}

// ClusterAttributes is the typed setter catalogue for cluster scopes.
type ClusterAttributes struct {
	AttributeSet
}

// SetURL attaches a hyperlink to the cluster in supporting formats.
func (s *ClusterAttributes) SetURL(val string) { s.addString("URL", val) }

// SetBGColor sets the initial background color of the cluster.
func (s *ClusterAttributes) SetBGColor(val Color) {
	s.addEnum("bgcolor", val.String(), val == ColorDefault)
}

// SetColor sets the color of the cluster boundary.
func (s *ClusterAttributes) SetColor(val Color) {
	s.addEnum("color", val.String(), val == ColorDefault)
}

// SetFillColor sets the cluster fill color when its style is filled.
func (s *ClusterAttributes) SetFillColor(val Color) {
	s.addEnum("fillcolor", val.String(), val == ColorDefault)
}

// SetFontColor sets the color used for the cluster label.
func (s *ClusterAttributes) SetFontColor(val Color) {
	s.addEnum("fontcolor", val.String(), val == ColorDefault)
}

// SetFontName sets the font used for the cluster label.
func (s *ClusterAttributes) SetFontName(val string) { s.addString("fontname", val) }

// SetFontSize sets the label font size in points.
func (s *ClusterAttributes) SetFontSize(val float64) { s.addFloat("fontsize", val) }

// SetGradientAngle sets the angle of a gradient fill.
func (s *ClusterAttributes) SetGradientAngle(val int) { s.addInt("gradientangle", val) }

// SetLabelJust sets the justification of the cluster label.
func (s *ClusterAttributes) SetLabelJust(val Justification) {
	s.addEnum("labeljust", val.String(), val == JustifyDefault)
}

// SetLabelLoc sets the vertical placement of the cluster label.
func (s *ClusterAttributes) SetLabelLoc(val LabelLoc) {
	s.addEnum("labelloc", val.String(), val == LabelLocDefault)
}

// SetMargin sets the space between the cluster boundary and its contents.
func (s *ClusterAttributes) SetMargin(val float64) { s.addFloat("margin", val) }

// SetNoJustify keeps multi-line labels left-justified when true.
func (s *ClusterAttributes) SetNoJustify(val bool) { s.addBool("nojustify", val) }

// SetPenColor sets the color of the cluster boundary pen.
func (s *ClusterAttributes) SetPenColor(val Color) {
	s.addEnum("pencolor", val.String(), val == ColorDefault)
}

// SetPenWidth sets the width of the boundary pen, in points.
func (s *ClusterAttributes) SetPenWidth(val float64) { s.addFloat("penwidth", val) }

// SetPeripheries sets the number of cluster boundaries.
func (s *ClusterAttributes) SetPeripheries(val int) { s.addInt("peripheries", val) }

// SetRank constrains the rank assignment of all nodes in the cluster.
func (s *ClusterAttributes) SetRank(val RankType) {
	s.addEnum("rank", val.String(), val == RankDefault)
}

// SetStyle sets the cluster drawing style.
func (s *ClusterAttributes) SetStyle(val NodeStyle) {
	s.addEnum("style", val.String(), val == NodeStyleDefault)
}

// SetTooltip sets the tooltip shown on hover in svg and cmap output.
func (s *ClusterAttributes) SetTooltip(val string) { s.addString("tooltip", val) }
