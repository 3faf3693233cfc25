package dot

import "github.com/matzehuels/dotkit/pkg/errors"

// Attribute setter catalogues. Each setter is a one-line bridge into the
// attribute value model; descriptions are condensed from the Graphviz
// attribute reference (https://graphviz.org/doc/info/attrs.html).

// maxDim is the dimension ceiling Graphviz imposes on dim/dimen.
const maxDim = 10

// GraphAttributes is the typed setter catalogue for graph-level attributes
// on the document root.
type GraphAttributes struct {
	AttributeSet
}

// SetDamping sets the factor damping force motions in force-directed layouts.
func (s *GraphAttributes) SetDamping(val float64) { s.addFloat("Damping", val) }

// SetK sets the spring constant used in the virtual physical model.
func (s *GraphAttributes) SetK(val float64) { s.addFloat("K", val) }

// SetURL attaches a hyperlink to the root graph in supporting formats.
func (s *GraphAttributes) SetURL(val string) { s.addString("URL", val) }

// SetBGColor sets the canvas background color.
func (s *GraphAttributes) SetBGColor(val Color) {
	s.addEnum("bgcolor", val.String(), val == ColorDefault)
}

// SetBGColorList sets a gradient background from a color list.
func (s *GraphAttributes) SetBGColorList(vals []Color) {
	s.addList("bgcolor", colorList(vals))
}

// SetCenter centers the drawing in the output canvas.
func (s *GraphAttributes) SetCenter(val bool) { s.addBool("center", val) }

// SetCharset sets the character encoding used for text labels.
func (s *GraphAttributes) SetCharset(val Charset) {
	s.addEnum("charset", val.String(), val == CharsetDefault)
}

// SetClusterRank sets the cluster processing mode. With "local", subgraphs
// named cluster* are laid out separately and boxed.
func (s *GraphAttributes) SetClusterRank(val ClusterMode) {
	s.addEnum("clusterrank", val.String(), val == ClusterModeDefault)
}

// SetComment inserts a device-dependent comment into the output.
func (s *GraphAttributes) SetComment(val string) { s.addString("comment", val) }

// SetCompound allows edges between clusters when true.
func (s *GraphAttributes) SetCompound(val bool) { s.addBool("compound", val) }

// SetConcentrate merges multiedges into single edges when true.
func (s *GraphAttributes) SetConcentrate(val bool) { s.addBool("concentrate", val) }

// SetDefaultDist sets the distance between separate connected components.
func (s *GraphAttributes) SetDefaultDist(val float64) { s.addFloat("defaultdist", val) }

// SetDim sets the number of dimensions used for layout. Values above the
// Graphviz maximum of 10 are clamped for output compatibility, and clamping
// is reported as an OUT_OF_RANGE error so callers can reject instead.
func (s *GraphAttributes) SetDim(val int) error {
	return s.addClampedDim("dim", val)
}

// SetDimen sets the number of dimensions used for rendering, with the same
// clamping contract as SetDim.
func (s *GraphAttributes) SetDimen(val int) error {
	return s.addClampedDim("dimen", val)
}

func (s *GraphAttributes) addClampedDim(name string, val int) error {
	var err error
	if val > maxDim {
		err = errors.New(errors.ErrCodeOutOfRange, "%s %d exceeds maximum %d, clamped", name, val, maxDim)
		val = maxDim
	}
	s.addInt(name, val)
	return err
}

// SetDPI sets the expected number of pixels per inch on a display device.
func (s *GraphAttributes) SetDPI(val float64) { s.addFloat("dpi", val) }

// SetEpsilon sets the terminating condition for force-directed layouts.
func (s *GraphAttributes) SetEpsilon(val float64) { s.addFloat("epsilon", val) }

// SetESep sets the margin around polygons for spline edge routing.
func (s *GraphAttributes) SetESep(val float64) { s.addFloat("esep", val) }

// SetFontColor sets the color used for text.
func (s *GraphAttributes) SetFontColor(val Color) {
	s.addEnum("fontcolor", val.String(), val == ColorDefault)
}

// SetFontName sets the font used for text.
func (s *GraphAttributes) SetFontName(val string) { s.addString("fontname", val) }

// SetFontPath sets the directory list searched for fonts.
func (s *GraphAttributes) SetFontPath(val string) { s.addString("fontpath", val) }

// SetFontSize sets the font size in points.
func (s *GraphAttributes) SetFontSize(val float64) { s.addFloat("fontsize", val) }

// SetForceLabels places all xlabels, even overlapping ones, when true.
func (s *GraphAttributes) SetForceLabels(val bool) { s.addBool("forcelabels", val) }

// SetGradientAngle sets the angle of a gradient fill.
func (s *GraphAttributes) SetGradientAngle(val int) { s.addInt("gradientangle", val) }

// SetLabelScheme controls treatment of |edgelabel|* nodes in sfdp.
// Values above 3 are clamped, with the same contract as SetDim.
func (s *GraphAttributes) SetLabelScheme(val int) error {
	var err error
	if val > 3 {
		err = errors.New(errors.ErrCodeOutOfRange, "label_scheme %d exceeds maximum 3, clamped", val)
		val = 3
	}
	s.addInt("label_scheme", val)
	return err
}

// SetLabelJust sets the justification of graph and cluster labels.
func (s *GraphAttributes) SetLabelJust(val Justification) {
	s.addEnum("labeljust", val.String(), val == JustifyDefault)
}

// SetLabelLoc sets the vertical placement of the graph label.
func (s *GraphAttributes) SetLabelLoc(val LabelLoc) {
	s.addEnum("labelloc", val.String(), val == LabelLocDefault)
}

// SetLandscape rotates the drawing 90 degrees when true.
func (s *GraphAttributes) SetLandscape(val bool) { s.addBool("landscape", val) }

// SetLayout overrides the default layout engine.
func (s *GraphAttributes) SetLayout(val string) { s.addString("layout", val) }

// SetLP sets the label position in points.
func (s *GraphAttributes) SetLP(x, y float64) { s.addPoint("lp", x, y) }

// SetMargin sets the margin around the drawing, in inches.
func (s *GraphAttributes) SetMargin(val float64) { s.addFloat("margin", val) }

// SetMarginPoint sets separate x and y margins around the drawing.
func (s *GraphAttributes) SetMarginPoint(x, y float64) { s.addPoint("margin", x, y) }

// SetMCLimit scales the number of mincross network-simplex iterations.
func (s *GraphAttributes) SetMCLimit(val float64) { s.addFloat("mclimit", val) }

// SetNodeSep sets the minimum space between adjacent nodes in a rank, in inches.
func (s *GraphAttributes) SetNodeSep(val float64) { s.addFloat("nodesep", val) }

// SetNoJustify keeps multi-line labels left-justified when true.
func (s *GraphAttributes) SetNoJustify(val bool) { s.addBool("nojustify", val) }

// SetOrdering constrains the order of edges at every node ("in" or "out").
func (s *GraphAttributes) SetOrdering(val string) { s.addString("ordering", val) }

// SetOutputOrder sets the order in which nodes and edges are drawn.
func (s *GraphAttributes) SetOutputOrder(val OutputMode) {
	s.addEnum("outputorder", val.String(), val == OutputModeDefault)
}

// SetOverlap determines how node overlaps are removed.
func (s *GraphAttributes) SetOverlap(val string) { s.addString("overlap", val) }

// SetPad sets how much the drawing is extended around its bounding box.
func (s *GraphAttributes) SetPad(val float64) { s.addFloat("pad", val) }

// SetPage sets the unit of pagination, in inches.
func (s *GraphAttributes) SetPage(x, y float64) { s.addPoint("page", x, y) }

// SetPageDir sets the traversal order of pages.
func (s *GraphAttributes) SetPageDir(val PageDir) {
	s.addEnum("pagedir", val.String(), val == PageDirDefault)
}

// SetQuantum snaps node sizes to integral multiples of the quantum.
func (s *GraphAttributes) SetQuantum(val float64) { s.addFloat("quantum", val) }

// SetRankDir sets the direction of graph layout.
func (s *GraphAttributes) SetRankDir(val RankDir) {
	s.addEnum("rankdir", val.String(), val == RankDirDefault)
}

// SetRankSep sets the separation between ranks, in inches.
func (s *GraphAttributes) SetRankSep(val float64) { s.addFloat("ranksep", val) }

// SetRankSepList sets per-rank separations for twopi radial layouts.
func (s *GraphAttributes) SetRankSepList(vals []float64) {
	s.addFloatList("ranksep", vals)
}

// SetRatio sets the aspect ratio policy for the drawing.
func (s *GraphAttributes) SetRatio(val string) { s.addString("ratio", val) }

// SetRotate sets landscape mode when 90.
func (s *GraphAttributes) SetRotate(val int) { s.addInt("rotate", val) }

// SetScale scales the layout after initial positioning.
func (s *GraphAttributes) SetScale(x, y float64) { s.addPoint("scale", x, y) }

// SetSep adds a margin around nodes when removing overlaps. The margin is
// additive, per the DOT addDouble form.
func (s *GraphAttributes) SetSep(val float64) { s.addAddFloat("sep", val) }

// SetSepPoint adds separate x and y margins around nodes.
func (s *GraphAttributes) SetSepPoint(x, y float64) { s.addAddPoint("sep", x, y) }

// SetSize sets the maximum drawing size, in inches.
func (s *GraphAttributes) SetSize(x, y float64) { s.addPoint("size", x, y) }

// SetSmoothing sets a smoothing post-processing step for sfdp.
func (s *GraphAttributes) SetSmoothing(val SmoothType) {
	s.addEnum("smoothing", val.String(), val == SmoothDefault)
}

// SetSplines sets how edges are drawn ("line", "spline", "ortho", ...).
func (s *GraphAttributes) SetSplines(val string) { s.addString("splines", val) }

// SetStyleSheet sets an XML stylesheet URL for SVG output.
func (s *GraphAttributes) SetStyleSheet(val string) { s.addString("stylesheet", val) }

// SetTarget sets the browser window used for URLs.
func (s *GraphAttributes) SetTarget(val string) { s.addString("target", val) }

// SetTrueColor requests a truecolor color model for bitmap rendering.
func (s *GraphAttributes) SetTrueColor(val bool) { s.addBool("truecolor", val) }

// SetVoroMargin sets the factor to scale Voronoi cells during overlap removal.
func (s *GraphAttributes) SetVoroMargin(val float64) { s.addFloat("voro_margin", val) }
