package dot

// Enum attribute values. Every enum has a Default sentinel as its zero
// value, interpreted as "do not state this attribute explicitly" — the
// encoder omits an enum attribute whose value is the sentinel.
//
// String tables follow the Graphviz attribute reference
// (https://graphviz.org/doc/info/attrs.html). Order must match the constant
// declarations.

// NodeShape selects the outline shape of a node.
type NodeShape int

const (
	ShapeDefault NodeShape = iota
	ShapeBox
	ShapePolygon
	ShapeEllipse
	ShapeOval
	ShapeCircle
	ShapePoint
	ShapeEgg
	ShapeTriangle
	ShapePlaintext
	ShapeDiamond
	ShapeTrapezium
	ShapeParallelogram
	ShapeHouse
	ShapePentagon
	ShapeHexagon
	ShapeSeptagon
	ShapeOctagon
	ShapeDoubleCircle
	ShapeDoubleOctagon
	ShapeInvTriangle
	ShapeInvTrapezium
	ShapeInvHouse
	ShapeMDiamond
	ShapeMSquare
	ShapeMCircle
	ShapeRect
	ShapeRectangle
	ShapeSquare
	ShapeNone
	ShapeNote
	ShapeTab
	ShapeFolder
	ShapeComponent
)

var nodeShapeStrings = [...]string{
	"", "box", "polygon", "ellipse", "oval", "circle", "point", "egg",
	"triangle", "plaintext", "diamond", "trapezium", "parallelogram",
	"house", "pentagon", "hexagon", "septagon", "octagon", "doublecircle",
	"doubleoctagon", "invtriangle", "invtrapezium", "invhouse", "Mdiamond",
	"Msquare", "Mcircle", "rect", "rectangle", "square", "none", "note",
	"tab", "folder", "component",
}

func (v NodeShape) String() string { return nodeShapeStrings[v] }

// NodeStyle selects the drawing style of a node outline and fill.
type NodeStyle int

const (
	NodeStyleDefault NodeStyle = iota
	NodeStyleDashed
	NodeStyleDotted
	NodeStyleSolid
	NodeStyleInvis
	NodeStyleBold
	NodeStyleFilled
	NodeStyleDiagonals
	NodeStyleRounded
	NodeStyleRadial
)

var nodeStyleStrings = [...]string{
	"", "dashed", "dotted", "solid", "invis", "bold", "filled",
	"diagonals", "rounded", "radial",
}

func (v NodeStyle) String() string { return nodeStyleStrings[v] }

// EdgeStyle selects the drawing style of an edge line.
type EdgeStyle int

const (
	EdgeStyleDefault EdgeStyle = iota
	EdgeStyleDashed
	EdgeStyleDotted
	EdgeStyleSolid
	EdgeStyleInvis
	EdgeStyleBold
	EdgeStyleTapered
)

var edgeStyleStrings = [...]string{
	"", "dashed", "dotted", "solid", "invis", "bold", "tapered",
}

func (v EdgeStyle) String() string { return edgeStyleStrings[v] }

// ArrowType selects an arrowhead or arrowtail glyph.
type ArrowType int

const (
	ArrowDefault ArrowType = iota
	ArrowNormal
	ArrowInv
	ArrowDot
	ArrowInvDot
	ArrowODot
	ArrowInvODot
	ArrowNone
	ArrowTee
	ArrowEmpty
	ArrowInvEmpty
	ArrowDiamond
	ArrowODiamond
	ArrowEDiamond
	ArrowCrow
	ArrowBox
	ArrowOBox
	ArrowOpen
	ArrowHalfOpen
	ArrowVee
)

var arrowTypeStrings = [...]string{
	"", "normal", "inv", "dot", "invdot", "odot", "invodot", "none",
	"tee", "empty", "invempty", "diamond", "odiamond", "ediamond", "crow",
	"box", "obox", "open", "halfopen", "vee",
}

func (v ArrowType) String() string { return arrowTypeStrings[v] }

// DirType selects which ends of an edge carry arrowheads.
type DirType int

const (
	DirDefault DirType = iota
	DirForward
	DirBack
	DirBoth
	DirNone
)

var dirTypeStrings = [...]string{"", "forward", "back", "both", "none"}

func (v DirType) String() string { return dirTypeStrings[v] }

// RankDir selects the direction of graph layout.
type RankDir int

const (
	RankDirDefault RankDir = iota
	RankDirTB
	RankDirLR
	RankDirBT
	RankDirRL
)

var rankDirStrings = [...]string{"", "TB", "LR", "BT", "RL"}

func (v RankDir) String() string { return rankDirStrings[v] }

// RankType constrains the rank assignment of nodes in a subgraph.
type RankType int

const (
	RankDefault RankType = iota
	RankSame
	RankMin
	RankSource
	RankMax
	RankSink
)

var rankTypeStrings = [...]string{"", "same", "min", "source", "max", "sink"}

func (v RankType) String() string { return rankTypeStrings[v] }

// ClusterMode selects how clusters are processed.
type ClusterMode int

const (
	ClusterModeDefault ClusterMode = iota
	ClusterModeLocal
	ClusterModeGlobal
	ClusterModeNone
)

var clusterModeStrings = [...]string{"", "local", "global", "none"}

func (v ClusterMode) String() string { return clusterModeStrings[v] }

// OutputMode selects the order in which nodes and edges are drawn.
type OutputMode int

const (
	OutputModeDefault OutputMode = iota
	OutputModeBreadthFirst
	OutputModeNodesFirst
	OutputModeEdgesFirst
)

var outputModeStrings = [...]string{"", "breadthfirst", "nodesfirst", "edgesfirst"}

func (v OutputMode) String() string { return outputModeStrings[v] }

// Justification selects horizontal label placement.
type Justification int

const (
	JustifyDefault Justification = iota
	JustifyLeft
	JustifyCenter
	JustifyRight
)

var justificationStrings = [...]string{"", "l", "c", "r"}

func (v Justification) String() string { return justificationStrings[v] }

// LabelLoc selects vertical label placement.
type LabelLoc int

const (
	LabelLocDefault LabelLoc = iota
	LabelLocTop
	LabelLocCenter
	LabelLocBottom
)

var labelLocStrings = [...]string{"", "t", "c", "b"}

func (v LabelLoc) String() string { return labelLocStrings[v] }

// PageDir selects the traversal order of pages in paged output.
type PageDir int

const (
	PageDirDefault PageDir = iota
	PageDirBL
	PageDirBR
	PageDirTL
	PageDirTR
	PageDirRB
	PageDirRT
	PageDirLB
	PageDirLT
)

var pageDirStrings = [...]string{"", "BL", "BR", "TL", "TR", "RB", "RT", "LB", "LT"}

func (v PageDir) String() string { return pageDirStrings[v] }

// SmoothType selects a post-processing smoothing step for sfdp layouts.
type SmoothType int

const (
	SmoothDefault SmoothType = iota
	SmoothNone
	SmoothAvgDist
	SmoothGraphDist
	SmoothPowerDist
	SmoothRNG
	SmoothSpring
	SmoothTriangle
)

var smoothTypeStrings = [...]string{
	"", "none", "avg_dist", "graph_dist", "power_dist", "rng", "spring",
	"triangle",
}

func (v SmoothType) String() string { return smoothTypeStrings[v] }

// Charset selects the character encoding of string input.
type Charset int

const (
	CharsetDefault Charset = iota
	CharsetUTF8
	CharsetLatin1
)

var charsetStrings = [...]string{"", "UTF-8", "iso-8859-1"}

func (v Charset) String() string { return charsetStrings[v] }

// Color is a named X11 color. The catalogue covers the names common in
// generated diagrams; arbitrary colors (hex, HSV) go through SetCustom.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGray
	ColorLightGray
	ColorDimGray
	ColorRed
	ColorDarkRed
	ColorCrimson
	ColorOrange
	ColorGold
	ColorYellow
	ColorGreen
	ColorDarkGreen
	ColorLightGreen
	ColorOlive
	ColorCyan
	ColorTeal
	ColorBlue
	ColorNavy
	ColorLightBlue
	ColorSkyBlue
	ColorSteelBlue
	ColorPurple
	ColorMagenta
	ColorViolet
	ColorPink
	ColorBrown
	ColorTan
	ColorBeige
	ColorIvory
	ColorTransparent
)

var colorStrings = [...]string{
	"", "black", "white", "gray", "lightgray", "dimgray", "red", "darkred",
	"crimson", "orange", "gold", "yellow", "green", "darkgreen",
	"lightgreen", "olive", "cyan", "teal", "blue", "navy", "lightblue",
	"skyblue", "steelblue", "purple", "magenta", "violet", "pink", "brown",
	"tan", "beige", "ivory", "transparent",
}

func (v Color) String() string { return colorStrings[v] }

// colorList renders a slice of colors to their string forms.
func colorList(vals []Color) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}
