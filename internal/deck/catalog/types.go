package catalog

import "github.com/realty-decks/deck-backend/internal/deck/theme"

// Canvas size in layout units (inches on a 16:9 widescreen slide).
const (
	CanvasWidth  = 13.33
	CanvasHeight = 7.5
)

// Kind is the visual primitive a region produces.
type Kind string

const (
	KindText  Kind = "text"
	KindShape Kind = "shape"
	KindTable Kind = "table"
	KindList  Kind = "list"
	KindChart Kind = "chart"
	KindImage Kind = "image"
	KindBars  Kind = "bars"
)

// Master selects the frame drawn behind a slide's regions.
type Master string

const (
	MasterTitle   Master = "title"
	MasterContent Master = "content"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

type ShapeKind string

const (
	ShapeRect      ShapeKind = "rect"
	ShapeRoundRect ShapeKind = "roundRect"
	ShapeEllipse   ShapeKind = "ellipse"
)

type ChartKind string

const (
	ChartBar      ChartKind = "bar"
	ChartDoughnut ChartKind = "doughnut"
)

// Rect is a position on the canvas in layout units.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

type Style struct {
	Size   int        `json:"size,omitempty"`
	Color  theme.Role `json:"color,omitempty"`
	Fill   theme.Role `json:"fill,omitempty"`
	Bold   bool       `json:"bold,omitempty"`
	Italic bool       `json:"italic,omitempty"`
	Align  Align      `json:"align,omitempty"`
	Shape  ShapeKind  `json:"shape,omitempty"`
	// Transparency of the fill in percent, 0 is opaque.
	Transparency int `json:"transparency,omitempty"`
}

// Column positions one table column relative to the canvas.
type Column struct {
	X     float64
	W     float64
	Style Style
}

// ListSource derives list items by splitting a comma separated field. A
// blank field splits the field's fallback literal instead.
type ListSource struct {
	Field string
	Max   int
}

// Region is one positioned binding on a slide.
//
// Text, Items and Rows hold templates understood by fields.Expand. Lists and
// tables place their n-th entry Step units below the first; lists with
// PerRow > 1 wrap into a grid ColStep units apart.
type Region struct {
	ID   string
	Kind Kind
	Rect Rect
	// Style applies to text, list items and shapes.
	Style Style

	Text string

	// The region renders only if some key in When holds a value, and only
	// if every key in Unless is blank. Empty lists impose no condition.
	When   []string
	Unless []string

	Items   []string
	Source  *ListSource
	Prefix  string
	Step    float64
	PerRow  int
	ColStep float64

	Columns []Column
	Rows    [][]string

	Chart      ChartKind
	ChartTitle string
	// Figure names the illustrative data set a chart or bars region reads.
	Figure string
}

// SlideSpec is one entry of the layout catalog.
type SlideSpec struct {
	Name    string
	Master  Master
	Title   string
	Regions []Region
}

const (
	FigureNOI          = "noi"
	FigureCapitalStack = "capitalStack"
	FigureProceeds     = "proceeds"
	FigureAssumptions  = "assumptions"
)

const (
	maxProceedsRows = 6
	maxAssumptions  = 4
)
