// Package figyaml compiles a declarative YAML scene description into a
// figscene.Figure. The document goes through the regular constructors,
// so every scene validation applies to loaded files unchanged.
package figyaml

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okfig/okfig/figpath"
	"github.com/okfig/okfig/figscene"
)

type sceneDoc struct {
	Figure   figureDoc    `yaml:"figure"`
	Diagrams []diagramDoc `yaml:"diagrams"`
}

type figureDoc struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type diagramDoc struct {
	Width   float64     `yaml:"width"`
	Height  float64     `yaml:"height"`
	X       float64     `yaml:"x"`
	Y       float64     `yaml:"y"`
	Fill    string      `yaml:"fill,omitempty"`
	Points  []pointDoc  `yaml:"points,omitempty"`
	Vectors []vectorDoc `yaml:"vectors,omitempty"`
	Axes    []axesDoc   `yaml:"axes,omitempty"`
}

type axesDoc struct {
	Position pair        `yaml:"position"`
	Size     pair        `yaml:"size"`
	Style    *styleDoc   `yaml:"style,omitempty"`
	Points   []pointDoc  `yaml:"points,omitempty"`
	Vectors  []vectorDoc `yaml:"vectors,omitempty"`
	Curves   []curveDoc  `yaml:"curves,omitempty"`
	Ticks    []tickDoc   `yaml:"ticks,omitempty"`
}

type pointDoc struct {
	Size  float64   `yaml:"size"`
	At    pair      `yaml:"at"`
	Style *styleDoc `yaml:"style,omitempty"`
	Label *labelDoc `yaml:"label,omitempty"`
}

type vectorDoc struct {
	Pos       pair      `yaml:"pos"`
	Dir       pair      `yaml:"dir"`
	ArrowSize float64   `yaml:"arrow_size,omitempty"`
	Style     *styleDoc `yaml:"style,omitempty"`
	Label     *labelDoc `yaml:"label,omitempty"`
}

type curveDoc struct {
	Points   []pair    `yaml:"points"`
	Tangents []pair    `yaml:"tangents"`
	Style    *styleDoc `yaml:"style,omitempty"`
	Label    *labelDoc `yaml:"label,omitempty"`
}

type tickDoc struct {
	Spacing     float64 `yaml:"spacing"`
	Length      float64 `yaml:"length,omitempty"`
	Orientation string  `yaml:"orientation,omitempty"`
	Placement   string  `yaml:"placement,omitempty"`
	Color       string  `yaml:"color,omitempty"`
}

type styleDoc struct {
	Theme     string  `yaml:"theme,omitempty"`
	Color     string  `yaml:"color,omitempty"`
	Thickness float64 `yaml:"thickness,omitempty"`
	Line      string  `yaml:"line,omitempty"`
}

type labelDoc struct {
	Text   string `yaml:"text"`
	Anchor string `yaml:"anchor,omitempty"`
	At     *pair  `yaml:"at,omitempty"`
}

// pair is an [x, y] sequence.
type pair [2]float64

func (p *pair) UnmarshalYAML(value *yaml.Node) error {
	var raw []float64
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("expected an [x, y] pair, got %d values", len(raw))
	}
	p[0], p[1] = raw[0], raw[1]
	return nil
}

func (p pair) point() figpath.Point { return figpath.Point{X: p[0], Y: p[1]} }

// LoadFile reads and compiles a YAML scene file.
func LoadFile(path string) (figscene.Figure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return figscene.Figure{}, fmt.Errorf("reading scene file: %w", err)
	}
	return load(data)
}

// Load reads and compiles a YAML scene document.
func Load(r io.Reader) (figscene.Figure, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return figscene.Figure{}, fmt.Errorf("reading scene: %w", err)
	}
	return load(data)
}

func load(data []byte) (figscene.Figure, error) {
	var doc sceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return figscene.Figure{}, fmt.Errorf("parsing scene: %w", err)
	}
	return doc.build()
}

func (doc *sceneDoc) build() (figscene.Figure, error) {
	fig, err := figscene.NewFigure(doc.Figure.Width, doc.Figure.Height)
	if err != nil {
		return figscene.Figure{}, err
	}
	for i, dd := range doc.Diagrams {
		d, err := dd.build()
		if err != nil {
			return figscene.Figure{}, fmt.Errorf("diagram %d: %w", i, err)
		}
		fig.AddDiagram(d)
	}
	return fig, nil
}

func (dd *diagramDoc) build() (figscene.Diagram, error) {
	d, err := figscene.NewDiagram(dd.Width, dd.Height, dd.X, dd.Y)
	if err != nil {
		return figscene.Diagram{}, err
	}
	if dd.Fill != "" {
		if err := validateColor(dd.Fill); err != nil {
			return figscene.Diagram{}, err
		}
		d.SetFill(dd.Fill)
	}
	for _, pd := range dd.Points {
		p, err := pd.build()
		if err != nil {
			return figscene.Diagram{}, err
		}
		if _, err := d.AddObject(p); err != nil {
			return figscene.Diagram{}, err
		}
	}
	for _, vd := range dd.Vectors {
		v, err := vd.build()
		if err != nil {
			return figscene.Diagram{}, err
		}
		if _, err := d.AddObject(v); err != nil {
			return figscene.Diagram{}, err
		}
	}
	for _, ad := range dd.Axes {
		a, err := ad.build()
		if err != nil {
			return figscene.Diagram{}, err
		}
		d.AddAxes(a)
	}
	return d, nil
}

func (ad *axesDoc) build() (figscene.Axes, error) {
	opts, err := ad.Style.options()
	if err != nil {
		return figscene.Axes{}, err
	}
	a, err := figscene.NewAxes(ad.Position.point(), ad.Size.point(), opts...)
	if err != nil {
		return figscene.Axes{}, err
	}
	for _, pd := range ad.Points {
		p, err := pd.build()
		if err != nil {
			return figscene.Axes{}, err
		}
		if _, err := a.AddObject(p); err != nil {
			return figscene.Axes{}, err
		}
	}
	for _, vd := range ad.Vectors {
		v, err := vd.build()
		if err != nil {
			return figscene.Axes{}, err
		}
		if _, err := a.AddObject(v); err != nil {
			return figscene.Axes{}, err
		}
	}
	for _, cd := range ad.Curves {
		c, err := cd.build()
		if err != nil {
			return figscene.Axes{}, err
		}
		a.AddCurve(c)
	}
	for _, td := range ad.Ticks {
		if err := td.apply(&a); err != nil {
			return figscene.Axes{}, err
		}
	}
	return a, nil
}

func (pd *pointDoc) build() (figscene.Point, error) {
	opts, err := pd.Style.options()
	if err != nil {
		return figscene.Point{}, err
	}
	p, err := figscene.NewPoint(pd.Size, pd.At.point(), opts...)
	if err != nil {
		return figscene.Point{}, err
	}
	if pd.Label != nil {
		l, err := pd.Label.build()
		if err != nil {
			return figscene.Point{}, err
		}
		p = p.WithLabel(l)
	}
	return p, nil
}

func (vd *vectorDoc) build() (figscene.Vector, error) {
	opts, err := vd.Style.options()
	if err != nil {
		return figscene.Vector{}, err
	}
	if vd.ArrowSize != 0 {
		opts = append(opts, figscene.WithArrowSize(vd.ArrowSize))
	}
	v, err := figscene.NewVector(vd.Pos.point(), vd.Dir.point(), opts...)
	if err != nil {
		return figscene.Vector{}, err
	}
	if vd.Label != nil {
		l, err := vd.Label.build()
		if err != nil {
			return figscene.Vector{}, err
		}
		v = v.WithLabel(l)
	}
	return v, nil
}

func (cd *curveDoc) build() (figscene.Curve, error) {
	opts, err := cd.Style.options()
	if err != nil {
		return figscene.Curve{}, err
	}
	points := make([]figpath.Point, len(cd.Points))
	for i, p := range cd.Points {
		points[i] = p.point()
	}
	tangents := make([]figpath.Point, len(cd.Tangents))
	for i, t := range cd.Tangents {
		tangents[i] = t.point()
	}
	c, err := figscene.NewCurve(points, tangents, opts...)
	if err != nil {
		return figscene.Curve{}, err
	}
	if cd.Label != nil {
		l, err := cd.Label.build()
		if err != nil {
			return figscene.Curve{}, err
		}
		c = c.WithLabel(l)
	}
	return c, nil
}

func (td *tickDoc) apply(a *figscene.Axes) error {
	length := td.Length
	if length == 0 {
		length = 5
	}
	orientName := td.Orientation
	if orientName == "" {
		orientName = "both"
	}
	orient, err := figscene.ParseOrientation(orientName)
	if err != nil {
		return err
	}
	placeName := td.Placement
	if placeName == "" {
		placeName = "inside"
	}
	place, err := figscene.ParsePlacement(placeName)
	if err != nil {
		return err
	}
	color := td.Color
	if color == "" {
		color = "black"
	}
	if err := validateColor(color); err != nil {
		return err
	}
	return a.AddTicks(td.Spacing, length, orient, place, color)
}

func (sd *styleDoc) options() ([]figscene.Option, error) {
	if sd == nil {
		return nil, nil
	}
	var opts []figscene.Option
	if sd.Theme != "" {
		th, err := themeByName(sd.Theme)
		if err != nil {
			return nil, err
		}
		opts = append(opts, figscene.WithStyle(th))
	}
	if sd.Color != "" {
		if err := validateColor(sd.Color); err != nil {
			return nil, err
		}
		opts = append(opts, figscene.WithColor(sd.Color))
	}
	if sd.Thickness != 0 {
		opts = append(opts, figscene.WithThickness(sd.Thickness))
	}
	if sd.Line != "" {
		ls, err := figscene.ParseLineStyle(sd.Line)
		if err != nil {
			return nil, err
		}
		opts = append(opts, figscene.WithLine(ls))
	}
	return opts, nil
}

func themeByName(name string) (figscene.Style, error) {
	switch name {
	case "default":
		return figscene.ThemeDefault, nil
	case "axes":
		return figscene.ThemeAxes, nil
	case "highlight":
		return figscene.ThemeHighlight, nil
	case "subtle":
		return figscene.ThemeSubtle, nil
	}
	return figscene.Style{}, &figscene.ConfigurationError{Reason: fmt.Sprintf("unknown theme %q", name)}
}

func (ld *labelDoc) build() (figscene.Label, error) {
	if ld.Text == "" {
		return figscene.Label{}, &figscene.ConfigurationError{Reason: "label text must not be empty"}
	}
	if ld.At != nil {
		if ld.Anchor != "" {
			return figscene.Label{}, &figscene.ConfigurationError{Reason: "label takes an anchor or an offset, not both"}
		}
		return figscene.LabelAt(ld.Text, ld.At[0], ld.At[1]), nil
	}
	switch ld.Anchor {
	case "above":
		return figscene.LabelAbove(ld.Text), nil
	case "below":
		return figscene.LabelBelow(ld.Text), nil
	case "left":
		return figscene.LabelLeft(ld.Text), nil
	case "right":
		return figscene.LabelRight(ld.Text), nil
	}
	return figscene.Label{}, &figscene.ConfigurationError{Reason: fmt.Sprintf("label anchor must be 'above', 'below', 'left' or 'right', got %q", ld.Anchor)}
}
