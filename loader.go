package stimulus

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	mt "github.com/rustyoz/Mtransform"
)

// svgPath, svgGroup and svgDoc mirror the subset of the SVG document
// model the loader needs: nested groups and path elements with their d
// and transform attributes.
type svgPath struct {
	ID        string `xml:"id,attr"`
	D         string `xml:"d,attr"`
	Transform string `xml:"transform,attr"`
}

type svgGroup struct {
	Transform string     `xml:"transform,attr"`
	Groups    []svgGroup `xml:"g"`
	Paths     []svgPath  `xml:"path"`
}

type svgDoc struct {
	Title  string     `xml:"title"`
	Groups []svgGroup `xml:"g"`
	Paths  []svgPath  `xml:"path"`
}

// firstPath returns the document's first path element together with the
// composed transform of its enclosing groups. Curve exports carry a
// single path, so the first one is the curve.
func (d *svgDoc) firstPath() (svgPath, mt.Transform, bool) {
	if len(d.Paths) > 0 {
		return d.Paths[0], mt.Identity(), true
	}
	for i := range d.Groups {
		if p, t, ok := d.Groups[i].firstPath(mt.Identity()); ok {
			return p, t, ok
		}
	}
	return svgPath{}, mt.Identity(), false
}

func (g *svgGroup) firstPath(parent mt.Transform) (svgPath, mt.Transform, bool) {
	t := parent
	if g.Transform != "" {
		gt, err := parseTransform(g.Transform)
		if err != nil {
			Logger().Warn("ignoring unparsable group transform", "transform", g.Transform, "err", err)
		} else {
			t = mt.MultiplyTransforms(t, gt)
		}
	}
	if len(g.Paths) > 0 {
		return g.Paths[0], t, true
	}
	for i := range g.Groups {
		if p, pt, ok := g.Groups[i].firstPath(t); ok {
			return p, pt, ok
		}
	}
	return svgPath{}, t, false
}

// Curve is one loaded stimulus curve.
type Curve struct {
	Name  string
	Model *PathModel
}

// CurveFailure records a curve file that could not be loaded.
type CurveFailure struct {
	File string
	Err  error
}

// CurveSet is the outcome of loading a directory of curve files. Curves
// holds the usable models in file-name order; Failures the files that
// were skipped.
type CurveSet struct {
	Curves   []Curve
	Failures []CurveFailure
}

// LoadCurveFile reads one SVG file and builds the path model for its
// first path element. Group and path transforms are applied to the node
// coordinates before the model is built.
func LoadCurveFile(name string) (*Curve, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCurve(f, name)
}

// LoadCurve builds a curve from SVG document content.
func LoadCurve(r io.Reader, name string) (*Curve, error) {
	var doc svgDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPath, err)
	}
	p, t, ok := doc.firstPath()
	if !ok || p.D == "" {
		return nil, fmt.Errorf("%w: no path element in %s", ErrMalformedPath, name)
	}
	if p.Transform != "" {
		pt, err := parseTransform(p.Transform)
		if err != nil {
			Logger().Warn("ignoring unparsable path transform", "file", name, "err", err)
		} else {
			t = mt.MultiplyTransforms(t, pt)
		}
	}
	nodes, err := ParsePathNodes(p.D)
	if err != nil {
		return nil, err
	}
	for i := range nodes {
		nodes[i].X, nodes[i].Y = t.Apply(nodes[i].X, nodes[i].Y)
	}
	model, err := BuildPath(nodes)
	if err != nil {
		return nil, err
	}
	return &Curve{Name: name, Model: model}, nil
}

// LoadCurveDir loads every *.svg file in dir, in file-name order. A file
// that fails to load is recorded in the result and skipped; one bad
// export never aborts the rest of the batch.
//
// A directory with no SVG files at all returns ErrNoCurveFiles. A
// directory whose files all failed returns ErrNoCurvesLoaded together
// with the populated failure list, so callers can tell a configuration
// problem from a processing problem.
func LoadCurveDir(dir string) (*CurveSet, error) {
	names, err := filepath.Glob(filepath.Join(dir, "*.svg"))
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCurveFiles, dir)
	}
	sort.Strings(names)

	set := &CurveSet{}
	for _, name := range names {
		c, err := LoadCurveFile(name)
		if err != nil {
			Logger().Warn("skipping curve file", "file", name, "err", err)
			set.Failures = append(set.Failures, CurveFailure{File: name, Err: err})
			continue
		}
		Logger().Info("loaded curve", "file", name,
			"segments", c.Model.Segments(), "length", c.Model.Length())
		set.Curves = append(set.Curves, *c)
	}
	if len(set.Curves) == 0 {
		return set, fmt.Errorf("%w: %s", ErrNoCurvesLoaded, dir)
	}
	return set, nil
}
