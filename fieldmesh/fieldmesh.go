package fieldmesh

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/electronsandstuff/openPMD-beamphysics/grid"
)

// ErrKeyNotAvailable is returned by component lookups through unknown
// keys.
var ErrKeyNotAvailable = errors.New("key not available")

// Geometry tags the coordinate system of a mesh.
type Geometry string

// Supported mesh geometries.
const (
	GeometryRectangular Geometry = "rectangular"
	GeometryCylindrical Geometry = "cylindrical"
)

// AxisLabels returns the coordinate labels bound to the geometry.
func (g Geometry) AxisLabels() ([3]string, error) {
	switch g {
	case GeometryRectangular:
		return [3]string{"x", "y", "z"}, nil
	case GeometryCylindrical:
		return [3]string{"r", "theta", "z"}, nil
	default:
		return [3]string{}, fmt.Errorf("fieldmesh: unknown geometry %q", string(g))
	}
}

// Attrs is the openPMD-style attribute metadata of a field mesh.
type Attrs struct {
	GridOriginOffset     [3]float64
	GridSpacing          [3]float64
	GridSize             grid.Shape
	EleAnchorPt          string
	GridGeometry         Geometry
	GridLowerBound       [3]int
	Harmonic             int
	FundamentalFrequency float64
	FieldScale           float64
	RFPhase              float64
}

// DefaultAttrs returns attributes for a static rectangular mesh with the
// standard anchor point and unit field scale.
func DefaultAttrs(origin, spacing [3]float64, size grid.Shape) Attrs {
	return Attrs{
		GridOriginOffset: origin,
		GridSpacing:      spacing,
		GridSize:         size,
		EleAnchorPt:      "center",
		GridGeometry:     GeometryRectangular,
		FieldScale:       1,
	}
}

// FieldMesh is the immutable-after-construction field mesh value
// object. It exclusively owns its attribute and component data.
type FieldMesh struct {
	attrs      Attrs
	components map[string]*grid.Scalar
}

// New constructs a FieldMesh, validating that the geometry is known and
// that every component uses a canonical name and matches the declared
// grid size exactly.
func New(attrs Attrs, components map[string]*grid.Scalar) (*FieldMesh, error) {
	if _, err := attrs.GridGeometry.AxisLabels(); err != nil {
		return nil, err
	}
	for i, n := range attrs.GridSize {
		if n < 1 {
			return nil, fmt.Errorf("fieldmesh: invalid grid size %v", attrs.GridSize)
		}
		d := attrs.GridSpacing[i]
		if n > 1 {
			// Extended axes need a real step; singleton axes may carry
			// zero spacing (axisymmetric meshes).
			if !(d > 0) {
				return nil, fmt.Errorf("fieldmesh: invalid grid spacing %v on axis %d of size %d", d, i, n)
			}
		} else if !(d >= 0) {
			return nil, fmt.Errorf("fieldmesh: invalid grid spacing %v on axis %d", d, i)
		}
	}
	owned := make(map[string]*grid.Scalar, len(components))
	for key, comp := range components {
		canonical, ok := CanonicalComponent(key)
		if !ok {
			return nil, fmt.Errorf("fieldmesh: unknown component %q", key)
		}
		if comp == nil {
			return nil, fmt.Errorf("fieldmesh: component %q is nil", key)
		}
		if !comp.Shape().Equal(attrs.GridSize) {
			return nil, fmt.Errorf("fieldmesh: component %q shape %v does not match grid size %v",
				canonical, comp.Shape(), attrs.GridSize)
		}
		owned[canonical] = comp
	}
	return &FieldMesh{attrs: attrs, components: owned}, nil
}

// Attrs returns a copy of the attribute metadata.
func (m *FieldMesh) Attrs() Attrs { return m.attrs }

// Shape returns the grid size.
func (m *FieldMesh) Shape() grid.Shape { return m.attrs.GridSize }

// Geometry returns the mesh geometry tag.
func (m *FieldMesh) Geometry() Geometry { return m.attrs.GridGeometry }

// AxisLabels returns the coordinate labels of the mesh geometry.
func (m *FieldMesh) AxisLabels() [3]string {
	labels, _ := m.attrs.GridGeometry.AxisLabels() // validated at construction
	return labels
}

// AxisIndex returns the axis position of a named coordinate label.
func (m *FieldMesh) AxisIndex(label string) (int, error) {
	for i, name := range m.AxisLabels() {
		if name == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("fieldmesh: axis not found: %q", label)
}

// Min returns the lower bounding coordinate per axis.
func (m *FieldMesh) Min() [3]float64 { return m.attrs.GridOriginOffset }

// Delta returns the grid spacing per axis.
func (m *FieldMesh) Delta() [3]float64 { return m.attrs.GridSpacing }

// Max returns the upper bounding coordinate per axis, derived from
// origin + spacing·(size−1).
func (m *FieldMesh) Max() [3]float64 {
	var out [3]float64
	for i := range out {
		out[i] = m.attrs.GridOriginOffset[i] +
			m.attrs.GridSpacing[i]*float64(m.attrs.GridSize[i]-1)
	}
	return out
}

// axisCoords derives the coordinate vector of one axis from origin and
// spacing. Derived on demand, never cached.
func (m *FieldMesh) axisCoords(i int) []float64 {
	out := make([]float64, m.attrs.GridSize[i])
	for k := range out {
		out[k] = m.attrs.GridOriginOffset[i] + m.attrs.GridSpacing[i]*float64(k)
	}
	return out
}

// CoordVec returns the coordinate vector of a named axis label.
func (m *FieldMesh) CoordVec(label string) ([]float64, error) {
	i, err := m.AxisIndex(label)
	if err != nil {
		return nil, err
	}
	return m.axisCoords(i), nil
}

// CoordVecs returns the three coordinate vectors in axis order.
func (m *FieldMesh) CoordVecs() [3][]float64 {
	return [3][]float64{m.axisCoords(0), m.axisCoords(1), m.axisCoords(2)}
}

// Meshgrid expands the coordinate vectors into full lattice-shaped
// coordinate scalars in ij order.
func (m *FieldMesh) Meshgrid() (x, y, z *grid.Scalar) {
	xs, ys, zs := m.axisCoords(0), m.axisCoords(1), m.axisCoords(2)
	shape := m.attrs.GridSize
	x, y, z = grid.NewScalar(shape), grid.NewScalar(shape), grid.NewScalar(shape)
	xd, yd, zd := x.Data(), y.Data(), z.Data()
	n := 0
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			for k := 0; k < shape[2]; k++ {
				xd[n], yd[n], zd[n] = xs[i], ys[j], zs[k]
				n++
			}
		}
	}
	return x, y, z
}

// Component looks up a component by canonical path or registered alias.
// Unknown or absent keys fail with ErrKeyNotAvailable.
func (m *FieldMesh) Component(key string) (*grid.Scalar, error) {
	if comp, ok := m.components[key]; ok {
		return comp, nil
	}
	if canonical, ok := CanonicalComponent(key); ok {
		if comp, ok := m.components[canonical]; ok {
			return comp, nil
		}
	}
	return nil, fmt.Errorf("fieldmesh: %w: %q", ErrKeyNotAvailable, key)
}

// ComponentKeys returns the canonical names of all stored components in
// sorted order.
func (m *FieldMesh) ComponentKeys() []string {
	keys := make([]string, 0, len(m.components))
	for k := range m.components {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ComponentIsZero reports whether every element of the named component
// is exactly zero.
func (m *FieldMesh) ComponentIsZero(key string) (bool, error) {
	comp, err := m.Component(key)
	if err != nil {
		return false, err
	}
	return comp.IsZero(), nil
}

// ReplaceComponent swaps a stored component array wholesale. This is the
// only sanctioned mutation and exists for the I/O layer; the shape must
// still match the grid size.
func (m *FieldMesh) ReplaceComponent(key string, comp *grid.Scalar) error {
	canonical, ok := CanonicalComponent(key)
	if !ok {
		return fmt.Errorf("fieldmesh: %w: %q", ErrKeyNotAvailable, key)
	}
	if _, stored := m.components[canonical]; !stored {
		return fmt.Errorf("fieldmesh: %w: %q", ErrKeyNotAvailable, key)
	}
	if !comp.Shape().Equal(m.attrs.GridSize) {
		return fmt.Errorf("fieldmesh: replacement for %q has shape %v, want %v",
			canonical, comp.Shape(), m.attrs.GridSize)
	}
	m.components[canonical] = comp
	return nil
}

// IsStatic reports whether the mesh holds a static field (harmonic 0).
func (m *FieldMesh) IsStatic() bool { return m.attrs.Harmonic == 0 }

// Frequency returns harmonic · fundamentalFrequency, or 0 for static
// meshes.
func (m *FieldMesh) Frequency() float64 {
	if m.IsStatic() {
		return 0
	}
	return float64(m.attrs.Harmonic) * m.attrs.FundamentalFrequency
}

// IsPureElectric reports whether every nonzero stored component belongs
// to the electric field record.
func (m *FieldMesh) IsPureElectric() bool { return m.isPure("electricField") }

// IsPureMagnetic reports whether every nonzero stored component belongs
// to the magnetic field record.
func (m *FieldMesh) IsPureMagnetic() bool { return m.isPure("magneticField") }

func (m *FieldMesh) isPure(record string) bool {
	for key, comp := range m.components {
		if comp.IsZero() {
			continue
		}
		if RecordOf(key) != record {
			return false
		}
	}
	return true
}

// B returns the magnetic field magnitude hypot(Br, Bz). Only defined
// for cylindrical meshes; rectangular geometry fails.
func (m *FieldMesh) B() (*grid.Scalar, error) { return m.magnitude("Br", "Bz") }

// E returns the electric field magnitude hypot(Er, Ez), cylindrical
// meshes only.
func (m *FieldMesh) E() (*grid.Scalar, error) { return m.magnitude("Er", "Ez") }

func (m *FieldMesh) magnitude(radialAlias, axialAlias string) (*grid.Scalar, error) {
	if m.Geometry() != GeometryCylindrical {
		return nil, fmt.Errorf("fieldmesh: field magnitude requires cylindrical geometry, mesh is %q",
			string(m.Geometry()))
	}
	radial, err := m.Component(radialAlias)
	if err != nil {
		return nil, err
	}
	axial, err := m.Component(axialAlias)
	if err != nil {
		return nil, err
	}
	out := grid.NewScalar(m.Shape())
	rd, ad, od := radial.Data(), axial.Data(), out.Data()
	for i := range od {
		od[i] = math.Hypot(rd[i], ad[i])
	}
	return out, nil
}

// Equal deep-compares attributes and component arrays elementwise.
func (m *FieldMesh) Equal(other *FieldMesh) bool {
	if other == nil || m.attrs != other.attrs {
		return false
	}
	if len(m.components) != len(other.components) {
		return false
	}
	for key, comp := range m.components {
		oc, ok := other.components[key]
		if !ok || !comp.Equal(oc) {
			return false
		}
	}
	return true
}

// String describes the mesh geometry and shape.
func (m *FieldMesh) String() string {
	return fmt.Sprintf("<FieldMesh with %s geometry and %v shape>", m.Geometry(), m.Shape())
}
