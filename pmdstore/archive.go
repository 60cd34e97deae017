package pmdstore

import (
	"fmt"
	"io"
	"os"

	"github.com/electronsandstuff/openPMD-beamphysics/fieldmesh"
	"github.com/electronsandstuff/openPMD-beamphysics/grid"
	"github.com/electronsandstuff/openPMD-beamphysics/units"
)

// DataIntegrityError reports a persisted archive whose contents
// contradict its own metadata: a component shape that differs from the
// declared grid size, or a unit dimension that does not match the
// physical dimension expected for the component's record family.
type DataIntegrityError struct {
	Component string
	Reason    string
}

func (e *DataIntegrityError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("data integrity error: %s", e.Reason)
	}
	return fmt.Sprintf("data integrity error in %q: %s", e.Component, e.Reason)
}

// archiveAttrs mirrors fieldmesh.Attrs with openPMD attribute naming.
type archiveAttrs struct {
	GridOriginOffset     [3]float64 `cbor:"gridOriginOffset"`
	GridSpacing          [3]float64 `cbor:"gridSpacing"`
	GridSize             [3]int     `cbor:"gridSize"`
	EleAnchorPt          string     `cbor:"eleAnchorPt"`
	GridGeometry         string     `cbor:"gridGeometry"`
	GridLowerBound       [3]int     `cbor:"gridLowerBound"`
	Harmonic             int        `cbor:"harmonic"`
	FundamentalFrequency float64    `cbor:"fundamentalFrequency"`
	FieldScale           float64    `cbor:"fieldScale"`
	RFPhase              float64    `cbor:"RFphase"`
}

// archiveComponent is one persisted component record.
type archiveComponent struct {
	Shape         [3]int     `cbor:"shape"`
	UnitDimension [7]float64 `cbor:"unitDimension"`
	Data          []float64  `cbor:"data"`
	Imag          []float64  `cbor:"imag,omitempty"`
}

// archive is the on-disk document.
type archive struct {
	Attrs      archiveAttrs                `cbor:"attrs"`
	Components map[string]archiveComponent `cbor:"components"`
}

// Storage is the abstract load/store collaborator consumed by code that
// does not care where meshes live.
type Storage interface {
	Store(m *fieldmesh.FieldMesh) error
	Load() (*fieldmesh.FieldMesh, error)
}

// FileStorage persists meshes to a single archive file.
type FileStorage struct {
	Path string
}

// Store writes the mesh to the file, replacing any previous contents.
func (s FileStorage) Store(m *fieldmesh.FieldMesh) error { return WriteFile(s.Path, m) }

// Load reads the mesh back from the file.
func (s FileStorage) Load() (*fieldmesh.FieldMesh, error) { return ReadFile(s.Path) }

// Write encodes the mesh as a deterministic CBOR archive.
func Write(w io.Writer, m *fieldmesh.FieldMesh) error {
	attrs := m.Attrs()
	doc := archive{
		Attrs: archiveAttrs{
			GridOriginOffset:     attrs.GridOriginOffset,
			GridSpacing:          attrs.GridSpacing,
			GridSize:             [3]int(attrs.GridSize),
			EleAnchorPt:          attrs.EleAnchorPt,
			GridGeometry:         string(attrs.GridGeometry),
			GridLowerBound:       attrs.GridLowerBound,
			Harmonic:             attrs.Harmonic,
			FundamentalFrequency: attrs.FundamentalFrequency,
			FieldScale:           attrs.FieldScale,
			RFPhase:              attrs.RFPhase,
		},
		Components: make(map[string]archiveComponent),
	}
	for _, key := range m.ComponentKeys() {
		comp, err := m.Component(key)
		if err != nil {
			return err
		}
		dim, ok := units.RecordDimension(fieldmesh.RecordOf(key))
		if !ok {
			return &DataIntegrityError{Component: key, Reason: "no known unit dimension for record"}
		}
		data := make([]float64, len(comp.Data()))
		copy(data, comp.Data())
		doc.Components[key] = archiveComponent{
			Shape:         [3]int(comp.Shape()),
			UnitDimension: [7]float64(dim),
			Data:          data,
		}
	}
	enc, err := encMode.Marshal(doc)
	if err != nil {
		return fmt.Errorf("pmdstore: encode archive: %w", err)
	}
	_, err = w.Write(enc)
	return err
}

// Read decodes and validates an archive, reconstructing the FieldMesh.
// Validation failures surface as DataIntegrityError before any mesh is
// returned.
func Read(r io.Reader) (*fieldmesh.FieldMesh, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc archive
	if err := decMode.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("pmdstore: decode archive: %w", err)
	}

	attrs := fieldmesh.Attrs{
		GridOriginOffset:     doc.Attrs.GridOriginOffset,
		GridSpacing:          doc.Attrs.GridSpacing,
		GridSize:             grid.Shape(doc.Attrs.GridSize),
		EleAnchorPt:          doc.Attrs.EleAnchorPt,
		GridGeometry:         fieldmesh.Geometry(doc.Attrs.GridGeometry),
		GridLowerBound:       doc.Attrs.GridLowerBound,
		Harmonic:             doc.Attrs.Harmonic,
		FundamentalFrequency: doc.Attrs.FundamentalFrequency,
		FieldScale:           doc.Attrs.FieldScale,
		RFPhase:              doc.Attrs.RFPhase,
	}

	components := make(map[string]*grid.Scalar, len(doc.Components))
	for key, rec := range doc.Components {
		canonical, ok := fieldmesh.CanonicalComponent(key)
		if !ok {
			return nil, &DataIntegrityError{Component: key, Reason: "unknown component record"}
		}
		expected, ok := units.RecordDimension(fieldmesh.RecordOf(canonical))
		if !ok {
			return nil, &DataIntegrityError{Component: key, Reason: "no known unit dimension for record"}
		}
		if !expected.Equal(units.Dimension(rec.UnitDimension)) {
			return nil, &DataIntegrityError{
				Component: key,
				Reason: fmt.Sprintf("unit dimension %v does not match expected %v",
					units.Dimension(rec.UnitDimension), expected),
			}
		}
		shape := grid.Shape(rec.Shape)
		if !shape.Equal(attrs.GridSize) {
			return nil, &DataIntegrityError{
				Component: key,
				Reason:    fmt.Sprintf("shape %v does not match declared grid size %v", shape, attrs.GridSize),
			}
		}
		if len(rec.Imag) > 0 {
			if attrs.Harmonic == 0 {
				// Static fields are real; a residual imaginary part is
				// discarded on load.
				rec.Imag = nil
			} else {
				return nil, &DataIntegrityError{Component: key, Reason: "complex component data is not supported"}
			}
		}
		comp, err := grid.NewScalarFrom(shape, rec.Data)
		if err != nil {
			return nil, &DataIntegrityError{Component: key, Reason: err.Error()}
		}
		components[canonical] = comp
	}

	m, err := fieldmesh.New(attrs, components)
	if err != nil {
		return nil, &DataIntegrityError{Reason: err.Error()}
	}
	return m, nil
}

// WriteFile writes the mesh archive to a file path.
func WriteFile(path string, m *fieldmesh.FieldMesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Write(f, m); err != nil {
		return err
	}
	return f.Close()
}

// ReadFile reads a mesh archive from a file path.
func ReadFile(path string) (*fieldmesh.FieldMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
