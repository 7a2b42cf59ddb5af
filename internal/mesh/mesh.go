// Package mesh holds the immutable vertex buffer of an annotated subject and
// classifies which annotation tables apply to it.
package mesh

import (
	"github.com/Faultbox/bodymark/pkg/math"
	"go.uber.org/zap"
)

// Mesh is a read-only flat coordinate buffer, (x, y, z) per vertex in vertex
// order. A Mesh is never mutated; a new subject means a new Mesh.
type Mesh struct {
	positions []float32
	schema    string
	variant   Variant
	sniffed   bool
	bounds    math.Box3
}

// Options configures mesh construction.
type Options struct {
	// Schema is an explicit index-scheme identifier such as SchemaStatsV1.
	// When empty the variant is sniffed from the buffer length.
	Schema string
	Logger *zap.Logger
}

// New wraps positions and classifies the mesh once. The caller must not
// modify positions afterwards.
func New(positions []float32, opts Options) *Mesh {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	m := &Mesh{positions: positions, schema: opts.Schema}
	m.variant, m.sniffed = classify(positions, opts.Schema, log)
	m.bounds = computeBounds(positions)
	return m
}

func classify(positions []float32, schema string, log *zap.Logger) (Variant, bool) {
	n := len(positions)
	sniffed := sniffVariant(n)

	if schema == "" {
		fields := []zap.Field{zap.Int("floats", n), zap.Stringer("variant", sniffed)}
		if sniffed.Annotatable() {
			log.Debug("mesh variant sniffed from buffer length", fields...)
		} else {
			log.Warn("mesh variant sniffed from buffer length", fields...)
		}
		return sniffed, true
	}

	if sniffed == VariantInvalid {
		return VariantInvalid, false
	}

	v, want, ok := schemaVariant(schema)
	if !ok {
		log.Warn("unknown mesh schema", zap.String("schema", schema), zap.Int("floats", n))
		return VariantUnsupported, false
	}
	if n != want {
		log.Warn("mesh buffer length does not match schema",
			zap.String("schema", schema), zap.Int("floats", n), zap.Int("expected", want))
		return VariantUnsupported, false
	}
	return v, false
}

func computeBounds(positions []float32) math.Box3 {
	b := math.EmptyBox()
	for i := 0; i+2 < len(positions); i += 3 {
		b.Extend(math.Vec3{
			X: float64(positions[i]),
			Y: float64(positions[i+1]),
			Z: float64(positions[i+2]),
		})
	}
	return b
}

// Variant returns the cached classification.
func (m *Mesh) Variant() Variant {
	if m == nil {
		return VariantInvalid
	}
	return m.variant
}

// Sniffed reports whether the variant came from length sniffing rather than
// an explicit schema.
func (m *Mesh) Sniffed() bool {
	return m != nil && m.sniffed
}

// Schema returns the schema identifier supplied at construction.
func (m *Mesh) Schema() string {
	if m == nil {
		return ""
	}
	return m.schema
}

// Len returns the number of floats in the buffer.
func (m *Mesh) Len() int {
	if m == nil {
		return 0
	}
	return len(m.positions)
}

// VertexCount returns the number of complete vertices.
func (m *Mesh) VertexCount() int {
	return m.Len() / 3
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (m *Mesh) Bounds() math.Box3 {
	if m == nil {
		return math.EmptyBox()
	}
	return m.bounds
}

// Vertex returns the point whose x coordinate sits at flat index i.
//
// A mesh without a buffer, or an index whose triple runs past the end,
// yields the origin. Callers treat the origin as "no geometry", never as a
// real landmark.
func (m *Mesh) Vertex(i int) math.Vec3 {
	if m == nil || i < 0 || i+2 >= len(m.positions) {
		return math.Vec3{}
	}
	p := m.positions
	return math.Vec3{X: float64(p[i]), Y: float64(p[i+1]), Z: float64(p[i+2])}
}
