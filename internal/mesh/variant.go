package mesh

import "fmt"

// Variant classifies which landmark and ring index scheme applies to a mesh.
type Variant int

// Variant values. The zero value is VariantInvalid.
const (
	VariantInvalid     Variant = iota // missing or malformed buffer
	VariantUnsupported                // renderable, but no annotation tables
	VariantPhoto                      // photo-estimated body
	VariantStats                      // stats-estimated body
)

// Known vertex-buffer lengths, in floats.
const (
	PhotoBufferLen = 577080
	StatsBufferLen = 577368
)

// Schema identifiers that may be supplied alongside a mesh.
const (
	SchemaPhotoV1 = "photo/v1"
	SchemaStatsV1 = "stats/v1"
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantInvalid:
		return "invalid"
	case VariantUnsupported:
		return "unsupported"
	case VariantPhoto:
		return "photo"
	case VariantStats:
		return "stats"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Annotatable reports whether landmark and ring tables exist for v.
func (v Variant) Annotatable() bool {
	return v == VariantPhoto || v == VariantStats
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// schemaVariant maps a schema identifier to its variant and expected length.
func schemaVariant(schema string) (Variant, int, bool) {
	switch schema {
	case SchemaPhotoV1:
		return VariantPhoto, PhotoBufferLen, true
	case SchemaStatsV1:
		return VariantStats, StatsBufferLen, true
	}
	return VariantUnsupported, 0, false
}

// sniffVariant derives the variant from the buffer length alone.
func sniffVariant(n int) Variant {
	switch {
	case n == 0 || n%3 != 0:
		return VariantInvalid
	case n == PhotoBufferLen:
		return VariantPhoto
	case n == StatsBufferLen:
		return VariantStats
	default:
		return VariantUnsupported
	}
}
