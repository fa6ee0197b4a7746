package frame

import "github.com/cespare/xxhash/v2"

// Fingerprint returns a 64-bit digest of a DataType's structural fields,
// suitable for use as a map key. Equal tags always produce equal
// fingerprints, so a fingerprint can stand in for a tag wherever comparable
// keys are required.
func Fingerprint(dt DataType) uint64 {
	return xxhash.Sum64(appendTag(nil, dt))
}

func appendTag(b []byte, dt DataType) []byte {
	b = append(b, byte(dt.Kind()))
	if c, ok := dt.(*CategoricalType); ok {
		b = appendTag(b, c.IndexType)
		b = appendTag(b, c.CategoryType)
		if c.Ordered {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
	}
	return b
}
