package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// hashKey builds a cache key as prefix:hash(parts). The full hash keeps
// distinct parameter combinations from colliding.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	h := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(h[:]))
}

// ArtifactKey identifies one rendered artifact: a graph (by content hash)
// rendered to a format at a DPI. The same inputs always produce the same
// key.
func ArtifactKey(graphHash, format string, dpi int) string {
	return hashKey("artifact", graphHash, format, dpi)
}

// WebMapKey identifies a rendered web map document for a graph. Tile
// provider changes invalidate the key.
func WebMapKey(graphHash, tiles string) string {
	return hashKey("webmap", graphHash, tiles)
}
