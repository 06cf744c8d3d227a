package dump

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Record checksum names accepted by Options.Checksum. A checksum line per
// record lets two dumps be compared without diffing their hex rows.
const (
	ChecksumNone    = ""
	ChecksumXXH3    = "xxh3"
	ChecksumFNV1a   = "fnv1a"
	ChecksumBlake2b = "blake2b"
)

// recordDigests reduce a record payload to 64 bits.
var recordDigests = map[string]func([]byte) uint64{
	ChecksumFNV1a: func(payload []byte) uint64 {
		h := fnv.New64a()
		h.Write(payload)
		return h.Sum64()
	},
	ChecksumBlake2b: func(payload []byte) uint64 {
		h, _ := blake2b.New(8, nil)
		h.Write(payload)
		return binary.BigEndian.Uint64(h.Sum(nil))
	},
	ChecksumXXH3: xxh3.Hash,
}

// ValidChecksum reports whether alg names a supported algorithm.
func ValidChecksum(alg string) bool {
	_, ok := recordDigests[alg]
	return ok || alg == ChecksumNone
}

// checksum formats the digest of a record payload as 16 hex digits. It is
// empty when no algorithm is selected.
func checksum(payload []byte, alg string) string {
	digest, ok := recordDigests[alg]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%016x", digest(payload))
}
