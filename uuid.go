package base57

import (
	"encoding/binary"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UUIDLength is the length of an encoded UUID.
const UUIDLength = 2 * GroupSize

// EncodeUUID encodes u as two groups: first the low 64 bits, then the high 64 bits, each half read as
// a big-endian integer.
func EncodeUUID(u uuid.UUID) string {
	dst := make([]byte, 0, UUIDLength)
	dst = AppendUint64(dst, binary.BigEndian.Uint64(u[8:]))
	dst = AppendUint64(dst, binary.BigEndian.Uint64(u[:8]))
	return string(dst)
}

// DecodeUUID is the reverse of EncodeUUID.
func DecodeUUID(s string) (uuid.UUID, error) {
	var u uuid.UUID
	if len(s) != UUIDLength {
		return u, errors.Errorf("invalid encoded UUID length %d, expected %d", len(s), UUIDLength)
	}

	lo, err := DecodeUint64(s[:GroupSize])
	if err != nil {
		return u, errors.Wrapf(err, "invalid low half of UUID %q", s)
	}
	hi, err := DecodeUint64(s[GroupSize:])
	if err != nil {
		return u, errors.Wrapf(err, "invalid high half of UUID %q", s)
	}

	binary.BigEndian.PutUint64(u[:8], hi)
	binary.BigEndian.PutUint64(u[8:], lo)
	return u, nil
}
