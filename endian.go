// endian.go - Little-endian byte reading utilities
package indexshow

import (
	"encoding/binary"
	"errors"
)

func le32(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, errors.New("le32 out of bounds")
	}
	return binary.LittleEndian.Uint32(b[off : off+4]), nil
}
