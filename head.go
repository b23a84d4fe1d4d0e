// head.go - head block header parsing
package indexshow

import (
	"bytes"
	"fmt"
)

// HeadHeader is the decoded fixed header of a HEAD block. The head block
// is the first block of a well-formed index file and points at the root
// node of the tree.
type HeadHeader struct {
	Version        uint8
	Magic          []byte // HeadMagicSize bytes, literal plus zero padding
	RootNodePageID uint32
}

func ParseHeadHeader(p []byte) (HeadHeader, error) {
	if len(p) < HeadHeaderSize {
		return HeadHeader{}, fmt.Errorf("short head block: %d", len(p))
	}
	if BlockType(p[0]) != BlockHead {
		return HeadHeader{}, fmt.Errorf("not a head block: tag %d", p[0])
	}
	root, _ := le32(p, HeadRootPageIDOff)
	return HeadHeader{
		Version:        p[HeadVersionOff],
		Magic:          append([]byte(nil), p[HeadMagicOff:HeadMagicOff+HeadMagicSize]...),
		RootNodePageID: root,
	}, nil
}

// CheckMagic reports whether the magic field holds the expected literal
// followed only by zero padding.
func (h HeadHeader) CheckMagic() bool {
	if len(h.Magic) != HeadMagicSize || !bytes.HasPrefix(h.Magic, LitHeadMagic) {
		return false
	}
	for _, b := range h.Magic[len(LitHeadMagic):] {
		if b != 0 {
			return false
		}
	}
	return true
}

// rootPageID decodes ROOT_NODE_PAGE_ID leniently: a block truncated
// inside the field yields whatever low-order bytes are present, and a
// block shorter than the field offset yields 0.
func rootPageID(c []byte) uint32 {
	var v uint32
	for i := 0; i < 4; i++ {
		off := HeadRootPageIDOff + i
		if off >= len(c) {
			break
		}
		v |= uint32(c[off]) << (8 * i)
	}
	return v
}
