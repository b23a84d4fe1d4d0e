package indexshow

import "fmt"

// Sizes and constants
const (
	BlockSize = 4 * 1024 // 4096

	// Head block header layout:
	//   byte 0       node type tag
	//   byte 1       format version
	//   bytes 2..64  magic literal, zero-padded
	//   bytes 64..68 ROOT_NODE_PAGE_ID (little-endian u32)
	HeadVersionOff    = 1
	HeadMagicOff      = 2
	HeadMagicSize     = 62
	HeadRootPageIDOff = 64
	HeadHeaderSize    = HeadRootPageIDOff + 4
)

// Block types (byte 0 of every block)
type BlockType uint8

const (
	BlockHead     BlockType = 1
	BlockLeaf     BlockType = 2
	BlockInternal BlockType = 3
)

func (t BlockType) String() string {
	switch t {
	case BlockHead:
		return "HEAD"
	case BlockLeaf:
		return "LEAF"
	case BlockInternal:
		return "INTERNAL"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
	}
}

var LitHeadMagic = []byte("skogkatt.org/WasteIsland/B-Plus-Tree")
