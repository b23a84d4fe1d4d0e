package indexshow

import "github.com/cespare/xxhash/v2"

// Block is a read-only view of one fixed-size unit of the index file.
// Blocks are numbered from 0 in file order; the final block of a file
// may be shorter than BlockSize.
type Block struct {
	No   uint32
	Data []byte
}

// Type returns the tag byte at offset 0. A zero-length block has no tag
// and reports as unknown.
func (b *Block) Type() BlockType {
	if len(b.Data) == 0 {
		return BlockType(0)
	}
	return BlockType(b.Data[0])
}

// Sum64 returns the xxhash64 digest of the block bytes.
func (b *Block) Sum64() uint64 { return xxhash.Sum64(b.Data) }
