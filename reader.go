package indexshow

import (
	"fmt"
	"io"
)

// BlockReader scans an index file sequentially, one BlockSize chunk at a
// time, numbering blocks from 0.
type BlockReader struct {
	r  io.Reader
	no uint32
}

func NewBlockReader(r io.Reader) *BlockReader { return &BlockReader{r: r} }

// Next returns the next block in file order. The final block may be
// shorter than BlockSize. After the last block, Next returns io.EOF.
func (br *BlockReader) Next() (*Block, error) {
	buf := make([]byte, BlockSize)
	n, err := io.ReadFull(br.r, buf)
	if n == 0 {
		if err == io.EOF || err == io.ErrUnexpectedEOF || err == nil {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read block %d: %w", br.no, err)
	}
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("read block %d: %w", br.no, err)
	}
	b := &Block{No: br.no, Data: buf[:n]}
	br.no++
	return b, nil
}

// ReadBlockAt reads a single block by number. A short tail block is
// returned at its actual length; a block past end of file is an error.
func ReadBlockAt(r io.ReaderAt, no uint32) (*Block, error) {
	buf := make([]byte, BlockSize)
	off := int64(no) * int64(BlockSize)
	n, err := r.ReadAt(buf, off)
	if err != nil && !(err == io.EOF && n > 0) {
		return nil, fmt.Errorf("read block %d: %w", no, err)
	}
	return &Block{No: no, Data: buf[:n]}, nil
}
