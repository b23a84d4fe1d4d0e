package indexshow

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(b *Block, opts RenderOptions) string {
	var buf bytes.Buffer
	RenderBlock(&buf, b, opts)
	return buf.String()
}

func TestRenderHead(t *testing.T) {
	b := &Block{No: 0, Data: headBlock(5)}
	out := render(b, RenderOptions{})

	lines := strings.SplitN(out, "\n", 3)
	assert.Equal(t, "    TYPE: HEAD", lines[0])
	assert.Equal(t, "    ROOT_NODE_PAGE_ID: 5", lines[1])
	// the label lines are followed by the raw dump of the whole block
	assert.Equal(t, hexDump(b.Data), lines[2])
}

func TestRenderHeadVerbose(t *testing.T) {
	b := &Block{No: 0, Data: headBlock(7)}
	out := render(b, RenderOptions{Verbose: true})

	assert.Contains(t, out, "    ROOT_NODE_PAGE_ID: 7\n")
	assert.Contains(t, out, "    VERSION: 0\n")
	assert.Contains(t, out, "    MAGIC: OK\n")
	assert.Contains(t, out, fmt.Sprintf("    XXH64: %016x\n", b.Sum64()))
}

func TestRenderHeadBadMagicVerbose(t *testing.T) {
	c := headBlock(7)
	c[HeadMagicOff] = 'x'
	out := render(&Block{Data: c}, RenderOptions{Verbose: true})
	assert.Contains(t, out, "    MAGIC: BAD\n")
}

func TestRenderLeafInternal(t *testing.T) {
	leaf := make([]byte, BlockSize)
	leaf[0] = byte(BlockLeaf)
	assert.Equal(t, "    TYPE: LEAF\n", render(&Block{Data: leaf}, RenderOptions{}))

	internal := make([]byte, BlockSize)
	internal[0] = byte(BlockInternal)
	assert.Equal(t, "    TYPE: INTERNAL\n", render(&Block{Data: internal}, RenderOptions{}))
}

func TestRenderUnknown(t *testing.T) {
	c := make([]byte, 48)
	c[0] = 9
	out := render(&Block{Data: c}, RenderOptions{})

	require.True(t, strings.HasPrefix(out, "    UNKNOWN\n"))
	assert.Equal(t, hexDump(c), strings.TrimPrefix(out, "    UNKNOWN\n"))
}

func TestDumpFileEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DumpFile(&buf, bytes.NewReader(nil), RenderOptions{}))
	assert.Equal(t, "", buf.String())
}

func TestDumpFileHeadBlock(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DumpFile(&buf, bytes.NewReader(headBlock(5)), RenderOptions{}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "BLOCK_ID 0\n"))
	assert.Contains(t, out, "    TYPE: HEAD\n")
	assert.Contains(t, out, "    ROOT_NODE_PAGE_ID: 5\n")
	assert.True(t, strings.HasSuffix(out, "\n\n"), "blank separator after the block")

	// BLOCK_ID, two label lines, dump header and separator, 128 data
	// rows, the dump end row, the blank separator line.
	lines := strings.Split(out, "\n")
	require.Equal(t, "", lines[len(lines)-1])
	assert.Len(t, lines[:len(lines)-1], 1+2+2+128+1+1)
}

func TestDumpFileSequence(t *testing.T) {
	file := append(headBlock(1), make([]byte, BlockSize+10)...)
	file[BlockSize] = byte(BlockLeaf)
	file[2*BlockSize] = byte(BlockInternal)

	var buf bytes.Buffer
	require.NoError(t, DumpFile(&buf, bytes.NewReader(file), RenderOptions{}))
	out := buf.String()

	i0 := strings.Index(out, "BLOCK_ID 0\n")
	i1 := strings.Index(out, "BLOCK_ID 1\n")
	i2 := strings.Index(out, "BLOCK_ID 2\n")
	require.True(t, i0 >= 0 && i1 > i0 && i2 > i1)

	assert.Contains(t, out, "BLOCK_ID 1\n    TYPE: LEAF\n\n")
	assert.Contains(t, out, "BLOCK_ID 2\n    TYPE: INTERNAL\n\n")
}

func TestDumpFilePartialTail(t *testing.T) {
	// Single 40-byte block with an unrecognized tag: rendered at its
	// actual length, not padded to BlockSize.
	c := make([]byte, 40)
	c[0] = 0xee

	var buf bytes.Buffer
	require.NoError(t, DumpFile(&buf, bytes.NewReader(c), RenderOptions{}))

	want := "BLOCK_ID 0\n    UNKNOWN\n" + hexDump(c) + "\n"
	assert.Equal(t, want, buf.String())
}
