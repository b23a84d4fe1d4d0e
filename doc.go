// Package indexshow provides a library and CLI for inspecting the
// on-disk block file of the WasteIsland B+-tree index.
//
// The index file is a sequence of fixed 4 KiB blocks (the last one may
// be short). Byte 0 of every block is a type tag: 1 = head, 2 = leaf,
// 3 = internal. The head block carries a format version, a magic
// literal, and ROOT_NODE_PAGE_ID, the page number of the tree's root.
//
// File layout:
//
//   - types.go: tags, sizes and the head header layout
//   - endian.go: little-endian byte reading utilities
//   - head.go: head block header parsing
//   - block.go: the Block view type
//   - reader.go: sequential and random-access block reading
//   - dump.go: raw hex/ASCII rendering
//   - render.go: per-type rendering and the whole-file dump loop
//
// Basic usage:
//
//	f, _ := os.Open("index")
//	defer f.Close()
//
//	indexshow.DumpFile(os.Stdout, f, indexshow.RenderOptions{})
package indexshow
