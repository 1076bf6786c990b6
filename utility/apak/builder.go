// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package apak

import (
	"bytes"
	"io"
	"sync"

	"github.com/pierrec/lz4"
)

// NewBuilder creates a new Builder. Do not fill the Index in the
// header, it will be overwritten anyway.
func NewBuilder(header Header) *Builder {
	header.Index = nil
	return &Builder{header: header}
}

type pendingAsset struct {
	entry IndexEntry
	blob  []byte
}

// Builder assembles a pack in memory. Packs are versioned and cannot
// be appended to; the Builder is the only way to create one. Each Add
// compresses its payload immediately, so WriteTo is a plain
// concatenation. Safe to use concurrently from different goroutines.
type Builder struct {
	header Header

	mutex  sync.Mutex
	assets []pendingAsset
}

// AddShader appends a named shader source to the pack.
func (b *Builder) AddShader(name, source string) error {
	return b.add(IndexEntry{Name: name, Kind: AssetShader}, []byte(source))
}

// AddTexture appends a named texture blob and its metadata to the
// pack. The blob layout is whatever the device upload path expects
// for the format named in info.
func (b *Builder) AddTexture(name string, info TextureInfo, data []byte) error {
	entry := IndexEntry{Name: name, Kind: AssetTexture, Texture: &info}
	return b.add(entry, data)
}

func (b *Builder) add(entry IndexEntry, data []byte) error {
	var compressed bytes.Buffer
	writer := lz4.NewWriter(&compressed)
	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	entry.Size = int64(len(data))
	entry.CompressedSize = int64(compressed.Len())

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.assets = append(b.assets, pendingAsset{entry: entry, blob: compressed.Bytes()})
	return nil
}

// WriteTo bundles everything added to the Builder into a pack that is
// ready to use and writes it out.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	header := b.header
	var offset int64
	for _, a := range b.assets {
		entry := a.entry
		entry.Offset = offset
		offset += entry.CompressedSize
		header.Index = append(header.Index, entry)
	}

	rawHeader, err := gobEncode(header)
	if err != nil {
		return 0, err
	}

	var written int64
	for _, chunk := range [][]byte{magic[:], int64ToBinary(int64(len(rawHeader))), rawHeader} {
		n, err := w.Write(chunk)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	for _, a := range b.assets {
		n, err := w.Write(a.blob)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
