// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package apak is an lz4 backed pack format for GPU assets. A pack
// bundles shader sources and ready-to-upload texture blobs together
// with the metadata a device needs to create the resources without
// parsing the payload. The pack itself is not compressed, every asset
// is compressed individually, so any single asset can be located
// through the index and decompressed on the fly without touching the
// rest of the file. It can be read from concurrently.
package apak

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"

	"github.com/devblok/gfx"
)

// package errors
var (
	ErrFileFormat = errors.New("corrupted or not an apak file")
	ErrNotFound   = errors.New("no asset with that name in the pack")
)

// Sizes relevant to the fixed part of the file.
const (
	MagicLength            = 4
	HeaderSizeNumberLength = 16
)

var magic = [...]byte{'A', 'P', 'A', 'K'}

// AssetKind tags what an index entry holds.
type AssetKind int

// Asset kinds.
const (
	AssetShader AssetKind = iota
	AssetTexture
)

// TextureInfo is the metadata a device needs to create and fill a
// texture from the raw blob.
type TextureInfo struct {
	Width     uint32
	Height    uint32
	MipLevels uint32
	Format    gfx.Format
}

// IndexEntry is info for one asset in the pack index. Offset is
// relative to the start of the data section, so the header can grow
// without invalidating it.
type IndexEntry struct {
	Name           string
	Kind           AssetKind
	Offset         int64
	Size           int64
	CompressedSize int64
	Texture        *TextureInfo
}

// Header is the pack header.
type Header struct {
	Tool        string
	DateCreated int64
	Version     int64
	Index       []IndexEntry
}

func int64ToBinary(num int64) []byte {
	numBytes := make([]byte, HeaderSizeNumberLength)
	binary.PutVarint(numBytes, num)
	return numBytes
}

func binaryToint64(bts []byte) (int64, error) {
	num, err := binary.ReadVarint(bytes.NewReader(bts))
	if err != nil {
		return 0, err
	}
	return num, nil
}

func gobEncode(data interface{}) ([]byte, error) {
	var encoded bytes.Buffer
	enc := gob.NewEncoder(&encoded)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

func gobDecode(obj interface{}, bts []byte) error {
	return gob.NewDecoder(bytes.NewReader(bts)).Decode(obj)
}
