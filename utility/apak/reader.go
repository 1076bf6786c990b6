// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package apak

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/pierrec/lz4"
)

// Open opens the pack from r. It checks that the file actually is a
// pack and decodes the full index up front, so every later read is a
// single seek into the data section.
func Open(r io.ReaderAt) (*Pack, error) {
	rawMagic := make([]byte, MagicLength)
	if num, err := r.ReadAt(rawMagic, 0); err != nil {
		return nil, err
	} else if num < MagicLength || !bytes.Equal(rawMagic, magic[:]) {
		return nil, ErrFileFormat
	}

	headerSizeBytes := make([]byte, HeaderSizeNumberLength)
	if num, err := r.ReadAt(headerSizeBytes, MagicLength); err != nil {
		return nil, err
	} else if num < HeaderSizeNumberLength {
		return nil, ErrFileFormat
	}
	headerSize, err := binaryToint64(headerSizeBytes)
	if err != nil || headerSize <= 0 {
		return nil, ErrFileFormat
	}

	headerBytes := make([]byte, headerSize)
	if num, err := r.ReadAt(headerBytes, MagicLength+HeaderSizeNumberLength); err != nil {
		return nil, err
	} else if int64(num) < headerSize {
		return nil, ErrFileFormat
	}

	var header Header
	if err := gobDecode(&header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}

	return &Pack{
		reader:   r,
		header:   header,
		dataBase: MagicLength + HeaderSizeNumberLength + headerSize,
	}, nil
}

// Pack provides concurrent read access to an opened pack.
type Pack struct {
	reader   io.ReaderAt
	header   Header
	dataBase int64
}

// Index returns the decoded asset index.
func (p *Pack) Index() []IndexEntry {
	return p.header.Index
}

func (p *Pack) entry(name string) (IndexEntry, error) {
	for _, e := range p.header.Index {
		if e.Name == name {
			return e, nil
		}
	}
	return IndexEntry{}, ErrNotFound
}

// Open returns a reader of the decompressed contents of a named
// asset.
func (p *Pack) Open(name string) (io.Reader, error) {
	entry, err := p.entry(name)
	if err != nil {
		return nil, err
	}
	section := io.NewSectionReader(p.reader, p.dataBase+entry.Offset, entry.CompressedSize)
	return io.LimitReader(lz4.NewReader(section), entry.Size), nil
}

// ReadAll returns the entire decompressed contents of a named asset.
func (p *Pack) ReadAll(name string) ([]byte, error) {
	r, err := p.Open(name)
	if err != nil {
		return nil, err
	}
	return ioutil.ReadAll(r)
}

// Shader returns the source of a named shader asset.
func (p *Pack) Shader(name string) (string, error) {
	entry, err := p.entry(name)
	if err != nil {
		return "", err
	}
	if entry.Kind != AssetShader {
		return "", ErrNotFound
	}
	data, err := p.ReadAll(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Texture returns the metadata and raw blob of a named texture asset.
func (p *Pack) Texture(name string) (TextureInfo, []byte, error) {
	entry, err := p.entry(name)
	if err != nil {
		return TextureInfo{}, nil, err
	}
	if entry.Kind != AssetTexture || entry.Texture == nil {
		return TextureInfo{}, nil, ErrNotFound
	}
	data, err := p.ReadAll(name)
	if err != nil {
		return TextureInfo{}, nil, err
	}
	return *entry.Texture, data, nil
}
