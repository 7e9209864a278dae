package fbx

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Binary format errors.
var (
	ErrInvalidMagic       = errors.New("invalid FBX magic")
	ErrUnsupportedVersion = errors.New("unsupported FBX version")
	ErrTruncatedData      = errors.New("truncated FBX data")
	ErrCorruptNode        = errors.New("corrupt FBX node record")
)

// magic is the 21-byte FBX binary signature, followed by 0x1A 0x00.
const magic = "Kaydara FBX Binary  \x00"

const headerSize = len(magic) + 2 + 4

// Versions 7100 through 7700 use the node record layout this parser
// understands. 7500 widened the record header fields to 64 bits.
const (
	minVersion = 7100
	maxVersion = 7700
)

// Parse decodes an FBX binary document from a byte slice.
func Parse(data []byte) (*Tree, error) {
	if len(data) < headerSize {
		return nil, ErrTruncatedData
	}
	if string(data[:len(magic)]) != magic {
		return nil, ErrInvalidMagic
	}
	version := binary.LittleEndian.Uint32(data[len(magic)+2:])
	if version < minVersion || version > maxVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	p := &parser{data: data, off: headerSize, version: version}
	root := &Node{}
	for {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		if node == nil {
			break
		}
		root.Children = append(root.Children, node)
	}
	return NewTree(root, version), nil
}

// ParseFile decodes an FBX binary document from disk.
func ParseFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading FBX file: %w", err)
	}
	return Parse(data)
}

type parser struct {
	data    []byte
	off     int
	version uint32
}

// wideRecords reports whether node record header fields are 64-bit.
func (p *parser) wideRecords() bool {
	return p.version >= 7500
}

func (p *parser) sentinelSize() int {
	if p.wideRecords() {
		return 25
	}
	return 13
}

func (p *parser) remaining() int {
	return len(p.data) - p.off
}

func (p *parser) readBytes(n int) ([]byte, error) {
	if n < 0 || p.remaining() < n {
		return nil, ErrTruncatedData
	}
	b := p.data[p.off : p.off+n]
	p.off += n
	return b, nil
}

func (p *parser) readUint8() (uint8, error) {
	b, err := p.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (p *parser) readUint32() (uint32, error) {
	b, err := p.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (p *parser) readUint64() (uint64, error) {
	b, err := p.readBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// readRecordField reads one node record header field: 32-bit before
// version 7500, 64-bit from 7500 on.
func (p *parser) readRecordField() (uint64, error) {
	if p.wideRecords() {
		return p.readUint64()
	}
	v, err := p.readUint32()
	return uint64(v), err
}

// parseNode parses one node record at the current offset. A null record
// (the child list terminator, and the top-level terminator) yields
// (nil, nil).
func (p *parser) parseNode() (*Node, error) {
	start := p.off

	endOffset, err := p.readRecordField()
	if err != nil {
		return nil, err
	}
	numAttrs, err := p.readRecordField()
	if err != nil {
		return nil, err
	}
	if _, err := p.readRecordField(); err != nil { // attribute list byte length
		return nil, err
	}
	nameLen, err := p.readUint8()
	if err != nil {
		return nil, err
	}

	if endOffset == 0 {
		// Null record: remaining sentinel bytes were already consumed
		// by the reads above.
		if p.off != start+p.sentinelSize() {
			return nil, fmt.Errorf("%w: malformed null record at offset %d", ErrCorruptNode, start)
		}
		return nil, nil
	}
	end := int(endOffset)
	if end > len(p.data) || end <= start {
		return nil, fmt.Errorf("%w: end offset %d out of range at offset %d", ErrCorruptNode, end, start)
	}

	nameBytes, err := p.readBytes(int(nameLen))
	if err != nil {
		return nil, err
	}
	node := &Node{Name: string(nameBytes)}

	for i := uint64(0); i < numAttrs; i++ {
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, fmt.Errorf("node %q attribute %d: %w", node.Name, i, err)
		}
		node.Attributes = append(node.Attributes, attr)
	}

	// A nested child list, when present, is terminated by a null record.
	for p.off < end {
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		if child == nil {
			break
		}
		node.Children = append(node.Children, child)
	}
	if p.off != end {
		return nil, fmt.Errorf("%w: node %q ends at %d, expected %d", ErrCorruptNode, node.Name, p.off, end)
	}
	return node, nil
}

func (p *parser) parseAttribute() (Attribute, error) {
	code, err := p.readUint8()
	if err != nil {
		return Attribute{}, err
	}

	switch code {
	case 'C':
		b, err := p.readUint8()
		if err != nil {
			return Attribute{}, err
		}
		return Attribute{Value: b&1 == 1}, nil
	case 'Y':
		b, err := p.readBytes(2)
		if err != nil {
			return Attribute{}, err
		}
		return Attribute{Value: int16(binary.LittleEndian.Uint16(b))}, nil
	case 'I':
		v, err := p.readUint32()
		if err != nil {
			return Attribute{}, err
		}
		return Attribute{Value: int32(v)}, nil
	case 'L':
		v, err := p.readUint64()
		if err != nil {
			return Attribute{}, err
		}
		return Attribute{Value: int64(v)}, nil
	case 'F':
		v, err := p.readUint32()
		if err != nil {
			return Attribute{}, err
		}
		return Attribute{Value: math.Float32frombits(v)}, nil
	case 'D':
		v, err := p.readUint64()
		if err != nil {
			return Attribute{}, err
		}
		return Attribute{Value: math.Float64frombits(v)}, nil
	case 'S', 'R':
		n, err := p.readUint32()
		if err != nil {
			return Attribute{}, err
		}
		b, err := p.readBytes(int(n))
		if err != nil {
			return Attribute{}, err
		}
		if code == 'S' {
			return Attribute{Value: string(b)}, nil
		}
		return Attribute{Value: append([]byte(nil), b...)}, nil
	case 'b', 'i', 'l', 'f', 'd':
		return p.parseArrayAttribute(code)
	default:
		return Attribute{}, fmt.Errorf("%w: unknown attribute type code 0x%02x", ErrCorruptNode, code)
	}
}

// elemSizes maps array type codes to element byte widths.
var elemSizes = map[uint8]int{'b': 1, 'i': 4, 'l': 8, 'f': 4, 'd': 8}

func (p *parser) parseArrayAttribute(code uint8) (Attribute, error) {
	count, err := p.readUint32()
	if err != nil {
		return Attribute{}, err
	}
	encoding, err := p.readUint32()
	if err != nil {
		return Attribute{}, err
	}
	byteLen, err := p.readUint32()
	if err != nil {
		return Attribute{}, err
	}

	elemSize := elemSizes[code]
	raw, err := p.readBytes(int(byteLen))
	if err != nil {
		return Attribute{}, err
	}

	switch encoding {
	case 0:
		// Raw: byteLen must cover count elements exactly.
	case 1:
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return Attribute{}, fmt.Errorf("%w: bad zlib array stream: %v", ErrCorruptNode, err)
		}
		defer zr.Close()
		raw, err = io.ReadAll(zr)
		if err != nil {
			return Attribute{}, fmt.Errorf("%w: bad zlib array stream: %v", ErrCorruptNode, err)
		}
	default:
		return Attribute{}, fmt.Errorf("%w: unknown array encoding %d", ErrCorruptNode, encoding)
	}

	if len(raw) != int(count)*elemSize {
		return Attribute{}, fmt.Errorf("%w: array has %d bytes, expected %d", ErrCorruptNode, len(raw), int(count)*elemSize)
	}

	switch code {
	case 'b':
		out := make([]bool, count)
		for i := range out {
			out[i] = raw[i]&1 == 1
		}
		return Attribute{Value: out}, nil
	case 'i':
		out := make([]int32, count)
		for i := range out {
			out[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
		}
		return Attribute{Value: out}, nil
	case 'l':
		out := make([]int64, count)
		for i := range out {
			out[i] = int64(binary.LittleEndian.Uint64(raw[i*8:]))
		}
		return Attribute{Value: out}, nil
	case 'f':
		out := make([]float32, count)
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
		}
		return Attribute{Value: out}, nil
	default: // 'd'
		out := make([]float64, count)
		for i := range out {
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
		}
		return Attribute{Value: out}, nil
	}
}
