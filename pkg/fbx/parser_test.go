package fbx

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestParse_HeaderValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name:    "empty data",
			data:    []byte{},
			wantErr: ErrTruncatedData,
		},
		{
			name:    "short data",
			data:    []byte("Kaydara"),
			wantErr: ErrTruncatedData,
		},
		{
			name:    "bad magic",
			data:    makeFBXData(7400, testNode{name: "X"})[1:],
			wantErr: ErrInvalidMagic,
		},
		{
			name:    "unsupported old version",
			data:    makeFBXData(6100),
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "unsupported future version",
			data:    makeFBXData(8000),
			wantErr: ErrUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParse_NodeStructure(t *testing.T) {
	data := makeFBXData(7400,
		testNode{
			name:  "GlobalSettings",
			attrs: [][]byte{},
			children: []testNode{
				{name: "Version", attrs: [][]byte{attrInt32(1000)}},
				{name: "Properties70"},
			},
		},
		testNode{name: "Objects"},
	)

	tree, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if tree.Version() != 7400 {
		t.Errorf("Version() = %d, want 7400", tree.Version())
	}

	root := tree.Root()
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}

	gs := root.FirstChildByName("GlobalSettings")
	if gs == nil {
		t.Fatal("GlobalSettings node not found")
	}
	if len(gs.Children) != 2 {
		t.Errorf("GlobalSettings has %d children, want 2", len(gs.Children))
	}

	ver := gs.FirstChildByName("Version")
	if ver == nil {
		t.Fatal("Version node not found")
	}
	attr, ok := ver.Attr(0)
	if !ok {
		t.Fatal("Version node has no attribute")
	}
	if v, ok := attr.AsInt32(); !ok || v != 1000 {
		t.Errorf("Version attribute = %v, want int32 1000", attr.Value)
	}

	if root.FirstChildByName("Nonexistent") != nil {
		t.Error("FirstChildByName returned non-nil for missing node")
	}
}

func TestParse_ScalarAttributes(t *testing.T) {
	data := makeFBXData(7400,
		testNode{
			name: "P",
			attrs: [][]byte{
				attrString("UpAxis"),
				attrInt32(1),
				attrInt64(42),
				attrFloat64(2.54),
				attrBool(true),
			},
		},
	)

	tree, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	node := tree.Root().FirstChildByName("P")
	if node == nil {
		t.Fatal("P node not found")
	}
	if len(node.Attributes) != 5 {
		t.Fatalf("got %d attributes, want 5", len(node.Attributes))
	}

	if v, ok := node.Attributes[0].AsString(); !ok || v != "UpAxis" {
		t.Errorf("attr 0 = %v, want \"UpAxis\"", node.Attributes[0].Value)
	}
	if v, ok := node.Attributes[1].AsInt32(); !ok || v != 1 {
		t.Errorf("attr 1 = %v, want int32 1", node.Attributes[1].Value)
	}
	if v, ok := node.Attributes[2].AsInt64(); !ok || v != 42 {
		t.Errorf("attr 2 = %v, want int64 42", node.Attributes[2].Value)
	}
	if v, ok := node.Attributes[3].AsFloat64(); !ok || v != 2.54 {
		t.Errorf("attr 3 = %v, want float64 2.54", node.Attributes[3].Value)
	}
	if v, ok := node.Attributes[4].AsBool(); !ok || v != true {
		t.Errorf("attr 4 = %v, want true", node.Attributes[4].Value)
	}
}

func TestParse_ArrayAttributes(t *testing.T) {
	indices := []int32{0, 1, 2, -4}
	verts := []float64{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}

	data := makeFBXData(7400,
		testNode{name: "PolygonVertexIndex", attrs: [][]byte{attrInt32Array(indices, false)}},
		testNode{name: "Vertices", attrs: [][]byte{attrFloat64Array(verts)}},
		testNode{name: "Compressed", attrs: [][]byte{attrInt32Array(indices, true)}},
	)

	tree, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	pvi := tree.Root().FirstChildByName("PolygonVertexIndex")
	got, ok := pvi.Attributes[0].AsInt32Array()
	if !ok {
		t.Fatalf("PolygonVertexIndex attribute is %s, want int32[]", pvi.Attributes[0].TypeName())
	}
	for i, want := range indices {
		if got[i] != want {
			t.Errorf("index %d = %d, want %d", i, got[i], want)
		}
	}

	vn := tree.Root().FirstChildByName("Vertices")
	gotVerts, ok := vn.Attributes[0].AsFloat64Array()
	if !ok || len(gotVerts) != len(verts) {
		t.Fatalf("Vertices attribute = %v, want %d float64s", vn.Attributes[0].Value, len(verts))
	}
	if gotVerts[3] != 1.0 {
		t.Errorf("Vertices[3] = %v, want 1.0", gotVerts[3])
	}

	cn := tree.Root().FirstChildByName("Compressed")
	gotZ, ok := cn.Attributes[0].AsInt32Array()
	if !ok {
		t.Fatalf("Compressed attribute is %s, want int32[]", cn.Attributes[0].TypeName())
	}
	for i, want := range indices {
		if gotZ[i] != want {
			t.Errorf("zlib index %d = %d, want %d", i, gotZ[i], want)
		}
	}
}

func TestParse_CorruptEndOffset(t *testing.T) {
	data := makeFBXData(7400, testNode{name: "X"})
	// Point the first node's end offset past the end of the buffer.
	binary.LittleEndian.PutUint32(data[headerSize:], uint32(len(data)+100))

	_, err := Parse(data)
	if !errors.Is(err, ErrCorruptNode) {
		t.Errorf("Parse() error = %v, want %v", err, ErrCorruptNode)
	}
}

func TestParse_TruncatedNode(t *testing.T) {
	data := makeFBXData(7400, testNode{name: "X", attrs: [][]byte{attrInt32(7)}})
	_, err := Parse(data[:len(data)-20])
	if err == nil {
		t.Error("Parse() succeeded on truncated data")
	}
}

func TestTree_NodeIDs(t *testing.T) {
	data := makeFBXData(7400,
		testNode{name: "A", children: []testNode{{name: "B"}}},
		testNode{name: "C"},
	)

	tree, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	b := tree.Root().FirstChildByName("A").FirstChildByName("B")
	if tree.Node(b.ID()) != b {
		t.Error("Node(ID()) did not round-trip")
	}
	if tree.Node(NodeID(tree.NodeCount())) != nil {
		t.Error("Node() returned non-nil for out-of-range ID")
	}
	if tree.Root().ID() != 0 {
		t.Errorf("root ID = %d, want 0", tree.Root().ID())
	}
}

// Helpers for building FBX binary test data. Version must be below 7500
// (32-bit node record headers).

type testNode struct {
	name     string
	attrs    [][]byte
	children []testNode
}

// encode serializes the node record assuming it begins at absolute
// offset start.
func (n testNode) encode(start int) []byte {
	attrData := bytes.Join(n.attrs, nil)
	headerLen := 13 + len(n.name)

	off := start + headerLen + len(attrData)
	var childData []byte
	if len(n.children) > 0 {
		for _, c := range n.children {
			cb := c.encode(off)
			childData = append(childData, cb...)
			off += len(cb)
		}
		childData = append(childData, make([]byte, 13)...) // null record
		off += 13
	}

	var buf bytes.Buffer
	writeU32 := func(v uint32) { _ = binary.Write(&buf, binary.LittleEndian, v) }
	writeU32(uint32(off)) // end offset
	writeU32(uint32(len(n.attrs)))
	writeU32(uint32(len(attrData)))
	buf.WriteByte(uint8(len(n.name)))
	buf.WriteString(n.name)
	buf.Write(attrData)
	buf.Write(childData)
	return buf.Bytes()
}

func makeFBXData(version uint32, nodes ...testNode) []byte {
	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.WriteByte(0x1a)
	buf.WriteByte(0x00)
	_ = binary.Write(&buf, binary.LittleEndian, version)

	for _, n := range nodes {
		buf.Write(n.encode(buf.Len()))
	}
	buf.Write(make([]byte, 13)) // top-level null record
	return buf.Bytes()
}

func attrBool(v bool) []byte {
	b := byte(0)
	if v {
		b = 1
	}
	return []byte{'C', b}
}

func attrInt32(v int32) []byte {
	buf := make([]byte, 5)
	buf[0] = 'I'
	binary.LittleEndian.PutUint32(buf[1:], uint32(v))
	return buf
}

func attrInt64(v int64) []byte {
	buf := make([]byte, 9)
	buf[0] = 'L'
	binary.LittleEndian.PutUint64(buf[1:], uint64(v))
	return buf
}

func attrFloat64(v float64) []byte {
	buf := make([]byte, 9)
	buf[0] = 'D'
	binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(v))
	return buf
}

func attrString(s string) []byte {
	buf := make([]byte, 5+len(s))
	buf[0] = 'S'
	binary.LittleEndian.PutUint32(buf[1:], uint32(len(s)))
	copy(buf[5:], s)
	return buf
}

func attrInt32Array(vals []int32, compress bool) []byte {
	raw := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(raw[i*4:], uint32(v))
	}

	encoding := uint32(0)
	payload := raw
	if compress {
		encoding = 1
		var zbuf bytes.Buffer
		zw := zlib.NewWriter(&zbuf)
		_, _ = zw.Write(raw)
		_ = zw.Close()
		payload = zbuf.Bytes()
	}

	var buf bytes.Buffer
	buf.WriteByte('i')
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(vals)))
	_ = binary.Write(&buf, binary.LittleEndian, encoding)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)
	return buf.Bytes()
}

func attrFloat64Array(vals []float64) []byte {
	var buf bytes.Buffer
	buf.WriteByte('d')
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(vals)))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(0))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(8*len(vals)))
	for _, v := range vals {
		_ = binary.Write(&buf, binary.LittleEndian, math.Float64bits(v))
	}
	return buf.Bytes()
}
