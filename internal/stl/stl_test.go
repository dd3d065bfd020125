package stl

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/facestl/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMesh() *Mesh {
	return FromGeometry("Hub_Inlet", []geometry.Triangle{
		{
			V1: geometry.Vector3{X: 0, Y: 0, Z: 0},
			V2: geometry.Vector3{X: 1, Y: 0, Z: 0},
			V3: geometry.Vector3{X: 0, Y: 1, Z: 0},
		},
		{
			V1: geometry.Vector3{X: 1, Y: 0, Z: 0},
			V2: geometry.Vector3{X: 1, Y: 1, Z: 0},
			V3: geometry.Vector3{X: 0, Y: 1, Z: 0},
		},
	})
}

func TestFromGeometryComputesNormals(t *testing.T) {
	mesh := testMesh()
	require.Len(t, mesh.Triangles, 2)
	assert.Equal(t, Vector3{X: 0, Y: 0, Z: 1}, mesh.Triangles[0].Normal)
	assert.Equal(t, "Hub_Inlet", mesh.Name)
}

func TestBinaryRoundTrip(t *testing.T) {
	mesh := testMesh()
	path := filepath.Join(t.TempDir(), "out.stl")

	writer := NewWriter(FormatBinary)
	require.NoError(t, writer.WriteFile(mesh, path))

	parsed, err := NewParser().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, mesh.Triangles, parsed.Triangles)
}

func TestASCIIRoundTrip(t *testing.T) {
	mesh := testMesh()
	path := filepath.Join(t.TempDir(), "out.stl")

	writer := NewWriter(FormatASCII)
	require.NoError(t, writer.WriteFile(mesh, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("solid Hub_Inlet")))

	parsed, err := NewParser().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "Hub_Inlet", parsed.Name)
	assert.Equal(t, mesh.Triangles, parsed.Triangles)
}

func TestBinaryHeaderNeverStartsWithSolid(t *testing.T) {
	mesh := testMesh()
	var buf bytes.Buffer

	writer := &Writer{Format: FormatBinary, Header: "solid trap"}
	require.NoError(t, writer.Write(mesh, &buf))

	assert.False(t, bytes.HasPrefix(buf.Bytes(), []byte("solid")))
	// 80-byte header + count + 2 * (12 floats + attr)
	assert.Equal(t, 80+4+2*(12*4+2), buf.Len())
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.stl")
	writer := NewWriter(FormatBinary)

	require.NoError(t, writer.WriteFile(testMesh(), path))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, writer.WriteFile(testMesh(), path))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	// re-running with identical input produces byte-identical output
	assert.Equal(t, first, second)
}

func TestWriteEmptyMesh(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatBinary)
	require.NoError(t, writer.Write(&Mesh{Name: "empty"}, &buf))
	assert.Equal(t, 84, buf.Len())
}

func TestParseMissingFile(t *testing.T) {
	_, err := NewParser().Parse(filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"binary", FormatBinary, false},
		{"ascii", FormatASCII, false},
		{"ASCII", FormatASCII, false},
		{"", FormatBinary, false},
		{"obj", FormatBinary, true},
	}

	for _, tt := range tests {
		f, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, f, "input %q", tt.input)
	}
}
