package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/facestl/internal/geometry"
)

// Vector3 represents a 3D vector in STL's 32-bit precision
type Vector3 struct {
	X, Y, Z float32
}

// Triangle represents a facet in an STL mesh
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// Mesh represents an STL mesh
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// FromGeometry converts double-precision geometry triangles into an STL
// mesh, computing facet normals from the winding order.
func FromGeometry(name string, tris []geometry.Triangle) *Mesh {
	mesh := &Mesh{
		Name:      name,
		Triangles: make([]Triangle, len(tris)),
	}
	for i, t := range tris {
		mesh.Triangles[i] = Triangle{
			Normal: toVector3(t.Normal()),
			V1:     toVector3(t.V1),
			V2:     toVector3(t.V2),
			V3:     toVector3(t.V3),
		}
	}
	return mesh
}

func toVector3(v geometry.Vector3) Vector3 {
	return Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Parser parses STL files
type Parser struct{}

// NewParser creates a new STL parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an STL file and returns the mesh data
func (p *Parser) Parse(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	// Read first few bytes to detect format
	header := make([]byte, 80)
	if _, err := io.ReadFull(file, header); err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	// Reset file position
	if _, err := file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("error seeking: %w", err)
	}

	// Check if it's ASCII (starts with "solid")
	if strings.HasPrefix(string(header), "solid") {
		return p.parseASCII(file, filename)
	}
	return p.parseBinary(file, filename)
}

// parseASCII parses an ASCII STL file
func (p *Parser) parseASCII(reader io.Reader, filename string) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := &Mesh{
		Name:      filepath.Base(filename),
		Triangles: []Triangle{},
	}

	var currentTriangle Triangle
	var vertexCount int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}
		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				fmt.Sscanf(strings.Join(fields[2:], " "), "%f %f %f",
					&currentTriangle.Normal.X, &currentTriangle.Normal.Y, &currentTriangle.Normal.Z)
			}
			vertexCount = 0
		case "vertex":
			if len(fields) >= 4 {
				var v Vector3
				fmt.Sscanf(strings.Join(fields[1:], " "), "%f %f %f", &v.X, &v.Y, &v.Z)
				switch vertexCount {
				case 0:
					currentTriangle.V1 = v
				case 1:
					currentTriangle.V2 = v
				case 2:
					currentTriangle.V3 = v
				}
				vertexCount++
			}
		case "endfacet":
			mesh.Triangles = append(mesh.Triangles, currentTriangle)
			currentTriangle = Triangle{}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return mesh, nil
}

// parseBinary parses a binary STL file
func (p *Parser) parseBinary(reader io.Reader, filename string) (*Mesh, error) {
	mesh := &Mesh{
		Name: filepath.Base(filename),
	}

	// Read 80-byte header
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	// Read triangle count
	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("error reading triangle count: %w", err)
	}

	// Read triangles
	mesh.Triangles = make([]Triangle, triangleCount)
	for i := uint32(0); i < triangleCount; i++ {
		var triangle Triangle

		if err := binary.Read(reader, binary.LittleEndian, &triangle.Normal); err != nil {
			return nil, fmt.Errorf("error reading normal: %w", err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &triangle.V1); err != nil {
			return nil, fmt.Errorf("error reading vertex 1: %w", err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &triangle.V2); err != nil {
			return nil, fmt.Errorf("error reading vertex 2: %w", err)
		}
		if err := binary.Read(reader, binary.LittleEndian, &triangle.V3); err != nil {
			return nil, fmt.Errorf("error reading vertex 3: %w", err)
		}

		// Skip attribute byte count
		var attributeCount uint16
		if err := binary.Read(reader, binary.LittleEndian, &attributeCount); err != nil {
			return nil, fmt.Errorf("error reading attribute count: %w", err)
		}

		mesh.Triangles[i] = triangle
	}

	return mesh, nil
}
