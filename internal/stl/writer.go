package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects the STL serialization format
type Format int

const (
	FormatBinary Format = iota
	FormatASCII
)

// ParseFormat converts a format name to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "binary":
		return FormatBinary, nil
	case "ascii":
		return FormatASCII, nil
	default:
		return FormatBinary, fmt.Errorf("unknown STL format %q (supported: binary, ascii)", s)
	}
}

// String returns the format name
func (f Format) String() string {
	if f == FormatASCII {
		return "ascii"
	}
	return "binary"
}

// Writer serializes meshes to STL files. Header is an optional comment
// placed in the 80-byte binary header; it must not start with "solid" or
// binary files would be misdetected as ASCII.
type Writer struct {
	Format Format
	Header string
}

// NewWriter creates a writer for the given format
func NewWriter(format Format) *Writer {
	return &Writer{Format: format}
}

// WriteFile serializes the mesh to the given path, overwriting any
// existing file.
func (w *Writer) WriteFile(mesh *Mesh, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}

	if err := w.Write(mesh, file); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}
	return nil
}

// Write serializes the mesh to the given writer
func (w *Writer) Write(mesh *Mesh, out io.Writer) error {
	if w.Format == FormatASCII {
		return w.writeASCII(mesh, out)
	}
	return w.writeBinary(mesh, out)
}

func (w *Writer) writeBinary(mesh *Mesh, out io.Writer) error {
	var header [80]byte
	comment := w.Header
	if comment == "" {
		comment = "facestl " + mesh.Name
	}
	if strings.HasPrefix(comment, "solid") {
		comment = "facestl"
	}
	copy(header[:], comment)

	if _, err := out.Write(header[:]); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	if err := binary.Write(out, binary.LittleEndian, uint32(len(mesh.Triangles))); err != nil {
		return fmt.Errorf("error writing triangle count: %w", err)
	}

	for i, t := range mesh.Triangles {
		if err := binary.Write(out, binary.LittleEndian, t); err != nil {
			return fmt.Errorf("error writing triangle %d: %w", i, err)
		}
		if err := binary.Write(out, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("error writing attribute count: %w", err)
		}
	}

	return nil
}

func (w *Writer) writeASCII(mesh *Mesh, out io.Writer) error {
	buf := bufio.NewWriter(out)

	name := sanitizeName(mesh.Name)
	fmt.Fprintf(buf, "solid %s\n", name)
	for _, t := range mesh.Triangles {
		fmt.Fprintf(buf, "  facet normal %e %e %e\n", t.Normal.X, t.Normal.Y, t.Normal.Z)
		fmt.Fprintf(buf, "    outer loop\n")
		fmt.Fprintf(buf, "      vertex %e %e %e\n", t.V1.X, t.V1.Y, t.V1.Z)
		fmt.Fprintf(buf, "      vertex %e %e %e\n", t.V2.X, t.V2.Y, t.V2.Z)
		fmt.Fprintf(buf, "      vertex %e %e %e\n", t.V3.X, t.V3.Y, t.V3.Z)
		fmt.Fprintf(buf, "    endloop\n")
		fmt.Fprintf(buf, "  endfacet\n")
	}
	fmt.Fprintf(buf, "endsolid %s\n", name)

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("error writing mesh: %w", err)
	}
	return nil
}

// sanitizeName keeps the solid name on a single token-safe line
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return "mesh"
	}
	return name
}
