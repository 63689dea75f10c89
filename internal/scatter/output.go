package scatter

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// DefaultPath is where the renderer expects island positions.
const DefaultPath = "./positions.json"

// WriteJSON writes points as a 4-space indented array of {"x", "y"} objects.
func WriteJSON(w io.Writer, points []Point) error {
	if points == nil {
		points = []Point{}
	}
	b, err := json.MarshalIndent(points, "", "    ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// WriteFile writes points to path, creating parent directories.
func WriteFile(path string, points []Point) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if err := WriteJSON(f, points); err != nil {
		return err
	}
	return f.Close()
}
