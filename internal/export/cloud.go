package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/heartbeat/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// CloudDump is the serialized form of one shape's cloud.
type CloudDump struct {
	Shape     string       `json:"shape" yaml:"shape"`
	Count     int          `json:"count" yaml:"count"`
	Positions [][3]float32 `json:"positions" yaml:"positions,flow"`
}

func NewCloudDump(shape string, pc scene.PointCloud) CloudDump {
	d := CloudDump{Shape: shape, Count: pc.Len(), Positions: make([][3]float32, pc.Len())}
	for i := range d.Positions {
		d.Positions[i] = [3]float32{pc[i*3], pc[i*3+1], pc[i*3+2]}
	}
	return d
}

// CheckFormat reports whether WriteCloud knows format.
func CheckFormat(format string) error {
	switch format {
	case FormatCSV, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown export format %q (csv, json, yaml)", format)
}

// WriteCloud writes pc in the named format.
func WriteCloud(w io.Writer, format, shape string, pc scene.PointCloud) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	switch format {
	case FormatCSV:
		return WriteCloudCSV(w, pc)
	case FormatJSON:
		return WriteCloudJSON(w, shape, pc)
	case FormatYAML:
		return WriteCloudYAML(w, shape, pc)
	}
	return nil
}

// WriteCloudCSV writes one x,y,z row per point under a header.
func WriteCloudCSV(w io.Writer, pc scene.PointCloud) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	for i := 0; i < pc.Len(); i++ {
		row := []string{
			strconv.FormatFloat(float64(pc[i*3]), 'g', -1, 32),
			strconv.FormatFloat(float64(pc[i*3+1]), 'g', -1, 32),
			strconv.FormatFloat(float64(pc[i*3+2]), 'g', -1, 32),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteCloudJSON(w io.Writer, shape string, pc scene.PointCloud) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(NewCloudDump(shape, pc)); err != nil {
		return fmt.Errorf("failed to encode cloud: %w", err)
	}
	return nil
}

func WriteCloudYAML(w io.Writer, shape string, pc scene.PointCloud) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(NewCloudDump(shape, pc)); err != nil {
		return fmt.Errorf("failed to encode cloud: %w", err)
	}
	return nil
}
