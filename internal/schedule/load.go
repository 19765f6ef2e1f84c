package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads a schedule, choosing the format by file extension:
// .json, .yaml/.yml or .bbs.
func LoadFromFile(filename string) (*Schedule, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var s *Schedule
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		s, err = ParseJSON(data)
	case ".yaml", ".yml":
		s, err = ParseYAML(data)
	case ".bbs":
		s, err = ParseBBS(string(data))
	default:
		return nil, fmt.Errorf("unsupported schedule format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	tracer().Debugf("loaded schedule %q with %d bars", s.Name, len(s.Bars))
	return s, nil
}

// ParseJSON decodes a JSON schedule.
func ParseJSON(data []byte) (*Schedule, error) {
	var s Schedule
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseYAML decodes a YAML schedule.
func ParseYAML(data []byte) (*Schedule, error) {
	var s Schedule
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
