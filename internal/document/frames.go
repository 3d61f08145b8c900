package document

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-orderedview/internal/constraint"
	"github.com/grindlemire/go-orderedview/internal/geometry"
)

// FramesFile is the YAML form of a solved frame assignment:
//
//	frames:
//	  toolbar: {x: 0, y: 0, width: 320, height: 44}
//	  icon:    {x: 8, y: 4, width: 36, height: 36}
type FramesFile struct {
	Frames map[string]geometry.Rect `yaml:"frames"`
}

// LoadFrames reads solved frames from path.
func LoadFrames(path string) (constraint.Frames, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frames: %w", err)
	}
	return ParseFrames(data)
}

// ParseFrames decodes solved frames.
func ParseFrames(data []byte) (constraint.Frames, error) {
	var f FramesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse frames: %w", err)
	}
	if len(f.Frames) == 0 {
		return nil, errors.New("frames file lists no frames")
	}
	return constraint.Frames(f.Frames), nil
}
