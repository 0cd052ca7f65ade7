package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/selection"
)

// errEmptyCanvas is returned for scripts without a positive canvas size.
var errEmptyCanvas = errors.New("maskdemo: canvas size must be positive")

// Script is a mask canvas plus the operations to run on it, in order.
//
//	width: 200
//	height: 120
//	steps:
//	  - do: ellipse
//	    op: add
//	    rect: [20, 10, 160, 100]
//	    antialias: true
//	  - do: feather
//	    radius: 4
type Script struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Steps  []Step `yaml:"steps"`
}

// Step is one operation. Only the fields used by Do are read.
type Step struct {
	Do        string  `yaml:"do"`
	Op        string  `yaml:"op"`
	Rect      []int   `yaml:"rect"`
	Antialias bool    `yaml:"antialias"`
	Steps     int     `yaml:"steps"`
	EdgeLock  bool    `yaml:"edge_lock"`
	Radius    float64 `yaml:"radius"`
	DX        int     `yaml:"dx"`
	DY        int     `yaml:"dy"`
	Size      []int   `yaml:"size"`
}

// String returns a short description for reports.
func (s Step) String() string {
	switch s.Do {
	case "rect", "ellipse":
		return fmt.Sprintf("%s %s %v", s.Do, s.opName(), s.Rect)
	case "grow", "shrink":
		return fmt.Sprintf("%s %d", s.Do, s.Steps)
	case "border", "feather":
		return fmt.Sprintf("%s %g", s.Do, s.Radius)
	case "translate":
		return fmt.Sprintf("translate %d,%d", s.DX, s.DY)
	case "scale":
		return fmt.Sprintf("scale %dx%d", s.Size[0], s.Size[1])
	case "resize":
		return fmt.Sprintf("resize %dx%d at %d,%d", s.Size[0], s.Size[1], s.DX, s.DY)
	default:
		return s.Do
	}
}

func (s Step) opName() string {
	if s.Op == "" {
		return selection.OpAdd.String()
	}
	return s.Op
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maskdemo: read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses a YAML script and checks every step.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("maskdemo: parse script: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, errEmptyCanvas
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("maskdemo: step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (s Step) validate() error {
	switch s.Do {
	case "rect", "ellipse":
		if len(s.Rect) != 4 {
			return fmt.Errorf("%s needs rect [x, y, w, h], got %v", s.Do, s.Rect)
		}
		_, err := selection.ParseOp(s.opName())
		return err
	case "feather":
		_, err := selection.ParseOp(s.opName())
		return err
	case "scale", "resize":
		if len(s.Size) != 2 || s.Size[0] <= 0 || s.Size[1] <= 0 {
			return fmt.Errorf("%s needs a positive size [w, h], got %v", s.Do, s.Size)
		}
		return nil
	case "grow", "shrink", "border", "translate",
		"invert", "sharpen", "clear", "all", "undo", "redo":
		return nil
	default:
		return fmt.Errorf("unknown step %q", s.Do)
	}
}

// Apply runs the step on c. History is used by undo and redo.
func (s Step) Apply(c *selection.Channel, h *selection.History) {
	op, _ := selection.ParseOp(s.opName())
	switch s.Do {
	case "rect":
		c.CombineRect(op, s.Rect[0], s.Rect[1], s.Rect[2], s.Rect[3])
	case "ellipse":
		c.CombineEllipse(op, s.Rect[0], s.Rect[1], s.Rect[2], s.Rect[3], s.Antialias)
	case "grow":
		c.Grow(s.Steps)
	case "shrink":
		c.Shrink(s.Steps, s.EdgeLock)
	case "border":
		c.Border(int(s.Radius))
	case "feather":
		c.Feather(c, s.Radius, op, 0, 0)
	case "translate":
		c.Translate(s.DX, s.DY)
	case "scale":
		c.Scale(s.Size[0], s.Size[1])
	case "resize":
		c.Resize(s.Size[0], s.Size[1], s.DX, s.DY)
	case "invert":
		c.Invert()
	case "sharpen":
		c.Sharpen()
	case "clear":
		c.Clear()
	case "all":
		c.All()
	case "undo":
		h.Undo()
	case "redo":
		h.Redo()
	}
}

// Run creates the script's channel and applies every step, calling after
// once per step. The caller closes the returned channel.
func (s *Script) Run(undoLimit int, after func(i int, st Step, c *selection.Channel)) *selection.Channel {
	h := selection.NewHistory(undoLimit)
	name := s.Name
	if name == "" {
		name = "Selection Mask"
	}
	c := selection.New(s.Width, s.Height, selection.WithName(name), selection.WithUndo(h))
	for i, st := range s.Steps {
		st.Apply(c, h)
		if after != nil {
			after(i, st, c)
		}
	}
	return c
}
