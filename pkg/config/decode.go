package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"codesnap/pkg/color"
)

const maxSentinel = "max"

// UnmarshalYAML accepts either a number or the string "max".
func (d *Dimension) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: dimension must be a number or %q", node.Line, maxSentinel)
	}
	if strings.EqualFold(node.Value, maxSentinel) {
		*d = MaxDimension()
		return nil
	}

	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("line %d: dimension must be a number or %q", node.Line, maxSentinel)
	}
	*d = Num(v)
	return nil
}

func (d Dimension) MarshalYAML() (interface{}, error) {
	if d.Max {
		return maxSentinel, nil
	}
	return d.Value, nil
}

// UnmarshalYAML accepts a hex colour, a preset name, or a gradient mapping.
func (b *Background) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if color.IsValidHex(node.Value) {
			*b = Background{Solid: node.Value}
			return nil
		}
		preset, ok := Preset(node.Value)
		if !ok {
			return fmt.Errorf("line %d: unknown background %q", node.Line, node.Value)
		}
		*b = preset
		return nil
	case yaml.MappingNode:
		var g LinearGradient
		if err := node.Decode(&g); err != nil {
			return err
		}
		*b = Background{Gradient: &g}
		return nil
	}
	return fmt.Errorf("line %d: background must be a colour, preset name or gradient", node.Line)
}

func (b Background) MarshalYAML() (interface{}, error) {
	if b.Gradient != nil {
		return b.Gradient, nil
	}
	return b.Solid, nil
}

// UnmarshalYAML accepts [line, color] or [start, end, color].
func (h *HighlightLine) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || (len(node.Content) != 2 && len(node.Content) != 3) {
		return fmt.Errorf("line %d: highlight line must be [line, color] or [start, end, color]", node.Line)
	}

	var start, end int
	if err := node.Content[0].Decode(&start); err != nil {
		return fmt.Errorf("line %d: highlight start: %w", node.Line, err)
	}
	end = start
	if len(node.Content) == 3 {
		if err := node.Content[1].Decode(&end); err != nil {
			return fmt.Errorf("line %d: highlight end: %w", node.Line, err)
		}
	}

	*h = HighlightLine{Start: start, End: end, Color: node.Content[len(node.Content)-1].Value}
	return nil
}

func (h HighlightLine) MarshalYAML() (interface{}, error) {
	if h.Start == h.End {
		return []interface{}{h.Start, h.Color}, nil
	}
	return []interface{}{h.Start, h.End, h.Color}, nil
}

// UnmarshalYAML decodes a mapping as Code and a sequence as command output.
func (c *Content) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var code Code
		if err := node.Decode(&code); err != nil {
			return err
		}
		*c = Content{Code: &code}
		return nil
	case yaml.SequenceNode:
		var outputs []CommandLineContent
		if err := node.Decode(&outputs); err != nil {
			return err
		}
		*c = Content{CommandOutput: outputs}
		return nil
	}
	return fmt.Errorf("line %d: content must be a code mapping or a command output list", node.Line)
}

func (c Content) MarshalYAML() (interface{}, error) {
	if c.Code != nil {
		return c.Code, nil
	}
	return c.CommandOutput, nil
}
