package fsm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// definition is the file form of a Config:
//
//	name: traffic-light
//	initialState: green
//	transitions:
//	  clear: { from: "*", to: green }
//	  warn:  { from: green, to: yellow }
//	  alert: { from: [green, yellow], to: red }
type definition struct {
	Name         string         `yaml:"name" json:"name"`
	InitialState State          `yaml:"initialState" json:"initialState"`
	Transitions  transitionList `yaml:"transitions" json:"transitions"`
}

type transitionBody struct {
	From From  `yaml:"from" json:"from"`
	To   State `yaml:"to" json:"to"`
}

// transitionList decodes a name -> {from, to} mapping, keeping key order.
type transitionList []TransitionSpec

func (l *transitionList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: transitions must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return err
		}
		var body transitionBody
		if err := node.Content[i+1].Decode(&body); err != nil {
			return fmt.Errorf("transition %q: %w", name, err)
		}
		*l = append(*l, TransitionSpec{Name: Transition(name), From: body.From, To: body.To})
	}
	return nil
}

func (l *transitionList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("transitions must be an object")
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)
		var body transitionBody
		if err := dec.Decode(&body); err != nil {
			return fmt.Errorf("transition %q: %w", name, err)
		}
		*l = append(*l, TransitionSpec{Name: Transition(name), From: body.From, To: body.To})
	}
	_, err = dec.Token()
	return err
}

// fromNames turns file notation into a From; "*" anywhere means any state.
func fromNames(names []string) From {
	if slices.Contains(names, AnyName) {
		return FromAny()
	}
	states := make([]State, len(names))
	for i, n := range names {
		states[i] = State(n)
	}
	return FromStates(states...)
}

func (f *From) UnmarshalYAML(node *yaml.Node) error {
	var names []string
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		names = []string{s}
	case yaml.SequenceNode:
		if err := node.Decode(&names); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: from must be a state name or a list of state names", node.Line)
	}
	*f = fromNames(names)
	return nil
}

func (f *From) UnmarshalJSON(data []byte) error {
	var names []string
	switch trimmed := bytes.TrimSpace(data); {
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		names = []string{s}
	case len(trimmed) > 0 && trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &names); err != nil {
			return err
		}
	default:
		return fmt.Errorf("from must be a state name or a list of state names")
	}
	*f = fromNames(names)
	return nil
}

func (d definition) config() (Config, error) {
	cfg := Config{
		Name:        d.Name,
		Initial:     d.InitialState,
		Transitions: []TransitionSpec(d.Transitions),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseYAML reads a machine definition. Decoding errors wrap
// ErrInvalidDefinition; an incomplete definition wraps ErrConfiguration.
func ParseYAML(data []byte) (Config, error) {
	var d definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return d.config()
}

// ParseJSON is the JSON counterpart of ParseYAML.
func ParseJSON(data []byte) (Config, error) {
	var d definition
	if err := json.Unmarshal(data, &d); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return d.config()
}

// LoadFile reads a definition from disk, choosing the parser by extension
// (.yaml, .yml or .json).
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read definition %q: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return Config{}, fmt.Errorf("%w: unsupported file extension %q", ErrInvalidDefinition, ext)
	}
}
