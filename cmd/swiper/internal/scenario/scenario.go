// Package scenario replays scripted swipe sequences against the pager
// without a widget tree.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/swiper/pkg/swiper"
)

// StepKind names one scripted action.
type StepKind string

const (
	StepAdvance  StepKind = "advance"
	StepRetreat  StepKind = "retreat"
	StepScroll   StepKind = "scroll"
	StepSettle   StepKind = "settle"
	StepRecenter StepKind = "recenter"
)

func (k StepKind) valid() bool {
	switch k {
	case StepAdvance, StepRetreat, StepScroll, StepSettle, StepRecenter:
		return true
	}
	return false
}

// Scenario is one scripted swipe sequence.
type Scenario struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width,omitempty"`
	Length int     `yaml:"length"`
	Index  int     `yaml:"index"`
	Steps  []Step  `yaml:"steps"`
	Expect *Expect `yaml:"expect,omitempty"`

	// Source is the file the scenario was loaded from.
	Source string `yaml:"-"`
}

// Step is a single action. In YAML it is a one-key mapping from the kind to
// its arguments, for example `settle: {stop: end}`.
type Step struct {
	Kind StepKind
	// Offset is the settle offset, or the offset a scroll drags to.
	Offset *float64
	// Stop names a canonical settle offset instead of Offset.
	Stop   string
	Expect *Expect
}

type stepArgs struct {
	Offset *float64 `yaml:"offset,omitempty"`
	Stop   string   `yaml:"stop,omitempty"`
	Expect *Expect  `yaml:"expect,omitempty"`
}

// UnmarshalYAML decodes the one-key mapping form.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: step must be a mapping with exactly one action", node.Line)
	}
	kind := StepKind(node.Content[0].Value)
	if !kind.valid() {
		return fmt.Errorf("line %d: unknown step %q", node.Line, kind)
	}
	var args stepArgs
	if body := node.Content[1]; body.Tag != "!!null" {
		// Decoder.KnownFields does not reach node.Decode, so step bodies
		// check their own keys.
		if err := checkKeys(body, stepKeys); err != nil {
			return fmt.Errorf("line %d: %s: %w", node.Line, kind, err)
		}
		if err := body.Decode(&args); err != nil {
			return fmt.Errorf("line %d: %s: %w", node.Line, kind, err)
		}
	}
	if args.Stop != "" {
		if kind != StepSettle {
			return fmt.Errorf("line %d: stop is only valid on settle", node.Line)
		}
		if _, err := swiper.ParseStop(args.Stop); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
	}
	*s = Step{Kind: kind, Offset: args.Offset, Stop: args.Stop, Expect: args.Expect}
	return nil
}

var (
	stepKeys   = []string{"offset", "stop", "expect"}
	expectKeys = []string{"index", "offset", "scrolling", "accepted"}
)

// checkKeys rejects mapping keys outside allowed, descending into expect.
func checkKeys(node *yaml.Node, allowed []string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return fmt.Errorf("line %d: field %s not found (use %s)", key.Line, key.Value, strings.Join(allowed, ", "))
		}
		if key.Value == "expect" {
			if err := checkKeys(node.Content[i+1], expectKeys); err != nil {
				return err
			}
		}
	}
	return nil
}

// MarshalYAML writes the one-key mapping form.
func (s Step) MarshalYAML() (any, error) {
	return map[string]stepArgs{
		string(s.Kind): {Offset: s.Offset, Stop: s.Stop, Expect: s.Expect},
	}, nil
}

// Expect lists the values checked after a step or at the end of a scenario.
// Unset fields are not checked.
type Expect struct {
	Index     *int     `yaml:"index,omitempty"`
	Offset    *float64 `yaml:"offset,omitempty"`
	Scrolling *bool    `yaml:"scrolling,omitempty"`
	Accepted  *bool    `yaml:"accepted,omitempty"`
}

// Validate checks the scenario header.
func (s *Scenario) Validate() error {
	if s.Width < 0 {
		return fmt.Errorf("scenario %q: width must not be negative", s.Name)
	}
	if s.Length < 0 {
		return fmt.Errorf("scenario %q: length must not be negative", s.Name)
	}
	if s.Length > 0 && (s.Index < 0 || s.Index >= s.Length) {
		return fmt.Errorf("scenario %q: index %d out of range [0, %d]", s.Name, s.Index, s.Length-1)
	}
	if s.Length == 0 && s.Index != 0 {
		return fmt.Errorf("scenario %q: index must be 0 for an empty sequence", s.Name)
	}
	return nil
}

// Parse decodes every YAML document in data.
func Parse(data []byte) ([]*Scenario, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var scenarios []*Scenario
	for {
		var s Scenario
		err := decoder.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario %d", len(scenarios)+1)
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		scenarios = append(scenarios, &s)
	}
	return scenarios, nil
}

// LoadFile reads the scenarios in path.
func LoadFile(path string) ([]*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	scenarios, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for _, s := range scenarios {
		s.Source = path
	}
	return scenarios, nil
}

// Glob lists the .yaml and .yml files in dir, sorted.
func Glob(dir string) ([]string, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	return paths, nil
}
