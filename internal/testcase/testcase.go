// Package testcase reads test-case files: a "keys" record holding the
// declared point count n and threshold k, plus one {base, value} record per
// point label.
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"}
//	}
//
// The same shape is accepted as YAML and TOML.
package testcase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/Amanking2425/catalog-placement-hashira/internal/basex"
	"github.com/Amanking2425/catalog-placement-hashira/internal/lagrange"
)

const keysField = "keys"

var (
	ErrMissingKeys     = errors.New("missing or malformed keys record")
	ErrInvalidLabel    = errors.New("invalid point label")
	ErrMalformedSample = errors.New("malformed sample record")
	ErrUnknownFormat   = errors.New("unknown file format")
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf picks the format from a file extension, defaulting to JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return JSON
	}
}

// Sample is one encoded point record.
type Sample struct {
	Label string
	Base  int
	Value string
}

// Point decodes the sample. The label is the x coordinate.
func (s Sample) Point() (lagrange.Point, error) {
	x, err := parseLabel(s.Label)
	if err != nil {
		return lagrange.Point{}, err
	}
	y, err := basex.Decode(s.Value, s.Base)
	if err != nil {
		return lagrange.Point{}, fmt.Errorf("point %s: %w", s.Label, err)
	}
	return lagrange.Point{X: x, Y: y}, nil
}

// Case is a parsed test case. N is only what the file declares; len(Samples)
// is what is actually available.
type Case struct {
	N       int
	K       int
	Samples []Sample
}

// Points decodes every sample, in label order.
func (c *Case) Points() ([]lagrange.Point, error) {
	points := make([]lagrange.Point, 0, len(c.Samples))
	for _, s := range c.Samples {
		p, err := s.Point()
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// Load reads and parses the test case at path.
func Load(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	c, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse parses a test case encoded in format.
func Parse(data []byte, format Format) (*Case, error) {
	raw, err := unmarshal(data, format)
	if err != nil {
		return nil, err
	}

	keys, err := cast.ToStringMapE(raw[keysField])
	if err != nil || keys == nil {
		return nil, ErrMissingKeys
	}
	n := 0
	if keys["n"] != nil {
		if n, err = parseCount(keys["n"]); err != nil {
			return nil, fmt.Errorf("%w: n = %v", ErrMissingKeys, keys["n"])
		}
	}
	k, err := parseCount(keys["k"])
	if err != nil {
		return nil, fmt.Errorf("%w: k = %v", ErrMissingKeys, keys["k"])
	}

	c := &Case{N: n, K: k}
	for label, entry := range raw {
		if label == keysField {
			continue
		}
		s, ok, err := parseSample(label, entry)
		if err != nil {
			return nil, err
		}
		if ok {
			c.Samples = append(c.Samples, s)
		}
	}
	sort.Slice(c.Samples, func(i, j int) bool {
		return c.Samples[i].Label < c.Samples[j].Label
	})
	return c, nil
}

// parseSample returns ok == false for records carrying neither a base nor a
// value; those are not samples and are skipped.
func parseSample(label string, entry any) (Sample, bool, error) {
	fields, err := cast.ToStringMapE(entry)
	if err != nil {
		return Sample{}, false, fmt.Errorf("%w: %q is not a record", ErrMalformedSample, label)
	}

	rawBase, hasBase := fields["base"]
	rawValue, hasValue := fields["value"]
	switch {
	case !hasBase && !hasValue:
		return Sample{}, false, nil
	case !hasBase:
		return Sample{}, false, fmt.Errorf("%w: %q has no base", ErrMalformedSample, label)
	case !hasValue:
		return Sample{}, false, fmt.Errorf("%w: %q has no value", ErrMalformedSample, label)
	}

	base, err := basex.ParseBase(rawBase)
	if err != nil {
		return Sample{}, false, fmt.Errorf("point %s: %w", label, err)
	}
	// Only the literal digit text is accepted. Numbers already converted by
	// a decoder (TOML integers and floats) may have lost digits.
	var value string
	switch v := rawValue.(type) {
	case string:
		value = v
	case json.Number:
		value = v.String()
	default:
		return Sample{}, false, fmt.Errorf("%w: %q value %v is not a digit string", ErrMalformedSample, label, rawValue)
	}
	return Sample{Label: label, Base: base, Value: value}, true, nil
}

// parseCount accepts whole numbers given as strings or numbers.
func parseCount(v any) (int, error) {
	if v == nil {
		return 0, errors.New("missing")
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(s))
}

// parseLabel accepts only plain non-negative base-10 integers.
func parseLabel(label string) (*big.Int, error) {
	if label == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLabel)
	}
	for _, c := range label {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
		}
	}
	x, ok := new(big.Int).SetString(label, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return x, nil
}

func unmarshal(data []byte, format Format) (map[string]any, error) {
	switch format {
	case JSON:
		// numbers stay json.Number so values keep every digit
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal json: %w", err)
		}
		return raw, nil
	case YAML:
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
		raw, ok := yamlValue(&doc).(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: yaml document is not a mapping", ErrMissingKeys)
		}
		return raw, nil
	case TOML:
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal toml: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// yamlValue converts a node tree keeping every scalar as its source text,
// so `1:` is the label "1" and `value: 1e5` is the digits "1e5".
func yamlValue(n *yaml.Node) any {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return yamlValue(n.Content[0])
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			m[n.Content[i].Value] = yamlValue(n.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		s := make([]any, len(n.Content))
		for i, c := range n.Content {
			s[i] = yamlValue(c)
		}
		return s
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil
		}
		return n.Value
	default:
		return nil
	}
}
