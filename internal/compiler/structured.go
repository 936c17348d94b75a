package compiler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Keys of the structured (JSON / YAML) machine format.
const (
	KeyTape            = "tape"
	KeyInitialPosition = "initialTapePosition"
	KeyRules           = "rules"
)

// RuleEntry is a single rule of the structured format.
// It uses "mapstructure" tags so JSON and YAML documents decode the same way.
type RuleEntry struct {
	State     string `json:"state" mapstructure:"state"`
	Read      string `json:"read" mapstructure:"read"`
	Write     string `json:"write" mapstructure:"write"`
	Move      string `json:"move" mapstructure:"move"`
	NextState string `json:"nextState" mapstructure:"nextState"`
}

// ParseJSON decodes a structured machine document encoded as JSON.
func ParseJSON(data []byte) (domain.Machine, Report, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Machine{}, Report{Format: "structured"}, fmt.Errorf("%w: %v", domain.ErrMalformedDefinition, err)
	}
	return decodeStructured(doc, false)
}

// ParseYAML decodes a structured machine document encoded as YAML.
// Scalars are weakly typed so that unquoted labels such as `state: 0` decode as strings.
func ParseYAML(data []byte) (domain.Machine, Report, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Machine{}, Report{Format: "structured"}, fmt.Errorf("%w: %v", domain.ErrMalformedDefinition, err)
	}
	return decodeStructured(doc, true)
}

func decodeStructured(doc map[string]any, weak bool) (domain.Machine, Report, error) {
	report := Report{Format: "structured"}
	if doc == nil {
		return domain.Machine{}, report, fmt.Errorf("%w: expected an object", domain.ErrMalformedDefinition)
	}

	// A non-string tape is treated like a missing one.
	tape, _ := doc[KeyTape].(string)

	pos, err := decodePosition(doc[KeyInitialPosition])
	if err != nil {
		return domain.Machine{}, report, err
	}

	var entries []any
	switch v := doc[KeyRules].(type) {
	case nil:
	case []any:
		entries = v
	default:
		return domain.Machine{}, report, fmt.Errorf("%w: %q must be an array", domain.ErrMalformedDefinition, KeyRules)
	}

	rules := make([]domain.Rule, 0, len(entries))
	for _, raw := range entries {
		r, err := decodeRule(raw, weak)
		if err != nil {
			report.Dropped++
			continue
		}
		rules = append(rules, r)
	}
	report.Rules = len(rules)

	return domain.Machine{
		InitialPosition: pos,
		Tape:            tape,
		Rules:           rules,
	}, report, nil
}

// decodePosition accepts the reference string encoding ("-3") and plain numbers.
// A missing or non-string, non-numeric value means position 0.
func decodePosition(v any) (int, error) {
	var s string
	switch p := v.(type) {
	case string:
		s = strings.TrimSpace(p)
	case float64:
		if p != float64(int(p)) {
			return 0, fmt.Errorf("%w: invalid %s %v", domain.ErrMalformedDefinition, KeyInitialPosition, p)
		}
		return int(p), nil
	case int:
		return p, nil
	default:
		return 0, nil
	}

	pos, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrMalformedDefinition, KeyInitialPosition, s)
	}
	return pos, nil
}

// ruleKeys are the required keys of a rule entry, matched case-sensitively.
var ruleKeys = []string{"state", "read", "write", "move", "nextState"}

func decodeRule(raw any, weak bool) (domain.Rule, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return domain.Rule{}, fmt.Errorf("rule must be an object, got %T", raw)
	}
	// mapstructure treats a null value as set and leaves the field empty.
	for _, k := range ruleKeys {
		if v, present := fields[k]; present && v == nil {
			return domain.Rule{}, fmt.Errorf("rule field %q is null", k)
		}
	}

	var entry RuleEntry
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnset:       true,
		WeaklyTypedInput: weak,
		MatchName:        func(mapKey, fieldName string) bool { return mapKey == fieldName },
		Result:           &entry,
	})
	if err != nil {
		return domain.Rule{}, err
	}
	if err := dec.Decode(fields); err != nil {
		return domain.Rule{}, fmt.Errorf("failed to decode rule: %w", err)
	}
	return entry.Rule()
}

// Rule validates the entry and converts it into a domain rule.
func (e RuleEntry) Rule() (domain.Rule, error) {
	read, ok := singleRune(e.Read)
	if !ok {
		return domain.Rule{}, fmt.Errorf("read must be a single character, got %q", e.Read)
	}
	write, ok := singleRune(e.Write)
	if !ok {
		return domain.Rule{}, fmt.Errorf("write must be a single character, got %q", e.Write)
	}
	move, err := domain.ParseMove(e.Move)
	if err != nil {
		return domain.Rule{}, err
	}
	return domain.Rule{
		State:     e.State,
		Read:      read,
		Write:     write,
		Move:      move,
		NextState: e.NextState,
	}, nil
}
