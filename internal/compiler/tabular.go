package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/turing/pkg/domain"
)

// ParseTabular decodes the line-oriented format:
//
//	<tape>
//	<initial head position>
//	<state> <read> <write> <L|R> <next state>
//	...
//
// Blank lines are ignored everywhere. Rule lines that do not have exactly five
// fields, single-character symbols and a valid move are dropped.
func ParseTabular(data []byte) (domain.Machine, Report, error) {
	report := Report{Format: "tabular"}

	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		l = strings.TrimRight(l, "\r")
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}

	if len(lines) < 2 {
		return domain.Machine{}, report, fmt.Errorf("%w: expected tape and head position lines", domain.ErrMalformedDefinition)
	}

	pos, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return domain.Machine{}, report, fmt.Errorf("%w: invalid head position %q", domain.ErrMalformedDefinition, lines[1])
	}

	rules := make([]domain.Rule, 0, len(lines)-2)
	for _, l := range lines[2:] {
		r, ok := parseTabularRule(l)
		if !ok {
			report.Dropped++
			continue
		}
		rules = append(rules, r)
	}
	report.Rules = len(rules)

	return domain.Machine{
		InitialPosition: pos,
		Tape:            lines[0],
		Rules:           rules,
	}, report, nil
}

func parseTabularRule(line string) (domain.Rule, bool) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return domain.Rule{}, false
	}

	read, ok := singleRune(fields[1])
	if !ok {
		return domain.Rule{}, false
	}
	write, ok := singleRune(fields[2])
	if !ok {
		return domain.Rule{}, false
	}
	move, err := domain.ParseMove(fields[3])
	if err != nil {
		return domain.Rule{}, false
	}

	return domain.Rule{
		State:     fields[0],
		Read:      read,
		Write:     write,
		Move:      move,
		NextState: fields[4],
	}, true
}

func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, false
	}
	return r, true
}

// FormatTabular serializes m back into the tabular format.
func FormatTabular(m domain.Machine) string {
	var sb strings.Builder
	sb.WriteString(m.Tape)
	sb.WriteString("\n")
	sb.WriteString(strconv.Itoa(m.InitialPosition))
	sb.WriteString("\n")
	for _, r := range m.Rules {
		fmt.Fprintf(&sb, "%s %c %c %s %s\n", r.State, r.Read, r.Write, r.Move, r.NextState)
	}
	return sb.String()
}
