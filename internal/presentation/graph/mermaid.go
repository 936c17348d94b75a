package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// OverlayFromResult highlights the state a run halted in.
func OverlayFromResult(res domain.Result) *GraphOverlay {
	return &GraphOverlay{
		VisitedStates: []string{domain.InitialState},
		CurrentState:  res.State,
	}
}

// GenerateMermaid produces a Mermaid stateDiagram-v2 from a machine's rule table.
// The initial state is marked with [*]; each rule becomes an edge labelled
// "read/write,move". Overlay styles are applied if provided.
func GenerateMermaid(m domain.Machine, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	states := []string{domain.InitialState}
	seen := map[string]bool{domain.InitialState: true}
	for _, r := range m.Rules {
		for _, s := range []string{r.State, r.NextState} {
			if !seen[s] {
				seen[s] = true
				states = append(states, s)
			}
		}
	}

	for _, s := range states {
		fmt.Fprintf(&sb, "    state \"%s\" as %s\n", escapeLabel(s), sanitizeMermaidID(s))
	}
	fmt.Fprintf(&sb, "    [*] --> %s\n", sanitizeMermaidID(domain.InitialState))

	for _, r := range m.Rules {
		fmt.Fprintf(&sb, "    %s --> %s : %s/%s,%s\n",
			sanitizeMermaidID(r.State),
			sanitizeMermaidID(r.NextState),
			symbol(r.Read), symbol(r.Write), r.Move)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000\n")

		visited := make(map[string]bool)
		for _, s := range overlay.VisitedStates {
			id := sanitizeMermaidID(s)
			if !visited[id] && s != overlay.CurrentState {
				visited[id] = true
				fmt.Fprintf(&sb, "    class %s visited\n", id)
			}
		}
		if overlay.CurrentState != "" {
			fmt.Fprintf(&sb, "    class %s current\n", sanitizeMermaidID(overlay.CurrentState))
		}
	}

	return sb.String()
}

// symbol makes blanks visible in edge labels.
func symbol(r rune) string {
	if r == ' ' {
		return "␣"
	}
	return escapeLabel(string(r))
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, ":", "#58;")
}

// sanitizeMermaidID maps an arbitrary state label to a valid Mermaid identifier.
// Labels may be bare numbers, so every id gets a prefix.
func sanitizeMermaidID(label string) string {
	var sb strings.Builder
	sb.WriteString("s_")
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			fmt.Fprintf(&sb, "_%x_", r)
		}
	}
	return sb.String()
}
