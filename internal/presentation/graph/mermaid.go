package graph

import (
	"fmt"
	"strings"
)

// GraphOverlay contains runtime data to visualize on the graph.
type GraphOverlay struct {
	// History is the sequence of activated states, oldest first.
	History []string
	Current string
}

// GenerateMermaid produces a Mermaid flowchart of the registered states.
// The entry state is drawn as a circle, every other state as a rectangle.
// Edges are the transitions observed in the overlay history, each drawn once.
func GenerateMermaid(states []string, entry string, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, name := range states {
		opener, closer := "[", "]"
		if name == entry {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(name), opener, name, closer)
	}

	if overlay == nil {
		return sb.String()
	}

	seen := make(map[string]bool)
	for i := 1; i < len(overlay.History); i++ {
		from := sanitizeMermaidID(overlay.History[i-1])
		to := sanitizeMermaidID(overlay.History[i])
		edge := from + "->" + to
		if seen[edge] {
			continue
		}
		seen[edge] = true
		arrow := "-->"
		if from == to {
			arrow = "-. reload .->"
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", from, arrow, to)
	}

	sb.WriteString("\n    %% Overlay Styles\n")
	// Black text keeps labels readable on both light and dark themes.
	sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	visited := make(map[string]bool)
	for _, name := range overlay.History {
		id := sanitizeMermaidID(name)
		if id == "" || visited[id] || name == overlay.Current {
			continue
		}
		visited[id] = true
		fmt.Fprintf(&sb, "    class %s visited;\n", id)
	}
	if overlay.Current != "" {
		fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.Current))
	}
	return sb.String()
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return r.Replace(id)
}
