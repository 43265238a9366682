package listing

import (
	"encoding/json"
	"strings"
)

// Feature lists used when a product carries neither explicit feature
// metadata nor a description. Matched on the product name.
var freeTierFeatures = []string{
	"All free components",
	"Copy-and-paste snippets",
	"Playground with live prop editing",
	"Community support",
	"MIT-licensed code",
	"Regular catalog updates",
}

var proTierFeatures = []string{
	"Everything in Free",
	"All pro components and sections",
	"Hero, CTA and footer templates",
	"Theme customization presets",
	"Figma source files",
	"Priority support",
	"Early access to new variants",
	"Commercial license",
}

// deriveFeatures resolves the feature list for a product. The first rule
// yielding a non-empty result wins: metadata (JSON array, falling back to
// newline-separated text), then description lines, then the name heuristic.
func deriveFeatures(p Product) []string {
	if raw, ok := p.Metadata["features"]; ok {
		var parsed []string
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			if cleaned := cleanFeatures(parsed); len(cleaned) > 0 {
				return cleaned
			}
		} else if lines := splitLines(raw); len(lines) > 0 {
			return lines
		}
	}

	if lines := splitLines(p.Description); len(lines) > 0 {
		return lines
	}

	name := strings.ToLower(p.Name)
	switch {
	case strings.Contains(name, "free"):
		return append([]string(nil), freeTierFeatures...)
	case strings.Contains(name, "pro"), strings.Contains(name, "paid"):
		return append([]string(nil), proTierFeatures...)
	}

	return []string{}
}

func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func cleanFeatures(values []string) []string {
	var out []string
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
