// Package classify attaches human-readable descriptions to repository paths
// using ordered heuristics: exact filename match, then substring match over
// the path, then a generic fallback by extension.
package classify

import (
	"path"
	"strings"
)

// hint pairs a well-known filename or directory name with its fixed
// description. Declaration order is the lookup priority for substring
// matching, so this must stay a slice, never a map.
type hint struct {
	key  string
	text string
}

var hints = []hint{
	{"configuration.yaml", "Main Home Assistant configuration file. Imports parts via !include."},
	{"customize.yaml", "Entity customization (friendly_name, icons, attributes)."},
	{"scripts.yaml", "Scripts (service calls, sequences, delays)."},
	{"scenes.yaml", "Scenes (sets of entity states)."},
	{"blueprints", "Automation blueprints for Home Assistant."},
	{"custom_components", "Custom Home Assistant integrations (Python, manifest.json)."},
	{"esphome", "ESPHome device configurations."},
	{"includes", "Included configuration fragments (sensors, switches, etc.)."},
	{"zigbee2mqtt", "Zigbee2MQTT configs (broker, devices, groups)."},
}

// Describe returns the description for a path, or "" when none of the
// heuristics match. First match wins; a hint key naming a directory tags
// every path nested beneath it.
func Describe(p string) string {
	base := path.Base(p)

	for _, h := range hints {
		if base == h.key {
			return h.text
		}
	}

	lower := strings.ToLower(p)
	for _, h := range hints {
		if strings.Contains(lower, h.key) {
			return h.text
		}
	}

	switch {
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return "YAML configuration."
	case strings.HasSuffix(lower, ".json"):
		return "JSON configuration/data."
	case strings.HasSuffix(lower, ".py"):
		return "Python module/script."
	case strings.HasSuffix(lower, ".sh"):
		return "Shell script."
	}
	return ""
}
