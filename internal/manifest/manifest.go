// Package manifest builds and serializes the project_structure.json document
// describing a configuration repository: its file tree, per-file
// descriptions, and the include relationships between YAML files.
package manifest

// Entry describes one immediate child of the repository root.
type Entry struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// FileEntry describes one walked file by its root-relative path.
type FileEntry struct {
	Path        string `json:"path"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// UsageRules is the static guidance block embedded in every manifest for
// downstream consumers.
type UsageRules struct {
	ModelBehavior string   `json:"model_behavior"`
	Rules         []string `json:"rules"`
}

// Manifest is the root document. It is fully determined by the filesystem
// state at scan time and written exactly once per run.
type Manifest struct {
	ProjectName  string              `json:"project_name"`
	Repository   string              `json:"repository"`
	Generated    string              `json:"generated"`
	Root         map[string]Entry    `json:"root"`
	Files        []FileEntry         `json:"files"`
	FilesIndex   map[string][]string `json:"files_index"`
	YAMLIncludes map[string][]string `json:"yaml_includes"`
	Relations    map[string][]string `json:"relations"`
	UsageRules   UsageRules          `json:"usage_rules"`
}

// defaultUsageRules is identical in every manifest.
var defaultUsageRules = UsageRules{
	ModelBehavior: "Use this JSON as the source of truth for the repository structure. Do not invent files or entities outside the map.",
	Rules: []string{
		"ESPHome → /esphome/",
		"Zigbee → /zigbee2mqtt/",
		"Automations → /blueprints/ and/or includes/automations.yaml",
		"Customization → customize.yaml",
		"Main settings → configuration.yaml",
		"Reference files by relative path",
	},
}
