package sections

// Option is one selectable value of a select setting.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SettingSpec declares a single configurable field of a section: its id in
// the settings bag, the editor input kind (text, textarea, image, color,
// select, number, range, checkbox, url, richtext), display label, default
// value and optional constraints.
type SettingSpec struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Label   string      `json:"label"`
	Default interface{} `json:"default,omitempty"`
	Options []Option    `json:"options,omitempty"`
	Min     int         `json:"min,omitempty"`
	Max     int         `json:"max,omitempty"`
	Step    int         `json:"step,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// BlockSpec declares a repeatable child block type a section accepts.
type BlockSpec struct {
	Type     string        `json:"type"`
	Name     string        `json:"name"`
	Limit    int           `json:"limit,omitempty"`
	Settings []SettingSpec `json:"settings"`
}

// Schema is the declarative contract of a section type, consumed by the
// visual editor and used for defaults. It is descriptive metadata only:
// the renderer does not validate instance settings against it.
type Schema struct {
	Name     string        `json:"name"`
	Settings []SettingSpec `json:"settings"`
	Blocks   []BlockSpec   `json:"blocks,omitempty"`
}

// Defaults returns the schema's declared default for every setting that has one.
func (s Schema) Defaults() map[string]interface{} {
	defaults := make(map[string]interface{}, len(s.Settings))
	for _, spec := range s.Settings {
		if spec.Default != nil {
			defaults[spec.ID] = spec.Default
		}
	}
	return defaults
}
