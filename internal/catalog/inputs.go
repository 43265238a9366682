package catalog

// Inputs lists the text input variants.
var Inputs = []Variant{
	{
		Slug:          "input-text",
		Name:          "Text Input",
		ComponentName: "TextInput",
		Description:   "Single-line text field with a floating label.",
		Tags:          []string{"input", "form", "text"},
		Props: mergeProps(sizingProps, map[string]PropDef{
			"label": {
				Control:     ControlText,
				Default:     "Email address",
				Description: "Field label",
			},
			"placeholder": {
				Control:     ControlText,
				Default:     "you@example.com",
				Description: "Placeholder shown while empty",
			},
			"required": {
				Control:     ControlBoolean,
				Default:     false,
				Description: "Mark the field as required",
			},
		}),
	},
	{
		Slug:          "input-password",
		Name:          "Password Input",
		ComponentName: "PasswordInput",
		Description:   "Masked input with a visibility toggle.",
		Tags:          []string{"input", "form", "password", "security"},
		Props: mergeProps(sizingProps, map[string]PropDef{
			"label": {
				Control:     ControlText,
				Default:     "Password",
				Description: "Field label",
			},
			"showStrengthMeter": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Render a password strength meter below the field",
			},
		}),
	},
	{
		Slug:          "input-search",
		Name:          "Search Input",
		ComponentName: "SearchInput",
		Description:   "Search field with a leading icon and clear affordance.",
		Tags:          []string{"input", "search", "filter"},
		Props: mergeProps(sizingProps, map[string]PropDef{
			"placeholder": {
				Control:     ControlText,
				Default:     "Search components...",
				Description: "Placeholder shown while empty",
			},
			"debounceMs": {
				Control:     ControlNumber,
				Default:     250,
				Description: "Debounce interval for change events in milliseconds",
				Min:         f64(0),
				Max:         f64(2000),
			},
		}),
	},
	{
		Slug:          "input-textarea",
		Name:          "Textarea",
		ComponentName: "Textarea",
		Description:   "Multi-line input with an optional character counter.",
		Tags:          []string{"input", "form", "multiline"},
		Props: map[string]PropDef{
			"label": {
				Control:     ControlText,
				Default:     "Message",
				Description: "Field label",
			},
			"rows": {
				Control:     ControlNumber,
				Default:     4,
				Description: "Visible text rows",
				Min:         f64(2),
				Max:         f64(12),
			},
			"maxLength": {
				Control:     ControlNumber,
				Default:     500,
				Description: "Maximum character count",
				Min:         f64(1),
				Max:         f64(5000),
			},
			"showCounter": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Show the remaining-characters counter",
			},
		},
	},
}
