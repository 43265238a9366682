package catalog

// Toggles lists the switch and checkbox variants.
var Toggles = []Variant{
	{
		Slug:          "toggle-switch",
		Name:          "Switch",
		ComponentName: "Switch",
		Description:   "On/off switch with a sliding thumb.",
		Tags:          []string{"toggle", "switch", "form"},
		Props: map[string]PropDef{
			"checked": {
				Control:     ControlBoolean,
				Default:     false,
				Description: "Current on/off state",
			},
			"label": {
				Control:     ControlText,
				Default:     "Enable notifications",
				Description: "Label rendered beside the switch",
			},
			"activeColor": {
				Control:     ControlColor,
				Default:     "#22c55e",
				Description: "Track color while on",
			},
		},
	},
	{
		Slug:          "toggle-checkbox",
		Name:          "Checkbox",
		ComponentName: "Checkbox",
		Description:   "Checkbox with indeterminate support.",
		Tags:          []string{"toggle", "checkbox", "form"},
		Props: map[string]PropDef{
			"checked": {
				Control:     ControlBoolean,
				Default:     false,
				Description: "Current checked state",
			},
			"indeterminate": {
				Control:     ControlBoolean,
				Default:     false,
				Description: "Render the mixed state",
			},
			"label": {
				Control:     ControlText,
				Default:     "Accept terms",
				Description: "Label rendered beside the box",
			},
		},
	},
	{
		Slug:          "toggle-segmented",
		Name:          "Segmented Control",
		ComponentName: "SegmentedControl",
		Description:   "Mutually exclusive options in a pill track.",
		Tags:          []string{"toggle", "segmented", "options"},
		Props: mergeProps(sizingProps, map[string]PropDef{
			"value": {
				Control:     ControlSelect,
				Default:     "monthly",
				Description: "Selected segment",
				Options:     []string{"monthly", "yearly"},
			},
			"trackColor": {
				Control:     ControlColor,
				Default:     "#27272a",
				Description: "Track background color",
			},
		}),
	},
}
