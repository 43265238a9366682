package catalog

// Shared prop sets spread into variant definitions. Per-variant overrides
// win within a merge.
var appearanceProps = map[string]PropDef{
	"background": {
		Control:     ControlColor,
		Default:     "#18181b",
		Description: "Background color",
	},
	"foreground": {
		Control:     ControlColor,
		Default:     "#fafafa",
		Description: "Foreground (text and icon) color",
	},
	"radius": {
		Control:     ControlNumber,
		Default:     8,
		Description: "Corner radius in pixels",
		Min:         f64(0),
		Max:         f64(32),
	},
}

var sizingProps = map[string]PropDef{
	"size": {
		Control:     ControlSelect,
		Default:     "md",
		Description: "Overall control size",
		Options:     []string{"sm", "md", "lg"},
	},
	"fullWidth": {
		Control:     ControlBoolean,
		Default:     false,
		Description: "Stretch to fill the container width",
	},
}

var sectionProps = map[string]PropDef{
	"heading": {
		Control:     ControlText,
		Default:     "Build interfaces faster",
		Description: "Section heading",
	},
	"subheading": {
		Control:     ControlText,
		Default:     "Production-ready components you can copy and paste.",
		Description: "Supporting copy under the heading",
	},
	"align": {
		Control:     ControlSelect,
		Default:     "center",
		Description: "Horizontal content alignment",
		Options:     []string{"left", "center", "right"},
	},
	"background": {
		Control:     ControlColor,
		Default:     "#09090b",
		Description: "Section background color",
	},
	"paddingY": {
		Control:     ControlNumber,
		Default:     96,
		Description: "Vertical padding in pixels",
		Min:         f64(0),
		Max:         f64(240),
	},
}
