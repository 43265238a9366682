package catalog

// Buttons lists the button variants in display order.
var Buttons = []Variant{
	{
		Slug:          "button-primary",
		Name:          "Primary Button",
		ComponentName: "PrimaryButton",
		Description:   "Solid call-to-action button for the main action on a screen.",
		Tags:          []string{"button", "action", "solid"},
		Props: mergeProps(appearanceProps, sizingProps, map[string]PropDef{
			"label": {
				Control:     ControlText,
				Default:     "Get started",
				Description: "Button label",
			},
			"disabled": {
				Control:     ControlBoolean,
				Default:     false,
				Description: "Disable interaction and dim the button",
			},
		}),
	},
	{
		Slug:          "button-secondary",
		Name:          "Secondary Button",
		ComponentName: "SecondaryButton",
		Description:   "Muted companion to the primary button.",
		Tags:          []string{"button", "action", "muted"},
		Props: mergeProps(appearanceProps, sizingProps, map[string]PropDef{
			"label": {
				Control:     ControlText,
				Default:     "Learn more",
				Description: "Button label",
			},
			"background": {
				Control:     ControlColor,
				Default:     "#27272a",
				Description: "Background color",
			},
		}),
	},
	{
		Slug:          "button-outline",
		Name:          "Outline Button",
		ComponentName: "OutlineButton",
		Description:   "Transparent button with a visible border.",
		Tags:          []string{"button", "outline", "border"},
		Props: mergeProps(sizingProps, map[string]PropDef{
			"label": {
				Control:     ControlText,
				Default:     "View docs",
				Description: "Button label",
			},
			"borderColor": {
				Control:     ControlColor,
				Default:     "#3f3f46",
				Description: "Border color",
			},
			"borderWidth": {
				Control:     ControlNumber,
				Default:     1,
				Description: "Border width in pixels",
				Min:         f64(1),
				Max:         f64(4),
			},
		}),
	},
	{
		Slug:          "button-ghost",
		Name:          "Ghost Button",
		ComponentName: "GhostButton",
		Description:   "Borderless button that only shows a hover surface.",
		Tags:          []string{"button", "ghost", "subtle"},
		Props: mergeProps(sizingProps, map[string]PropDef{
			"label": {
				Control:     ControlText,
				Default:     "Dismiss",
				Description: "Button label",
			},
			"hoverBackground": {
				Control:     ControlColor,
				Default:     "#27272a",
				Description: "Surface color shown on hover",
			},
		}),
	},
	{
		Slug:          "button-icon",
		Name:          "Icon Button",
		ComponentName: "IconButton",
		Description:   "Square button holding a single icon.",
		Tags:          []string{"button", "icon", "compact"},
		Props: mergeProps(appearanceProps, map[string]PropDef{
			"icon": {
				Control:     ControlSelect,
				Default:     "plus",
				Description: "Icon glyph",
				Options:     []string{"plus", "search", "settings", "trash", "heart"},
			},
			"ariaLabel": {
				Control:     ControlText,
				Default:     "Add item",
				Description: "Accessible label for screen readers",
			},
			"radius": {
				Control:     ControlNumber,
				Default:     9999,
				Description: "Corner radius in pixels",
				Min:         f64(0),
				Max:         f64(9999),
			},
		}),
	},
}
