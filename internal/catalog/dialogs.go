package catalog

// Dialogs lists the modal and overlay variants.
var Dialogs = []Variant{
	{
		Slug:          "dialog-confirm",
		Name:          "Confirm Dialog",
		ComponentName: "ConfirmDialog",
		Description:   "Two-action modal for confirming a destructive or important step.",
		Tags:          []string{"dialog", "modal", "confirm"},
		Props: mergeProps(appearanceProps, map[string]PropDef{
			"title": {
				Control:     ControlText,
				Default:     "Delete project?",
				Description: "Dialog title",
			},
			"body": {
				Control:     ControlText,
				Default:     "This action cannot be undone.",
				Description: "Dialog body copy",
			},
			"confirmLabel": {
				Control:     ControlText,
				Default:     "Delete",
				Description: "Label of the confirming action",
			},
			"destructive": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Style the confirm action as destructive",
			},
		}),
	},
	{
		Slug:          "dialog-form",
		Name:          "Form Dialog",
		ComponentName: "FormDialog",
		Description:   "Modal hosting a short form with submit and cancel.",
		Tags:          []string{"dialog", "modal", "form"},
		Props: mergeProps(appearanceProps, map[string]PropDef{
			"title": {
				Control:     ControlText,
				Default:     "Invite teammate",
				Description: "Dialog title",
			},
			"submitLabel": {
				Control:     ControlText,
				Default:     "Send invite",
				Description: "Label of the submit action",
			},
			"width": {
				Control:     ControlNumber,
				Default:     480,
				Description: "Dialog width in pixels",
				Min:         f64(320),
				Max:         f64(720),
			},
		}),
	},
	{
		Slug:          "dialog-command",
		Name:          "Command Palette",
		ComponentName: "CommandPalette",
		Description:   "Keyboard-driven search overlay for quick actions.",
		Tags:          []string{"dialog", "command", "search", "keyboard"},
		Props: map[string]PropDef{
			"placeholder": {
				Control:     ControlText,
				Default:     "Type a command or search...",
				Description: "Search placeholder",
			},
			"hotkey": {
				Control:     ControlSelect,
				Default:     "mod+k",
				Description: "Shortcut that opens the palette",
				Options:     []string{"mod+k", "mod+p", "/"},
			},
			"maxResults": {
				Control:     ControlNumber,
				Default:     8,
				Description: "Maximum results rendered",
				Min:         f64(3),
				Max:         f64(20),
			},
		},
	},
	{
		Slug:          "dialog-drawer",
		Name:          "Side Drawer",
		ComponentName: "SideDrawer",
		Description:   "Panel sliding in from the screen edge.",
		Tags:          []string{"dialog", "drawer", "panel"},
		Props: map[string]PropDef{
			"side": {
				Control:     ControlSelect,
				Default:     "right",
				Description: "Edge the drawer slides from",
				Options:     []string{"left", "right", "bottom"},
			},
			"width": {
				Control:     ControlNumber,
				Default:     400,
				Description: "Drawer width in pixels",
				Min:         f64(280),
				Max:         f64(640),
			},
			"overlay": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Dim the page behind the drawer",
			},
		},
	},
}
