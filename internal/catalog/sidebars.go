package catalog

// Sidebars lists the app navigation sidebar variants.
var Sidebars = []Variant{
	{
		Slug:          "sidebar-collapsible",
		Name:          "Collapsible Sidebar",
		ComponentName: "CollapsibleSidebar",
		Description:   "Navigation rail that collapses to icons only.",
		Tags:          []string{"sidebar", "navigation", "collapsible"},
		Props: map[string]PropDef{
			"collapsed": {
				Control:     ControlBoolean,
				Default:     false,
				Description: "Start in the collapsed state",
			},
			"width": {
				Control:     ControlNumber,
				Default:     260,
				Description: "Expanded width in pixels",
				Min:         f64(200),
				Max:         f64(360),
			},
			"background": {
				Control:     ControlColor,
				Default:     "#09090b",
				Description: "Sidebar background color",
			},
		},
	},
	{
		Slug:          "sidebar-sections",
		Name:          "Sectioned Sidebar",
		ComponentName: "SectionedSidebar",
		Description:   "Sidebar with labeled groups and collapsible sections.",
		Tags:          []string{"sidebar", "navigation", "groups"},
		Props: map[string]PropDef{
			"sections": {
				Control:     ControlNumber,
				Default:     3,
				Description: "Number of labeled sections",
				Min:         f64(1),
				Max:         f64(6),
			},
			"showSectionLabels": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Render the section labels",
			},
			"accentColor": {
				Control:     ControlColor,
				Default:     "#6366f1",
				Description: "Active item accent color",
			},
		},
	},
	{
		Slug:          "sidebar-profile",
		Name:          "Profile Sidebar",
		ComponentName: "ProfileSidebar",
		Description:   "Sidebar with a user profile block and quick actions at the bottom.",
		Tags:          []string{"sidebar", "navigation", "profile"},
		Props: map[string]PropDef{
			"showAvatar": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Render the avatar in the profile block",
			},
			"userName": {
				Control:     ControlText,
				Default:     "Alex Rivera",
				Description: "Display name in the profile block",
			},
			"footerAction": {
				Control:     ControlSelect,
				Default:     "settings",
				Description: "Quick action pinned to the footer",
				Options:     []string{"settings", "logout", "upgrade"},
			},
		},
	},
}
