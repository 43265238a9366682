package catalog

// ControlKind names the playground control used to edit a prop.
type ControlKind string

const (
	ControlText    ControlKind = "text"
	ControlNumber  ControlKind = "number"
	ControlBoolean ControlKind = "boolean"
	ControlSelect  ControlKind = "select"
	ControlColor   ControlKind = "color"
)

// PropDef describes one customizable property of a variant.
type PropDef struct {
	Control     ControlKind `json:"control" validate:"required,oneof=text number boolean select color"`
	Default     any         `json:"default"`
	Description string      `json:"description"`
	Min         *float64    `json:"min,omitempty"`
	Max         *float64    `json:"max,omitempty"`
	Options     []string    `json:"options,omitempty"`
}

// Variant is one pre-built component variant in the showcase.
type Variant struct {
	Slug          string             `json:"slug" validate:"required"`
	Name          string             `json:"name" validate:"required"`
	ComponentName string             `json:"componentName" validate:"required"`
	Description   string             `json:"description"`
	Tags          []string           `json:"tags"`
	Props         map[string]PropDef `json:"props" validate:"dive"`
}

// Catalog groups the variants of one component family.
type Catalog struct {
	Category string
	Variants []Variant
}

// Catalogs returns every component family in display order.
func Catalogs() []Catalog {
	return []Catalog{
		{Category: "buttons", Variants: Buttons},
		{Category: "inputs", Variants: Inputs},
		{Category: "toggles", Variants: Toggles},
		{Category: "tabs", Variants: Tabs},
		{Category: "tab-bars", Variants: TabBars},
		{Category: "dialogs", Variants: Dialogs},
		{Category: "sidebars", Variants: Sidebars},
		{Category: "heroes", Variants: Heroes},
		{Category: "features", Variants: Features},
		{Category: "ctas", Variants: CTAs},
		{Category: "footers", Variants: Footers},
		{Category: "headers", Variants: Headers},
	}
}

// mergeProps clones the given prop sets into a fresh map. Later sets win
// on key collisions, mirroring an explicit spread of shared defaults
// followed by per-variant overrides.
func mergeProps(sets ...map[string]PropDef) map[string]PropDef {
	merged := make(map[string]PropDef)
	for _, set := range sets {
		for name, def := range set {
			merged[name] = def
		}
	}
	return merged
}

func f64(v float64) *float64 {
	return &v
}
