package scene

// LightKind is the closed set of light types.
type LightKind int

const (
	LightPoint LightKind = iota
	LightSun
	LightSpot
	LightArea
)

var lightKindNames = map[LightKind]string{
	LightPoint: "point",
	LightSun:   "sun",
	LightSpot:  "spot",
	LightArea:  "area",
}

var lightKindFromName = map[string]LightKind{
	"point": LightPoint,
	"sun":   LightSun,
	"spot":  LightSpot,
	"area":  LightArea,
}

// directional marks the kinds whose behavior depends on a facing direction.
// Point lights radiate uniformly and never have their orientation driven.
var directional = map[LightKind]bool{
	LightSun:  true,
	LightSpot: true,
	LightArea: true,
}

func (k LightKind) String() string {
	if s, ok := lightKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Directional reports whether lights of this kind have a meaningful
// facing direction.
func (k LightKind) Directional() bool {
	return directional[k]
}

// AreaShape is the emissive shape of an area light.
type AreaShape int

const (
	ShapeSquare AreaShape = iota
	ShapeRectangle
	ShapeDisk
	ShapeEllipse
)

var areaShapeNames = map[AreaShape]string{
	ShapeSquare:    "square",
	ShapeRectangle: "rectangle",
	ShapeDisk:      "disk",
	ShapeEllipse:   "ellipse",
}

var areaShapeFromName = map[string]AreaShape{
	"square":    ShapeSquare,
	"rectangle": ShapeRectangle,
	"disk":      ShapeDisk,
	"ellipse":   ShapeEllipse,
}

func (s AreaShape) String() string {
	if n, ok := areaShapeNames[s]; ok {
		return n
	}
	return "square"
}

// TwoSized reports whether the shape has independent X and Y extents.
func (s AreaShape) TwoSized() bool {
	return s == ShapeRectangle || s == ShapeEllipse
}

// RGB is a linear color.
type RGB struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// ShadowSettings holds the per-light shadow parameters.
type ShadowSettings struct {
	Enabled   bool    `yaml:"enabled"`
	ClipStart float64 `yaml:"clip_start,omitempty"`
	ClipEnd   float64 `yaml:"clip_end,omitempty"`
}

// Light is the light-parameter record attached to light objects.
type Light struct {
	Kind   LightKind      `yaml:"kind"`
	Power  float64        `yaml:"power"`
	Color  RGB            `yaml:"color"`
	Shadow ShadowSettings `yaml:"shadow"`

	// SoftSize is the shadow soft size for point and spot lights.
	SoftSize float64 `yaml:"soft_size,omitempty"`
	// SpotSize and SpotBlend shape the cone of spot lights (radians, 0..1).
	SpotSize  float64 `yaml:"spot_size,omitempty"`
	SpotBlend float64 `yaml:"spot_blend,omitempty"`
	// Angle is the angular diameter of sun lights (radians).
	Angle float64 `yaml:"angle,omitempty"`
	// Shape, Size and SizeY describe area lights.
	Shape AreaShape `yaml:"shape,omitempty"`
	Size  float64   `yaml:"size,omitempty"`
	SizeY float64   `yaml:"size_y,omitempty"`
}
