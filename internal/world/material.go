package world

// Material classifies a point of the surface.
type Material uint8

const (
	Rock Material = iota
	DarkRock
	Trees
	Grass
	Water
	Ice
	Snow
)

// Materials lists every material in declaration order.
var Materials = []Material{Rock, DarkRock, Trees, Grass, Water, Ice, Snow}

// FloatPixel is an RGB colour with unclamped float channels.
type FloatPixel [3]float64

var materialColors = [...]FloatPixel{
	Rock:     {0.5, 0.37, 0.24},
	DarkRock: {0.41, 0.27, 0.21},
	Trees:    {0.3, 0.6, 0.4},
	Grass:    {0.5, 0.65, 0.4},
	Water:    {0.3, 0.5, 1.0},
	Ice:      {1.0, 1.0, 1.3},
	Snow:     {1.15, 1.15, 1.2},
}

var materialNames = [...]string{
	Rock:     "rock",
	DarkRock: "dark-rock",
	Trees:    "trees",
	Grass:    "grass",
	Water:    "water",
	Ice:      "ice",
	Snow:     "snow",
}

// IsLand reports whether links over this material travel by land. Ice is
// land; only open water is not.
func (m Material) IsLand() bool { return m != Water }

// Walkable reports whether a zone cell of this material counts as walkable.
func (m Material) Walkable() bool { return m != Water && m != Ice }

// Color returns the base colour. Channels may exceed 1 for bright materials.
func (m Material) Color() FloatPixel {
	if int(m) < len(materialColors) {
		return materialColors[m]
	}
	return FloatPixel{}
}

// Valid reports whether m is one of the defined materials.
func (m Material) Valid() bool { return int(m) < len(materialNames) }

func (m Material) String() string {
	if m.Valid() {
		return materialNames[m]
	}
	return "unknown"
}
