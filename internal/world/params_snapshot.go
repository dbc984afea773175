package world

import "planetgen/internal/core"

// Parameters reports the primitive and the values derived from it.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Primitive",
			Params: []core.Parameter{
				core.Uint64Param("seed", "Seed", w.prim.Seed),
				core.FloatParam("distance", "Distance to star", w.prim.DistanceToStar),
				core.FloatParam("energy", "Star energy", w.prim.StarEnergy),
			},
		},
		{
			Name: "Surface",
			Params: []core.Parameter{
				core.FloatParam("size", "Size", w.size),
				core.FloatParam("water_level", "Water level", w.waterLevel),
				core.FloatParam("snow_below_temp", "Snow below temp", w.snowBelowTemp),
				core.FloatParam("grass_within_min", "Grass within min", w.grassWithin[0]),
				core.FloatParam("grass_within_max", "Grass within max", w.grassWithin[1]),
				core.FloatParam("trees_within_min", "Trees within min", w.treesWithin[0]),
				core.FloatParam("trees_within_max", "Trees within max", w.treesWithin[1]),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				core.IntParam("base_height_units", "Base height units", w.baseHeight.Len()),
				core.IntParam("complex_height_units", "Complex height units", w.complexHeight.Len()),
				core.IntParam("temp_units", "Temperature units", w.temp.Len()),
			},
		},
		{
			Name: "Topology",
			Params: []core.Parameter{
				core.IntParam("zones", "Zones", len(w.zones)),
				core.IntParam("links", "Links", len(w.links)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}
