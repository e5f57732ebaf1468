package chianti

import "github.com/TobyPDE/chianti/internal/config"

// Recipe is a YAML-defined description of a full training pipeline:
// dataset location, target decoding, iterator policy, augmentor
// chain, and batch packing.
type Recipe = config.Recipe

// LoadRecipe reads, defaults and validates a recipe file.
func LoadRecipe(path string) (*Recipe, error) {
	return config.Load(path)
}

// Build wires a loaded recipe into a ready-to-run Provider. Call
// Init on the result before the first Next.
func Build(r *Recipe) (*Provider, error) {
	return r.Build()
}
