package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/TobyPDE/chianti/internal/augment"
	"github.com/TobyPDE/chianti/internal/iterator"
	"github.com/TobyPDE/chianti/internal/loader"
	"github.com/TobyPDE/chianti/internal/provider"
	"github.com/TobyPDE/chianti/internal/types"
)

// Recipe is the top-level YAML shape a training run is configured
// from: which files to stream, how their targets decode, what
// selection policy the iterator uses, which augmentors run in order,
// and how batches are packed.
type Recipe struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	Target     TargetConfig     `yaml:"target"`
	Iterator   IteratorConfig   `yaml:"iterator"`
	Augmentors []AugmentorStep  `yaml:"augmentors"`
	Provider   ProviderConfig   `yaml:"provider"`
}

// DatasetConfig locates the image/target pairs on disk.
type DatasetConfig struct {
	ImageDir     string `yaml:"image_dir"`
	TargetDir    string `yaml:"target_dir"`
	ImagePattern string `yaml:"image_pattern"` // default: "*"
	TargetPattern string `yaml:"target_pattern"` // default: "*"
}

// TargetConfig selects how target images decode into label planes.
type TargetConfig struct {
	// Kind is one of "label", "value_mapper", "color_mapper".
	Kind string `yaml:"kind"`
	// ValueMap is the 256-entry remap table for kind "value_mapper".
	ValueMap []uint8 `yaml:"value_map"`
	// ColorMap maps an RGB triple to a class id for kind "color_mapper".
	ColorMap []ColorMapEntry `yaml:"color_map"`
}

// ColorMapEntry is one color-to-class-id binding.
type ColorMapEntry struct {
	Color [3]uint8 `yaml:"color"`
	Class uint8    `yaml:"class"`
}

// IteratorConfig selects the filename-selection policy.
type IteratorConfig struct {
	// Policy is one of "sequential", "random", "weighted_random".
	Policy  string    `yaml:"policy"`
	Seed    *uint64   `yaml:"seed"`
	Weights []float64 `yaml:"weights"` // required for weighted_random
}

// AugmentorStep is one entry of the augmentor chain. Type selects
// which constructor runs; the remaining fields are read according to
// type and ignored otherwise.
type AugmentorStep struct {
	Type string `yaml:"type"`

	Factor     int     `yaml:"factor"`      // subsample
	Strength   float64 `yaml:"strength"`     // gamma
	Offset     int     `yaml:"offset"`       // translation
	Range      float64 `yaml:"range"`        // zoom
	MaxAngle   float64 `yaml:"max_angle"`    // rotate
	SigmaMax   float64 `yaml:"sigma_max"`    // blur
	Min        float64 `yaml:"min"`          // saturation, hue, brightness
	Max        float64 `yaml:"max"`          // saturation, hue, brightness
	Size       int     `yaml:"size"`         // crop
	NumClasses int     `yaml:"num_classes"`  // crop
	Seed       *uint64 `yaml:"seed"`
}

// ProviderConfig controls batch assembly.
type ProviderConfig struct {
	BatchSize  int    `yaml:"batch_size"`
	NumClasses int    `yaml:"num_classes"`
	// TargetMode is one of "dense", "one_hot". Default: "dense".
	TargetMode string `yaml:"target_mode"`
}

// Load reads, parses, defaults and validates a recipe file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chianti/config: read recipe: %w", err)
	}

	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("chianti/config: parse recipe: %w", err)
	}

	applyDefaults(&r)

	if err := Validate(&r); err != nil {
		return nil, fmt.Errorf("chianti/config: invalid recipe: %w", err)
	}

	return &r, nil
}

func applyDefaults(r *Recipe) {
	if r.Dataset.ImagePattern == "" {
		r.Dataset.ImagePattern = "*"
	}
	if r.Dataset.TargetPattern == "" {
		r.Dataset.TargetPattern = "*"
	}
	if r.Iterator.Policy == "" {
		r.Iterator.Policy = "sequential"
	}
	if r.Target.Kind == "" {
		r.Target.Kind = "label"
	}
	if r.Provider.TargetMode == "" {
		r.Provider.TargetMode = "dense"
	}
}

// DiscoverPairs globs DatasetConfig's two directories and pairs the
// Nth image with the Nth target by lexicographic filename order. A
// differing number of images and targets is an error. Otherwise it
// does not inspect file names or contents: files whose names do not
// correspond are paired by position, not rejected, since the dataset
// layout is the caller's contract.
func (d DatasetConfig) DiscoverPairs() ([]types.FilenamePair, error) {
	images, err := glob(d.ImageDir, d.ImagePattern)
	if err != nil {
		return nil, fmt.Errorf("chianti/config: discover images: %w", err)
	}
	targets, err := glob(d.TargetDir, d.TargetPattern)
	if err != nil {
		return nil, fmt.Errorf("chianti/config: discover targets: %w", err)
	}
	if len(images) != len(targets) {
		return nil, fmt.Errorf("chianti/config: found %d images but %d targets in %q/%q",
			len(images), len(targets), d.ImageDir, d.TargetDir)
	}

	pairs := make([]types.FilenamePair, len(images))
	for i := range images {
		pairs[i] = types.FilenamePair{Image: images[i], Target: targets[i]}
	}
	return pairs, nil
}

func glob(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// BuildTargetLoader constructs the loader.TargetLoader named by
// TargetConfig.Kind.
func (t TargetConfig) BuildTargetLoader() (loader.TargetLoader, error) {
	switch t.Kind {
	case "label":
		return loader.NewLabel(), nil
	case "value_mapper":
		return loader.NewValueMapper(t.ValueMap)
	case "color_mapper":
		colors := make(map[[3]uint8]uint8, len(t.ColorMap))
		for _, e := range t.ColorMap {
			colors[e.Color] = e.Class
		}
		return loader.NewColorMapper(colors), nil
	default:
		return nil, fmt.Errorf("chianti/config: unknown target kind %q", t.Kind)
	}
}

// BuildIterator constructs the types.Iterator named by Policy over
// pairs.
func (c IteratorConfig) BuildIterator(pairs []types.FilenamePair) (types.Iterator, error) {
	switch c.Policy {
	case "sequential":
		return iterator.NewSequential(pairs)
	case "random":
		return iterator.NewRandom(pairs, c.Seed)
	case "weighted_random":
		return iterator.NewWeightedRandom(pairs, c.Weights, c.Seed)
	default:
		return nil, fmt.Errorf("chianti/config: unknown iterator policy %q", c.Policy)
	}
}

// BuildAugmentor constructs the single augmentor named by Type.
func (s AugmentorStep) BuildAugmentor() (augment.Augmentor, error) {
	switch s.Type {
	case "float_cast":
		return augment.NewFloatCast(), nil
	case "subsample":
		return augment.NewSubsample(s.Factor)
	case "gamma":
		return augment.NewGamma(s.Strength, s.Seed), nil
	case "translation":
		return augment.NewTranslation(s.Offset, s.Seed), nil
	case "zoom":
		return augment.NewZoom(s.Range, s.Seed), nil
	case "rotate":
		return augment.NewRotate(s.MaxAngle, s.Seed), nil
	case "blur":
		return augment.NewBlur(s.SigmaMax, s.Seed), nil
	case "saturation":
		return augment.NewSaturation(s.Min, s.Max, s.Seed), nil
	case "hue":
		return augment.NewHue(s.Min, s.Max, s.Seed), nil
	case "brightness":
		return augment.NewBrightness(s.Min, s.Max, s.Seed), nil
	case "crop":
		return augment.NewCrop(s.Size, s.NumClasses, s.Seed), nil
	case "cityscapes_label_remap":
		return augment.NewCityscapesLabelRemap(), nil
	default:
		return nil, fmt.Errorf("chianti/config: unknown augmentor type %q", s.Type)
	}
}

// BuildAugmentorChain constructs every step in declared order and
// combines them.
func (r *Recipe) BuildAugmentorChain() (augment.Augmentor, error) {
	steps := make([]augment.Augmentor, 0, len(r.Augmentors))
	for _, s := range r.Augmentors {
		a, err := s.BuildAugmentor()
		if err != nil {
			return nil, err
		}
		steps = append(steps, a)
	}
	return augment.NewCombined(steps...), nil
}

func (c ProviderConfig) targetMode() (provider.TargetMode, error) {
	switch c.TargetMode {
	case "dense":
		return provider.TargetDense, nil
	case "one_hot":
		return provider.TargetOneHot, nil
	default:
		return 0, fmt.Errorf("chianti/config: unknown target mode %q", c.TargetMode)
	}
}

// Build wires the full recipe into a ready-to-run provider. The
// caller still owns the Provider's lifecycle: Init before the first
// Next, Close when done.
func (r *Recipe) Build() (*provider.Provider, error) {
	pairs, err := r.Dataset.DiscoverPairs()
	if err != nil {
		return nil, err
	}

	it, err := r.Iterator.BuildIterator(pairs)
	if err != nil {
		return nil, err
	}

	targetLoader, err := r.Target.BuildTargetLoader()
	if err != nil {
		return nil, err
	}
	pairLoader := loader.NewPair(loader.NewRGB(), targetLoader)

	chain, err := r.BuildAugmentorChain()
	if err != nil {
		return nil, err
	}

	mode, err := r.Provider.targetMode()
	if err != nil {
		return nil, err
	}

	return provider.New(it, pairLoader, chain, r.Provider.BatchSize, r.Provider.NumClasses, mode)
}
