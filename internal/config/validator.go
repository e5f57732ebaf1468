package config

import "fmt"

// Validate checks a parsed recipe for structural errors that would
// otherwise surface confusingly deep inside Build.
func Validate(r *Recipe) error {
	if r.Dataset.ImageDir == "" {
		return fmt.Errorf("dataset.image_dir is required")
	}
	if r.Dataset.TargetDir == "" {
		return fmt.Errorf("dataset.target_dir is required")
	}

	if err := validateTarget(r.Target); err != nil {
		return fmt.Errorf("target: %w", err)
	}

	if err := validateIterator(r.Iterator); err != nil {
		return fmt.Errorf("iterator: %w", err)
	}

	for i, step := range r.Augmentors {
		if err := validateAugmentorStep(step); err != nil {
			return fmt.Errorf("augmentors[%d]: %w", i, err)
		}
	}

	if err := validateProvider(r.Provider); err != nil {
		return fmt.Errorf("provider: %w", err)
	}

	return nil
}

func validateTarget(t TargetConfig) error {
	switch t.Kind {
	case "label":
	case "value_mapper":
		if len(t.ValueMap) != 256 {
			return fmt.Errorf("value_map must have exactly 256 entries, got %d", len(t.ValueMap))
		}
	case "color_mapper":
		if len(t.ColorMap) == 0 {
			return fmt.Errorf("color_map must name at least one color")
		}
	default:
		return fmt.Errorf("unknown kind %q (must be label, value_mapper or color_mapper)", t.Kind)
	}
	return nil
}

func validateIterator(c IteratorConfig) error {
	switch c.Policy {
	case "sequential", "random":
	case "weighted_random":
		if len(c.Weights) == 0 {
			return fmt.Errorf("weighted_random requires weights")
		}
	default:
		return fmt.Errorf("unknown policy %q (must be sequential, random or weighted_random)", c.Policy)
	}
	return nil
}

func validateAugmentorStep(s AugmentorStep) error {
	switch s.Type {
	case "float_cast", "cityscapes_label_remap":
	case "subsample":
		if s.Factor <= 0 {
			return fmt.Errorf("subsample.factor must be > 0")
		}
	case "gamma", "translation", "zoom", "rotate", "blur":
	case "saturation", "hue", "brightness":
		if s.Min > s.Max {
			return fmt.Errorf("%s: min must be <= max", s.Type)
		}
	case "crop":
		if s.Size <= 0 {
			return fmt.Errorf("crop.size must be > 0")
		}
		if s.NumClasses <= 0 {
			return fmt.Errorf("crop.num_classes must be > 0")
		}
	default:
		return fmt.Errorf("unknown type %q", s.Type)
	}
	return nil
}

func validateProvider(c ProviderConfig) error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0")
	}
	switch c.TargetMode {
	case "dense":
	case "one_hot":
		if c.NumClasses <= 0 {
			return fmt.Errorf("num_classes must be > 0 when target_mode is one_hot")
		}
	default:
		return fmt.Errorf("unknown target_mode %q (must be dense or one_hot)", c.TargetMode)
	}
	return nil
}
