package vars

// Merge deep-merges override into base and returns a new map. Nested maps
// are merged recursively, any other overlapping value is replaced by the
// override. Lists are replaced, never concatenated. Neither input is
// mutated and every carried value is deep-copied.
func Merge(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = DeepCopy(v)
	}
	for k, ov := range override {
		bm, baseIsMap := out[k].(map[string]any)
		om, overrideIsMap := ov.(map[string]any)
		if baseIsMap && overrideIsMap {
			out[k] = Merge(bm, om)
			continue
		}
		out[k] = DeepCopy(ov)
	}
	return out
}

// MergeAll folds Merge left to right, so later layers override earlier ones.
func MergeAll(layers ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, layer := range layers {
		out = Merge(out, layer)
	}
	return out
}
