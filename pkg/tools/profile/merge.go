package profile

// mergeProfiles deep-merges updates into existing and returns the result as a
// new mapping; the existing mapping passed in is never mutated. Only the
// mapping-over-mapping case recurses: any other combination (scalar over
// scalar, scalar over mapping, mapping over scalar, sequences of any kind)
// replaces the prior entry wholesale. Sequences deliberately get no
// element-wise treatment. Values taken from updates are stored by reference,
// not copied, so callers must not mutate nested maps after merging.
func mergeProfiles(existing, updates map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(existing)+len(updates))
	for k, v := range existing {
		result[k] = v
	}

	for key, value := range updates {
		existingValue, present := result[key]
		if present {
			existingMap, existingIsMap := existingValue.(map[string]interface{})
			updateMap, updateIsMap := value.(map[string]interface{})
			if existingIsMap && updateIsMap {
				result[key] = mergeProfiles(existingMap, updateMap)
				continue
			}
		}
		result[key] = value
	}

	return result
}
