package scene

import (
	"errors"
	"fmt"
)

// ErrUnexpectedFormat is returned when a raw payload is neither a list of
// scene objects nor a mapping holding one under a "scenes" key.
var ErrUnexpectedFormat = errors.New("unexpected scene payload format")

// Normalize converts a raw, possibly malformed scene payload into a
// complete sequence of scene records. The payload is either a list of
// mapping objects or a provider envelope of the form {"scenes": [...]}.
//
// Each record is copied before defaults are applied, so the input is left
// untouched. Existing fields are never trimmed, coerced or reordered;
// normalization only fills in what is missing.
func Normalize(raw interface{}) ([]Scene, error) {
	items, err := unwrap(raw)
	if err != nil {
		return nil, err
	}

	scenes := make([]Scene, 0, len(items))
	for i, item := range items {
		record, err := asScene(item)
		if err != nil {
			return nil, fmt.Errorf("scene at index %d: %w", i, err)
		}

		s := record.Clone()
		if _, ok := s[FieldSceneNumber]; !ok {
			s[FieldSceneNumber] = i + 1
		}
		if _, ok := s[FieldDurationSeconds]; !ok {
			s[FieldDurationSeconds] = DefaultDuration
		}
		if _, ok := s[FieldTransitionType]; !ok {
			if i < len(items)-1 {
				s[FieldTransitionType] = DefaultTransition
			} else {
				s[FieldTransitionType] = DefaultLastTransition
			}
		}
		if _, ok := s[FieldMotionIntensity]; !ok {
			s[FieldMotionIntensity] = DefaultMotionIntensity
		}
		if _, ok := s[FieldKeyElements]; !ok {
			s[FieldKeyElements] = []interface{}{}
		}
		if _, ok := s[FieldAudioSuggestion]; !ok {
			s[FieldAudioSuggestion] = DefaultAudioSuggestion
		}

		scenes = append(scenes, s)
	}

	return scenes, nil
}

// unwrap peels a provider envelope off the payload and returns the scene
// list it carries.
func unwrap(raw interface{}) ([]interface{}, error) {
	switch v := raw.(type) {
	case []interface{}:
		return v, nil
	case []Scene:
		items := make([]interface{}, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, nil
	case []map[string]interface{}:
		items := make([]interface{}, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, nil
	case map[string]interface{}:
		inner, ok := v["scenes"]
		if !ok {
			return nil, fmt.Errorf("%w: mapping has no scenes key", ErrUnexpectedFormat)
		}
		return unwrap(inner)
	}
	return nil, fmt.Errorf("%w: got %T, want list or scenes mapping", ErrUnexpectedFormat, raw)
}

func asScene(item interface{}) (Scene, error) {
	switch v := item.(type) {
	case Scene:
		return v, nil
	case map[string]interface{}:
		return Scene(v), nil
	}
	return nil, fmt.Errorf("%w: scene entry is %T, want mapping", ErrUnexpectedFormat, item)
}
