package scene

import "strconv"

// Scene is one row of a production sheet. Keeping it as a plain map lets
// the pipeline carry whatever extra fields an LLM decides to return; the
// exporter unions keys across scenes so nothing is dropped on the floor.
type Scene map[string]interface{}

// Field names filled in by Normalize.
const (
	FieldSceneNumber     = "scene_number"
	FieldNarrativeBeat   = "narrative_beat"
	FieldVisualPrompt    = "visual_prompt"
	FieldCameraMovement  = "camera_movement"
	FieldMoodLighting    = "mood_lighting"
	FieldDurationSeconds = "duration_seconds"
	FieldTransitionType  = "transition_type"
	FieldMotionIntensity = "motion_intensity"
	FieldKeyElements     = "key_elements"
	FieldAudioSuggestion = "audio_suggestion"
)

// Defaults applied during normalization.
const (
	DefaultDuration        = 5.0
	DefaultTransition      = "cut"
	DefaultLastTransition  = "fade"
	DefaultMotionIntensity = "medium"
	DefaultAudioSuggestion = "Ambient atmosphere"
)

func (s Scene) Number() int {
	return int(safeParseFloat(s[FieldSceneNumber], 0))
}

func (s Scene) Duration() float64 {
	return safeParseFloat(s[FieldDurationSeconds], DefaultDuration)
}

func (s Scene) VisualPrompt() string {
	return stringField(s, FieldVisualPrompt)
}

func (s Scene) NarrativeBeat() string {
	return stringField(s, FieldNarrativeBeat)
}

func (s Scene) TransitionType() string {
	return stringField(s, FieldTransitionType)
}

func (s Scene) MotionIntensity() string {
	return stringField(s, FieldMotionIntensity)
}

// KeyElements returns the key_elements field as a string slice. JSON
// decoding hands us []interface{}, so both representations are accepted.
func (s Scene) KeyElements() []string {
	switch v := s[FieldKeyElements].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if str, ok := e.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Clone returns a shallow copy of the scene.
func (s Scene) Clone() Scene {
	out := make(Scene, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func stringField(s Scene, key string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

// safeParseFloat coerces the numeric shapes a decoded JSON payload can
// carry (float64 from encoding/json, int from literals, numeric strings).
func safeParseFloat(value interface{}, defaultValue float64) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return defaultValue
}
