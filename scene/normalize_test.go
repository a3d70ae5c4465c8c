package scene

import (
	"errors"
	"testing"
)

func TestNormalize_AppliesDefaults(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{"visual_prompt": "A boy on a rooftop."},
		map[string]interface{}{"visual_prompt": "A light descends."},
		map[string]interface{}{"visual_prompt": "They fly away."},
	}

	scenes, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if len(scenes) != 3 {
		t.Fatalf("Expected 3 scenes, got %d", len(scenes))
	}

	for i, s := range scenes {
		if s.Number() != i+1 {
			t.Errorf("Scene %d: expected scene_number %d, got %d", i, i+1, s.Number())
		}
		if s.Duration() != 5 {
			t.Errorf("Scene %d: expected duration 5, got %v", i, s.Duration())
		}
		if s.MotionIntensity() != "medium" {
			t.Errorf("Scene %d: expected motion medium, got %q", i, s.MotionIntensity())
		}
		if s[FieldAudioSuggestion] != "Ambient atmosphere" {
			t.Errorf("Scene %d: expected default audio suggestion, got %v", i, s[FieldAudioSuggestion])
		}
		if _, ok := s[FieldKeyElements]; !ok {
			t.Errorf("Scene %d: key_elements not defaulted", i)
		}

		want := "cut"
		if i == len(scenes)-1 {
			want = "fade"
		}
		if s.TransitionType() != want {
			t.Errorf("Scene %d: expected transition %q, got %q", i, want, s.TransitionType())
		}
	}
}

func TestNormalize_PreservesExistingFields(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{
			"scene_number":     float64(7),
			"duration_seconds": float64(9),
			"transition_type":  "whip_pan",
			"motion_intensity": "high",
			"key_elements":     []interface{}{"rain", "neon"},
			"audio_suggestion": "Synth pulse",
			"extra_field":      "kept",
		},
	}

	scenes, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	s := scenes[0]
	if s.Number() != 7 {
		t.Errorf("Expected scene_number 7, got %d", s.Number())
	}
	if s.Duration() != 9 {
		t.Errorf("Expected duration 9, got %v", s.Duration())
	}
	if s.TransitionType() != "whip_pan" {
		t.Errorf("Expected transition whip_pan, got %q", s.TransitionType())
	}
	if s.MotionIntensity() != "high" {
		t.Errorf("Expected motion high, got %q", s.MotionIntensity())
	}
	if got := s.KeyElements(); len(got) != 2 || got[0] != "rain" {
		t.Errorf("Key elements not preserved: %v", got)
	}
	if s["extra_field"] != "kept" {
		t.Errorf("Extra field dropped during normalization")
	}
}

func TestNormalize_EnvelopeEquivalence(t *testing.T) {
	list := []interface{}{
		map[string]interface{}{"visual_prompt": "x"},
		map[string]interface{}{"visual_prompt": "y"},
	}
	envelope := map[string]interface{}{"scenes": list}

	fromList, err := Normalize(list)
	if err != nil {
		t.Fatalf("Normalize(list) returned error: %v", err)
	}
	fromEnvelope, err := Normalize(envelope)
	if err != nil {
		t.Fatalf("Normalize(envelope) returned error: %v", err)
	}

	if len(fromList) != len(fromEnvelope) {
		t.Fatalf("Length mismatch: %d vs %d", len(fromList), len(fromEnvelope))
	}
	for i := range fromList {
		for k, v := range fromList[i] {
			ev, ok := fromEnvelope[i][k]
			if !ok {
				t.Errorf("Scene %d: key %q missing from envelope result", i, k)
				continue
			}
			switch v.(type) {
			case []interface{}:
				// defaulted key_elements; compared by presence above
			default:
				if ev != v {
					t.Errorf("Scene %d key %q: %v != %v", i, k, v, ev)
				}
			}
		}
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	record := map[string]interface{}{"visual_prompt": "x"}
	raw := []interface{}{record}

	if _, err := Normalize(raw); err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if len(record) != 1 {
		t.Errorf("Input record mutated: %v", record)
	}
}

func TestNormalize_RejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
	}{
		{name: "bare string", raw: "not scenes"},
		{name: "number", raw: float64(42)},
		{name: "nil", raw: nil},
		{name: "mapping without scenes key", raw: map[string]interface{}{"data": []interface{}{}}},
		{name: "list of non-mappings", raw: []interface{}{"scene one"}},
		{name: "scenes key holding non-list", raw: map[string]interface{}{"scenes": "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			if err == nil {
				t.Fatalf("Expected an error for %v", tt.raw)
			}
			if !errors.Is(err, ErrUnexpectedFormat) {
				t.Errorf("Expected ErrUnexpectedFormat, got %v", err)
			}
		})
	}
}

func TestNormalize_SingleSceneGetsFade(t *testing.T) {
	scenes, err := Normalize([]interface{}{map[string]interface{}{"visual_prompt": "only"}})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if scenes[0].TransitionType() != "fade" {
		t.Errorf("Single scene should default to fade, got %q", scenes[0].TransitionType())
	}
}

func TestNormalize_EmptyList(t *testing.T) {
	scenes, err := Normalize([]interface{}{})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if len(scenes) != 0 {
		t.Errorf("Expected empty output, got %d scenes", len(scenes))
	}
}
