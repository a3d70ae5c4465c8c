package scene

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCalculateStatistics_Empty(t *testing.T) {
	if stats := CalculateStatistics(nil); stats != nil {
		t.Errorf("Expected nil for empty input, got %+v", stats)
	}
	if stats := CalculateStatistics([]Scene{}); stats != nil {
		t.Errorf("Expected nil for empty slice, got %+v", stats)
	}
}

func TestCalculateStatistics_Totals(t *testing.T) {
	scenes := []Scene{
		{"duration_seconds": float64(6), "motion_intensity": "low", "transition_type": "fade"},
		{"duration_seconds": float64(5), "motion_intensity": "high", "transition_type": "cut"},
		{"duration_seconds": float64(7), "motion_intensity": "low", "transition_type": "cut"},
	}

	stats := CalculateStatistics(scenes)
	if stats == nil {
		t.Fatal("Expected statistics, got nil")
	}

	if stats.TotalScenes != 3 {
		t.Errorf("Expected 3 scenes, got %d", stats.TotalScenes)
	}
	if stats.TotalDurationSeconds != 18 {
		t.Errorf("Expected total 18s, got %v", stats.TotalDurationSeconds)
	}
	if math.Abs(stats.TotalDurationMinutes-0.3) > 1e-9 {
		t.Errorf("Expected 0.3 minutes, got %v", stats.TotalDurationMinutes)
	}
	if math.Abs(stats.AverageSceneDuration*float64(stats.TotalScenes)-stats.TotalDurationSeconds) > 1e-9 {
		t.Errorf("average * count != total: %v * %d != %v",
			stats.AverageSceneDuration, stats.TotalScenes, stats.TotalDurationSeconds)
	}

	if stats.MotionDistribution.Count("low") != 2 || stats.MotionDistribution.Count("high") != 1 {
		t.Errorf("Unexpected motion distribution: %v", stats.MotionDistribution)
	}
	if stats.TransitionDistribution.Count("cut") != 2 || stats.TransitionDistribution.Count("fade") != 1 {
		t.Errorf("Unexpected transition distribution: %v", stats.TransitionDistribution)
	}
}

func TestCalculateStatistics_MissingDurationTreatedAsFive(t *testing.T) {
	scenes := []Scene{
		{"motion_intensity": "medium", "transition_type": "cut"},
	}

	stats := CalculateStatistics(scenes)
	if stats.TotalDurationSeconds != 5 {
		t.Errorf("Expected missing duration to count as 5, got %v", stats.TotalDurationSeconds)
	}
}

func TestDistribution_OrderAndJSON(t *testing.T) {
	d := NewDistribution()
	d.Add("medium")
	d.Add("low")
	d.Add("medium")
	d.Add("high")

	keys := d.Keys()
	want := []string{"medium", "low", "high"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Key %d: expected %q, got %q", i, want[i], keys[i])
		}
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"medium":2,"low":1,"high":1}` {
		t.Errorf("Unexpected JSON encoding: %s", data)
	}
}
