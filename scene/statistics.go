package scene

import (
	"bytes"
	"encoding/json"
)

// Distribution counts occurrences of string values, preserving the order
// in which each distinct value was first seen.
type Distribution struct {
	keys   []string
	counts map[string]int
}

func NewDistribution() *Distribution {
	return &Distribution{counts: make(map[string]int)}
}

func (d *Distribution) Add(key string) {
	if _, seen := d.counts[key]; !seen {
		d.keys = append(d.keys, key)
	}
	d.counts[key]++
}

func (d *Distribution) Count(key string) int {
	return d.counts[key]
}

// Keys returns the distinct values in first-occurrence order.
func (d *Distribution) Keys() []string {
	return d.keys
}

func (d *Distribution) Len() int {
	return len(d.keys)
}

// MarshalJSON renders the distribution as a JSON object whose members keep
// first-occurrence order, which a plain map would not.
func (d *Distribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		count, err := json.Marshal(d.counts[key])
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Statistics aggregates a normalized scene sequence.
type Statistics struct {
	TotalScenes            int           `json:"total_scenes"`
	TotalDurationSeconds   float64       `json:"total_duration_seconds"`
	TotalDurationMinutes   float64       `json:"total_duration_minutes"`
	AverageSceneDuration   float64       `json:"average_scene_duration"`
	MotionDistribution     *Distribution `json:"motion_distribution"`
	TransitionDistribution *Distribution `json:"transition_distribution"`
}

// CalculateStatistics aggregates counts, durations and distributions over
// the given scenes. An empty input yields a nil result, not an error.
func CalculateStatistics(scenes []Scene) *Statistics {
	if len(scenes) == 0 {
		return nil
	}

	var totalDuration float64
	motion := NewDistribution()
	transition := NewDistribution()

	for _, s := range scenes {
		totalDuration += s.Duration()

		if m := s.MotionIntensity(); m != "" {
			motion.Add(m)
		} else {
			motion.Add("unknown")
		}

		if t := s.TransitionType(); t != "" {
			transition.Add(t)
		} else {
			transition.Add("unknown")
		}
	}

	return &Statistics{
		TotalScenes:            len(scenes),
		TotalDurationSeconds:   totalDuration,
		TotalDurationMinutes:   totalDuration / 60,
		AverageSceneDuration:   totalDuration / float64(len(scenes)),
		MotionDistribution:     motion,
		TransitionDistribution: transition,
	}
}
