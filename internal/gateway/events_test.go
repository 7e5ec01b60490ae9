package gateway

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEventWireShapes(t *testing.T) {
	endTime := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{
			name:  "points updated",
			event: NewPointsUpdated("Alpha", 70),
			want:  `{"event":"points_updated","team":"Alpha","new_points":70}`,
		},
		{
			name:  "time updated",
			event: NewTimeUpdated("Alpha", endTime, 720),
			want:  `{"event":"time_updated","team":"Alpha","new_end_time":"2025-03-01T12:30:00Z","remaining_seconds":720}`,
		},
		{
			name:  "error",
			event: NewError("Team not found"),
			want:  `{"event":"error","detail":"Team not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.event)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}
