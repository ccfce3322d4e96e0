package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTimetableRequest_Defaults(t *testing.T) {
	req := NewTimetableRequest("gemini-2.0-flash")
	require.Equal(t, 2, req.NumWeeks)
	require.Equal(t, "09:00", req.StartTime)
	require.Equal(t, "14:00", req.EndTime)
	require.Equal(t, "gemini-2.0-flash", req.ModelName)
	require.Nil(t, req.ListOfDays)
	require.Zero(t, req.LectureDuration)
}

func TestCheckWindow(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		days    []string
		wantErr bool
	}{
		{name: "valid", start: "09:00", end: "14:00", days: []string{"Monday"}},
		{name: "inverted", start: "14:00", end: "09:00", days: []string{"Monday"}, wantErr: true},
		{name: "empty window", start: "09:00", end: "09:00", days: []string{"Monday"}, wantErr: true},
		{name: "bad start", start: "9", end: "14:00", days: []string{"Monday"}, wantErr: true},
		{name: "blank day", start: "09:00", end: "14:00", days: []string{"Monday", "  "}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := TimetableRequest{StartTime: tc.start, EndTime: tc.end, ListOfDays: tc.days}
			err := req.CheckWindow()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTimetable_SlotCount(t *testing.T) {
	tt := Timetable{Timetable: []Week{
		{Week: 1, Days: []Day{
			{Day: "Monday", Schedule: []Slot{{Time: "09:00-10:00"}, {Time: "10:00-11:00"}}},
			{Day: "Tuesday"},
		}},
		{Week: 2, Days: []Day{{Day: "Monday", Schedule: []Slot{{Time: "09:00-10:00"}}}}},
	}}
	require.Equal(t, 3, tt.SlotCount())
}
