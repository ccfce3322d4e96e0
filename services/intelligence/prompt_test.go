package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"timetabler/models"
)

func sampleRequest() models.TimetableRequest {
	return models.TimetableRequest{
		NumWeeks:        3,
		StartTime:       "08:30",
		EndTime:         "15:00",
		ModelName:       "gemini-2.0-flash",
		ListOfDays:      []string{"Monday", "Wednesday", "Friday"},
		LectureDuration: 1.5,
	}
}

func TestBuildTimetablePrompt_EmbedsParameters(t *testing.T) {
	prompt := BuildTimetablePrompt(sampleRequest(), "UNIT 1: Linear algebra")

	for _, want := range []string{
		"3 weeks",
		"Monday, Wednesday, Friday",
		"from 08:30 to 15:00",
		"1.5 hours",
		"lunch break from 12:00 to 13:00",
		"consecutive lectures of the same subject is minimized",
		"UNIT 1: Linear algebra",
		`"$schema": "http://json-schema.org/draft-07/schema#"`,
		`"required": ["timetable"]`,
	} {
		require.Contains(t, prompt, want)
	}
}

func TestBuildTimetablePrompt_EndsWithJSONOnlyInstruction(t *testing.T) {
	prompt := strings.TrimSpace(BuildTimetablePrompt(sampleRequest(), "syllabus"))
	require.True(t, strings.HasSuffix(prompt, "Return ONLY the JSON object without any explanations or markdown formatting."))
}

func TestBuildTimetablePrompt_WholeHourDuration(t *testing.T) {
	req := sampleRequest()
	req.LectureDuration = 1
	require.Contains(t, BuildTimetablePrompt(req, "x"), "lasting 1 hours")
}

func TestBuildTimetablePrompt_Pure(t *testing.T) {
	req := sampleRequest()
	require.Equal(t, BuildTimetablePrompt(req, "same"), BuildTimetablePrompt(req, "same"))
}
