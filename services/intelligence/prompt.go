package ai

import (
	"fmt"
	"strconv"
	"strings"

	"timetabler/models"
)

// Lunch break excluded from every teaching day.
const (
	LunchStart = "12:00"
	LunchEnd   = "13:00"
)

// TimetableJSONSchema describes the document the model must return.
const TimetableJSONSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "timetable": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "week": { "type": "integer", "minimum": 1 },
          "days": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "day": {
                  "type": "string",
                  "enum": ["Monday", "Tuesday", "Wednesday", "Thursday", "Friday"]
                },
                "schedule": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "properties": {
                      "time": { "type": "string", "pattern": "^\\d{2}:\\d{2}-\\d{2}:\\d{2}$" },
                      "subject": { "type": "string" },
                      "topic": { "type": "string" }
                    },
                    "required": ["time", "subject", "topic"]
                  }
                }
              },
              "required": ["day", "schedule"]
            }
          }
        },
        "required": ["week", "days"]
      }
    }
  },
  "required": ["timetable"]
}`

// BuildTimetablePrompt renders the generation instruction for one request.
// It is a pure function of its inputs.
func BuildTimetablePrompt(req models.TimetableRequest, syllabus string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Create a topic timetable for each subject in JSON format (follow this JSON schema: %s)\n", TimetableJSONSchema)
	fmt.Fprintf(&sb, "covering %d weeks, each week on %s,\n", req.NumWeeks, strings.Join(req.ListOfDays, ", "))
	fmt.Fprintf(&sb, "each day from %s to %s, each lecture lasting %s hours, with a lunch break from %s to %s,\n",
		req.StartTime, req.EndTime, formatHours(req.LectureDuration), LunchStart, LunchEnd)
	sb.WriteString("using the following syllabus.\n")
	sb.WriteString("Arrange the timetable so that the number of consecutive lectures of the same subject is minimized.\n\n")
	sb.WriteString(syllabus)
	sb.WriteString("\n\nReturn ONLY the JSON object without any explanations or markdown formatting.\n")

	return sb.String()
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
