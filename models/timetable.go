package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const clockLayout = "15:04"

// Default values applied to fields a client leaves out of the request JSON.
const (
	DefaultNumWeeks  = 2
	DefaultStartTime = "09:00"
	DefaultEndTime   = "14:00"
)

// TimetableRequest carries the scheduling parameters sent in the "request" form field.
type TimetableRequest struct {
	NumWeeks        int      `json:"num_weeks" binding:"gte=1"`
	StartTime       string   `json:"start_time" binding:"required,datetime=15:04"`
	EndTime         string   `json:"end_time" binding:"required,datetime=15:04"`
	ModelName       string   `json:"model_name" binding:"required"`
	ListOfDays      []string `json:"list_of_days" binding:"required,min=1,dive,required"`
	LectureDuration float64  `json:"lecture_duration" binding:"required,gt=0"`
}

// NewTimetableRequest returns a request pre-filled with defaults, ready to be
// decoded over.
func NewTimetableRequest(defaultModel string) TimetableRequest {
	return TimetableRequest{
		NumWeeks:  DefaultNumWeeks,
		StartTime: DefaultStartTime,
		EndTime:   DefaultEndTime,
		ModelName: defaultModel,
	}
}

// CheckWindow verifies the daily window is not empty or inverted.
// Field-level validation must already have passed.
func (r TimetableRequest) CheckWindow() error {
	start, err := time.Parse(clockLayout, r.StartTime)
	if err != nil {
		return fmt.Errorf("start_time: %w", err)
	}
	end, err := time.Parse(clockLayout, r.EndTime)
	if err != nil {
		return fmt.Errorf("end_time: %w", err)
	}
	if !end.After(start) {
		return errors.New("end_time must be after start_time")
	}
	for i, day := range r.ListOfDays {
		if strings.TrimSpace(day) == "" {
			return fmt.Errorf("list_of_days[%d] must not be blank", i)
		}
	}
	return nil
}

// Timetable is the shape the model is asked to produce.
type Timetable struct {
	Timetable []Week `json:"timetable"`
}

type Week struct {
	Week int   `json:"week"`
	Days []Day `json:"days"`
}

type Day struct {
	Day      string `json:"day"`
	Schedule []Slot `json:"schedule"`
}

// Slot is one lecture; Time is formatted "HH:MM-HH:MM".
type Slot struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

// SlotCount returns the number of lectures across all weeks and days.
func (t Timetable) SlotCount() int {
	n := 0
	for _, w := range t.Timetable {
		for _, d := range w.Days {
			n += len(d.Schedule)
		}
	}
	return n
}

// SyllabusFile is one uploaded document.
type SyllabusFile struct {
	Filename string
	Data     []byte
}
