package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionPractice = "practice"
	actionSettings = "settings"
)

// Practice sub-actions.
const (
	practiceReveal = "reveal"
	practiceGrade  = "grade"
	practiceStop   = "stop"
)

// Settings sub-actions.
const (
	settingsReminders = "reminders"
	settingsHour      = "hour"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildRevealCallback builds callback data for showing a card's answer.
func buildRevealCallback() string {
	return callbackData{
		Action: actionPractice,
		Params: []string{practiceReveal},
	}.encode()
}

// buildGradeCallback builds callback data for grading the current card.
func buildGradeCallback(quality int) string {
	return callbackData{
		Action: actionPractice,
		Params: []string{practiceGrade, strconv.Itoa(quality)},
	}.encode()
}

// buildStopCallback builds callback data for abandoning the session.
func buildStopCallback() string {
	return callbackData{
		Action: actionPractice,
		Params: []string{practiceStop},
	}.encode()
}

// buildRemindersCallback builds callback data for toggling reminders.
func buildRemindersCallback(enable bool) string {
	return callbackData{
		Action: actionSettings,
		Params: []string{settingsReminders, strconv.FormatBool(enable)},
	}.encode()
}

// buildReminderHourCallback builds callback data for picking a reminder hour.
func buildReminderHourCallback(hour int) string {
	return callbackData{
		Action: actionSettings,
		Params: []string{settingsHour, strconv.Itoa(hour)},
	}.encode()
}
