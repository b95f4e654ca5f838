package logger

import "fmt"

// StepFormat prefixes message with a step counter. Out-of-range steps return
// message unchanged.
func StepFormat(step, total int, message string) string {
	if step < 1 || total < 1 || step > total {
		return message
	}
	return fmt.Sprintf("[%d/%d] %s", step, total, message)
}
