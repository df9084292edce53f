package notification

import (
	"fmt"
	"html"
	"strings"

	"go-leave/internal/events"
)

type Recipient struct {
	Email string
	Name  string
}

type LeaveDetails struct {
	Event         events.LeaveEvent
	EmployeeName  string
	LeaveTypeName string
}

// Compose renders the email for a lifecycle event.
func Compose(to Recipient, d LeaveDetails) (Message, error) {
	period := fmt.Sprintf("%s to %s (%d day(s))", d.Event.StartDate, d.Event.EndDate, d.Event.TotalDays)
	leaveType := d.LeaveTypeName
	if leaveType == "" {
		leaveType = "Leave"
	}

	var subject, intro string
	switch d.Event.EventType {
	case events.LeaveCreated:
		subject = fmt.Sprintf("New leave request from %s", d.EmployeeName)
		intro = fmt.Sprintf("%s requested %s leave for %s.", d.EmployeeName, leaveType, period)
	case events.LeaveApproved:
		subject = "Your leave request was approved"
		intro = fmt.Sprintf("Your %s leave for %s was approved.", leaveType, period)
	case events.LeaveRejected:
		subject = "Your leave request was rejected"
		intro = fmt.Sprintf("Your %s leave for %s was rejected.", leaveType, period)
	case events.LeaveCancelled:
		subject = "Your leave request was cancelled"
		intro = fmt.Sprintf("Your %s leave for %s was cancelled.", leaveType, period)
	default:
		return Message{}, fmt.Errorf("unknown leave event %q", d.Event.EventType)
	}

	lines := []string{fmt.Sprintf("Hello %s,", to.Name), "", intro}
	if d.Event.ManagerNotes != "" {
		lines = append(lines, "", "Manager notes: "+d.Event.ManagerNotes)
	}
	plain := strings.Join(lines, "\n")

	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(l))
		b.WriteString("</p>")
	}

	return Message{
		ToEmail:   to.Email,
		ToName:    to.Name,
		Subject:   subject,
		PlainText: plain,
		HTML:      b.String(),
	}, nil
}
