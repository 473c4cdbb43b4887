package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dawitk/portfolio-relay/internal/api/dto/v1/booking"
	"github.com/dawitk/portfolio-relay/internal/sanitize"
)

// Notifications render times in the site owner's timezone.
const notificationTimeZone = "Africa/Addis_Ababa"

var notificationLocation = func() *time.Location {
	loc, err := time.LoadLocation(notificationTimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}()

const (
	contactTimeLayout = "1/2/2006, 3:04:05 PM"
	fullTimeLayout    = "Monday, January 2, 2006 at 3:04 PM"
	shortTimeLayout   = "3:04 PM"
)

// eventHeaders maps each supported trigger to its notification header.
var eventHeaders = map[booking.TriggerEvent]string{
	booking.TriggerBookingCreated:     "📅 New Appointment Booked!",
	booking.TriggerBookingCancelled:   "❌ Appointment Cancelled",
	booking.TriggerBookingRescheduled: "🔄 Appointment Rescheduled",
	booking.TriggerBookingRequested:   "🔔 Appointment Requested (Pending Approval)",
	booking.TriggerBookingRejected:    "🚫 Appointment Rejected",
	booking.TriggerMeetingStarted:     "🟢 Meeting Started",
	booking.TriggerMeetingEnded:       "🔴 Meeting Ended",
}

// FormatContactMessage renders the contact-form notification as a single
// plain-text block. Inputs must already be sanitized.
func FormatContactMessage(name, email, message, clientKey string, at time.Time) string {
	lines := []string{
		"📩 New Contact Form Message",
		"",
		"👤 Name: " + name,
		"📧 Email: " + email,
		"",
		"💬 Message:",
		message,
		"",
		"🕐 " + at.In(notificationLocation).Format(contactTimeLayout),
		"🌐 IP: " + clientKey,
	}
	return strings.Join(lines, "\n")
}

// FormatBookingMessage renders a booking-event notification. Every field
// echoed from the upstream payload passes the bounded sanitizer. Lines with
// no content are omitted, never emitted empty.
func FormatBookingMessage(event booking.TriggerEvent, p *booking.Payload) string {
	header, ok := eventHeaders[event]
	if !ok {
		// Kept for forward-compatibility with allow-listed kinds that gain
		// no specific header.
		header = fmt.Sprintf("📋 Booking Update: %s", event)
	}

	title := p.Title
	if title == "" {
		title = "Untitled"
	}

	lines := []string{
		header,
		"",
		"📌 Title: " + sanitize.Bounded(title),
		"👤 With: " + sanitize.Bounded(attendeeNames(p.Attendees)),
		"📧 Email: " + sanitize.Bounded(attendeeEmails(p.Attendees)),
	}

	if p.StartTime != "" {
		timeRange := formatEventTime(p.StartTime, fullTimeLayout)
		if end := formatEventTime(p.EndTime, shortTimeLayout); end != "" {
			timeRange += " – " + end
		}
		lines = append(lines, "🕐 Time: "+timeRange)
	}

	// Reason lines are mutually exclusive, selected by event kind.
	switch event {
	case booking.TriggerBookingRescheduled:
		if p.RescheduleReason != "" {
			lines = append(lines, "💬 Reschedule reason: "+sanitize.Bounded(p.RescheduleReason))
		}
	case booking.TriggerBookingCancelled:
		if p.CancellationReason != "" {
			lines = append(lines, "💬 Cancellation reason: "+sanitize.Bounded(p.CancellationReason))
		}
	case booking.TriggerBookingRejected:
		if p.RejectionReason != "" {
			lines = append(lines, "💬 Rejection reason: "+sanitize.Bounded(p.RejectionReason))
		}
	}

	if p.Location != "" {
		lines = append(lines, "📍 Location: "+sanitize.Bounded(p.Location))
	}
	if p.Description != "" {
		lines = append(lines, "📝 Notes: "+sanitize.Bounded(p.Description))
	}

	lines = append(lines, "", "🔗 Check Cal.com dashboard for details")

	return strings.Join(lines, "\n")
}

// attendeeNames joins attendee names (falling back to email per attendee),
// defaulting to "Unknown" when the list is empty.
func attendeeNames(attendees []booking.Attendee) string {
	var names []string
	for _, a := range attendees {
		name := a.Name
		if name == "" {
			name = a.Email
		}
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, ", ")
}

func attendeeEmails(attendees []booking.Attendee) string {
	var emails []string
	for _, a := range attendees {
		if a.Email != "" {
			emails = append(emails, a.Email)
		}
	}
	if len(emails) == 0 {
		return "Unknown"
	}
	return strings.Join(emails, ", ")
}

// formatEventTime renders an ISO 8601 timestamp in the notification
// timezone. Unparsable input passes through verbatim rather than dropping
// the line.
func formatEventTime(isoString, layout string) string {
	if isoString == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, isoString)
	if err != nil {
		return isoString
	}
	return t.In(notificationLocation).Format(layout)
}
