package booking

// TriggerEvent identifies the kind of booking event a webhook carries.
type TriggerEvent string

const (
	TriggerBookingCreated     TriggerEvent = "BOOKING_CREATED"
	TriggerBookingCancelled   TriggerEvent = "BOOKING_CANCELLED"
	TriggerBookingRescheduled TriggerEvent = "BOOKING_RESCHEDULED"
	TriggerBookingRequested   TriggerEvent = "BOOKING_REQUESTED"
	TriggerBookingRejected    TriggerEvent = "BOOKING_REJECTED"
	TriggerMeetingStarted     TriggerEvent = "MEETING_STARTED"
	TriggerMeetingEnded       TriggerEvent = "MEETING_ENDED"
)

// supportedEvents is the processing allow-list. Payment triggers are
// deliberately excluded: anything outside this set is acknowledged and
// discarded.
var supportedEvents = map[TriggerEvent]bool{
	TriggerBookingCreated:     true,
	TriggerBookingCancelled:   true,
	TriggerBookingRescheduled: true,
	TriggerBookingRequested:   true,
	TriggerBookingRejected:    true,
	TriggerMeetingStarted:     true,
	TriggerMeetingEnded:       true,
}

// Supported reports whether the event kind is on the processing allow-list.
func (e TriggerEvent) Supported() bool {
	return supportedEvents[e]
}

// WebhookEvent is the top-level Cal.com webhook body.
type WebhookEvent struct {
	TriggerEvent TriggerEvent `json:"triggerEvent"`
	CreatedAt    string       `json:"createdAt,omitempty"`
	Payload      *Payload     `json:"payload,omitempty"`
}

// Payload carries the booking details for a webhook event. Every field is
// optional on the wire; timestamps are ISO 8601 strings.
type Payload struct {
	Title              string         `json:"title,omitempty"`
	Description        string         `json:"description,omitempty"`
	StartTime          string         `json:"startTime,omitempty"`
	EndTime            string         `json:"endTime,omitempty"`
	Location           string         `json:"location,omitempty"`
	Status             string         `json:"status,omitempty"`
	CancellationReason string         `json:"cancellationReason,omitempty"`
	RescheduleReason   string         `json:"rescheduleReason,omitempty"`
	RejectionReason    string         `json:"rejectionReason,omitempty"`
	Organizer          *Person        `json:"organizer,omitempty"`
	Attendees          []Attendee     `json:"attendees,omitempty"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}

// Person identifies the booking organizer.
type Person struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Attendee is a participant on the booking.
type Attendee struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}
