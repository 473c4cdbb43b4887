package contact

// ContactRequest represents a contact form submission.
// Website is a honeypot: invisible to humans, auto-filled by bots. It carries
// no validate tag because a non-empty value is handled as a silent accept,
// never as a validation failure.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100,person_name"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
	Website string `json:"website"`
}
