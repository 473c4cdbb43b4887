package validation

import (
	"strings"
	"testing"
)

type contactFixture struct {
	Name    string `validate:"required,min=2,max=100,person_name"`
	Email   string `validate:"required,email,max=254"`
	Message string `validate:"required,min=10,max=2000"`
}

func validFixture() contactFixture {
	return contactFixture{
		Name:    "Jo Do",
		Email:   "jo@x.com",
		Message: "Hello there, interested in working together",
	}
}

func TestPersonNameValidator(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"Jo Do", true},
		{"O'Brien", true},
		{"Anne-Marie", true},
		{"J. R. R. Tolkien", true},
		{"Λεωνίδας", true},
		{"ፀሐይ ተስፋዬ", true},
		{"Jo <Do>", false},
		{"robert); DROP TABLE", false},
		{"a=b", false},
		{"tab\tok", true}, // \s covers tabs
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFixture()
			f.Name = tt.name
			err := v.Struct(&f)
			if tt.valid && err != nil {
				t.Errorf("name %q rejected: %v", tt.name, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("name %q accepted, want rejection", tt.name)
			}
		})
	}
}

func TestFirstErrorMessages(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		mutate  func(*contactFixture)
		message string
	}{
		{"name too short", func(f *contactFixture) { f.Name = "J" }, "Name must be at least 2 characters"},
		{"name too long", func(f *contactFixture) { f.Name = strings.Repeat("a", 101) }, "Name must be under 100 characters"},
		{"name bad charset", func(f *contactFixture) { f.Name = "x<y>" }, "Name contains invalid characters"},
		{"email invalid", func(f *contactFixture) { f.Email = "nope" }, "Please enter a valid email address"},
		{"email too long", func(f *contactFixture) { f.Email = strings.Repeat("a", 250) + "@x.com" }, "Email must be under 254 characters"},
		{"message too short", func(f *contactFixture) { f.Message = "hi" }, "Message must be at least 10 characters"},
		{"message too long", func(f *contactFixture) { f.Message = strings.Repeat("a", 2001) }, "Message must be under 2000 characters"},
		{"message missing", func(f *contactFixture) { f.Message = "" }, "Message must be at least 10 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFixture()
			tt.mutate(&f)
			err := v.Struct(&f)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := FirstError(err); got != tt.message {
				t.Errorf("FirstError() = %q, want %q", got, tt.message)
			}
		})
	}
}
