package hermes_io

import (
	"strings"
	"testing"
)

func TestValidateUserInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
		reason  string
	}{
		{
			name:    "accepts_plain_text",
			input:   "alice",
			wantErr: false,
		},
		{
			name:    "accepts_unicode",
			input:   "Zoë Müller",
			wantErr: false,
		},
		{
			name:    "accepts_email_address",
			input:   "alice@example.com",
			wantErr: false,
		},
		{
			name:    "rejects_empty_string",
			input:   "",
			wantErr: true,
			reason:  "cannot be empty",
		},
		{
			name:    "rejects_whitespace_only",
			input:   "   \t  ",
			wantErr: true,
			reason:  "cannot be empty",
		},
		{
			name:    "rejects_oversized_input",
			input:   strings.Repeat("a", MaxInputLength+1),
			wantErr: true,
			reason:  "too long",
		},
		{
			name:    "rejects_null_bytes",
			input:   "alice\x00bob",
			wantErr: true,
			reason:  "control characters",
		},
		{
			name:    "rejects_backspace_characters",
			input:   "alice\x08\x08\x08",
			wantErr: true,
			reason:  "control characters",
		},
		{
			name:    "rejects_ansi_color_sequence",
			input:   "\x1b[31malice\x1b[0m",
			wantErr: true,
		},
		{
			name:    "rejects_cursor_movement_sequence",
			input:   "\x1b[2J\x1b[Halice",
			wantErr: true,
		},
		{
			name:    "rejects_invalid_utf8",
			input:   "alice\xff\xfe",
			wantErr: true,
			reason:  "UTF-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateUserInput(tt.input, "test-field")
			if tt.wantErr && err == nil {
				t.Errorf("expected error for input %q", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for input %q: %v", tt.input, err)
			}
			if tt.wantErr && tt.reason != "" && err != nil {
				if !strings.Contains(err.Error(), tt.reason) {
					t.Errorf("expected error mentioning %q, got %q", tt.reason, err.Error())
				}
			}
		})
	}
}

func TestValidateUserInputErrorShape(t *testing.T) {
	t.Parallel()

	err := ValidateUserInput("", "username")
	if err == nil {
		t.Fatal("expected error for empty input")
	}

	ive, ok := err.(*InputValidationError)
	if !ok {
		t.Fatalf("expected *InputValidationError, got %T", err)
	}
	if ive.Field != "username" {
		t.Errorf("expected field username, got %q", ive.Field)
	}
	if !strings.Contains(err.Error(), "username") {
		t.Errorf("expected error message to name the field, got %q", err.Error())
	}
}

func TestSanitizeUserInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "passes_clean_input_through",
			input: "alice",
			want:  "alice",
		},
		{
			name:  "trims_surrounding_whitespace",
			input: "  alice  ",
			want:  "alice",
		},
		{
			name:  "strips_null_bytes",
			input: "ali\x00ce",
			want:  "alice",
		},
		{
			name:  "strips_ansi_sequences",
			input: "\x1b[31malice\x1b[0m",
			want:  "alice",
		},
		{
			name:  "strips_control_characters",
			input: "ali\x08\x07ce",
			want:  "alice",
		},
		{
			name:  "preserves_unicode",
			input: "Zoë",
			want:  "Zoë",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SanitizeUserInput(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeUserInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidatePasswordInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "accepts_symbol_heavy_password",
			password: `K7#mQ!x@P$w%R^a&`,
			wantErr:  false,
		},
		{
			name:     "accepts_unicode_password",
			password: "pássw0rd密码",
			wantErr:  false,
		},
		{
			name:     "accepts_spaces",
			password: "correct horse battery staple",
			wantErr:  false,
		},
		{
			name:     "rejects_empty_password",
			password: "",
			wantErr:  true,
		},
		{
			name:     "rejects_oversized_password",
			password: strings.Repeat("a", MaxPasswordLength+1),
			wantErr:  true,
		},
		{
			name:     "rejects_ctrl_c",
			password: "password\x03",
			wantErr:  true,
		},
		{
			name:     "rejects_escape_character",
			password: "password\x1b[A",
			wantErr:  true,
		},
		{
			name:     "rejects_c1_control_characters",
			password: "password\u009b",
			wantErr:  true,
		},
		{
			name:     "rejects_invalid_utf8",
			password: "pass\xffword",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validatePasswordInput(tt.password, "test-password")
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidatePasswordInputNeverEchoesPassword(t *testing.T) {
	t.Parallel()

	secret := "hunter2-very-secret"
	err := validatePasswordInput(secret+"\x03", "password")
	if err == nil {
		t.Fatal("expected error for control character")
	}

	ive, ok := err.(*InputValidationError)
	if !ok {
		t.Fatalf("expected *InputValidationError, got %T", err)
	}
	if strings.Contains(ive.Input, secret) {
		t.Error("validation error must not carry the password value")
	}
	if strings.Contains(err.Error(), secret) {
		t.Error("error message must not carry the password value")
	}
}

func TestSanitizePasswordInput(t *testing.T) {
	t.Parallel()

	t.Run("strips_null_bytes", func(t *testing.T) {
		t.Parallel()
		got := sanitizePasswordInput("pass\x00word")
		if got != "password" {
			t.Errorf("expected password, got %q", got)
		}
	})

	t.Run("strips_ansi_sequences", func(t *testing.T) {
		t.Parallel()
		got := sanitizePasswordInput("\x1b[31mpassword\x1b[0m")
		if got != "password" {
			t.Errorf("expected password, got %q", got)
		}
	})

	t.Run("preserves_symbols_and_spaces", func(t *testing.T) {
		t.Parallel()
		in := `p@$$ w0rd!#%`
		if got := sanitizePasswordInput(in); got != in {
			t.Errorf("expected %q unchanged, got %q", in, got)
		}
	})
}
