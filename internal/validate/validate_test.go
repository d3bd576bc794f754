package validate

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid", "alice@example.com", ""},
		{"valid with name part", "Alice <alice@example.com>", ""},
		{"empty", "", "email is required"},
		{"no at sign", "alice.example.com", "email is invalid"},
		{"spaces", "alice @example.com", "email is invalid"},
	}
	for _, tt := range tests {
		if got := Email(tt.input); got != tt.want {
			t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid", "secret123", ""},
		{"at minimum", "123456", ""},
		{"too short", "12345", "password must be at least 6 characters"},
		{"empty", "", "password is required"},
	}
	for _, tt := range tests {
		if got := Password(tt.input); got != tt.want {
			t.Errorf("Password(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCreateUser(t *testing.T) {
	errs := CreateUser("", "bad-email", "123")
	if len(errs) != 3 {
		t.Fatalf("got %d field errors, want 3: %+v", len(errs), errs)
	}
	wantFields := []string{"name", "email", "password"}
	for i, f := range wantFields {
		if errs[i].Field != f {
			t.Errorf("errs[%d].Field = %q, want %q", i, errs[i].Field, f)
		}
	}

	if errs := CreateUser("Alice", "alice@example.com", "secret123"); errs != nil {
		t.Errorf("expected no errors for valid input, got %+v", errs)
	}
}

func TestUpdateUser(t *testing.T) {
	errs := UpdateUser("", "")
	if len(errs) != 2 {
		t.Fatalf("got %d field errors, want 2: %+v", len(errs), errs)
	}
	if errs := UpdateUser("Bob", "hunter22"); errs != nil {
		t.Errorf("expected no errors for valid input, got %+v", errs)
	}
}

func TestUpdateVip(t *testing.T) {
	if errs := UpdateVip(nil); len(errs) != 1 || errs[0].Field != "status" {
		t.Errorf("expected single status error for nil, got %+v", errs)
	}
	truthy := true
	if errs := UpdateVip(&truthy); errs != nil {
		t.Errorf("expected no errors for set status, got %+v", errs)
	}
	falsy := false
	if errs := UpdateVip(&falsy); errs != nil {
		t.Errorf("expected no errors for explicit false, got %+v", errs)
	}
}

func TestCreateDownload(t *testing.T) {
	errs := CreateDownload("", "")
	if len(errs) != 2 {
		t.Fatalf("got %d field errors, want 2: %+v", len(errs), errs)
	}
	if errs[0].Field != "url" || errs[1].Field != "resolution" {
		t.Errorf("unexpected field order: %+v", errs)
	}
	if errs := CreateDownload("https://example.com/watch?v=abc", "22"); errs != nil {
		t.Errorf("expected no errors for valid input, got %+v", errs)
	}
}

func TestGetFormats(t *testing.T) {
	if errs := GetFormats(""); len(errs) != 1 || errs[0].Field != "url" {
		t.Errorf("expected single url error, got %+v", errs)
	}
	if errs := GetFormats("https://example.com/watch?v=abc"); errs != nil {
		t.Errorf("expected no errors for valid input, got %+v", errs)
	}
}

func TestLogin(t *testing.T) {
	if errs := Login("", ""); len(errs) != 2 {
		t.Errorf("got %d field errors, want 2: %+v", len(errs), errs)
	}
	// Login does not enforce the minimum length; a short stored password
	// still fails the bcrypt comparison downstream.
	if errs := Login("alice@example.com", "xyz"); errs != nil {
		t.Errorf("expected no errors for short login password, got %+v", errs)
	}
}
