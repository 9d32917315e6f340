package repository

import "testing"

func TestUsernameLower(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     *string
	}{
		{"mixed case", "TraderJoe", strPtr("traderjoe")},
		{"already lower", "traderjoe", strPtr("traderjoe")},
		{"cleared", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usernameLower(tt.username)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("usernameLower(%q) = %q, want nil", tt.username, *got)
			case tt.want != nil && got == nil:
				t.Errorf("usernameLower(%q) = nil, want %q", tt.username, *tt.want)
			case tt.want != nil && got != nil && *got != *tt.want:
				t.Errorf("usernameLower(%q) = %q, want %q", tt.username, *got, *tt.want)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
