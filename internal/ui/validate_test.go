package ui

import "testing"

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name  string
		title string
		date  string
		want  map[string]string
	}{
		{
			name:  "valid",
			title: "Pay rent",
			date:  "2025-01-10",
			want:  nil,
		},
		{
			name: "both missing",
			want: map[string]string{
				"title": "Title is required",
				"date":  "Date is required",
			},
		},
		{
			name:  "missing title",
			date:  "2025-01-10",
			want:  map[string]string{"title": "Title is required"},
		},
		{
			name:  "missing date",
			title: "Pay rent",
			want:  map[string]string{"date": "Date is required"},
		},
		{
			name:  "malformed date",
			title: "Pay rent",
			date:  "10/01/2025",
			want:  map[string]string{"date": "Date must be 2006-01-02"},
		},
		{
			name:  "impossible date",
			title: "Pay rent",
			date:  "2025-13-40",
			want:  map[string]string{"date": "Date must be 2006-01-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateForm(tt.title, tt.date)
			if len(got) != len(tt.want) {
				t.Fatalf("validateForm() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("field %s: got %q, want %q", k, got[k], v)
				}
			}
		})
	}
}
