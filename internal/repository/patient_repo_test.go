package repository

import "testing"

func TestNextPatientCode(t *testing.T) {
	tests := []struct {
		name string
		last string
		want string
	}{
		{"常规递增", "P001", "P002"},
		{"任意起点", "P037", "P038"},
		{"补零保持三位", "P009", "P010"},
		{"第999号之后自然变宽", "P999", "P1000"},
		{"已变宽后继续递增", "P1000", "P1001"},
		{"空串回退首号", "", "P001"},
		{"缺少前缀回退首号", "037", "P001"},
		{"前缀后非数字回退首号", "Pabc", "P001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextPatientCode(tt.last); got != tt.want {
				t.Errorf("nextPatientCode(%q) = %q, want %q", tt.last, got, tt.want)
			}
		})
	}
}
