package generator

import "testing"

func TestIsBareNumeric(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"0", true},
		{"42", true},
		{"0042", true},
		{"123456789012345678901234567890", true},
		{"", false},
		{"-1", false},
		{"3.14", false},
		{"1e5", false},
		{"42 ", false},
		{"2024-01-15", false},
		{"abc", false},
		{"12a", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := isBareNumeric(tt.value); got != tt.want {
				t.Errorf("isBareNumeric(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestRenderValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty renders NULL", "", "NULL"},
		{"integer stays bare", "30", "30"},
		{"text is quoted", "Alice", "'Alice'"},
		{"decimal is quoted", "3.14", "'3.14'"},
		{"negative is quoted", "-7", "'-7'"},
		{"date is quoted", "2024-01-15", "'2024-01-15'"},
		// Embedded quotes are not escaped. Documented limitation: the
		// resulting statement is malformed and must be caught in review.
		{"embedded quote is not escaped", "O'Brien", "'O'Brien'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderValue(tt.value); got != tt.want {
				t.Errorf("renderValue(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
