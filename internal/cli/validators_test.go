package cli

import "testing"

func TestValidateEntryPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"0", false},
		{"1>0", false},
		{"2>10>3", false},
		{"a", true},
		{"1>b", true},
		{"-1", true},
		{"1>>2", true},
	}
	for _, tt := range tests {
		err := ValidateEntryPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEntryPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, ok := range []string{"text", "json", "yaml"} {
		if err := ValidateOutputFormat(ok); err != nil {
			t.Errorf("ValidateOutputFormat(%q) = %v", ok, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(xml) should fail")
	}
}

func TestValidateTimeoutStyle(t *testing.T) {
	for _, ok := range []string{"menu", "hidden", "countdown"} {
		if err := ValidateTimeoutStyle(ok); err != nil {
			t.Errorf("ValidateTimeoutStyle(%q) = %v", ok, err)
		}
	}
	if err := ValidateTimeoutStyle("instant"); err == nil {
		t.Error("ValidateTimeoutStyle(instant) should fail")
	}
}
