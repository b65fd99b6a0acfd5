package utils

import (
	"encoding/json"
	"testing"
)

func TestEncodeDetails(t *testing.T) {
	out := EncodeDetails(map[string]interface{}{
		"oldRole": "Member",
		"newRole": "Manager",
	})

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("details are not valid JSON: %v", err)
	}
	if decoded["oldRole"] != "Member" || decoded["newRole"] != "Manager" {
		t.Errorf("unexpected payload: %s", out)
	}
}

func TestEncodeDetailsNil(t *testing.T) {
	if out := EncodeDetails(nil); out != "{}" {
		t.Errorf("EncodeDetails(nil) = %q, want {}", out)
	}
}
