package openai

import (
	"encoding/json"
	"testing"
)

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"clean", `{"valid": true, "reason": "ok"}`},
		{"trailing comma", `{"valid": true, "reason": "ok",}`},
		{"trailing comma with newline", "{\"valid\": false, \"reason\": \"news report\",\n}"},
		{"preamble", `Here is the verdict: {"valid": true, "reason": "direct interview"}`},
		{"trailing chatter", `{"valid": true, "reason": "keynote"} Hope this helps!`},
		{"comma inside string kept", `{"valid": true, "reason": "long, direct talk"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repaired := repairJSON(tt.input)
			var v verdict
			if err := json.Unmarshal([]byte(repaired), &v); err != nil {
				t.Fatalf("repaired output still unparsable: %v\ninput: %s\nrepaired: %s", err, tt.input, repaired)
			}
		})
	}
}

func TestRepairJSONPreservesValues(t *testing.T) {
	repaired := repairJSON(`{"valid": true, "reason": "fireside chat",}`)

	var v verdict
	if err := json.Unmarshal([]byte(repaired), &v); err != nil {
		t.Fatal(err)
	}
	if !v.Valid || v.Reason != "fireside chat" {
		t.Fatalf("unexpected verdict: %+v", v)
	}
}
