package jsonutil

import (
	"encoding/json"
	"testing"
)

type macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

func TestUnmarshalFlex_Direct(t *testing.T) {
	var m macros
	if err := UnmarshalFlex([]byte(`{"calories":450,"protein":30}`), &m); err != nil {
		t.Fatalf("UnmarshalFlex: %v", err)
	}
	if m.Calories != 450 || m.Protein != 30 {
		t.Errorf("got %+v", m)
	}
}

func TestUnmarshalFlex_QuotedStringLayer(t *testing.T) {
	// Some model responses arrive as a JSON string containing JSON.
	wrapped, err := json.Marshal(`{"calories":450,"protein":30}`)
	if err != nil {
		t.Fatal(err)
	}
	var m macros
	if err := UnmarshalFlex(wrapped, &m); err != nil {
		t.Fatalf("UnmarshalFlex: %v", err)
	}
	if m.Calories != 450 {
		t.Errorf("calories = %v, want 450", m.Calories)
	}
}

func TestUnmarshalFlex_Invalid(t *testing.T) {
	var m macros
	if err := UnmarshalFlex([]byte(`not json at all`), &m); err == nil {
		t.Fatal("want error for non-JSON input")
	}
}

func TestUnmarshalRaw(t *testing.T) {
	var m macros
	raw := json.RawMessage(`{"calories":120,"protein":4}`)
	if err := UnmarshalRaw(raw, &m); err != nil {
		t.Fatalf("UnmarshalRaw: %v", err)
	}
	if m.Calories != 120 {
		t.Errorf("calories = %v, want 120", m.Calories)
	}
}

func TestMarshalNoEscape(t *testing.T) {
	out, err := MarshalNoEscape(map[string]string{"note": "BP > 120 & < 140"})
	if err != nil {
		t.Fatalf("MarshalNoEscape: %v", err)
	}
	want := `{"note":"BP > 120 & < 140"}`
	if string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
}
