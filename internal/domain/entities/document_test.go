package entities

import (
	"encoding/json"
	"testing"
)

func TestDocumentStateUnmarshal(t *testing.T) {
	t.Run("string code", func(t *testing.T) {
		var s DocumentState
		if err := json.Unmarshal([]byte(`["ACE","Aceptado"]`), &s); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if s.Code != "ACE" || s.Label != "Aceptado" {
			t.Fatalf("unexpected state: %+v", s)
		}
	})

	t.Run("numeric code", func(t *testing.T) {
		var s DocumentState
		if err := json.Unmarshal([]byte(`[4,"Aceptado"]`), &s); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if s.Code != "4" {
			t.Fatalf("expected numeric code kept as string, got %q", s.Code)
		}
	})

	t.Run("single element", func(t *testing.T) {
		var s DocumentState
		if err := json.Unmarshal([]byte(`["PEN"]`), &s); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if s.Code != "PEN" || s.Label != "" {
			t.Fatalf("unexpected state: %+v", s)
		}
	})

	t.Run("non-array is rejected", func(t *testing.T) {
		var s DocumentState
		if err := json.Unmarshal([]byte(`"ACE"`), &s); err == nil {
			t.Fatalf("expected error for non-array state")
		}
	})
}

func TestDocumentStateMarshal(t *testing.T) {
	data, err := json.Marshal(DocumentState{Code: "ACE", Label: "Aceptado"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["ACE","Aceptado"]` {
		t.Fatalf("unexpected encoding: %s", data)
	}
}

func TestDocumentRoundTripKeepsState(t *testing.T) {
	raw := []byte(`{"id":42,"assignedFolio":"1234","state":["ACE","Aceptado"],"total":59490}`)
	var d Document
	if err := json.Unmarshal(raw, &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.State.Code != "ACE" {
		t.Fatalf("unexpected state: %+v", d.State)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again Document
	if err := json.Unmarshal(data, &again); err != nil {
		t.Fatalf("re-unmarshal: %v", err)
	}
	if again.State != d.State || again.ID != d.ID {
		t.Fatalf("state lost in round trip: %+v", again)
	}
}
