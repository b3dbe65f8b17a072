package models

import "testing"

func TestBeforeCreateAssignsID(t *testing.T) {
	m := &BaseModel{}
	if err := m.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if len(m.ID) != 36 {
		t.Fatalf("expected uuid, got %q", m.ID)
	}

	keep := &BaseModel{ID: "fixed"}
	_ = keep.BeforeCreate(nil)
	if keep.ID != "fixed" {
		t.Fatalf("existing id overwritten: %q", keep.ID)
	}
}

func TestScanJSON(t *testing.T) {
	var got []string
	if err := ScanJSON([]byte(`["6-4","7-5"]`), &got); err != nil || len(got) != 2 {
		t.Fatalf("bytes: %v %v", got, err)
	}
	got = nil
	if err := ScanJSON(`["6-4"]`, &got); err != nil || len(got) != 1 {
		t.Fatalf("string: %v %v", got, err)
	}
	if err := ScanJSON(42, &got); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}
