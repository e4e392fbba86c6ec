package storage

import (
	"strings"
	"testing"
)

func TestValidate_MissingFile(t *testing.T) {
	health, err := NewStore(createTempJournal(t, "")).Validate()
	if err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
	if health.Exists || !health.Healthy() {
		t.Errorf("missing file should be healthy and not exist, got %+v", health)
	}
}

func TestValidate_HealthyFile(t *testing.T) {
	store := NewStore(createTempJournal(t, ""))
	if err := store.Save(sampleEntries()); err != nil {
		t.Fatal(err)
	}

	health, err := store.Validate()
	if err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
	if !health.Healthy() {
		t.Errorf("expected healthy journal, got %+v", health)
	}
	if health.Entries != 3 || health.Size == 0 {
		t.Errorf("Entries = %d, Size = %d", health.Entries, health.Size)
	}
}

func TestValidate_Malformed(t *testing.T) {
	health, err := NewStore(createTempJournal(t, "[{")).Validate()
	if err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
	if health.Parsed || health.ParseError == "" || health.Healthy() {
		t.Errorf("expected parse failure, got %+v", health)
	}
}

func TestValidate_Problems(t *testing.T) {
	content := `[
  {"id": "1", "title": "Same", "content": "a", "timestamp": "2024-05-01T09:30:00+00:00", "tags": []},
  {"id": "00001", "title": "same", "content": "b", "timestamp": "2024-05-01T09:30:00+00:00", "tags": []},
  {"id": "x", "title": "This title is definitely longer than thirty", "content": " ", "timestamp": "2024-05-01T09:30:00+00:00", "tags": []}
]`
	health, err := NewStore(createTempJournal(t, content)).Validate()
	if err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}
	if health.Healthy() {
		t.Fatal("expected problems to be reported")
	}

	wantDetails := []string{"duplicate id", "duplicate title", "not a number", "blank title or content", "title longer than 30"}
	for _, want := range wantDetails {
		found := false
		for _, p := range health.Problems {
			if strings.Contains(p.Detail, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected a problem containing %q, got %+v", want, health.Problems)
		}
	}
}
