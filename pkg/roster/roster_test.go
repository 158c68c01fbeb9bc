package roster

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTOML(t *testing.T) {
	content := `
streams = ["general", "design"]

[[people]]
full_name = "Alice A"
email = "alice@x.com"

[[people]]
full_name = "Bob B"
email = "bob@x.com"
`
	path := filepath.Join(t.TempDir(), "roster.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(r.Streams) != 2 || r.Streams[1] != "design" {
		t.Errorf("unexpected streams: %v", r.Streams)
	}
	if len(r.People) != 2 || r.People[0].FullName != "Alice A" || r.People[1].Email != "bob@x.com" {
		t.Errorf("unexpected people: %v", r.People)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	r := &Roster{
		Streams: []string{"general"},
		People:  []Person{{FullName: "Alice A", Email: "alice@x.com"}},
	}
	path := filepath.Join(t.TempDir(), "roster.bin")
	if err := SaveBinary(r, path); err != nil {
		t.Fatalf("SaveBinary failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Streams) != 1 || loaded.Streams[0] != "general" {
		t.Errorf("streams lost in round trip: %v", loaded.Streams)
	}
	if len(loaded.People) != 1 || loaded.People[0] != r.People[0] {
		t.Errorf("people lost in round trip: %v", loaded.People)
	}
}

func TestDetectFormat(t *testing.T) {
	if DetectFormat("roster.toml") != FormatTOML {
		t.Error("toml not detected")
	}
	if DetectFormat("roster.bin") != FormatBinary {
		t.Error("bin not detected")
	}
	if DetectFormat("roster.json") != FormatUnknown {
		t.Error("json should be unknown")
	}
}

func TestLoadUnknownFormat(t *testing.T) {
	if _, err := Load("roster.json"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
