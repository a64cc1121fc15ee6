package addresses

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "addresses.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, "name,Address\nLincoln High,100 Main St\nWashington Elementary, 200 Oak Ave \n,\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"100 Main St", "200 Oak Ave"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	path := writeTemp(t, "name,city\nLincoln High,Springfield\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty roster, got %v", got)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTemp(t, "")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty roster, got %v", got)
	}
}

func TestLoad_NoFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
