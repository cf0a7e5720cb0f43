package mymoney

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.txt")
	content := "ALLOCATE 6000 3000\nCHANGE 13.00% MAY\n\nBALANCE MARCH\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadCommandFile(path)
	if err != nil {
		t.Fatalf("ReadCommandFile() failed: %v", err)
	}
	want := [][]string{
		{"ALLOCATE", "6000", "3000"},
		{"CHANGE", "13.00%", "MAY"},
		{},
		{"BALANCE", "MARCH"},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("ReadCommandFile() = %v, want %v", lines, want)
	}
}

func TestReadCommandFileMissing(t *testing.T) {
	if _, err := ReadCommandFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("ReadCommandFile(missing) succeeded, want error")
	}
}
