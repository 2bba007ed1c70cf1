package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "mrbt.toml")
	c := Default()
	c.HashName = "blake3"
	c.Script = []Operation{{Kind: "insert", Key: 1, Value: "a"}}
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.HashName != "blake3" {
		t.Fatalf("HashName = %q, want %q", loaded.HashName, "blake3")
	}
	if len(loaded.Script) != 1 || loaded.Script[0].Kind != "insert" {
		t.Fatalf("Script round-tripped incorrectly: %+v", loaded.Script)
	}
}

func TestSaveDoesNotOverwriteExisting(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "mrbt.toml")
	first := Default()
	first.HashName = "sha512"
	if err := first.Save(path); err != nil {
		t.Fatal(err)
	}

	second := Default()
	second.HashName = "sha1"
	if err := second.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.HashName != "sha512" {
		t.Fatalf("Save overwrote an existing config file; HashName = %q", loaded.HashName)
	}
}

func TestLoadRejectsUnknownOperationKind(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "mrbt.toml")
	if err := ioutil.WriteFile(path, []byte("hash = \"sha256\"\n[[operations]]\nkind = \"frobnicate\"\nkey = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err != ErrUnknownOperation {
		t.Fatalf("Load() error = %v, want ErrUnknownOperation", err)
	}
}
