package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.json")
	if err := os.WriteFile(path, []byte(`{"duration": 1.0, "frameSize": 512}`), 0644); err != nil {
		t.Fatal(err)
	}
	params, err := loadParams(path, []string{"amplitude=0.4", "adsr.release=0.3"})
	if err != nil {
		t.Fatalf("expected no error, but got: %v", err)
	}
	if params.Duration != 1.0 || params.FrameSize != 512 || params.Amplitude != 0.4 {
		t.Errorf("unexpected params: %s", params.ToJSON())
	}
}

func TestLoadParamsErrors(t *testing.T) {
	if _, err := loadParams("", []string{"duration"}); err == nil {
		t.Error("expected an error for a -set without value")
	}
	if _, err := loadParams("", []string{"frame_size=0"}); err == nil {
		t.Error("expected a validation error")
	}
	if _, err := loadParams(filepath.Join(t.TempDir(), "missing.json"), nil); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
