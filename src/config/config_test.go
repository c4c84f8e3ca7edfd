package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cellular-automat/src/runner"
)

func writeConfig(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "config")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "automat.yaml")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Rule != "B3/S23" || !c.Endless || c.Width != DefWidth || c.Height != DefHeight {
		t.Fatalf("defaults: %+v", c)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
width: 64
height: 32
endless: false
rule: B36/S23
interval: 150ms
max_steps: 20
engine: parallel
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width != 64 || c.Height != 32 || c.Endless || c.Rule != "B36/S23" {
		t.Fatalf("loaded: %+v", c)
	}
	if c.Interval != 150*time.Millisecond || c.MaxSteps != 20 {
		t.Fatalf("loaded: %+v", c)
	}
	o := c.RunnerOptions()
	if o.Engine != runner.EngineParallel || o.Interval != c.Interval || o.MaxSteps != 20 {
		t.Fatalf("runner options: %+v", o)
	}
}

func TestLoadInvalid(t *testing.T) {
	testData := map[string]string{
		"syntax":    "width: [",
		"rule":      "rule: 23/3",
		"dimension": "width: 0",
		"steps":     "max_steps: -1",
	}
	for name, content := range testData {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
	if _, err := Load(filepath.Join(os.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Fatal("missing file: expected an error")
	}
}
