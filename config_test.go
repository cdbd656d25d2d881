package phugoid

import (
	"os"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	defer func() { cfgLoaded = false }()
	cfgLoaded = false
	os.Unsetenv("PHUGOID_CONFIG")
	c := phugoidConfig()
	if c.outputDir != "." {
		t.Fatalf("default output dir is %q, expected the working directory", c.outputDir)
	}
	if c.resolution != 1000 {
		t.Fatalf("default resolution is %d, expected 1000", c.resolution)
	}
	if !cfgLoaded {
		t.Fatal("configuration was not latched")
	}
}

func TestConfigFromFile(t *testing.T) {
	defer func() {
		cfgLoaded = false
		os.Unsetenv("PHUGOID_CONFIG")
	}()
	cfgLoaded = false
	dir := t.TempDir()
	conf := []byte("[general]\noutput_path = \"/tmp/phugoid-out\"\n\n[trace]\nresolution = 500\n")
	if err := os.WriteFile(dir+"/conf.toml", conf, 0644); err != nil {
		t.Fatal(err)
	}
	os.Setenv("PHUGOID_CONFIG", dir)
	c := phugoidConfig()
	if c.outputDir != "/tmp/phugoid-out" {
		t.Fatalf("output dir is %q, expected the configured path", c.outputDir)
	}
	if c.resolution != 500 {
		t.Fatalf("resolution is %d, expected the configured 500", c.resolution)
	}
}
