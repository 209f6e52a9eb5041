package program

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/hknutzen/textfsm/pkg/errlog"
	"golang.org/x/exp/slices"
)

var defaultVals = map[string]string{
	"output":    "yaml",
	"workers":   "4",
	"lowercase": "no",
}

// Output formats of parsed records.
var outputFormats = []string{"yaml", "json", "table"}

type Config struct {
	// Directory with files NAME.tpl
	TemplateDir string
	Output      string
	Workers     int
	Lowercase   bool
	// Name of file, where config was read from.
	File string
}

// Use most specific config file; ignore others.
// Default values are used, if no config file is found.
func LoadConfig() (*Config, error) {
	home, _ := os.UserHomeDir()
	return loadConfig([]string{
		path.Join(home, ".textfsm"),
		"/usr/local/etc/textfsm",
		"/etc/textfsm",
	})
}

func loadConfig(confPaths []string) (*Config, error) {
	var data []byte
	var file string
	for _, p := range confPaths {
		var err error
		data, err = os.ReadFile(p)
		if err == nil {
			file = p
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("Can't %v", err)
		}
	}

	c := Config{File: file}
	seen := make(map[string]bool)

	insert := func(key, val string) error {
		var err error
		switch key {
		case "template_dir":
			c.TemplateDir = val
		case "output":
			if !slices.Contains(outputFormats, val) {
				return fmt.Errorf("Expected one of %v for '%s' in %s: %s",
					outputFormats, key, file, val)
			}
			c.Output = val
		case "workers":
			c.Workers, err = strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("Expected integer value for '%s' in %s: %v",
					key, file, err)
			}
			if c.Workers < 1 {
				return fmt.Errorf(
					"Expected positive integer for '%s' in %s: %v", key, file, val)
			}
		case "lowercase":
			switch val {
			case "yes":
				c.Lowercase = true
			case "no":
				c.Lowercase = false
			default:
				return fmt.Errorf("Expected 'yes' or 'no' for '%s' in %s: %s",
					key, file, val)
			}
		default:
			errlog.Warning("Ignoring key '%s' in %s", key, file)
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		words := strings.Fields(line)
		if len(words) == 0 || words[0][0] == '#' {
			continue
		}
		if len(words) < 3 || words[1] != "=" {
			errlog.Warning("Ignoring line '%s' in %s", line, file)
			continue
		}
		key := words[0]
		if seen[key] {
			errlog.Warning("Ignoring duplicate key '%s' in %s", key, file)
			continue
		}
		seen[key] = true
		if len(words) != 3 {
			return nil, fmt.Errorf("Expected exactly one value for %q in %s: %v",
				key, file, words[2:])
		}
		if err := insert(key, words[2]); err != nil {
			return nil, err
		}
	}
	for key, val := range defaultVals {
		if !seen[key] {
			if err := insert(key, val); err != nil {
				return nil, err
			}
		}
	}
	return &c, nil
}

// GetVal returns value of key as string.
// Returns empty string for unknown key.
func (c *Config) GetVal(key string) string {
	switch key {
	case "template_dir":
		return c.TemplateDir
	case "output":
		return c.Output
	case "workers":
		return strconv.Itoa(c.Workers)
	case "lowercase":
		if c.Lowercase {
			return "yes"
		}
		return "no"
	}
	return ""
}

// TemplatePath returns path of named template in template directory.
func (c *Config) TemplatePath(name string) (string, error) {
	if c.TemplateDir == "" {
		return "", fmt.Errorf("Missing 'template_dir' in config")
	}
	return path.Join(c.TemplateDir, name+".tpl"), nil
}
