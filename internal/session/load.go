package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/acrotrack/pkg/types"
)

// file is the YAML session layout.
type file struct {
	Steps []Step `yaml:"steps"`
}

// Load reads a session from path. Files ending in .yaml or .yml hold a
// top-level steps list; .jsonl files hold one step per line. Lines of a
// JSONL session that cannot be decoded are reported to log and skipped.
func Load(path string, log logrus.FieldLogger) ([]Step, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".jsonl":
		return loadJSONL(path, log)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrSessionFormat, path)
	}
}

func loadYAML(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f.Steps, nil
}

// loadJSONL decodes one step per line. Blank lines are ignored; malformed
// lines are logged at Warn and skipped.
func loadJSONL(path string, log logrus.FieldLogger) ([]Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var steps []Step
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var s Step
		if err := json.Unmarshal(line, &s); err != nil {
			log.WithFields(logrus.Fields{
				"file":  path,
				"line":  lineNo,
				"error": err.Error(),
			}).Warn("skipping malformed session line")
			continue
		}
		steps = append(steps, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return steps, nil
}
