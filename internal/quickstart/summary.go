package quickstart

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type TableResult struct {
	Table  string   `yaml:"table"`
	Entity string   `yaml:"entity"`
	Files  []string `yaml:"files,omitempty"`
	Error  string   `yaml:"error,omitempty"`
	Err    error    `yaml:"-"`
}

func (r *TableResult) fail(err error) {
	r.Err = err
	r.Error = err.Error()
}

func (r TableResult) OK() bool {
	return r.Err == nil
}

type Summary struct {
	Schema  string        `yaml:"schema"`
	Package string        `yaml:"package"`
	Aborted bool          `yaml:"aborted"`
	Tables  []TableResult `yaml:"tables"`
}

// Complete reports whether every table was processed and fully emitted.
func (s *Summary) Complete() bool {
	return !s.Aborted && len(s.Failed()) == 0
}

func (s *Summary) Failed() []TableResult {
	var failed []TableResult
	for _, t := range s.Tables {
		if !t.OK() {
			failed = append(failed, t)
		}
	}
	return failed
}

func (s *Summary) FileCount() int {
	n := 0
	for _, t := range s.Tables {
		n += len(t.Files)
	}
	return n
}

func (s *Summary) YAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run summary: %w", err)
	}
	return data, nil
}
