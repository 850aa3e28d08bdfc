package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var sectionHeader = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes the configuration to path. Keys keep struct
// order; sections are sorted alphabetically. The file is replaced atomically.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// EncodeTOML renders cfg the same way WriteConfigOrdered stores it.
func EncodeTOML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// sortTOMLSections reorders sections alphabetically by header. Keys before
// the first header stay at the top.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var (
		sections []section
		current  *section
		preamble []string
	)

	for _, line := range strings.Split(content, "\n") {
		if match := sectionHeader.FindStringSubmatch(line); match != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{header: match[2], lines: []string{line}}
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var out strings.Builder
	writeBlock := func(lines []string) {
		block := strings.TrimRight(strings.Join(lines, "\n"), "\n")
		if block == "" {
			return
		}
		if out.Len() > 0 {
			out.WriteString("\n\n")
		}
		out.WriteString(block)
	}

	writeBlock(preamble)
	for _, sec := range sections {
		writeBlock(sec.lines)
	}

	if out.Len() == 0 {
		return ""
	}
	return out.String() + "\n"
}
