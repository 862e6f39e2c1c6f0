package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/warlight-go/pkg/warlight"
)

// loadSettings reads setting overrides from a YAML (or JSON) mapping.
func loadSettings(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	var settings map[string]any
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return settings, nil
}

// loadMapCommands reads a YAML (or JSON) list of commands. Each item names its
// command under "command"; every other key is an argument.
func loadMapCommands(path string) ([]warlight.MapCommand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read commands: %w", err)
	}
	var items []map[string]any
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse commands %s: %w", path, err)
	}

	cmds := make([]warlight.MapCommand, 0, len(items))
	for i, item := range items {
		name, _ := item["command"].(string)
		if name == "" {
			return nil, usageError{err: fmt.Errorf("command %d in %s has no \"command\" key", i, path)}
		}
		args := make(map[string]any, len(item))
		for k, v := range item {
			if k != "command" {
				args[k] = v
			}
		}
		cmds = append(cmds, warlight.MapCommand{Command: name, Args: args})
	}
	return cmds, nil
}
