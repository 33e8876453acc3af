package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/rawbytedev/bytemsg/pkg/layout"
)

// loadLayout reads and validates a TOML layout descriptor.
func loadLayout(path string) (*layout.Descriptor, error) {
	var d layout.Descriptor
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
