package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/heshanpadmasiri/javaCSharp/java"
)

const defaultConfigFile = "Config.toml"

// loadOptions loads the conversion options. An empty configPath reads
// Config.toml from the working directory when it exists. mappingsPath
// overrides the mappings_file of the config; a relative mappings_file is
// resolved against the directory of the config file.
func loadOptions(configPath, mappingsPath string) (*java.Options, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		configPath = filepath.Join(wd, defaultConfigFile)
	}

	opts, err := java.LoadOptions(configPath)
	if err != nil {
		return nil, err
	}

	if mappingsPath == "" && opts.MappingsFile != "" {
		mappingsPath = opts.MappingsFile
		if !filepath.IsAbs(mappingsPath) {
			mappingsPath = filepath.Join(filepath.Dir(configPath), mappingsPath)
		}
	}
	if mappingsPath != "" {
		mappings, err := java.LoadSyntaxMapping(mappingsPath)
		if err != nil {
			return nil, err
		}
		opts.SyntaxMappings = mappings
	}
	return opts, nil
}
