package config

import (
	"encoding/json"
	"fmt"
	"os"
)

var Config = DefaultConfiguration

var DefaultConfiguration = &Configuration{
	OutputDir:    "bundles",
	Node:         "index",
	Levels:       []string{"common.blocks"},
	KeysetsDir:   "i18n",
	RootLanguage: "en",
	Languages: []string{
		"en",
	},
	ServeConfig: ServeConfiguration{
		Redirect404: "",
		Port:        8100,
	},
	TechConfig: map[string]TechConfiguration{
		"bemhtml": {},
		"bemtree": {},
	},
}

type Configuration struct {
	OutputDir    string                       `json:"output_directory,omitempty"`
	Node         string                       `json:"node,omitempty"`
	Levels       []string                     `json:"levels,omitempty"`
	KeysetsDir   string                       `json:"keysets_directory,omitempty"`
	RootLanguage string                       `json:"root_language,omitempty"`
	Languages    []string                     `json:"languages,omitempty"`
	TechConfig   map[string]TechConfiguration `json:"tech_config,omitempty"`
	ServeConfig  ServeConfiguration           `json:"serve_config,omitempty"`
}

// TechConfiguration overrides a tech's built-in defaults. Empty fields
// keep the defaults of the flavor.
type TechConfiguration struct {
	Target         string            `json:"target,omitempty"`
	FilesTarget    string            `json:"files_target,omitempty"`
	KeysetsTarget  string            `json:"keysets_target,omitempty"`
	SourceSuffixes []string          `json:"source_suffixes,omitempty"`
	ExportName     string            `json:"export_name,omitempty"`
	Compat         bool              `json:"compat,omitempty"`
	Requires       map[string]string `json:"requires,omitempty"`
}

type ServeConfiguration struct {
	Redirect404 string `json:"redirect_404"`
	Port        int    `json:"port"`
}

func Init(configpath string) error {
	if configpath == "" {
		configpath = "bemfront.json"
	}

	_, err := os.Stat(configpath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("could not access configuration file %s: %v", configpath, err)
		}

		return nil
	}

	f, err := os.Open(configpath)
	if err != nil {
		return err
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(Config)
	if err != nil {
		return err
	}

	return nil
}
