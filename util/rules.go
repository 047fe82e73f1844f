package util

import (
	"fmt"

	"github.com/spf13/viper"
)

// RulesConfig is the content of the rules file: the self-closing Tags and the attribute whitelist.
//
// Example YAML:
//
//	self_closing: [img, br, hr]
//	allowed_attributes:
//	  div: [class, id]
//	  br: []
//
// Keys are case-insensitive for viper, so Tag names of the whitelist are read lower-cased.
type RulesConfig struct {
	SelfClosing       []string            `mapstructure:"self_closing"`
	AllowedAttributes map[string][]string `mapstructure:"allowed_attributes"`
}

// LoadRules reads the rules file. The format follows the file extension (yaml, json, toml, ...).
func LoadRules(file string) (rules RulesConfig, err error) {
	v := viper.New()
	v.SetConfigFile(file)

	if err = v.ReadInConfig(); err != nil {
		err = fmt.Errorf("cannot read rules file: %w", err)
		return
	}

	if err = v.Unmarshal(&rules); err != nil {
		err = fmt.Errorf("cannot parse rules file: %w", err)
	}

	return
}
