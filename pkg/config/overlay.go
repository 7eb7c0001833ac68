// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

// 📄 fileConfig is the shape of a YAML or JSON config file. Every field is a
// pointer so a key that is present, even with an empty value, can be told
// apart from one that is omitted.
type fileConfig struct {
	Root      *string        `json:"root" yaml:"root"`
	Extension *string        `json:"extension" yaml:"extension"`
	Exclude   *[]string      `json:"exclude" yaml:"exclude"`
	Emoji     *[]Replacement `json:"emoji" yaml:"emoji"`
	Tags      *[]Replacement `json:"tags" yaml:"tags"`
	Separator *Replacement   `json:"separator" yaml:"separator"`
	Cleanup   *Cleanup       `json:"cleanup" yaml:"cleanup"`
}

// apply copies the keys present in the file onto base. Tables and blocks
// replace the base value whole; nothing is merged field by field.
func (fc *fileConfig) apply(base *Config) *Config {
	cfg := base
	if cfg == nil {
		cfg = &Config{}
	}

	if fc.Root != nil {
		cfg.Root = *fc.Root
	}
	if fc.Extension != nil {
		cfg.Extension = *fc.Extension
	}
	if fc.Exclude != nil {
		cfg.Exclude = *fc.Exclude
	}
	if fc.Emoji != nil {
		cfg.Emoji = *fc.Emoji
	}
	if fc.Tags != nil {
		cfg.Tags = *fc.Tags
	}
	if fc.Separator != nil {
		cfg.Separator = *fc.Separator
	}
	if fc.Cleanup != nil {
		cfg.Cleanup = *fc.Cleanup
	}

	return cfg
}
