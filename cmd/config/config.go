// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/viper"
)

// TopicsSetting is the connector-level setting listing the topics the sink
// consumes.
const TopicsSetting = "topics"

var ErrNoConfigFile = errors.New("no connector settings file provided")

// LoadBag reads the connector settings file into a flat string bag. Java
// properties keep keys case sensitive and flat, which is exactly the shape
// the table setting path grammar requires.
func LoadBag() (map[string]string, error) {
	file := viper.GetString("config")
	if file == "" {
		return nil, ErrNoConfigFile
	}
	props, err := properties.LoadFile(file, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("reading connector settings: %w", err)
	}
	return props.Map(), nil
}

// Topics returns the topic names to resolve: the --topics flag when set,
// otherwise the 'topics' setting from the bag.
func Topics(flagTopics []string, bag map[string]string) []string {
	if len(flagTopics) > 0 {
		return flagTopics
	}
	raw, ok := bag[TopicsSetting]
	if !ok {
		return nil
	}
	var topics []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}
