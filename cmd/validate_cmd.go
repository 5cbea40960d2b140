// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdconfig "github.com/cassink/cassink/cmd/config"
	"github.com/cassink/cassink/internal/json"
	"github.com/cassink/cassink/pkg/log/zerolog"
	"github.com/cassink/cassink/pkg/sink"
	"github.com/cassink/cassink/pkg/sink/config"
)

var errNoTopics = errors.New("no topics to validate: provide --topics or a 'topics' setting")

const trueStr = "true"

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the connector settings and resolves every table configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zerolog.NewLogger(&zerolog.Config{
			LogLevel: viper.GetString("log-level"),
		})

		sp, _ := pterm.DefaultSpinner.WithText("validating table configurations...").Start()

		configs, err := func() ([]*config.TableConfig, error) {
			bag, err := cmdconfig.LoadBag()
			if err != nil {
				return nil, err
			}

			flagTopics, err := cmd.Flags().GetStringSlice("topics")
			if err != nil {
				return nil, err
			}
			topics := cmdconfig.Topics(flagTopics, bag)
			if len(topics) == 0 {
				return nil, errNoTopics
			}

			registry := sink.NewRegistry(sink.WithLogger(zerolog.NewStdLogger(logger)))
			return registry.ResolveBag(cmd.Context(), topics, bag)
		}()
		if err != nil {
			sp.Fail(err.Error())
			return err
		}

		sp.Success(fmt.Sprintf("resolved %d table configuration(s)", len(configs)))
		return print(cmd, configs)
	},
	Example: `
	cassink validate -c connector.properties
	cassink validate -c connector.properties --topics orders,users --json
	`,
}

func print(cmd *cobra.Command, configs []*config.TableConfig) error {
	if cmd.Flags().Lookup("json").Value.String() != trueStr {
		for _, cfg := range configs {
			fmt.Println(cfg.Key().String(), cfg.String()) //nolint:forbidigo
		}
		return nil
	}

	summaries := make([]map[string]any, 0, len(configs))
	for _, cfg := range configs {
		summaries = append(summaries, map[string]any{
			"topic":            cfg.Topic(),
			"keyspace":         cfg.Keyspace().AsCql(),
			"table":            cfg.Table().AsCql(),
			"consistencyLevel": cfg.Consistency().String(),
			"ttl":              cfg.TTL(),
			"nullToUnset":      cfg.NullToUnset(),
			"deletesEnabled":   cfg.DeletesEnabled(),
			"mapping":          cfg.Mapping().String(),
		})
	}
	out, err := json.MarshalIndent(summaries, "", "\t")
	if err != nil {
		return err
	}
	fmt.Println(string(out)) //nolint:forbidigo
	return nil
}
