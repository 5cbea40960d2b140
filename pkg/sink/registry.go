// SPDX-License-Identifier: Apache-2.0

// Package sink holds the connector-side surface around the per-table
// configuration engine: discovery of table settings in a flat bag and the
// shared registry of resolved configurations.
package sink

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	synclib "github.com/cassink/cassink/internal/sync"
	"github.com/cassink/cassink/pkg/cql"
	loglib "github.com/cassink/cassink/pkg/log"
	"github.com/cassink/cassink/pkg/sink/config"
)

// maxConcurrentResolutions bounds how many table configurations are resolved
// in parallel by ResolveBag. Resolutions share no state, so the bound only
// caps goroutines.
const maxConcurrentResolutions = 8

type entry struct {
	once sync.Once
	cfg  *config.TableConfig
	err  error
}

// Registry is the shared, concurrency-safe registry of resolved table
// configurations. It guarantees at most one resolution per (topic, keyspace,
// table) triple; repeated lookups return the cached immutable result.
type Registry struct {
	logger  loglib.Logger
	entries *synclib.Map[config.Key, *entry]
	sema    synclib.WeightedSemaphore
}

type Option func(*Registry)

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:  loglib.NewNoopLogger(),
		entries: synclib.NewMap[config.Key, *entry](),
		sema:    synclib.NewWeightedSemaphore(maxConcurrentResolutions),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func WithLogger(l loglib.Logger) Option {
	return func(r *Registry) {
		r.logger = loglib.NewLogger(l).WithFields(loglib.Fields{
			loglib.ModuleField: "sink_registry",
		})
	}
}

// GetOrResolve returns the configuration for the given triple, resolving it
// from the bag on first use. Concurrent callers for the same triple share a
// single resolution; a failed resolution is cached and returned as-is to
// every caller.
func (r *Registry) GetOrResolve(topic, keyspace, table string, bag map[string]string) (*config.TableConfig, error) {
	key := config.Key{
		Topic:    topic,
		Keyspace: cql.ParseIdentifier(keyspace),
		Table:    cql.ParseIdentifier(table),
	}
	e := r.entries.GetOrSet(key, func() *entry { return &entry{} })
	e.once.Do(func() {
		builder := config.NewBuilder(topic, keyspace, table)
		for path, value := range bag {
			builder.AddSetting(path, value)
		}
		e.cfg, e.err = builder.Build()
		if e.err != nil {
			r.logger.Error(e.err, "table configuration failed", loglib.Fields{"table": key.String()})
			return
		}
		r.logger.Info("table configuration resolved", loglib.Fields{
			"table":  key.String(),
			"config": e.cfg.String(),
		})
	})
	return e.cfg, e.err
}

// Get returns an already-resolved configuration.
func (r *Registry) Get(key config.Key) (*config.TableConfig, bool) {
	e, ok := r.entries.Get(key)
	if !ok || e.err != nil {
		return nil, false
	}
	return e.cfg, true
}

type triple struct {
	topic    string
	keyspace string
	table    string
}

// ResolveBag discovers all table settings for the announced topics in the
// flat bag and resolves every (topic, keyspace, table) triple found,
// concurrently. All discovery and resolution failures are aggregated; on any
// failure no configurations are returned.
func (r *Registry) ResolveBag(ctx context.Context, topics []string, bag map[string]string) ([]*config.TableConfig, error) {
	var errs []error

	triples := make([]triple, 0, len(topics))
	seen := make(map[triple]struct{})
	for _, topic := range topics {
		prefix := "topic." + topic + "."
		found := false
		for path, value := range bag {
			if !strings.HasPrefix(path, prefix) {
				continue
			}
			segments := cql.SplitUnquoted(path[len(prefix):], '.')
			if len(segments) != 3 {
				errs = append(errs, config.Error{
					Path:   path,
					Value:  value,
					Reason: "expected a setting path of the form topic.<topic>.<keyspace>.<table>.<setting>",
				})
				continue
			}
			if !isTableSetting(segments[2]) {
				errs = append(errs, config.Error{
					Path:   path,
					Value:  value,
					Reason: "unrecognized setting; valid settings are: " + strings.Join(config.TableSettingNames(), ", "),
				})
				continue
			}
			found = true
			t := triple{topic: topic, keyspace: segments[0], table: segments[1]}
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				triples = append(triples, t)
			}
		}
		if !found {
			errs = append(errs, fmt.Errorf("topic '%s': no table settings found in the bag", topic))
		}
	}

	sort.Slice(triples, func(i, j int) bool {
		a, b := triples[i], triples[j]
		if a.topic != b.topic {
			return a.topic < b.topic
		}
		if a.keyspace != b.keyspace {
			return a.keyspace < b.keyspace
		}
		return a.table < b.table
	})

	configs := make([]*config.TableConfig, len(triples))
	resolveErrs := make([]error, len(triples))
	var wg sync.WaitGroup
	for i, t := range triples {
		if err := r.sema.Acquire(ctx, 1); err != nil {
			errs = append(errs, err)
			break
		}
		wg.Add(1)
		go func(i int, t triple) {
			defer wg.Done()
			defer r.sema.Release(1)
			configs[i], resolveErrs[i] = r.GetOrResolve(t.topic, t.keyspace, t.table, bag)
		}(i, t)
	}
	wg.Wait()

	errs = append(errs, resolveErrs...)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return configs, nil
}

func isTableSetting(name string) bool {
	for _, s := range config.TableSettingNames() {
		if s == name {
			return true
		}
	}
	return false
}
