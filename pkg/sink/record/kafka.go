// SPDX-License-Identifier: Apache-2.0

package record

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/tidwall/gjson"
)

// KafkaRecord adapts an inbound Kafka message to the field references used
// by resolved mappings: '__self', 'key', 'value', 'key.<path>',
// 'value.<path>', 'header.<name>' and bare field names, which are implicitly
// value fields. Key and value documents are treated as JSON for pathed
// lookups.
type KafkaRecord struct {
	msg kafka.Message
}

func NewKafkaRecord(msg kafka.Message) *KafkaRecord {
	return &KafkaRecord{msg: msg}
}

func (r *KafkaRecord) Topic() string {
	return r.msg.Topic
}

func (r *KafkaRecord) Timestamp() time.Time {
	return r.msg.Time
}

func (r *KafkaRecord) Field(ref string) (any, error) {
	switch ref {
	case RawFieldName:
		return r.msg, nil
	case "key":
		return r.msg.Key, nil
	case "value":
		return r.msg.Value, nil
	}

	if name, ok := strings.CutPrefix(ref, "header."); ok {
		for _, h := range r.msg.Headers {
			if h.Key == name {
				return h.Value, nil
			}
		}
		return nil, ErrFieldNotFound{Field: ref}
	}

	doc := r.msg.Value
	path := ref
	if p, ok := strings.CutPrefix(ref, "key."); ok {
		doc = r.msg.Key
		path = p
	} else if p, ok := strings.CutPrefix(ref, "value."); ok {
		path = p
	}

	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		return nil, ErrFieldNotFound{Field: ref}
	}
	return result.Value(), nil
}
