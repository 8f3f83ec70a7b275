package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funcsnap.dev/pkg/funcsnap/internal/domain"
	m "funcsnap.dev/pkg/funcsnap/internal/model"
)

type moduleName string

func TestSerialize_ReplacesCallables(t *testing.T) {
	record := m.NewModuleRecord("dq/utility.go", "dq")
	record.Objects["helper"] = m.Function{
		Ref: m.Reference{File: "dq/utility.go", Package: "dq", Name: "helper"},
	}
	record.Objects[m.Qualifier("dq", "DataCheck")] = map[string]m.Function{
		"AddErrorCol": {
			Ref: m.Reference{File: "dq/utility.go", Package: "dq", Receiver: "*DataCheck", Name: "AddErrorCol"},
		},
	}

	discovery := m.Discovery{Modules: map[m.Path]m.ModuleRecord{record.Path: record}}

	doc, err := domain.Serialize(discovery.Tree())
	require.NoError(t, err)

	assert.Equal(t, m.Document{
		"dq/utility.go": map[string]any{
			"objects": map[string]any{
				"helper": "<func dq.helper in dq/utility.go>",
				"<type dq.DataCheck>": map[string]any{
					"AddErrorCol": "<func dq.(*DataCheck).AddErrorCol in dq/utility.go>",
				},
			},
		},
	}, doc)
}

func TestSerialize_CoercesKeys(t *testing.T) {
	tree := map[any]any{
		moduleName("a.go"): map[int]string{1: "one", 2: "two"},
		3:                  true,
	}

	doc, err := domain.Serialize(tree)
	require.NoError(t, err)

	assert.Equal(t, m.Document{
		"a.go": map[string]any{"1": "one", "2": "two"},
		"3":    true,
	}, doc)
}

func TestSerialize_PassesThroughScalars(t *testing.T) {
	tree := map[string]any{
		"n":    1.5,
		"s":    "text",
		"nil":  nil,
		"list": []string{"a", "b"},
	}

	doc, err := domain.Serialize(tree)
	require.NoError(t, err)

	assert.Equal(t, 1.5, doc["n"])
	assert.Equal(t, "text", doc["s"])
	assert.Nil(t, doc["nil"])
	assert.Equal(t, []string{"a", "b"}, doc["list"])
}

func TestSerialize_Errors(t *testing.T) {
	t.Run("root is not a mapping", func(t *testing.T) {
		_, err := domain.Serialize([]string{"a"})
		assert.ErrorContains(t, err, "must be a mapping")
	})

	t.Run("keys collide after coercion", func(t *testing.T) {
		_, err := domain.Serialize(map[any]any{1: "int", "1": "string"})
		assert.ErrorContains(t, err, "duplicate key")
	})
}

func TestSerialize_JSONRoundTrip(t *testing.T) {
	record := m.NewModuleRecord("m.go", "demo")
	record.Objects["F"] = m.Function{Ref: m.Reference{File: "m.go", Package: "demo", Name: "F"}}

	doc, err := domain.Serialize(m.Discovery{Modules: map[m.Path]m.ModuleRecord{"m.go": record}}.Tree())
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded m.Document
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, doc, decoded)
}
