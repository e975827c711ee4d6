package manifest

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/jobs"
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/registry"
)

const sandboxManifest = `
blueprint: sandbox
jobs:
  - id: 0
    name: launch_sandbox
    contextParams:
      - wireName: operator
        wireType: address
    fields:
      - name: image
        wireType: string
      - name: cpuLimit
        wireName: cpuMillis
        wireType: uint32
      - name: displayName
`

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"blueprints/sandbox.yaml": {Data: []byte(sandboxManifest)},
	}
	builder := registry.NewBuilder()
	if err := LoadFS(fsys, builder); err != nil {
		t.Fatalf("LoadFS: %v", err)
	}

	schema, ok := builder.Build().Lookup("sandbox", 0)
	if !ok {
		t.Fatal("manifest job was not registered")
	}
	if schema.Name != "launch_sandbox" {
		t.Fatalf("unexpected name %q", schema.Name)
	}
	if len(schema.ContextParams) != 1 || schema.ContextParams[0].WireType != jobs.WireAddress {
		t.Fatalf("context params not loaded: %v", schema.ContextParams)
	}
	if got := schema.Fields[1].EncodedName(); got != "cpuMillis" {
		t.Fatalf("wire name override not loaded, got %q", got)
	}
	// displayName has no wireType: UI-only.
	if wire := schema.WireFields(); len(wire) != 2 {
		t.Fatalf("expected 2 wire fields, got %d", len(wire))
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	if err := LoadFS(nil, registry.NewBuilder()); err != nil {
		t.Fatalf("nil filesystem must be a no-op, got %v", err)
	}
}

func TestLoad_JSONDocument(t *testing.T) {
	doc := `{"blueprint":"compute","jobs":[{"id":2,"name":"schedule","fields":[{"name":"priority","wireType":"uint8"}]}]}`
	builder := registry.NewBuilder()
	if err := Load([]byte(doc), "compute.json", builder); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := builder.Build().Lookup("compute", 2); !ok {
		t.Fatal("JSON manifest job was not registered")
	}
}

func TestLoad_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing blueprint",
			doc:     "jobs:\n  - id: 0\n    name: x\n",
			wantErr: "does not declare a blueprint",
		},
		{
			name:    "unknown field wire type",
			doc:     "blueprint: b\njobs:\n  - id: 0\n    name: x\n    fields:\n      - name: f\n        wireType: float64\n",
			wantErr: `unknown wire type "float64"`,
		},
		{
			name:    "unknown context wire type",
			doc:     "blueprint: b\njobs:\n  - id: 0\n    name: x\n    contextParams:\n      - wireName: c\n        wireType: int\n",
			wantErr: `unknown wire type "int"`,
		},
		{
			name:    "nameless job",
			doc:     "blueprint: b\njobs:\n  - id: 0\n",
			wantErr: "has no name",
		},
		{
			name:    "nameless field",
			doc:     "blueprint: b\njobs:\n  - id: 0\n    name: x\n    fields:\n      - wireType: string\n",
			wantErr: "field without a name",
		},
		{
			name:    "malformed yaml",
			doc:     "blueprint: [",
			wantErr: "parse",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Load([]byte(tc.doc), "test.yaml", registry.NewBuilder())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_DuplicateIDKeepsRegistryOverwriteSemantics(t *testing.T) {
	doc := `
blueprint: sandbox
jobs:
  - id: 0
    name: first
  - id: 0
    name: second
`
	builder := registry.NewBuilder()
	if err := Load([]byte(doc), "dup.yaml", builder); err != nil {
		t.Fatalf("Load: %v", err)
	}
	schema, _ := builder.Build().Lookup("sandbox", 0)
	if schema.Name != "second" {
		t.Fatalf("last declaration must win, got %q", schema.Name)
	}
}
