// jobenc encodes a job's arguments from a JSON value file and prints the hex
// payload, for manual cross-checking against the remote decoder.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/catalog"
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/encode"
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/manifest"
	"github.com/tangle-network/ai-agent-sandbox-blueprint-sub000/pkg/registry"
)

func main() {
	namespace := flag.String("namespace", catalog.Namespace, "blueprint namespace")
	jobID := flag.Uint("job", 0, "job id within the namespace")
	valuesPath := flag.String("values", "", "JSON file with form values")
	contextPath := flag.String("context", "", "JSON file with context values (optional)")
	manifestDir := flag.String("manifests", "", "directory of manifest files to load in addition to the built-in catalog")
	flag.Parse()

	builder := registry.NewBuilder()
	catalog.Register(builder)
	if *manifestDir != "" {
		if err := manifest.LoadFS(os.DirFS(*manifestDir), builder); err != nil {
			log.Fatalf("load manifests: %v", err)
		}
	}
	reg := builder.Build()

	schema, ok := reg.Lookup(*namespace, uint8(*jobID))
	if !ok {
		log.Fatalf("no job %d registered under namespace %q", *jobID, *namespace)
	}

	values, err := readJSONMap(*valuesPath)
	if err != nil {
		log.Fatalf("read values: %v", err)
	}
	context, err := readJSONMap(*contextPath)
	if err != nil {
		log.Fatalf("read context: %v", err)
	}

	payload, err := encode.JobArgs(schema, values, context)
	if err != nil {
		log.Fatalf("encode %s: %v", schema.Name, err)
	}
	fmt.Printf("0x%s\n", hex.EncodeToString(payload))
}

func readJSONMap(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
