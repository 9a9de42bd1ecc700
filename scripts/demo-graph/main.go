// Command demo-graph builds the fixed demo ontology graph and prints it to
// stdout, as JSON (default) or YAML. Useful for eyeballing what the seeded
// server serves and as a quick smoke test of the engine.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Sherlock2019/ontology-engine/pkg/ontology"
)

func main() {
	format := flag.String("format", "json", "output format: json or yaml")
	flag.Parse()

	registry, err := ontology.BuildDemoGraph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build demo graph: %v\n", err)
		os.Exit(1)
	}

	var out []byte
	switch *format {
	case "json":
		out, err = json.MarshalIndent(registry.All(), "", "  ")
	case "yaml":
		out, err = ontology.MarshalGraphYAML(registry)
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (want json or yaml)\n", *format)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal graph: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(out))
}
