// Lingodesk is a multilingual customer support bot. It answers recognised
// intents with canned, pre-translated replies and hands everything else to a
// hosted language model.
//
// Usage:
//
//	lingodesk [chat] [--config /path/to/lingodesk.yaml]
//	lingodesk serve --config configs/lingodesk.yaml
//	lingodesk version
package main

import "os"

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
