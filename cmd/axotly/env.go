package main

import (
	"os"
	"strings"
)

// envMap snapshots AXOTLY_* process environment variables into a map so
// config.Resolve stays a pure function of its inputs.
func envMap() map[string]string {
	out := map[string]string{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, "AXOTLY_") {
			out[k] = v
		}
	}
	return out
}
