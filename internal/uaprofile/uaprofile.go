// Package uaprofile derives the active export-condition set from a
// client User-Agent string, so an HTTP front-end can pick "browser" vs
// "node" conditions per request instead of a single fixed set.
package uaprofile

import (
	"strings"

	"github.com/mssola/user_agent"
)

// ConditionsFor returns the ordered export-condition list appropriate
// for ua. The resolve core never calls this itself — it only consumes
// whatever ordered condition list a caller hands it — this package
// exists purely to produce that input from a request header.
func ConditionsFor(ua string) []string {
	switch {
	case strings.HasPrefix(ua, "Deno/"):
		return []string{"deno", "import", "default"}
	case ua == "" || strings.HasPrefix(ua, "Node/") || strings.Contains(ua, "undici"):
		return []string{"node", "import", "default"}
	}
	name, _ := user_agent.New(ua).Browser()
	if name == "" {
		return []string{"node", "import", "default"}
	}
	return []string{"browser", "import", "default"}
}
