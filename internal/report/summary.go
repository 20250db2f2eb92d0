// Package report renders plain-text summaries for export by the
// dashboard.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/healthguard/vigil/internal/core"
	"github.com/healthguard/vigil/internal/core/model"
)

// Summary renders the tracking summary for one recomputation snapshot
// and the scored posts it was requested alongside. Output is fully
// determined by its inputs; the caller supplies the generation time.
func Summary(snap core.Snapshot, posts []model.PostRecord, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "MISINFORMATION TRACKING SUMMARY REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.UTC().Format("2006-01-02 15:04:05"))

	high, archived := 0, 0
	for _, p := range posts {
		if p.RiskTier == model.TierHigh {
			high++
		}
		if p.Archived {
			archived++
		}
	}

	fmt.Fprintf(&b, "OVERVIEW:\n")
	fmt.Fprintf(&b, "- Total Posts Tracked: %d\n", len(posts))
	fmt.Fprintf(&b, "- High Risk Posts: %d\n", high)
	fmt.Fprintf(&b, "- Archived Posts: %d\n", archived)
	fmt.Fprintf(&b, "- Accounts In Network: %d\n", snap.Graph.NodeCount())
	fmt.Fprintf(&b, "- Interaction Pairs: %d\n\n", snap.Graph.EdgeCount())

	fmt.Fprintf(&b, "NETWORK (min %d connections):\n", snap.Params.MinConnections)
	fmt.Fprintf(&b, "- Nodes: %d\n", snap.Stats.NodeCount)
	fmt.Fprintf(&b, "- Edges: %d\n", snap.Stats.EdgeCount)
	fmt.Fprintf(&b, "- Density: %.3f\n", snap.Stats.Density)
	fmt.Fprintf(&b, "- Avg Degree: %.2f\n\n", snap.Stats.AvgDegree)

	writeBreakdown(&b, "PLATFORM BREAKDOWN:", posts, func(p model.PostRecord) string { return p.Platform })
	writeBreakdown(&b, "CATEGORY BREAKDOWN:", posts, func(p model.PostRecord) string { return p.Category })
	writeBreakdown(&b, "STATUS BREAKDOWN:", posts, func(p model.PostRecord) string { return string(p.Status) })

	fmt.Fprintf(&b, "TOP SUPER SPREADERS:\n")
	if len(snap.Rankings) == 0 {
		fmt.Fprintf(&b, "- none\n")
	}
	for i, r := range snap.Rankings {
		fmt.Fprintf(&b, "%d. %s  connections=%d  weighted=%.0f  tier=%s\n",
			i+1, r.NodeID, r.Degree, r.WeightedDegree, r.Tier)
	}

	return b.String()
}

// writeBreakdown prints per-key counts, most frequent first, ties by
// key so the report is reproducible.
func writeBreakdown(b *strings.Builder, title string, posts []model.PostRecord, key func(model.PostRecord) string) {
	counts := make(map[string]int)
	for _, p := range posts {
		if k := key(p); k != "" {
			counts[k]++
		}
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	fmt.Fprintf(b, "%s\n", title)
	if len(keys) == 0 {
		fmt.Fprintf(b, "- none\n")
	}
	for _, k := range keys {
		fmt.Fprintf(b, "- %s: %d\n", k, counts[k])
	}
	fmt.Fprintf(b, "\n")
}
