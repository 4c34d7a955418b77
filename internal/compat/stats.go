package compat

import (
	"math"
	"strconv"
)

// StatsEntry is the coarser fallback shape for one browser: a mapping of
// version label to raw support string, used when a feature carries no
// per-browser support map.
type StatsEntry map[string]string

// Current picks the (label, support) pair for the numerically highest
// version label. Labels that do not parse as a float compare as 0.0, so
// non-numeric labels like "beta" or "TP" sort below any released version.
// When several labels tie (typically because none parse), the
// lexicographically greatest label wins, which keeps the selection
// deterministic regardless of map iteration order. An empty entry returns
// ("", ""), which downstream classification treats as unknown.
func (e StatsEntry) Current() (label, support string) {
	best := math.Inf(-1)
	for l := range e {
		v, err := strconv.ParseFloat(l, 64)
		if err != nil || math.IsNaN(v) {
			v = 0
		}
		if v > best || (v == best && l > label) {
			best = v
			label = l
		}
	}
	return label, e[label]
}
