// Package validate checks generated dashboards and rule files against the
// PromQL grammar and the set of metrics the service exports.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/mtg-price-tracker/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings are
// reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses expr and checks that every selected metric is known.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: invalid PromQL %q: %v", where, expr, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})
	return res
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

type panelJSON struct {
	Title   string       `json:"title"`
	Type    string       `json:"type"`
	Targets []targetJSON `json:"targets"`
	Panels  []panelJSON  `json:"panels"`
}

type targetJSON struct {
	RefID string `json:"refId"`
	Expr  string `json:"expr"`
}

// Dashboard validates every Prometheus target in a built dashboard. The
// dashboard is inspected through its JSON form so any builder output works.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}
	var doc struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("reading dashboard JSON: %v", err))
		return res
	}

	for _, p := range doc.Panels {
		res.merge(panel(p, known))
	}
	return res
}

func panel(p panelJSON, known map[string]bool) Result {
	var res Result
	if p.Type == "row" || p.Panels != nil {
		if len(p.Panels) == 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %q has no panels", p.Title))
		}
		for _, child := range p.Panels {
			res.merge(panel(child, known))
		}
		return res
	}

	if len(p.Targets) == 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("panel %q has no targets", p.Title))
	}
	for _, t := range p.Targets {
		res.merge(Expr(fmt.Sprintf("panel %q target %s", p.Title, t.RefID), t.Expr, known))
	}
	return res
}

// Rules validates every expression in a PrometheusRule resource. Recording
// rule names defined earlier in the same resource count as known.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	seen := make(map[string]bool)

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("group %q: rule without record or alert name", g.Name))
				continue
			}
			if seen[name] {
				res.Errors = append(res.Errors, fmt.Sprintf("group %q: duplicate rule %q", g.Name, name))
			}
			seen[name] = true

			res.merge(Expr(fmt.Sprintf("rule %q", name), r.Expr, known))
			if r.Alert != "" && r.Labels["severity"] == "" {
				res.Warnings = append(res.Warnings, fmt.Sprintf("alert %q has no severity", name))
			}
		}
	}
	return res
}
