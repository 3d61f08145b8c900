// Package render formats derived constraint sets for people and tools.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-orderedview/internal/constraint"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, or yaml)", s)
	}
}

// Entry is the serialized form of one constraint.
type Entry struct {
	Kind       string  `json:"kind" yaml:"kind"`
	First      string  `json:"first" yaml:"first"`
	Relation   string  `json:"relation" yaml:"relation"`
	Second     string  `json:"second,omitempty" yaml:"second,omitempty"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
	Constant   float64 `json:"constant" yaml:"constant"`
	Priority   float64 `json:"priority" yaml:"priority"`
	Expr       string  `json:"expr" yaml:"expr"`
}

// MarshalJSON writes non-finite multipliers and constants as strings
// ("+Inf", "-Inf", "NaN"), which JSON numbers can't hold. A zero declared
// size on an adaptable spacer yields such a multiplier.
func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	return json.Marshal(struct {
		plain
		Multiplier any `json:"multiplier"`
		Constant   any `json:"constant"`
	}{plain(e), jsonNumber(e.Multiplier), jsonNumber(e.Constant)})
}

func jsonNumber(f float64) any {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return f
}

// Report is a constraint set with the layout it came from.
type Report struct {
	Parent      string         `json:"parent" yaml:"parent"`
	Direction   string         `json:"direction" yaml:"direction"`
	Constraints []Entry        `json:"constraints" yaml:"constraints"`
	Summary     map[string]int `json:"summary" yaml:"summary"`
}

// NewReport converts a constraint set.
func NewReport(parent, direction string, set []constraint.Constraint) Report {
	r := Report{
		Parent:      parent,
		Direction:   direction,
		Constraints: make([]Entry, 0, len(set)),
		Summary:     make(map[string]int),
	}
	for _, c := range set {
		e := Entry{
			Kind:       c.Kind.String(),
			First:      c.First.String(),
			Relation:   c.Relation.String(),
			Multiplier: c.Multiplier,
			Constant:   c.Constant,
			Priority:   float64(c.Priority),
			Expr:       c.String(),
		}
		if !c.IsConstant() {
			e.Second = c.Second.String()
		}
		r.Constraints = append(r.Constraints, e)
	}
	for kind, n := range constraint.CountByKind(set) {
		r.Summary[kind.String()] = n
	}
	return r
}

// Options tweaks text output.
type Options struct {
	NoColor bool
}

// Write encodes the report to w in the given format.
func Write(w io.Writer, f Format, r Report, opts Options) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return writeText(w, r, opts)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

var kindColors = map[string]lipgloss.Color{
	constraint.KindMainSize.String():  lipgloss.Color("39"),
	constraint.KindCrossSize.String(): lipgloss.Color("141"),
	constraint.KindChain.String():     lipgloss.Color("214"),
	constraint.KindExpansion.String(): lipgloss.Color("42"),
}

func writeText(w io.Writer, r Report, opts Options) error {
	re := lipgloss.NewRenderer(w)
	if opts.NoColor {
		re.SetColorProfile(termenv.Ascii)
	}

	title := re.NewStyle().Bold(true)
	dim := re.NewStyle().Foreground(lipgloss.Color("245"))

	rows := make([][]string, len(r.Constraints))
	for i, e := range r.Constraints {
		priority := ""
		if e.Priority < float64(constraint.PriorityRequired) {
			priority = strconv.FormatFloat(e.Priority, 'f', -1, 64)
		}
		rows[i] = []string{strconv.Itoa(i + 1), e.Kind, expression(e), priority}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dim).
		Headers("#", "KIND", "CONSTRAINT", "PRIORITY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := re.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return base.Bold(true)
			}
			if col == 1 && row >= 0 && row < len(rows) {
				if c, ok := kindColors[rows[row][1]]; ok {
					return base.Foreground(c)
				}
			}
			return base
		})

	if _, err := fmt.Fprintln(w, title.Render(fmt.Sprintf("%s (%s)", r.Parent, r.Direction))); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, dim.Render(Summary(r)))
	return err
}

// expression drops the trailing priority, which has its own column.
func expression(e Entry) string {
	if i := strings.LastIndex(e.Expr, " @"); i >= 0 {
		return e.Expr[:i]
	}
	return e.Expr
}

// Summary renders "N constraints: a main-size, b cross-size, ...".
func Summary(r Report) string {
	parts := make([]string, 0, len(constraint.Kinds()))
	for _, k := range constraint.Kinds() {
		parts = append(parts, fmt.Sprintf("%d %s", r.Summary[k.String()], k))
	}
	return fmt.Sprintf("%d constraints: %s", len(r.Constraints), strings.Join(parts, ", "))
}
