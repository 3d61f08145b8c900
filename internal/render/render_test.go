package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-orderedview/internal/constraint"
	"github.com/grindlemire/go-orderedview/internal/layout"
)

func sampleReport(t *testing.T) Report {
	t.Helper()
	parent := layout.NewNode("bar")
	engine := layout.New(layout.Row, []layout.Component{
		layout.Spacer(layout.FixedSize(10), layout.Named("a"), layout.Adaptable()),
		layout.View(layout.NewNode("icon"), layout.NewRules(layout.FixedSize(20), layout.FixedSize(20))),
		layout.Spacer(layout.FixedSize(20), layout.Named("b"), layout.Adaptable()),
	})
	if err := engine.Attach(parent, constraint.NewRecorder()); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	return NewReport(parent.Name(), engine.Direction().String(), engine.Constraints())
}

func TestNewReport(t *testing.T) {
	r := sampleReport(t)

	if r.Parent != "bar" || r.Direction != "row" {
		t.Errorf("Parent/Direction = %q/%q, want bar/row", r.Parent, r.Direction)
	}

	want := map[string]int{"main-size": 3, "cross-size": 6, "chain": 4, "expansion": 1}
	for k, n := range want {
		if r.Summary[k] != n {
			t.Errorf("Summary[%s] = %d, want %d", k, r.Summary[k], n)
		}
	}

	first := r.Constraints[0]
	if first.Expr != "a.width >= 10 @250" || first.Second != "" || first.Priority != 250 {
		t.Errorf("first entry = %+v", first)
	}
}

func TestSummary(t *testing.T) {
	got := Summary(sampleReport(t))
	want := "14 constraints: 3 main-size, 6 cross-size, 4 chain, 1 expansion"
	if got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestWrite_Formats(t *testing.T) {
	r := sampleReport(t)

	type tc struct {
		format Format
		check  func(t *testing.T, out []byte)
	}

	tests := map[string]tc{
		"json": {
			format: FormatJSON,
			check: func(t *testing.T, out []byte) {
				var back Report
				if err := json.Unmarshal(out, &back); err != nil {
					t.Fatalf("json.Unmarshal() error = %v", err)
				}
				if len(back.Constraints) != len(r.Constraints) {
					t.Errorf("constraints = %d, want %d", len(back.Constraints), len(r.Constraints))
				}
			},
		},
		"yaml": {
			format: FormatYAML,
			check: func(t *testing.T, out []byte) {
				var back Report
				if err := yaml.Unmarshal(out, &back); err != nil {
					t.Fatalf("yaml.Unmarshal() error = %v", err)
				}
				if back.Summary["expansion"] != 1 {
					t.Errorf("summary = %v, want one expansion", back.Summary)
				}
			},
		},
		"text": {
			format: FormatText,
			check: func(t *testing.T, out []byte) {
				s := string(out)
				for _, want := range []string{"bar (row)", "CONSTRAINT", "a.width >= 10", "a.width == b.width * 0.5", "14 constraints"} {
					if !strings.Contains(s, want) {
						t.Errorf("text output missing %q:\n%s", want, s)
					}
				}
				if strings.Contains(s, "\x1b[") {
					t.Errorf("text output has colour codes:\n%s", s)
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.format, r, Options{NoColor: true}); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			tt.check(t, buf.Bytes())
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("JSON"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(JSON) = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) error = nil, want error")
	}
}

func TestWrite_JSONNonFiniteMultiplier(t *testing.T) {
	parent := layout.NewNode("bar")
	engine := layout.New(layout.Row, []layout.Component{
		layout.Spacer(layout.FixedSize(10), layout.Named("a"), layout.Adaptable()),
		layout.Spacer(layout.FixedSize(0), layout.Named("b"), layout.Adaptable()),
	})
	if err := engine.Attach(parent, constraint.NewRecorder()); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	r := NewReport(parent.Name(), engine.Direction().String(), engine.Constraints())

	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, r, Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var back struct {
		Constraints []map[string]any `json:"constraints"`
	}
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v\n%s", err, buf.String())
	}

	var found bool
	for _, c := range back.Constraints {
		if c["kind"] != "expansion" {
			continue
		}
		found = true
		if c["multiplier"] != "+Inf" {
			t.Errorf("multiplier = %v, want \"+Inf\"", c["multiplier"])
		}
		if c["constant"] != float64(0) {
			t.Errorf("constant = %v, want 0", c["constant"])
		}
	}
	if !found {
		t.Fatalf("no expansion constraint in output:\n%s", buf.String())
	}
}
