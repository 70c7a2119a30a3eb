package netlist

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/yesoreyeram/neram/pkg/graph"
)

// Continuous assignment: "assign lhs = rhs;"
var assignRe = regexp.MustCompile(`^\s*assign\s+(.+?)\s*=\s*(.+?);`)

// Signal tokens inside a right-hand side:
//   - escaped identifiers: \something_until_whitespace (e.g. "\a[0]")
//   - plain identifiers:   a123, n386, f[0], ...
var signalRe = regexp.MustCompile(`\\[^\s,;]+|[A-Za-z_]\w*(?:\[\d+\])?`)

// Procedural assignment inside always blocks: "lhs = rhs;" or "lhs <= rhs;"
var procAssignRe = regexp.MustCompile(`^\s*([A-Za-z_]\w*(?:\[\d+\])?)\s*(<=|=)\s*(.+?);`)

// MUX2 module instantiation:
//
//	MUX2 inst ( .A(sigA), .B(sigB), .S(sigS), .Y(sigY) );
//
// Interior whitespace is arbitrary; port expressions may be escaped nets or
// literals like 1'b0.
var mux2Re = regexp.MustCompile(`^\s*MUX2\s+\w+\s*\(\s*\.A\s*\(\s*([^)]+)\s*\)\s*,\s*\.B\s*\(\s*([^)]+)\s*\)\s*,\s*\.S\s*\(\s*([^)]+)\s*\)\s*,\s*\.Y\s*\(\s*([^)]+)\s*\)\s*\);`)

// Design is the immutable product of parsing one netlist: the timing DAG
// and the two register-boundary net sets.
type Design struct {
	Graph *graph.Graph

	// QNets holds the left-hand sides of procedural assignments (<= or =) in
	// clocked always blocks (flip-flop Q outputs, timing startpoints).
	QNets map[string]struct{}

	// DNets holds the right-hand-side operands of those assignments
	// (flip-flop D inputs, timing endpoints).
	DNets map[string]struct{}
}

// Parser builds timing DAGs from Verilog text.
type Parser struct{}

// NewParser creates a new netlist parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a netlist file. An unreadable path returns
// ErrFileUnreadable; the file handle is held only for the read.
func (p *Parser) ParseFile(path string) (*Design, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	return p.Parse(string(text))
}

// Parse builds a combinational DAG from a (possibly sequential) Verilog
// description.
//
// Continuous assignments and assignments inside combinational always blocks
// create delayed edges from each right-hand-side signal to the left-hand
// side. Clocked always blocks detect state registers instead: the left-hand
// sides of their assignments become Q nets and the right-hand-side signals
// become D nets, with no edge between them, because that transfer happens
// across clock cycles. MUX2 instances are expanded to gate level.
//
// Lines matching no recognized construct are ignored.
func (p *Parser) Parse(text string) (*Design, error) {
	d := &Design{
		Graph: graph.New(),
		QNets: make(map[string]struct{}),
		DNets: make(map[string]struct{}),
	}

	inSeqAlways := false  // always @(posedge ...) / @(negedge ...)
	inCombAlways := false // always @(*) or always @*
	mux2Counter := 0      // fresh internal nets per MUX2 instance

	for _, line := range splitLines(text) {
		stripped := strings.TrimSpace(line)

		// Entry into an always block. The heuristic for clocked vs
		// combinational is the presence of an edge keyword.
		if strings.HasPrefix(stripped, "always") {
			if strings.Contains(stripped, "posedge") || strings.Contains(stripped, "negedge") {
				inSeqAlways = true
				inCombAlways = false
			} else {
				inCombAlways = true
				inSeqAlways = false
			}
			continue
		}

		// Exit from an always block.
		if inSeqAlways || inCombAlways {
			if strings.HasPrefix(stripped, "end") {
				inSeqAlways = false
				inCombAlways = false
				continue
			}
		}

		// Inside a clocked always block: detect state registers.
		if inSeqAlways {
			if m := procAssignRe.FindStringSubmatch(line); m != nil {
				lhs := strings.TrimSpace(m[1])
				d.QNets[lhs] = struct{}{}
				d.Graph.AddNode(lhs)

				for _, s := range extractSignals(m[3]) {
					d.DNets[s] = struct{}{}
					d.Graph.AddNode(s)
				}
			}
			continue
		}

		// Inside a combinational always block: build combinational edges.
		if inCombAlways {
			if m := procAssignRe.FindStringSubmatch(line); m != nil {
				lhs := strings.TrimSpace(m[1])
				rhs := strings.TrimSpace(m[3])

				gt := DetectGateType(rhs)
				delay := Delay(gt)
				if gt == GateAssign {
					// Pass-throughs inside procedural logic carry the
					// always-block delay, not the wire delay.
					delay = Delay(GateCombAlways)
				}

				for _, s := range extractSignals(rhs) {
					d.Graph.AddNode(s)
					d.Graph.AddNode(lhs)
					d.Graph.AddEdge(s, lhs, delay)
				}
			}
			continue
		}

		// MUX2 instantiation, expanded to Y = (A & ~S) | (B & S).
		if m := mux2Re.FindStringSubmatch(line); m != nil {
			a := strings.TrimSpace(m[1])
			b := strings.TrimSpace(m[2])
			s := strings.TrimSpace(m[3])
			y := strings.TrimSpace(m[4])

			mux2Counter++
			nS := fmt.Sprintf("nS_%d", mux2Counter)
			t0 := fmt.Sprintf("t0_%d", mux2Counter)
			t1 := fmt.Sprintf("t1_%d", mux2Counter)

			d.Graph.AddNode(a)
			d.Graph.AddNode(b)
			d.Graph.AddNode(s)
			d.Graph.AddNode(nS)
			d.Graph.AddNode(t0)
			d.Graph.AddNode(t1)
			d.Graph.AddNode(y)

			// nS = ~S
			d.Graph.AddEdge(s, nS, Delay(GateMux2Not))
			// t0 = A & nS
			d.Graph.AddEdge(a, t0, Delay(GateMux2And))
			d.Graph.AddEdge(nS, t0, Delay(GateMux2And))
			// t1 = B & S
			d.Graph.AddEdge(b, t1, Delay(GateMux2And))
			d.Graph.AddEdge(s, t1, Delay(GateMux2And))
			// Y = t0 | t1
			d.Graph.AddEdge(t0, y, Delay(GateMux2Or))
			d.Graph.AddEdge(t1, y, Delay(GateMux2Or))
			continue
		}

		// Continuous assignment outside any block.
		if m := assignRe.FindStringSubmatch(line); m != nil {
			lhs := strings.TrimSpace(m[1])
			rhs := strings.TrimSpace(m[2])

			delay := Delay(DetectGateType(rhs))
			for _, s := range extractSignals(rhs) {
				d.Graph.AddNode(s)
				d.Graph.AddNode(lhs)
				d.Graph.AddEdge(s, lhs, delay)
			}
		}
	}

	return d, nil
}

// extractSignals returns the net names referenced by a right-hand side, in
// textual order. Operators, parentheses and numeric literals do not match
// the token pattern; the tail of a sized literal such as 1'b0 would, so any
// token immediately preceded by an apostrophe is discarded.
func extractSignals(rhs string) []string {
	locs := signalRe.FindAllStringIndex(rhs, -1)
	if locs == nil {
		return nil
	}
	out := make([]string, 0, len(locs))
	for _, loc := range locs {
		if loc[0] > 0 && rhs[loc[0]-1] == '\'' {
			continue
		}
		tok := strings.TrimSpace(rhs[loc[0]:loc[1]])
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// splitLines splits on LF, tolerating CRLF endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Startpoints returns the timing startpoints of the design: nets with no
// incoming edges plus the flip-flop Q nets, sorted lexicographically.
func (d *Design) Startpoints() []string {
	seen := make(map[string]struct{})
	for _, n := range d.Graph.Nodes() {
		if d.Graph.InDegree(n) == 0 {
			seen[n] = struct{}{}
		}
	}
	for q := range d.QNets {
		seen[q] = struct{}{}
	}
	return sortedKeys(seen)
}

// Endpoints returns the timing endpoints of the design: nets with no
// outgoing edges plus the flip-flop D nets, sorted lexicographically.
func (d *Design) Endpoints() []string {
	seen := make(map[string]struct{})
	for _, n := range d.Graph.Nodes() {
		if d.Graph.OutDegree(n) == 0 {
			seen[n] = struct{}{}
		}
	}
	for dn := range d.DNets {
		seen[dn] = struct{}{}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
