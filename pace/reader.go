package pace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/treewidth/graph"
)

// ReadGraph parses a .gr ("p tw n m") or .dgf ("p edge n m") stream into
// a Graph. Declared vertex count n is used only to pre-populate isolated
// vertices 1..n (so a graph with no edges, or with trailing isolated
// ids, still reports the right NumVertices); m is not checked against
// the actual edge line count.
//
// Lines starting with n, d, v, x, b, or l are tolerated and ignored
// (DIMACS compatibility).
//
// Returns an error naming the first malformed line encountered.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	g := graph.New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	sawHeader := false
	edgeToken := "" // "" until header parsed: "" (.gr, bare "<u> <v>") or "e" (.dgf)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			continue
		case "p":
			if sawHeader {
				return nil, fmt.Errorf("pace: line %d: duplicate problem line", lineNo)
			}
			n, _, err := parseHeader(fields, lineNo)
			if err != nil {
				return nil, err
			}
			if fields[1] == "edge" {
				edgeToken = "e"
			}
			for v := 1; v <= n; v++ {
				g.AddVertex(v)
			}
			sawHeader = true
		case "e":
			if !sawHeader {
				return nil, fmt.Errorf("pace: line %d: edge before problem line", lineNo)
			}
			u, v, err := parseEdgeFields(fields[1:], lineNo)
			if err != nil {
				return nil, err
			}
			g.AddEdge(u, v)
		case "n", "d", "v", "x", "b", "l":
			continue
		default:
			if !sawHeader {
				return nil, fmt.Errorf("pace: line %d: expected problem line, got %q", lineNo, fields[0])
			}
			if edgeToken == "e" {
				return nil, fmt.Errorf("pace: line %d: expected \"e <u> <v>\", got %q", lineNo, line)
			}
			u, v, err := parseEdgeFields(fields, lineNo)
			if err != nil {
				return nil, err
			}
			g.AddEdge(u, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pace: scan failed: %w", err)
	}
	if !sawHeader {
		return nil, fmt.Errorf("pace: missing problem line")
	}
	return g, nil
}

func parseHeader(fields []string, lineNo int) (n, m int, err error) {
	if len(fields) != 4 {
		return 0, 0, fmt.Errorf("pace: line %d: malformed problem line %q", lineNo, strings.Join(fields, " "))
	}
	if fields[1] != "tw" && fields[1] != "edge" {
		return 0, 0, fmt.Errorf("pace: line %d: unknown problem type %q", lineNo, fields[1])
	}
	n, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("pace: line %d: bad vertex count: %w", lineNo, err)
	}
	m, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, fmt.Errorf("pace: line %d: bad edge count: %w", lineNo, err)
	}
	return n, m, nil
}

func parseEdgeFields(fields []string, lineNo int) (u, v int, err error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("pace: line %d: malformed edge line", lineNo)
	}
	u, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("pace: line %d: bad endpoint: %w", lineNo, err)
	}
	v, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("pace: line %d: bad endpoint: %w", lineNo, err)
	}
	if u == v {
		return 0, 0, fmt.Errorf("pace: line %d: self-loop on vertex %d", lineNo, u)
	}
	return u, v, nil
}
