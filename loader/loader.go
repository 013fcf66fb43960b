package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/waypath/waypath/core"
)

var (
	// ErrBadHeader means the first row is not the expected column set.
	ErrBadHeader = errors.New("loader: malformed header")

	// ErrBadRecord means a data row failed strict field parsing.
	ErrBadRecord = errors.New("loader: malformed record")

	// ErrUnknownKind means the Kind field is not a recognized node kind.
	ErrUnknownKind = errors.New("loader: unknown node kind")

	// ErrReservedName means a node name carries the junction marker
	// prefix, which only connectivity repair may mint.
	ErrReservedName = errors.New("loader: reserved junction name")

	// ErrUnknownNeighbor means a Neighbors entry names no declared node.
	ErrUnknownNeighbor = errors.New("loader: unknown neighbor")
)

// header is the required column set, in order.
var header = []string{"Kind", "Name", "Level", "X", "Y", "Neighbors"}

// Load parses a CSV floor plan and returns the resulting graph.
// Row order in the file carries no meaning: neighbors may reference
// nodes declared later.
func Load(r io.Reader) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrBadHeader)
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	g := core.NewGraph()

	// First pass declares every node so neighbor references can point
	// forward; the second pass wires edges.
	neighbors := make([]string, len(records))
	for i, rec := range records[1:] {
		line := i + 2
		node, nb, err := parseRow(rec, line)
		if err != nil {
			return nil, err
		}
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("%w (line %d)", err, line)
		}
		neighbors[i] = nb
	}

	for i, rec := range records[1:] {
		line := i + 2
		from, _ := g.NodeByName(strings.TrimSpace(rec[1]))
		for _, name := range splitNeighbors(neighbors[i]) {
			to, ok := g.NodeByName(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q referenced by %q (line %d)",
					ErrUnknownNeighbor, name, from.Name, line)
			}
			if err := g.AddEdge(from, to, core.Distance(from, to)); err != nil {
				return nil, fmt.Errorf("%w (line %d)", err, line)
			}
		}
	}

	return g, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open plan: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func checkHeader(row []string) error {
	if len(row) != len(header) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrBadHeader, len(row), len(header))
	}
	for i, want := range header {
		if !strings.EqualFold(strings.TrimSpace(row[i]), want) {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i+1, row[i], want)
		}
	}

	return nil
}

// parseRow converts one data row into a node plus its raw Neighbors
// field. All numeric fields go through strconv; nothing is evaluated.
func parseRow(rec []string, line int) (core.Node, string, error) {
	kind, err := parseKind(rec[0])
	if err != nil {
		return core.Node{}, "", fmt.Errorf("%w (line %d)", err, line)
	}

	name := strings.TrimSpace(rec[1])
	if name == "" {
		return core.Node{}, "", fmt.Errorf("%w: empty name (line %d)", ErrBadRecord, line)
	}
	if strings.HasPrefix(name, core.JunctionPrefix) {
		return core.Node{}, "", fmt.Errorf("%w: %q (line %d)", ErrReservedName, name, line)
	}

	level, err := strconv.Atoi(strings.TrimSpace(rec[2]))
	if err != nil {
		return core.Node{}, "", fmt.Errorf("%w: level %q (line %d)", ErrBadRecord, rec[2], line)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if err != nil {
		return core.Node{}, "", fmt.Errorf("%w: x %q (line %d)", ErrBadRecord, rec[3], line)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(rec[4]), 64)
	if err != nil {
		return core.Node{}, "", fmt.Errorf("%w: y %q (line %d)", ErrBadRecord, rec[4], line)
	}

	node := core.Node{Kind: kind, Name: name, Level: level, X: x, Y: y}

	return node, rec[5], nil
}

func parseKind(s string) (core.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "connector", "hallway":
		return core.KindConnector, nil
	case "target", "classroom":
		return core.KindTarget, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

func splitNeighbors(field string) []string {
	var out []string
	for _, part := range strings.Split(field, ";") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}

	return out
}
