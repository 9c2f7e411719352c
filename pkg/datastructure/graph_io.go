package datastructure

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/wayfinder/pkg"
	"github.com/lintang-b-s/wayfinder/pkg/util"
)

/*
WriteGraph. write g as bzip2-compressed text.

	<numNodes> <numEdges> <rootID>
	<id> <kind> <x> <z> <entryAngle> <quoted roomName>   (numNodes lines, ascending id, kind is waypoint or entry_point)
	<from> <to>                                          (numEdges lines, out-edges of each node in insertion order)

edge distances are not stored, ReadGraph recomputes them from the node positions.
*/
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		return err
	}

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%d %d %d\n", g.NumberOfNodes(), g.NumberOfEdges(), g.rootID)

	ids := g.GetNodeIDs()
	for _, id := range ids {
		n := g.nodes[id]
		xF := strconv.FormatFloat(n.position.X, 'f', -1, 64)
		zF := strconv.FormatFloat(n.position.Z, 'f', -1, 64)
		angleF := strconv.FormatFloat(n.entryAngle, 'f', -1, 64)
		fmt.Fprintf(w, "%d %s %s %s %s %s\n", n.id, n.kind, xF, zF, angleF, strconv.Quote(n.roomName))
	}

	for _, id := range ids {
		for _, e := range g.nodes[id].edges {
			fmt.Fprintf(w, "%d %d\n", id, e.GetHead())
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return bz.Close()
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}

	tokens := fields(line)
	if len(tokens) != 3 {
		return nil, fmt.Errorf("invalid graph header %q", line)
	}

	numNodes, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, err
	}
	numEdges, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, err
	}
	rootID, err := ParseIndex(tokens[2])
	if err != nil {
		return nil, err
	}

	g := NewGraph(rootID)
	for i := 0; i < numNodes; i++ {
		line, err = util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		n, err := parseNode(line)
		if err != nil {
			return nil, err
		}
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}

	for i := 0; i < numEdges; i++ {
		line, err = util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		tokens = fields(line)
		if len(tokens) != 2 {
			return nil, fmt.Errorf("invalid edge line %q", line)
		}
		from, err := ParseIndex(tokens[0])
		if err != nil {
			return nil, err
		}
		to, err := ParseIndex(tokens[1])
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(from, to); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func parseNode(line string) (*Node, error) {
	tokens := strings.SplitN(line, " ", 6)
	if len(tokens) != 6 {
		return nil, fmt.Errorf("invalid node line %q", line)
	}
	id, err := ParseIndex(tokens[0])
	if err != nil {
		return nil, err
	}
	kind, ok := pkg.GetNodeKind(tokens[1])
	if !ok {
		return nil, fmt.Errorf("unknown node kind %q in %q", tokens[1], line)
	}
	x, err := util.StringToFloat64(tokens[2])
	if err != nil {
		return nil, err
	}
	z, err := util.StringToFloat64(tokens[3])
	if err != nil {
		return nil, err
	}
	angle, err := util.StringToFloat64(tokens[4])
	if err != nil {
		return nil, err
	}
	roomName, err := strconv.Unquote(tokens[5])
	if err != nil {
		return nil, fmt.Errorf("invalid room name in %q: %w", line, err)
	}

	if kind == pkg.ENTRY_POINT {
		return NewEntryPoint(id, x, z, roomName, angle), nil
	}
	return NewWaypoint(id, x, z), nil
}

func fields(s string) []string {
	return strings.Fields(s)
}

func ParseIndex(s string) (Index, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return Index(i), nil
}
