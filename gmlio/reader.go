package gmlio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arwald/centra/graph"
)

type token struct {
	text string
	line int
}

// tokenize splits the input into whitespace-separated tokens, each
// tagged with the 1-based line it came from, for error reporting.
func tokenize(r io.Reader) ([]token, error) {
	var tokens []token
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		for _, f := range strings.Fields(scanner.Text()) {
			tokens = append(tokens, token{text: f, line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gmlio: reading input: %w", err)
	}
	return tokens, nil
}

type edgeSpec struct {
	source, target int64
	weight         float64
	hasWeight      bool
	// line is the source-token line, used to report undeclared node ids.
	line int
}

type parsed struct {
	directed  bool
	nodeOrder []int64
	seen      map[int64]bool
	edges     []edgeSpec
}

func malformed(t token, msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedGML, t.line, msg)
}

// cursor walks the token slice, with a peek/next pair used by the
// recursive-descent parser below.
type cursor struct {
	tokens []token
	pos    int
}

func (c *cursor) atEnd() bool { return c.pos >= len(c.tokens) }

func (c *cursor) peek() (token, bool) {
	if c.atEnd() {
		return token{}, false
	}
	return c.tokens[c.pos], true
}

func (c *cursor) next() (token, bool) {
	t, ok := c.peek()
	if ok {
		c.pos++
	}
	return t, ok
}

func (c *cursor) expect(text string) (token, error) {
	t, ok := c.next()
	if !ok {
		return token{}, fmt.Errorf("%w: unexpected end of input, expected %q", ErrMalformedGML, text)
	}
	if t.text != text {
		return token{}, malformed(t, fmt.Sprintf("expected %q, got %q", text, t.text))
	}
	return t, nil
}

func (c *cursor) expectInt() (int64, token, error) {
	t, ok := c.next()
	if !ok {
		return 0, token{}, fmt.Errorf("%w: unexpected end of input, expected integer", ErrMalformedGML)
	}
	v, err := strconv.ParseInt(t.text, 10, 64)
	if err != nil {
		return 0, t, malformed(t, fmt.Sprintf("expected integer, got %q", t.text))
	}
	return v, t, nil
}

func (c *cursor) expectFloat() (float64, token, error) {
	t, ok := c.next()
	if !ok {
		return 0, token{}, fmt.Errorf("%w: unexpected end of input, expected number", ErrMalformedGML)
	}
	v, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return 0, t, malformed(t, fmt.Sprintf("expected number, got %q", t.text))
	}
	return v, t, nil
}

func newParsed() *parsed {
	return &parsed{seen: make(map[int64]bool)}
}

func (p *parsed) registerNode(id int64) {
	if !p.seen[id] {
		p.seen[id] = true
		p.nodeOrder = append(p.nodeOrder, id)
	}
}

func parseTokens(tokens []token) (*parsed, error) {
	c := &cursor{tokens: tokens}
	if _, err := c.expect("graph"); err != nil {
		return nil, err
	}
	if _, err := c.expect("["); err != nil {
		return nil, err
	}

	p := newParsed()
	for {
		t, ok := c.peek()
		if !ok {
			return nil, fmt.Errorf("%w: unexpected end of input, unterminated graph block", ErrMalformedGML)
		}
		if t.text == "]" {
			c.next()
			break
		}
		switch t.text {
		case "directed":
			c.next()
			v, _, err := c.expectInt()
			if err != nil {
				return nil, err
			}
			p.directed = v != 0
		case "node":
			c.next()
			if err := parseNode(c, p); err != nil {
				return nil, err
			}
		case "edge":
			c.next()
			if err := parseEdge(c, p); err != nil {
				return nil, err
			}
		default:
			return nil, malformed(t, fmt.Sprintf("unexpected token %q in graph block", t.text))
		}
	}
	return p, nil
}

func parseNode(c *cursor, p *parsed) error {
	if _, err := c.expect("["); err != nil {
		return err
	}
	if _, err := c.expect("id"); err != nil {
		return err
	}
	id, _, err := c.expectInt()
	if err != nil {
		return err
	}
	if _, err := c.expect("]"); err != nil {
		return err
	}
	p.registerNode(id)
	return nil
}

func parseEdge(c *cursor, p *parsed) error {
	if _, err := c.expect("["); err != nil {
		return err
	}
	if _, err := c.expect("source"); err != nil {
		return err
	}
	source, sourceTok, err := c.expectInt()
	if err != nil {
		return err
	}
	if _, err := c.expect("target"); err != nil {
		return err
	}
	target, _, err := c.expectInt()
	if err != nil {
		return err
	}

	e := edgeSpec{source: source, target: target, line: sourceTok.line}
	t, ok := c.peek()
	if ok && t.text == "value" {
		c.next()
		w, _, werr := c.expectFloat()
		if werr != nil {
			return werr
		}
		e.weight = w
		e.hasWeight = true
	}
	if _, err := c.expect("]"); err != nil {
		return err
	}

	// Edge endpoints must reference ids declared by a node block
	// somewhere in the graph block, before or after the edge; Read
	// rejects edges that don't (spec §6.1).
	p.edges = append(p.edges, e)
	return nil
}

// Read parses a GML-like graph from r and builds a *graph.Graph, with
// node ids remapped to contiguous indices in first-seen order. Missing
// edge weights default to 1.
func Read(r io.Reader) (*graph.Graph, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, err
	}
	p, err := parseTokens(tokens)
	if err != nil {
		return nil, err
	}

	index := make(map[int64]int, len(p.nodeOrder))
	for i, id := range p.nodeOrder {
		index[id] = i
	}

	b, err := graph.NewBuilder(len(p.nodeOrder), graph.WithDirected(p.directed))
	if err != nil {
		return nil, fmt.Errorf("gmlio: building graph: %w", err)
	}
	for _, e := range p.edges {
		weight := 1.0
		if e.hasWeight {
			weight = e.weight
		}
		u, ok := index[e.source]
		if !ok {
			return nil, fmt.Errorf("%w: line %d: edge references undeclared source id %d", ErrMalformedGML, e.line, e.source)
		}
		v, ok := index[e.target]
		if !ok {
			return nil, fmt.Errorf("%w: line %d: edge references undeclared target id %d", ErrMalformedGML, e.line, e.target)
		}
		if err := b.AddEdge(u, v, weight); err != nil {
			return nil, fmt.Errorf("gmlio: adding edge %d->%d: %w", e.source, e.target, err)
		}
	}
	return b.Build(), nil
}
