package levenshtein

import (
	"fmt"
	"strings"
)

// Op identifies a single edit operation in the backtrace.
type Op uint8

const (
	OpNone Op = iota // characters already match
	OpInsert
	OpDelete
	OpSubstitute
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpSubstitute:
		return "substitute"
	default:
		return "none"
	}
}

// symbol is the one-letter rendering used by Matrix.Format.
func (o Op) symbol() byte {
	switch o {
	case OpInsert:
		return 'I'
	case OpDelete:
		return 'D'
	case OpSubstitute:
		return 'R'
	default:
		return 'N'
	}
}

// Operation is one step of the edit script transforming source into target.
// SourceIndex / TargetIndex are 1-based rune positions; a position of 0 means
// the operation does not touch that string (inserts have no source position,
// deletes no target position).
type Operation struct {
	Op          Op     `json:"op"`
	SourceIndex int    `json:"sourceIndex,omitempty"`
	TargetIndex int    `json:"targetIndex,omitempty"`
	SourceRune  string `json:"sourceRune,omitempty"`
	TargetRune  string `json:"targetRune,omitempty"`
}

// Costs holds the per-operation costs of the DP recurrence.
// All costs default to 1 (uniform Levenshtein).
type Costs struct {
	Insert     int
	Delete     int
	Substitute int
}

// Option tweaks the costs used by NewMatrix.
type Option func(*Costs)

// WithInsertCost sets the cost of inserting one character.
func WithInsertCost(c int) Option { return func(o *Costs) { o.Insert = c } }

// WithDeleteCost sets the cost of deleting one character.
func WithDeleteCost(c int) Option { return func(o *Costs) { o.Delete = c } }

// WithSubstituteCost sets the cost of substituting one character.
func WithSubstituteCost(c int) Option { return func(o *Costs) { o.Substitute = c } }

// Matrix is the fully materialized DP computation for one string pair.
// It is built once by NewMatrix and immutable afterwards.
//
// Cell (i, j) holds the minimum cost of transforming the first i runes of
// source into the first j runes of target; row 0 and column 0 are the pure
// insertion/deletion identities.
type Matrix struct {
	source []rune
	target []rune
	costs  Costs
	dist   [][]int
	back   [][]Op
}

// NewMatrix computes the full distance and backtrace matrices for the pair.
// Costs below 1 are invalid.
func NewMatrix(source, target string, opts ...Option) (*Matrix, error) {
	costs := Costs{Insert: 1, Delete: 1, Substitute: 1}
	for _, opt := range opts {
		opt(&costs)
	}
	if costs.Insert < 1 || costs.Delete < 1 || costs.Substitute < 1 {
		return nil, fmt.Errorf("levenshtein: operation costs must be >= 1, got %+v", costs)
	}

	m := &Matrix{
		source: []rune(source),
		target: []rune(target),
		costs:  costs,
	}
	m.build()
	return m, nil
}

func (m *Matrix) build() {
	la, lb := len(m.source), len(m.target)

	m.dist = make([][]int, la+1)
	m.back = make([][]Op, la+1)
	for i := 0; i <= la; i++ {
		m.dist[i] = make([]int, lb+1)
		m.back[i] = make([]Op, lb+1)
		m.dist[i][0] = i * m.costs.Delete
		m.back[i][0] = OpDelete
	}
	for j := 0; j <= lb; j++ {
		m.dist[0][j] = j * m.costs.Insert
		m.back[0][j] = OpInsert
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			if m.source[i-1] == m.target[j-1] {
				m.dist[i][j] = m.dist[i-1][j-1]
				m.back[i][j] = OpNone
				continue
			}
			ins := m.dist[i][j-1] + m.costs.Insert
			del := m.dist[i-1][j] + m.costs.Delete
			sub := m.dist[i-1][j-1] + m.costs.Substitute

			// Tie order: insert, delete, substitute.
			best, op := ins, OpInsert
			if del < best {
				best, op = del, OpDelete
			}
			if sub < best {
				best, op = sub, OpSubstitute
			}
			m.dist[i][j] = best
			m.back[i][j] = op
		}
	}
}

// Distance returns the total edit cost, the bottom-right cell.
func (m *Matrix) Distance() int {
	return m.dist[len(m.source)][len(m.target)]
}

// Rows returns len(source)+1, the number of matrix rows.
func (m *Matrix) Rows() int { return len(m.source) + 1 }

// Cols returns len(target)+1, the number of matrix columns.
func (m *Matrix) Cols() int { return len(m.target) + 1 }

// Cell returns the cost at row i, column j.
func (m *Matrix) Cell(i, j int) int { return m.dist[i][j] }

// Cells returns a copy of the distance matrix, safe to hand out.
func (m *Matrix) Cells() [][]int {
	out := make([][]int, len(m.dist))
	for i, row := range m.dist {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

// Operations walks the backtrace from the bottom-right cell and returns the
// edit script in source order.
func (m *Matrix) Operations() []Operation {
	var ops []Operation

	i, j := len(m.source), len(m.target)
	for i > 0 || j > 0 {
		switch m.back[i][j] {
		case OpInsert:
			ops = append(ops, Operation{
				Op:          OpInsert,
				TargetIndex: j,
				TargetRune:  string(m.target[j-1]),
			})
			j--
		case OpDelete:
			ops = append(ops, Operation{
				Op:          OpDelete,
				SourceIndex: i,
				SourceRune:  string(m.source[i-1]),
			})
			i--
		case OpSubstitute:
			ops = append(ops, Operation{
				Op:          OpSubstitute,
				SourceIndex: i,
				TargetIndex: j,
				SourceRune:  string(m.source[i-1]),
				TargetRune:  string(m.target[j-1]),
			})
			i--
			j--
		default:
			ops = append(ops, Operation{
				Op:          OpNone,
				SourceIndex: i,
				TargetIndex: j,
				SourceRune:  string(m.source[i-1]),
				TargetRune:  string(m.target[j-1]),
			})
			i--
			j--
		}
	}

	// Reverse into forward order.
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return ops
}

// Format renders the backtrace as an ASCII grid: N (match), I (insert),
// D (delete), R (substitute), with the source down the left edge and the
// target across the top.
func (m *Matrix) Format() string {
	var b strings.Builder

	b.WriteByte('#')
	for _, r := range m.target {
		b.WriteByte(' ')
		b.WriteRune(r)
	}
	b.WriteByte('\n')

	for i := 1; i <= len(m.source); i++ {
		b.WriteRune(m.source[i-1])
		for j := 1; j <= len(m.target); j++ {
			b.WriteByte(' ')
			b.WriteByte(m.back[i][j].symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
