// Package cfg builds control flow graphs for verified procedures and
// lowers them into a single structured statement sequence with one label
// per block plus a synthetic terminal label.
package cfg

import (
	"log"
	"regexp"

	"github.com/google/uuid"

	"github.com/verikit/cfglower/domain"
	"github.com/verikit/cfglower/internal/ast"
)

// ReturnLabel is the reserved terminal label all Return successors jump to.
// User blocks must not use it.
const ReturnLabel = "return"

// labelPattern is the lexical rule for block labels: a letter or underscore
// followed by letters, digits, or underscores
var labelPattern = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*$`)

// BlockIndex is an opaque, graph-scoped reference to a basic block.
// It is only valid against the method that minted it; applying it to any
// other method fails fast instead of silently misindexing.
type BlockIndex struct {
	methodID uuid.UUID
	position int
}

// Position returns the block's zero-based ordinal in its method
func (idx BlockIndex) Position() int {
	return idx.position
}

// basicBlock is a labeled unit holding invariant annotations, a body
// statement, and exactly one successor
type basicBlock struct {
	invs      []ast.Expr
	stmt      ast.Stmt
	successor Successor
	wired     bool
}

// Method is a control flow graph under construction: an ordered sequence of
// blocks with a parallel sequence of labels, plus the procedure signature.
// A Method is single-writer and is consumed by Lower.
type Method struct {
	id            uuid.UUID
	name          string
	formalArgs    []ast.LocalVarDecl
	formalReturns []ast.LocalVarDecl
	locals        []ast.LocalVarDecl
	blocks        []*basicBlock
	labels        []string
	consumed      bool
	logger        *log.Logger
}

// NewMethod creates an empty graph with a fresh graph identity
func NewMethod(name string, formalArgs, formalReturns, locals []ast.LocalVarDecl) *Method {
	return &Method{
		id:            uuid.New(),
		name:          name,
		formalArgs:    formalArgs,
		formalReturns: formalReturns,
		locals:        locals,
	}
}

// SetLogger sets an optional logger for diagnostics
func (m *Method) SetLogger(logger *log.Logger) {
	m.logger = logger
}

// Name returns the procedure name
func (m *Method) Name() string {
	return m.name
}

// BlockCount returns the number of blocks added so far
func (m *Method) BlockCount() int {
	return len(m.blocks)
}

// AddBlock appends a new block with the given label, invariants, and body.
// The block's successor defaults to Unreachable until wired. The returned
// index is only valid against this method. A failed call leaves the graph
// unchanged.
func (m *Method) AddBlock(label string, invs []ast.Expr, stmt ast.Stmt) (BlockIndex, error) {
	if m.consumed {
		return BlockIndex{}, domain.NewGraphConsumedError(m.name)
	}
	if !labelPattern.MatchString(label) {
		return BlockIndex{}, domain.NewInvalidLabelError(label)
	}
	if label == ReturnLabel {
		return BlockIndex{}, domain.NewReservedLabelError(label)
	}
	for _, existing := range m.labels {
		if existing == label {
			return BlockIndex{}, domain.NewDuplicateLabelError(label)
		}
	}

	position := len(m.blocks)
	m.labels = append(m.labels, label)
	m.blocks = append(m.blocks, &basicBlock{
		invs:      invs,
		stmt:      stmt,
		successor: Unreachable{},
	})

	if m.logger != nil {
		m.logger.Printf("cfg: method %s block %d label %s", m.name, position, label)
	}

	return BlockIndex{methodID: m.id, position: position}, nil
}

// SetSuccessor overwrites the successor of the block named by index.
// The index and every block the successor references must belong to this
// method. Calling this more than once on the same index is permitted and
// replaces the prior successor.
func (m *Method) SetSuccessor(index BlockIndex, successor Successor) error {
	if m.consumed {
		return domain.NewGraphConsumedError(m.name)
	}
	if err := m.checkIndex(index); err != nil {
		return err
	}
	for _, target := range successor.targets() {
		if err := m.checkIndex(target); err != nil {
			return err
		}
	}

	block := m.blocks[index.position]
	block.successor = successor
	block.wired = true
	return nil
}

// UnwiredBlocks returns the labels of blocks whose successor was never
// explicitly set. Such blocks keep the Unreachable default and will trap
// if dynamically reached.
func (m *Method) UnwiredBlocks() []string {
	var labels []string
	for i, block := range m.blocks {
		if !block.wired {
			labels = append(labels, m.labels[i])
		}
	}
	return labels
}

// checkIndex validates that an index was minted by this method and names an
// existing block
func (m *Method) checkIndex(index BlockIndex) error {
	if index.methodID != m.id {
		return domain.NewGraphMismatchError(m.name)
	}
	if index.position < 0 || index.position >= len(m.blocks) {
		return domain.NewGraphMismatchError(m.name)
	}
	return nil
}
