package operation

import (
	"github.com/beevik/prefixtree/v2"

	"github.com/ezrec/eightbit/langdef"
)

// All returns the operations of the instruction set, in matching order.
func All() []Operation {
	return []Operation{
		Noop{},
		Halt{},
		Copy{},
		Set{},
		Load{},
		Store{},
		Push{},
		Pop{},
		Alu{Op: langdef.ALU_OP_ADD},
		Alu{Op: langdef.ALU_OP_SUB},
		Alu{Op: langdef.ALU_OP_AND},
		Alu{Op: langdef.ALU_OP_OR},
		Alu{Op: langdef.ALU_OP_XOR},
		Not{},
		Counter{Op: langdef.ALU_OP_INCR},
		Counter{Op: langdef.ALU_OP_DECR},
		Jump{},
		JumpIf{Flag: langdef.FLAG_ZERO},
		JumpIf{Flag: langdef.FLAG_CARRY},
		JumpIf{Flag: langdef.FLAG_NEGATIVE},
		JumpIf{Flag: langdef.FLAG_OVERFLOW},
	}
}

// Catalog indexes a set of operations by mnemonic.
type Catalog struct {
	ops  []Operation
	tree *prefixtree.Tree[Operation]
}

// NewCatalog indexes the operations given.
func NewCatalog(ops []Operation) *Catalog {
	cat := &Catalog{
		ops:  ops,
		tree: prefixtree.New[Operation](),
	}
	for _, op := range ops {
		cat.tree.Add(op.Mnemonic(), op)
	}
	return cat
}

// Operations returns the operations in matching order.
func (cat *Catalog) Operations() []Operation {
	return cat.ops
}

// Lookup finds the operation whose mnemonic is name, or the only mnemonic
// that name is a prefix of.
func (cat *Catalog) Lookup(name string) (op Operation, err error) {
	for _, op = range cat.ops {
		if op.Mnemonic() == name {
			return
		}
	}
	op, err = cat.tree.FindValue(name)
	return
}
