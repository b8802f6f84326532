package ast

// File is a parsed compilation unit: an ordered list of top-level items
// (TypeItem/InterfaceItem/EnumItem/FunctionItem/VariableItem/NamespaceItem)
// plus the three arenas backing every node the items reference.
type File struct {
	Items     *Items
	Exprs     *Exprs
	TypeNames *TypeNames
	TopLevel  []ItemID
}

// Builder assembles a File incrementally. It exists purely so test
// fixtures and any future front end can construct a File without
// juggling three arenas by hand.
type Builder struct {
	file *File
}

// NewBuilder starts a new, empty File.
func NewBuilder() *Builder {
	return &Builder{
		file: &File{
			Items:     NewItems(),
			Exprs:     NewExprs(),
			TypeNames: NewTypeNames(),
		},
	}
}

// Top appends id to the compilation unit's top-level item list.
func (b *Builder) Top(id ItemID) {
	b.file.TopLevel = append(b.file.TopLevel, id)
}

// Build returns the assembled File.
func (b *Builder) Build() *File {
	return b.file
}
