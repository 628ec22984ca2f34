package runtime

import (
	"fmt"
	"sort"

	"github.com/npillmayer/runeclass/charset"
)

// Symbol table for named character sets. Symbol tables are attached to
// scopes. Scopes are organized in a tree.
//

// --- Tags -------------------------------------------------------

// Tag is the symbols type to be stored into symbol tables. A tag binds a name
// to a character set. The zero value of Set is the empty set.
type Tag struct {
	name  string
	Set   charset.CharSet
	UData interface{} // user data, e.g. the defining expression
}

// NewTag creates a new tag, bound to the empty set.
func NewTag(nm string) *Tag {
	var tag = &Tag{
		name: nm,
	}
	return tag
}

// WithSet sets the initial character set of a tag. Use as
//
//    tag := NewTag("digit").WithSet(charset.Range('0', '9'+1))
//
func (s *Tag) WithSet(cs charset.CharSet) *Tag {
	s.Set = cs
	return s
}

// String is a debug Stringer for symbols.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s':%v>", s.Name(), s.Set)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table     map[string]*Tag
	createTag func(string) *Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		Table:     make(map[string]*Tag),
		createTag: NewTag,
	}
	return &symtab
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// ResolveOrDefineTag finds
// a tag in the table, inserts a new one if not found.
// Creates non-existent tags on the fly.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	found := true
	tag := t.ResolveTag(tagname)
	if tag == nil { // if not already there, insert it
		tag, _ = t.DefineTag(tagname)
		found = false
	}
	return tag, found
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty
// Overwrites existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := t.createTag(tagname)
	old := t.InsertTag(tag)
	return tag, old
}

// InsertTag inserts a pre-created symbol.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	t.Table[tag.name] = tag
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each tag in the table, executing a mapper function.
// Tags are visited in order of their names.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	names := make([]string, 0, len(t.Table))
	for k := range t.Table {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		mapper(k, t.Table[k])
	}
}

// === Scopes ================================================================

// Scope is a named scope, which may contain symbol definitions. Scopes link back to a
// parent scope, forming a tree.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	sc := &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
	return sc
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// DefineTag defines a tag in the scope. Returns the new tag and the previously
// stored tag under this key, if any.
//
func (s *Scope) DefineTag(tagname string) (*Tag, *Tag) {
	return s.symtab.DefineTag(tagname)
}

// Bind binds a character set to a name in the scope. An existing tag of
// the same name in this scope is re-used, tags of parent scopes are shadowed.
func (s *Scope) Bind(tagname string, cs charset.CharSet) *Tag {
	tag, found := s.symtab.ResolveOrDefineTag(tagname)
	if tag == nil {
		return nil
	}
	if found {
		T().P("scope", s.Name).Debugf("re-binding '%s'", tagname)
		tag.UData = nil
	}
	return tag.WithSet(cs)
}

// ResolveTag finds a tag. Returns the tag (or nil) and a scope. The scope is
// the scope (of a scope-tree-path) the tag was found in.
//
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	for ; s != nil; s = s.Parent {
		if tag := s.symtab.ResolveTag(tagname); tag != nil {
			return tag, s
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------

// ScopeTree can be treated as a stack during static analysis, thus
// building a tree from scopes which are pushed an popped to/from the stack.
//
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// NewScopeTree creates a scope tree with base as its outermost scope. base
// may be nil, leaving the tree empty.
func NewScopeTree(base *Scope) *ScopeTree {
	return &ScopeTree{ScopeBase: base, ScopeTOS: base}
}

// Current gets the current scope of a stack (TOS).
func (scst *ScopeTree) Current() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return scst.ScopeTOS
}

// Globals gets the outermost scope, containing global symbols.
func (scst *ScopeTree) Globals() *Scope {
	if scst.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.ScopeBase
}

// PushNewScope pushes a scope onto the stack of scopes. A scope is constructed, including a symbol table
// for variable declarations.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	scp := scst.ScopeTOS
	newsc := NewScope(nm, scp)
	if scp == nil { // the new scope is the global scope
		scst.ScopeBase = newsc // make new scope anchor
	}
	scst.ScopeTOS = newsc // new scope now TOS
	T().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}

// PopScope pops the top-most (recent) scope.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to pop scope from empty stack")
	}
	sc := scst.ScopeTOS
	T().Debugf("popping scope [%s]", sc.Name)
	scst.ScopeTOS = scst.ScopeTOS.Parent
	return sc
}

// Depth returns the number of scopes on the stack.
func (scst *ScopeTree) Depth() int {
	d := 0
	for s := scst.ScopeTOS; s != nil; s = s.Parent {
		d++
	}
	return d
}

// --- Built-ins -------------------------------------------------------------

// Builtins creates a scope pre-populated with character sets commonly used
// in lexer definitions:
//
//    any     all code points
//    none    the empty set
//    ascii   0 … 0x7f
//    digit   '0' … '9'
//    upper   'A' … 'Z'
//    lower   'a' … 'z'
//    letter  upper | lower
//    space   ' ', '\t', '\n', '\v', '\f', '\r'
//
func Builtins() *Scope {
	sc := NewScope("builtins", nil)
	upper := charset.Range('A', 'Z'+1)
	lower := charset.Range('a', 'z'+1)
	sc.Bind("any", charset.Full())
	sc.Bind("none", charset.Empty())
	sc.Bind("ascii", charset.Range(0, 0x80))
	sc.Bind("digit", charset.Range('0', '9'+1))
	sc.Bind("upper", upper)
	sc.Bind("lower", lower)
	sc.Bind("letter", charset.Union(upper, lower))
	sc.Bind("space", charset.Runes(' ', '\t', '\n', '\v', '\f', '\r'))
	return sc
}
