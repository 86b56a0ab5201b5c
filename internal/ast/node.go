// Package ast implements the AST Node Layer of spec.md §3, §4.6: a
// tagged-variant tree, produced only by the parser, whose nodes form
// singly-linked sibling chains rather than the garbage-collected doubly
// traversable list the source language's own compiler uses (spec.md §9:
// "replace with... contiguous vectors of owned children per node").
//
// The tagged-union shape here (Node{header..., Data NodeData},
// NodeData interface{ isNode() }) follows the corpus convention of a
// thin common header plus a closed interface of concrete payload types
// (other_examples esbuild pkg/ast: Expr{Loc, Data E}, E interface{
// isExpr() }), adapted to this spec's declaration-level grammar rather
// than a full expression AST.
package ast

import "github.com/gmofishsauce/csfront/internal/position"

// Node is the common header every AST node shares (spec.md §3: "all
// sharing a common header: source-name, start, end, next-sibling").
// Next is non-nil only while the node is a member of a sibling chain
// built by a List; a node that has never been appended to a List has
// Next == nil, and — per the "no node in two chains" invariant — a node
// already appended to one List is never appended to a second.
type Node struct {
	SourceName string
	Start      position.Position
	End        position.Position
	Next       *Node
	Data       NodeData
}

// Span returns the node's start/end as a position.Span.
func (n *Node) Span() position.Span {
	return position.Span{Start: n.Start, End: n.End}
}

// NodeData is implemented by every concrete node payload (SourceFile,
// Namespace, UsingNamespace, UsingAlias, TypeDeclaration, Attribute,
// Identifier, and the member placeholders EventDecl/FieldDecl/
// MethodDecl/PropertyDecl spec.md §4.5 names but §3 does not give full
// shapes to, since method/property bodies are outside this front end's
// grammar).
type NodeData interface{ isNode() }

// SourceFile is the root of one compiled buffer (spec.md §3: "SourceFile
// (root: Namespace)").
type SourceFile struct {
	Root *Node // *Node with Data *Namespace; Namespace.Name is always nil here (§3 invariant)
}

func (*SourceFile) isNode() {}

// Namespace is a (possibly nested, possibly global) namespace body
// (spec.md §3).
type Namespace struct {
	Name             *Node // Data *Identifier, or nil for the implicit root/global namespace
	ExternAliases    []string
	Usings           *List // UsingNamespace / UsingAlias nodes
	NestedNamespaces *List // Namespace nodes
	Types            *List // TypeDeclaration nodes
	GlobalAttributes *List // Attribute nodes
}

func (*Namespace) isNode() {}

// UsingNamespace is a "using Some.Dotted.Name;" directive.
type UsingNamespace struct {
	Name string
}

func (*UsingNamespace) isNode() {}

// UsingAlias is a "using Alias = Some.Type;" directive.
type UsingAlias struct {
	Alias string
	Type  *TypeRef
}

func (*UsingAlias) isNode() {}

// TypeDeclKind distinguishes the five declarable type kinds (spec.md
// §3: "kind: {Class, Struct, Interface, Enum, Delegate}").
type TypeDeclKind int

const (
	DeclClass TypeDeclKind = iota
	DeclStruct
	DeclInterface
	DeclEnum
	DeclDelegate
)

func (k TypeDeclKind) String() string {
	switch k {
	case DeclClass:
		return "class"
	case DeclStruct:
		return "struct"
	case DeclInterface:
		return "interface"
	case DeclEnum:
		return "enum"
	case DeclDelegate:
		return "delegate"
	default:
		return "?"
	}
}

// TypeDeclaration is a class/struct/interface/enum/delegate declaration
// (spec.md §3, §4.5).
type TypeDeclaration struct {
	Name        string
	Kind        TypeDeclKind
	Modifiers   []string
	Attributes  *List // Attribute nodes
	Events      *List // EventDecl nodes
	Fields      *List // FieldDecl nodes
	Methods     *List // MethodDecl nodes
	Properties  *List // PropertyDecl nodes
	NestedTypes *List // TypeDeclaration nodes
}

func (*TypeDeclaration) isNode() {}

// EventDecl, FieldDecl, MethodDecl, and PropertyDecl are the member
// shapes spec.md §4.5's grammar names without spelling out their data
// model in §3: this front end only needs to record enough of each to
// support member disambiguation and diagnostics, not execution (method
// bodies and field initializers are out of grammar scope, spec.md §1).
type EventDecl struct {
	Name string
	Type *TypeRef
}

func (*EventDecl) isNode() {}

type FieldDecl struct {
	Name          string
	Type          *TypeRef
	HasInitializer bool
}

func (*FieldDecl) isNode() {}

type MethodDecl struct {
	Name       string
	ReturnType *TypeRef
}

func (*MethodDecl) isNode() {}

type PropertyDecl struct {
	Name      string
	Type      *TypeRef
	IsIndexer bool
}

func (*PropertyDecl) isNode() {}

// Attribute is one "[Target: TypeName(args...)]" attribute application
// (spec.md §3, §4.5).
type Attribute struct {
	Target          string // "" when no "Target:" prefix was given
	Type            *TypeRef
	PositionalArgs  []*Node // Data *UnsupportedExpr, since parse-expression() is unimplemented (spec.md §4.5)
	NamedArgNames   []string
	NamedArgValues  []*Node
}

func (*Attribute) isNode() {}

// UnsupportedExpr stands in for an argument expression this front end
// cannot parse: spec.md §4.5 calls parse-expression() "unimplemented in
// the source" and says a faithful port must stub it with not-supported
// rather than silently drop the argument list's shape.
type UnsupportedExpr struct {
	RawText string
}

func (*UnsupportedExpr) isNode() {}

// Identifier is a (possibly dotted) name reference (spec.md §3).
type Identifier struct {
	Name  string
	Scope *Node // enclosing Namespace this identifier was captured under, or nil
}

func (*Identifier) isNode() {}
