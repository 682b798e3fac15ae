package sv

import cst "github.com/erihsu/sv-parser-go"

// PortConnectionKind tags which alternative of PortConnection matched.
type PortConnectionKind int

const (
	// PortNamed is `. port_identifier ( [ expression ] )`.
	PortNamed PortConnectionKind = iota
	// PortOrdered is a bare positional `expression`.
	PortOrdered
)

// PortConnection is a deliberately small slice of
// `named_port_connection | ordered_port_connection`.
type PortConnection struct {
	Kind    PortConnectionKind
	Dot     cst.Symbol
	Name    cst.Ident
	Expr    cst.Paren[cst.Option[Expression]]
	Ordered Expression
}

func (n PortConnection) Visit(emit func(cst.Locate, cst.Trivia)) {
	switch n.Kind {
	case PortNamed:
		n.Dot.Visit(emit)
		n.Name.Visit(emit)
		n.Expr.Visit(emit)
	case PortOrdered:
		n.Ordered.Visit(emit)
	}
}

func portConnectionP() cst.Parser[PortConnection] {
	named := func(s cst.Span) (cst.Span, PortConnection, error) {
		var zero PortConnection
		s1, dot, err := cst.SymbolOf(".")(s)
		if err != nil {
			return s, zero, err
		}
		s2, name, err := cst.Identifier()(s1)
		if err != nil {
			return s, zero, err
		}
		s3, expr, err := cst.ParenOf(cst.Opt(ExpressionP()))(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, PortConnection{Kind: PortNamed, Dot: dot, Name: name, Expr: expr}, nil
	}
	ordered := cst.Map(ExpressionP(), func(e Expression) PortConnection {
		return PortConnection{Kind: PortOrdered, Ordered: e}
	})
	return cst.Alt(named, ordered)
}

// NameOfInstance is `instance_identifier`; unpacked dimensions on an
// instance array are out of scope for this illustrative slice.
type NameOfInstance struct {
	Name cst.Ident
}

func (n NameOfInstance) Visit(emit func(cst.Locate, cst.Trivia)) { n.Name.Visit(emit) }

// HierarchicalInstance is `name_of_instance ( [ list_of_port_connections ] )`.
type HierarchicalInstance struct {
	Instance NameOfInstance
	Ports    cst.Paren[cst.Option[cst.ListOf[cst.Symbol, PortConnection]]]
}

func (n HierarchicalInstance) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.Instance.Visit(emit)
	n.Ports.Visit(emit)
}

func hierarchicalInstanceP() cst.Parser[HierarchicalInstance] {
	return func(s cst.Span) (cst.Span, HierarchicalInstance, error) {
		var zero HierarchicalInstance
		s1, name, err := cst.Identifier()(s)
		if err != nil {
			return s, zero, err
		}
		s2, ports, err := cst.ParenOf(cst.Opt(cst.List(cst.SymbolOf(","), portConnectionP())))(s1)
		if err != nil {
			return s, zero, err
		}
		return s2, HierarchicalInstance{Instance: NameOfInstance{Name: name}, Ports: ports}, nil
	}
}

// ModuleInstantiation is a minimal slice of `module_instantiation` (LRM
// A.4.1.1): `module_identifier hierarchical_instance { , hierarchical_instance
// } ;`. Parameter value assignment (`#(...)` before the first instance) is
// out of scope.
type ModuleInstantiation struct {
	ModuleName cst.Ident
	Instances  cst.ListOf[cst.Symbol, HierarchicalInstance]
	Semi       cst.Symbol
}

func (n ModuleInstantiation) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.ModuleName.Visit(emit)
	n.Instances.Visit(emit)
	n.Semi.Visit(emit)
}

// ModuleInstantiationP is `module_instantiation`.
func ModuleInstantiationP() cst.Parser[ModuleInstantiation] {
	return func(s cst.Span) (cst.Span, ModuleInstantiation, error) {
		var zero ModuleInstantiation
		s1, name, err := cst.Identifier()(s)
		if err != nil {
			return s, zero, err
		}
		s2, instances, err := cst.List(cst.SymbolOf(","), hierarchicalInstanceP())(s1)
		if err != nil {
			return s, zero, err
		}
		s3, semi, err := cst.SymbolOf(";")(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, ModuleInstantiation{ModuleName: name, Instances: instances, Semi: semi}, nil
	}
}
