package sv

import cst "github.com/erihsu/sv-parser-go"

// NetTypeDeclarationKind tags which alternative of NetTypeDeclaration
// matched.
type NetTypeDeclarationKind int

const (
	// NetTypeDataType is `nettype data_type net_type_identifier [with
	// tf_identifier] ;`, e.g. "nettype T wTsum with Tsum;".
	NetTypeDataType NetTypeDeclarationKind = iota
	// NetTypeAlias is `nettype net_type_identifier net_type_identifier ;`.
	NetTypeAlias
)

// WithClause is `with tf_identifier`.
type WithClause struct {
	With cst.Keyword
	Name cst.Ident
}

func (n WithClause) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.With.Visit(emit)
	n.Name.Visit(emit)
}

// NetTypeDeclaration is `net_type_declaration` (LRM A.2.1.3), restricted to
// its two identifier-bearing alternatives.
type NetTypeDeclaration struct {
	Kind  NetTypeDeclarationKind
	NetTy cst.Keyword

	Type DataType // set when Kind == NetTypeDataType
	Name cst.Ident
	With cst.Option[WithClause]

	Alias cst.Ident // set when Kind == NetTypeAlias

	Semi cst.Symbol
}

func (n NetTypeDeclaration) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.NetTy.Visit(emit)
	switch n.Kind {
	case NetTypeDataType:
		n.Type.Visit(emit)
		n.Name.Visit(emit)
		cst.VisitField(n.With, emit)
	case NetTypeAlias:
		n.Alias.Visit(emit)
		n.Name.Visit(emit)
	}
	n.Semi.Visit(emit)
}

// withClauseP is `with tf_identifier`.
func withClauseP() cst.Parser[WithClause] {
	return func(s cst.Span) (cst.Span, WithClause, error) {
		var zero WithClause
		s1, with, err := cst.KeywordOf("with")(s)
		if err != nil {
			return s, zero, err
		}
		s2, name, err := cst.Identifier()(s1)
		if err != nil {
			return s, zero, err
		}
		return s2, WithClause{With: with, Name: name}, nil
	}
}

// netTypeDataTypeForm is `nettype data_type net_type_identifier [with
// tf_identifier] ;`.
func netTypeDataTypeForm() cst.Parser[NetTypeDeclaration] {
	return func(s cst.Span) (cst.Span, NetTypeDeclaration, error) {
		var zero NetTypeDeclaration
		s1, nettyKw, err := cst.KeywordOf("nettype")(s)
		if err != nil {
			return s, zero, err
		}
		s2, dt, err := DataTypeP()(s1)
		if err != nil {
			return s, zero, err
		}
		s3, name, err := cst.Identifier()(s2)
		if err != nil {
			return s, zero, err
		}
		s4, with, err := cst.Opt(withClauseP())(s3)
		if err != nil {
			return s, zero, err
		}
		s5, semi, err := cst.SymbolOf(";")(s4)
		if err != nil {
			return s, zero, err
		}
		return s5, NetTypeDeclaration{
			Kind: NetTypeDataType, NetTy: nettyKw, Type: dt, Name: name, With: with, Semi: semi,
		}, nil
	}
}

// netTypeAliasForm is `nettype net_type_identifier net_type_identifier ;`.
func netTypeAliasForm() cst.Parser[NetTypeDeclaration] {
	return func(s cst.Span) (cst.Span, NetTypeDeclaration, error) {
		var zero NetTypeDeclaration
		s1, nettyKw, err := cst.KeywordOf("nettype")(s)
		if err != nil {
			return s, zero, err
		}
		s2, alias, err := cst.Identifier()(s1)
		if err != nil {
			return s, zero, err
		}
		s3, name, err := cst.Identifier()(s2)
		if err != nil {
			return s, zero, err
		}
		s4, semi, err := cst.SymbolOf(";")(s3)
		if err != nil {
			return s, zero, err
		}
		return s4, NetTypeDeclaration{Kind: NetTypeAlias, NetTy: nettyKw, Alias: alias, Name: name, Semi: semi}, nil
	}
}

// NetTypeDeclarationP is `net_type_declaration`. data_type's reference
// alternative is a bare identifier, so `nettype X Y ;` is token-for-token
// identical under both alternatives; the alias form is tried first so that
// shape resolves to it, and the data_type form only wins when something
// distinguishes it: a recognized primitive keyword in type position, or a
// trailing `with` clause that the alias form's bare `;` can't consume.
func NetTypeDeclarationP() cst.Parser[NetTypeDeclaration] {
	return cst.Alt(netTypeAliasForm(), netTypeDataTypeForm())
}
