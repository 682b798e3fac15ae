package sv

import cst "github.com/erihsu/sv-parser-go"

// ItemKind tags which alternative of Item matched. source_text's real
// `description` production spans dozens of alternatives (module/interface/
// package/program/... declarations); Item samples the ones this package
// actually transcribes, standing in for the rest.
type ItemKind int

const (
	ItemNetTypeDecl ItemKind = iota
	ItemNetDecl
	ItemDataDecl
	ItemModuleInst
	ItemConditional
)

// Item is one top-level construct recognized by SourceTextP.
type Item struct {
	Kind       ItemKind
	NetType    *NetTypeDeclaration
	Net        *NetDeclaration
	Data       *DataDeclaration
	ModuleInst *ModuleInstantiation
	Cond       *ConditionalStatement
}

func (n Item) Visit(emit func(cst.Locate, cst.Trivia)) {
	switch n.Kind {
	case ItemNetTypeDecl:
		n.NetType.Visit(emit)
	case ItemNetDecl:
		n.Net.Visit(emit)
	case ItemDataDecl:
		n.Data.Visit(emit)
	case ItemModuleInst:
		n.ModuleInst.Visit(emit)
	case ItemConditional:
		n.Cond.Visit(emit)
	}
}

// ItemP tries each illustrative top-level production in turn. Net
// declarations are tried before module instantiation: both start with an
// identifier-or-keyword, and a net-type keyword is never a valid module
// name, so the ordering costs nothing and avoids a redundant attempt.
func ItemP() cst.Parser[Item] {
	return cst.Alt(
		cst.Map(NetTypeDeclarationP(), func(n NetTypeDeclaration) Item {
			return Item{Kind: ItemNetTypeDecl, NetType: &n}
		}),
		cst.Map(NetDeclarationP(), func(n NetDeclaration) Item {
			return Item{Kind: ItemNetDecl, Net: &n}
		}),
		cst.Map(ModuleInstantiationP(), func(n ModuleInstantiation) Item {
			return Item{Kind: ItemModuleInst, ModuleInst: &n}
		}),
		cst.Map(ConditionalStatementP(), func(n ConditionalStatement) Item {
			return Item{Kind: ItemConditional, Cond: &n}
		}),
		cst.Map(DataDeclarationP(), func(n DataDeclaration) Item {
			return Item{Kind: ItemDataDecl, Data: &n}
		}),
	)
}

// SourceText is the root node of a successful whole-file parse: zero or
// more top-level items. The real `source_text` also carries an optional
// leading `timeunits_declaration`; this illustrative slice omits it.
type SourceText struct {
	Items []Item
}

func (n SourceText) Visit(emit func(cst.Locate, cst.Trivia)) {
	for _, it := range n.Items {
		it.Visit(emit)
	}
}

// SourceTextP is `source_text`, the main parsing entry point: zero or
// more Items.
func SourceTextP() cst.Parser[SourceText] {
	return cst.Map(cst.Many0(ItemP()), func(items []Item) SourceText { return SourceText{Items: items} })
}

// ParseSourceText parses a full compilation unit. It is a thin wrapper
// around cst.ParseSourceText(text, SourceTextP()), the one entry point
// per grammar start symbol, specialized to this package's
// illustrative source_text slice.
func ParseSourceText(text string) (cst.Result[SourceText], error) {
	return cst.ParseSourceText(text, SourceTextP())
}
