package sv

import cst "github.com/erihsu/sv-parser-go"

var netTypeKeywords = []string{
	"supply0", "supply1", "tri", "triand", "trior", "trireg", "tri0", "tri1",
	"uwire", "wire", "wand", "wor",
}

var chargeStrengthKeywords = []string{"small", "medium", "large"}
var driveStrength0Keywords = []string{"supply0", "strong0", "pull0", "weak0", "highz0"}
var driveStrength1Keywords = []string{"supply1", "strong1", "pull1", "weak1", "highz1"}

// ChargeStrength is `( small | medium | large )`, e.g. the "(large)" in
// "trireg (large) logic #(0,0,0) cap1;".
type ChargeStrength struct {
	Level cst.Paren[cst.Keyword]
}

func (n ChargeStrength) Visit(emit func(cst.Locate, cst.Trivia)) { n.Level.Visit(emit) }

func chargeStrengthP() cst.Parser[ChargeStrength] {
	alts := make([]cst.Parser[cst.Keyword], len(chargeStrengthKeywords))
	for i, kw := range chargeStrengthKeywords {
		alts[i] = cst.KeywordOf(kw)
	}
	return cst.Map(cst.ParenOf(cst.Alt(alts...)), func(p cst.Paren[cst.Keyword]) ChargeStrength {
		return ChargeStrength{Level: p}
	})
}

// DriveStrength is `( strength0 , strength1 | strength1 , strength0 )`: two
// comma-separated strength keywords, in either order: the LRM lists both
// orderings as equally valid, so First/Second here carry whichever strength
// the source wrote first rather than a fixed strength0/strength1 slot.
type DriveStrength struct {
	Open   cst.Symbol
	First  cst.Keyword
	Comma  cst.Symbol
	Second cst.Keyword
	Close  cst.Symbol
}

func (n DriveStrength) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.Open.Visit(emit)
	n.First.Visit(emit)
	n.Comma.Visit(emit)
	n.Second.Visit(emit)
	n.Close.Visit(emit)
}

func driveStrengthP() cst.Parser[DriveStrength] {
	alts0 := make([]cst.Parser[cst.Keyword], len(driveStrength0Keywords))
	for i, kw := range driveStrength0Keywords {
		alts0[i] = cst.KeywordOf(kw)
	}
	alts1 := make([]cst.Parser[cst.Keyword], len(driveStrength1Keywords))
	for i, kw := range driveStrength1Keywords {
		alts1[i] = cst.KeywordOf(kw)
	}
	either := cst.Alt(append(append([]cst.Parser[cst.Keyword]{}, alts0...), alts1...)...)

	return func(s cst.Span) (cst.Span, DriveStrength, error) {
		var zero DriveStrength
		s1, open, err := cst.SymbolOf("(")(s)
		if err != nil {
			return s, zero, err
		}
		s2, first, err := either(s1)
		if err != nil {
			return s, zero, err
		}
		s3, comma, err := cst.SymbolOf(",")(s2)
		if err != nil {
			return s, zero, err
		}
		s4, second, err := either(s3)
		if err != nil {
			return s, zero, err
		}
		s5, close, err := cst.SymbolOf(")")(s4)
		if err != nil {
			return s, zero, err
		}
		return s5, DriveStrength{Open: open, First: first, Comma: comma, Second: second, Close: close}, nil
	}
}

// StrengthKind tags which alternative of Strength matched.
type StrengthKind int

const (
	StrengthNone StrengthKind = iota
	StrengthCharge
	StrengthDrive
)

// Strength is `[ drive_strength | charge_strength ]`.
type Strength struct {
	Kind   StrengthKind
	Charge ChargeStrength
	Drive  DriveStrength
}

func (n Strength) Visit(emit func(cst.Locate, cst.Trivia)) {
	switch n.Kind {
	case StrengthCharge:
		n.Charge.Visit(emit)
	case StrengthDrive:
		n.Drive.Visit(emit)
	}
}

func strengthP() cst.Parser[Strength] {
	return cst.Alt(
		cst.Map(chargeStrengthP(), func(c ChargeStrength) Strength { return Strength{Kind: StrengthCharge, Charge: c} }),
		cst.Map(driveStrengthP(), func(d DriveStrength) Strength { return Strength{Kind: StrengthDrive, Drive: d} }),
	)
}

// Delay3 is `# delay_value | # ( mintypmax_expression [ , mintypmax_expression
// [ , mintypmax_expression ] ] )`. "#(0,0,0)" is the three-expression
// paren form.
type Delay3 struct {
	Hash cst.Symbol
	List cst.Option[cst.Paren[cst.ListOf[cst.Symbol, Expression]]]
	Flat cst.Option[Expression]
}

func (n Delay3) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.Hash.Visit(emit)
	cst.VisitField(n.List, emit)
	cst.VisitField(n.Flat, emit)
}

func delay3P() cst.Parser[Delay3] {
	return func(s cst.Span) (cst.Span, Delay3, error) {
		var zero Delay3
		s1, hash, err := cst.SymbolOf("#")(s)
		if err != nil {
			return s, zero, err
		}
		if s2, lst, err := cst.ParenOf(cst.List(cst.SymbolOf(","), ExpressionP()))(s1); err == nil {
			return s2, Delay3{Hash: hash, List: cst.Some(lst)}, nil
		} else if cst.IsFatal(err) {
			return s, zero, err
		}
		s3, flat, err := ExpressionP()(s1)
		if err != nil {
			return s, zero, err
		}
		return s3, Delay3{Hash: hash, Flat: cst.Some(flat)}, nil
	}
}

// NetDeclAssignment is `net_identifier [ = expression ]`; unpacked
// dimensions are out of scope for this illustrative slice.
type NetDeclAssignment struct {
	Name  cst.Ident
	Value cst.Option[cst.Pair2[cst.Symbol, Expression]]
}

func (n NetDeclAssignment) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.Name.Visit(emit)
	cst.VisitField(n.Value, emit)
}

func netDeclAssignmentP() cst.Parser[NetDeclAssignment] {
	return func(s cst.Span) (cst.Span, NetDeclAssignment, error) {
		var zero NetDeclAssignment
		s1, name, err := cst.Identifier()(s)
		if err != nil {
			return s, zero, err
		}
		s2, val, err := cst.Opt(cst.Pair(cst.SymbolOf("="), ExpressionP()))(s1)
		if err != nil {
			return s, zero, err
		}
		return s2, NetDeclAssignment{Name: name, Value: val}, nil
	}
}

// NetDeclaration is `net_declaration` (LRM A.2.1.3), restricted to the
// net_type-led alternative: `net_type [strength] [vectored|scalared]
// data_type_or_implicit [delay3] list_of_net_decl_assignments ;`.
// "trireg (large) logic #(0,0,0) cap1;" exercises every optional slot at
// once.
type NetDeclaration struct {
	NetTy       cst.Keyword
	Strength    cst.Option[Strength]
	VecScalared cst.Option[cst.Keyword]
	Type        cst.Option[DataType]
	Delay       cst.Option[Delay3]
	Assignments cst.ListOf[cst.Symbol, NetDeclAssignment]
	Semi        cst.Symbol
}

func (n NetDeclaration) Visit(emit func(cst.Locate, cst.Trivia)) {
	n.NetTy.Visit(emit)
	cst.VisitField(n.Strength, emit)
	cst.VisitField(n.VecScalared, emit)
	cst.VisitField(n.Type, emit)
	cst.VisitField(n.Delay, emit)
	n.Assignments.Visit(emit)
	n.Semi.Visit(emit)
}

// NetDeclarationP is `net_declaration`, tagged Ambiguous: the
// data_type_or_implicit slot is an `opt(type) name` shape.
// In `wire a;` the `a` is consistent with being a type reference until the
// assignment list comes up empty, so the slot goes through AmbiguousOpt
// rather than a plain Opt, since a greedy Opt would eat the first net name as a
// type and fail the whole declaration.
func NetDeclarationP() cst.Parser[NetDeclaration] {
	netTyAlts := make([]cst.Parser[cst.Keyword], len(netTypeKeywords))
	for i, kw := range netTypeKeywords {
		netTyAlts[i] = cst.KeywordOf(kw)
	}
	netTy := cst.Alt(netTyAlts...)
	vecScalared := cst.Alt(cst.KeywordOf("vectored"), cst.KeywordOf("scalared"))

	return func(s cst.Span) (cst.Span, NetDeclaration, error) {
		var zero NetDeclaration
		s1, nt, err := netTy(s)
		if err != nil {
			return s, zero, err
		}
		s2, strength, err := cst.Opt(strengthP())(s1)
		if err != nil {
			return s, zero, err
		}
		s3, vs, err := cst.Opt(vecScalared)(s2)
		if err != nil {
			return s, zero, err
		}
		rest := cst.AmbiguousOpt(DataTypeP(), func(dt cst.Option[DataType]) cst.Parser[NetDeclaration] {
			return func(s cst.Span) (cst.Span, NetDeclaration, error) {
				var zero NetDeclaration
				s4, delay, err := cst.Opt(delay3P())(s)
				if err != nil {
					return s, zero, err
				}
				s5, assigns, err := cst.List(cst.SymbolOf(","), netDeclAssignmentP())(s4)
				if err != nil {
					return s, zero, err
				}
				s6, semi, err := cst.SymbolOf(";")(s5)
				if err != nil {
					return s, zero, err
				}
				return s6, NetDeclaration{
					NetTy: nt, Strength: strength, VecScalared: vs, Type: dt, Delay: delay,
					Assignments: assigns, Semi: semi,
				}, nil
			}
		})
		return rest(s3)
	}
}
