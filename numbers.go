package cst

// Numeric micro-grammar, transcribed from the LRM's number/
// integral_number/real_number productions. Every token-level piece is
// recognized through ws so trivia attaches the way the rest of the
// lexical layer does.

// NumberKind tags which alternative of Number matched.
type NumberKind int

const (
	NumberIntegral NumberKind = iota
	NumberReal
)

// Number is `real_number | integral_number`.
type Number struct {
	Kind     NumberKind
	Integral *IntegralNumber
	Real     *RealNumber
}

func (n Number) Visit(emit func(Locate, Trivia)) {
	switch n.Kind {
	case NumberIntegral:
		n.Integral.Visit(emit)
	case NumberReal:
		n.Real.Visit(emit)
	}
}

// IntegralNumberKind tags which base matched.
type IntegralNumberKind int

const (
	IntegralDecimal IntegralNumberKind = iota
	IntegralOctal
	IntegralBinary
	IntegralHex
)

// IntegralNumber is `decimal_number | octal_number | binary_number |
// hex_number`. IntegralNumberP tries octal/binary/hex before decimal so
// that a based literal is never mistaken for an unsized decimal with a
// stray base suffix.
type IntegralNumber struct {
	Kind    IntegralNumberKind
	Decimal *DecimalNumber
	Octal   *OctalNumber
	Binary  *BinaryNumber
	Hex     *HexNumber
}

func (n IntegralNumber) Visit(emit func(Locate, Trivia)) {
	switch n.Kind {
	case IntegralDecimal:
		n.Decimal.Visit(emit)
	case IntegralOctal:
		n.Octal.Visit(emit)
	case IntegralBinary:
		n.Binary.Visit(emit)
	case IntegralHex:
		n.Hex.Visit(emit)
	}
}

// DecimalNumberKind tags which alternative of DecimalNumber matched.
type DecimalNumberKind int

const (
	DecimalUnsigned DecimalNumberKind = iota
	DecimalBaseUnsigned
	DecimalBaseX
	DecimalBaseZ
)

// DecimalNumber is `unsigned_number | [size] decimal_base (unsigned_number
// | x_number | z_number)`.
type DecimalNumber struct {
	Kind      DecimalNumberKind
	Unsigned  *UnsignedNumber
	BaseUns   *DecimalNumberBase
	BaseX     *DecimalNumberBase
	BaseZ     *DecimalNumberBase
}

func (n DecimalNumber) Visit(emit func(Locate, Trivia)) {
	switch n.Kind {
	case DecimalUnsigned:
		n.Unsigned.Visit(emit)
	case DecimalBaseUnsigned:
		n.BaseUns.Visit(emit)
	case DecimalBaseX:
		n.BaseX.Visit(emit)
	case DecimalBaseZ:
		n.BaseZ.Visit(emit)
	}
}

// DecimalNumberBase is `[size] decimal_base value`, shared shape for the
// unsigned/x/z variants of a based decimal literal.
type DecimalNumberBase struct {
	Size  Option[Size]
	Base  DecimalBase
	Value Node
}

func (n DecimalNumberBase) Visit(emit func(Locate, Trivia)) {
	visitField(n.Size, emit)
	n.Base.Visit(emit)
	n.Value.Visit(emit)
}

// BinaryNumber is `[size] binary_base binary_value`.
type BinaryNumber struct {
	Size  Option[Size]
	Base  BinaryBase
	Value BinaryValue
}

func (n BinaryNumber) Visit(emit func(Locate, Trivia)) {
	visitField(n.Size, emit)
	n.Base.Visit(emit)
	n.Value.Visit(emit)
}

// OctalNumber is `[size] octal_base octal_value`.
type OctalNumber struct {
	Size  Option[Size]
	Base  OctalBase
	Value OctalValue
}

func (n OctalNumber) Visit(emit func(Locate, Trivia)) {
	visitField(n.Size, emit)
	n.Base.Visit(emit)
	n.Value.Visit(emit)
}

// HexNumber is `[size] hex_base hex_value`.
type HexNumber struct {
	Size  Option[Size]
	Base  HexBase
	Value HexValue
}

func (n HexNumber) Visit(emit func(Locate, Trivia)) {
	visitField(n.Size, emit)
	n.Base.Visit(emit)
	n.Value.Visit(emit)
}

// Sign is `+ | -`.
type Sign struct {
	Plus  Option[Symbol]
	Minus Option[Symbol]
}

func (n Sign) Visit(emit func(Locate, Trivia)) {
	visitField(n.Plus, emit)
	visitField(n.Minus, emit)
}

// Size is `non_zero_unsigned_number`.
type Size struct {
	Value NonZeroUnsignedNumber
}

func (n Size) Visit(emit func(Locate, Trivia)) { n.Value.Visit(emit) }

// NonZeroUnsignedNumber is a decimal digit run not starting with '0',
// underscores allowed between digits.
type NonZeroUnsignedNumber struct {
	Locate Locate
	Trivia Trivia
}

func (n NonZeroUnsignedNumber) Visit(emit func(Locate, Trivia)) { emit(n.Locate, n.Trivia) }

// RealNumberKind tags which alternative of RealNumber matched.
type RealNumberKind int

const (
	RealFixedPoint RealNumberKind = iota
	RealFloating
)

// RealNumber is `fixed_point_number | real_number_floating`. RealNumberP
// tries the floating form first, since it is the longer match whenever an
// exponent is present.
type RealNumber struct {
	Kind       RealNumberKind
	FixedPoint *FixedPointNumber
	Floating   *RealNumberFloating
}

func (n RealNumber) Visit(emit func(Locate, Trivia)) {
	switch n.Kind {
	case RealFixedPoint:
		n.FixedPoint.Visit(emit)
	case RealFloating:
		n.Floating.Visit(emit)
	}
}

// RealNumberFloating is `unsigned_number [. unsigned_number] exp [sign]
// unsigned_number`.
type RealNumberFloating struct {
	Integer  UnsignedNumber
	Fraction Option[Pair2[Symbol, UnsignedNumber]]
	Exp      Exp
	Sign     Option[Sign]
	Exponent UnsignedNumber
}

func (n RealNumberFloating) Visit(emit func(Locate, Trivia)) {
	n.Integer.Visit(emit)
	visitField(n.Fraction, emit)
	n.Exp.Visit(emit)
	visitField(n.Sign, emit)
	n.Exponent.Visit(emit)
}

// FixedPointNumber is `unsigned_number . unsigned_number`.
type FixedPointNumber struct {
	Integer  UnsignedNumber
	Dot      Symbol
	Fraction UnsignedNumber
}

func (n FixedPointNumber) Visit(emit func(Locate, Trivia)) {
	n.Integer.Visit(emit)
	n.Dot.Visit(emit)
	n.Fraction.Visit(emit)
}

// Exp is `e | E`.
type Exp struct {
	Value Symbol
}

func (n Exp) Visit(emit func(Locate, Trivia)) { n.Value.Visit(emit) }

// UnsignedNumber, BinaryValue, OctalValue, HexValue, DecimalBase,
// BinaryBase, OctalBase, HexBase, XNumber and ZNumber all share the same
// shape: a Locate over the recognized digit run plus trailing trivia.
type UnsignedNumber struct {
	Locate Locate
	Trivia Trivia
}

func (n UnsignedNumber) Visit(emit func(Locate, Trivia)) { emit(n.Locate, n.Trivia) }

type BinaryValue struct {
	Locate Locate
	Trivia Trivia
}

func (n BinaryValue) Visit(emit func(Locate, Trivia)) { emit(n.Locate, n.Trivia) }

type OctalValue struct {
	Locate Locate
	Trivia Trivia
}

func (n OctalValue) Visit(emit func(Locate, Trivia)) { emit(n.Locate, n.Trivia) }

type HexValue struct {
	Locate Locate
	Trivia Trivia
}

func (n HexValue) Visit(emit func(Locate, Trivia)) { emit(n.Locate, n.Trivia) }

type DecimalBase struct {
	Locate Locate
	Trivia Trivia
}

func (n DecimalBase) Visit(emit func(Locate, Trivia)) { emit(n.Locate, n.Trivia) }

type BinaryBase struct {
	Locate Locate
	Trivia Trivia
}

func (n BinaryBase) Visit(emit func(Locate, Trivia)) { emit(n.Locate, n.Trivia) }

type OctalBase struct {
	Locate Locate
	Trivia Trivia
}

func (n OctalBase) Visit(emit func(Locate, Trivia)) { emit(n.Locate, n.Trivia) }

type HexBase struct {
	Locate Locate
	Trivia Trivia
}

func (n HexBase) Visit(emit func(Locate, Trivia)) { emit(n.Locate, n.Trivia) }

type XNumber struct {
	Locate Locate
	Trivia Trivia
}

func (n XNumber) Visit(emit func(Locate, Trivia)) { emit(n.Locate, n.Trivia) }

type ZNumber struct {
	Locate Locate
	Trivia Trivia
}

func (n ZNumber) Visit(emit func(Locate, Trivia)) { emit(n.Locate, n.Trivia) }

// UnbasedUnsizedLiteral is `'0 | '1 | 'x | 'z`.
type UnbasedUnsizedLiteral struct {
	Value Symbol
}

func (n UnbasedUnsizedLiteral) Visit(emit func(Locate, Trivia)) { n.Value.Visit(emit) }

// --- matchers ---------------------------------------------------------

func digitRun(first Parser[string], rest Parser[string]) Parser[Lexeme] {
	return func(s Span) (Span, Lexeme, error) {
		s1, head, err := first(s)
		if err != nil {
			return s, Lexeme{}, err
		}
		acc := Lexeme{Start: s, Text: head}
		item := Alt(Tag("_"), rest)
		s2, acc, err := FoldMany0(Lex(item), acc, func(a Lexeme, b Lexeme) Lexeme {
			out, ok := Concat(a, b)
			if !ok {
				return a
			}
			return out
		})(s1)
		if err != nil {
			return s, Lexeme{}, err
		}
		return s2, acc, nil
	}
}

func lexToken[T any](inner Parser[Lexeme], build func(Locate, Trivia) T) Parser[T] {
	return func(s Span) (Span, T, error) {
		var zero T
		s1, _, err := inner(s)
		if err != nil {
			return s, zero, err
		}
		loc := s1.locate(s)
		s2, trivia, err := Many0(trivium)(s1)
		if err != nil {
			return s, zero, err
		}
		return s2, build(loc, trivia), nil
	}
}

// UnsignedNumberP is `unsigned_number`.
func UnsignedNumberP() Parser[UnsignedNumber] {
	return lexToken(digitRun(Digit1(), Digit1()), func(l Locate, t Trivia) UnsignedNumber {
		return UnsignedNumber{Locate: l, Trivia: t}
	})
}

// NonZeroUnsignedNumberP is `non_zero_unsigned_number`.
func NonZeroUnsignedNumberP() Parser[NonZeroUnsignedNumber] {
	return lexToken(digitRun(IsA("123456789"), Digit1()), func(l Locate, t Trivia) NonZeroUnsignedNumber {
		return NonZeroUnsignedNumber{Locate: l, Trivia: t}
	})
}

func xzValue(charset string) Parser[Lexeme] {
	return digitRun(IsA(charset), IsA(charset))
}

// BinaryValueP is `binary_value`.
func BinaryValueP() Parser[BinaryValue] {
	return lexToken(xzValue("01xXzZ?"), func(l Locate, t Trivia) BinaryValue {
		return BinaryValue{Locate: l, Trivia: t}
	})
}

// OctalValueP is `octal_value`.
func OctalValueP() Parser[OctalValue] {
	return lexToken(xzValue("01234567xXzZ?"), func(l Locate, t Trivia) OctalValue {
		return OctalValue{Locate: l, Trivia: t}
	})
}

// HexValueP is `hex_value`.
func HexValueP() Parser[HexValue] {
	return lexToken(xzValue("0123456789abcdefABCDEFxXzZ?"), func(l Locate, t Trivia) HexValue {
		return HexValue{Locate: l, Trivia: t}
	})
}

func baseToken[T any](tag Parser[string], build func(Locate, Trivia) T) Parser[T] {
	return lexToken(Lex(tag), build)
}

// DecimalBaseP is `'d | 'sd`, case-insensitive.
func DecimalBaseP() Parser[DecimalBase] {
	return baseToken(Alt(TagNoCase("'sd"), TagNoCase("'d")), func(l Locate, t Trivia) DecimalBase {
		return DecimalBase{Locate: l, Trivia: t}
	})
}

// BinaryBaseP is `'b | 'sb`, case-insensitive.
func BinaryBaseP() Parser[BinaryBase] {
	return baseToken(Alt(TagNoCase("'sb"), TagNoCase("'b")), func(l Locate, t Trivia) BinaryBase {
		return BinaryBase{Locate: l, Trivia: t}
	})
}

// OctalBaseP is `'o | 'so`, case-insensitive.
func OctalBaseP() Parser[OctalBase] {
	return baseToken(Alt(TagNoCase("'so"), TagNoCase("'o")), func(l Locate, t Trivia) OctalBase {
		return OctalBase{Locate: l, Trivia: t}
	})
}

// HexBaseP is `'h | 'sh`, case-insensitive.
func HexBaseP() Parser[HexBase] {
	return baseToken(Alt(TagNoCase("'sh"), TagNoCase("'h")), func(l Locate, t Trivia) HexBase {
		return HexBase{Locate: l, Trivia: t}
	})
}

// XNumberP is `x_number`: an 'x'/'X' possibly followed by underscores.
func XNumberP() Parser[XNumber] {
	head := TagNoCase("x")
	return lexToken(digitRun(head, IsA("_")), func(l Locate, t Trivia) XNumber {
		return XNumber{Locate: l, Trivia: t}
	})
}

// ZNumberP is `z_number`: a 'z'/'Z'/'?' possibly followed by underscores.
func ZNumberP() Parser[ZNumber] {
	head := Alt(TagNoCase("z"), Tag("?"))
	return lexToken(digitRun(head, IsA("_")), func(l Locate, t Trivia) ZNumber {
		return ZNumber{Locate: l, Trivia: t}
	})
}

// SizeP is `size`.
func SizeP() Parser[Size] {
	return Map(NonZeroUnsignedNumberP(), func(n NonZeroUnsignedNumber) Size { return Size{Value: n} })
}

// SignP is `+ | -`.
func SignP() Parser[Sign] {
	return Alt(
		Map(symbol("+"), func(s Symbol) Sign { return Sign{Plus: Some(s)} }),
		Map(symbol("-"), func(s Symbol) Sign { return Sign{Minus: Some(s)} }),
	)
}

func decimalNumberBase(base Parser[DecimalBase], value Parser[Node]) Parser[DecimalNumberBase] {
	return func(s Span) (Span, DecimalNumberBase, error) {
		var zero DecimalNumberBase
		s1, size, err := Opt(SizeP())(s)
		if err != nil {
			return s, zero, err
		}
		s2, b, err := base(s1)
		if err != nil {
			return s, zero, err
		}
		s3, v, err := value(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, DecimalNumberBase{Size: size, Base: b, Value: v}, nil
	}
}

// DecimalNumberP is `decimal_number`. The based values go through the same
// token recognizers as everywhere else, so trailing trivia attaches to the
// value digits like everywhere else.
func DecimalNumberP() Parser[DecimalNumber] {
	baseUnsigned := decimalNumberBase(DecimalBaseP(), Map(UnsignedNumberP(), func(u UnsignedNumber) Node { return u }))
	baseX := decimalNumberBase(DecimalBaseP(), Map(XNumberP(), func(x XNumber) Node { return x }))
	baseZ := decimalNumberBase(DecimalBaseP(), Map(ZNumberP(), func(z ZNumber) Node { return z }))

	return Alt(
		Map(baseUnsigned, func(b DecimalNumberBase) DecimalNumber {
			return DecimalNumber{Kind: DecimalBaseUnsigned, BaseUns: &b}
		}),
		Map(baseX, func(b DecimalNumberBase) DecimalNumber {
			return DecimalNumber{Kind: DecimalBaseX, BaseX: &b}
		}),
		Map(baseZ, func(b DecimalNumberBase) DecimalNumber {
			return DecimalNumber{Kind: DecimalBaseZ, BaseZ: &b}
		}),
		Map(UnsignedNumberP(), func(u UnsignedNumber) DecimalNumber {
			return DecimalNumber{Kind: DecimalUnsigned, Unsigned: &u}
		}),
	)
}

// BinaryNumberP is `binary_number`.
func BinaryNumberP() Parser[BinaryNumber] {
	return func(s Span) (Span, BinaryNumber, error) {
		var zero BinaryNumber
		s1, size, err := Opt(SizeP())(s)
		if err != nil {
			return s, zero, err
		}
		s2, base, err := BinaryBaseP()(s1)
		if err != nil {
			return s, zero, err
		}
		s3, value, err := BinaryValueP()(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, BinaryNumber{Size: size, Base: base, Value: value}, nil
	}
}

// OctalNumberP is `octal_number`.
func OctalNumberP() Parser[OctalNumber] {
	return func(s Span) (Span, OctalNumber, error) {
		var zero OctalNumber
		s1, size, err := Opt(SizeP())(s)
		if err != nil {
			return s, zero, err
		}
		s2, base, err := OctalBaseP()(s1)
		if err != nil {
			return s, zero, err
		}
		s3, value, err := OctalValueP()(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, OctalNumber{Size: size, Base: base, Value: value}, nil
	}
}

// HexNumberP is `hex_number`.
func HexNumberP() Parser[HexNumber] {
	return func(s Span) (Span, HexNumber, error) {
		var zero HexNumber
		s1, size, err := Opt(SizeP())(s)
		if err != nil {
			return s, zero, err
		}
		s2, base, err := HexBaseP()(s1)
		if err != nil {
			return s, zero, err
		}
		s3, value, err := HexValueP()(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, HexNumber{Size: size, Base: base, Value: value}, nil
	}
}

// IntegralNumberP is `integral_number`; octal/binary/hex are tried before
// decimal so a based literal's apostrophe-prefixed base is never mistaken
// for part of an unsigned decimal run.
func IntegralNumberP() Parser[IntegralNumber] {
	return Alt(
		Map(OctalNumberP(), func(n OctalNumber) IntegralNumber { return IntegralNumber{Kind: IntegralOctal, Octal: &n} }),
		Map(BinaryNumberP(), func(n BinaryNumber) IntegralNumber { return IntegralNumber{Kind: IntegralBinary, Binary: &n} }),
		Map(HexNumberP(), func(n HexNumber) IntegralNumber { return IntegralNumber{Kind: IntegralHex, Hex: &n} }),
		Map(DecimalNumberP(), func(n DecimalNumber) IntegralNumber { return IntegralNumber{Kind: IntegralDecimal, Decimal: &n} }),
	)
}

// ExpP is `e | E`.
func ExpP() Parser[Exp] {
	return Map(Alt(symbol("e"), symbol("E")), func(s Symbol) Exp { return Exp{Value: s} })
}

// FixedPointNumberP is `unsigned_number . unsigned_number`. Edge-case
// policy: a fixed-point literal must have digits on both sides of
// the dot, so ".12" and "9." are not valid reals; this falls out for free
// because UnsignedNumberP requires at least one digit on each side.
func FixedPointNumberP() Parser[FixedPointNumber] {
	return func(s Span) (Span, FixedPointNumber, error) {
		var zero FixedPointNumber
		s1, integer, err := UnsignedNumberP()(s)
		if err != nil {
			return s, zero, err
		}
		s2, dot, err := symbol(".")(s1)
		if err != nil {
			return s, zero, err
		}
		s3, fraction, err := UnsignedNumberP()(s2)
		if err != nil {
			return s, zero, err
		}
		return s3, FixedPointNumber{Integer: integer, Dot: dot, Fraction: fraction}, nil
	}
}

// RealNumberFloatingP is `unsigned_number [. unsigned_number] exp [sign]
// unsigned_number`.
func RealNumberFloatingP() Parser[RealNumberFloating] {
	return func(s Span) (Span, RealNumberFloating, error) {
		var zero RealNumberFloating
		s1, integer, err := UnsignedNumberP()(s)
		if err != nil {
			return s, zero, err
		}
		s2, frac, err := Opt(Pair(symbol("."), UnsignedNumberP()))(s1)
		if err != nil {
			return s, zero, err
		}
		s3, exp, err := ExpP()(s2)
		if err != nil {
			return s, zero, err
		}
		s4, sign, err := Opt(SignP())(s3)
		if err != nil {
			return s, zero, err
		}
		s5, exponent, err := UnsignedNumberP()(s4)
		if err != nil {
			return s, zero, err
		}
		return s5, RealNumberFloating{Integer: integer, Fraction: frac, Exp: exp, Sign: sign, Exponent: exponent}, nil
	}
}

// RealNumberP is `real_number`. The floating form is tried first since it
// is the longer match whenever an exponent follows the fraction.
func RealNumberP() Parser[RealNumber] {
	return Alt(
		Map(RealNumberFloatingP(), func(f RealNumberFloating) RealNumber {
			return RealNumber{Kind: RealFloating, Floating: &f}
		}),
		Map(FixedPointNumberP(), func(f FixedPointNumber) RealNumber {
			return RealNumber{Kind: RealFixedPoint, FixedPoint: &f}
		}),
	)
}

// NumberP is `number`. Real is tried first: "9." is rejected by
// FixedPointNumberP (no trailing digits), so decimal "9" then wins through
// IntegralNumberP without ambiguity.
func NumberP() Parser[Number] {
	return Alt(
		Map(RealNumberP(), func(r RealNumber) Number { return Number{Kind: NumberReal, Real: &r} }),
		Map(IntegralNumberP(), func(i IntegralNumber) Number { return Number{Kind: NumberIntegral, Integral: &i} }),
	)
}

// UnbasedUnsizedLiteralP is `'0 | '1 | 'x | 'z`.
func UnbasedUnsizedLiteralP() Parser[UnbasedUnsizedLiteral] {
	return Map(Alt(symbol("'0"), symbol("'1"), symbol("'z"), symbol("'x")),
		func(s Symbol) UnbasedUnsizedLiteral { return UnbasedUnsizedLiteral{Value: s} })
}
