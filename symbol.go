package cst

import "strings"

// operatorTable lists every punctuation/operator lexeme the grammar
// productions in cst/sv recognize, longest first, so that a maximal-munch
// scan always prefers the longer operator: symbol("<") must
// never succeed on input "<=", because "<=" is itself in this table and
// sorts before "<".
var operatorTable = sortedByLengthDesc([]string{
	"<<<=", ">>>=",
	"<<=", ">>=", "<<<", ">>>", "===", "!==", "*::*",
	"==", "!=", "<=", ">=", "&&", "||", "->", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>",
	"::", "&&&", "'sd", "'sb", "'so", "'sh",
	"+", "-", "*", "/", "%", "&", "|", "^", "~", "!",
	"<", ">", "=", ";", ":", ",", ".", "(", ")", "{", "}", "[", "]",
	"#", "@", "$", "?", "'d", "'b", "'o", "'h", "'0", "'1", "'x", "'z",
})

func sortedByLengthDesc(ops []string) []string {
	out := append([]string(nil), ops...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j]) > len(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// maximalMunch finds the longest operator in operatorTable that prefixes
// rem.
func maximalMunch(rem string) (string, bool) {
	for _, op := range operatorTable {
		if strings.HasPrefix(rem, op) {
			return op, true
		}
	}
	return "", false
}

func rawSymbol(lit string) Parser[string] {
	return func(s Span) (Span, string, error) {
		rem := s.Remaining()
		if !strings.HasPrefix(rem, lit) {
			return s, "", mismatch(s, lit)
		}
		if op, ok := maximalMunch(rem); ok && op != lit && strings.HasPrefix(op, lit) {
			return s, "", mismatch(s, lit)
		}
		return s.advance(len(lit)), lit, nil
	}
}

// symbol recognizes lit and rejects if doing so would swallow a prefix of
// a longer recognized operator.
func symbol(lit string) Parser[Symbol] {
	return func(s Span) (Span, Symbol, error) {
		s1, _, err := rawSymbol(lit)(s)
		if err != nil {
			return s, Symbol{}, err
		}
		loc := s1.locate(s)
		s2, trivia, err := Many0(trivium)(s1)
		if err != nil {
			return s, Symbol{}, err
		}
		return s2, Symbol{Locate: loc, Trivia: trivia}, nil
	}
}

// SymbolOf exposes symbol to grammar packages outside cst.
func SymbolOf(lit string) Parser[Symbol] { return symbol(lit) }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9') || b == '$'
}

// reservedWords is the keyword set recognized regardless of language
// level; the per-level exclusion the LRM describes (e.g. `always_comb` is
// not reserved pre-2009) is not resolved by the core: keyword, KeywordOf
// and Identifier always consult this one set, and there is no way to pass
// a different set for another language level.
var reservedWords = buildReservedWords([]string{
	"accept_on", "alias", "always", "always_comb", "always_ff", "always_latch",
	"and", "assert", "assign", "assume", "automatic", "before", "begin", "bind",
	"bins", "binsof", "bit", "break", "buf", "bufif0", "bufif1", "byte", "case",
	"casex", "casez", "cell", "chandle", "checker", "class", "clocking", "cmos",
	"config", "const", "constraint", "context", "continue", "cover",
	"covergroup", "coverpoint", "cross", "deassign", "default", "defparam",
	"design", "disable", "dist", "do", "edge", "else", "end", "endcase",
	"endchecker", "endclass", "endclocking", "endconfig", "endfunction",
	"endgenerate", "endgroup", "endinterface", "endmodule", "endpackage",
	"endprimitive", "endprogram", "endproperty", "endspecify", "endsequence",
	"endtable", "endtask", "enum", "event", "eventually", "export", "extends",
	"extern", "final", "first_match", "for", "force", "foreach", "forever",
	"fork", "forkjoin", "function", "generate", "genvar", "global", "highz0",
	"highz1", "if", "iff", "ifnone", "ignore_bins", "illegal_bins",
	"implements", "implies", "import", "incdir", "include", "initial",
	"inout", "input", "inside", "instance", "int", "integer", "interconnect",
	"interface", "intersect", "join", "join_any", "join_none", "large",
	"let", "liblist", "library", "local", "localparam", "logic",
	"longint", "macromodule", "matches", "medium", "modport", "module",
	"nand", "negedge", "nettype", "new", "nexttime", "nmos", "nor",
	"noshowcancelled", "not", "notif0", "notif1", "null", "or", "output",
	"package", "packed", "parameter", "pmos", "posedge", "primitive",
	"priority", "program", "property", "protected", "pull0", "pull1",
	"pulldown", "pullup", "pulsestyle_ondetect", "pulsestyle_onevent",
	"pure", "rand", "randc", "randcase", "randsequence", "rcmos", "real",
	"realtime", "ref", "reg", "reject_on", "release", "repeat", "restrict",
	"return", "rnmos", "rpmos", "rtran", "rtranif0", "rtranif1", "s_always",
	"s_eventually", "s_nexttime", "s_until", "s_until_with", "scalared",
	"sequence", "shortint", "shortreal", "showcancelled", "signed", "small",
	"soft", "solve", "specify", "specparam", "static", "string", "strong",
	"strong0", "strong1", "struct", "super", "supply0", "supply1",
	"sync_accept_on", "sync_reject_on", "table", "tagged", "task", "this",
	"throughout", "time", "timeprecision", "timeunit", "tran", "tranif0",
	"tranif1", "tri", "tri0", "tri1", "triand", "trior", "trireg", "type",
	"typedef", "union", "unique", "unique0", "unsigned", "until",
	"until_with", "untyped", "use", "uwire", "var", "vectored", "virtual",
	"void", "wait", "wait_order", "wand", "weak", "weak0", "weak1", "while",
	"wildcard", "wire", "with", "within", "wor", "xnor", "xor",
})

func buildReservedWords(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// keyword recognizes lit only when lit is a reserved word and is not
// followed by an identifier-continuation character.
func keyword(lit string) Parser[Keyword] {
	return func(s Span) (Span, Keyword, error) {
		if _, ok := reservedWords[lit]; !ok {
			return s, Keyword{}, mismatch(s, lit)
		}
		rem := s.Remaining()
		if !strings.HasPrefix(rem, lit) {
			return s, Keyword{}, mismatch(s, lit)
		}
		if len(rem) > len(lit) && isIdentCont(rem[len(lit)]) {
			return s, Keyword{}, mismatch(s, lit)
		}
		s1 := s.advance(len(lit))
		loc := s1.locate(s)
		s2, trivia, err := Many0(trivium)(s1)
		if err != nil {
			return s, Keyword{}, err
		}
		return s2, Keyword{Locate: loc, Trivia: trivia}, nil
	}
}

// KeywordOf exposes keyword to grammar packages outside cst.
func KeywordOf(lit string) Parser[Keyword] { return keyword(lit) }

// identifier recognizes a SystemVerilog simple identifier: it first tries
// the reserved-word set and fails if the lexeme matches one, so `always`
// never parses as an Ident.
func identifier() Parser[Ident] {
	return func(s Span) (Span, Ident, error) {
		rem := s.Remaining()
		if len(rem) == 0 || !isIdentStart(rem[0]) {
			return s, Ident{}, mismatch(s, "identifier")
		}
		n := 1
		for n < len(rem) && isIdentCont(rem[n]) {
			n++
		}
		if _, reserved := reservedWords[rem[:n]]; reserved {
			return s, Ident{}, mismatch(s, "identifier (not a keyword)")
		}
		s1 := s.advance(n)
		loc := s1.locate(s)
		s2, trivia, err := Many0(trivium)(s1)
		if err != nil {
			return s, Ident{}, err
		}
		return s2, Ident{Locate: loc, Trivia: trivia}, nil
	}
}

// Identifier exposes identifier to grammar packages outside cst.
func Identifier() Parser[Ident] { return identifier() }
