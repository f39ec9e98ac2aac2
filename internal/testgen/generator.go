// Package testgen generates random but well-formed source files for fuzz
// and property tests.
package testgen

import (
	"fmt"
	"math/rand"
	"strings"
)

// RandomSource abstracts the source of randomness.
type RandomSource interface {
	Intn(n int) int
}

// RandSource wraps math/rand.
type RandSource struct {
	*rand.Rand
}

// ByteSource uses a byte slice as a source of randomness. Once the data
// runs out every choice is 0, which always picks the simplest production.
type ByteSource struct {
	data []byte
	pos  int
}

func (s *ByteSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

// Prelude declares the items generated bodies may refer to.
const Prelude = `struct Point { x: i32, y: i32 }
struct Wrap<T> { inner: T }
fn helper(n: i32) -> i32 { n }
fn pick<T>(a: T, b: T) -> T { a }
`

const (
	MaxDepth      = 4
	MaxStatements = 8
)

// Generator generates a main function full of let statements.
type Generator struct {
	src   RandomSource
	depth int
	vars  []string
}

func New(seed int64) *Generator {
	return &Generator{src: &RandSource{rand.New(rand.NewSource(seed))}}
}

func NewFromData(data []byte) *Generator {
	return &Generator{src: &ByteSource{data: data}}
}

// GenerateProgram returns Prelude followed by a generated main function.
func (g *Generator) GenerateProgram() string {
	var sb strings.Builder
	sb.WriteString(Prelude)
	sb.WriteString("fn main() {\n")
	count := g.src.Intn(MaxStatements) + 1
	for i := 0; i < count; i++ {
		sb.WriteString("    ")
		sb.WriteString(g.GenerateStatement())
		sb.WriteString(g.GenerateNoise())
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// GenerateNoise returns trivia that must not change the meaning of the
// program.
func (g *Generator) GenerateNoise() string {
	switch g.src.Intn(8) {
	case 5:
		return " // note"
	case 6:
		return " /* c */"
	case 7:
		return "\t"
	default:
		return ""
	}
}

// MaybeNewline returns "\n" with ~30% probability, otherwise " ".
func (g *Generator) MaybeNewline() string {
	if g.src.Intn(3) == 2 {
		return "\n"
	}
	return " "
}

func (g *Generator) GenerateStatement() string {
	switch choice := g.src.Intn(10); {
	case choice < 6:
		return g.GenerateLet()
	case choice < 7:
		return g.GenerateAnnotatedLet()
	case choice < 8:
		return g.GenerateTupleLet()
	case choice < 9:
		return fmt.Sprintf("helper(%s);", g.GenerateIntExpression())
	default:
		// A declaration with no initializer.
		name := g.GenerateIdentifier()
		g.vars = append(g.vars, name)
		return fmt.Sprintf("let %s;", name)
	}
}

func (g *Generator) GenerateLet() string {
	expr := g.GenerateExpression()
	name := g.GenerateIdentifier()
	g.vars = append(g.vars, name)
	mut := ""
	if g.src.Intn(4) == 3 {
		mut = "mut "
	}
	return fmt.Sprintf("let %s%s =%s%s;", mut, name, g.MaybeNewline(), expr)
}

func (g *Generator) GenerateAnnotatedLet() string {
	typ, expr := g.GenerateTyped()
	name := g.GenerateIdentifier()
	g.vars = append(g.vars, name)
	return fmt.Sprintf("let %s: %s = %s;", name, typ, expr)
}

func (g *Generator) GenerateTupleLet() string {
	left, right := g.GenerateExpression(), g.GenerateExpression()
	a, b := g.GenerateIdentifier(), g.GenerateIdentifier()
	g.vars = append(g.vars, a, b)
	return fmt.Sprintf("let (%s, %s) = (%s, %s);", a, b, left, right)
}

// GenerateIdentifier returns a name never used before in this program.
func (g *Generator) GenerateIdentifier() string {
	return fmt.Sprintf("v%d", len(g.vars))
}

// GenerateTyped returns a type and an expression of that type.
func (g *Generator) GenerateTyped() (string, string) {
	switch g.src.Intn(6) {
	case 0:
		return "i64", g.GenerateIntLiteral()
	case 1:
		return "Vec<u8>", "Vec::new()"
	case 2:
		return "Option<bool>", "None"
	case 3:
		return "f32", "1.5"
	case 4:
		return "Wrap<char>", "Wrap { inner: 'c' }"
	default:
		return "String", `String::from("s")`
	}
}

func (g *Generator) GenerateIntLiteral() string {
	return []string{"0", "1", "42", "7u8", "1_000i64", "3usize"}[g.src.Intn(6)]
}

func (g *Generator) GenerateIntExpression() string {
	if g.depth >= MaxDepth || g.src.Intn(3) != 0 {
		return g.GenerateIntLiteral()
	}
	g.depth++
	defer func() { g.depth-- }()
	switch g.src.Intn(3) {
	case 0:
		return fmt.Sprintf("%s + %s", g.GenerateIntExpression(), g.GenerateIntExpression())
	case 1:
		return fmt.Sprintf("helper(%s)", g.GenerateIntExpression())
	default:
		return fmt.Sprintf("Point { x: %s, y: 2 }.x", g.GenerateIntExpression())
	}
}

func (g *Generator) GenerateExpression() string {
	if g.depth >= MaxDepth {
		return g.GenerateAtom()
	}
	g.depth++
	defer func() { g.depth-- }()

	switch choice := g.src.Intn(20); {
	case choice < 5:
		return g.GenerateAtom()
	case choice < 6:
		return fmt.Sprintf("(%s, %s)", g.GenerateExpression(), g.GenerateExpression())
	case choice < 7:
		return fmt.Sprintf("[%s, %s]", g.GenerateIntExpression(), g.GenerateIntExpression())
	case choice < 8:
		return fmt.Sprintf("[%s; 3]", g.GenerateAtom())
	case choice < 9:
		return "&" + g.GenerateAtom()
	case choice < 10:
		return fmt.Sprintf("Some(%s)", g.GenerateExpression())
	case choice < 11:
		return fmt.Sprintf("Wrap { inner: %s }", g.GenerateExpression())
	case choice < 12:
		return fmt.Sprintf("pick(%s, %s)", g.GenerateIntExpression(), g.GenerateIntExpression())
	case choice < 13:
		// Struct literals are not allowed in the condition.
		return fmt.Sprintf("if %s == 1 {%s%s } else { %s }", g.GenerateVarRef(), g.MaybeNewline(), g.GenerateIntLiteral(), g.GenerateIntLiteral())
	case choice < 14:
		return fmt.Sprintf("{ %s }", g.GenerateExpression())
	case choice < 15:
		return fmt.Sprintf("%s < %s", g.GenerateIntExpression(), g.GenerateIntExpression())
	case choice < 16:
		return g.GenerateVarRef() + ".clone()"
	case choice < 17:
		return g.GenerateVarRef() + ".len()"
	case choice < 18:
		return "Point { x: 1, y: 2 }"
	default:
		return g.GenerateIntExpression()
	}
}

func (g *Generator) GenerateAtom() string {
	switch g.src.Intn(9) {
	case 0:
		return "true"
	case 1:
		return `"text"`
	case 2:
		return "'c'"
	case 3:
		return "2.5"
	case 4:
		return `String::from("s")`
	case 5:
		return "Vec::new()"
	case 6:
		return g.GenerateVarRef()
	default:
		return g.GenerateIntLiteral()
	}
}

// GenerateVarRef refers to an earlier binding, or to a parenthesized
// literal when there is none yet. The parentheses keep `1.clone()` from
// lexing as a float.
func (g *Generator) GenerateVarRef() string {
	if len(g.vars) == 0 {
		return "(1)"
	}
	return g.vars[g.src.Intn(len(g.vars))]
}
