package schedule

import (
	"fmt"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The compact schedule format lists one bar per statement:
//
//	schedule "Level 2 slab";
//	# mark code attributes...
//	B01 21 d=12 r=24 A=300 B=450 C=300 n=4;
//	B02 99 d=16 (0,0) (1200,0) (1200,600,150);
//
// d is the diameter, r the bend radius and n the quantity. Upper-case names
// are shape dimensions. All lengths are in millimetres.
var bbsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	{Name: "KwSchedule", Pattern: `(?i)\bSCHEDULE\b`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?(\d+\.\d*|\.\d+|\d+)`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},

	{Name: "Equals", Pattern: `=`},
	{Name: "Semicolon", Pattern: `;`},
	{Name: "Comma", Pattern: `,`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})

type bbsFile struct {
	Title string    `( KwSchedule @String Semicolon )?`
	Bars  []*bbsBar `@@*`
}

type bbsBar struct {
	Pos   lexer.Position
	Mark  string     `@( Ident | Number | String )`
	Code  string     `@( Number | Ident )`
	Items []*bbsItem `@@* Semicolon`
}

type bbsItem struct {
	Attr  *bbsAttr  `  @@`
	Point *bbsPoint `| @@`
}

type bbsAttr struct {
	Pos   lexer.Position
	Name  string  `@Ident Equals`
	Value float64 `@Number`
}

type bbsPoint struct {
	X float64 `LParen @Number Comma`
	Y float64 `@Number`
	Z float64 `( Comma @Number )? RParen`
}

var (
	bbsOnce   sync.Once
	bbsParser *participle.Parser[bbsFile]
	bbsErr    error
)

func bbs() (*participle.Parser[bbsFile], error) {
	bbsOnce.Do(func() {
		bbsParser, bbsErr = participle.Build[bbsFile](
			participle.Lexer(bbsLexer),
			participle.Elide("Comment", "Whitespace"),
			participle.Unquote("String"),
			participle.UseLookahead(2),
		)
		if bbsErr != nil {
			bbsErr = fmt.Errorf("failed to build schedule parser: %w", bbsErr)
		}
	})
	return bbsParser, bbsErr
}

// ParseBBS parses the compact text format.
func ParseBBS(input string) (*Schedule, error) {
	parser, err := bbs()
	if err != nil {
		return nil, err
	}
	file, err := parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	s := &Schedule{Name: file.Title}
	for _, b := range file.Bars {
		bar := Bar{Mark: b.Mark, Code: b.Code}
		for _, item := range b.Items {
			if item.Point != nil {
				bar.Points = append(bar.Points, Point{X: item.Point.X, Y: item.Point.Y, Z: item.Point.Z})
				continue
			}
			if err := bar.set(item.Attr); err != nil {
				return nil, err
			}
		}
		s.Bars = append(s.Bars, bar)
	}
	return s, nil
}

func (b *Bar) set(a *bbsAttr) error {
	switch a.Name {
	case "d":
		b.Diameter = a.Value
	case "r":
		b.BendRadius = a.Value
	case "n":
		if a.Value != float64(int(a.Value)) {
			return fmt.Errorf("%s: bar %s: quantity must be whole, is %g", a.Pos, b.Mark, a.Value)
		}
		b.Quantity = int(a.Value)
	case "A", "B", "C", "D", "E", "F", "R":
		if b.Dims == nil {
			b.Dims = make(map[string]float64)
		}
		if _, dup := b.Dims[a.Name]; dup {
			return fmt.Errorf("%s: bar %s: dimension %s given twice", a.Pos, b.Mark, a.Name)
		}
		b.Dims[a.Name] = a.Value
	default:
		return fmt.Errorf("%s: bar %s: unknown attribute %q", a.Pos, b.Mark, a.Name)
	}
	return nil
}
