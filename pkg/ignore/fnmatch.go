package ignore

import (
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"
)

// gobwasSpecial lists the characters gobwas/glob gives meaning to that
// shell-style patterns treat as plain text.
const gobwasSpecial = `\[]{},`

// nothing is the glob for a pattern that can never match, such as one
// containing a class made only of reversed ranges ("[z-a]").
type nothing struct{}

func (nothing) Match(string) bool { return false }

// compileGlob compiles a shell-style pattern with no separators, so '*' and '?'
// span the whole string including path separators. Only '*', '?' and
// bracket classes are special: braces and backslashes are literal, and a '['
// without a closing ']' is a literal '['.
func compileGlob(pattern string) (glob.Glob, error) {
	translated, ok := translatePattern(pattern)
	if !ok {
		return nothing{}, nil
	}
	return glob.Compile(translated)
}

// translatePattern rewrites pattern into gobwas syntax. It reports false when
// the pattern cannot match any string.
func translatePattern(pattern string) (string, bool) {
	p := []rune(pattern)
	var b strings.Builder

	for i := 0; i < len(p); {
		switch c := p[i]; c {
		case '*', '?':
			b.WriteRune(c)
			i++
		case '[':
			end := classEnd(p, i)
			if end < 0 {
				writeLiteral(&b, c)
				i++
				continue
			}
			class, ok := translateClass(p[i+1 : end])
			if !ok {
				return "", false
			}
			b.WriteString(class)
			i = end + 1
		default:
			writeLiteral(&b, c)
			i++
		}
	}
	return b.String(), true
}

// classEnd returns the index of the ']' closing the class opened at p[open],
// or -1 if the class is unterminated. A ']' directly after "[" or "[!" is a
// member, not the end.
func classEnd(p []rune, open int) int {
	j := open + 1
	if j < len(p) && p[j] == '!' {
		j++
	}
	if j < len(p) && p[j] == ']' {
		j++
	}
	for ; j < len(p); j++ {
		if p[j] == ']' {
			return j
		}
	}
	return -1
}

// translateClass turns the body of a bracket class into a gobwas character
// list. Ranges are expanded so that ranges and single characters can be
// mixed freely. It reports false for a positive class with no members.
func translateClass(body []rune) (string, bool) {
	negate := len(body) > 0 && body[0] == '!'
	if negate {
		body = body[1:]
	}

	members := classMembers(body)
	if len(members) == 0 {
		if negate {
			return "?", true
		}
		return "", false
	}

	var b strings.Builder
	b.WriteByte('[')
	if negate {
		b.WriteByte('!')
	}
	// An unescaped leading '-' cannot start a range; everything else is escaped.
	for _, r := range members {
		if r == '-' {
			b.WriteByte('-')
		}
	}
	for _, r := range members {
		if r != '-' {
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	b.WriteByte(']')
	return b.String(), true
}

// classMembers expands a class body into its distinct characters.
// "a-c" is a range; a '-' at either end is a plain member and reversed
// ranges contribute nothing.
func classMembers(body []rune) []rune {
	var members []rune
	seen := make(map[rune]bool)
	add := func(r rune) {
		if utf8.ValidRune(r) && !seen[r] {
			seen[r] = true
			members = append(members, r)
		}
	}

	for k := 0; k < len(body); {
		if k+2 < len(body) && body[k+1] == '-' {
			for r := body[k]; r <= body[k+2]; r++ {
				add(r)
			}
			k += 3
			continue
		}
		add(body[k])
		k++
	}
	return members
}

func writeLiteral(b *strings.Builder, r rune) {
	if strings.ContainsRune(gobwasSpecial, r) {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}
