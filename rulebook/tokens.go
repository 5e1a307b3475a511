package rulebook

import (
	"fmt"
	"strings"
)

// Token is a bracketed placeholder in authored text. Each rendering scope
// (box, entry, document) resolves only its own vocabulary, everything else is
// left in place untouched.
type Token string

const (
	TokenList   Token = "[LIST]"
	TokenUList  Token = "[ULIST]"
	TokenH2List Token = "[H2LIST]"
	TokenH3List Token = "[H3LIST]"
	TokenH4List Token = "[H4LIST]"

	TokenItems    Token = "[ITEMS]"
	TokenAllItems Token = "[ALLITEMS]"
	TokenBoxes    Token = "[BOXES]"
	TokenBoxes2   Token = "[BOXES2]"
	TokenTables   Token = "[TABLES]"
)

// MaxIndexedToken is the highest index addressable by [BOXn], [ITEMn] and
// [TABLEn]. Elements beyond it are reachable only through collection tokens.
const MaxIndexedToken = 19

func BoxToken(i int) Token   { return Token(fmt.Sprintf("[BOX%d]", i)) }
func ItemToken(i int) Token  { return Token(fmt.Sprintf("[ITEM%d]", i)) }
func TableToken(i int) Token { return Token(fmt.Sprintf("[TABLE%d]", i)) }

type replacement struct {
	text     string
	verbatim bool
}

// Replacements is a table of recognized tokens for a single scope.
type Replacements struct {
	order    []Token
	values   map[Token]replacement
	replacer *strings.Replacer
}

func NewReplacements() *Replacements {
	return &Replacements{values: make(map[Token]replacement)}
}

// Set registers token. Non-empty text is inserted on a new line, empty text
// removes the token.
func (r *Replacements) Set(tok Token, text string) {
	r.set(tok, replacement{text: text})
}

// SetVerbatim registers token which is replaced by text as is.
func (r *Replacements) SetVerbatim(tok Token, text string) {
	r.set(tok, replacement{text: text, verbatim: true})
}

// SetIndexed registers tokens produced by name for indexes 0..MaxIndexedToken.
// Indexes past the end of values resolve to empty text.
func (r *Replacements) SetIndexed(name func(int) Token, values []string) {
	for i := 0; i <= MaxIndexedToken; i++ {
		var text string
		if i < len(values) {
			text = values[i]
		}
		r.Set(name(i), text)
	}
}

func (r *Replacements) set(tok Token, v replacement) {
	if _, exists := r.values[tok]; !exists {
		r.order = append(r.order, tok)
	}
	r.values[tok] = v
	r.replacer = nil
}

// Lookup returns text token would be replaced with.
func (r *Replacements) Lookup(tok Token) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.values[tok]
	if !ok {
		return "", false
	}
	return v.expand(), true
}

func (v replacement) expand() string {
	if v.verbatim || len(v.text) == 0 {
		return v.text
	}
	return "\n" + v.text
}

// Apply substitutes all recognized tokens in a single pass. Inserted text is
// never scanned again, so tokens inside rendered children stay as they are.
func (r *Replacements) Apply(text string) string {
	if r == nil || len(r.order) == 0 || !strings.Contains(text, "[") {
		return text
	}
	if r.replacer == nil {
		pairs := make([]string, 0, 2*len(r.order))
		for _, tok := range r.order {
			pairs = append(pairs, string(tok), r.values[tok].expand())
		}
		r.replacer = strings.NewReplacer(pairs...)
	}
	return r.replacer.Replace(text)
}
