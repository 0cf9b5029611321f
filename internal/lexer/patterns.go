package lexer

import "regexp"

// Regex grammar for Racket's reader numeric/string/symbol syntax, ported
// from the original Python lexer (mracket/reader/lexer.py) which documents
// itself as based on https://docs.racket-lang.org/reference/reader.html.
// Every fragment below corresponds 1:1 to a named fragment in that module.

const (
	exactness = `#[ei]`
	sign      = `[+-]`

	digit2  = `[01]`
	digit8  = `(?:` + digit2 + `|[234567])`
	digit10 = `(?:` + digit8 + `|[89])`
	digit16 = `(?:` + digit10 + `|[abcdef])`

	digitsPound2  = digit2 + `+#*`
	digitsPound8  = digit8 + `+#*`
	digitsPound10 = digit10 + `+#*`
	digitsPound16 = digit16 + `+#*`

	unsignedInt2  = digit2 + `+`
	unsignedInt8  = digit8 + `+`
	unsignedInt10 = digit10 + `+`
	unsignedInt16 = digit16 + `+`

	exactInt2  = sign + `?` + unsignedInt2
	exactInt8  = sign + `?` + unsignedInt8
	exactInt10 = sign + `?` + unsignedInt10
	exactInt16 = sign + `?` + unsignedInt16

	unsignedRational2  = unsignedInt2 + `(?:/` + unsignedInt2 + `)?`
	unsignedRational8  = unsignedInt8 + `(?:/` + unsignedInt8 + `)?`
	unsignedRational10 = unsignedInt10 + `(?:/` + unsignedInt10 + `)?`
	unsignedRational16 = unsignedInt16 + `(?:/` + unsignedInt16 + `)?`

	exactRational2  = sign + `?` + unsignedRational2
	exactRational8  = sign + `?` + unsignedRational8
	exactRational10 = sign + `?` + unsignedRational10
	exactRational16 = sign + `?` + unsignedRational16

	exactComplex2  = exactRational2 + sign + unsignedRational2 + `i`
	exactComplex8  = exactRational8 + sign + unsignedRational8 + `i`
	exactComplex10 = exactRational10 + sign + unsignedRational10 + `i`
	exactComplex16 = exactRational16 + sign + unsignedRational16 + `i`

	exact2  = `(?:` + exactRational2 + `|` + exactComplex2 + `)`
	exact8  = `(?:` + exactRational8 + `|` + exactComplex8 + `)`
	exact10 = `(?:` + exactRational10 + `|` + exactComplex10 + `)`
	exact16 = `(?:` + exactRational16 + `|` + exactComplex16 + `)`

	inexactSpecial = `(?:inf\.0|nan\.0|inf\.f|nan\.f)`

	expMark16 = `[sl]`
	expMark10 = `(?:` + expMark16 + `|[def])`
	expMark8  = expMark10
	expMark2  = expMark10

	inexactSimple2  = `(?:` + unsignedInt2 + `?\.` + digitsPound2 + `|` + digitsPound2 + `/` + digitsPound2 + `|` + digitsPound2 + `\.?#*)`
	inexactSimple8  = `(?:` + unsignedInt8 + `?\.` + digitsPound8 + `|` + digitsPound8 + `/` + digitsPound8 + `|` + digitsPound8 + `\.?#*)`
	inexactSimple10 = `(?:` + unsignedInt10 + `?\.` + digitsPound10 + `|` + digitsPound10 + `/` + digitsPound10 + `|` + digitsPound10 + `\.?#*)`
	inexactSimple16 = `(?:` + unsignedInt16 + `?\.` + digitsPound16 + `|` + digitsPound16 + `/` + digitsPound16 + `|` + digitsPound16 + `\.?#*)`

	inexactNormal2  = inexactSimple2 + `(?:` + expMark2 + exactInt2 + `)?`
	inexactNormal8  = inexactSimple8 + `(?:` + expMark8 + exactInt8 + `)?`
	inexactNormal10 = inexactSimple10 + `(?:` + expMark10 + exactInt10 + `)?`
	inexactNormal16 = inexactSimple16 + `(?:` + expMark16 + exactInt16 + `)?`

	inexactUnsigned2  = `(?:` + inexactNormal2 + `|` + inexactSpecial + `)`
	inexactUnsigned8  = `(?:` + inexactNormal8 + `|` + inexactSpecial + `)`
	inexactUnsigned10 = `(?:` + inexactNormal10 + `|` + inexactSpecial + `)`
	inexactUnsigned16 = `(?:` + inexactNormal16 + `|` + inexactSpecial + `)`

	inexactReal2  = `(?:` + sign + `?` + inexactNormal2 + `|` + sign + inexactSpecial + `)`
	inexactReal8  = `(?:` + sign + `?` + inexactNormal8 + `|` + sign + inexactSpecial + `)`
	inexactReal10 = `(?:` + sign + `?` + inexactNormal10 + `|` + sign + inexactSpecial + `)`
	inexactReal16 = `(?:` + sign + `?` + inexactNormal16 + `|` + sign + inexactSpecial + `)`

	inexactComplex2  = `(?:(?:` + inexactReal2 + `)?` + sign + inexactUnsigned2 + `i|` + inexactReal2 + `@` + inexactReal2 + `)`
	inexactComplex8  = `(?:(?:` + inexactReal8 + `)?` + sign + inexactUnsigned8 + `i|` + inexactReal8 + `@` + inexactReal8 + `)`
	inexactComplex10 = `(?:(?:` + inexactReal10 + `)?` + sign + inexactUnsigned10 + `i|` + inexactReal10 + `@` + inexactReal10 + `)`
	inexactComplex16 = `(?:(?:` + inexactReal16 + `)?` + sign + inexactUnsigned16 + `i|` + inexactReal16 + `@` + inexactReal16 + `)`

	inexact2  = `(?:` + inexactReal2 + `|` + inexactComplex2 + `)`
	inexact8  = `(?:` + inexactReal8 + `|` + inexactComplex8 + `)`
	inexact10 = `(?:` + inexactReal10 + `|` + inexactComplex10 + `)`
	inexact16 = `(?:` + inexactReal16 + `|` + inexactComplex16 + `)`

	number2  = `(?:` + exact2 + `|` + inexact2 + `)`
	number8  = `(?:` + exact8 + `|` + inexact8 + `)`
	number10 = `(?:` + exact10 + `|` + inexact10 + `)`
	number16 = `(?:` + exact16 + `|` + inexact16 + `)`

	generalNumber2  = `(?:` + exactness + `)?` + number2
	generalNumber8  = `(?:` + exactness + `)?` + number8
	generalNumber10 = `(?:` + exactness + `)?` + number10
	generalNumber16 = `(?:` + exactness + `)?` + number16

	generalNumber        = `(?:#b` + generalNumber2 + `|#o` + generalNumber8 + `|(?:#d)?` + generalNumber10 + `|#x` + generalNumber16 + `)`
	leadingExactnessNumber = exactness + `(?:#b` + number2 + `|#o` + number8 + `|(?:#d)?` + number10 + `|#x` + number16 + `)`

	stringCharacter = `(?:[^\\"]|\\(?:[abtnvfre"']|` + digit8 + `{1,3}|x` + digit16 + `{1,2}|u` + digit16 + `{1,4}(?:\\u` + digit16 + `{1,4})?|U` + digit16 + `{1,8})|\\\n)`

	leadingSymbolCharacter   = `[^()\[\]{}"'` + "`" + `,;#|\\\s]`
	symbolCharacter          = `[^()\[\]{}"'` + "`" + `,;|\\\s]`
	extendedSymbolCharacter  = `(?:` + symbolCharacter + `|\s)`
	escapedSymbolCharacters  = `(?:\\` + extendedSymbolCharacter + `|\|` + extendedSymbolCharacter + `*\|)`
)

// Compiled, anchored-at-start token patterns, tried in priority order
// exactly as spec.md §4.1 step 3 lists them. Go's regexp engine has no
// lookahead, so the delimiter check after a number cannot make it retry a
// longer alternative; reNumber is therefore switched to leftmost-longest
// matching (so `1.5` is not cut short at `1`), and matchNumber in lexer.go
// applies the delimiter check to that longest match.
var (
	reBoolean         = regexp.MustCompile(`^#(?:true|false)`)
	reAbbreviatedBool = regexp.MustCompile(`^#[TtFf]`)
	// reCharacterNamed/Octal/HexU/HexCapU match the multi-character character
	// forms. Go's RE2 engine has no negative lookahead, so the single-letter
	// and single-octal-digit forms ([a-zA-Z](?![a-zA-Z]), [0-7](?![0-7])) are
	// resolved by matchCharacter in lexer.go instead of by regex.
	reCharacterNamed  = regexp.MustCompile(`^#\\(?:null?|backspace|tab|newline|linefeed|vtab|page|return|space|rubout)\b`)
	reCharacterOctal  = regexp.MustCompile(`^#\\` + digit8 + `{3}`)
	reCharacterHexU   = regexp.MustCompile(`^#\\u` + digit16 + `{1,4}`)
	reCharacterHexCapU = regexp.MustCompile(`^#\\U` + digit16 + `{1,8}`)
	reNumber          = longest(regexp.MustCompile(`(?i)^(?:` + generalNumber + `|` + leadingExactnessNumber + `)`))
	reString            = regexp.MustCompile(`(?s)^"` + stringCharacter + `*"`)
	reReaderDirective   = regexp.MustCompile(`^#(?:lang|reader).*`)
	reSymbol            = regexp.MustCompile(`(?s)^(?:` + escapedSymbolCharacters + `|` + leadingSymbolCharacter + `)(?:` + escapedSymbolCharacters + `|` + symbolCharacter + `)*`)
	reDelimiter         = regexp.MustCompile(`^(?:,@|[()\[\]{}'` + "`" + `,])`)
	reLineComment       = regexp.MustCompile(`^;[^\n]*`)
	reWhitespace        = regexp.MustCompile(`^\s+`)
	reNumberDelimiterOK = regexp.MustCompile(`^(?:$|[()\[\]{}'` + "`" + `,"\s])`)
)

// longest switches re to leftmost-longest matching and returns it.
func longest(re *regexp.Regexp) *regexp.Regexp {
	re.Longest()
	return re
}
