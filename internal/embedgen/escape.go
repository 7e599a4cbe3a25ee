package embedgen

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var validIdentifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// goKeywords cannot be used as generated variable or package names.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// ValidateIdentifier validates that name can be used as the generated
// package-level variable name.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("empty identifier")
	}
	if !validIdentifierPattern.MatchString(name) {
		return fmt.Errorf("invalid identifier %q", name)
	}
	if goKeywords[name] {
		return fmt.Errorf("identifier %q is a Go keyword", name)
	}
	return nil
}

// ValidatePackageName validates that name can be used as the generated
// file's package clause.
func ValidatePackageName(name string) error {
	if err := ValidateIdentifier(name); err != nil {
		return fmt.Errorf("invalid package name: %v", err)
	}
	if strings.ToLower(name) != name {
		return fmt.Errorf("invalid package name %q: must be lower case", name)
	}
	return nil
}

// DeriveVarName builds a default generated variable name from a source
// path, e.g. "./my-fixtures" becomes "myFixturesDir". The result always
// satisfies ValidateIdentifier.
func DeriveVarName(source string) string {
	base := filepath.Base(filepath.Clean(source))

	var b strings.Builder
	upperNext := false
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			if upperNext && b.Len() > 0 {
				b.WriteRune(unicode.ToUpper(r))
			} else if b.Len() == 0 {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(r)
			}
			upperNext = false
		case r >= '0' && r <= '9':
			if b.Len() > 0 {
				b.WriteRune(r)
			}
			upperNext = false
		default:
			upperNext = true
		}
	}

	if b.Len() == 0 {
		return "embeddedDir"
	}
	return b.String() + "Dir"
}

// contentLiteral renders file content as a Go expression of type []byte.
// Valid UTF-8 content becomes a quoted string conversion; anything else
// becomes a hex byte-slice literal. Both forms reproduce the source bytes
// exactly.
func contentLiteral(content []byte) string {
	if len(content) == 0 {
		return "{}"
	}
	if utf8.Valid(content) {
		return "[]byte(" + strconv.Quote(string(content)) + ")"
	}
	return hexLiteral(content)
}

// bytesPerLine keeps hex literals readable and diffs stable.
const bytesPerLine = 12

func hexLiteral(content []byte) string {
	var b strings.Builder
	b.WriteString("{\n")
	for i, c := range content {
		if i%bytesPerLine == 0 {
			b.WriteString("\t\t")
		}
		fmt.Fprintf(&b, "0x%02x,", c)
		if (i+1)%bytesPerLine == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if len(content)%bytesPerLine != 0 {
		b.WriteString("\n")
	}
	b.WriteString("\t}")
	return b.String()
}

// pathLiteral renders a snapshot path as a Go string literal map key.
func pathLiteral(path string) string {
	return strconv.Quote(path)
}
