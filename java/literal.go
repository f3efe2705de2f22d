package java

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/heshanpadmasiri/javaCSharp/cssrc"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

func convertLiteral(ctx *MigrationContext, node *tree_sitter.Node) cssrc.Expression {
	text := ctx.text(node)
	switch node.Kind() {
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		value, err := ConvertIntegerLiteral(text)
		if err != nil {
			fatalErr(ctx, node, err)
		}
		return &cssrc.Literal{Value: value}
	case "decimal_floating_point_literal", "hex_floating_point_literal":
		value, err := ConvertFloatingPointLiteral(text)
		if err != nil {
			fatalErr(ctx, node, err)
		}
		return &cssrc.Literal{Value: value}
	case "character_literal":
		value, err := ConvertCharLiteral(text)
		if err != nil {
			fatalErr(ctx, node, err)
		}
		return &cssrc.Literal{Value: value}
	case "string_literal":
		if strings.HasPrefix(text, `"""`) {
			value, err := ConvertTextBlock(text)
			if err != nil {
				fatalErr(ctx, node, err)
			}
			return &cssrc.Literal{Value: value}
		}
		return &cssrc.Literal{Value: text}
	case "true", "false":
		return &cssrc.Literal{Value: node.Kind()}
	case "null_literal":
		return &cssrc.Literal{Value: "null"}
	}
	UnhandledChild(ctx, node, "literal")
	return nil
}

// ConvertIntegerLiteral converts a java int or long literal into a decimal C#
// literal. Digit separators are removed and long literals keep an L suffix.
// Non decimal literals wrap like java does, so 0xFFFFFFFF becomes -1.
func ConvertIntegerLiteral(literal string) (string, error) {
	digits := strings.ReplaceAll(literal, "_", "")
	isLong := strings.HasSuffix(digits, "l") || strings.HasSuffix(digits, "L")
	digits = strings.TrimRight(digits, "lL")
	decimal := !strings.HasPrefix(digits, "0") || digits == "0"

	value, err := strconv.ParseUint(digits, 0, 64)
	if err != nil {
		return "", fmt.Errorf("%w: integer literal %s", ErrUnsupported, literal)
	}
	if isLong {
		if decimal && value > math.MaxInt64+1 {
			return "", fmt.Errorf("%w: long literal %s out of range", ErrUnsupported, literal)
		}
		if decimal {
			// only valid as the operand of unary minus
			return strconv.FormatUint(value, 10) + "L", nil
		}
		return strconv.FormatInt(int64(value), 10) + "L", nil
	}
	if value > math.MaxUint32 || (decimal && value > math.MaxInt32+1) {
		return "", fmt.Errorf("%w: int literal %s out of range", ErrUnsupported, literal)
	}
	if decimal {
		return strconv.FormatUint(value, 10), nil
	}
	return strconv.FormatInt(int64(int32(uint32(value))), 10), nil
}

// ConvertFloatingPointLiteral strips digit separators and maps the f/F and
// d/D suffixes onto their C# form
func ConvertFloatingPointLiteral(literal string) (string, error) {
	value := strings.ReplaceAll(literal, "_", "")
	isFloat := strings.HasSuffix(value, "f") || strings.HasSuffix(value, "F")
	value = strings.TrimRight(value, "fFdD")
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", fmt.Errorf("%w: floating point literal %s", ErrUnsupported, literal)
		}
		value = strconv.FormatFloat(parsed, 'g', -1, 64)
	}
	if strings.HasPrefix(value, ".") {
		value = "0" + value
	}
	if isFloat {
		return value + "F", nil
	}
	if !strings.ContainsAny(value, ".eE") {
		return value + "D", nil
	}
	return value, nil
}

// ConvertCharLiteral unescapes a java char literal and renders it as exactly
// one C# character literal
func ConvertCharLiteral(literal string) (string, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(literal, "'"), "'")
	runes, err := unescapeJava(inner)
	if err != nil || len(runes) != 1 {
		return "", fmt.Errorf("%w: character literal %s", ErrUnsupported, literal)
	}
	return "'" + escapeCSharp(runes[0], '\'') + "'", nil
}

// ConvertTextBlock converts a java text block into a regular C# string literal
// holding the same value
func ConvertTextBlock(literal string) (string, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(literal, `"""`), `"""`)
	body = strings.ReplaceAll(body, "\r\n", "\n")
	newline := strings.Index(body, "\n")
	if newline < 0 {
		return "", fmt.Errorf("%w: text block without line terminator", ErrUnsupported)
	}
	lines := strings.Split(body[newline+1:], "\n")

	// the closing delimiter on its own line takes part in the indentation
	closingOwnLine := strings.TrimSpace(lines[len(lines)-1]) == ""
	indent := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" && !(closingOwnLine && i == len(lines)-1) {
			continue
		}
		width := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || width < indent {
			indent = width
		}
	}
	if indent < 0 {
		indent = 0
	}
	for i, line := range lines {
		if len(line) >= indent {
			line = line[indent:]
		} else {
			line = strings.TrimLeft(line, " \t")
		}
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	value := strings.Join(lines, "\n")

	runes, err := unescapeJava(value)
	if err != nil {
		return "", err
	}
	sb := strings.Builder{}
	sb.WriteString(`"`)
	for _, r := range runes {
		sb.WriteString(escapeCSharp(r, '"'))
	}
	sb.WriteString(`"`)
	return sb.String(), nil
}

// unescapeJava resolves java escape sequences, including octal escapes, \s
// and line continuations
func unescapeJava(s string) ([]rune, error) {
	var result []rune
	src := []rune(s)
	for i := 0; i < len(src); i++ {
		if src[i] != '\\' {
			result = append(result, src[i])
			continue
		}
		i++
		if i >= len(src) {
			return nil, fmt.Errorf("%w: dangling escape", ErrUnsupported)
		}
		switch c := src[i]; c {
		case 'n':
			result = append(result, '\n')
		case 't':
			result = append(result, '\t')
		case 'r':
			result = append(result, '\r')
		case 'b':
			result = append(result, '\b')
		case 'f':
			result = append(result, '\f')
		case 's':
			result = append(result, ' ')
		case '\n':
		case '\\', '\'', '"':
			result = append(result, c)
		case 'u':
			for i+1 < len(src) && src[i+1] == 'u' {
				i++
			}
			if i+4 >= len(src) {
				return nil, fmt.Errorf("%w: short unicode escape", ErrUnsupported)
			}
			code, err := strconv.ParseUint(string(src[i+1:i+5]), 16, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: unicode escape: %v", ErrUnsupported, err)
			}
			result = append(result, rune(code))
			i += 4
		default:
			if c < '0' || c > '7' {
				return nil, fmt.Errorf("%w: escape \\%c", ErrUnsupported, c)
			}
			// up to three octal digits, at most \377
			maxDigits := 2
			if c <= '3' {
				maxDigits = 3
			}
			end := i
			for end < len(src) && end-i < maxDigits && src[end] >= '0' && src[end] <= '7' {
				end++
			}
			code, _ := strconv.ParseUint(string(src[i:end]), 8, 32)
			result = append(result, rune(code))
			i = end - 1
		}
	}
	return result, nil
}

func escapeCSharp(r rune, quote rune) string {
	switch r {
	case '\\':
		return `\\`
	case quote:
		return `\` + string(quote)
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	case 0:
		return `\0`
	}
	if r < 0x20 || r == 0x7f || !unicode.IsPrint(r) {
		return fmt.Sprintf(`\u%04X`, r)
	}
	return string(r)
}
