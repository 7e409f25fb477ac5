package library

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"barescript/internal/value"
)

// regexTimeout bounds a single match operation.
const regexTimeout = 5 * time.Second

var rNamedGroupOpen = regexp.MustCompile(`^\?(?:P?<([A-Za-z_]\w*)>|'([A-Za-z_]\w*)')`)

// translatePattern rewrites (?P<name>...) groups to
// (?<name>...) and lists the capturing groups in the order their opening
// parentheses appear, with "" for unnamed groups. Escaped characters and
// character classes are left alone.
func translatePattern(pattern string) (string, []string) {
	var sb strings.Builder
	groups := []string{}
	inClass := false
	for ix := 0; ix < len(pattern); ix++ {
		c := pattern[ix]
		sb.WriteByte(c)
		switch {
		case c == '\\':
			if ix+1 < len(pattern) {
				ix++
				sb.WriteByte(pattern[ix])
			}
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '(':
			rest := pattern[ix+1:]
			if !strings.HasPrefix(rest, "?") {
				groups = append(groups, "")
			} else if m := rNamedGroupOpen.FindStringSubmatch(rest); m != nil {
				groups = append(groups, m[1]+m[2])
				if strings.HasPrefix(rest, "?P<") {
					sb.WriteString("?<")
					ix += len("?P<")
				}
			}
		}
	}
	return sb.String(), groups
}

// NewRegex compiles a pattern with the script flags i, m and s.
// (?P<name>...) groups are accepted alongside (?<name>...).
func NewRegex(pattern, flags string) (*value.Regex, error) {
	var options regexp2.RegexOptions
	for _, flag := range flags {
		switch flag {
		case 'i':
			options |= regexp2.IgnoreCase
		case 'm':
			options |= regexp2.Multiline
		case 's':
			options |= regexp2.Singleline
		default:
			return nil, &regexFlagError{flag: flag}
		}
	}

	translated, groups := translatePattern(pattern)
	re, err := regexp2.Compile(translated, options)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = regexTimeout
	return &value.Regex{Pattern: pattern, Flags: flags, Re: re, Groups: groups}, nil
}

type regexFlagError struct {
	flag rune
}

func (e *regexFlagError) Error() string {
	return "unknown regex flag " + strconv.QuoteRune(e.flag)
}

// captureGroup returns group n (1-based, pattern order) of a match. The
// engine numbers unnamed groups before named ones, so named groups are
// resolved by name.
func captureGroup(regex *value.Regex, m *regexp2.Match, n int) *regexp2.Group {
	name := regex.Groups[n-1]
	if name != "" {
		return m.GroupByName(name)
	}
	unnamed := 0
	for _, g := range regex.Groups[:n] {
		if g == "" {
			unnamed++
		}
	}
	return m.GroupByNumber(unnamed)
}

func groupValue(g *regexp2.Group) value.Value {
	if g == nil || len(g.Captures) == 0 {
		return value.NIL
	}
	return value.NewString(g.String())
}

func matchObject(regex *value.Regex, m *regexp2.Match, input string) *value.Object {
	groups := value.NewObject()
	groups.Set("0", value.NewString(m.String()))
	for n := 1; n <= len(regex.Groups); n++ {
		groups.Set(strconv.Itoa(n), groupValue(captureGroup(regex, m, n)))
	}
	for _, name := range regex.Groups {
		if name != "" {
			groups.Set(name, groupValue(m.GroupByName(name)))
		}
	}

	return value.NewObject().
		Set("index", value.NewInt(m.Index)).
		Set("input", value.NewString(input)).
		Set("groups", groups)
}

// eachMatch calls fn for every non-overlapping match, stopping early when fn
// returns false.
func eachMatch(regex *value.Regex, input string, fn func(m *regexp2.Match) bool) error {
	m, err := regex.Re.FindStringMatch(input)
	for m != nil && err == nil {
		if !fn(m) {
			return nil
		}
		m, err = regex.Re.FindNextMatch(m)
	}
	return err
}

func fnRegexEscape() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		s, ok := asString(a[0])
		if !ok {
			return value.NIL
		}

		return value.NewString(regexp2.Escape(s))
	}}
}

func fnRegexMatch() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		regex, ok := asRegex(a[0])
		s, ok2 := asString(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		m, err := regex.Re.FindStringMatch(s)
		if err != nil {
			slog.Debug("regexMatch failed", slog.Any("error", err))
			return value.NIL
		}
		if m == nil {
			return value.NIL
		}
		return matchObject(regex, m, s)
	}}
}

func fnRegexMatchAll() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		regex, ok := asRegex(a[0])
		s, ok2 := asString(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		matches := value.NewArray()
		err := eachMatch(regex, s, func(m *regexp2.Match) bool {
			matches.Elements = append(matches.Elements, matchObject(regex, m, s))
			return true
		})
		if err != nil {
			slog.Debug("regexMatchAll failed", slog.Any("error", err))
			return value.NIL
		}
		return matches
	}}
}

func fnRegexNew() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		pattern, ok := asString(a[0])
		if !ok {
			return value.NIL
		}
		flags := ""
		if !value.IsNull(a[1]) {
			if flags, ok = asString(a[1]); !ok {
				return value.NIL
			}
		}

		regex, err := NewRegex(pattern, flags)
		if err != nil {
			slog.Debug("regexNew failed", slog.String("pattern", pattern), slog.Any("error", err))
			return value.NIL
		}
		return regex
	}}
}

// expandReplacement substitutes $N, $<name> and $$ in a replacement
// template. Unknown references are kept literally.
func expandReplacement(regex *value.Regex, m *regexp2.Match, template string) string {
	var sb strings.Builder
	for ix := 0; ix < len(template); ix++ {
		c := template[ix]
		if c != '$' || ix+1 >= len(template) {
			sb.WriteByte(c)
			continue
		}

		rest := template[ix+1:]
		switch {
		case rest[0] == '$':
			sb.WriteByte('$')
			ix++
		case rest[0] >= '0' && rest[0] <= '9':
			end := 1
			for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
				end++
			}
			n, _ := strconv.Atoi(rest[:end])
			switch {
			case n == 0:
				sb.WriteString(m.String())
			case n <= len(regex.Groups):
				if g := captureGroup(regex, m, n); g != nil && len(g.Captures) > 0 {
					sb.WriteString(g.String())
				}
			default:
				sb.WriteString(template[ix : ix+1+end])
			}
			ix += end
		case rest[0] == '<':
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				sb.WriteByte(c)
				continue
			}
			if g := m.GroupByName(rest[1:end]); g != nil {
				sb.WriteString(g.String())
			} else {
				sb.WriteString(template[ix : ix+2+end])
			}
			ix += end + 1
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func fnRegexReplace() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil, nil)
		regex, ok := asRegex(a[0])
		s, ok2 := asString(a[1])
		template, ok3 := asString(a[2])
		if !ok || !ok2 || !ok3 {
			return value.NIL
		}

		result, err := regex.Re.ReplaceFunc(s, func(m regexp2.Match) string {
			return expandReplacement(regex, &m, template)
		}, -1, -1)
		if err != nil {
			slog.Debug("regexReplace failed", slog.Any("error", err))
			return value.NIL
		}
		return value.NewString(result)
	}}
}

// regexSplit includes the text of capture groups between the split parts.
func fnRegexSplit() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		regex, ok := asRegex(a[0])
		s, ok2 := asString(a[1])
		if !ok || !ok2 {
			return value.NIL
		}

		runes := []rune(s)
		parts := value.NewArray()
		last := 0
		err := eachMatch(regex, s, func(m *regexp2.Match) bool {
			parts.Elements = append(parts.Elements, value.NewString(string(runes[last:m.Index])))
			for n := 1; n <= len(regex.Groups); n++ {
				parts.Elements = append(parts.Elements, groupValue(captureGroup(regex, m, n)))
			}
			last = m.Index + m.Length
			return true
		})
		if err != nil {
			slog.Debug("regexSplit failed", slog.Any("error", err))
			return value.NIL
		}
		parts.Elements = append(parts.Elements, value.NewString(string(runes[last:])))
		return parts
	}}
}
