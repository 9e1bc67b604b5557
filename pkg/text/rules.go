// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	arraysImport = "import java.util.Arrays;"

	// ident matches a Java identifier, including non ASCII letters
	ident = `[\p{L}\p{N}_]+`
)

var (
	utilImportPattern = regexp.MustCompile(`import java\.util\.[^;]+;`)
	listOfPattern     = regexp.MustCompile(`List\.of\((.*?)\)`)
	mapOfPattern      = regexp.MustCompile(`(?s)Map\.of\((.*?)\)`)
	loaderVarPattern  = regexp.MustCompile(`var\s+(` + ident + `)\s*=\s*(load[\p{L}\p{N}_]*Schema)\(\);`)
	catchAllVarRegexp = regexp.MustCompile(`var\s+(` + ident + `)\s*=\s*([^;]+;)`)
	bareListPattern   = regexp.MustCompile(`(\s+)List\s+(` + ident + `)`)
)

// 🔄 regexRule replaces every match of a pattern with an expansion template.
// With wordStart set, a match only counts when it does not continue an
// identifier, the way \b would if RE2 knew about non ASCII letters.
type regexRule struct {
	name      string
	pattern   *regexp.Regexp
	template  string
	wordStart bool
}

func (r *regexRule) Name() string { return r.name }

func (r *regexRule) Apply(content string) (string, int) {
	if !r.wordStart {
		count := len(r.pattern.FindAllStringIndex(content, -1))
		if count == 0 {
			return content, 0
		}
		return r.pattern.ReplaceAllString(content, r.template), count
	}

	var buf strings.Builder
	count, last, pos := 0, 0, 0
	for pos < len(content) {
		rest := content[pos:]
		m := r.pattern.FindStringSubmatchIndex(rest)
		if m == nil {
			break
		}

		start, end := pos+m[0], pos+m[1]
		if prev, _ := utf8.DecodeLastRuneInString(content[:start]); start > 0 && isIdentRune(prev) {
			_, size := utf8.DecodeRuneInString(content[start:])
			pos = start + size
			continue
		}

		buf.WriteString(content[last:start])
		buf.Write(r.pattern.ExpandString(nil, r.template, rest, m))
		count++
		last, pos = end, max(end, start+1)
	}

	if count == 0 {
		return content, 0
	}
	buf.WriteString(content[last:])
	return buf.String(), count
}

func isIdentRune(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsNumber(c)
}

// 📦 importRule adds the Arrays import after the first java.util import
type importRule struct{}

func (importRule) Name() string { return "import-arrays" }

func (importRule) Apply(content string) (string, int) {
	if strings.Contains(content, arraysImport) {
		return content, 0
	}
	if !strings.Contains(content, "List.of(") && !strings.Contains(content, "Arrays.asList(") {
		return content, 0
	}

	loc := utilImportPattern.FindStringIndex(content)
	if loc == nil {
		return content, 0
	}

	return content[:loc[1]] + "\n" + arraysImport + content[loc[1]:], 1
}

// 🗺️ mapOfRule turns Map.of calls into HashMap initializers
type mapOfRule struct {
	keyType   string
	valueType string
}

func (r *mapOfRule) Name() string { return "map-of" }

func (r *mapOfRule) Apply(content string) (string, int) {
	matches := mapOfPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}

	var buf strings.Builder
	count := 0
	last := 0
	for _, m := range matches {
		buf.WriteString(content[last:m[0]])
		if replacement, ok := r.rewrite(content[m[2]:m[3]]); ok {
			buf.WriteString(replacement)
			count++
		} else {
			buf.WriteString(content[m[0]:m[1]])
		}
		last = m[1]
	}
	buf.WriteString(content[last:])

	return buf.String(), count
}

// rewrite renders one call; ok is false when the call must stay untouched
func (r *mapOfRule) rewrite(args string) (string, bool) {
	args = strings.TrimSpace(args)
	if args == "" {
		return "new HashMap<>()", true
	}

	parts := SplitTopLevel(args)
	if len(parts)%2 != 0 {
		return "", false
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "new HashMap<%s, %s>() {{\n", r.keyType, r.valueType)
	for i := 0; i < len(parts); i += 2 {
		fmt.Fprintf(&buf, "            put(%s, %s);\n", parts[i], parts[i+1])
	}
	buf.WriteString("        }}")
	return buf.String(), true
}

// SplitTopLevel splits an argument list on commas outside () and <> nesting.
// Brackets, braces and string literals are not tracked. Parts are trimmed and
// a trailing empty part is dropped. Bytes are copied as is.
func SplitTopLevel(args string) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	for i := 0; i < len(args); i++ {
		c := args[i]
		switch c {
		case '(', '<':
			depth++
		case ')', '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(current.String()))
				current.Reset()
				continue
			}
		}
		current.WriteByte(c)
	}

	if rest := strings.TrimSpace(current.String()); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}

// escapeTemplate keeps user supplied names literal inside an expansion template
func escapeTemplate(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

// Rules builds the ordered rule pipeline for opts
func Rules(opts Options) []Rule {
	varType := escapeTemplate(opts.VarType)

	rules := []Rule{
		importRule{},
		&regexRule{
			name:     "list-of",
			pattern:  listOfPattern,
			template: "Arrays.asList(${1})",
		},
		&mapOfRule{
			keyType:   opts.MapKeyType,
			valueType: opts.MapValueType,
		},
	}

	for _, loader := range opts.SchemaLoaders {
		rules = append(rules, &regexRule{
			name:      "var-" + loader,
			pattern:   regexp.MustCompile(`var\s+(` + ident + `)\s*=\s*` + regexp.QuoteMeta(loader) + `\(\);`),
			template:  varType + " ${1} = " + escapeTemplate(loader) + "();",
			wordStart: true,
		})
	}

	rules = append(rules, &regexRule{
		name:      "var-schema-loader",
		pattern:   loaderVarPattern,
		template:  varType + " ${1} = ${2}();",
		wordStart: true,
	})

	if opts.VarCatchAll {
		rules = append(rules, &regexRule{
			name:      "var-catch-all",
			pattern:   catchAllVarRegexp,
			template:  varType + " ${1} = ${2}",
			wordStart: true,
		})
	}

	return append(rules, &regexRule{
		name:     "list-widen",
		pattern:  bareListPattern,
		template: "${1}List<" + escapeTemplate(opts.ListElementType) + "> ${2}",
	})
}
