package rewriter

import (
	"regexp"
	"strings"
)

var templateExpr = regexp.MustCompile(`\{\{\s*(.*?)\s*\}\}`)

var checksumExpr = regexp.MustCompile(`^checksum\s+"([^"]+)"$`)

// ResolveKey turns a cache key template into a shell word fragment that
// evaluates to the resolved key inside the job container.
// Literal text is restricted to [A-Za-z0-9._-]; unknown expressions resolve to nothing.
func ResolveKey(template string) string {
	var b strings.Builder
	last := 0
	for _, m := range templateExpr.FindAllStringSubmatchIndex(template, -1) {
		b.WriteString(sanitize(template[last:m[0]]))
		b.WriteString(expression(template[m[2]:m[3]]))
		last = m[1]
	}
	b.WriteString(sanitize(template[last:]))
	return b.String()
}

func expression(expr string) string {
	switch {
	case expr == ".Branch":
		return "$(git rev-parse --abbrev-ref HEAD)"
	case expr == ".Revision":
		return "$(git rev-parse HEAD)"
	case expr == ".BuildNum":
		return "${CIRCLE_BUILD_NUM}"
	case expr == "arch":
		return "$(uname -m)"
	case expr == "epoch":
		return "$(date +%s)"
	case strings.HasPrefix(expr, ".Environment."):
		return "${" + sanitizeVar(strings.TrimPrefix(expr, ".Environment.")) + "}"
	}
	if m := checksumExpr.FindStringSubmatch(expr); m != nil {
		return "$(sha256sum " + m[1] + " | cut -d' ' -f1)"
	}
	return ""
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		default:
			return '-'
		}
	}, s)
}

func sanitizeVar(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return -1
		}
	}, s)
}

// matches reports whether a restore template selects a save template.
// A restore key matches a save key that equals it or starts with it.
func matches(restore, save string) bool {
	restore = strings.TrimSpace(restore)
	if restore == "" {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(save), restore)
}
