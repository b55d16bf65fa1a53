// Package pathuri converts playback targets into the path or URI form each
// native backend accepts.
package pathuri

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const schemeSeparator = "://"

// getwd is replaced in tests
var getwd = os.Getwd

// Normalize turns a path or URI into an ASCII URI.
// Inputs without a scheme are treated as local paths and resolved against the
// working directory; a literal '%' in such a path is escaped. Already ASCII
// URIs only get their spaces escaped, so a well-formed URI is never encoded
// twice.
func Normalize(target string) (string, error) {
	uri := target
	local := !strings.Contains(uri, schemeSeparator)
	if local {
		if !strings.HasPrefix(uri, "/") {
			cwd, err := getwd()
			if err != nil {
				return "", fmt.Errorf("failed to resolve working directory: %w", err)
			}
			uri = strings.TrimSuffix(cwd, "/") + "/" + uri
		}
		uri = "file" + schemeSeparator + uri
	}

	if isASCII(uri) {
		if local {
			uri = strings.ReplaceAll(uri, "%", "%25")
		}
		return strings.ReplaceAll(uri, " ", "%20"), nil
	}

	scheme, rest, _ := strings.Cut(uri, schemeSeparator)
	return scheme + schemeSeparator + escapePath(rest), nil
}

// FileURI builds a file:// URI for an absolute path, escaping only the path.
func FileURI(absPath string) string {
	return "file" + schemeSeparator + escapePath(filepath.ToSlash(absPath))
}

// IsHTTP reports whether target is an http or https URL
func IsHTTP(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// escapePath percent-encodes the UTF-8 bytes of p, keeping '/' as separator
func escapePath(p string) string {
	return (&url.URL{Path: p}).EscapedPath()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
