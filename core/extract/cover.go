// ABOUTME: Cover image extraction from an entry description's embedded img tags
// ABOUTME: First image URL matching the pattern wins; later matches are ignored

package extract

import "regexp"

var coverURLRE = regexp.MustCompile(`src="(https?://[^"]+\.(?:jpg|jpeg|png))"`)

// CoverURL returns the first embedded cover image reference in an HTML
// description. The boolean is false when no image URL is present.
func CoverURL(description string) (string, bool) {
	m := coverURLRE.FindStringSubmatch(description)
	if m == nil {
		return "", false
	}
	return m[1], true
}
