package backend

import (
	"net/url"
	"regexp"
	"strings"
)

const signedHeadersParam = "X-Goog-SignedHeaders"

var brokenSignedHeaders = regexp.MustCompile(`hosthost|UNSIGNED-PAYLOAD`)

// NormalizeSignedURL repara los defectos conocidos de las URLs firmadas que emite el backend:
// doble codificación (%25) en la ruta y X-Goog-SignedHeaders corrupto.
// Si la entrada no es una URL absoluta se devuelve sin cambios.
func NormalizeSignedURL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return raw
	}

	p := u.EscapedPath()
	for strings.Contains(p, "%25") {
		p = strings.ReplaceAll(p, "%25", "%")
	}
	decoded, err := url.PathUnescape(p)
	if err != nil {
		return raw
	}
	u.Path = decoded
	u.RawPath = p

	q := u.Query()
	var keys []string
	broken := false
	for k, vals := range q {
		if !strings.EqualFold(k, signedHeadersParam) {
			continue
		}
		keys = append(keys, k)
		for _, v := range vals {
			if brokenSignedHeaders.MatchString(v) {
				broken = true
			}
		}
	}
	if broken {
		for _, k := range keys {
			q.Del(k)
		}
		q.Set(signedHeadersParam, "host")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
