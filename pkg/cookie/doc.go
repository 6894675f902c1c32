// Package cookie provides a local cookie jar for telemetry clients that
// have no browser to keep cookies for them.
//
// The jar speaks the cookie-string format on writes: Set accepts a value
// with embedded ";expires=" and ";domain=" attributes, exactly what a
// browser would receive in a Set-Cookie header, parsed via
// net/http.ParseSetCookie. Reads return only the value and lazily evict
// entries whose expiry has passed, so a caller can never observe a cookie
// that has outlived the session it encodes.
//
// Two flavors ship: NewJar keeps state in memory for the process lifetime,
// NewFileJar persists entries as a JSON file across restarts. Both satisfy
// the session.CookieStore contract.
//
//	jar, err := cookie.NewFileJar(filepath.Join(stateDir, "cookies.json"))
//	if err != nil {
//	    // corrupt jar file; start fresh or surface the error
//	}
//	manager := session.New(session.WithCookieStore(jar))
//
// The jar is safe for concurrent use.
package cookie
