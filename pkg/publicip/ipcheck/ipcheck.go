// Package ipcheck validates public IP address strings returned
// by echo services.
package ipcheck

import "regexp"

var dottedQuadRegex = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)

// Valid reports whether s is a dotted-quad IPv4 string made of
// four groups of 1 to 3 digits separated by dots. The check is
// purely syntactic: no range or reserved address verification is
// done, so for example "999.0.0.1" is considered valid.
func Valid(s string) bool {
	return dottedQuadRegex.MatchString(s)
}
