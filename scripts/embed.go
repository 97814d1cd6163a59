// Package scripts embeds the Tengo scripts that drive tunable gameplay
// behavior.
package scripts

import _ "embed"

//go:embed dissolve.tengo
var dissolveSrc []byte

// Dissolve is the wisp dissolve progression script. Globals: progress, dt,
// dir; the script updates progress and dir in place.
func Dissolve() []byte {
	return dissolveSrc
}
