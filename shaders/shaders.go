// Package shaders owns the compiled Kage shaders. Compilation is lazy and
// single-threaded (everything runs on the render thread).
package shaders

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed dissolve.kage
var dissolveSrc []byte

// The dissolve shader's uniform slots.
const (
	UniformProgress = "Progress"
	UniformUVOffset = "UVOffset"
	UniformUVExtent = "UVExtent"
	UniformDensity  = "Density"
)

var (
	dissolve    *ebiten.Shader
	dissolveErr error
	tried       bool
)

// Dissolve returns the dissolve shader, compiling the embedded source on
// first call. A compile failure is sticky until Reload succeeds.
func Dissolve() (*ebiten.Shader, error) {
	if !tried {
		tried = true
		dissolve, dissolveErr = compile(dissolveSrc)
	}
	return dissolve, dissolveErr
}

// ReloadFile recompiles the dissolve shader from an on-disk source (dev
// reload). The previous shader stays active if compilation fails.
func ReloadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("shaders: read %q: %w", path, err)
	}
	s, err := compile(b)
	if err != nil {
		return err
	}
	if dissolve != nil {
		dissolve.Deallocate()
	}
	dissolve = s
	dissolveErr = nil
	tried = true
	return nil
}

func compile(src []byte) (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("shaders: compile dissolve: %w", err)
	}
	return s, nil
}
