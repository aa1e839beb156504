package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// VignetteShader darkens everything outside a circle, used while blinded
	VignetteShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/vignette.kage")
	if err != nil {
		return fmt.Errorf("read vignette shader: %w", err)
	}
	VignetteShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile vignette shader: %w", err)
	}

	return nil
}
