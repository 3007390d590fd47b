package ui

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextureCache loads gallery images on first use and keeps them until Unload.
// A source that fails to load is remembered as missing and not retried.
// Thumbnails and the overlay share one cache, so closing the overlay drops
// only its slot reference and the texture stays loaded for the thumbnail.
type TextureCache struct {
	loaded map[string]rl.Texture2D
}

// NewTextureCache creates an empty cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{loaded: make(map[string]rl.Texture2D)}
}

// Get returns the texture for src, loading it if needed.
// ok is false when src is empty or could not be loaded.
func (c *TextureCache) Get(src string) (rl.Texture2D, bool) {
	if src == "" {
		return rl.Texture2D{}, false
	}
	if tex, seen := c.loaded[src]; seen {
		return tex, tex.ID != 0
	}

	var tex rl.Texture2D
	if rl.FileExists(src) {
		tex = rl.LoadTexture(src)
	}
	if tex.ID == 0 {
		slog.Warn("gallery image unavailable", "src", src)
	}
	c.loaded[src] = tex
	return tex, tex.ID != 0
}

// Unload releases every loaded texture.
func (c *TextureCache) Unload() {
	for src, tex := range c.loaded {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
		delete(c.loaded, src)
	}
}
