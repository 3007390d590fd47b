// Sign field preview tool - tune page layout and sign constants with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"math/rand"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/page"
	"github.com/pthm-cable/folio/systems"
)

const (
	windowWidth   = 1200
	windowHeight  = 720
	previewWidth  = 800
	previewHeight = 600
	previewX      = 10
	previewY      = 10
	panelWidth    = windowWidth - previewWidth - 40
)

// previewParams holds the values under the sliders.
type previewParams struct {
	Thumbs     float32
	ThumbSize  float32
	Margin     float32
	Count      float32
	Speed      float32
	CooldownMS float32
}

// yamlSnippet is the part of config.yaml this tool edits.
type yamlSnippet struct {
	Signs config.SignsConfig `yaml:"signs"`
	Page  config.PageConfig  `yaml:"page"`
}

func defaultParams(cfg *config.Config) previewParams {
	return previewParams{
		Thumbs:     6,
		ThumbSize:  float32(cfg.Page.ThumbSize),
		Margin:     float32(cfg.Page.Margin),
		Count:      float32(cfg.Signs.Count),
		Speed:      float32(cfg.Signs.Speed),
		CooldownMS: float32(cfg.Signs.CooldownMS),
	}
}

// apply copies the slider values into cfg.
func (p previewParams) apply(cfg *config.Config) {
	cfg.Page.ThumbSize = float64(p.ThumbSize)
	cfg.Page.Margin = float64(p.Margin)
	cfg.Signs.Count = min(int(p.Count), cfg.Signs.Max)
	cfg.Signs.Speed = float64(p.Speed)
	cfg.Signs.CooldownMS = float64(p.CooldownMS)
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Sign Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	params := defaultParams(cfg)
	bounds := systems.Bounds{Width: previewWidth, Height: previewHeight}

	var layout *page.Layout
	var field *systems.SignField
	seed := int64(1)
	needsReset := true
	paused := false

	for !rl.WindowShouldClose() {
		if needsReset {
			params.apply(cfg)
			layout = page.NewLayout(bounds.Width, bounds.Height, int(params.Thumbs), cfg.Page)
			field = systems.NewSignField(systems.ParamsFromConfig(cfg.Signs), bounds, rand.New(rand.NewSource(seed)))
			needsReset = false
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if !paused {
			field.Update(rl.GetTime()*1000, bounds, layout.Obstacles)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview
		for _, r := range layout.Obstacles() {
			rl.DrawRectangleLinesEx(rl.Rectangle{
				X: float32(previewX + r.X), Y: float32(previewY + r.Y),
				Width: float32(r.Width), Height: float32(r.Height),
			}, 1, rl.Gray)
		}
		p := field.Params()
		field.Each(func(_ int, pos *components.Position, _ *components.Velocity, sign *components.Sign) {
			color := rl.Maroon
			if sign.Cooling(rl.GetTime()*1000, p.CooldownMS) {
				color = rl.SkyBlue
			}
			rl.DrawRectangle(int32(previewX+pos.X), int32(previewY+pos.Y), int32(p.Size), int32(p.Size), color)
		})
		rl.DrawRectangleLines(previewX, previewY, previewWidth, previewHeight, rl.DarkGray)

		statsY := int32(previewY + previewHeight + 15)
		rl.DrawText(fmt.Sprintf("Signs: %d / %d", field.Count(), field.Cap()), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Obstacles: %d  %s", len(layout.Blocks), toggleText(paused, "PAUSED", "")), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewWidth + 30)
		panelY := float32(10)

		rl.DrawText("Page and Sign Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		changed := false
		slider := func(label string, value *float32, lo, hi float32, format string) {
			rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
				"", "",
				*value, lo, hi,
			)
			rl.DrawText(fmt.Sprintf(format, *value), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
			if v != *value {
				*value = v
				changed = true
			}
			panelY += 35
		}

		slider("Thumbnails", &params.Thumbs, 0, 24, "%.0f")
		slider("Thumbnail size (px)", &params.ThumbSize, 40, 240, "%.0f")
		slider("Page margin (px)", &params.Margin, 0, 120, "%.0f")
		slider("Initial signs", &params.Count, 0, 50, "%.0f")
		slider("Speed (px/frame)", &params.Speed, 0.5, 8, "%.1f")
		slider("Cooldown (ms)", &params.CooldownMS, 0, 3000, "%.0f")
		if changed {
			needsReset = true
		}
		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Respawn") {
			seed++
			needsReset = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			fresh, _ := config.Load("")
			cfg = fresh
			params = defaultParams(cfg)
			needsReset = true
		}
		panelY += 55

		snippet := configYAML(cfg)
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range strings.Split(snippet, "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Space: pause | C: copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(snippet)
		}

		rl.EndDrawing()
	}
}

// configYAML renders the signs and page sections as YAML.
func configYAML(cfg *config.Config) string {
	data, err := yaml.Marshal(yamlSnippet{Signs: cfg.Signs, Page: cfg.Page})
	if err != nil {
		return err.Error()
	}
	return strings.TrimRight(string(data), "\n")
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
