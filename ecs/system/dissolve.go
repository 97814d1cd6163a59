package system

import (
	"log"

	"github.com/d5/tengo/v2"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/scripts"
)

// DissolveSystem drives each wisp's dissolve progress. The progression policy
// lives in a Tengo script so it can be tuned without recompiling; the script
// sees the current progress, the frame delta, and a per-entity direction, and
// writes back the next progress. Whatever the script produces is clamped to
// [0, 1] before it reaches the renderer.
type DissolveSystem struct {
	compiled *tengo.Compiled
	dirs     map[ecs.Entity]float64
	failed   bool
}

func NewDissolveSystem() *DissolveSystem {
	d := &DissolveSystem{dirs: map[ecs.Entity]float64{}}

	script := tengo.NewScript(scripts.Dissolve())
	_ = script.Add("progress", 0.0)
	_ = script.Add("dt", 0.0)
	_ = script.Add("dir", 0.0)
	compiled, err := script.Compile()
	if err != nil {
		log.Printf("dissolve: compile script: %v", err)
		d.failed = true
		return d
	}
	d.compiled = compiled
	return d
}

func (d *DissolveSystem) Update(w *ecs.World, dt float64) {
	if d.failed {
		return
	}
	for _, e := range w.Query(component.WispComponent.ID(), component.SpriteComponent.ID()) {
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok || s.Dissolve == nil {
			continue
		}

		if err := d.compiled.Set("progress", s.Dissolve.Progress); err != nil {
			d.fail(err)
			return
		}
		if err := d.compiled.Set("dt", dt); err != nil {
			d.fail(err)
			return
		}
		if err := d.compiled.Set("dir", d.dirs[e]); err != nil {
			d.fail(err)
			return
		}
		if err := d.compiled.Run(); err != nil {
			d.fail(err)
			return
		}

		d.dirs[e] = d.compiled.Get("dir").Float()
		s.Dissolve.Progress = common.Clamp(d.compiled.Get("progress").Float(), 0, 1)
	}
}

func (d *DissolveSystem) fail(err error) {
	if !d.failed {
		d.failed = true
		log.Printf("dissolve: script error, freezing progress: %v", err)
	}
}
