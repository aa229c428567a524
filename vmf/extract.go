package vmf

import (
	"strconv"
	"strings"

	"github.com/signadot/go-vdf/debug"
	"github.com/signadot/go-vdf/ir"
)

// Pos is a Hammer origin.
type Pos struct {
	X, Y, Z float32
}

// String formats p as Hammer does: space separated, shortest form.
func (p Pos) String() string {
	return fmtFloat(p.X) + " " + fmtFloat(p.Y) + " " + fmtFloat(p.Z)
}

func fmtFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// DefaultTable maps the classnames of environment entities to the origin
// the first such entity is moved to.
func DefaultTable() map[string]Pos {
	return map[string]Pos{
		"color_correction":       {40, 0, 16},
		"env_fog_controller":     {-8, 0, 16},
		"env_soundscape":         {32, -16, 16},
		"env_tonemap_controller": {8, 0, 16},
		"light_environment":      {-40, 0, 16},
		"logic_auto":             {24, 0, 16},
		"shadow_control":         {-24, 0, 16},
		"sky_camera":             {0, -16, 16},
	}
}

// DefaultIgnoreKeys are the entity keys disregarded when looking for
// duplicate entities.
func DefaultIgnoreKeys() []string {
	return []string{"id", "origin", "classname", "editor"}
}

const DefaultStep = 16

type Config struct {
	Table      map[string]Pos
	IgnoreKeys []string
	Step       float32
}

type Option func(*Config)

// WithTable replaces the classname table.
func WithTable(t map[string]Pos) Option {
	return func(c *Config) { c.Table = t }
}

// WithIgnoreKeys replaces the keys ignored when detecting duplicates.
func WithIgnoreKeys(keys ...string) Option {
	return func(c *Config) { c.IgnoreKeys = keys }
}

// WithStep sets how far up each further kept entity of a class is placed.
func WithStep(s float32) Option {
	return func(c *Config) { c.Step = s }
}

// Stats summarizes what Extract did.
type Stats struct {
	Kept       int
	Duplicates int
	Dropped    int
	Solids     int
	Other      int
}

// Extract rewrites a parsed VMF document in place:
//
//   - "entity" blocks with any "classname" leaf in the table are kept,
//     unless they duplicate an already kept entity. Duplicates are found
//     by comparing against every kept entity, of any class, with the
//     ignored keys left out; "classname" is among the default ignored
//     keys. A kept entity's "origin" is set to the position of its last
//     "classname" leaf, which then moves up by the step. A last
//     classname missing from the table starts at the zero position.
//   - every other "entity" block is tombstoned, as are duplicates.
//   - "solid" blocks of "world" are tombstoned, the rest of world stays.
//   - any other top level entry is tombstoned.
//
// Tombstones are dropped when the tree is encoded.
func Extract(doc *ir.Tree, opts ...Option) (Stats, error) {
	cfg := &Config{
		Table:      DefaultTable(),
		IgnoreKeys: DefaultIgnoreKeys(),
		Step:       DefaultStep,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	next := make(map[string]Pos, len(cfg.Table))
	for k, v := range cfg.Table {
		next[k] = v
	}
	var kept []*ir.Tree
	var stats Stats
	for _, e := range doc.All() {
		switch {
		case e.IsTombstone():
		case e.Key == "entity" && e.IsTree():
			keep, err := entity(e, cfg, next, &kept, &stats)
			if err != nil {
				return stats, err
			}
			if !keep {
				e.Clear()
			}
		case e.Key == "world" && e.IsTree():
			for _, we := range e.Value.Tree.All() {
				if we.Key == "solid" {
					we.Clear()
					stats.Solids++
				}
			}
		default:
			if debug.Env() {
				debug.Logf("dropping top level %q\n", e.Key)
			}
			e.Clear()
			stats.Other++
		}
	}
	return stats, nil
}

func entity(e *ir.Entry, cfg *Config, next map[string]Pos, kept *[]*ir.Tree, stats *Stats) (bool, error) {
	ent := e.Value.Tree
	var (
		classname string
		origin    *ir.Entry
		keep      bool
	)
	for _, ee := range ent.All() {
		switch {
		case ee.Key == "classname" && ee.IsLeaf():
			classname = ee.Value.String
			if _, ok := cfg.Table[classname]; ok {
				keep = true
			}
		case ee.Key == "origin" && ee.IsLeaf():
			origin = ee
		}
	}
	if !keep {
		stats.Dropped++
		return false, nil
	}
	for _, other := range *kept {
		same, err := ir.Compare(ent, other, cfg.IgnoreKeys, true)
		if err != nil {
			return false, err
		}
		if same {
			if debug.Env() {
				debug.Logf("duplicate %s:\n%v", classname, ent)
			}
			stats.Duplicates++
			return false, nil
		}
	}
	*kept = append(*kept, ent)
	stats.Kept++
	if origin != nil {
		p := next[classname]
		origin.SetLeaf(p.String())
		p.Z += cfg.Step
		next[classname] = p
	}
	return true, nil
}

// OutputPath returns the path Extract results for path are written to.
func OutputPath(path string) string {
	return path + ".env.vmf"
}

// IsVMF reports whether path names a VMF file.
func IsVMF(path string) bool {
	return strings.HasSuffix(path, ".vmf")
}
