package vdf

import (
	"fmt"
	"strings"

	"github.com/signadot/go-vdf/debug"
	"github.com/signadot/go-vdf/ir"

	"github.com/expr-lang/expr"
)

// Match is an entry selected by Select along with its key path.
type Match struct {
	Path  []string
	Entry *ir.Entry
}

func (m *Match) PathString() string {
	return strings.Join(m.Path, ".")
}

type SelectConfig struct {
	MaxDepth int
}

type SelectOpt func(*SelectConfig)

// SelectMaxDepth limits selection to entries at most d levels deep, the
// top level being depth 0. A negative d means no limit.
func SelectMaxDepth(d int) SelectOpt {
	return func(c *SelectConfig) { c.MaxDepth = d }
}

// Select evaluates the boolean expr-lang predicate for every entry of doc,
// depth first, and returns the entries for which it holds.
//
// The predicate sees the variables
//
//	key    string  the entry key
//	value  string  the leaf value, "" for subtrees
//	leaf   bool    whether the entry is a leaf
//	depth  int     nesting depth, 0 at the top level
//	path   string  dotted key path of the entry
//
// and the functions get(k) string, returning the first leaf child with key
// k of a subtree entry, and has(k) bool.
//
//	key == "entity" && get("classname") startsWith "light"
func Select(doc *ir.Tree, predicate string, opts ...SelectOpt) ([]Match, error) {
	cfg := &SelectConfig{MaxDepth: -1}
	for _, opt := range opts {
		opt(cfg)
	}
	var cur *ir.Entry
	prg, err := expr.Compile(predicate,
		expr.Env(selectEnv(nil, nil)),
		expr.AsBool(),
		expr.Function("get", func(params ...any) (any, error) {
			if cur == nil || !cur.IsTree() {
				return "", nil
			}
			v, _ := cur.Value.Tree.GetString(params[0].(string))
			return v, nil
		},
			new(func(string) string)),
		expr.Function("has", func(params ...any) (any, error) {
			if cur == nil || !cur.IsTree() {
				return false, nil
			}
			return cur.Value.Tree.Get(params[0].(string)) != nil, nil
		},
			new(func(string) bool)),
	)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", predicate, err)
	}
	var (
		res    []Match
		runErr error
	)
	doc.Walk(func(path []string, e *ir.Entry) bool {
		if runErr != nil {
			return false
		}
		depth := len(path) - 1
		if cfg.MaxDepth >= 0 && depth > cfg.MaxDepth {
			return false
		}
		cur = e
		out, err := expr.Run(prg, selectEnv(path, e))
		if err != nil {
			runErr = fmt.Errorf("evaluating at %s: %w", strings.Join(path, "."), err)
			return false
		}
		if out.(bool) {
			if debug.Select() {
				debug.Logf("select matched %s\n", strings.Join(path, "."))
			}
			res = append(res, Match{Path: path, Entry: e})
		}
		return true
	})
	if runErr != nil {
		return nil, runErr
	}
	return res, nil
}

func selectEnv(path []string, e *ir.Entry) map[string]any {
	env := map[string]any{
		"key":   "",
		"value": "",
		"leaf":  false,
		"depth": 0,
		"path":  "",
	}
	if e == nil {
		return env
	}
	env["key"] = e.Key
	env["leaf"] = e.IsLeaf()
	if e.IsLeaf() {
		env["value"] = e.Value.String
	}
	env["depth"] = len(path) - 1
	env["path"] = strings.Join(path, ".")
	return env
}
