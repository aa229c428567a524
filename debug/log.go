package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/go-vdf/encode"
	"github.com/signadot/go-vdf/ir"
)

type VDF struct{ *ir.Tree }

func (v VDF) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v.Tree, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Tree] %v", v.Tree)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Tree:
			args[i] = VDF{x}.String()
		case *ir.Entry:
			t := ir.NewTree(*x)
			args[i] = VDF{t}.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
