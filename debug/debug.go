package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Env      bool
	Select   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("VDF_DEBUG_TOKENIZE")
	d.Parse = boolEnv("VDF_DEBUG_PARSE")
	d.Env = boolEnv("VDF_DEBUG_ENV")
	d.Select = boolEnv("VDF_DEBUG_SELECT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Env() bool {
	return d.Env
}
func Select() bool {
	return d.Select
}
