package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Wire  bool
	Pack  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TERN_DEBUG_PARSE")
	d.Wire = boolEnv("TERN_DEBUG_WIRE")
	d.Pack = boolEnv("TERN_DEBUG_PACK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Wire() bool {
	return d.Wire
}
func Pack() bool {
	return d.Pack
}
