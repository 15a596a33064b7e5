package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Event bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("NETVENT_DEBUG_PARSE")
	d.Event = boolEnv("NETVENT_DEBUG_EVENT")
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
func Event() bool {
	return d.Event
}

func Printf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
