package dbg

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Deep, deterministic dump of any value for verbose output.
func Dump(values ...interface{}) string {
	return dumpConfig.Sdump(values...)
}
