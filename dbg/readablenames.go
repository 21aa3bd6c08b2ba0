package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for pointer identities, such as trace graph nodes, so that
// debug logs say "BraveOtter" instead of "0xc000123456". Names are handed out
// lazily in order of demand and are never released, so only use this from
// debug output.

var memo = make(map[interface{}]string)

func init() {
	// The same name doesn't refer to the same thing between runs, and making
	// the names nondeterministic is a reminder of that.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", capitalize(petname.Adjective()), capitalize(petname.Name()))
	memo[obj] = name
	return name
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
