//go:build mathdebug

package math

import (
	"fmt"

	"github.com/spaghettifunk/ogltech/engine/core"
)

func debugAssert(ok bool, what string) {
	if !ok {
		panic(fmt.Errorf("%s: %w", what, core.ErrDegenerateInput))
	}
}
