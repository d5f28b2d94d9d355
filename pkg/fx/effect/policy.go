package effect

import "github.com/ib-77/sidefx/pkg/fx/core"

// Policy decides how a fallible effect's failure reaches its caller.
type Policy = core.Policy

var (
	Propagate = core.Propagate
	Handle    = core.Handle
	Ignore    = core.Ignore
)
