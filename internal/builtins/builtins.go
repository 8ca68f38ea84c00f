package builtins

import "github.com/cwbudde/yl/internal/value"

// Global constructs the root environment: a single Frame holding every
// built-in name, with no parent (spec §4.2's root frame). Grounded on
// original_source/src/yl/eval.cpp's global_environment, split across one
// register* call per concern instead of one flat literal table.
func Global() *value.Env {
	root := value.NewFrame()
	registerArithmetic(root)
	registerComparisons(root)
	registerQuote(root)
	registerListOps(root)
	registerConvert(root)
	registerIO(root)
	registerBind(root)
	registerLambda(root)
	registerControl(root)
	registerPredicates(root)
	registerHelp(root)
	return value.Push(root, nil)
}
