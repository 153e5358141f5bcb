package engine

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"

	sqlite "modernc.org/sqlite"
)

// ErrArgumentType is returned by a frac_* function whose argument has a SQL
// storage class it cannot read as a fraction.
var ErrArgumentType = errors.New("unsupported argument type")

type scalarImpl func(args []driver.Value) (driver.Value, error)

type scalarFunction struct {
	name  string
	nArgs int32
	impl  scalarImpl
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterFunctions registers the frac_* and vec_* scalar functions with the
// driver so they are available on new connections opened after this call.
// Existing open connections will not see new functions. Calling it more than
// once is harmless.
func RegisterFunctions() error {
	registerOnce.Do(func() {
		all := append(fractionFunctions(), vectorFunctions()...)
		for _, fn := range all {
			if err := sqlite.RegisterDeterministicScalarFunction(fn.name, fn.nArgs, fn.wrap()); err != nil {
				registerErr = fmt.Errorf("engine: register %s: %w", fn.name, err)
				return
			}
		}
	})
	return registerErr
}

// wrap validates arity and maps any NULL argument to a NULL result.
func (f scalarFunction) wrap() func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if len(args) != int(f.nArgs) {
			return nil, fmt.Errorf("%s: expected %d arguments, got %d", f.name, f.nArgs, len(args))
		}
		for _, arg := range args {
			if arg == nil {
				return nil, nil
			}
		}
		out, err := f.impl(args)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		return out, nil
	}
}
