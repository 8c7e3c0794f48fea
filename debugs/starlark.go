package debugs

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

var ErrCycle = errors.New("cyclic value")

// toStarlarkValue converts a Go value for a Tap session.
// Structs become dicts of their exported fields; functions are wrapped callables.
func toStarlarkValue(v any) (starlark.Value, error) {
	return (&converter{
		visiting: make(map[uintptr]bool),
	}).convert(reflect.ValueOf(v))
}

type converter struct {
	visiting map[uintptr]bool
}

var (
	bytesType    = reflect.TypeFor[[]byte]()
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
	valueType    = reflect.TypeFor[starlark.Value]()
)

func (c *converter) convert(value reflect.Value) (starlark.Value, error) {
	if !value.IsValid() {
		return starlark.None, nil
	}
	if value.Type().Implements(valueType) && value.CanInterface() {
		if v, ok := value.Interface().(starlark.Value); ok && v != nil {
			return v, nil
		}
	}

	switch value.Type() {
	case bytesType:
		return starlark.Bytes(value.Bytes()), nil
	case durationType:
		return starlark.String(time.Duration(value.Int()).String()), nil
	case timeType:
		return starlark.String(value.Interface().(time.Time).Format(time.RFC3339Nano)), nil
	}

	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool()), nil

	case reflect.String:
		return starlark.String(value.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return starlark.MakeUint64(value.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float()), nil

	case reflect.Slice:
		if value.IsNil() {
			return starlark.NewList(nil), nil
		}
		if err := c.enter(value); err != nil {
			return nil, err
		}
		defer c.leave(value)
		return c.list(value)

	case reflect.Array:
		return c.list(value)

	case reflect.Map:
		if err := c.enter(value); err != nil {
			return nil, err
		}
		defer c.leave(value)
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			key, err := c.convert(iter.Key())
			if err != nil {
				return nil, err
			}
			elem, err := c.convert(iter.Value())
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(key, elem); err != nil {
				return nil, err
			}
		}
		return d, nil

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			elem, err := c.convert(value.Field(i))
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			if err := d.SetKey(starlark.String(field.Name), elem); err != nil {
				return nil, err
			}
		}
		return d, nil

	case reflect.Pointer:
		if value.IsNil() {
			return starlark.None, nil
		}
		if err := c.enter(value); err != nil {
			return nil, err
		}
		defer c.leave(value)
		return c.convert(value.Elem())

	case reflect.Interface:
		if value.IsNil() {
			return starlark.None, nil
		}
		return c.convert(value.Elem())

	case reflect.Func:
		if value.IsNil() {
			return starlark.None, nil
		}
		return starlarkutil.MakeFunc("", value.Interface()), nil

	}

	return nil, fmt.Errorf("unsupported type for starlark: %v", value.Type())
}

func (c *converter) list(value reflect.Value) (starlark.Value, error) {
	elems := make([]starlark.Value, value.Len())
	for i := range value.Len() {
		elem, err := c.convert(value.Index(i))
		if err != nil {
			return nil, err
		}
		elems[i] = elem
	}
	return starlark.NewList(elems), nil
}

// enter tracks reference values on the current path so that a value reachable from itself is reported, not followed.
func (c *converter) enter(value reflect.Value) error {
	ptr := value.Pointer()
	if c.visiting[ptr] {
		return fmt.Errorf("%w: %v", ErrCycle, value.Type())
	}
	c.visiting[ptr] = true
	return nil
}

func (c *converter) leave(value reflect.Value) {
	delete(c.visiting, value.Pointer())
}
