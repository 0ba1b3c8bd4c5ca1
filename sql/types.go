// Copyright 2026 Vireo Data, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/src-d/go-errors.v1"
)

// ErrConvertingValue is returned when a value cannot be converted to the
// requested type.
var ErrConvertingValue = errors.NewKind("value %v cannot be converted to %s")

// Type is the result type of an expression.
type Type interface {
	fmt.Stringer
	// Convert coerces v to the go representation of the type.
	Convert(v interface{}) (interface{}, error)
}

var (
	// Boolean is a boolean type.
	Boolean Type = booleanType{}
	// Int32 is a 32-bit integer type.
	Int32 Type = int32Type{}
	// Int64 is a 64-bit integer type.
	Int64 Type = int64Type{}
	// Float64 is a 64-bit floating point type.
	Float64 Type = float64Type{}
	// Text is a string type.
	Text Type = textType{}
	// Timestamp is a date and time type.
	Timestamp Type = timestampType{}
)

type booleanType struct{}

func (booleanType) String() string { return "BOOLEAN" }

func (t booleanType) Convert(v interface{}) (interface{}, error) {
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, ErrConvertingValue.New(v, t)
	}
	return b, nil
}

type int32Type struct{}

func (int32Type) String() string { return "INT" }

func (t int32Type) Convert(v interface{}) (interface{}, error) {
	i, err := cast.ToInt32E(v)
	if err != nil {
		return nil, ErrConvertingValue.New(v, t)
	}
	return i, nil
}

type int64Type struct{}

func (int64Type) String() string { return "BIGINT" }

func (t int64Type) Convert(v interface{}) (interface{}, error) {
	i, err := cast.ToInt64E(v)
	if err != nil {
		return nil, ErrConvertingValue.New(v, t)
	}
	return i, nil
}

type float64Type struct{}

func (float64Type) String() string { return "DOUBLE" }

func (t float64Type) Convert(v interface{}) (interface{}, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, ErrConvertingValue.New(v, t)
	}
	return f, nil
}

type textType struct{}

func (textType) String() string { return "TEXT" }

func (t textType) Convert(v interface{}) (interface{}, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, ErrConvertingValue.New(v, t)
	}
	return s, nil
}

type timestampType struct{}

func (timestampType) String() string { return "TIMESTAMP" }

func (t timestampType) Convert(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case time.Time:
		return v.UTC(), nil
	default:
		ts, err := cast.ToTimeE(v)
		if err != nil {
			return nil, ErrConvertingValue.New(v, t)
		}
		return ts.UTC(), nil
	}
}
