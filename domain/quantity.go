// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/gofv/expr"
	"github.com/cpmech/gofv/qty"
)

// SetQuantity assigns vals directly to the named field's centroid values.
func (o *Domain) SetQuantity(name string, vals []float64) error {
	f, err := o.GetQuantity(name)
	if err != nil {
		return err
	}
	return f.SetFromSlice(vals)
}

// SetQuantityConstant assigns a uniform value to the named field's centroid values.
func (o *Domain) SetQuantityConstant(name string, v float64) error {
	f, err := o.GetQuantity(name)
	if err != nil {
		return err
	}
	f.SetConstant(v)
	return nil
}

// SetQuantityFromFunction evaluates fcn(t, x) over every centroid and
// assigns the named field.
func (o *Domain) SetQuantityFromFunction(name string, t float64, fcn fun.TimeSpace) error {
	f, err := o.GetQuantity(name)
	if err != nil {
		return err
	}
	f.SetFromFunction(t, fcn)
	return nil
}

// SetQuantityFromExpression evaluates expression over the registry and
// assigns the result's centroid values to the named field.
func (o *Domain) SetQuantityFromExpression(name, expression string) error {
	f, err := o.GetQuantity(name)
	if err != nil {
		return err
	}
	derived, err := expr.Eval(expression, o.Fields)
	if err != nil {
		return err
	}
	return f.SetFromSlice(derived.Centroid)
}

// AddQuantity forms a temporary field from vals and assigns name ← name + temp.
func (o *Domain) AddQuantity(name string, vals []float64) error {
	f, err := o.GetQuantity(name)
	if err != nil {
		return err
	}
	temp := f.Clone()
	if err := temp.SetFromSlice(vals); err != nil {
		return err
	}
	sum, err := qty.Binary(f, temp, '+')
	if err != nil {
		return err
	}
	return f.SetFromSlice(sum.Centroid)
}

// AddQuantityFromExpression forms a temporary field from expression and assigns name ← name + temp.
func (o *Domain) AddQuantityFromExpression(name, expression string) error {
	f, err := o.GetQuantity(name)
	if err != nil {
		return err
	}
	temp, err := expr.Eval(expression, o.Fields)
	if err != nil {
		return err
	}
	sum, err := qty.Binary(f, temp, '+')
	if err != nil {
		return err
	}
	return f.SetFromSlice(sum.Centroid)
}

// CreateQuantityFromExpression evaluates expression and returns a fresh
// Field without mutating the domain.
func (o *Domain) CreateQuantityFromExpression(expression string) (*qty.Field, error) {
	return expr.Eval(expression, o.Fields)
}
