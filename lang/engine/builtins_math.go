package engine

import (
	"math"

	"github.com/nedbat/stilted/lang/object"
)

func registerMath(d *object.DictVal) {
	reg(d, "add", opAdd)
	reg(d, "sub", opSub)
	reg(d, "mul", opMul)
	reg(d, "div", opDiv)
	reg(d, "idiv", opIDiv)
	reg(d, "mod", opMod)
	reg(d, "neg", opNeg)
	reg(d, "abs", opAbs)
	reg(d, "ceiling", opCeiling)
	reg(d, "floor", opFloor)
	reg(d, "round", opRound)
	reg(d, "truncate", opTruncate)
	reg(d, "sqrt", opSqrt)
	reg(d, "exp", opExp)
	reg(d, "ln", opLn)
	reg(d, "log", opLog)
	reg(d, "sin", opSin)
	reg(d, "cos", opCos)
	reg(d, "atan", opAtan)
	reg(d, "rand", opRand)
	reg(d, "srand", opSrand)
	reg(d, "rrand", opRrand)
}

// intOrReal returns an Int object if v fits exactly in int32, else a Real.
func intOrReal(v int64) object.Object {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return object.Int(int32(v))
	}
	return object.Real(float64(v))
}

func popTwoNumbers(e *Engine) (object.Object, object.Object, error) {
	b, err := e.Pop()
	if err != nil {
		return object.Object{}, object.Object{}, err
	}
	a, err := e.Pop()
	if err != nil {
		return object.Object{}, object.Object{}, err
	}
	if err := object.TypeCheck(object.IsNumber, a, b); err != nil {
		return object.Object{}, object.Object{}, err
	}
	return a, b, nil
}

func popOneNumber(e *Engine) (object.Object, error) {
	a, err := e.Pop()
	if err != nil {
		return object.Object{}, err
	}
	if err := object.TypeCheck(object.IsNumber, a); err != nil {
		return object.Object{}, err
	}
	return a, nil
}

func opAdd(e *Engine) error {
	a, b, err := popTwoNumbers(e)
	if err != nil {
		return err
	}
	if a.Tag == object.TagInt && b.Tag == object.TagInt {
		e.Push(intOrReal(int64(a.Int) + int64(b.Int)))
	} else {
		e.Push(object.Real(a.NumberValue() + b.NumberValue()))
	}
	return nil
}

func opSub(e *Engine) error {
	a, b, err := popTwoNumbers(e)
	if err != nil {
		return err
	}
	if a.Tag == object.TagInt && b.Tag == object.TagInt {
		e.Push(intOrReal(int64(a.Int) - int64(b.Int)))
	} else {
		e.Push(object.Real(a.NumberValue() - b.NumberValue()))
	}
	return nil
}

func opMul(e *Engine) error {
	a, b, err := popTwoNumbers(e)
	if err != nil {
		return err
	}
	if a.Tag == object.TagInt && b.Tag == object.TagInt {
		e.Push(intOrReal(int64(a.Int) * int64(b.Int)))
	} else {
		e.Push(object.Real(a.NumberValue() * b.NumberValue()))
	}
	return nil
}

func opDiv(e *Engine) error {
	a, b, err := popTwoNumbers(e)
	if err != nil {
		return err
	}
	if b.NumberValue() == 0 {
		return object.NewTilted(object.ErrUndefinedResult, "division by zero")
	}
	e.Push(object.Real(a.NumberValue() / b.NumberValue()))
	return nil
}

func opIDiv(e *Engine) error {
	a, b, err := e.Pop2IntOnly()
	if err != nil {
		return err
	}
	if b == 0 {
		return object.NewTilted(object.ErrUndefinedResult, "division by zero")
	}
	e.Push(object.Int(a / b))
	return nil
}

func opMod(e *Engine) error {
	a, b, err := e.Pop2IntOnly()
	if err != nil {
		return err
	}
	if b == 0 {
		return object.NewTilted(object.ErrUndefinedResult, "modulo by zero")
	}
	e.Push(object.Int(a % b))
	return nil
}

// Pop2IntOnly pops two operands that must both be integers (idiv/mod fail
// typecheck on reals, unlike every other arithmetic operator).
func (e *Engine) Pop2IntOnly() (int32, int32, error) {
	b, err := e.Pop()
	if err != nil {
		return 0, 0, err
	}
	a, err := e.Pop()
	if err != nil {
		return 0, 0, err
	}
	if err := object.TypeCheck(object.Is(object.TagInt), a, b); err != nil {
		return 0, 0, err
	}
	return a.Int, b.Int, nil
}

func opNeg(e *Engine) error {
	a, err := popOneNumber(e)
	if err != nil {
		return err
	}
	if a.Tag == object.TagInt {
		e.Push(intOrReal(-int64(a.Int)))
	} else {
		e.Push(object.Real(-a.Real))
	}
	return nil
}

func opAbs(e *Engine) error {
	a, err := popOneNumber(e)
	if err != nil {
		return err
	}
	if a.Tag == object.TagInt {
		e.Push(intOrReal(int64(math.Abs(float64(a.Int)))))
	} else {
		e.Push(object.Real(math.Abs(a.Real)))
	}
	return nil
}

func opCeiling(e *Engine) error { return roundingOp(e, math.Ceil) }
func opFloor(e *Engine) error   { return roundingOp(e, math.Floor) }
func opTruncate(e *Engine) error {
	return roundingOp(e, math.Trunc)
}
func opRound(e *Engine) error {
	return roundingOp(e, func(f float64) float64 { return math.Floor(f + 0.5) })
}

func roundingOp(e *Engine, fn func(float64) float64) error {
	a, err := popOneNumber(e)
	if err != nil {
		return err
	}
	if a.Tag == object.TagInt {
		e.Push(a)
		return nil
	}
	e.Push(object.Real(fn(a.Real)))
	return nil
}

func opSqrt(e *Engine) error {
	a, err := popOneNumber(e)
	if err != nil {
		return err
	}
	if a.NumberValue() < 0 {
		return object.NewTilted(object.ErrRangeCheck, "")
	}
	e.Push(object.Real(math.Sqrt(a.NumberValue())))
	return nil
}

func opExp(e *Engine) error {
	a, b, err := popTwoNumbers(e)
	if err != nil {
		return err
	}
	e.Push(object.Real(math.Pow(a.NumberValue(), b.NumberValue())))
	return nil
}

func opLn(e *Engine) error {
	a, err := popOneNumber(e)
	if err != nil {
		return err
	}
	e.Push(object.Real(math.Log(a.NumberValue())))
	return nil
}

func opLog(e *Engine) error {
	a, err := popOneNumber(e)
	if err != nil {
		return err
	}
	e.Push(object.Real(math.Log10(a.NumberValue())))
	return nil
}

func opSin(e *Engine) error {
	a, err := popOneNumber(e)
	if err != nil {
		return err
	}
	e.Push(object.Real(math.Sin(a.NumberValue() * math.Pi / 180)))
	return nil
}

func opCos(e *Engine) error {
	a, err := popOneNumber(e)
	if err != nil {
		return err
	}
	e.Push(object.Real(math.Cos(a.NumberValue() * math.Pi / 180)))
	return nil
}

func opAtan(e *Engine) error {
	num, den, err := popTwoNumbers(e)
	if err != nil {
		return err
	}
	deg := math.Atan2(num.NumberValue(), den.NumberValue()) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	e.Push(object.Real(deg))
	return nil
}
