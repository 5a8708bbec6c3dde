package bench

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sarchlab/rnspim/pim"
	"github.com/sarchlab/rnspim/rns"
)

// ErrMismatch is returned when the fleet computes a different result than
// the host.
var ErrMismatch = errors.New("offload result differs from host result")

// fused runs copy in, execution, and copy out. The device time and bytes
// of the three phases add up.
func fused(ctx *Context, a, b pim.Operand) (Measure, error) {
	var m Measure

	if err := ctx.Orch.CopyToDevice(a, b); err != nil {
		return m, err
	}
	m.add(copyMeasure(ctx.Orch.LastCopy()))

	if err := ctx.Orch.Execute(); err != nil {
		return m, err
	}
	m.DeviceSeconds += ctx.Orch.LastExecution().DeviceSeconds

	if err := ctx.Orch.CopyFromDevice(a); err != nil {
		return m, err
	}
	m.add(copyMeasure(ctx.Orch.LastCopy()))

	return m, nil
}

// Verify offloads both operations for every tower count and compares the
// results with the host reference. The operands are left untouched.
func Verify(ctx *Context) error {
	for _, towers := range ctx.Config.Towers {
		for _, op := range []Op{OpAdd, OpMul} {
			if err := verifyOne(ctx, towers, op); err != nil {
				return err
			}
		}
	}

	return nil
}

func verifyOne(ctx *Context, towers int, op Op) error {
	set, err := ctx.Set(towers)
	if err != nil {
		return err
	}

	want, got := set.Scratch[0], set.Scratch[1]
	ctx.Arena.CopyInto(want, set.Polys[0])
	ctx.Arena.CopyInto(got, set.Polys[0])

	b := ctx.Arena.Poly(set.Polys[1])
	if op == OpMul {
		rns.HostMul(set.Params, ctx.Arena.Poly(want), b)
	} else {
		rns.HostAdd(set.Params, ctx.Arena.Poly(want), b)
	}

	path := ctx.Config.Kernels.Add
	if op == OpMul {
		path = ctx.Config.Kernels.Mul
	}

	if err := ctx.Orch.LoadBinary(path); err != nil {
		return err
	}

	gotOp := ctx.Arena.Operand(got)
	if _, err := fused(ctx, gotOp, ctx.Arena.Operand(set.Polys[1])); err != nil {
		return err
	}

	wantOp := ctx.Arena.Operand(want)
	for t := range wantOp {
		for i := range wantOp[t].Coeffs {
			if gotOp[t].Coeffs[i] != wantOp[t].Coeffs[i] {
				return fmt.Errorf("%w: %s, %d towers, tower %d word %d: %d != %d",
					ErrMismatch, op.Name(), towers, t, i,
					gotOp[t].Coeffs[i], wantOp[t].Coeffs[i])
			}
		}
	}

	slog.Info("Verified", "op", op.Name(), "towers", towers)

	return nil
}
