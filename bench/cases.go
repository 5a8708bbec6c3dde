package bench

import (
	"fmt"
	"strings"

	"github.com/sarchlab/rnspim/api"
	"github.com/sarchlab/rnspim/rns"
)

// Op is the elementwise operation a case measures.
type Op int

const (
	OpAdd Op = iota
	OpMul
)

// Name returns the name of the operation.
func (o Op) Name() string {
	switch o {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	default:
		panic("invalid op")
	}
}

// Mode is the part of the offload path a case puts under the timer.
type Mode int

const (
	// ModeHost runs the operation on the host.
	ModeHost Mode = iota
	// ModeExecute times the kernel with the operands already on the fleet.
	ModeExecute
	// ModeFused times copy in, execution, and copy out together.
	ModeFused
	// ModeCopyTo times the copy of both operands to the fleet.
	ModeCopyTo
	// ModeCopyFrom times the copy of the result back to the host.
	ModeCopyFrom
)

// Case is one benchmark of the sweep.
type Case struct {
	Name string
	Op   Op
	Mode Mode
}

// AllCases returns every benchmark case in report order.
func AllCases() []Case {
	return []Case{
		{"host_add", OpAdd, ModeHost},
		{"pim_add_wo_copy", OpAdd, ModeExecute},
		{"pim_add_w_copy", OpAdd, ModeFused},
		{"pim_add_copy_to", OpAdd, ModeCopyTo},
		{"pim_add_copy_from", OpAdd, ModeCopyFrom},
		{"host_mul", OpMul, ModeHost},
		{"pim_mul_wo_copy", OpMul, ModeExecute},
		{"pim_mul_w_copy", OpMul, ModeFused},
		{"pim_mul_copy_to", OpMul, ModeCopyTo},
		{"pim_mul_copy_from", OpMul, ModeCopyFrom},
	}
}

// FindCases resolves case names. No names selects every case.
func FindCases(names []string) ([]Case, error) {
	all := AllCases()
	if len(names) == 0 {
		return all, nil
	}

	cases := make([]Case, 0, len(names))
	for _, name := range names {
		found := false
		for _, c := range all {
			if c.Name == strings.TrimSpace(name) {
				cases = append(cases, c)
				found = true
				break
			}
		}

		if !found {
			return nil, fmt.Errorf("unknown benchmark case %q", name)
		}
	}

	return cases, nil
}

// Measure is what one timed iteration reports besides wall time. Device
// time covers the simulated execution and the modeled host transfers.
type Measure struct {
	DeviceSeconds float64
	Bytes         int64
}

func (m *Measure) add(other Measure) {
	m.DeviceSeconds += other.DeviceSeconds
	m.Bytes += other.Bytes
}

func copyMeasure(s api.CopyStats) Measure {
	return Measure{
		DeviceSeconds: s.DeviceSeconds,
		Bytes:         s.Bytes,
	}
}

// Body is the timed part of a case.
type Body func() (Measure, error)

// KernelPath returns the kernel image the case loads.
func (c Case) KernelPath(ctx *Context) string {
	if c.Op == OpMul {
		return ctx.Config.Kernels.Mul
	}

	return ctx.Config.Kernels.Add
}

// Prepare loads the kernel, stages the operands the timed part expects, and
// returns the timed part. The operand pair is reused by every iteration.
func (c Case) Prepare(ctx *Context, towers int) (Body, error) {
	a, b, err := ctx.Pair(towers)
	if err != nil {
		return nil, err
	}

	if c.Mode == ModeHost {
		return c.hostBody(ctx, towers)
	}

	orch := ctx.Orch
	if err := orch.LoadBinary(c.KernelPath(ctx)); err != nil {
		return nil, err
	}

	if c.Mode == ModeExecute || c.Mode == ModeCopyFrom {
		if err := orch.CopyToDevice(a, b); err != nil {
			return nil, err
		}
	}

	if c.Mode == ModeCopyFrom {
		if err := orch.Execute(); err != nil {
			return nil, err
		}
	}

	switch c.Mode {
	case ModeExecute:
		return func() (Measure, error) {
			err := orch.Execute()
			return Measure{
				DeviceSeconds: orch.LastExecution().DeviceSeconds,
			}, err
		}, nil
	case ModeCopyTo:
		return func() (Measure, error) {
			err := orch.CopyToDevice(a, b)
			return copyMeasure(orch.LastCopy()), err
		}, nil
	case ModeCopyFrom:
		return func() (Measure, error) {
			err := orch.CopyFromDevice(a)
			return copyMeasure(orch.LastCopy()), err
		}, nil
	case ModeFused:
		return func() (Measure, error) {
			return fused(ctx, a, b)
		}, nil
	default:
		panic("invalid mode")
	}
}

func (c Case) hostBody(ctx *Context, towers int) (Body, error) {
	set, err := ctx.Set(towers)
	if err != nil {
		return nil, err
	}

	a := ctx.Arena.Poly(set.Polys[0])
	b := ctx.Arena.Poly(set.Polys[1])

	op := rns.HostAdd
	if c.Op == OpMul {
		op = rns.HostMul
	}

	return func() (Measure, error) {
		op(set.Params, a, b)
		return Measure{}, nil
	}, nil
}
