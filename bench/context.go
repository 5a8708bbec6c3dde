// Package bench times RNS modular addition and multiplication on the host
// against the same operations offloaded to a PIM fleet.
package bench

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sarchlab/rnspim/api"
	"github.com/sarchlab/rnspim/config"
	"github.com/sarchlab/rnspim/pim"
	"github.com/sarchlab/rnspim/rns"
	valgen "github.com/sarchlab/rnspim/util"
)

// PolyNum is the number of operand polynomials prepared per tower count.
const PolyNum = 2

var (
	// ErrNoOperands is returned for a tower count the context was not
	// prepared for.
	ErrNoOperands = errors.New("no operands for tower count")

	// ErrOperandLength is returned when an operand pair does not have the
	// length its tower count implies.
	ErrOperandLength = errors.New("operand length mismatch")
)

// OperandSet holds the operands generated for one tower count, plus two
// scratch polynomials for result checks.
type OperandSet struct {
	Params  *rns.ParamSet
	Polys   [PolyNum]rns.Handle
	Scratch [2]rns.Handle
}

// Context carries everything the benchmark cases share. It is built once and
// passed to every case.
type Context struct {
	Config config.Config
	Arena  *rns.Arena
	Orch   api.Orchestrator

	sets map[int]*OperandSet
}

// NewContext generates the parameters and operands of every tower count in
// the configuration.
func NewContext(cfg config.Config, orch api.Orchestrator) (*Context, error) {
	ctx := &Context{
		Config: cfg,
		Arena:  rns.NewArena(),
		Orch:   orch,
		sets:   make(map[int]*OperandSet),
	}

	for _, towers := range cfg.Towers {
		if _, ok := ctx.sets[towers]; ok {
			continue
		}

		ps, err := rns.GenerateParams(cfg.RingDimLog, towers, cfg.ModulusBits)
		if err != nil {
			return nil, fmt.Errorf("towers %d: %w", towers, err)
		}

		set := &OperandSet{Params: ps}
		seeds := valgen.MakeSeedGen(cfg.Seed, towers)

		for i := range set.Polys {
			h := ctx.Arena.NewPoly(ps)

			if err := rns.SampleUniform(ps, ctx.Arena.Poly(h), seeds()); err != nil {
				return nil, err
			}

			set.Polys[i] = h
		}

		for i := range set.Scratch {
			set.Scratch[i] = ctx.Arena.NewPoly(ps)
		}

		ctx.sets[towers] = set

		slog.Debug("Operands",
			"towers", towers, "params", ps.String(), "moduli", ps.Moduli())
	}

	return ctx, nil
}

// Set returns the operands of a tower count.
func (c *Context) Set(towers int) (*OperandSet, error) {
	set, ok := c.sets[towers]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoOperands, towers)
	}

	return set, nil
}

// Pair returns the fleet views of the operand pair of a tower count. Both
// views must hold towers times N words.
func (c *Context) Pair(towers int) (a, b pim.Operand, err error) {
	set, err := c.Set(towers)
	if err != nil {
		return nil, nil, err
	}

	a = c.Arena.Operand(set.Polys[0])
	b = c.Arena.Operand(set.Polys[1])

	if err := checkLength(a, b, towers*set.Params.N()); err != nil {
		return nil, nil, fmt.Errorf("towers %d: %w", towers, err)
	}

	return a, b, nil
}

func checkLength(a, b pim.Operand, want int) error {
	if a.Len() != want || b.Len() != want {
		return fmt.Errorf("%w: got %d and %d words, want %d",
			ErrOperandLength, a.Len(), b.Len(), want)
	}

	return nil
}
