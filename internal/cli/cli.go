// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package cli implements the linear command, which
// evaluates vector and matrix operations given on the
// command line.
//
// Operands are flow sequences in YAML or JSON notation,
// such as [1, 2, 3]. Results are printed as YAML.
package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/gviegas/linear"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	log     *zap.Logger
}

// NewRootCmd creates the root command and its
// subcommands. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}
	root := &cobra.Command{
		Use:               "linear",
		Short:             "Evaluate vector and matrix operations",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	f := root.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	f.String("log-level", "warn", "log level (debug, info, warn, error)")
	f.Int("precision", -1, "round results to this many decimal places")
	cobra.CheckErr(bindFlags(a.v, f, map[string]string{
		"log.level":        "log-level",
		"output.precision": "precision",
	}))

	root.AddCommand(
		a.command("det MATRIX", "Determinant of a 4x4 matrix", 1, det),
		a.command("invert MATRIX", "Inverse of a 4x4 matrix", 1, invert),
		a.command("transpose MATRIX", "Transpose of a 4x4 matrix", 1, transpose),
		a.command("multiply MATRIX MATRIX", "Product of two 4x4 matrices", 2, multiply),
		a.command("lerp START END AMOUNT", "Linear interpolation of 2D or 3D vectors", 3, lerp),
		a.command("hermite VALUE1 TANGENT1 VALUE2 TANGENT2 AMOUNT", "Hermite interpolation of 2D or 3D vectors", 5, hermite),
		a.command("catmullrom V1 V2 V3 V4 AMOUNT", "Catmull-Rom interpolation of 3D vectors", 5, catmullRom),
		a.command("cross V W", "Cross product of 3D vectors", 2, cross),
		a.command("dot V W", "Dot product of 2D or 3D vectors", 2, dot),
		a.command("normalize V", "Normalize a 2D or 3D vector", 1, normalize),
		a.command("contains P P0 P1 P2", "Whether P lies strictly inside triangle P0 P1 P2", 4, contains),
	)
	return root
}

// bindFlags binds each config key to the named flag.
func bindFlags(v *viper.Viper, f *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		fl := f.Lookup(name)
		if fl == nil {
			return fmt.Errorf("binding %s: no flag named %q", key, name)
		}
		if err := v.BindPFlag(key, fl); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command, _ []string) (err error) {
	if a.cfg, err = loadConfig(a.v, a.cfgFile); err != nil {
		return
	}
	a.log, err = newLogger(a.cfg.Log, zapcore.AddSync(cmd.ErrOrStderr()))
	return
}

func (a *app) command(use, short string, nargs int, eval func([]string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.log.With(zap.String("op", cmd.Name()), zap.Strings("args", args))
			res, err := eval(args)
			if err != nil {
				log.Debug("evaluation failed", zap.Error(err))
				return fmt.Errorf("%s: %w", cmd.Name(), err)
			}
			res = round(res, a.cfg.Output.Precision)
			log.Debug("evaluated", zap.Any("result", res))
			return printResult(cmd.OutOrStdout(), res)
		},
	}
}

func printResult(w io.Writer, res any) error {
	b, err := yaml.Marshal(res)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func round(res any, prec int) any {
	if prec < 0 {
		return res
	}
	p := math.Pow(10, float64(prec))
	f := func(x float64) float64 {
		// Values too large for the precision are already exact.
		r := x * p
		if math.IsInf(r, 0) || math.IsNaN(r) {
			return x
		}
		return math.Round(r) / p
	}
	switch r := res.(type) {
	case float64:
		return f(r)
	case linear.Vector2:
		return linear.Vector2{X: f(r.X), Y: f(r.Y)}
	case linear.Vector3:
		return linear.Vector3{X: f(r.X), Y: f(r.Y), Z: f(r.Z)}
	case linear.Matrix:
		for i := range r {
			r[i] = f(r[i])
		}
		return r
	}
	return res
}

func parse(arg string, dst any) error {
	if err := yaml.Unmarshal([]byte(arg), dst); err != nil {
		return fmt.Errorf("operand %q: %w", arg, err)
	}
	return nil
}

func parseAmount(arg string) (float64, error) {
	x, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", arg, err)
	}
	return x, nil
}

func parseMatrices(args []string) ([]linear.Matrix, error) {
	ms := make([]linear.Matrix, len(args))
	for i := range args {
		if err := parse(args[i], &ms[i]); err != nil {
			return nil, err
		}
	}
	return ms, nil
}

func parseVector3s(args []string) ([]linear.Vector3, error) {
	vs := make([]linear.Vector3, len(args))
	for i := range args {
		if err := parse(args[i], &vs[i]); err != nil {
			return nil, err
		}
	}
	return vs, nil
}

// parseVectors parses operands that must all be either
// 2D or 3D vectors. It returns the common dimension.
func parseVectors(args []string) (dim int, vs [][]float64, err error) {
	vs = make([][]float64, len(args))
	for i := range args {
		if err = parse(args[i], &vs[i]); err != nil {
			return
		}
		n := len(vs[i])
		switch {
		case n != 2 && n != 3:
			err = fmt.Errorf("operand %q: need 2 or 3 components, have %d", args[i], n)
			return
		case dim != 0 && n != dim:
			err = fmt.Errorf("operand %q: mixed 2D and 3D operands", args[i])
			return
		}
		dim = n
	}
	return
}

func det(args []string) (any, error) {
	ms, err := parseMatrices(args)
	if err != nil {
		return nil, err
	}
	return ms[0].Determinant(), nil
}

func invert(args []string) (any, error) {
	ms, err := parseMatrices(args)
	if err != nil {
		return nil, err
	}
	return ms[0].Invert()
}

func transpose(args []string) (any, error) {
	ms, err := parseMatrices(args)
	if err != nil {
		return nil, err
	}
	return ms[0].Transpose(), nil
}

func multiply(args []string) (any, error) {
	ms, err := parseMatrices(args)
	if err != nil {
		return nil, err
	}
	return ms[0].Multiply(&ms[1]), nil
}

func lerp(args []string) (any, error) {
	t, err := parseAmount(args[2])
	if err != nil {
		return nil, err
	}
	dim, vs, err := parseVectors(args[:2])
	if err != nil {
		return nil, err
	}
	if dim == 2 {
		return linear.LerpVector2(linear.Vector2FromArray(vs[0], 0), linear.Vector2FromArray(vs[1], 0), t), nil
	}
	return linear.LerpVector3(linear.Vector3FromArray(vs[0], 0), linear.Vector3FromArray(vs[1], 0), t), nil
}

func hermite(args []string) (any, error) {
	t, err := parseAmount(args[4])
	if err != nil {
		return nil, err
	}
	dim, vs, err := parseVectors(args[:4])
	if err != nil {
		return nil, err
	}
	if dim == 2 {
		var v [4]linear.Vector2
		for i := range v {
			linear.Vector2FromArrayTo(vs[i], 0, &v[i])
		}
		return linear.HermiteVector2(v[0], v[1], v[2], v[3], t), nil
	}
	var v [4]linear.Vector3
	for i := range v {
		linear.Vector3FromArrayTo(vs[i], 0, &v[i])
	}
	return linear.HermiteVector3(v[0], v[1], v[2], v[3], t), nil
}

func catmullRom(args []string) (any, error) {
	t, err := parseAmount(args[4])
	if err != nil {
		return nil, err
	}
	vs, err := parseVector3s(args[:4])
	if err != nil {
		return nil, err
	}
	return linear.CatmullRomVector3(vs[0], vs[1], vs[2], vs[3], t), nil
}

func cross(args []string) (any, error) {
	vs, err := parseVector3s(args)
	if err != nil {
		return nil, err
	}
	return linear.CrossVector3(vs[0], vs[1]), nil
}

func dot(args []string) (any, error) {
	dim, vs, err := parseVectors(args)
	if err != nil {
		return nil, err
	}
	if dim == 2 {
		return linear.Vector2FromArray(vs[0], 0).Dot(linear.Vector2FromArray(vs[1], 0)), nil
	}
	return linear.DotVector3(linear.Vector3FromArray(vs[0], 0), linear.Vector3FromArray(vs[1], 0)), nil
}

func normalize(args []string) (any, error) {
	dim, vs, err := parseVectors(args)
	if err != nil {
		return nil, err
	}
	if dim == 2 {
		return linear.Vector2FromArray(vs[0], 0).Normalize(), nil
	}
	return linear.NormalizeVector3(linear.Vector3FromArray(vs[0], 0)), nil
}

func contains(args []string) (any, error) {
	var p [4]linear.Vector2
	for i := range p {
		if err := parse(args[i], &p[i]); err != nil {
			return nil, err
		}
	}
	return linear.PointInTriangle(p[0], p[1], p[2], p[3]), nil
}
