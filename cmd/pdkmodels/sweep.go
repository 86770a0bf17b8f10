// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"
	"github.com/lmittmann/tint"

	"github.com/katalvlaran/pdkmodels/metrics"
	"github.com/katalvlaran/pdkmodels/models"
	"github.com/katalvlaran/pdkmodels/sdict"
	"github.com/katalvlaran/pdkmodels/vec"
)

// sweepRequest is the validated form of the sweep flags.
type sweepRequest struct {
	Model  string  `validate:"required"`
	Start  float64 `validate:"gt=0"`
	Stop   float64 `validate:"gtefield=Start"`
	Points int     `validate:"min=1,max=100001"`
	Format string  `validate:"oneof=json table"`
	Params models.Params
}

var validate = validator.New()

// paramFlag collects repeated -param key=value flags.
type paramFlag models.Params

func (p paramFlag) String() string {
	return models.Params(p).Describe()
}

func (p paramFlag) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("want key=value, got %q", s)
	}
	p[k] = models.ParseValue(v)
	return nil
}

// sweepResult is the JSON document written by -format json.
type sweepResult struct {
	RunID       string        `json:"run_id"`
	Model       string        `json:"model"`
	Generator   string        `json:"generator"`
	Params      models.Params `json:"params"`
	Wavelengths []float64     `json:"wavelengths_um"`
	Pairs       []pairResult  `json:"pairs"`
}

type pairResult struct {
	A         sdict.Port `json:"a"`
	B         sdict.Port `json:"b"`
	Magnitude []float64  `json:"magnitude"`
	Phase     []float64  `json:"phase_rad"`
}

func (e *env) sweep(args []string) int {
	fs := e.newFlagSet("sweep")
	req := sweepRequest{Params: models.Params{}}
	fs.StringVar(&req.Model, "model", "", "model name")
	fs.Float64Var(&req.Start, "start", 1.5, "first wavelength (µm)")
	fs.Float64Var(&req.Stop, "stop", 1.6, "last wavelength (µm)")
	fs.IntVar(&req.Points, "points", 11, "number of samples")
	fs.StringVar(&req.Format, "format", "json", "output format: json or table")
	fs.Var(paramFlag(req.Params), "param", "model parameter key=value (repeatable)")
	if code, ok := parse(fs, args); !ok {
		return code
	}
	if err := validate.Struct(req); err != nil {
		fmt.Fprintf(e.stderr, "sweep: %v\n", formatValidationError(err))
		return exitUsage
	}

	res, err := e.runSweep(req, metrics.NewRecorder())
	if err != nil {
		e.logger.Error("sweep failed", slog.String("model", req.Model), tint.Err(err))
		return exitError
	}

	switch req.Format {
	case "table":
		err = writeTable(e.stdout, res)
	default:
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(res)
	}
	if err != nil {
		e.logger.Error("write failed", tint.Err(err))
		return exitError
	}
	return exitOK
}

// runSweep binds the call parameters, evaluates the model and records the
// evaluation on rec.
func (e *env) runSweep(req sweepRequest, rec *metrics.Recorder) (*sweepResult, error) {
	m, err := e.registry.Model(req.Model)
	if err != nil {
		return nil, err
	}
	bound, err := m.Specialize(req.Params)
	if err != nil {
		return nil, err
	}
	wl, err := vec.Linspace(req.Start, req.Stop, req.Points)
	if err != nil {
		return nil, err
	}

	var s sdict.SDict
	err = rec.Time(req.Model, len(wl), func() error {
		var evalErr error
		s, evalErr = bound.Eval(wl, nil)
		return evalErr
	})
	if summary, sErr := rec.Summary(); sErr == nil {
		e.logger.Info("evaluation recorded", slog.Any("evaluations", summary))
	}
	if err != nil {
		return nil, err
	}

	res := &sweepResult{
		RunID:       e.runID,
		Model:       req.Model,
		Generator:   m.Base().Name(),
		Params:      bound.Defaults(),
		Wavelengths: wl,
	}
	for _, p := range s.Pairs() {
		v, _ := s.Get(p.A, p.B)
		res.Pairs = append(res.Pairs, pairResult{
			A:         p.A,
			B:         p.B,
			Magnitude: vec.Abs(v),
			Phase:     vec.Phase(v),
		})
	}
	return res, nil
}

// writeTable prints one row per wavelength and pair.
func writeTable(w io.Writer, res *sweepResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "WL_UM\tPAIR\t|S|\tPHASE_RAD\t")
	for i, l := range res.Wavelengths {
		for _, p := range res.Pairs {
			fmt.Fprintf(tw, "%.6f\t%s\t%.6f\t%.6f\t\n", l, sdict.P(p.A, p.B), p.Magnitude[i], p.Phase[i])
		}
	}
	return tw.Flush()
}

// formatValidationError reduces validator output to the first failing flag.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	flagName := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("-%s is required", flagName)
	case "oneof":
		return fmt.Errorf("-%s must be one of [%s], got %v", flagName, fe.Param(), fe.Value())
	case "gtefield":
		return fmt.Errorf("-%s must be >= -%s, got %v", flagName, strings.ToLower(fe.Param()), fe.Value())
	default:
		return fmt.Errorf("-%s failed %s=%s, got %v", flagName, fe.Tag(), fe.Param(), fe.Value())
	}
}
