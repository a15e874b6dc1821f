package generate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/EmpoweredVote/senkyo-guide/internal/registry"
	"github.com/go-playground/validator/v10"
)

// Issue is one invariant violation found after extraction.
type Issue struct {
	Kind    string // "prefecture" or "block"
	Code    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Kind, i.Code, i.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("knownblock", func(fl validator.FieldLevel) bool {
		_, ok := registry.Block(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the dataset invariants: districts are numbered from 1 and
// unique per prefecture, every block code resolves, seat counts are not
// negative and the seat table does not exceed the declared total.
func Validate(ds Dataset) []Issue {
	var issues []Issue

	for _, p := range ds.Prefectures {
		issues = append(issues, structIssues("prefecture", p.Code, p)...)

		if want, ok := registry.BlockForPrefecture(p.Code); ok && want != p.BlockCode {
			issues = append(issues, Issue{"prefecture", p.Code,
				fmt.Sprintf("filed under block %s, registry says %s", p.BlockCode, want)})
		}
		seen := map[int]bool{}
		for _, d := range p.Districts {
			if seen[d.Number] {
				issues = append(issues, Issue{"prefecture", p.Code,
					fmt.Sprintf("duplicate district %d", d.Number)})
			}
			seen[d.Number] = true
		}
	}

	for _, b := range ds.Blocks {
		issues = append(issues, structIssues("block", b.Code, b)...)
		if b.Seats > 0 && b.SeatTotal() > b.Seats {
			issues = append(issues, Issue{"block", b.Code,
				fmt.Sprintf("seat table sums to %d, more than the %d seats declared", b.SeatTotal(), b.Seats)})
		}
	}
	return issues
}

func structIssues(kind, code string, v any) []Issue {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{kind, code, err.Error()}}
	}
	out := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Issue{kind, code, describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	// Drop the root type: "Prefecture.Districts[0].Number" -> "Districts[0].Number".
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s=%v fails %s=%s", field, fe.Value(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s=%v fails %s", field, fe.Value(), fe.Tag())
}

// ErrInvalidDataset is returned by a strict run that found issues.
var ErrInvalidDataset = errors.New("dataset failed validation")
