package storefront

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"encore.dev/beta/errs"
	"github.com/go-playground/validator/v10"

	"encore.app/storefront/validation"
)

var validate = validator.New()

// invalidResult turns a failed schema result into an InvalidArgument error
// carrying the per-field messages as details.
func invalidResult(res validation.Result) error {
	if res.Valid {
		return nil
	}
	fields := make([]string, 0, len(res.Errors))
	for f := range res.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+res.Errors[f])
	}
	return &errs.Error{
		Code:    errs.InvalidArgument,
		Message: strings.Join(parts, "; "),
		Details: fieldErrors(res.Errors),
	}
}

type fieldErrors map[string]string

func (fieldErrors) ErrDetails() {}

type ValidateRequest struct {
	Data json.RawMessage `json:"data"`
}

type ValidateResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// ValidateForm checks a form against one of the named schemas without
// submitting it. Unknown schemas are NotFound; a body that does not decode
// into the schema is reported as an invalid result.
//
//encore:api public path=/v1/validate/:schema method=POST
func (s *Service) ValidateForm(ctx context.Context, schema string, req *ValidateRequest) (*ValidateResponse, error) {
	newValue, ok := validation.Schemas[schema]
	if !ok {
		return nil, &errs.Error{Code: errs.NotFound, Message: "unknown schema " + schema}
	}

	v := newValue()
	if len(req.Data) > 0 {
		if err := json.Unmarshal(req.Data, v); err != nil {
			return &ValidateResponse{Valid: false, Errors: map[string]string{"_": "invalid input"}}, nil
		}
	}
	res := validation.Validate(v)
	return &ValidateResponse{Valid: res.Valid, Errors: res.Errors}, nil
}
