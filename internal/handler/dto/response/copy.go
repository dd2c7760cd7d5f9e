package response

import (
	"sportshub/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// copyView maps a read model onto a response type by field name.
func copyView[T any](src any) (*T, error) {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		return nil, errs.Wrap(err, "failed to map view to response")
	}
	return &dst, nil
}
