package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// DataStarHeader is set by the DataStar client on every backend action.
const DataStarHeader = "Datastar-Request"

// Signals binds the DataStar signal store sent with an action. Signals are
// read from the "datastar" query parameter on GET and from the JSON body
// otherwise. Non-DataStar requests are not applicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get(DataStarHeader) != "true" {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}
