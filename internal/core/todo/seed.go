package todo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// ValidateSeed checks a preloaded collection before a store is built from
// it. Ids must be unique and non-negative and every item needs text. Field
// names are reported as seed[i].id and seed[i].text.
func ValidateSeed(c Collection) error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[int]int, len(c))

	for i, it := range c {
		field := fmt.Sprintf("seed[%d]", i)
		if it.ID < 0 {
			errs = errs.Append(field+".id", fmt.Errorf("must not be negative, got %d", it.ID))
		}
		if first, dup := seen[it.ID]; dup {
			errs = errs.Append(field+".id", fmt.Errorf("duplicate id %d (also seed[%d])", it.ID, first))
		} else {
			seen[it.ID] = i
		}
		if strings.TrimSpace(it.Text) == "" {
			errs = errs.Append(field+".text", errors.New("is required"))
		}
	}

	return errs.ToError()
}
