package services

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rbacdashboard/backend/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrInvalidListParams is returned when a list request names an unknown sort field or order
var ErrInvalidListParams = errors.New("invalid list parameters")

// sortByKey stably sorts records in place by the string returned by key.
// Strings are compared with locale-aware collation.
func sortByKey[T any](records []T, key func(T) string, order models.SortOrder) error {
	desc := false
	switch order {
	case "", models.SortAsc:
	case models.SortDesc:
		desc = true
	default:
		return fmt.Errorf("%w: invalid sort order: %s, must be '%s' or '%s'", ErrInvalidListParams, order, models.SortAsc, models.SortDesc)
	}

	c := collate.New(language.Und)
	slices.SortStableFunc(records, func(a, b T) int {
		cmp := c.CompareString(key(a), key(b))
		if desc {
			return -cmp
		}
		return cmp
	})
	return nil
}

// userSortKeys lists the user columns that can be sorted on
var userSortKeys = map[string]func(models.User) string{
	"username": func(u models.User) string { return u.Username },
	"email":    func(u models.User) string { return u.Email },
	"role":     func(u models.User) string { return u.Role },
}

// roleSortKeys lists the role columns that can be sorted on
var roleSortKeys = map[string]func(models.Role) string{
	"name": func(r models.Role) string { return r.Name },
}
